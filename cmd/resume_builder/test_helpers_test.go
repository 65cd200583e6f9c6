package main

import (
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
)

// isolateStorage points the snapshot at a per-test temp file and restores the
// package-level flag holders afterwards, so commands never touch the real
// user config directory.
func isolateStorage(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "resume-storage.json")
	t.Setenv("RESUME_STORAGE_PATH", path)
	t.Cleanup(resetRootFlags)
	return path
}

func resetRootFlags() {
	rootConfigPath = ""
	rootStoragePath = ""
	rootChromePath = ""
	rootVerbose = false
}

// newRootFlagsCommand returns a command carrying the root persistent flags,
// bound to the same holders, so openApp sees flag overrides the way an
// executed subcommand would.
func newRootFlagsCommand(t *testing.T) *cobra.Command {
	t.Helper()
	cmd := &cobra.Command{Use: "test"}
	cmd.Flags().StringVar(&rootConfigPath, "config", "", "")
	cmd.Flags().StringVar(&rootStoragePath, "storage", "", "")
	cmd.Flags().StringVar(&rootChromePath, "chrome-path", "", "")
	cmd.Flags().BoolVarP(&rootVerbose, "verbose", "v", false, "")
	return cmd
}
