package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-builder/internal/snapshot"
)

func TestOpenApp_Defaults(t *testing.T) {
	storagePath := isolateStorage(t)

	a, err := openApp(newRootFlagsCommand(t))
	require.NoError(t, err)

	assert.Equal(t, storagePath, a.cfg.SnapshotPath)
	assert.Equal(t, "a4", a.cfg.PageSize)
	assert.Equal(t, 60, a.cfg.ExportTimeout)

	// First open synthesizes a default resume and persists it.
	require.NotNil(t, a.store.ActiveResume())
	assert.Equal(t, "My Resume", a.store.ActiveResume().Name)
	_, statErr := os.Stat(storagePath)
	assert.NoError(t, statErr)
}

func TestOpenApp_ConfigFileOverridesDefaults(t *testing.T) {
	isolateStorage(t)

	cfgStorage := filepath.Join(t.TempDir(), "from-config.json")
	cfgPath := filepath.Join(t.TempDir(), "config.json")
	data, err := json.Marshal(map[string]any{
		"snapshot_path":  cfgStorage,
		"page_size":      "letter",
		"export_timeout": 30,
	})
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(cfgPath, data, 0o644))

	// Flag registration resets the bound holders, so build the command
	// before pointing it at the config file.
	cmd := newRootFlagsCommand(t)
	rootConfigPath = cfgPath

	a, err := openApp(cmd)
	require.NoError(t, err)

	assert.Equal(t, cfgStorage, a.cfg.SnapshotPath)
	assert.Equal(t, "letter", a.cfg.PageSize)
	assert.Equal(t, 30, a.cfg.ExportTimeout)
}

func TestOpenApp_FlagsOverrideConfigFile(t *testing.T) {
	isolateStorage(t)

	cfgPath := filepath.Join(t.TempDir(), "config.json")
	data, err := json.Marshal(map[string]any{
		"snapshot_path": filepath.Join(t.TempDir(), "from-config.json"),
	})
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(cfgPath, data, 0o644))

	flagStorage := filepath.Join(t.TempDir(), "from-flag.json")
	cmd := newRootFlagsCommand(t)
	rootConfigPath = cfgPath
	require.NoError(t, cmd.Flags().Set("storage", flagStorage))

	a, err := openApp(cmd)
	require.NoError(t, err)
	assert.Equal(t, flagStorage, a.cfg.SnapshotPath)
}

func TestOpenApp_InvalidConfigRejected(t *testing.T) {
	isolateStorage(t)

	cfgPath := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(cfgPath, []byte(`{"page_size": "tabloid"}`), 0o644))

	cmd := newRootFlagsCommand(t)
	rootConfigPath = cfgPath

	_, err := openApp(cmd)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "page_size")
}

func TestOpenApp_CorruptSnapshotFallsBackToDefault(t *testing.T) {
	storagePath := isolateStorage(t)
	require.NoError(t, os.WriteFile(storagePath, []byte("{not json"), 0o644))

	a, err := openApp(newRootFlagsCommand(t))
	require.NoError(t, err)

	// Empty fallback plus default synthesis, and the rewritten snapshot is
	// valid again.
	require.Len(t, a.store.Resumes(), 1)
	assert.Equal(t, "My Resume", a.store.ActiveResume().Name)

	snap, err := snapshot.Load(storagePath)
	require.NoError(t, err)
	require.Len(t, snap.Resumes, 1)
	assert.Equal(t, a.store.ActiveResumeID(), snap.ActiveResumeID)
}

func TestOpenApp_ReopensPersistedState(t *testing.T) {
	isolateStorage(t)

	first, err := openApp(newRootFlagsCommand(t))
	require.NoError(t, err)
	first.store.UpdateResumeName("Backend Resume")
	wantID := first.store.ActiveResumeID()

	second, err := openApp(newRootFlagsCommand(t))
	require.NoError(t, err)
	assert.Equal(t, wantID, second.store.ActiveResumeID())
	assert.Equal(t, "Backend Resume", second.store.ActiveResume().Name)
}
