package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-builder/internal/types"
)

var sectionCommand = &cobra.Command{
	Use:   "section",
	Short: "Manage section visibility and order on the active resume",
}

var sectionToggleCommand = &cobra.Command{
	Use:   "toggle <section-id>",
	Short: "Flip a section's visibility",
	Args:  cobra.ExactArgs(1),
	RunE:  runSectionToggleCmd,
}

var sectionReorderCommand = &cobra.Command{
	Use:   "reorder <section-id>...",
	Short: "Reorder sections; every section of the resume must be listed exactly once",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runSectionReorderCmd,
}

func init() {
	sectionCommand.AddCommand(sectionToggleCommand)
	sectionCommand.AddCommand(sectionReorderCommand)
	rootCmd.AddCommand(sectionCommand)
}

func runSectionToggleCmd(cmd *cobra.Command, args []string) error {
	a, err := openApp(cmd)
	if err != nil {
		return err
	}

	a.store.ToggleSection(args[0])
	if a.verbose {
		a.printer.PrintResume(a.store.ActiveResume())
	}
	return nil
}

// runSectionReorderCmd builds the complete replacement section list the store
// contract requires: the store replaces wholesale without validating, so the
// CLI checks completeness here.
func runSectionReorderCmd(cmd *cobra.Command, args []string) error {
	a, err := openApp(cmd)
	if err != nil {
		return err
	}

	active := a.store.ActiveResume()
	if active == nil {
		fmt.Println("No active resume")
		return nil
	}

	byID := make(map[string]types.ResumeSection, len(active.Sections))
	for _, sec := range active.Sections {
		byID[sec.ID] = sec
	}
	if len(args) != len(active.Sections) {
		return fmt.Errorf("reorder requires all %d section IDs, got %d", len(active.Sections), len(args))
	}

	sections := make([]types.ResumeSection, 0, len(args))
	for i, id := range args {
		sec, ok := byID[id]
		if !ok {
			return fmt.Errorf("unknown section ID %q", id)
		}
		delete(byID, id)
		sec.Order = i
		sections = append(sections, sec)
	}

	a.store.ReorderSections(sections)
	if a.verbose {
		a.printer.PrintResume(a.store.ActiveResume())
	}
	return nil
}
