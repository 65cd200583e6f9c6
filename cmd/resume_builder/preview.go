package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-builder/internal/rendering"
)

var previewCommand = &cobra.Command{
	Use:   "preview",
	Short: "Render the active resume to an HTML file",
	RunE:  runPreviewCmd,
}

var previewOutput string

func init() {
	previewCommand.Flags().StringVarP(&previewOutput, "output", "o", "resume.html", "Output HTML file")
	rootCmd.AddCommand(previewCommand)
}

func runPreviewCmd(cmd *cobra.Command, _ []string) error {
	a, err := openApp(cmd)
	if err != nil {
		return err
	}

	active := a.store.ActiveResume()
	if active == nil {
		fmt.Println("No active resume")
		return nil
	}

	html, err := rendering.Render(active)
	if err != nil {
		return err
	}
	if err := os.WriteFile(previewOutput, []byte(html), 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", previewOutput, err)
	}

	fmt.Printf("Wrote %s (%s template)\n", previewOutput, active.Template)
	if a.verbose {
		a.printer.PrintResume(active)
	}
	return nil
}
