package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-builder/internal/export"
	"github.com/jonathan/resume-builder/internal/rendering"
	"github.com/jonathan/resume-builder/internal/types"
)

var exportCommand = &cobra.Command{
	Use:   "export",
	Short: "Export the active resume to a print-ready PDF",
	Long: `Renders the active resume with its template and rasterizes the result to a
paginated PDF with headless Chrome. Content longer than one page overflows
onto additional pages. Requires a Chrome or Chromium binary (see --chrome-path
or the CHROME_PATH env var).`,
	RunE: runExportCmd,
}

var (
	exportOutput   string
	exportPageSize string
	exportTimeout  int
)

func init() {
	exportCommand.Flags().StringVarP(&exportOutput, "output", "o", "resume.pdf", "Output PDF file")
	exportCommand.Flags().StringVar(&exportPageSize, "page-size", "", "Page size: a4 or letter (defaults to config)")
	exportCommand.Flags().IntVar(&exportTimeout, "timeout", 0, "Export timeout in seconds (defaults to config)")
	rootCmd.AddCommand(exportCommand)
}

func runExportCmd(cmd *cobra.Command, _ []string) error {
	a, err := openApp(cmd)
	if err != nil {
		return err
	}

	pageSize := a.cfg.PageSize
	if cmd.Flags().Changed("page-size") {
		pageSize = exportPageSize
	}
	timeout := a.cfg.ExportTimeout
	if cmd.Flags().Changed("timeout") {
		timeout = exportTimeout
	}

	req := &types.ExportRequest{
		Filename: exportOutput,
		PageSize: types.PageSize(pageSize),
	}
	if err := req.Validate(); err != nil {
		return fmt.Errorf("invalid export request: %w", err)
	}

	active := a.store.ActiveResume()
	if active == nil {
		fmt.Println("No active resume")
		return nil
	}

	// The rendered HTML is the snapshot the export operates on; document
	// edits after this point do not affect the running job.
	html, err := rendering.Render(active)
	if err != nil {
		a.printer.PrintExportResult(req.Filename, err)
		return err
	}

	manager := export.NewManager(
		&export.ChromeRenderer{ChromePath: a.cfg.ChromePath},
		time.Duration(timeout)*time.Second,
	)

	fmt.Printf("Exporting %s...\n", req.Filename)
	job := manager.Start(context.Background(), html, req.Filename, req.PageSize)
	err = job.Wait()

	a.printer.PrintExportResult(req.Filename, err)
	if err != nil {
		// Document state is untouched; the export can simply be retried.
		return err
	}
	return nil
}
