// Package export converts rendered resume HTML into paginated PDF bytes with
// a headless Chrome instance, and tracks export jobs through their three
// observable states.
package export

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"

	"github.com/jonathan/resume-builder/internal/types"
)

// DefaultTimeout bounds a single PDF rasterization.
const DefaultTimeout = 60 * time.Second

// paperDimensions are PrintToPDF paper sizes in inches per page-size
// identifier.
var paperDimensions = map[types.PageSize]struct{ width, height float64 }{
	types.PageA4:     {8.27, 11.69},
	types.PageLetter: {8.5, 11.0},
}

// Renderer rasterizes an HTML document into PDF bytes. The chromedp-backed
// implementation is ChromeRenderer; tests substitute stubs.
type Renderer interface {
	HTMLToPDF(ctx context.Context, html string, size types.PageSize) ([]byte, error)
}

// ChromeRenderer renders PDFs with a headless Chrome. Requires a Chrome or
// Chromium binary on the system; ChromePath overrides discovery.
type ChromeRenderer struct {
	ChromePath string
}

// HTMLToPDF writes html to a temporary directory, navigates Chrome to it via
// file://, and prints the page to PDF. Content longer than one page overflows
// onto additional pages. The operation is bounded by ctx; rasterization
// failures never affect document state and the call is safely retryable.
func (r *ChromeRenderer) HTMLToPDF(ctx context.Context, html string, size types.PageSize) ([]byte, error) {
	paper, ok := paperDimensions[size]
	if !ok {
		return nil, &Error{Message: fmt.Sprintf("unsupported page size %q", size)}
	}

	tmpDir, err := os.MkdirTemp("", "resume-export-")
	if err != nil {
		return nil, &Error{Message: "failed to create temp directory", Cause: err}
	}
	defer os.RemoveAll(tmpDir)

	htmlPath := filepath.Join(tmpDir, "index.html")
	if err := os.WriteFile(htmlPath, []byte(html), 0o644); err != nil {
		return nil, &Error{Message: "failed to stage rendered document", Cause: err}
	}

	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", true),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("no-sandbox", true),
		chromedp.Flag("disable-dev-shm-usage", true),
	)
	if r.ChromePath != "" {
		opts = append(opts, chromedp.ExecPath(r.ChromePath))
	}

	allocCtx, cancel := chromedp.NewExecAllocator(ctx, opts...)
	defer cancel()

	browserCtx, cancelCtx := chromedp.NewContext(allocCtx)
	defer cancelCtx()

	var pdf []byte
	err = chromedp.Run(browserCtx,
		chromedp.Navigate("file://"+htmlPath),
		chromedp.WaitReady("body", chromedp.ByQuery),
		chromedp.ActionFunc(func(ctx context.Context) error {
			var err error
			pdf, _, err = page.PrintToPDF().
				WithPrintBackground(true).
				WithPaperWidth(paper.width).
				WithPaperHeight(paper.height).
				WithPreferCSSPageSize(true).
				Do(ctx)
			return err
		}),
	)
	if err != nil {
		return nil, &Error{Message: "pdf rasterization failed", Cause: err}
	}
	return pdf, nil
}

// Error represents an export failure.
type Error struct {
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("export error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("export error: %s", e.Message)
}

func (e *Error) Unwrap() error {
	return e.Cause
}
