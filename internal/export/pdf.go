// Package export turns rendered HTML into a paginated PDF using a headless
// browser. Exports are heavyweight (each spawns a Chrome tab), so the
// exporter bounds how many run at once.
package export

import (
	"context"
	"fmt"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
	"golang.org/x/sync/semaphore"
)

// Page geometry: A4 with 15mm top/bottom margins, expressed in inches for
// the DevTools printToPDF call.
const (
	paperWidthInches   = 8.27
	paperHeightInches  = 11.69
	marginTopInches    = 0.59
	marginBottomInches = 0.59
)

// DefaultTimeout bounds a single export.
const DefaultTimeout = 60 * time.Second

// DefaultMaxConcurrent is the default cap on simultaneous exports.
const DefaultMaxConcurrent = 2

// ExportError reports a failed PDF export.
type ExportError struct {
	Message string
	Cause   error
}

func (e *ExportError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("export error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("export error: %s", e.Message)
}

func (e *ExportError) Unwrap() error {
	return e.Cause
}

// PDFExporter renders HTML documents to PDF bytes.
type PDFExporter struct {
	sem     *semaphore.Weighted
	timeout time.Duration
}

// NewPDFExporter creates an exporter allowing at most maxConcurrent
// simultaneous browser sessions.
func NewPDFExporter(maxConcurrent int64) *PDFExporter {
	if maxConcurrent <= 0 {
		maxConcurrent = DefaultMaxConcurrent
	}
	return &PDFExporter{
		sem:     semaphore.NewWeighted(maxConcurrent),
		timeout: DefaultTimeout,
	}
}

// Export renders the HTML document and returns the PDF bytes.
func (e *PDFExporter) Export(ctx context.Context, html string) ([]byte, error) {
	if err := e.sem.Acquire(ctx, 1); err != nil {
		return nil, &ExportError{Message: "cancelled while waiting for a browser slot", Cause: err}
	}
	defer e.sem.Release(1)

	allocCtx, cancel := chromedp.NewExecAllocator(ctx,
		append(chromedp.DefaultExecAllocatorOptions[:],
			chromedp.Flag("headless", true),
			chromedp.Flag("disable-gpu", true),
			chromedp.Flag("no-sandbox", true),
			chromedp.Flag("disable-dev-shm-usage", true),
		)...,
	)
	defer cancel()

	browserCtx, cancel := chromedp.NewContext(allocCtx)
	defer cancel()

	browserCtx, cancel = context.WithTimeout(browserCtx, e.timeout)
	defer cancel()

	var pdf []byte
	err := chromedp.Run(browserCtx,
		chromedp.Navigate("about:blank"),
		chromedp.ActionFunc(func(ctx context.Context) error {
			frameTree, err := page.GetFrameTree().Do(ctx)
			if err != nil {
				return err
			}
			return page.SetDocumentContent(frameTree.Frame.ID, html).Do(ctx)
		}),
		chromedp.ActionFunc(func(ctx context.Context) error {
			buf, _, err := page.PrintToPDF().
				WithPrintBackground(true).
				WithPaperWidth(paperWidthInches).
				WithPaperHeight(paperHeightInches).
				WithMarginTop(marginTopInches).
				WithMarginBottom(marginBottomInches).
				WithMarginLeft(0).
				WithMarginRight(0).
				Do(ctx)
			if err != nil {
				return err
			}
			pdf = buf
			return nil
		}),
	)
	if err != nil {
		return nil, &ExportError{Message: "headless browser export failed", Cause: err}
	}

	return pdf, nil
}
