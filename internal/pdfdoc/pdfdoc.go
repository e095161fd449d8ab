// Package pdfdoc loads PDF files and exposes their first page as visual
// lines with font sizes plus plain text, which is all the extraction core
// needs. PDF decoding is fully contained here; the rest of the tool never
// touches a PDF library.
package pdfdoc

import (
	"fmt"

	"github.com/ledongthuc/pdf"
	"github.com/pdfcpu/pdfcpu/pkg/api"

	"github.com/paperdesk/papername/internal/extract"
	"github.com/paperdesk/papername/models"
)

// Document holds the first page's extracted content. The underlying file is
// closed before Open returns, so Close is a no-op kept for the collaborator
// contract.
type Document struct {
	lines []models.PageLine
	text  string
}

func (d *Document) Lines() []models.PageLine { return d.lines }
func (d *Document) PlainText() string        { return d.text }
func (d *Document) Close() error             { return nil }

// Open reads the first page of the PDF at path. It satisfies
// [extract.Opener]. Corrupt, encrypted, or zero-page files fail with an
// error describing the cause; they never panic into the caller.
func Open(path string) (extract.Document, error) {
	// Cheap structural pre-check: catches truncated and non-PDF files
	// before the text-layer reader touches them.
	pageCount, err := api.PageCountFile(path)
	if err != nil {
		return nil, fmt.Errorf("invalid PDF: %w", err)
	}
	if pageCount == 0 {
		return nil, fmt.Errorf("PDF has no pages")
	}

	return readFirstPage(path)
}

// readFirstPage extracts lines and plain text from page one. The text-layer
// reader panics on some malformed files, so panics are converted to errors
// here in one place.
func readFirstPage(path string) (doc *Document, rerr error) {
	defer func() {
		if val := recover(); val != nil {
			doc = nil
			rerr = fmt.Errorf("reader panicked: %v", val)
		}
	}()

	f, r, err := pdf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open: %w", err)
	}
	defer f.Close()

	var page pdf.Page
	for i := 1; i <= r.NumPage(); i++ {
		if p := r.Page(i); !p.V.IsNull() {
			page = p
			break
		}
	}
	if page.V.IsNull() {
		return nil, fmt.Errorf("no readable page")
	}

	text, err := page.GetPlainText(nil)
	if err != nil {
		return nil, fmt.Errorf("extract text: %w", err)
	}

	return &Document{
		lines: linesFromFragments(page.Content().Text),
		text:  text,
	}, nil
}
