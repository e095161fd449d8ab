// Package extract orchestrates first-page analysis for one document:
// layout-based title/author detection, context-scored year selection, and
// surname normalization, assembled into a PaperInfo with a confidence score.
package extract

import (
	"fmt"

	"github.com/paperdesk/papername/internal/authors"
	"github.com/paperdesk/papername/internal/layout"
	"github.com/paperdesk/papername/internal/textutil"
	"github.com/paperdesk/papername/internal/yearguess"
	"github.com/paperdesk/papername/models"
)

// Document provides first-page content for analysis. Implementations own
// the underlying file handle; Close releases it.
type Document interface {
	// Lines returns the first page's visual lines with font sizes, in
	// approximate reading order.
	Lines() []models.PageLine
	// PlainText returns the first page's plain text as a single string.
	PlainText() string
	Close() error
}

// Opener opens the document at path or fails with an error describing the
// underlying cause.
type Opener func(path string) (Document, error)

const (
	yearBonus     = 0.10
	confidenceMax = 0.99

	noteNoYear = "No se detectó año (se usará fallback)."
)

// PaperInfo analyzes the document at path using open. An open failure is
// contained: it yields a PaperInfo with zero confidence and an explanatory
// note instead of an error, so one unreadable file never stops a batch.
func PaperInfo(path string, open Opener) models.PaperInfo {
	doc, err := open(path)
	if err != nil {
		return models.PaperInfo{
			Confidence: 0.0,
			Notes:      fmt.Sprintf("No se pudo abrir PDF: %v", err),
		}
	}
	defer doc.Close()

	analysis := layout.Analyze(doc.Lines())
	year, yearFound := yearguess.Guess(doc.PlainText())

	surname := ""
	if analysis.AuthorLine != "" {
		surname = authors.NormalizeSurname(authors.FirstAuthor(analysis.AuthorLine))
	}

	confidence := analysis.Confidence
	notes := analysis.Notes
	if yearFound {
		confidence += yearBonus
		if confidence > confidenceMax {
			confidence = confidenceMax
		}
	} else {
		if notes == "OK" {
			notes = noteNoYear
		} else {
			notes += " " + noteNoYear
		}
	}

	info := models.PaperInfo{
		Title:         textutil.NormalizeSpace(analysis.Title),
		AuthorSurname: surname,
		Confidence:    confidence,
		Notes:         notes,
	}
	if yearFound {
		info.Year = year
	}
	return info
}
