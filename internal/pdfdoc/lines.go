package pdfdoc

import (
	"strings"
	"unicode/utf8"

	"github.com/ledongthuc/pdf"

	"github.com/paperdesk/papername/internal/textutil"
	"github.com/paperdesk/papername/models"
)

const (
	// yTolerance is the maximum vertical distance (points) between two
	// fragments still considered part of the same visual line.
	yTolerance = 2.0

	// spacingCoefficient times the font size is the horizontal gap that
	// separates two words within a line.
	spacingCoefficient = 0.16

	// minLineLen filters out page-margin noise such as line numbers.
	minLineLen = 3
)

// linesFromFragments groups the page's text fragments into visual lines.
// Fragments arrive in content order, which approximates reading order; a
// vertical jump beyond yTolerance starts a new line. Each line carries the
// maximum font size among its fragments. Lines shorter than minLineLen
// runes are dropped as noise.
func linesFromFragments(fragments []pdf.Text) []models.PageLine {
	var lines []models.PageLine

	var b strings.Builder
	var maxSize, curY, prevEnd float64
	open := false

	flush := func() {
		if !open {
			return
		}
		text := textutil.NormalizeSpace(b.String())
		if utf8.RuneCountInString(text) >= minLineLen && maxSize > 0 {
			lines = append(lines, models.PageLine{Text: text, FontSize: maxSize})
		}
		b.Reset()
		maxSize = 0
		open = false
	}

	for _, t := range fragments {
		if t.S == "" {
			continue
		}
		if open && (t.Y > curY+yTolerance || t.Y < curY-yTolerance) {
			flush()
		}
		if !open {
			open = true
			curY = t.Y
		} else if t.X-prevEnd >= spacingCoefficient*t.FontSize {
			b.WriteByte(' ')
		}
		b.WriteString(t.S)
		if t.FontSize > maxSize {
			maxSize = t.FontSize
		}
		prevEnd = t.X + t.W
	}
	flush()

	return lines
}
