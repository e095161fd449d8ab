// Package display renders the per-file review table on stdout. Column
// alignment is rune-width aware so proposals with wide or combining
// characters keep the table readable.
package display

import (
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/paperdesk/papername/models"
)

// maxCellWidth bounds a single cell; longer values are truncated with an
// ellipsis so one long title cannot blow up the table.
const maxCellWidth = 70

var headers = []string{"estado", "archivo actual", "propuesto", "confianza", "motivo fallback", "notas"}

// statusLabel maps a row status to its table marker.
func statusLabel(s models.RowStatus) string {
	if s == models.StatusWarning {
		return "⚠"
	}
	return "✓"
}

// RenderTable writes the review rows as an aligned text table.
func RenderTable(w io.Writer, rows []models.ReviewRow) {
	cells := make([][]string, 0, len(rows)+1)
	cells = append(cells, headers)
	for _, row := range rows {
		cells = append(cells, []string{
			statusLabel(row.Status),
			truncate(row.OriginalName),
			truncate(row.ProposedName),
			fmt.Sprintf("%.2f", row.Confidence),
			truncate(row.FallbackReason),
			truncate(row.Notes),
		})
	}

	widths := make([]int, len(headers))
	for _, line := range cells {
		for i, cell := range line {
			if cw := runewidth.StringWidth(cell); cw > widths[i] {
				widths[i] = cw
			}
		}
	}

	for n, line := range cells {
		parts := make([]string, len(line))
		for i, cell := range line {
			parts[i] = pad(cell, widths[i])
		}
		fmt.Fprintln(w, strings.TrimRight(strings.Join(parts, "  "), " "))
		if n == 0 {
			fmt.Fprintln(w, rule(widths))
		}
	}
}

// RenderSummary writes the aggregate outcome of a rename pass.
func RenderSummary(w io.Writer, stats models.RenameStats, dryRun bool) {
	if dryRun {
		fmt.Fprintln(w, "Modo prueba: no se renombró nada.")
		return
	}
	fmt.Fprintf(w, "Listo. Renombrados: %d. Omitidos: %d. Errores: %d.\n",
		stats.Changed, stats.Skipped, stats.Errors)
}

func truncate(s string) string {
	return runewidth.Truncate(s, maxCellWidth, "…")
}

func pad(s string, width int) string {
	return s + strings.Repeat(" ", width-runewidth.StringWidth(s))
}

func rule(widths []int) string {
	parts := make([]string, len(widths))
	for i, w := range widths {
		parts[i] = strings.Repeat("-", w)
	}
	return strings.Join(parts, "  ")
}
