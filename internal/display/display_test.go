package display

import (
	"strings"
	"testing"

	"github.com/paperdesk/papername/models"
)

func TestRenderTable(t *testing.T) {
	rows := []models.ReviewRow{
		{
			OriginalName:   "scan001.pdf",
			ProposedName:   "Autor et al. (2026). scan001.pdf",
			Confidence:     0.0,
			Notes:          "No se pudo abrir PDF: damaged",
			FallbackReason: "fallback autor, fallback año, fallback título",
			Status:         models.StatusWarning,
		},
		{
			OriginalName:   "mena2024.pdf",
			ProposedName:   "Mena et al. (2024). Efecto de la tVNS.pdf",
			Confidence:     0.95,
			Notes:          "OK",
			FallbackReason: "OK",
			Status:         models.StatusOK,
		},
	}

	var sb strings.Builder
	RenderTable(&sb, rows)
	out := sb.String()

	for _, want := range []string{
		"estado", "archivo actual", "propuesto",
		"scan001.pdf", "Mena et al. (2024). Efecto de la tVNS.pdf",
		"0.00", "0.95", "⚠", "✓",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("table output missing %q:\n%s", want, out)
		}
	}

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 4 {
		t.Errorf("got %d lines, want header + rule + 2 rows:\n%s", len(lines), out)
	}
}

func TestRenderTable_TruncatesLongCells(t *testing.T) {
	rows := []models.ReviewRow{
		{
			OriginalName: strings.Repeat("x", 200) + ".pdf",
			ProposedName: "short.pdf",
			Status:       models.StatusOK,
		},
	}

	var sb strings.Builder
	RenderTable(&sb, rows)

	if !strings.Contains(sb.String(), "…") {
		t.Error("long cell was not truncated with an ellipsis")
	}
}

func TestRenderSummary(t *testing.T) {
	var sb strings.Builder
	RenderSummary(&sb, models.RenameStats{Changed: 3, Skipped: 1, Errors: 2}, false)
	if !strings.Contains(sb.String(), "Renombrados: 3") ||
		!strings.Contains(sb.String(), "Errores: 2") {
		t.Errorf("summary = %q", sb.String())
	}

	sb.Reset()
	RenderSummary(&sb, models.RenameStats{}, true)
	if !strings.Contains(sb.String(), "Modo prueba") {
		t.Errorf("dry-run summary = %q", sb.String())
	}
}
