package pdfdoc

import (
	"testing"

	"github.com/ledongthuc/pdf"

	"github.com/paperdesk/papername/models"
)

func frag(s string, x, y, w, size float64) pdf.Text {
	return pdf.Text{S: s, X: x, Y: y, W: w, FontSize: size}
}

func TestLinesFromFragments(t *testing.T) {
	tests := []struct {
		name      string
		fragments []pdf.Text
		want      []models.PageLine
	}{
		{
			name: "fragments on one line joined with word gaps",
			fragments: []pdf.Text{
				frag("Response", 50, 700, 60, 18),
				frag("dynamics", 115, 700, 58, 18),
				frag("revealed", 178, 700, 55, 18),
			},
			want: []models.PageLine{
				{Text: "Response dynamics revealed", FontSize: 18},
			},
		},
		{
			name: "vertical jump starts a new line",
			fragments: []pdf.Text{
				frag("A title large enough", 50, 700, 150, 18),
				frag("Author One, Author Two", 50, 680, 140, 11),
			},
			want: []models.PageLine{
				{Text: "A title large enough", FontSize: 18},
				{Text: "Author One, Author Two", FontSize: 11},
			},
		},
		{
			name: "line font size is the maximum span size",
			fragments: []pdf.Text{
				frag("Mixed", 50, 500, 40, 12),
				frag("sizes", 95, 500, 35, 15),
				frag("here", 135, 500, 30, 10),
			},
			want: []models.PageLine{
				{Text: "Mixed sizes here", FontSize: 15},
			},
		},
		{
			name: "tight fragments concatenated without space",
			fragments: []pdf.Text{
				frag("Hyphen", 50, 300, 42, 12),
				frag("ated", 92.1, 300, 25, 12),
			},
			want: []models.PageLine{
				{Text: "Hyphenated", FontSize: 12},
			},
		},
		{
			name: "short noise lines dropped",
			fragments: []pdf.Text{
				frag("17", 20, 400, 10, 8),
				frag("A real line of text", 50, 380, 120, 10),
			},
			want: []models.PageLine{
				{Text: "A real line of text", FontSize: 10},
			},
		},
		{
			name: "small y jitter stays on the same line",
			fragments: []pdf.Text{
				frag("Baseline", 50, 200, 50, 11),
				frag("jitter", 105, 201.5, 30, 11),
			},
			want: []models.PageLine{
				{Text: "Baseline jitter", FontSize: 11},
			},
		},
		{
			name:      "no fragments",
			fragments: nil,
			want:      nil,
		},
		{
			name: "empty fragments ignored",
			fragments: []pdf.Text{
				frag("", 50, 100, 0, 11),
				frag("Visible text here", 50, 100, 90, 11),
			},
			want: []models.PageLine{
				{Text: "Visible text here", FontSize: 11},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := linesFromFragments(tt.fragments)
			if len(got) != len(tt.want) {
				t.Fatalf("got %d lines %v, want %d lines %v", len(got), got, len(tt.want), tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("line %d = %+v, want %+v", i, got[i], tt.want[i])
				}
			}
		})
	}
}
