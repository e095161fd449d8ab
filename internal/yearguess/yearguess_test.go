package yearguess

import (
	"fmt"
	"strings"
	"testing"
)

func TestGuess(t *testing.T) {
	tests := []struct {
		name   string
		text   string
		want   int
		wantOK bool
	}{
		{
			name:   "published beats received",
			text:   "Quarterly Journal ... Published 2023, Vol. 12 ... Received 2021 ...",
			want:   2023,
			wantOK: true,
		},
		{
			name:   "single year",
			text:   "This study from 2019 examined response dynamics.",
			want:   2019,
			wantOK: true,
		},
		{
			name:   "doi context beats bare year",
			text:   "grant 1998 funding ... doi 10.1000/x published online 2020",
			want:   2020,
			wantOK: true,
		},
		{
			name:   "copyright penalized against volume",
			text:   "© 2021 The Author(s). All rights reserved under international conventions. Journal of Memory and Cognition, Volume 48, Issue 2, 2022",
			want:   2022,
			wantOK: true,
		},
		{
			name:   "tie broken by larger year",
			text:   "compared data from 2001 and 2004 in the appendix",
			want:   2004,
			wantOK: true,
		},
		{
			name:   "no year at all",
			text:   "an undated manuscript about decision making",
			want:   0,
			wantOK: false,
		},
		{
			name:   "empty input",
			text:   "",
			want:   0,
			wantOK: false,
		},
		{
			name:   "out of range numbers ignored",
			text:   "sample sizes of 1850 and 2150 participants",
			want:   0,
			wantOK: false,
		},
		{
			name:   "longer digit runs not matched",
			text:   "catalog number 120150 and 201500",
			want:   0,
			wantOK: false,
		},
		{
			name:   "year across newlines",
			text:   "Published\nonline\n2018\nin the Journal of Testing",
			want:   2018,
			wantOK: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Guess(tt.text)
			if ok != tt.wantOK || got != tt.want {
				t.Errorf("Guess(%q) = (%d, %v), want (%d, %v)", tt.text, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

// Guess must never invent a year: whatever it returns has to appear
// literally as a token in the input.
func TestGuess_ReturnsLiteralToken(t *testing.T) {
	texts := []string{
		"Received 1999, accepted 2001, published 2002 in Vol. 3",
		"© 2020 Elsevier. Available online 2021.",
		"1900 1950 2000 2050 2099",
	}
	for _, text := range texts {
		got, ok := Guess(text)
		if !ok {
			t.Errorf("Guess(%q) found nothing, want a year", text)
			continue
		}
		if !strings.Contains(text, fmt.Sprintf("%d", got)) {
			t.Errorf("Guess(%q) = %d, not a literal token of the input", text, got)
		}
	}
}

func TestGuess_RangeBounds(t *testing.T) {
	tests := []struct {
		text string
		want int
	}{
		{"earliest 1900 possible", 1900},
		{"latest 2099 possible", 2099},
	}
	for _, tt := range tests {
		got, ok := Guess(tt.text)
		if !ok || got != tt.want {
			t.Errorf("Guess(%q) = (%d, %v), want (%d, true)", tt.text, got, ok, tt.want)
		}
	}
}
