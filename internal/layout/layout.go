// Package layout locates the title and the author line of an academic paper
// from the first page's lines-with-font-size. The title is usually among the
// largest-font lines near the top; the author line usually follows the title
// and carries name separators.
package layout

import (
	"regexp"
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/paperdesk/papername/models"
)

// Analysis is the outcome of inspecting one page's lines. Title and
// AuthorLine are empty when not detected. Confidence carries the title and
// author contributions only; the year bonus is applied by the extractor.
type Analysis struct {
	Title      string
	AuthorLine string
	Confidence float64
	Notes      string
}

const (
	// titleCandidates is how many of the largest-font lines are inspected.
	titleCandidates = 6
	// minTitleLen rejects short header fragments as title candidates.
	minTitleLen = 12

	// Primary author pass: search window sizes.
	primarySearchLines = 40
	primaryWindow      = 7
	minAuthorLen       = 6

	// Fallback author pass widens the search and relaxes the separator
	// requirement to "several capitalized words".
	fallbackSearchLines = 50
	fallbackWindow      = 9
	minCapitalizedWords = 2

	// titlePrefixLen is how much of the title is used to relocate it in
	// the page's reading order.
	titlePrefixLen = 20

	confidenceTitle  = 0.55
	confidenceAuthor = 0.30
	confidenceCap    = 0.95
)

var (
	// Journal headers, DOIs and URLs masquerade as large-font lines.
	titleVeto = regexp.MustCompile(`(?i)\b(journal|doi|www\.|http|volume|issue)\b`)

	// Name separators that signal an author list.
	authorSeparator = regexp.MustCompile(`(?i),| and | & |et al|·|•`)

	// Affiliation vocabulary for the primary pass.
	affiliationVeto = regexp.MustCompile(`(?i)\b(university|department|institute|facult(y|ad)|address)\b`)

	// The fallback pass casts a wider affiliation net and also skips
	// section headers.
	fallbackAffiliationVeto = regexp.MustCompile(`(?i)\b(university|department|institute|faculty|school|address)\b`)
	sectionVeto             = regexp.MustCompile(`(?i)\b(abstract|keywords|introduction)\b`)
)

const (
	noteNoText    = "No se pudo extraer texto de la primera página."
	noteNoTitle   = "No se detectó título con heurística de tamaño de fuente."
	noteNoAuthors = "No se detectó línea de autores (puede estar en otro formato)."
)

// Analyze runs title and author-line detection over the page's lines.
func Analyze(lines []models.PageLine) Analysis {
	if len(lines) == 0 {
		return Analysis{Notes: noteNoText}
	}

	title := detectTitle(lines)

	var authorLine string
	if title != "" {
		authorLine = detectAuthorLine(lines, title)
		if authorLine == "" {
			authorLine = detectAuthorLineFallback(lines, title)
		}
	}

	confidence := 0.0
	var notes []string
	if title != "" {
		confidence += confidenceTitle
	} else {
		notes = append(notes, noteNoTitle)
	}
	if authorLine != "" {
		confidence += confidenceAuthor
	} else {
		notes = append(notes, noteNoAuthors)
	}
	if confidence > confidenceCap {
		confidence = confidenceCap
	}

	noteText := "OK"
	if len(notes) > 0 {
		noteText = strings.Join(notes, " ")
	}
	return Analysis{
		Title:      title,
		AuthorLine: authorLine,
		Confidence: confidence,
		Notes:      noteText,
	}
}

// detectTitle sorts lines by font size descending and returns the first of
// the top candidates that is long enough and not a journal-header artifact.
func detectTitle(lines []models.PageLine) string {
	bySize := make([]models.PageLine, len(lines))
	copy(bySize, lines)
	sort.SliceStable(bySize, func(i, j int) bool {
		return bySize[i].FontSize > bySize[j].FontSize
	})

	n := titleCandidates
	if n > len(bySize) {
		n = len(bySize)
	}
	for _, cand := range bySize[:n] {
		c := strings.TrimSpace(cand.Text)
		if titleVeto.MatchString(c) {
			continue
		}
		if utf8.RuneCountInString(c) < minTitleLen {
			continue
		}
		return c
	}
	return ""
}

// locateTitle finds the title's position among the first searchLines lines
// by prefix or containment match in either direction. Returns -1 when the
// title cannot be relocated.
func locateTitle(lines []models.PageLine, title string, searchLines int) int {
	prefix := title
	if r := []rune(title); len(r) > titlePrefixLen {
		prefix = string(r[:titlePrefixLen])
	}

	n := searchLines
	if n > len(lines) {
		n = len(lines)
	}
	for i := 0; i < n; i++ {
		t := lines[i].Text
		if strings.Contains(t, prefix) || strings.Contains(title, t) || strings.Contains(t, title) {
			return i
		}
	}
	return -1
}

// detectAuthorLine is the primary pass: scan the lines right after the title
// for one carrying name separators but no affiliation vocabulary.
func detectAuthorLine(lines []models.PageLine, title string) string {
	idx := locateTitle(lines, title, primarySearchLines)
	if idx < 0 {
		return ""
	}

	end := idx + 1 + primaryWindow
	if end > len(lines) {
		end = len(lines)
	}
	for _, line := range lines[idx+1 : end] {
		w := line.Text
		if utf8.RuneCountInString(w) < minAuthorLen {
			continue
		}
		if !authorSeparator.MatchString(w) {
			continue
		}
		if affiliationVeto.MatchString(w) {
			continue
		}
		return strings.TrimSpace(w)
	}
	return ""
}

// detectAuthorLineFallback relaxes the separator requirement: any nearby
// line with several capitalized words that is neither an affiliation nor a
// section header is accepted as the author line.
func detectAuthorLineFallback(lines []models.PageLine, title string) string {
	idx := locateTitle(lines, title, fallbackSearchLines)
	if idx < 0 {
		return ""
	}

	end := idx + 1 + fallbackWindow
	if end > len(lines) {
		end = len(lines)
	}
	for _, line := range lines[idx+1 : end] {
		w := strings.TrimSpace(line.Text)
		if fallbackAffiliationVeto.MatchString(w) {
			continue
		}
		if sectionVeto.MatchString(w) {
			continue
		}
		if capitalizedWords(w) >= minCapitalizedWords {
			return w
		}
	}
	return ""
}

// capitalizedWords counts maximal letter runs that look like capitalized
// names: an upper case letter followed only by lower case letters.
// Unicode-aware, so accented and diacritic forms count, and hyphenated
// names like "Jean-Paul" contribute two runs.
func capitalizedWords(s string) int {
	count := 0
	var run []rune
	flush := func() {
		if len(run) >= 2 && unicode.IsUpper(run[0]) {
			ok := true
			for _, r := range run[1:] {
				if !unicode.IsLower(r) {
					ok = false
					break
				}
			}
			if ok {
				count++
			}
		}
		run = run[:0]
	}
	for _, r := range s {
		if unicode.IsLetter(r) {
			run = append(run, r)
			continue
		}
		flush()
	}
	flush()
	return count
}
