// Package authors reduces raw author-name fragments to canonical first-author
// surnames across the common naming conventions ("Surname, Given" and
// "Given Surname"), keeping non-ASCII letters intact.
package authors

import (
	"regexp"
	"strings"
	"unicode"
)

// firstAuthorSplit separates the first author from the rest of an author
// line. Only the first occurrence counts.
var firstAuthorSplit = regexp.MustCompile(`(?i),| and | & `)

// FirstAuthor returns the fragment of an author line before the first
// comma, " and ", or " & " (case-insensitive), trimmed. The whole line is
// returned when no separator is present.
func FirstAuthor(authorLine string) string {
	if loc := firstAuthorSplit.FindStringIndex(authorLine); loc != nil {
		return strings.TrimSpace(authorLine[:loc[0]])
	}
	return strings.TrimSpace(authorLine)
}

// NormalizeSurname reduces a single trimmed author-name fragment to a
// surname. A comma marks the "Surname, Given" convention; otherwise the last
// whitespace-separated token is taken. Cleaning keeps Unicode letters,
// hyphens, and apostrophes. When cleaning empties the candidate, the original
// trimmed fragment is returned rather than an empty string.
func NormalizeSurname(fragment string) string {
	a := strings.TrimSpace(fragment)

	if i := strings.IndexByte(a, ','); i >= 0 {
		if surname := keepLetters(a[:i]); surname != "" {
			return surname
		}
		return a
	}

	fields := strings.Fields(a)
	if len(fields) == 0 {
		return a
	}
	if surname := keepLetters(fields[len(fields)-1]); surname != "" {
		return surname
	}
	return a
}

// keepLetters strips everything except Unicode letters, hyphens, and
// apostrophes, then trims leading and trailing hyphens and apostrophes.
func keepLetters(s string) string {
	var b strings.Builder
	for _, r := range s {
		if unicode.IsLetter(r) || r == '-' || r == '\'' {
			b.WriteRune(r)
		}
	}
	return strings.Trim(b.String(), "-'")
}
