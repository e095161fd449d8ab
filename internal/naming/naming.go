// Package naming composes the proposed filename from extracted or fallback
// fields, sanitizes it for filesystem safety, and resolves collisions by
// numeric suffixing.
package naming

import (
	"fmt"
	"strings"

	"github.com/paperdesk/papername/internal/textutil"
	"github.com/paperdesk/papername/models"
)

// invalidChars are reserved by Windows filesystems; they are replaced, not
// removed, so visually adjacent words stay separated.
const invalidChars = `<>:"/\|?*`

// maxStemLen bounds the sanitized stem in runes.
const maxStemLen = 160

// fallbackAuthor is the placeholder surname when no author was extracted.
const fallbackAuthor = "Autor"

// SanitizeFilename removes reserved characters, collapses whitespace, strips
// trailing spaces and periods, and truncates to maxStemLen runes. Trailing
// cleanup is re-applied after truncation so a cut never exposes a trailing
// space or period.
func SanitizeFilename(s string) string {
	s = textutil.NormalizeSpace(s)
	var b strings.Builder
	for _, r := range s {
		if strings.ContainsRune(invalidChars, r) {
			b.WriteRune('_')
		} else {
			b.WriteRune(r)
		}
	}
	s = strings.TrimRight(b.String(), " .")
	if runes := []rune(s); len(runes) > maxStemLen {
		s = strings.TrimRight(string(runes[:maxStemLen]), " .")
	}
	return s
}

// BuildNewName derives the proposed stem from info, substituting the
// caller's fallback year, the original filename stem, and the placeholder
// author for missing fields. "et al." is always used regardless of how many
// authors were detected; author count is never verified.
func BuildNewName(info models.PaperInfo, fallbackYear int, originalStem string) models.NamingResult {
	year := info.Year
	if year == 0 {
		year = fallbackYear
	}
	title := info.Title
	if title == "" {
		title = originalStem
	}
	author := info.AuthorSurname
	if author == "" {
		author = fallbackAuthor
	}

	stem := SanitizeFilename(fmt.Sprintf("%s et al. (%d). %s", author, year, title))

	var reasons []string
	if info.AuthorSurname == "" {
		reasons = append(reasons, "fallback autor")
	}
	if info.Year == 0 {
		reasons = append(reasons, "fallback año")
	}
	if info.Title == "" {
		reasons = append(reasons, "fallback título")
	}
	reason := "OK"
	if len(reasons) > 0 {
		reason = strings.Join(reasons, ", ")
	}

	return models.NamingResult{NewStem: stem, Reason: reason}
}
