// Package yearguess selects the most plausible publication year among the
// 4-digit year tokens found in a block of free text. Each candidate is
// scored by the vocabulary surrounding it, so a year next to "Published" or
// "Vol." beats one next to "Received" or a copyright line.
package yearguess

import (
	"regexp"
	"strings"

	"github.com/paperdesk/papername/internal/textutil"
)

// yearPattern matches strict 4-digit years in 1900-1999 or 2000-2099.
var yearPattern = regexp.MustCompile(`\b(19\d{2}|20\d{2})\b`)

// contextWindow is the number of bytes taken on each side of a year token
// when building its lowercase scoring context.
const contextWindow = 60

// contextRule adds Weight to a candidate's score when any of its keywords
// appears in the candidate's context.
type contextRule struct {
	Weight   int
	Keywords []string
}

// contextRules is the scoring table applied to every (year, context) pair.
// Rules are data so weights can be tuned and tested independently of the
// selection loop.
var contextRules = []contextRule{
	// Strong publication signals.
	{Weight: 5, Keywords: []string{
		"published", "published online", "vol", "volume", "issue",
		"journal", "psychological research", "quarterly journal",
	}},
	// Medium signals.
	{Weight: 2, Keywords: []string{"doi", "online", "available online"}},
	// Manuscript history dates are rarely the publication year.
	{Weight: -2, Keywords: []string{"received", "revised", "accepted"}},
	// Copyright lines often carry a different year.
	{Weight: -1, Keywords: []string{"©", "copyright", "the author(s)"}},
}

// Guess scans text for 4-digit year tokens, scores each by its surrounding
// context, and returns the best one. The second return value is false when
// no year token exists anywhere in the text.
func Guess(text string) (int, bool) {
	if text == "" {
		return 0, false
	}
	t := textutil.NormalizeSpace(text)

	best := 0
	bestScore := 0
	found := false
	for _, loc := range yearPattern.FindAllStringIndex(t, -1) {
		year := atoiYear(t[loc[0]:loc[1]])
		ctx := contextAround(t, loc[0], loc[1])
		s := score(year, ctx)
		if !found || s > bestScore || (s == bestScore && year > best) {
			best, bestScore, found = year, s, true
		}
	}
	return best, found
}

// score applies the rule table plus a mild recency tiebreaker.
func score(year int, ctx string) int {
	s := 0
	for _, rule := range contextRules {
		for _, kw := range rule.Keywords {
			if strings.Contains(ctx, kw) {
				s += rule.Weight
				break
			}
		}
	}
	// Later years score slightly higher so recency wins clean ties.
	s += (year - 1900) / 10
	return s
}

// contextAround returns the lowercase window of text surrounding [start, end).
func contextAround(t string, start, end int) string {
	lo := start - contextWindow
	if lo < 0 {
		lo = 0
	}
	hi := end + contextWindow
	if hi > len(t) {
		hi = len(t)
	}
	return strings.ToLower(t[lo:hi])
}

// atoiYear converts a matched 4-digit token. The pattern guarantees digits,
// so no error path is needed.
func atoiYear(s string) int {
	n := 0
	for _, c := range s {
		n = n*10 + int(c-'0')
	}
	return n
}
