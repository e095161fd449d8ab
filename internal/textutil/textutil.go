// Package textutil provides the whitespace cleanup shared by all
// extraction stages.
package textutil

import "strings"

// NormalizeSpace collapses any run of whitespace (including newlines and
// tabs) to a single space and trims leading and trailing whitespace. It is
// total and idempotent.
func NormalizeSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
