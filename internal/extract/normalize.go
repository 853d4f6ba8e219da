// Package extract recovers structured transaction fields from the raw text
// of real-estate documents (purchase agreements, MLS sheets).
//
// The engine is a pure function of its input: each field has an ordered
// battery of patterns from most specific (labeled) to most generic, and the
// first match that passes the field's plausibility filter wins. A field
// with no plausible match is simply absent from the result. Fields are
// fully independent; one field's failure never affects another.
package extract

import (
	"regexp"
	"strings"
)

var reWhitespace = regexp.MustCompile(`\s+`)

// Normalize collapses all whitespace runs (including newlines and
// page-break artifacts) into single spaces and trims the result. All
// pattern matching operates on the normalized string.
func Normalize(s string) string {
	if s == "" {
		return s
	}
	return strings.TrimSpace(reWhitespace.ReplaceAllString(s, " "))
}
