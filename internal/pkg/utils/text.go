package utils

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// stripMarks decomposes to NFD and drops combining marks, turning
// "União" into "Uniao".
var stripMarks = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// NormalizeText lower-cases and strips diacritics to produce a comparison
// key. Empty input maps to "". Idempotent by construction.
func NormalizeText(s string) string {
	if s == "" {
		return ""
	}
	out, _, err := transform.String(stripMarks, s)
	if err != nil {
		// Transform never fails on valid UTF-8; fall back to the raw
		// string rather than dropping the entry from matching.
		out = s
	}
	return strings.ToLower(out)
}
