// Package textutil provides small text helpers shared across the
// application: URL-safe slug generation and display date formatting.
package textutil

import (
	"regexp"
	"strings"
	"time"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// stripAccents decomposes characters and removes combining marks, turning
// e.g. "São" into "Sao".
var stripAccents = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

var (
	disallowed = regexp.MustCompile(`[^a-z0-9_\s-]`)
	separators = regexp.MustCompile(`[-\s]+`)
)

// Slugify converts text to a URL-safe slug: diacritics stripped, lowercased,
// characters outside [a-z0-9_\s-] removed, runs of whitespace and hyphens
// collapsed to a single hyphen, leading/trailing hyphens trimmed.
// Pure function; empty input yields an empty string. Slugs are not unique
// across entities with colliding names, so callers must not use them as
// primary keys.
func Slugify(text string) string {
	ascii, _, err := transform.String(stripAccents, text)
	if err != nil {
		ascii = text
	}
	s := strings.ToLower(ascii)
	s = disallowed.ReplaceAllString(s, "")
	s = separators.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}

// FormatDate renders a time for display, e.g. "August 30, 2026".
func FormatDate(t time.Time) string {
	return t.Format("January 02, 2006")
}
