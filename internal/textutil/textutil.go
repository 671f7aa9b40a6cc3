// Package textutil holds the text folding helpers shared by the catalog
// normalizer, the query matcher and the dataset readers.
package textutil

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Matches any run of characters outside [a-z0-9].
var nonAlphanumeric = regexp.MustCompile(`[^a-z0-9]+`)

// Fold lower-cases s, trims it and strips combining marks so that "Chloé"
// and "chloe" compare equal.
func Fold(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(t, s)
	if err != nil {
		folded = s
	}
	return strings.ToLower(folded)
}

// Slugify converts a display name to a URL-safe slug. Accents are folded;
// every other run of characters outside [a-z0-9] becomes one hyphen.
// "Light Blue" -> "light-blue".
// "Chloé Eau de Parfum" -> "chloe-eau-de-parfum".
// "L’Homme / Intense" -> "l-homme-intense".
func Slugify(s string) string {
	t := transform.Chain(norm.NFKD, runes.Remove(runes.In(unicode.Mn)))
	folded, _, err := transform.String(t, s)
	if err != nil {
		folded = s
	}

	folded = strings.ToLower(folded)
	folded = nonAlphanumeric.ReplaceAllString(folded, "-")
	return strings.Trim(folded, "-")
}

// Title upper-cases the first letter of every word: "sweet vanilla" -> "Sweet Vanilla".
func Title(s string) string {
	return cases.Title(language.English).String(strings.TrimSpace(s))
}

// Humanize turns dataset identifiers like "tom-ford" or "light_blue" into "Tom Ford".
func Humanize(s string) string {
	s = strings.NewReplacer("-", " ", "_", " ").Replace(s)
	return Title(strings.Join(strings.Fields(s), " "))
}
