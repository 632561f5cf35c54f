package textnorm

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Key folds text into a comparison key: trimmed, inner whitespace collapsed,
// diacritics stripped and case-folded. "Data Início" and "data  inicio" share a key.
func Key(text string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	stripped, _, err := transform.String(t, text)
	if err != nil {
		stripped = text
	}
	folded := cases.Fold().String(stripped)
	return strings.Join(strings.Fields(folded), " ")
}

// Equal reports whether a and b share the same Key.
func Equal(a, b string) bool {
	return Key(a) == Key(b)
}
