// Package title canonicalizes movie titles for cross-provider comparison.
// Upstream sources disagree on width, spacing and casing for the same film,
// so every matching decision goes through Normalize first.
package title

import (
	"strings"
	"unicode"

	"golang.org/x/text/width"
)

// Normalize converts a title into its canonical comparison key: full-width
// Latin letters and digits folded to half-width (width.Fold leaves regular
// kana and kanji alone), all whitespace (including U+3000) stripped,
// lowercased. Pure and idempotent.
func Normalize(s string) string {
	folded := width.Fold.String(s)
	var b strings.Builder
	b.Grow(len(folded))
	for _, r := range folded {
		if unicode.IsSpace(r) {
			continue
		}
		b.WriteRune(unicode.ToLower(r))
	}
	return b.String()
}

// Matches reports whether two titles refer to the same film: either
// canonical key contains the other. The bidirectional check tolerates
// subtitle truncation and localized variants on either side. Symmetric.
func Matches(a, b string) bool {
	na, nb := Normalize(a), Normalize(b)
	return strings.Contains(na, nb) || strings.Contains(nb, na)
}
