// Package slug normalizes user-supplied slugs into URL-safe identifiers.
package slug

import (
	"strings"

	"github.com/mozillazg/go-unidecode"
)

// Make transliterates s to ASCII, lowercases it, and collapses every run
// of non-alphanumeric characters into a single hyphen.
func Make(s string) string {
	s = unidecode.Unidecode(s)
	s = strings.ToLower(s)

	var b strings.Builder
	b.Grow(len(s))
	lastHyphen := true
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastHyphen = false
		default:
			if !lastHyphen {
				b.WriteByte('-')
				lastHyphen = true
			}
		}
	}
	return strings.TrimRight(b.String(), "-")
}
