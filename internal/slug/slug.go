// Package slug derives URL-safe identifiers from post titles.
package slug

import "strings"

// Make lowercases the title and collapses every run of non-alphanumeric
// characters into a single dash. Applying Make to its own output returns
// the same string, so it is safe to recompute on every save.
func Make(title string) string {
	var b strings.Builder
	b.Grow(len(title))
	dash := false
	for _, r := range strings.ToLower(title) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			if dash && b.Len() > 0 {
				b.WriteByte('-')
			}
			dash = false
			b.WriteRune(r)
		default:
			dash = true
		}
	}
	return b.String()
}
