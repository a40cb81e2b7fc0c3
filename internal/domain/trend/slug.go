package trend

import (
	"strings"
)

// Slugify derives the canonical identity key for a title: lower-case,
// every maximal run of characters outside [a-z0-9] collapsed into a
// single hyphen, leading and trailing hyphens stripped. Idempotent, so
// re-slugging a slug is a no-op. Malformed titles degrade to shorter
// or empty slugs rather than failing.
func Slugify(title string) string {
	var b strings.Builder
	pending := false

	for _, r := range strings.ToLower(title) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			if pending && b.Len() > 0 {
				b.WriteByte('-')
			}
			pending = false
			b.WriteRune(r)
		} else {
			pending = true
		}
	}

	return b.String()
}
