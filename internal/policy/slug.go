package policy

import "strings"

// Slugify turns a post title into its URL slug: lowercase, spaces become
// hyphens, and anything outside [a-z0-9-] is dropped.
func Slugify(title string) string {
	lowered := strings.ToLower(strings.ReplaceAll(title, " ", "-"))

	var b strings.Builder
	b.Grow(len(lowered))
	for _, r := range lowered {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '-' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
