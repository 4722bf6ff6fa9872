// Package slugs derives URL-safe identifiers from article titles.
package slugs

import (
	"regexp"
	"strings"
)

var (
	invalidChars = regexp.MustCompile(`[^\w\s-]`)
	separators   = regexp.MustCompile(`[\s_-]+`)
	edgeHyphens  = regexp.MustCompile(`^-+|-+$`)
)

// Slugify converts a title into a lowercase hyphen-separated token.
// The transform is idempotent: slugifying a slug returns it unchanged.
func Slugify(title string) string {
	s := strings.ToLower(strings.TrimSpace(title))
	s = invalidChars.ReplaceAllString(s, "")
	s = separators.ReplaceAllString(s, "-")
	return edgeHyphens.ReplaceAllString(s, "")
}
