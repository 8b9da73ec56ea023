package utils

import (
	"regexp"
	"strings"
)

var (
	nonWordRe   = regexp.MustCompile(`[^\w\s-]`)
	separatorRe = regexp.MustCompile(`[\s_-]+`)
	edgeHyphens = regexp.MustCompile(`^-+|-+$`)
)

// GenerateSlug converts a title into a URL slug: lowercase, strip
// non-word characters, collapse whitespace/underscores/hyphens to a
// single hyphen, trim leading and trailing hyphens.
func GenerateSlug(title string) string {
	slug := strings.ToLower(strings.TrimSpace(title))
	slug = nonWordRe.ReplaceAllString(slug, "")
	slug = separatorRe.ReplaceAllString(slug, "-")
	slug = edgeHyphens.ReplaceAllString(slug, "")
	return slug
}

// CalculateReadTime estimates reading time in minutes at 200 words per
// minute, rounding up. Non-empty content always reads as at least one
// minute.
func CalculateReadTime(content string) int {
	words := len(strings.Fields(content))
	if words == 0 {
		return 0
	}
	return (words + 199) / 200
}
