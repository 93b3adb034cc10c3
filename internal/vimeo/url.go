package vimeo

import (
	"regexp"
	"strings"
)

var urlPattern = regexp.MustCompile(`^(https?://)?(www\.)?vimeo\.com/[\w/]+`)

// IsValidURL reports whether s looks like a public Vimeo link. The check is
// purely syntactic; a true result does not mean the URL resolves to playable
// content.
func IsValidURL(s string) bool {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return false
	}
	return urlPattern.MatchString(trimmed)
}
