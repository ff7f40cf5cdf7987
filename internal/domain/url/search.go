package url

import (
	"net/url"
	"strings"
)

// ParseBangShortcut extracts a bang shortcut from input.
// Input must start with "!" followed by shortcut key and a space.
// Returns (shortcutKey, query, found).
//
// Examples:
//
//	"!g golang"      → ("g", "golang", true)
//	"!gh repo name"  → ("gh", "repo name", true)
//	"!g"             → ("", "", false) - no query
//	"test !g"        → ("", "", false) - bang not at start
func ParseBangShortcut(input string) (shortcut, query string, found bool) {
	if !strings.HasPrefix(input, "!") {
		return "", "", false
	}

	spaceIdx := strings.Index(input, " ")
	if spaceIdx == -1 || spaceIdx == 1 {
		return "", "", false
	}

	shortcut = input[1:spaceIdx]
	query = strings.TrimSpace(input[spaceIdx+1:])
	if query == "" {
		return "", "", false
	}

	return shortcut, query, true
}

// EscapeQuery encodes a search term the way encodeURIComponent does,
// so spaces become %20 rather than "+".
func EscapeQuery(query string) string {
	return strings.ReplaceAll(url.QueryEscape(query), "+", "%20")
}

// ExpandTemplate substitutes the escaped query into a search template.
// Templates without a %s placeholder get the query appended.
func ExpandTemplate(template, query string) string {
	escaped := EscapeQuery(query)
	if strings.Contains(template, "%s") {
		return strings.Replace(template, "%s", escaped, 1)
	}
	return template + escaped
}
