// Package url turns address bar input into navigable addresses.
package url

import (
	"net/url"
	"strings"
	"unicode"
)

// Normalize adds a scheme to URL-like input.
// Returns the input unchanged if it already has a scheme or doesn't look like a URL.
func Normalize(input string) string {
	if input == "" {
		return ""
	}

	if hasKnownScheme(input) {
		return input
	}

	if isLocalhost(input) {
		return "http://" + input
	}

	// Looks like a URL (contains . and no spaces)
	if LooksLikeURL(input) {
		return "https://" + input
	}

	return input
}

// LooksLikeURL checks if the input appears to be a URL (not a search query).
func LooksLikeURL(input string) bool {
	if input == "" {
		return false
	}
	if hasKnownScheme(input) || isLocalhost(input) {
		return true
	}
	return strings.Contains(input, ".") && !containsSpace(input)
}

// IsWebURL reports whether input parses as an absolute http(s) URL with a host.
func IsWebURL(input string) bool {
	parsed, err := url.Parse(input)
	if err != nil {
		return false
	}
	switch strings.ToLower(parsed.Scheme) {
	case "http", "https":
		return parsed.Host != "" && !containsSpace(input)
	default:
		return false
	}
}

// ExtractDomain extracts the host from a URL string, without a leading "www.".
func ExtractDomain(rawURL string) string {
	if rawURL == "" {
		return ""
	}
	parsed, err := url.Parse(rawURL)
	if err != nil || parsed.Host == "" {
		return ""
	}
	return strings.TrimPrefix(parsed.Host, "www.")
}

func hasKnownScheme(input string) bool {
	lower := strings.ToLower(input)
	switch {
	case strings.HasPrefix(lower, "http://"),
		strings.HasPrefix(lower, "https://"),
		strings.HasPrefix(lower, "file://"),
		strings.HasPrefix(lower, "about:"):
		return !containsSpace(input)
	}
	return false
}

// isLocalhost matches "localhost", "localhost:port" and "localhost/path".
func isLocalhost(input string) bool {
	if !strings.HasPrefix(input, "localhost") {
		return false
	}
	rest := input[len("localhost"):]
	return rest == "" || rest[0] == ':' || rest[0] == '/'
}

func containsSpace(s string) bool {
	return strings.ContainsFunc(s, unicode.IsSpace)
}
