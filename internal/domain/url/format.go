package url

import "strings"

const (
	// DefaultHomeURL is loaded for empty input and new tabs.
	DefaultHomeURL = "https://duckduckgo.com/"
	// DefaultSearchTemplate is used when no engine template is configured.
	DefaultSearchTemplate = "https://duckduckgo.com/?q=%s"
)

// searchEngines maps the searchEngine setting to query templates.
var searchEngines = map[string]string{
	"duckduckgo": "https://duckduckgo.com/?q=%s",
	"google":     "https://www.google.com/search?q=%s",
	"bing":       "https://www.bing.com/search?q=%s",
	"brave":      "https://search.brave.com/search?q=%s",
	"startpage":  "https://www.startpage.com/do/search?q=%s",
}

// SearchEngines returns the recognized engine names in display order.
func SearchEngines() []string {
	return []string{"duckduckgo", "google", "bing", "brave", "startpage"}
}

// SearchTemplateFor returns the template for a named engine, or fallback
// when the name is unknown.
func SearchTemplateFor(engine, fallback string) string {
	if tmpl, ok := searchEngines[strings.ToLower(strings.TrimSpace(engine))]; ok {
		return tmpl
	}
	if fallback != "" {
		return fallback
	}
	return DefaultSearchTemplate
}

// Formatter turns raw address bar text into a URL. It is a value type with
// no side effects; callers swap it wholesale when settings change.
type Formatter struct {
	HomeURL        string
	SearchTemplate string
	// Shortcuts maps bang keys ("g" in "!g query") to templates.
	Shortcuts map[string]string
}

// NewFormatter returns a formatter with the default home and search engine.
func NewFormatter() Formatter {
	return Formatter{
		HomeURL:        DefaultHomeURL,
		SearchTemplate: DefaultSearchTemplate,
		Shortcuts:      DefaultShortcuts(),
	}
}

// DefaultShortcuts returns the built-in bang shortcuts.
func DefaultShortcuts() map[string]string {
	return map[string]string{
		"g":   "https://www.google.com/search?q=%s",
		"ddg": "https://duckduckgo.com/?q=%s",
		"gh":  "https://github.com/search?q=%s",
		"w":   "https://en.wikipedia.org/w/index.php?search=%s",
	}
}

// Format resolves input to a navigable address:
//   - empty or whitespace → the configured home address
//   - absolute http(s) URL → unchanged
//   - "!key query" with a known shortcut key → that shortcut's search
//   - about:/file: addresses → unchanged; localhost → http://
//   - dotted input without whitespace → https:// prefix
//   - anything else → search query
func (f Formatter) Format(raw string) string {
	input := strings.TrimSpace(raw)
	if input == "" {
		return f.home()
	}

	if IsWebURL(input) {
		return input
	}

	if shortcut, query, found := ParseBangShortcut(input); found {
		if tmpl, ok := f.Shortcuts[shortcut]; ok {
			return ExpandTemplate(tmpl, query)
		}
	}

	if LooksLikeURL(input) {
		return Normalize(input)
	}

	return f.Search(input)
}

// Search builds the search-engine URL for query.
func (f Formatter) Search(query string) string {
	tmpl := f.SearchTemplate
	if tmpl == "" {
		tmpl = DefaultSearchTemplate
	}
	return ExpandTemplate(tmpl, query)
}

func (f Formatter) home() string {
	if f.HomeURL == "" {
		return DefaultHomeURL
	}
	return f.HomeURL
}
