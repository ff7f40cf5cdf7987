package entity

import (
	"encoding/json"
	"fmt"
)

// Theme selects the host window palette.
type Theme string

const (
	ThemeSystem Theme = "system"
	ThemeDark   Theme = "dark"
	ThemeLight  Theme = "light"
)

// Settings is the user-facing settings record.
// JSON keys are the persisted field names and must stay stable.
type Settings struct {
	Theme                  Theme  `json:"theme"`
	ShowHomeButton         bool   `json:"showHomeButton"`
	SearchEngine           string `json:"searchEngine"`
	ClearOnExit            bool   `json:"clearOnExit"`
	BlockThirdPartyCookies bool   `json:"blockThirdPartyCookies"`
	DoNotTrack             bool   `json:"doNotTrack"`
	DownloadLocation       string `json:"downloadLocation"` // Empty means the platform default
	AskBeforeDownload      bool   `json:"askBeforeDownload"`
	HardwareAcceleration   bool   `json:"hardwareAcceleration"`
}

// DefaultSettings returns the documented defaults.
func DefaultSettings() Settings {
	return Settings{
		Theme:                  ThemeSystem,
		ShowHomeButton:         true,
		SearchEngine:           "duckduckgo",
		ClearOnExit:            false,
		BlockThirdPartyCookies: false,
		DoNotTrack:             false,
		DownloadLocation:       "",
		AskBeforeDownload:      false,
		HardwareAcceleration:   true,
	}
}

// DecodeSettings merges persisted JSON over the defaults.
// Missing keys keep their default and unknown keys are ignored. On malformed
// input the defaults are returned together with the decode error.
func DecodeSettings(data []byte) (Settings, error) {
	s := DefaultSettings()
	if len(data) == 0 {
		return s, nil
	}
	if err := json.Unmarshal(data, &s); err != nil {
		return DefaultSettings(), fmt.Errorf("decode settings: %w", err)
	}
	s.Normalize()
	return s, nil
}

// Normalize replaces out-of-range values with defaults.
func (s *Settings) Normalize() {
	switch s.Theme {
	case ThemeSystem, ThemeDark, ThemeLight:
	default:
		s.Theme = ThemeSystem
	}
	if s.SearchEngine == "" {
		s.SearchEngine = DefaultSettings().SearchEngine
	}
}

// Next cycles system -> dark -> light.
func (t Theme) Next() Theme {
	switch t {
	case ThemeSystem:
		return ThemeDark
	case ThemeDark:
		return ThemeLight
	default:
		return ThemeSystem
	}
}
