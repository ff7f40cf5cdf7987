package entity

import (
	"errors"
	"time"
)

// ErrInvalidSnapshot is returned when a session snapshot has no URLs.
var ErrInvalidSnapshot = errors.New("invalid session snapshot")

// SessionSnapshot is the explicit "save session" record kept by the
// sessions widget. Field names match the persisted JSON layout.
type SessionSnapshot struct {
	Date     time.Time `json:"date"`
	TabCount int       `json:"tabCount"`
	URLs     []string  `json:"urls"`
}

// NewSessionSnapshot captures the given tab addresses.
// Blank addresses are dropped.
func NewSessionSnapshot(urls []string, at time.Time) SessionSnapshot {
	kept := make([]string, 0, len(urls))
	for _, u := range urls {
		if u != "" {
			kept = append(kept, u)
		}
	}
	return SessionSnapshot{
		Date:     at,
		TabCount: len(kept),
		URLs:     kept,
	}
}

// Validate checks the snapshot can be restored.
func (s SessionSnapshot) Validate() error {
	if len(s.URLs) == 0 {
		return ErrInvalidSnapshot
	}
	return nil
}
