package entity

import (
	"net/url"
	"time"
)

// HistoryEntry is one address in browsing history. Repeat visits bump
// VisitCount instead of adding entries.
type HistoryEntry struct {
	ID          int64     `json:"id"`
	URL         string    `json:"url"`
	Title       string    `json:"title"`
	VisitCount  int64     `json:"visit_count"`
	LastVisited time.Time `json:"last_visited"`
}

// NewHistoryEntry records a first visit happening now.
func NewHistoryEntry(addr, title string) *HistoryEntry {
	return &HistoryEntry{URL: addr, Title: title, VisitCount: 1, LastVisited: time.Now()}
}

// DisplayTitle falls back to the host when the page had no title.
func (e *HistoryEntry) DisplayTitle() string {
	if e.Title != "" {
		return e.Title
	}
	if u, err := url.Parse(e.URL); err == nil && u.Host != "" {
		return u.Host
	}
	return e.URL
}
