package entity

import "time"

// TabID uniquely identifies a tab for the lifetime of the process.
type TabID string

// DefaultTabTitle is shown while a tab has neither a reported title nor an address.
const DefaultTabTitle = "New Tab"

// Tab represents one logical browsing context.
// The paired content view and tab button live in the UI layer, keyed by ID.
type Tab struct {
	ID        TabID
	URL       string // Last committed or requested address
	Title     string // Empty until the content view reports one
	IsLoading bool
	Position  int // Position in the tab bar (0-indexed)
	CreatedAt time.Time
}

// NewTab creates a tab bound to its starting address.
func NewTab(id TabID, url string) *Tab {
	return &Tab{
		ID:        id,
		URL:       url,
		CreatedAt: time.Now(),
	}
}

// DisplayTitle returns the title for the tab button, falling back to the URL.
func (t *Tab) DisplayTitle() string {
	if t.Title != "" {
		return t.Title
	}
	if t.URL != "" && t.URL != "about:blank" {
		return t.URL
	}
	return DefaultTabTitle
}

// TabList manages the ordered collection of tabs plus active/split selection.
type TabList struct {
	Tabs        []*Tab
	ActiveTabID TabID

	// Split view: SplitTabID is meaningful only while Split is true.
	Split      bool
	SplitTabID TabID
}

// NewTabList creates an empty tab list.
func NewTabList() *TabList {
	return &TabList{
		Tabs: make([]*Tab, 0),
	}
}

// Add appends a tab to the list.
func (tl *TabList) Add(tab *Tab) {
	tab.Position = len(tl.Tabs)
	tl.Tabs = append(tl.Tabs, tab)
	if tl.ActiveTabID == "" {
		tl.ActiveTabID = tab.ID
	}
}

// Remove removes a tab by ID and reindexes positions.
// When the removed tab was active, the tab now at the same index becomes
// active, or the preceding one when the removed tab was last.
func (tl *TabList) Remove(id TabID) bool {
	for i, tab := range tl.Tabs {
		if tab.ID != id {
			continue
		}
		tl.Tabs = append(tl.Tabs[:i], tl.Tabs[i+1:]...)
		for j := i; j < len(tl.Tabs); j++ {
			tl.Tabs[j].Position = j
		}

		wasShown := tl.IsVisible(id)
		if tl.ActiveTabID == id {
			tl.ActiveTabID = ""
			if len(tl.Tabs) > 0 {
				if i < len(tl.Tabs) {
					tl.ActiveTabID = tl.Tabs[i].ID
				} else {
					tl.ActiveTabID = tl.Tabs[len(tl.Tabs)-1].ID
				}
			}
		}
		if wasShown || tl.Count() < 2 || tl.SplitTabID == tl.ActiveTabID {
			tl.ClearSplit()
		}
		return true
	}
	return false
}

// Find returns a tab by ID.
func (tl *TabList) Find(id TabID) *Tab {
	for _, tab := range tl.Tabs {
		if tab.ID == id {
			return tab
		}
	}
	return nil
}

// IndexOf returns the position of a tab, or -1.
func (tl *TabList) IndexOf(id TabID) int {
	for i, tab := range tl.Tabs {
		if tab.ID == id {
			return i
		}
	}
	return -1
}

// ActiveTab returns the currently active tab.
func (tl *TabList) ActiveTab() *Tab {
	return tl.Find(tl.ActiveTabID)
}

// Count returns the number of tabs.
func (tl *TabList) Count() int {
	return len(tl.Tabs)
}

// EnableSplit shows the first two tabs side by side.
// The partner is whichever of the first two tabs is not active; when the
// active tab sits elsewhere, the first tab becomes primary.
// Returns false when fewer than two tabs exist.
func (tl *TabList) EnableSplit() bool {
	if tl.Count() < 2 {
		return false
	}
	first, second := tl.Tabs[0].ID, tl.Tabs[1].ID
	switch tl.ActiveTabID {
	case second:
		tl.SplitTabID = first
	case first:
		tl.SplitTabID = second
	default:
		tl.ActiveTabID = first
		tl.SplitTabID = second
	}
	tl.Split = true
	return true
}

// ClearSplit reverts to single-pane layout.
func (tl *TabList) ClearSplit() {
	tl.Split = false
	tl.SplitTabID = ""
}

// IsVisible reports whether a tab's content is shown in a pane.
func (tl *TabList) IsVisible(id TabID) bool {
	if id == "" {
		return false
	}
	if id == tl.ActiveTabID {
		return true
	}
	return tl.Split && id == tl.SplitTabID
}

// URLs returns the address of every tab in strip order.
func (tl *TabList) URLs() []string {
	urls := make([]string, 0, len(tl.Tabs))
	for _, tab := range tl.Tabs {
		urls = append(urls, tab.URL)
	}
	return urls
}

// Move moves a tab to a new position.
func (tl *TabList) Move(id TabID, newPos int) bool {
	if newPos < 0 || newPos >= len(tl.Tabs) {
		return false
	}
	oldPos := tl.IndexOf(id)
	if oldPos < 0 {
		return false
	}
	tab := tl.Tabs[oldPos]
	tl.Tabs = append(tl.Tabs[:oldPos], tl.Tabs[oldPos+1:]...)
	tl.Tabs = append(tl.Tabs[:newPos], append([]*Tab{tab}, tl.Tabs[newPos:]...)...)
	for i := range tl.Tabs {
		tl.Tabs[i].Position = i
	}
	return true
}
