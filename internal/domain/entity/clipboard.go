package entity

import "time"

// MaxClipboardEntries caps the clipboard widget history.
const MaxClipboardEntries = 50

// ClipboardEntry is one captured clipboard text.
type ClipboardEntry struct {
	Text     string    `json:"text"`
	CopiedAt time.Time `json:"copiedAt"`
}

// PushClipboardEntry prepends text to the history, removing an older copy of
// the same text and trimming to MaxClipboardEntries.
func PushClipboardEntry(entries []ClipboardEntry, text string, at time.Time) []ClipboardEntry {
	out := make([]ClipboardEntry, 0, len(entries)+1)
	out = append(out, ClipboardEntry{Text: text, CopiedAt: at})
	for _, e := range entries {
		if e.Text == text {
			continue
		}
		out = append(out, e)
	}
	if len(out) > MaxClipboardEntries {
		out = out[:MaxClipboardEntries]
	}
	return out
}
