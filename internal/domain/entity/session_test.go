package entity_test

import (
	"testing"
	"time"

	"github.com/bnema/tabshell/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSessionSnapshot(t *testing.T) {
	at := time.Date(2026, 10, 18, 9, 30, 0, 0, time.UTC)
	snap := entity.NewSessionSnapshot([]string{"https://a.example", "", "https://b.example"}, at)

	assert.Equal(t, at, snap.Date)
	assert.Equal(t, 2, snap.TabCount)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, snap.URLs)
	require.NoError(t, snap.Validate())
}

func TestSessionSnapshot_ValidateEmpty(t *testing.T) {
	snap := entity.NewSessionSnapshot(nil, time.Now())
	require.ErrorIs(t, snap.Validate(), entity.ErrInvalidSnapshot)
}

func TestPushClipboardEntry(t *testing.T) {
	now := time.Now()
	var entries []entity.ClipboardEntry

	entries = entity.PushClipboardEntry(entries, "one", now)
	entries = entity.PushClipboardEntry(entries, "two", now)
	entries = entity.PushClipboardEntry(entries, "one", now)

	require.Len(t, entries, 2)
	assert.Equal(t, "one", entries[0].Text)
	assert.Equal(t, "two", entries[1].Text)

	for i := 0; i < entity.MaxClipboardEntries+10; i++ {
		entries = entity.PushClipboardEntry(entries, time.Duration(i).String(), now)
	}
	assert.Len(t, entries, entity.MaxClipboardEntries)
}

func TestHistoryEntry_DisplayTitle(t *testing.T) {
	assert.Equal(t, "Go", entity.NewHistoryEntry("https://go.dev/", "Go").DisplayTitle())
	assert.Equal(t, "go.dev", entity.NewHistoryEntry("https://go.dev/doc", "").DisplayTitle())
	assert.Equal(t, "about:blank", entity.NewHistoryEntry("about:blank", "").DisplayTitle())
}
