package entity_test

import (
	"testing"

	"github.com/bnema/tabshell/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newList(ids ...entity.TabID) *entity.TabList {
	tl := entity.NewTabList()
	for _, id := range ids {
		tl.Add(entity.NewTab(id, "https://"+string(id)+".example"))
	}
	return tl
}

func TestTabList_AddSetsFirstActive(t *testing.T) {
	tl := newList("a", "b")

	assert.Equal(t, entity.TabID("a"), tl.ActiveTabID)
	assert.Equal(t, 0, tl.Find("a").Position)
	assert.Equal(t, 1, tl.Find("b").Position)
}

func TestTabList_RemoveNeighbourSelection(t *testing.T) {
	tests := []struct {
		name       string
		active     entity.TabID
		remove     entity.TabID
		wantActive entity.TabID
	}{
		{name: "middle active selects next", active: "b", remove: "b", wantActive: "c"},
		{name: "last active selects previous", active: "c", remove: "c", wantActive: "b"},
		{name: "first active selects new first", active: "a", remove: "a", wantActive: "b"},
		{name: "inactive removal keeps active", active: "a", remove: "c", wantActive: "a"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tl := newList("a", "b", "c")
			tl.ActiveTabID = tt.active

			require.True(t, tl.Remove(tt.remove))
			assert.Equal(t, tt.wantActive, tl.ActiveTabID)
			assert.Equal(t, 2, tl.Count())
			for i, tab := range tl.Tabs {
				assert.Equal(t, i, tab.Position)
			}
		})
	}
}

func TestTabList_RemoveUnknown(t *testing.T) {
	tl := newList("a")
	assert.False(t, tl.Remove("zzz"))
	assert.Equal(t, 1, tl.Count())
}

func TestTabList_EnableSplit(t *testing.T) {
	t.Run("needs two tabs", func(t *testing.T) {
		tl := newList("a")
		assert.False(t, tl.EnableSplit())
		assert.False(t, tl.Split)
		assert.Empty(t, tl.SplitTabID)
	})

	t.Run("second tab becomes partner", func(t *testing.T) {
		tl := newList("a", "b", "c")
		require.True(t, tl.EnableSplit())
		assert.Equal(t, entity.TabID("a"), tl.ActiveTabID)
		assert.Equal(t, entity.TabID("b"), tl.SplitTabID)
		assert.True(t, tl.IsVisible("a"))
		assert.True(t, tl.IsVisible("b"))
		assert.False(t, tl.IsVisible("c"))
	})

	t.Run("active second tab pairs with first", func(t *testing.T) {
		tl := newList("a", "b", "c")
		tl.ActiveTabID = "b"
		require.True(t, tl.EnableSplit())
		assert.Equal(t, entity.TabID("b"), tl.ActiveTabID)
		assert.Equal(t, entity.TabID("a"), tl.SplitTabID)
	})

	t.Run("active outside first two moves primary", func(t *testing.T) {
		tl := newList("a", "b", "c")
		tl.ActiveTabID = "c"
		require.True(t, tl.EnableSplit())
		assert.Equal(t, entity.TabID("a"), tl.ActiveTabID)
		assert.Equal(t, entity.TabID("b"), tl.SplitTabID)
	})
}

func TestTabList_RemoveClearsSplitWhenPaneCloses(t *testing.T) {
	tl := newList("a", "b", "c")
	require.True(t, tl.EnableSplit())

	require.True(t, tl.Remove("b"))
	assert.False(t, tl.Split)
	assert.Empty(t, tl.SplitTabID)
	assert.Equal(t, entity.TabID("a"), tl.ActiveTabID)
}

func TestTabList_RemoveHiddenKeepsSplit(t *testing.T) {
	tl := newList("a", "b", "c")
	require.True(t, tl.EnableSplit())

	require.True(t, tl.Remove("c"))
	assert.True(t, tl.Split)
	assert.Equal(t, entity.TabID("b"), tl.SplitTabID)
}

func TestTabList_Move(t *testing.T) {
	tl := newList("a", "b", "c")

	require.True(t, tl.Move("c", 0))
	assert.Equal(t, []string{"https://c.example", "https://a.example", "https://b.example"}, tl.URLs())
	assert.False(t, tl.Move("c", 5))
	assert.False(t, tl.Move("nope", 0))
}

func TestTab_DisplayTitle(t *testing.T) {
	tab := entity.NewTab("x", "about:blank")
	assert.Equal(t, entity.DefaultTabTitle, tab.DisplayTitle())

	tab.URL = "https://example.com"
	assert.Equal(t, "https://example.com", tab.DisplayTitle())

	tab.Title = "Example"
	assert.Equal(t, "Example", tab.DisplayTitle())

	// A page may really be titled like the placeholder.
	tab.Title = entity.DefaultTabTitle
	assert.Equal(t, entity.DefaultTabTitle, tab.DisplayTitle())
}
