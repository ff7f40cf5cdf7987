package theme

import (
	"context"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/tabshell/internal/domain/entity"
	"github.com/bnema/tabshell/internal/infrastructure/colorscheme"
)

func TestNewManager_FollowsExplicitTheme(t *testing.T) {
	current := entity.ThemeLight
	resolver := colorscheme.NewResolver(colorscheme.ThemeFunc(func() entity.Theme { return current }))

	m := NewManager(context.Background(), resolver, Palette{}, Palette{})
	assert.False(t, m.PrefersDark())
	assert.Equal(t, DefaultLightPalette(), m.CurrentPalette())
	assert.Equal(t, lipgloss.Color(DefaultLightPalette().Accent), m.Styles().Accent)

	current = entity.ThemeDark
	assert.True(t, m.Refresh(context.Background()))
	assert.True(t, m.PrefersDark())
	assert.Equal(t, lipgloss.Color(DefaultDarkPalette().Accent), m.Styles().Accent)

	assert.False(t, m.Refresh(context.Background()), "unchanged scheme keeps styles")
}

func TestNewManager_MergesPartialPalette(t *testing.T) {
	resolver := colorscheme.NewResolver(colorscheme.ThemeFunc(func() entity.Theme { return entity.ThemeDark }))

	m := NewManager(context.Background(), resolver, Palette{}, Palette{Accent: "#ff00ff"})
	p := m.CurrentPalette()
	assert.Equal(t, "#ff00ff", p.Accent)
	assert.Equal(t, DefaultDarkPalette().Background, p.Background)
}

func TestPalette_Validate(t *testing.T) {
	require.NoError(t, DefaultDarkPalette().Validate())
	require.NoError(t, DefaultLightPalette().Validate())
	require.NoError(t, Palette{}.Validate())

	err := Palette{Accent: "green"}.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "accent")
}

func TestCoalesce(t *testing.T) {
	assert.Equal(t, "b", Coalesce("", "b", "c"))
	assert.Equal(t, "", Coalesce("", ""))
}
