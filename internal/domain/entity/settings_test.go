package entity_test

import (
	"testing"

	"github.com/bnema/tabshell/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeSettings(t *testing.T) {
	t.Run("empty input yields defaults", func(t *testing.T) {
		s, err := entity.DecodeSettings(nil)
		require.NoError(t, err)
		assert.Equal(t, entity.DefaultSettings(), s)
	})

	t.Run("partial record merges over defaults", func(t *testing.T) {
		s, err := entity.DecodeSettings([]byte(`{"theme":"dark","doNotTrack":true,"someFutureKey":42}`))
		require.NoError(t, err)
		assert.Equal(t, entity.ThemeDark, s.Theme)
		assert.True(t, s.DoNotTrack)
		assert.True(t, s.ShowHomeButton)
		assert.True(t, s.HardwareAcceleration)
		assert.Equal(t, "duckduckgo", s.SearchEngine)
	})

	t.Run("corrupt input falls back to defaults", func(t *testing.T) {
		s, err := entity.DecodeSettings([]byte(`{"theme":`))
		require.Error(t, err)
		assert.Equal(t, entity.DefaultSettings(), s)
	})

	t.Run("wrong field type falls back to defaults", func(t *testing.T) {
		s, err := entity.DecodeSettings([]byte(`{"showHomeButton":"yes"}`))
		require.Error(t, err)
		assert.Equal(t, entity.DefaultSettings(), s)
	})

	t.Run("unknown theme is normalized", func(t *testing.T) {
		s, err := entity.DecodeSettings([]byte(`{"theme":"neon","searchEngine":""}`))
		require.NoError(t, err)
		assert.Equal(t, entity.ThemeSystem, s.Theme)
		assert.Equal(t, "duckduckgo", s.SearchEngine)
	})
}

func TestTheme_Next(t *testing.T) {
	assert.Equal(t, entity.ThemeDark, entity.ThemeSystem.Next())
	assert.Equal(t, entity.ThemeLight, entity.ThemeDark.Next())
	assert.Equal(t, entity.ThemeSystem, entity.ThemeLight.Next())
}

func TestPopupPolicy(t *testing.T) {
	p, ok := entity.ParsePopupPolicy(" Block ")
	assert.True(t, ok)
	assert.False(t, p.Allows(true))

	p, ok = entity.ParsePopupPolicy("")
	assert.True(t, ok)
	assert.Equal(t, entity.PopupOpenTab, p)
	assert.True(t, p.Allows(false))

	p, ok = entity.ParsePopupPolicy("user-gesture")
	assert.True(t, ok)
	assert.True(t, p.Allows(true))
	assert.False(t, p.Allows(false))

	p, ok = entity.ParsePopupPolicy("sometimes")
	assert.False(t, ok)
	assert.Equal(t, entity.PopupOpenTab, p)
}
