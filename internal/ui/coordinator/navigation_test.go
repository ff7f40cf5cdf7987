package coordinator

import (
	"testing"

	"github.com/bnema/tabshell/internal/application/port"
	"github.com/bnema/tabshell/internal/domain/entity"
	"github.com/bnema/tabshell/internal/domain/url"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newNavigation(h *harness) *NavigationCoordinator {
	return NewNavigationCoordinator(testContext(), h.c, h.address, url.Formatter{
		HomeURL:        "https://home.example/",
		SearchTemplate: "https://search.example/?q=%s",
	})
}

func TestNavigation_NoActiveView(t *testing.T) {
	h := newHarness(t, entity.PopupOpenTab)
	nav := newNavigation(h)
	ctx := testContext()

	assert.ErrorIs(t, nav.Back(ctx), port.ErrNoActiveView)
	assert.ErrorIs(t, nav.Forward(ctx), port.ErrNoActiveView)
	assert.ErrorIs(t, nav.Reload(ctx), port.ErrNoActiveView)
	assert.ErrorIs(t, nav.Submit(ctx), port.ErrNoActiveView)
	assert.ErrorIs(t, nav.Home(ctx), port.ErrNoActiveView)
	assert.ErrorIs(t, nav.ToggleInspector(ctx), port.ErrNoActiveView)
	assert.NotPanics(t, func() { nav.Abort(ctx) })
}

func TestNavigation_SubmitFormatsAndBlurs(t *testing.T) {
	cases := map[string]string{
		"example.com": "https://example.com",
		"hello world": "https://search.example/?q=hello%20world",
		"https://a.b": "https://a.b",
		"   ":         "https://home.example/",
	}
	for input, want := range cases {
		t.Run(input, func(t *testing.T) {
			h := newHarness(t, entity.PopupOpenTab)
			_, view := h.open(t, "https://start.example", true)
			nav := newNavigation(h)

			nav.FocusAddressBar(testContext())
			h.address.SetText(input)
			require.NoError(t, nav.Submit(testContext()))

			assert.Equal(t, []string{want}, view.navigations())
			assert.False(t, h.address.focused)
			assert.Equal(t, want, h.address.text)
		})
	}
}

func TestNavigation_AbortRestoresCommittedURL(t *testing.T) {
	h := newHarness(t, entity.PopupOpenTab)
	_, view := h.open(t, "https://start.example", true)
	view.url = "https://start.example/landed"
	nav := newNavigation(h)

	nav.FocusAddressBar(testContext())
	h.address.SetText("typo")
	nav.Abort(testContext())

	assert.False(t, h.address.focused)
	assert.Equal(t, "https://start.example/landed", h.address.text)
	assert.Empty(t, view.navigations())
}

func TestNavigation_BackForwardRespectAvailability(t *testing.T) {
	h := newHarness(t, entity.PopupOpenTab)
	_, view := h.open(t, "https://start.example", true)
	nav := newNavigation(h)
	ctx := testContext()

	require.NoError(t, nav.Back(ctx))
	require.NoError(t, nav.Forward(ctx))
	assert.Zero(t, view.backs)
	assert.Zero(t, view.forwards)

	view.back, view.fwd = true, true
	require.NoError(t, nav.Back(ctx))
	require.NoError(t, nav.Forward(ctx))
	require.NoError(t, nav.Reload(ctx))
	assert.Equal(t, 1, view.backs)
	assert.Equal(t, 1, view.forwards)
	assert.Equal(t, 1, view.reloads)
}

func TestNavigation_FollowsTabSwitches(t *testing.T) {
	h := newHarness(t, entity.PopupOpenTab)
	_, viewA := h.open(t, "https://a.example", true)
	b, viewB := h.open(t, "https://b.example", false)
	nav := newNavigation(h)
	ctx := testContext()

	require.NoError(t, nav.Reload(ctx))
	require.NoError(t, h.c.SwitchTab(ctx, b))
	require.NoError(t, nav.Reload(ctx))
	require.NoError(t, nav.Home(ctx))

	assert.Equal(t, 1, viewA.reloads)
	assert.Equal(t, 1, viewB.reloads)
	assert.Equal(t, []string{"https://home.example/"}, viewB.navigations())
}

func TestNavigation_ToggleInspector(t *testing.T) {
	h := newHarness(t, entity.PopupOpenTab)
	_, view := h.open(t, "https://a.example", true)
	nav := newNavigation(h)

	require.NoError(t, nav.ToggleInspector(testContext()))
	assert.True(t, view.inspector)
	require.NoError(t, nav.ToggleInspector(testContext()))
	assert.False(t, view.inspector)
}

func TestNavigation_SetFormatter(t *testing.T) {
	h := newHarness(t, entity.PopupOpenTab)
	_, view := h.open(t, "https://a.example", true)
	nav := newNavigation(h)

	nav.SetFormatter(url.Formatter{SearchTemplate: "https://other.example/s?q=%s"})
	require.NoError(t, nav.Navigate(testContext(), "go modules"))

	assert.Equal(t, []string{"https://other.example/s?q=go%20modules"}, view.navigations())
	assert.Equal(t, "https://other.example/s?q=%s", nav.Formatter().SearchTemplate)
}
