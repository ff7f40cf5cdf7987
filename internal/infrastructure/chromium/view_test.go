package chromium

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/bnema/tabshell/internal/application/port"
	"github.com/chromedp/cdproto/cdp"
	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeProbe struct {
	mu      sync.Mutex
	back    bool
	fwd     bool
	title   string
	histErr error
}

func (p *fakeProbe) History(context.Context) (bool, bool, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.back, p.fwd, p.histErr
}

func (p *fakeProbe) Title(context.Context) (string, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.title, nil
}

type recorder struct {
	mu     sync.Mutex
	events []port.ViewEvent
}

func (r *recorder) handle(ev port.ViewEvent) {
	r.mu.Lock()
	r.events = append(r.events, ev)
	r.mu.Unlock()
}

func (r *recorder) kinds() []port.ViewEventKind {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]port.ViewEventKind, 0, len(r.events))
	for _, ev := range r.events {
		out = append(out, ev.Kind)
	}
	return out
}

const mainFrame = cdp.FrameID("MAIN")

func newTestView(t *testing.T, probe pageProbe) (*View, *bool) {
	t.Helper()
	cancelled := false
	noop := func(context.Context, ...chromedp.Action) error { return nil }
	v := newView(context.Background(), func() { cancelled = true }, 1, noop, probe, zerolog.Nop())
	v.frameID = mainFrame
	t.Cleanup(func() {
		v.events.close()
		v.commands.close()
	})
	return v, &cancelled
}

func TestTranslate_FullLoadSequence(t *testing.T) {
	probe := &fakeProbe{back: true, title: "Example Domain"}
	v, _ := newTestView(t, probe)
	rec := &recorder{}
	v.Subscribe(rec.handle)

	v.translate(&page.EventFrameStartedLoading{FrameID: mainFrame})
	v.translate(&page.EventFrameNavigated{Frame: &cdp.Frame{ID: mainFrame, URL: "https://example.com/"}})
	v.translate(&page.EventNavigatedWithinDocument{FrameID: mainFrame, URL: "https://example.com/#a"})
	v.translate(&page.EventFrameStoppedLoading{FrameID: mainFrame})

	assert.Equal(t, []port.ViewEventKind{
		port.LoadStarted,
		port.Navigated,
		port.NavigatedInPage,
		port.TitleUpdated,
		port.LoadFinished,
	}, rec.kinds())
	assert.Equal(t, "https://example.com/#a", v.CurrentURL())
	assert.Equal(t, "Example Domain", v.Title())
	assert.True(t, v.CanGoBack())
	assert.False(t, v.CanGoForward())
}

func TestTranslate_IgnoresSubframes(t *testing.T) {
	v, _ := newTestView(t, &fakeProbe{})
	rec := &recorder{}
	v.Subscribe(rec.handle)

	v.translate(&page.EventFrameStartedLoading{FrameID: "IFRAME"})
	v.translate(&page.EventFrameNavigated{Frame: &cdp.Frame{ID: "IFRAME", ParentID: mainFrame, URL: "https://ads.example"}})
	v.translate(&page.EventFrameStoppedLoading{FrameID: "IFRAME"})

	assert.Empty(t, rec.kinds())
	assert.Empty(t, v.CurrentURL())
}

func TestTranslate_TitleOnlyWhenChanged(t *testing.T) {
	probe := &fakeProbe{title: "Same"}
	v, _ := newTestView(t, probe)
	rec := &recorder{}
	v.Subscribe(rec.handle)

	v.translate(&page.EventFrameStoppedLoading{FrameID: mainFrame})
	v.translate(&page.EventFrameStoppedLoading{FrameID: mainFrame})

	assert.Equal(t, []port.ViewEventKind{port.TitleUpdated, port.LoadFinished, port.LoadFinished}, rec.kinds())
}

func TestTranslate_WindowOpen(t *testing.T) {
	v, _ := newTestView(t, &fakeProbe{})
	rec := &recorder{}
	v.Subscribe(rec.handle)

	v.translate(&page.EventWindowOpen{URL: "https://popup.example", UserGesture: true})

	require.Len(t, rec.events, 1)
	assert.Equal(t, port.ViewEvent{Kind: port.NewWindowRequested, URL: "https://popup.example", UserGesture: true}, rec.events[0])
}

func TestTranslate_HistoryErrorKeepsCachedState(t *testing.T) {
	probe := &fakeProbe{back: true, fwd: true}
	v, _ := newTestView(t, probe)

	v.translate(&page.EventFrameNavigated{Frame: &cdp.Frame{ID: mainFrame, URL: "https://a.example/"}})
	require.True(t, v.CanGoBack())

	probe.mu.Lock()
	probe.histErr = errors.New("target closed")
	probe.back = false
	probe.mu.Unlock()
	v.translate(&page.EventFrameNavigated{Frame: &cdp.Frame{ID: mainFrame, URL: "https://b.example/"}})

	assert.True(t, v.CanGoBack())
	assert.True(t, v.CanGoForward())
	assert.Equal(t, "https://b.example/", v.CurrentURL())
}

func TestView_UnsubscribeStopsDelivery(t *testing.T) {
	v, _ := newTestView(t, &fakeProbe{})
	first, second := &recorder{}, &recorder{}
	unsubscribe := v.Subscribe(first.handle)
	v.Subscribe(second.handle)

	v.translate(&page.EventFrameStartedLoading{FrameID: mainFrame})
	unsubscribe()
	v.translate(&page.EventFrameStartedLoading{FrameID: mainFrame})

	assert.Len(t, first.kinds(), 1)
	assert.Len(t, second.kinds(), 2)
}

func TestView_DestroyDetachesAndCancels(t *testing.T) {
	v, cancelled := newTestView(t, &fakeProbe{})
	rec := &recorder{}
	v.Subscribe(rec.handle)

	v.Destroy()
	v.translate(&page.EventFrameStartedLoading{FrameID: mainFrame})
	v.Destroy()

	assert.True(t, *cancelled)
	assert.Empty(t, rec.kinds())
	_, err := v.CaptureScreenshot(context.Background())
	assert.Error(t, err)
}

func TestView_Visibility(t *testing.T) {
	v, _ := newTestView(t, &fakeProbe{})
	assert.False(t, v.IsVisible())
	v.SetVisible(true)
	assert.True(t, v.IsVisible())
	v.SetVisible(false)
	assert.False(t, v.IsVisible())
}

func TestView_InspectorWithoutBrowserIsNoop(t *testing.T) {
	v, _ := newTestView(t, &fakeProbe{})
	v.OpenInspector()
	assert.False(t, v.IsInspectorOpen())
	v.CloseInspector()
	assert.False(t, v.IsInspectorOpen())
}

func TestLoad_SeedsURLUntilFirstCommit(t *testing.T) {
	v, _ := newTestView(t, &fakeProbe{})
	v.Load("https://start.example/")
	assert.Equal(t, "https://start.example/", v.CurrentURL())

	v.translate(&page.EventFrameNavigated{Frame: &cdp.Frame{ID: mainFrame, URL: "https://landed.example/"}})
	v.Load("https://next.example/")
	assert.Equal(t, "https://landed.example/", v.CurrentURL())
}

func TestAllocatorOptions(t *testing.T) {
	assert.NotEmpty(t, allocatorOptions(Options{}))
	withAll := allocatorOptions(Options{
		ExecPath:               "/usr/bin/chromium",
		UserDataDir:            "/tmp/profile",
		DebugPort:              9222,
		Headless:               true,
		BlockThirdPartyCookies: true,
	})
	assert.Greater(t, len(withAll), len(allocatorOptions(Options{HardwareAcceleration: true})))
}

func TestDevToolsHost(t *testing.T) {
	assert.Equal(t, "127.0.0.1:9222", (&Browser{opts: Options{DebugPort: 9222}}).DevToolsHost())
	assert.Equal(t, "", (&Browser{}).DevToolsHost())
	assert.Equal(t, "localhost:9333", (&Browser{opts: Options{RemoteURL: "ws://localhost:9333/devtools/browser/x"}}).DevToolsHost())
}
