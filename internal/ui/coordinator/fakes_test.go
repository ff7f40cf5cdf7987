package coordinator

import (
	"context"
	"errors"
	"maps"
	"slices"
	"sync"
	"testing"
	"time"

	"github.com/bnema/tabshell/internal/application/port"
	"github.com/bnema/tabshell/internal/application/usecase"
	"github.com/bnema/tabshell/internal/domain/entity"
	"github.com/bnema/tabshell/internal/logging"
	"github.com/bnema/tabshell/internal/ui/mainloop"
)

type fakeView struct {
	url       string
	back, fwd bool
	visible   bool
	inspector bool
	destroyed bool

	loads    []string
	reloads  int
	backs    int
	forwards int

	handlers map[int]port.ViewEventHandler
	nextSub  int

	handlersAtDestroy int
	handlersAtLoad    []int
}

func newFakeView(url string) *fakeView {
	return &fakeView{url: url, handlers: make(map[int]port.ViewEventHandler)}
}

func (v *fakeView) Reload()               { v.reloads++ }
func (v *fakeView) GoBack()               { v.backs++ }
func (v *fakeView) GoForward()            { v.forwards++ }
func (v *fakeView) CanGoBack() bool       { return v.back }
func (v *fakeView) CanGoForward() bool    { return v.fwd }
func (v *fakeView) CurrentURL() string    { return v.url }
func (v *fakeView) OpenInspector()        { v.inspector = true }
func (v *fakeView) CloseInspector()       { v.inspector = false }
func (v *fakeView) IsInspectorOpen() bool { return v.inspector }
func (v *fakeView) SetVisible(b bool)     { v.visible = b }
func (v *fakeView) IsVisible() bool       { return v.visible }

func (v *fakeView) Load(url string) {
	v.loads = append(v.loads, url)
	v.handlersAtLoad = append(v.handlersAtLoad, len(v.handlers))
}

// navigations returns the loads issued after the tab's initial one.
func (v *fakeView) navigations() []string {
	if len(v.loads) == 0 {
		return nil
	}
	return v.loads[1:]
}

func (v *fakeView) Subscribe(h port.ViewEventHandler) func() {
	v.nextSub++
	key := v.nextSub
	v.handlers[key] = h
	return func() { delete(v.handlers, key) }
}

func (v *fakeView) Destroy() {
	v.destroyed = true
	v.handlersAtDestroy = len(v.handlers)
}

// emit delivers ev to subscribers as the view goroutine would.
func (v *fakeView) emit(ev port.ViewEvent) {
	for _, key := range slices.Sorted(maps.Keys(v.handlers)) {
		v.handlers[key](ev)
	}
}

// navigate simulates a full committed load.
func (v *fakeView) navigate(url, title string) {
	v.url = url
	v.emit(port.ViewEvent{Kind: port.LoadStarted})
	v.emit(port.ViewEvent{Kind: port.Navigated, URL: url})
	v.emit(port.ViewEvent{Kind: port.TitleUpdated, Title: title})
	v.emit(port.ViewEvent{Kind: port.LoadFinished})
}

type fakeFactory struct {
	views []*fakeView
	fail  bool
}

func (f *fakeFactory) Create(_ context.Context, url string) (port.ContentView, error) {
	if f.fail {
		return nil, errors.New("renderer crashed")
	}
	v := newFakeView(url)
	f.views = append(f.views, v)
	return v, nil
}

func (f *fakeFactory) last() *fakeView {
	return f.views[len(f.views)-1]
}

type fakeButton struct {
	label     string
	active    bool
	loading   bool
	labelSets int
}

func (b *fakeButton) SetLabel(l string) { b.label = l; b.labelSets++ }
func (b *fakeButton) SetActive(a bool)  { b.active = a }
func (b *fakeButton) SetLoading(l bool) { b.loading = l }
func (b *fakeButton) IsActive() bool    { return b.active }

type fakeStrip struct {
	buttons map[entity.TabID]*fakeButton
	order   []entity.TabID
}

func (s *fakeStrip) AddTab(id entity.TabID, label string) port.TabButton {
	b := &fakeButton{label: label}
	s.buttons[id] = b
	s.order = append(s.order, id)
	return b
}

func (s *fakeStrip) RemoveTab(id entity.TabID) {
	delete(s.buttons, id)
	s.order = slices.DeleteFunc(s.order, func(x entity.TabID) bool { return x == id })
}

func (s *fakeStrip) highlighted() []entity.TabID {
	var out []entity.TabID
	for _, id := range s.order {
		if s.buttons[id].active {
			out = append(out, id)
		}
	}
	return out
}

type fakeAddress struct {
	text    string
	focused bool
}

func (a *fakeAddress) Text() string     { return a.text }
func (a *fakeAddress) SetText(t string) { a.text = t }
func (a *fakeAddress) Focused() bool    { return a.focused }
func (a *fakeAddress) Focus()           { a.focused = true }
func (a *fakeAddress) Blur()            { a.focused = false }

type fakeNav struct{ back, fwd bool }

func (n *fakeNav) SetBackEnabled(b bool)    { n.back = b }
func (n *fakeNav) SetForwardEnabled(b bool) { n.fwd = b }

type fakeLoading struct{ loading bool }

func (l *fakeLoading) SetLoading(b bool) { l.loading = b }

type fakeTitle struct {
	title string
	sets  int
}

func (w *fakeTitle) SetTitle(t string) { w.title = t; w.sets++ }

type fakePanes struct{ primary, secondary entity.TabID }

func (p *fakePanes) SetPanes(primary, secondary entity.TabID) {
	p.primary, p.secondary = primary, secondary
}

type visit struct{ url, title string }

type fakeHistory struct {
	mu     sync.Mutex
	visits []visit
}

func (h *fakeHistory) Record(_ context.Context, url, title string) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.visits = append(h.visits, visit{url, title})
	return nil
}

// fakeLoop queues posted closures until drain, like the UI loop would.
type fakeLoop struct {
	queue []func()
}

func (l *fakeLoop) post(fn func()) { l.queue = append(l.queue, fn) }

func (l *fakeLoop) drain() {
	for len(l.queue) > 0 {
		fn := l.queue[0]
		l.queue = l.queue[1:]
		fn()
	}
}

type harness struct {
	c       *TabCoordinator
	factory *fakeFactory
	strip   *fakeStrip
	address *fakeAddress
	nav     *fakeNav
	loading *fakeLoading
	title   *fakeTitle
	panes   *fakePanes
	history *fakeHistory
	loop    *fakeLoop
}

func testContext() context.Context {
	return logging.WithContext(context.Background(), logging.NewFromConfigValues("debug", "console"))
}

func newHarness(t *testing.T, policy entity.PopupPolicy) *harness {
	t.Helper()
	h := &harness{
		factory: &fakeFactory{},
		strip:   &fakeStrip{buttons: make(map[entity.TabID]*fakeButton)},
		address: &fakeAddress{},
		nav:     &fakeNav{},
		loading: &fakeLoading{},
		title:   &fakeTitle{},
		panes:   &fakePanes{},
		history: &fakeHistory{},
		loop:    &fakeLoop{},
	}
	h.c = NewTabCoordinator(testContext(), TabCoordinatorConfig{
		TabsUC:  usecase.NewManageTabsUseCase(usecase.NewTabIDGenerator(time.Now())),
		Factory: h.factory,
		Surfaces: Surfaces{
			Strip:   h.strip,
			Address: h.address,
			Nav:     h.nav,
			Loading: h.loading,
			Title:   h.title,
			Panes:   h.panes,
		},
		Post:        h.loop.post,
		Titles:      mainloop.NewCoalescer(h.loop.post),
		History:     h.history,
		PopupPolicy: policy,
		Background:  func(fn func()) { fn() },
	})
	return h
}

func (h *harness) open(t *testing.T, url string, activate bool) (entity.TabID, *fakeView) {
	t.Helper()
	id, err := h.c.CreateTab(testContext(), url, activate)
	if err != nil {
		t.Fatalf("create tab: %v", err)
	}
	return id, h.factory.last()
}

func (h *harness) visibleViews() int {
	n := 0
	for _, v := range h.factory.views {
		if !v.destroyed && v.visible {
			n++
		}
	}
	return n
}
