// Package chromium drives a Chromium instance over the DevTools protocol and
// exposes each page target as a port.ContentView.
package chromium

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"sync"

	"github.com/bnema/tabshell/internal/logging"
	"github.com/chromedp/cdproto/browser"
	"github.com/chromedp/cdproto/network"
	"github.com/chromedp/chromedp"
	"github.com/rs/zerolog"
)

// ErrBrowserClosed is returned once the browser process is gone.
var ErrBrowserClosed = errors.New("browser is not running")

// Options configures how the browser is launched or attached.
type Options struct {
	ExecPath    string // Empty lets chromedp search the usual locations
	UserDataDir string
	RemoteURL   string // Attach to an existing browser instead of launching one
	DebugPort   int
	Headless    bool

	HardwareAcceleration   bool
	BlockThirdPartyCookies bool
}

// Browser owns the allocator and the root browser context.
// The root context's own target is used for browser-wide commands.
type Browser struct {
	opts Options

	allocCtx    context.Context
	allocCancel context.CancelFunc
	ctx         context.Context
	cancel      context.CancelFunc

	closeOnce sync.Once
	logger    zerolog.Logger
}

// Start launches (or attaches to) Chromium and waits until it accepts commands.
func Start(ctx context.Context, opts Options) (*Browser, error) {
	log := logging.FromContext(ctx).With().Str("component", "chromium").Logger()

	var allocCtx context.Context
	var allocCancel context.CancelFunc
	if opts.RemoteURL != "" {
		log.Info().Str("url", opts.RemoteURL).Msg("connecting to chromium")
		allocCtx, allocCancel = chromedp.NewRemoteAllocator(context.Background(), opts.RemoteURL)
	} else {
		allocCtx, allocCancel = chromedp.NewExecAllocator(context.Background(), allocatorOptions(opts)...)
	}

	browserCtx, browserCancel := chromedp.NewContext(allocCtx,
		chromedp.WithLogf(log.Printf),
		chromedp.WithErrorf(func(format string, args ...any) {
			log.Debug().Msgf(format, args...)
		}),
	)

	errCh := make(chan error, 1)
	go func() { errCh <- chromedp.Run(browserCtx) }()

	select {
	case err := <-errCh:
		if err != nil {
			browserCancel()
			allocCancel()
			return nil, fmt.Errorf("start chromium: %w", err)
		}
	case <-ctx.Done():
		browserCancel()
		allocCancel()
		return nil, ctx.Err()
	}

	log.Info().Bool("headless", opts.Headless).Int("debug_port", opts.DebugPort).Msg("chromium ready")
	return &Browser{
		opts:        opts,
		allocCtx:    allocCtx,
		allocCancel: allocCancel,
		ctx:         browserCtx,
		cancel:      browserCancel,
		logger:      log,
	}, nil
}

func allocatorOptions(opts Options) []chromedp.ExecAllocatorOption {
	o := []chromedp.ExecAllocatorOption{
		chromedp.NoFirstRun,
		chromedp.NoDefaultBrowserCheck,
		chromedp.Flag("disable-infobars", true),
		chromedp.Flag("disable-session-crashed-bubble", true),
		chromedp.Flag("hide-crash-restore-bubble", true),
		chromedp.Flag("disable-sync", true),
		chromedp.Flag("disable-default-apps", true),
		chromedp.Flag("exclude-switches", "enable-automation"),
		// Popups surface as window-open events and are routed through the tab strip.
		chromedp.Flag("block-new-web-contents", true),
	}
	if opts.UserDataDir != "" {
		o = append(o, chromedp.UserDataDir(opts.UserDataDir))
	}
	if opts.DebugPort > 0 {
		o = append(o, chromedp.Flag("remote-debugging-port", strconv.Itoa(opts.DebugPort)))
	}
	if opts.ExecPath != "" {
		o = append(o, chromedp.ExecPath(opts.ExecPath))
	}
	if !opts.HardwareAcceleration {
		o = append(o, chromedp.DisableGPU)
	}
	if opts.BlockThirdPartyCookies {
		o = append(o, chromedp.Flag("test-third-party-cookie-phaseout", true))
	}
	if opts.Headless {
		o = append(o, chromedp.Headless)
	} else {
		o = append(o, chromedp.Flag("headless", false))
	}
	return o
}

// Context returns the root browser context; new targets derive from it.
func (b *Browser) Context() context.Context {
	return b.ctx
}

// Running reports whether the browser is still reachable.
func (b *Browser) Running() bool {
	return b.ctx.Err() == nil
}

// DevToolsHost returns host:port of the DevTools HTTP endpoint, or "" when unknown.
func (b *Browser) DevToolsHost() string {
	if b.opts.RemoteURL != "" {
		u, err := url.Parse(b.opts.RemoteURL)
		if err == nil && u.Host != "" {
			return u.Host
		}
		return ""
	}
	if b.opts.DebugPort <= 0 {
		return ""
	}
	return "127.0.0.1:" + strconv.Itoa(b.opts.DebugPort)
}

// run executes actions on the root target, bounded by the caller's context.
func (b *Browser) run(ctx context.Context, actions ...chromedp.Action) error {
	if !b.Running() {
		return ErrBrowserClosed
	}
	runCtx, cancel := context.WithCancel(b.ctx)
	defer cancel()
	stop := context.AfterFunc(ctx, cancel)
	defer stop()
	return chromedp.Run(runCtx, actions...)
}

// ClearCache wipes the HTTP cache of the whole profile.
func (b *Browser) ClearCache(ctx context.Context) error {
	if err := b.run(ctx, network.ClearBrowserCache()); err != nil {
		return fmt.Errorf("clear browser cache: %w", err)
	}
	logging.FromContext(ctx).Info().Msg("browser cache cleared")
	return nil
}

// ClearCookies removes every cookie of the profile.
func (b *Browser) ClearCookies(ctx context.Context) error {
	if err := b.run(ctx, network.ClearBrowserCookies()); err != nil {
		return fmt.Errorf("clear browser cookies: %w", err)
	}
	logging.FromContext(ctx).Info().Msg("browser cookies cleared")
	return nil
}

// SetDownloadDirectory saves downloads into dir, or lets Chromium prompt when ask is set.
func (b *Browser) SetDownloadDirectory(ctx context.Context, dir string, ask bool) error {
	var params *browser.SetDownloadBehaviorParams
	if ask || dir == "" {
		params = browser.SetDownloadBehavior(browser.SetDownloadBehaviorBehaviorDefault)
	} else {
		params = browser.SetDownloadBehavior(browser.SetDownloadBehaviorBehaviorAllow).
			WithDownloadPath(dir)
	}
	if err := b.run(ctx, params); err != nil {
		return fmt.Errorf("set download behavior: %w", err)
	}
	return nil
}

// Close shuts the browser down. Safe to call more than once.
func (b *Browser) Close() {
	b.closeOnce.Do(func() {
		b.cancel()
		b.allocCancel()
		b.logger.Info().Msg("chromium closed")
	})
}
