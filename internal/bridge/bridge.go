// Package bridge is the privileged surface between content views and the
// host. The set of operations is fixed at compile time; there is no way to
// register new ones.
package bridge

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"slices"

	"github.com/bnema/tabshell/internal/application/port"
	"github.com/bnema/tabshell/internal/application/usecase"
	"github.com/bnema/tabshell/internal/domain/build"
	"github.com/bnema/tabshell/internal/domain/entity"
	"github.com/bnema/tabshell/internal/logging"
)

// ErrOperationNotAllowed is returned by Invoke for any name off the allow-list.
var ErrOperationNotAllowed = errors.New("bridge operation not allowed")

// Op names one allow-listed operation.
type Op string

const (
	OpGetAppVersion          Op = "getAppVersion"
	OpGetMetrics             Op = "getMetrics"
	OpWindowMinimize         Op = "windowMinimize"
	OpWindowMaximize         Op = "windowMaximize"
	OpWindowClose            Op = "windowClose"
	OpOpenSettings           Op = "openSettings"
	OpOnSettingsUpdated      Op = "onSettingsUpdated"
	OpClearCache             Op = "clearCache"
	OpClearCookies           Op = "clearCookies"
	OpClearHistory           Op = "clearHistory"
	OpClearAllData           Op = "clearAllData"
	OpSelectDownloadLocation Op = "selectDownloadLocation"
	OpGetDefaultDownloadPath Op = "getDefaultDownloadPath"
	OpSaveScreenshot         Op = "saveScreenshot"
)

// Result reports the outcome of an operation with side effects.
// Failures are carried here rather than as Go errors.
type Result struct {
	Success bool   `json:"success"`
	Path    string `json:"path,omitempty"`
	Error   string `json:"error,omitempty"`
}

func ok() Result { return Result{Success: true} }

func failed(err error) Result { return Result{Error: err.Error()} }

// Subscription is returned by Invoke(OpOnSettingsUpdated). Updates holds at
// most the latest settings; Cancel stops delivery and closes the channel.
type Subscription struct {
	Updates <-chan entity.Settings
	Cancel  func()
}

// Deps are the collaborators the bridge delegates to. Window, Picker and
// ClearData may be nil; the matching operations then fail with a Result error.
type Deps struct {
	Build        build.Info
	Metrics      port.MetricsSampler
	Window       port.WindowController
	Settings     *usecase.ManageSettingsUseCase
	ClearData    *usecase.ClearDataUseCase
	Screenshots  *usecase.SaveScreenshotUseCase
	Picker       port.DirectoryPicker
	OpenSettings func()
}

type handlerFunc func(ctx context.Context, payload json.RawMessage) (any, error)

// Bridge dispatches allow-listed operations to their handlers.
type Bridge struct {
	deps     Deps
	handlers map[Op]handlerFunc
}

// New creates a bridge with the fixed operation table.
func New(deps Deps) *Bridge {
	b := &Bridge{deps: deps}
	b.handlers = map[Op]handlerFunc{
		OpGetAppVersion: func(context.Context, json.RawMessage) (any, error) {
			return b.GetAppVersion(), nil
		},
		OpGetMetrics: func(ctx context.Context, _ json.RawMessage) (any, error) {
			return b.GetMetrics(ctx)
		},
		OpWindowMinimize: func(ctx context.Context, _ json.RawMessage) (any, error) {
			return b.WindowMinimize(ctx), nil
		},
		OpWindowMaximize: func(ctx context.Context, _ json.RawMessage) (any, error) {
			return b.WindowMaximize(ctx), nil
		},
		OpWindowClose: func(ctx context.Context, _ json.RawMessage) (any, error) {
			return b.WindowClose(ctx), nil
		},
		OpOpenSettings: func(ctx context.Context, _ json.RawMessage) (any, error) {
			return b.OpenSettingsPanel(ctx), nil
		},
		OpOnSettingsUpdated: func(context.Context, json.RawMessage) (any, error) {
			return b.settingsSubscription(), nil
		},
		OpClearCache: func(ctx context.Context, _ json.RawMessage) (any, error) {
			return b.ClearCache(ctx), nil
		},
		OpClearCookies: func(ctx context.Context, _ json.RawMessage) (any, error) {
			return b.ClearCookies(ctx), nil
		},
		OpClearHistory: func(ctx context.Context, _ json.RawMessage) (any, error) {
			return b.ClearHistory(ctx), nil
		},
		OpClearAllData: func(ctx context.Context, _ json.RawMessage) (any, error) {
			return b.ClearAllData(ctx), nil
		},
		OpSelectDownloadLocation: func(ctx context.Context, _ json.RawMessage) (any, error) {
			return b.SelectDownloadLocation(ctx), nil
		},
		OpGetDefaultDownloadPath: func(context.Context, json.RawMessage) (any, error) {
			return b.GetDefaultDownloadPath()
		},
		OpSaveScreenshot: func(ctx context.Context, payload json.RawMessage) (any, error) {
			var req struct {
				Buffer []byte `json:"buffer"`
			}
			if err := json.Unmarshal(payload, &req); err != nil {
				return failed(fmt.Errorf("decode screenshot payload: %w", err)), nil
			}
			return b.SaveScreenshot(ctx, req.Buffer), nil
		},
	}
	return b
}

// Operations lists the allow-list in a stable order.
func (b *Bridge) Operations() []Op {
	ops := make([]Op, 0, len(b.handlers))
	for op := range b.handlers {
		ops = append(ops, op)
	}
	slices.Sort(ops)
	return ops
}

// Invoke runs op with a JSON payload. Unknown names are rejected.
func (b *Bridge) Invoke(ctx context.Context, op string, payload json.RawMessage) (any, error) {
	log := logging.FromContext(ctx)
	handler, found := b.handlers[Op(op)]
	if !found {
		log.Warn().Str("op", op).Msg("rejected bridge call")
		return nil, fmt.Errorf("%w: %q", ErrOperationNotAllowed, op)
	}
	log.Debug().Str("op", op).Msg("bridge call")
	return handler(ctx, payload)
}
