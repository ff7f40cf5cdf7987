// Package clipboard reaches the system clipboard through atotto/clipboard,
// which shells out to wl-copy, xclip or xsel on Linux.
package clipboard

import (
	"context"
	"errors"
	"fmt"

	"github.com/atotto/clipboard"

	"github.com/bnema/tabshell/internal/application/port"
	"github.com/bnema/tabshell/internal/logging"
)

// ErrUnavailable means no clipboard tool is installed.
var ErrUnavailable = errors.New("no clipboard tool found (install wl-clipboard, xclip or xsel)")

// Adapter implements port.Clipboard.
type Adapter struct {
	read  func() (string, error)
	write func(string) error
}

// New returns an adapter for the system clipboard. Without a backend
// every call fails with ErrUnavailable.
func New() *Adapter {
	if clipboard.Unsupported {
		return &Adapter{
			read:  func() (string, error) { return "", ErrUnavailable },
			write: func(string) error { return ErrUnavailable },
		}
	}
	return &Adapter{read: clipboard.ReadAll, write: clipboard.WriteAll}
}

// WriteText implements port.Clipboard.
func (a *Adapter) WriteText(ctx context.Context, text string) error {
	if err := a.write(text); err != nil {
		logging.FromContext(ctx).Warn().Err(err).Msg("clipboard write failed")
		return fmt.Errorf("clipboard write: %w", err)
	}
	logging.FromContext(ctx).Debug().Int("length", len(text)).Msg("copied to clipboard")
	return nil
}

// ReadText implements port.Clipboard.
func (a *Adapter) ReadText(ctx context.Context) (string, error) {
	text, err := a.read()
	if err != nil {
		logging.FromContext(ctx).Debug().Err(err).Msg("clipboard read failed")
		return "", fmt.Errorf("clipboard read: %w", err)
	}
	return text, nil
}

var _ port.Clipboard = (*Adapter)(nil)
