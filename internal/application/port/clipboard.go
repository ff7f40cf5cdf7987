package port

import "context"

// Clipboard is the system clipboard as seen by the clipboard widget.
type Clipboard interface {
	// ReadText returns the current text, empty when the clipboard holds
	// something else.
	ReadText(ctx context.Context) (string, error)
	WriteText(ctx context.Context, text string) error
}
