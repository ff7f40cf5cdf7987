// Package picker asks the user for a directory, preferring the XDG desktop
// portal and falling back to zenity or kdialog.
package picker

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"os/exec"
	"strings"

	"github.com/bnema/tabshell/internal/application/port"
	"github.com/bnema/tabshell/internal/logging"
	"github.com/godbus/dbus/v5"
)

const (
	portalDest        = "org.freedesktop.portal.Desktop"
	portalPath        = "/org/freedesktop/portal/desktop"
	fileChooserIface  = "org.freedesktop.portal.FileChooser"
	requestIface      = "org.freedesktop.portal.Request"
	responseSuccess   = 0
	responseCancelled = 1
)

// ErrNoPicker is returned when neither the portal nor a dialog tool is available.
var ErrNoPicker = errors.New("no directory picker available")

// Picker implements port.DirectoryPicker.
type Picker struct {
	// lookPath and run are swapped in tests.
	lookPath func(string) (string, error)
	run      func(ctx context.Context, name string, args ...string) (string, error)
	portal   func(ctx context.Context, title, start string) (string, error)
}

// New creates a directory picker.
func New() *Picker {
	return &Picker{
		lookPath: exec.LookPath,
		run:      runOutput,
		portal:   portalPick,
	}
}

// PickDirectory returns the chosen directory, or "" when the user cancels.
func (p *Picker) PickDirectory(ctx context.Context, title, start string) (string, error) {
	log := logging.FromContext(ctx)

	dir, err := p.portal(ctx, title, start)
	if err == nil {
		return dir, nil
	}
	log.Debug().Err(err).Msg("portal file chooser unavailable, trying dialog tools")

	if path, lookErr := p.lookPath("zenity"); lookErr == nil {
		args := []string{"--file-selection", "--directory", "--title=" + title}
		if start != "" {
			args = append(args, "--filename="+strings.TrimSuffix(start, "/")+"/")
		}
		return p.runDialog(ctx, path, args...)
	}
	if path, lookErr := p.lookPath("kdialog"); lookErr == nil {
		return p.runDialog(ctx, path, "--getexistingdirectory", start, "--title", title)
	}
	return "", ErrNoPicker
}

// runDialog treats a non-zero exit as cancellation, which is how both
// zenity and kdialog report a dismissed dialog.
func (p *Picker) runDialog(ctx context.Context, name string, args ...string) (string, error) {
	out, err := p.run(ctx, name, args...)
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return "", nil
		}
		return "", fmt.Errorf("%s: %w", name, err)
	}
	return strings.TrimSpace(out), nil
}

func runOutput(ctx context.Context, name string, args ...string) (string, error) {
	out, err := exec.CommandContext(ctx, name, args...).Output()
	return string(out), err
}

// portalPick calls FileChooser.OpenFile with directory=true and waits for
// the Response signal on the returned request handle.
func portalPick(ctx context.Context, title, start string) (string, error) {
	conn, err := dbus.ConnectSessionBus()
	if err != nil {
		return "", fmt.Errorf("session bus: %w", err)
	}
	defer func() { _ = conn.Close() }()

	signals := make(chan *dbus.Signal, 4)
	conn.Signal(signals)
	if err := conn.AddMatchSignal(
		dbus.WithMatchInterface(requestIface),
		dbus.WithMatchMember("Response"),
	); err != nil {
		return "", fmt.Errorf("add match: %w", err)
	}

	options := map[string]dbus.Variant{
		"directory": dbus.MakeVariant(true),
		"modal":     dbus.MakeVariant(true),
	}
	if start != "" {
		options["current_folder"] = dbus.MakeVariant(append([]byte(start), 0))
	}

	var handle dbus.ObjectPath
	obj := conn.Object(portalDest, portalPath)
	if err := obj.CallWithContext(ctx, fileChooserIface+".OpenFile", 0, "", title, options).Store(&handle); err != nil {
		return "", fmt.Errorf("portal open file: %w", err)
	}

	for {
		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case sig, ok := <-signals:
			if !ok {
				return "", errors.New("session bus closed")
			}
			if sig.Path != handle || sig.Name != requestIface+".Response" || len(sig.Body) < 2 {
				continue
			}
			return decodeResponse(sig.Body)
		}
	}
}

// decodeResponse extracts the first selected directory from a portal Response body.
func decodeResponse(body []any) (string, error) {
	code, _ := body[0].(uint32)
	switch code {
	case responseSuccess:
	case responseCancelled:
		return "", nil
	default:
		return "", fmt.Errorf("portal response code %d", code)
	}

	results, _ := body[1].(map[string]dbus.Variant)
	uris, _ := results["uris"].Value().([]string)
	if len(uris) == 0 {
		return "", nil
	}
	u, err := url.Parse(uris[0])
	if err != nil || u.Scheme != "file" {
		return "", fmt.Errorf("unexpected portal uri %q", uris[0])
	}
	return u.Path, nil
}

var _ port.DirectoryPicker = (*Picker)(nil)
