package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/bnema/tabshell/internal/cli"
	"github.com/bnema/tabshell/internal/cli/styles"
	"github.com/bnema/tabshell/internal/domain/entity"
	"github.com/bnema/tabshell/internal/infrastructure/config"
)

// Clear targets, in the order `all` runs them.
const (
	clearHistory  = "history"
	clearSessions = "sessions"
	clearWidgets  = "widgets"
	clearProfile  = "profile"
	clearAll      = "all"
)

var clearTargets = []string{clearHistory, clearSessions, clearWidgets, clearProfile}

var clearYes bool

var clearCmd = &cobra.Command{
	Use:   "clear [history|sessions|widgets|profile|cache|all]",
	Short: "Delete stored browsing data",
	Long: `Delete data tabshell keeps on disk. Close the browser first.

  history   visited pages
  sessions  sessions saved from the sidebar
  widgets   clipboard history and notes
  profile   the Chromium profile: cookies, cache and site storage
            ('cache' is an alias)
  all       everything above (the default)`,
	Args:      cobra.MaximumNArgs(1),
	ValidArgs: append(slices.Clone(clearTargets), "cache", clearAll),
	RunE:      runClear,
}

func init() {
	rootCmd.AddCommand(clearCmd)
	clearCmd.Flags().BoolVarP(&clearYes, "yes", "y", false, "skip confirmation prompt")
}

// resolveClearTargets expands the argument to concrete targets.
func resolveClearTargets(args []string) ([]string, error) {
	target := clearAll
	if len(args) > 0 {
		target = strings.ToLower(strings.TrimSpace(args[0]))
	}
	switch target {
	case clearAll:
		return clearTargets, nil
	case "cache":
		return []string{clearProfile}, nil
	}
	if slices.Contains(clearTargets, target) {
		return []string{target}, nil
	}
	return nil, fmt.Errorf("unknown target %q: expected one of %s", target, strings.Join(append(slices.Clone(clearTargets), clearAll), ", "))
}

func runClear(cmd *cobra.Command, args []string) error {
	app, err := requireApp()
	if err != nil {
		return err
	}
	targets, err := resolveClearTargets(args)
	if err != nil {
		return err
	}

	if !clearYes {
		ok, err := confirm(cmd, app.Theme, fmt.Sprintf("Delete %s?", strings.Join(targets, ", ")))
		if err != nil {
			return err
		}
		if !ok {
			_, err = fmt.Fprintln(cmd.OutOrStdout(), app.Theme.Subtle.Render("Nothing deleted."))
			return err
		}
	}

	out := cmd.OutOrStdout()
	var errs []error
	for _, target := range targets {
		msg, err := clearTarget(app.Ctx(), app, target)
		if err != nil {
			errs = append(errs, err)
			_, _ = fmt.Fprintln(out, app.Theme.RenderError(err))
			continue
		}
		_, _ = fmt.Fprintln(out, app.Theme.RenderSuccess(msg))
	}
	return errors.Join(errs...)
}

func clearTarget(ctx context.Context, app *cli.App, target string) (string, error) {
	switch target {
	case clearHistory:
		if err := app.HistoryUC.Clear(ctx); err != nil {
			return "", err
		}
		return "History cleared", nil
	case clearSessions:
		if err := app.SessionsUC.Clear(ctx); err != nil {
			return "", err
		}
		return "Saved sessions cleared", nil
	case clearWidgets:
		if err := errors.Join(app.ClipboardUC.Clear(ctx), app.NotesUC.Save(ctx, "")); err != nil {
			return "", err
		}
		return "Clipboard history and notes cleared", nil
	case clearProfile:
		return clearProfileDir(ctx, app)
	}
	return "", fmt.Errorf("unknown target %q", target)
}

func clearProfileDir(ctx context.Context, app *cli.App) (string, error) {
	dir := app.Config.Browser.UserDataDir
	if dir == "" {
		var err error
		if dir, err = config.GetBrowserProfileDir(); err != nil {
			return "", err
		}
	}
	target, err := app.PurgeUC.Inspect(ctx, entity.PurgeTargetProfile, dir)
	if err != nil {
		return "", err
	}
	if !target.Exists {
		return "Browser profile already empty", nil
	}
	if err := app.PurgeUC.Purge(ctx, target); err != nil {
		return "", err
	}
	return fmt.Sprintf("Browser profile removed (%s freed)", humanize.Bytes(uint64(max(target.Size, 0)))), nil
}

func confirm(cmd *cobra.Command, theme *styles.Theme, message string) (bool, error) {
	return runConfirm(cmd.InOrStdin(), cmd.ErrOrStderr(), theme, message)
}

func runConfirm(in io.Reader, out io.Writer, theme *styles.Theme, message string) (bool, error) {
	p := tea.NewProgram(styles.NewConfirm(theme, message), tea.WithInput(in), tea.WithOutput(out))
	final, err := p.Run()
	if err != nil {
		return false, fmt.Errorf("confirm: %w", err)
	}
	m, ok := final.(styles.ConfirmModel)
	return ok && m.Accepted(), nil
}
