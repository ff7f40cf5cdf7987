// Package cmd provides Cobra CLI commands for tabshell.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/bnema/tabshell/internal/cli"
	"github.com/bnema/tabshell/internal/domain/build"
)

var (
	app       *cli.App
	buildInfo build.Info
	rootCmd   = newRootCmd()
)

func newRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tabshell",
		Short: "A minimal tabbed browser shell in your terminal",
		Long: `tabshell - a keyboard-driven browser shell.

The terminal hosts the chrome: tab strip, address bar, navigation buttons,
sidebar widgets and settings. Pages render in Chromium, driven over the
DevTools protocol.

Use 'tabshell browse' to open the browser, or explore the subcommands to
manage saved sessions, history and configuration.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// The browser opens its own store; help and version need none.
			switch cmd.Name() {
			case "help", "completion", "browse", "version", "tabshell":
				return nil
			}

			var err error
			app, err = cli.NewApp()
			if err != nil {
				return fmt.Errorf("initialize app: %w", err)
			}
			app.BuildInfo = buildInfo
			return nil
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			if app != nil {
				_ = app.Close()
				app = nil
			}
		},
	}
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// GetApp returns the initialized app (for use by subcommands).
func GetApp() *cli.App {
	return app
}

// SetBuildInfo sets the build information (called from main before Execute).
func SetBuildInfo(info build.Info) {
	buildInfo = info
}

func requireApp() (*cli.App, error) {
	if app == nil {
		return nil, fmt.Errorf("app not initialized")
	}
	return app, nil
}
