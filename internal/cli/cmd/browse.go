package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

// BrowseOptions carries the browse command line to the host window.
type BrowseOptions struct {
	URLs []string
	// Restore reopens the tabs autosaved by the previous run.
	Restore bool
}

// BrowseFunc starts the host window and blocks until it closes.
type BrowseFunc func(ctx context.Context, opts BrowseOptions) error

var (
	browseFunc    BrowseFunc
	browseRestore bool
)

var browseCmd = &cobra.Command{
	Use:   "browse [url...]",
	Short: "Open the browser",
	Long: `Open the terminal host window and its Chromium content views.

Each argument opens in its own tab; the first one is active. Arguments go
through the address bar formatter, so bare domains and search terms work.

Examples:
  tabshell browse                      # Open the home page
  tabshell browse example.com          # Open https://example.com
  tabshell browse go.dev "!gh cobra"   # Two tabs, the second a bang search
  tabshell browse --restore            # Reopen the last session`,
	RunE: runBrowse,
}

func init() {
	rootCmd.AddCommand(browseCmd)
	browseCmd.Flags().BoolVarP(&browseRestore, "restore", "r", false, "reopen the tabs of the previous run")
}

// SetBrowseFunc registers the host window launcher (called from main).
func SetBrowseFunc(fn BrowseFunc) {
	browseFunc = fn
}

func runBrowse(cmd *cobra.Command, args []string) error {
	if browseFunc == nil {
		return fmt.Errorf("browser not available in this build")
	}
	return browseFunc(cmd.Context(), BrowseOptions{
		URLs:    args,
		Restore: browseRestore,
	})
}
