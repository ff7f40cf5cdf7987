package cmd

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/bnema/tabshell/internal/cli/styles"
	"github.com/bnema/tabshell/internal/domain/entity"
)

var (
	sessionsJSON    bool
	sessionsVerbose bool
)

var sessionsCmd = &cobra.Command{
	Use:   "sessions",
	Short: "Manage saved sessions",
	Long: `View and delete the sessions saved from the sidebar.

Sessions are numbered newest first, the same order the sidebar shows.`,
}

var sessionsListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List saved sessions",
	Args:    cobra.NoArgs,
	RunE:    runSessionsList,
}

var sessionsDeleteCmd = &cobra.Command{
	Use:     "delete <number>",
	Aliases: []string{"rm"},
	Short:   "Delete a saved session",
	Args:    cobra.ExactArgs(1),
	RunE:    runSessionsDelete,
}

func init() {
	rootCmd.AddCommand(sessionsCmd)
	sessionsCmd.AddCommand(sessionsListCmd)
	sessionsCmd.AddCommand(sessionsDeleteCmd)
	sessionsListCmd.Flags().BoolVar(&sessionsJSON, "json", false, "output as JSON")
	sessionsListCmd.Flags().BoolVarP(&sessionsVerbose, "verbose", "v", false, "list every address")
}

type sessionsOutput struct {
	Sessions []entity.SessionSnapshot `json:"sessions"`
	Last     *entity.SessionSnapshot  `json:"last,omitempty"`
}

func runSessionsList(cmd *cobra.Command, _ []string) error {
	app, err := requireApp()
	if err != nil {
		return err
	}
	ctx := app.Ctx()

	sessions, err := app.SessionsUC.List(ctx)
	if err != nil {
		return err
	}
	var last *entity.SessionSnapshot
	if snap, found, lastErr := app.SessionsUC.Last(ctx); lastErr == nil && found {
		last = &snap
	}

	out := cmd.OutOrStdout()
	if sessionsJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(sessionsOutput{Sessions: sessions, Last: last})
	}

	r := styles.NewSessionsRenderer(app.Theme)
	r.Verbose = sessionsVerbose
	_, err = fmt.Fprintln(out, r.RenderList(sessions, last))
	return err
}

func runSessionsDelete(cmd *cobra.Command, args []string) error {
	app, err := requireApp()
	if err != nil {
		return err
	}
	number, err := parseSessionNumber(args[0])
	if err != nil {
		return err
	}
	if err := app.SessionsUC.Delete(app.Ctx(), number-1); err != nil {
		return err
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), styles.NewSessionsRenderer(app.Theme).RenderDeleted(number))
	return err
}

// parseSessionNumber parses the 1-based number shown by `sessions list`.
func parseSessionNumber(arg string) (int, error) {
	n, err := strconv.Atoi(arg)
	if err != nil || n < 1 {
		return 0, fmt.Errorf("invalid session number %q: use the number shown by 'tabshell sessions list'", arg)
	}
	return n, nil
}
