package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

const defaultHistoryLimit = 20

var (
	historyJSON  bool
	historyLimit int
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recently visited pages",
	Args:  cobra.NoArgs,
	RunE:  runHistory,
}

func init() {
	rootCmd.AddCommand(historyCmd)
	historyCmd.Flags().BoolVar(&historyJSON, "json", false, "output as JSON")
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", defaultHistoryLimit, "maximum entries to show")
}

func runHistory(cmd *cobra.Command, _ []string) error {
	app, err := requireApp()
	if err != nil {
		return err
	}
	entries, err := app.HistoryUC.Recent(app.Ctx(), historyLimit)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if historyJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(entries)
	}
	_, err = fmt.Fprintln(out, app.Theme.RenderHistory(entries))
	return err
}
