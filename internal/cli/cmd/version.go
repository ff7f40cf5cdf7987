package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/tabshell/internal/cli/styles"
)

var versionShort bool

var versionCmd = &cobra.Command{
	Use:     "version",
	Aliases: []string{"about"},
	Short:   "Show version and build information",
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		out := cmd.OutOrStdout()
		if versionShort {
			_, err := fmt.Fprintln(out, buildInfo.String())
			return err
		}
		_, err := fmt.Fprintln(out, styles.NewAboutRenderer(styles.NewTheme()).Render(buildInfo))
		return err
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
	versionCmd.Flags().BoolVarP(&versionShort, "short", "s", false, "print a single line")
}
