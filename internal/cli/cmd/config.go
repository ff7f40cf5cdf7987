package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/tabshell/internal/cli/styles"
	"github.com/bnema/tabshell/internal/infrastructure/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect configuration",
	Long: `Show where tabshell keeps its files and the configuration in effect.

The file is created with defaults on first run. TABSHELL_* environment
variables override it, e.g. TABSHELL_BROWSER_HOME_URL.`,
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Show config, database and log locations",
	Args:  cobra.NoArgs,
	RunE:  runConfigPath,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration as TOML",
	Args:  cobra.NoArgs,
	RunE:  runConfigShow,
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configPathCmd)
	configCmd.AddCommand(configShowCmd)
}

func runConfigPath(cmd *cobra.Command, _ []string) error {
	app, err := requireApp()
	if err != nil {
		return err
	}
	logDir, err := config.GetLogDir()
	if err != nil {
		return err
	}
	r := styles.NewConfigRenderer(app.Theme)
	_, err = fmt.Fprintln(cmd.OutOrStdout(), r.RenderPaths(app.ConfigFile, app.Config.Database.Path, logDir))
	return err
}

func runConfigShow(cmd *cobra.Command, _ []string) error {
	app, err := requireApp()
	if err != nil {
		return err
	}
	data, err := config.Encode(app.Config)
	if err != nil {
		return err
	}
	r := styles.NewConfigRenderer(app.Theme)
	_, err = fmt.Fprintln(cmd.OutOrStdout(), r.RenderTOML(app.ConfigFile, data))
	return err
}
