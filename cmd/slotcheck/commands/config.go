package commands

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/thoreinstein/slotcheck/internal/config"
	"github.com/thoreinstein/slotcheck/internal/errors"
	"github.com/thoreinstein/slotcheck/internal/paths"
	"github.com/thoreinstein/slotcheck/pkg/fileutil"
)

var configShowFormat string

func init() {
	configShowCmd.Flags().StringVar(&configShowFormat, "format", "yaml",
		"output encoding: yaml, toml, json")

	configCmd.AddCommand(configPathCmd, configShowCmd)
	rootCmd.AddCommand(configCmd)
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect slotcheck configuration",
	Long: `Inspect the slotcheck configuration.

The config file is searched in the current directory and then in the
slotcheck config directory. Values can be overridden with SLOTCHECK_*
environment variables, for example SLOTCHECK_DEFAULT_SET=digit.`,
	Example: `  # Where is the config file?
  slotcheck config path

  # Print the effective configuration
  slotcheck config show

See Also: slotcheck sets export`,
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print config file locations",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return runConfigPath(cmd.OutOrStdout(), paths.ConfigFile(), config.FileUsed())
	},
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration",
	Long: `Print the configuration after defaults, the config file, and environment
overrides have been applied.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return runConfigShow(cmd.OutOrStdout(), currentConfig(), configShowFormat)
	},
}

func runConfigPath(w io.Writer, defaultFile, used string) error {
	fmt.Fprintf(w, "default: %s\n", defaultFile)
	if used == "" {
		used = "(none, using defaults)"
	}
	fmt.Fprintf(w, "loaded:  %s\n", used)
	return nil
}

func runConfigShow(w io.Writer, cfg *config.Config, format string) error {
	enc, err := fileutil.ParseEncoding(format)
	if err != nil {
		return errors.NewUserError(err, "")
	}
	data, err := fileutil.Encode(enc, cfg)
	if err != nil {
		return errors.NewSystemError(err, "")
	}
	_, err = w.Write(data)
	return errors.Wrap(err, "writing output")
}
