// Package commands implements the CLI commands for slotcheck.
package commands

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/thoreinstein/slotcheck/cmd"
	"github.com/thoreinstein/slotcheck/internal/config"
	"github.com/thoreinstein/slotcheck/internal/errors"
	"github.com/thoreinstein/slotcheck/internal/logging"
	"github.com/thoreinstein/slotcheck/internal/preset"
)

// verbosity holds the count of -v flags.
var verbosity int

// quiet holds the value of the -q/--quiet flag.
var quiet bool

// logFormat holds the value of the --log-format flag.
var logFormat string

// logFile holds the path to the log file.
var logFile string

// configFile holds the value of the --config flag.
var configFile string

// loadedConfig and configLoadErr hold the result of config loading.
var (
	loadedConfig  *config.Config
	configLoadErr error
)

// logCloser releases the --log-file handle after the command runs.
var logCloser io.Closer

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v",
		"increase verbosity level (e.g., -v, -vv, -vvv)")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false,
		"suppress non-error output")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "text",
		"log format: text, json")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "",
		"write logs to file in JSON format")
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "",
		"config file (default: ./config.yaml or the slotcheck config directory)")

	rootCmd.Version = cmd.Version
	rootCmd.SetVersionTemplate("slotcheck version {{.Version}}\n")

	// Silence errors and usage so we can control error output
	rootCmd.SilenceErrors = true
	rootCmd.SilenceUsage = true
}

func initConfig() {
	config.Init()
	loadedConfig, configLoadErr = config.Load(configFile)
}

var rootCmd = &cobra.Command{
	Use:   "slotcheck",
	Short: "Check characters against input-mask slot validators",
	Long: `slotcheck evaluates the character validators used by formatted input
fields such as phone-number or date masks.

Each slot of a mask owns a set of validators. A character is acceptable in
the slot when any validator in the set accepts it. slotcheck ships presets
for the common slot kinds (digits, maskable digits, Latin and Cyrillic
letters) and reads additional sets from its configuration file.`,
	Example: `  # Check a string against the maskable digit preset
  slotcheck check --set maskable_digit "12XX-**34"

  # Show which presets accept each character
  slotcheck classify "7xБ#"

  # List available sets
  slotcheck sets list

  See Also: slotcheck sets, slotcheck config`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := setupLogging(cmd); err != nil {
			return err
		}
		return checkConfigLoaded(cmd)
	},
	PersistentPostRunE: func(_ *cobra.Command, _ []string) error {
		if logCloser == nil {
			return nil
		}
		err := logCloser.Close()
		logCloser = nil
		return errors.Wrap(err, "closing log file")
	},
	Run: func(cmd *cobra.Command, args []string) {
		_ = cmd.Help()
	},
}

// setupLogging configures the default logger based on verbosity flags.
func setupLogging(cmd *cobra.Command) error {
	if quiet && verbosity > 0 {
		return errors.NewUserError(errors.New("cannot use --quiet and --verbose together"), "")
	}

	format, err := logging.ParseFormat(logFormat)
	if err != nil {
		return errors.NewUserError(err, "Use --log-format text or --log-format json")
	}

	level := logging.LevelFromVerbosity(effectiveVerbosity())
	if quiet {
		level = slog.LevelError
	}

	logger, closer, err := logging.Setup(logging.Options{
		Level:  level,
		Format: format,
		Output: cmd.ErrOrStderr(),
		File:   logFile,
	})
	if err != nil {
		return errors.NewUserError(err, "Check the --log-file path")
	}
	logCloser = closer
	slog.SetDefault(logger)

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	cmd.SetContext(logging.NewContext(ctx, logger))
	return nil
}

// effectiveVerbosity returns the -v count, falling back to SLOTCHECK_DEBUG
// when no flag was given.
func effectiveVerbosity() int {
	if verbosity > 0 {
		return verbosity
	}
	switch os.Getenv("SLOTCHECK_DEBUG") {
	case "1", "true":
		return 2 // Debug
	case "2":
		return 3 // Trace
	}
	return 0
}

// checkConfigLoaded reports config load errors for commands that need config.
func checkConfigLoaded(cmd *cobra.Command) error {
	switch cmd.Name() {
	case "help", "version", "path", "gen-doc", "doctor":
		return nil
	}
	if configLoadErr != nil {
		return errors.NewConfigError(configLoadErr)
	}
	return nil
}

// currentConfig returns the loaded configuration or the defaults.
func currentConfig() *config.Config {
	if loadedConfig == nil {
		return config.Default()
	}
	return loadedConfig
}

// currentRegistry builds the set registry from the loaded configuration.
func currentRegistry(ctx context.Context) (*preset.Registry, error) {
	r, err := currentConfig().Registry(ctx)
	if err != nil {
		return nil, errors.NewConfigError(err)
	}
	return r, nil
}

// Execute runs the root command and prints any error with its suggestion
// and hints to stderr.
func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		printError(os.Stderr, err)
	}
	return err
}

func printError(w io.Writer, err error) {
	// Rejections are already reported by the check output.
	if errors.Is(err, errors.ErrRejected) {
		return
	}
	fmt.Fprintf(w, "%s %v\n", color.RedString("Error:"), err)

	var exitErr *errors.ExitError
	if errors.As(err, &exitErr) && exitErr.Suggestion != "" {
		fmt.Fprintf(w, "  %s\n", exitErr.Suggestion)
	}
	for _, hint := range errors.GetAllHints(err) {
		fmt.Fprintf(w, "  hint: %s\n", hint)
	}
}
