package commands

import (
	"context"
	"io"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"github.com/thoreinstein/slotcheck/internal/config"
	"github.com/thoreinstein/slotcheck/internal/errors"
	"github.com/thoreinstein/slotcheck/internal/logging"
	"github.com/thoreinstein/slotcheck/internal/preset"
	"github.com/thoreinstein/slotcheck/internal/validator"
	"github.com/thoreinstein/slotcheck/pkg/fileutil"
)

var (
	checkSet         string
	checkFile        string
	checkJSON        bool
	checkInteractive bool
)

func init() {
	checkCmd.Flags().StringVarP(&checkSet, "set", "s", "",
		"validator set to check against (default: default_set from config)")
	checkCmd.Flags().StringVarP(&checkFile, "file", "f", "",
		"read the text from a file, or - for stdin")
	checkCmd.Flags().BoolVar(&checkJSON, "json", false,
		"output results as JSON")
	checkCmd.Flags().BoolVarP(&checkInteractive, "interactive", "i", false,
		"pick the validator set interactively")
	rootCmd.AddCommand(checkCmd)
}

var checkCmd = &cobra.Command{
	Use:   "check [text]",
	Short: "Check each character of a text against a validator set",
	Long: `Check every character of the given text against a validator set.

Characters are judged one at a time and independently: a character is
accepted when any validator in the set accepts it. Trailing line breaks of
text read with --file are ignored.

Exit codes:
  0 - Every character accepted
  1 - At least one character rejected, or invalid input`,
	Example: `  # Check with the default set from config
  slotcheck check "+7 (999) 123"

  # Check against a preset
  slotcheck check --set maskable_digit "**** 1234"

  # Read from stdin and emit JSON
  echo "АБВ" | slotcheck check --set russian --file - --json

  # Choose the set with a fuzzy finder
  slotcheck check -i "1234"

  See Also:
    slotcheck sets list  - Available sets
    slotcheck classify   - Per-character overview`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		registry, err := currentRegistry(ctx)
		if err != nil {
			return err
		}
		opts := checkOptions{
			Set:         checkSet,
			File:        checkFile,
			JSON:        checkJSON,
			Interactive: checkInteractive,
		}
		if len(args) == 1 {
			opts.Text = &args[0]
		}
		return runCheck(ctx, cmd.InOrStdin(), cmd.OutOrStdout(), registry, currentConfig(), opts)
	},
}

// checkOptions carries the flag values of the check command.
type checkOptions struct {
	Text        *string
	Set         string
	File        string
	JSON        bool
	Interactive bool
}

// pickSet selects a set name interactively. Tests replace it.
var pickSet = fuzzyPickSet

func runCheck(ctx context.Context, stdin io.Reader, w io.Writer, registry *preset.Registry, cfg *config.Config, opts checkOptions) error {
	logger := logging.FromContext(ctx)

	text, err := checkInput(stdin, opts)
	if err != nil {
		return err
	}

	name := strings.ToLower(opts.Set)
	if opts.Interactive {
		name, err = pickSet(registry)
		if errors.Is(err, errPickAborted) {
			return nil
		}
		if err != nil {
			return errors.NewSystemError(err, "")
		}
	}
	if name == "" {
		name = cfg.DefaultSet
	}

	set, err := registry.Lookup(name)
	if err != nil {
		return errors.NewUserError(err, "")
	}

	result := validator.Check(set, text)
	result.Set = name

	if logger.Enabled(ctx, logging.LevelTrace) {
		for _, v := range result.Verdicts {
			logger.Log(ctx, logging.LevelTrace, "rune checked",
				slog.Int("index", v.Index),
				slog.String("char", v.Char),
				slog.Bool("accepted", v.Accepted))
		}
	}
	logger.Info("check finished",
		"set", name,
		"runes", len(result.Verdicts),
		"rejected", len(result.Rejected()))

	format, err := validator.ParseFormat(cfg.Format)
	if err != nil {
		return errors.NewConfigError(err)
	}
	if opts.JSON {
		format = validator.FormatJSON
	}
	if err := validator.NewReporter(w, format).Report(result); err != nil {
		return errors.NewSystemError(err, "")
	}

	if !result.Accepted() {
		return errors.NewExitError(errors.ErrRejected, errors.ExitUser)
	}
	return nil
}

func checkInput(stdin io.Reader, opts checkOptions) (string, error) {
	switch {
	case opts.Text != nil && opts.File != "":
		return "", errors.NewUserError(errors.New("text argument and --file are mutually exclusive"), "")
	case opts.Text != nil:
		return *opts.Text, nil
	case opts.File != "":
		data, err := fileutil.ReadInput(opts.File, stdin)
		if err != nil {
			return "", errors.NewUserError(err, "Check the --file path")
		}
		return strings.TrimRight(string(data), "\r\n"), nil
	default:
		return "", errors.NewUserError(errors.New("no text to check"), "Pass the text as an argument or use --file")
	}
}
