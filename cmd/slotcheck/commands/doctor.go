package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/thoreinstein/slotcheck/internal/config"
	"github.com/thoreinstein/slotcheck/internal/doctor"
	"github.com/thoreinstein/slotcheck/internal/errors"
	"github.com/thoreinstein/slotcheck/internal/paths"
)

var (
	doctorJSON bool
	doctorAll  bool
	doctorFix  bool
)

func init() {
	doctorCmd.Flags().BoolVar(&doctorJSON, "json", false,
		"output results as JSON")
	doctorCmd.Flags().BoolVar(&doctorAll, "all", false,
		"show every check, including passed ones")
	doctorCmd.Flags().BoolVar(&doctorFix, "fix", false,
		"repair fixable permission issues")
	rootCmd.AddCommand(doctorCmd)
}

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Diagnose configuration issues",
	Long: `Run diagnostic checks on the slotcheck configuration.

Unlike other commands, doctor runs even when the config file fails to load,
and it reports every validation error instead of the first one. Configured
sets are linted for surprising behavior, such as a letter validator with a
single alphabet that also accepts digits.

Exit codes:
  0 - No errors or warnings
  1 - Warnings present, no errors
  2 - Errors present`,
	Example: `  slotcheck doctor
  slotcheck doctor --all
  slotcheck doctor --fix
  slotcheck doctor --config ./slots.toml --json`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		file := configFile
		if file == "" {
			file = config.FileUsed()
		}
		opts := doctorOptions{JSON: doctorJSON, All: doctorAll, Fix: doctorFix}
		return runDoctor(cmd.Context(), cmd.OutOrStdout(), newDoctorRunner(paths.ConfigDir(), file), opts)
	},
}

// doctorOptions carries the flag values of the doctor command.
type doctorOptions struct {
	JSON bool
	All  bool
	Fix  bool
}

// errDoctorWarnings and errDoctorErrors carry the doctor exit codes.
var (
	errDoctorWarnings = errors.New("warnings found")
	errDoctorErrors   = errors.New("errors found")
)

func newDoctorRunner(dir, file string) *doctor.Runner {
	runner := doctor.NewRunner()
	runner.AddCheck(doctor.NewConfigSyntaxCheck(file))
	runner.AddCheck(doctor.NewConfigValidationCheck(file))
	runner.AddCheck(doctor.NewSetLintCheck(file))
	runner.AddCheck(doctor.NewPathPermissionCheck(dir, file))
	return runner
}

func runDoctor(ctx context.Context, w io.Writer, runner *doctor.Runner, opts doctorOptions) error {
	report := runner.Run(ctx)

	var fixes []doctor.FixResult
	if opts.Fix {
		for _, check := range runner.Checks() {
			if fixer, ok := check.(doctor.Fixer); ok && fixer.CanFix() {
				fixes = append(fixes, fixer.Fix()...)
			}
		}
		if len(fixes) > 0 {
			// Re-run so the report reflects the repaired state.
			report = runner.Run(ctx)
		}
	}

	if opts.JSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		out := struct {
			*doctor.Report
			Fixes []doctor.FixResult `json:"fixes,omitempty"`
		}{report, fixes}
		if err := enc.Encode(out); err != nil {
			return errors.Wrap(err, "encoding JSON")
		}
	} else {
		printDoctorText(w, report, fixes, opts.All)
	}

	if report.HasErrors() {
		return errors.NewExitError(errDoctorErrors, errors.ExitSystem)
	}
	if report.HasWarnings() {
		return errors.NewExitError(errDoctorWarnings, errors.ExitUser)
	}
	return nil
}

func printDoctorText(w io.Writer, report *doctor.Report, fixes []doctor.FixResult, showAll bool) {
	for _, f := range fixes {
		if f.Fixed {
			fmt.Fprintf(w, "%s fixed %s: %s\n", color.GreenString("✓"), f.Path, f.Description)
		} else {
			fmt.Fprintf(w, "%s could not fix %s: %s\n", color.RedString("✗"), f.Path, f.Description)
		}
	}

	hasOutput := len(fixes) > 0
	for _, result := range report.Results {
		problem := result.Status == doctor.SeverityError || result.Status == doctor.SeverityWarning
		if !showAll && !problem {
			continue
		}

		hasOutput = true
		fmt.Fprintf(w, "%s [%s] %s: %s\n", statusIcon(result.Status), result.Category, result.Name, result.Message)
		for _, line := range detailLines(result) {
			fmt.Fprintf(w, "    %s\n", line)
		}
		if result.FixHint != "" && problem {
			fmt.Fprintf(w, "  hint: %s\n", result.FixHint)
		}
	}

	if hasOutput {
		fmt.Fprintln(w)
	}
	fmt.Fprintf(w, "Summary: %d passed, %d info, %d warnings, %d errors\n",
		report.Summary.Passed, report.Summary.Info, report.Summary.Warnings, report.Summary.Errors)
}

// detailLines flattens the per-item details a check attaches.
func detailLines(result *doctor.CheckResult) []string {
	var lines []string
	if errs, ok := result.Details["errors"].([]string); ok {
		lines = append(lines, errs...)
	}
	if issues, ok := result.Details["issues"].([]map[string]any); ok {
		for _, issue := range issues {
			lines = append(lines, fmt.Sprintf("%v: %v", issue["path"], issue["problem"]))
		}
	}
	if findings, ok := result.Details["findings"].([]doctor.SetFinding); ok {
		for _, f := range findings {
			lines = append(lines, f.String())
		}
	}
	return lines
}

func statusIcon(s doctor.Severity) string {
	switch s {
	case doctor.SeverityPass:
		return color.GreenString("✓")
	case doctor.SeverityInfo:
		return color.CyanString("ℹ")
	case doctor.SeverityWarning:
		return color.YellowString("⚠")
	case doctor.SeverityError:
		return color.RedString("✗")
	default:
		return "?"
	}
}
