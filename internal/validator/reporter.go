package validator

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/thoreinstein/slotcheck/internal/errors"
)

// Format specifies the output format for check reports.
type Format string

const (
	// FormatText produces human-readable text output.
	FormatText Format = "text"
	// FormatJSON produces machine-readable JSON output.
	FormatJSON Format = "json"
)

// ParseFormat converts s to a Format. An empty string selects FormatText.
func ParseFormat(s string) (Format, error) {
	switch Format(strings.ToLower(s)) {
	case "", FormatText:
		return FormatText, nil
	case FormatJSON:
		return FormatJSON, nil
	default:
		return "", errors.Wrapf(errors.ErrInvalidFormat, "%q (valid: text, json)", s)
	}
}

// Reporter formats and writes check results.
type Reporter struct {
	out    io.Writer
	format Format
}

// NewReporter creates a new Reporter.
func NewReporter(out io.Writer, format Format) *Reporter {
	return &Reporter{
		out:    out,
		format: format,
	}
}

// Report writes the check result to the output.
func (r *Reporter) Report(result *CheckResult) error {
	if result == nil {
		return nil
	}

	switch r.format {
	case FormatJSON:
		return r.reportJSON(result)
	default:
		return r.reportText(result)
	}
}

type jsonReport struct {
	*CheckResult
	Accepted bool `json:"accepted"`
}

func (r *Reporter) reportJSON(result *CheckResult) error {
	encoder := json.NewEncoder(r.out)
	encoder.SetIndent("", "  ")
	report := jsonReport{CheckResult: result, Accepted: result.Accepted()}
	return errors.Wrap(encoder.Encode(report), "encoding JSON report")
}

func (r *Reporter) reportText(result *CheckResult) error {
	total := len(result.Verdicts)
	label := ""
	if result.Set != "" {
		label = fmt.Sprintf(" by set %q", result.Set)
	}

	rejected := result.Rejected()
	if len(rejected) == 0 {
		fmt.Fprintln(r.out, color.GreenString("✓ %d character(s) accepted%s", total, label))
		return nil
	}

	fmt.Fprintf(r.out, "%s %s\n\n",
		color.RedString("✗ %d of %d character(s) rejected%s", len(rejected), total, label),
		color.New(color.FgHiBlack).Sprintf("[%s]", result.Input))

	fmt.Fprintln(r.out, "Rejected:")
	for _, v := range rejected {
		r.printVerdict(v)
	}
	return nil
}

func (r *Reporter) printVerdict(v Verdict) {
	// Format:  • position 3: 'a' (U+0061)
	var sb strings.Builder
	sb.WriteString("  • ")
	sb.WriteString(color.New(color.FgRed).Sprintf("position %d", v.Index))
	fmt.Fprintf(&sb, ": %q ", v.Char)
	sb.WriteString(color.New(color.FgHiBlack).Sprintf("(%s)", v.CodePoint))
	fmt.Fprintln(r.out, sb.String())
}
