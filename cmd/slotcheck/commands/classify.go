package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"slices"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/thoreinstein/slotcheck/internal/errors"
	"github.com/thoreinstein/slotcheck/internal/preset"
)

var (
	classifyJSON bool
	classifySets []string
)

func init() {
	classifyCmd.Flags().BoolVar(&classifyJSON, "json", false,
		"output results as JSON")
	classifyCmd.Flags().StringSliceVarP(&classifySets, "set", "s", nil,
		"limit the table to these sets (repeatable)")
	rootCmd.AddCommand(classifyCmd)
}

var classifyCmd = &cobra.Command{
	Use:   "classify <chars>",
	Short: "Show which sets accept each character",
	Long: `Show, for every character of the argument, which registered sets accept it.

Each row is one character; each column is one set. Built-in presets and the
sets from the config file are all included unless --set narrows the columns.`,
	Example: `  # Classify a few characters against every set
  slotcheck classify "7xБ#"

  # Only compare two sets
  slotcheck classify -s english -s russian "aЖ1"

  # JSON output
  slotcheck classify --json "X*"`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		registry, err := currentRegistry(cmd.Context())
		if err != nil {
			return err
		}
		return runClassify(cmd.OutOrStdout(), registry, args[0], classifySets, classifyJSON)
	},
}

// classification lists the sets accepting one rune.
type classification struct {
	Char      string   `json:"char"`
	CodePoint string   `json:"code_point"`
	Sets      []string `json:"sets"`
}

func runClassify(w io.Writer, registry *preset.Registry, chars string, only []string, asJSON bool) error {
	names := registry.Names()
	if len(only) > 0 {
		names = make([]string, 0, len(only))
		for _, n := range only {
			names = append(names, strings.ToLower(n))
		}
	}

	sets := make(map[string]func(rune) bool, len(names))
	for _, n := range names {
		s, err := registry.Lookup(n)
		if err != nil {
			return errors.NewUserError(err, "")
		}
		sets[n] = s.Validate
	}

	rows := make([]classification, 0, len(chars))
	for _, r := range chars {
		c := classification{
			Char:      string(r),
			CodePoint: fmt.Sprintf("%U", r),
			Sets:      []string{},
		}
		for _, n := range names {
			if sets[n](r) {
				c.Sets = append(c.Sets, n)
			}
		}
		rows = append(rows, c)
	}

	if asJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return errors.Wrap(enc.Encode(rows), "encoding JSON output")
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "CHAR\tCODE\t%s\n", strings.ToUpper(strings.Join(names, "\t")))
	for _, row := range rows {
		cells := make([]string, len(names))
		for i, n := range names {
			cells[i] = "-"
			if slices.Contains(row.Sets, n) {
				cells[i] = "✓"
			}
		}
		fmt.Fprintf(tw, "%q\t%s\t%s\n", row.Char, row.CodePoint, strings.Join(cells, "\t"))
	}
	return errors.Wrap(tw.Flush(), "writing table")
}
