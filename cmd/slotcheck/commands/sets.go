package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/thoreinstein/slotcheck/internal/config"
	"github.com/thoreinstein/slotcheck/internal/errors"
	"github.com/thoreinstein/slotcheck/internal/paths"
	"github.com/thoreinstein/slotcheck/internal/preset"
	"github.com/thoreinstein/slotcheck/internal/validator"
	"github.com/thoreinstein/slotcheck/pkg/fileutil"
)

var (
	setsListJSON     bool
	setsShowFormat   string
	setsExportFormat string
	setsExportOut    string
)

func init() {
	setsListCmd.Flags().BoolVar(&setsListJSON, "json", false,
		"output as JSON")
	setsShowCmd.Flags().StringVar(&setsShowFormat, "format", "yaml",
		"output encoding: yaml, toml, json")
	setsExportCmd.Flags().StringVar(&setsExportFormat, "format", "",
		"output encoding: yaml, toml, json (default: from --out extension, else yaml)")
	setsExportCmd.Flags().StringVarP(&setsExportOut, "out", "o", "",
		"write to this file instead of stdout")

	setsCmd.AddCommand(setsListCmd, setsShowCmd, setsExportCmd)
	rootCmd.AddCommand(setsCmd)
}

var setsCmd = &cobra.Command{
	Use:   "sets",
	Short: "Inspect validator sets",
	Long: `Inspect the validator sets known to slotcheck.

Sets come from the built-in presets and from the "sets" section of the
config file. A config set with the name of a preset replaces the preset.`,
}

var setsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List available sets",
	Example: `  slotcheck sets list
  slotcheck sets list --json`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		registry, err := currentRegistry(cmd.Context())
		if err != nil {
			return err
		}
		return runSetsList(cmd.OutOrStdout(), registry, setsListJSON)
	},
}

var setsShowCmd = &cobra.Command{
	Use:   "show <name>",
	Short: "Show the validators of a set",
	Example: `  slotcheck sets show maskable_digit
  slotcheck sets show alphanumeric --format json`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		registry, err := currentRegistry(cmd.Context())
		if err != nil {
			return err
		}
		return runSetsShow(cmd.OutOrStdout(), registry, args[0], setsShowFormat)
	},
}

var setsExportCmd = &cobra.Command{
	Use:   "export [names...]",
	Short: "Export sets as a config fragment",
	Long: `Export sets in the layout of the config file "sets" section.

Without names every registered set is exported. Each set is exported as
built, so duplicate validators appear once.`,
	Example: `  # Print all sets as YAML
  slotcheck sets export

  # Write two sets to a TOML file
  slotcheck sets export digit russian --out sets.toml`,
	RunE: func(cmd *cobra.Command, args []string) error {
		registry, err := currentRegistry(cmd.Context())
		if err != nil {
			return err
		}
		return runSetsExport(cmd.OutOrStdout(), registry, args, setsExportFormat, setsExportOut)
	},
}

// setSummary is one row of sets list.
type setSummary struct {
	Name       string   `json:"name"`
	Source     string   `json:"source"`
	Validators []string `json:"validators"`
}

func runSetsList(w io.Writer, registry *preset.Registry, asJSON bool) error {
	names := registry.Names()
	rows := make([]setSummary, 0, len(names))
	for _, name := range names {
		set, err := registry.Lookup(name)
		if err != nil {
			return err
		}
		row := setSummary{Name: name, Source: setSource(registry, name)}
		for _, v := range set.Validators() {
			row.Validators = append(row.Validators, v.String())
		}
		rows = append(rows, row)
	}

	if asJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return errors.Wrap(enc.Encode(rows), "encoding JSON output")
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "NAME\tSOURCE\tVALIDATORS")
	for _, row := range rows {
		fmt.Fprintf(tw, "%s\t%s\t%s\n", row.Name, row.Source, strings.Join(row.Validators, ", "))
	}
	return errors.Wrap(tw.Flush(), "writing table")
}

func runSetsShow(w io.Writer, registry *preset.Registry, name, format string) error {
	enc, err := fileutil.ParseEncoding(format)
	if err != nil {
		return errors.NewUserError(err, "")
	}
	name = strings.ToLower(name)
	defs, err := registry.Definitions(name)
	if err != nil {
		return errors.NewUserError(errors.WithHint(err, "Run: slotcheck sets list"), "")
	}

	data, err := fileutil.Encode(enc, map[string][]validator.Definition{name: defs})
	if err != nil {
		return errors.NewSystemError(err, "")
	}
	_, err = w.Write(data)
	return errors.Wrap(err, "writing output")
}

// setsDocument mirrors the config file layout so exports can be merged
// into a config file.
type setsDocument struct {
	Version int                               `yaml:"version" toml:"version" json:"version"`
	Sets    map[string][]validator.Definition `yaml:"sets" toml:"sets" json:"sets"`
}

func runSetsExport(w io.Writer, registry *preset.Registry, names []string, format, out string) error {
	enc, err := exportEncoding(format, out)
	if err != nil {
		return errors.NewUserError(err, "")
	}

	if len(names) == 0 {
		names = registry.Names()
	}
	doc := setsDocument{
		Version: config.CurrentVersion,
		Sets:    make(map[string][]validator.Definition, len(names)),
	}
	for _, name := range names {
		name = strings.ToLower(name)
		set, err := registry.Lookup(name)
		if err != nil {
			return errors.NewUserError(err, "")
		}
		defs, err := validator.DescribeSet(set)
		if err != nil {
			return errors.NewSystemError(errors.Wrapf(err, "describing set %q", name), "")
		}
		doc.Sets[name] = defs
	}

	if out == "" {
		data, err := fileutil.Encode(enc, doc)
		if err != nil {
			return errors.NewSystemError(err, "")
		}
		_, err = w.Write(data)
		return errors.Wrap(err, "writing output")
	}

	if err := paths.EnsureDir(filepath.Dir(out), paths.DefaultDirPerm); err != nil {
		return errors.NewSystemError(err, "")
	}
	if err := fileutil.AtomicWrite(out, enc, doc); err != nil {
		return errors.NewSystemError(err, "Check that the --out directory is writable")
	}
	fmt.Fprintf(w, "Exported %d set(s) to %s\n", len(doc.Sets), out)
	return nil
}

// exportEncoding resolves the output encoding: --format wins, then the
// --out extension, then YAML.
func exportEncoding(format, out string) (fileutil.Encoding, error) {
	if format != "" {
		return fileutil.ParseEncoding(format)
	}
	if enc, ok := fileutil.EncodingFromPath(out); ok {
		return enc, nil
	}
	return fileutil.EncodingYAML, nil
}
