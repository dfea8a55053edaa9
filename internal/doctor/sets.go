package doctor

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"maps"
	"path/filepath"
	"slices"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/thoreinstein/slotcheck/internal/config"
	"github.com/thoreinstein/slotcheck/internal/errors"
	"github.com/thoreinstein/slotcheck/internal/preset"
	"github.com/thoreinstein/slotcheck/internal/validator"
	"github.com/thoreinstein/slotcheck/pkg/fileutil"
)

// decodeConfig reads the config file at path on top of the defaults.
// An empty path yields the defaults.
func decodeConfig(path string) (*config.Config, error) {
	cfg := config.Default()
	if path == "" {
		return cfg, nil
	}

	data, err := fileutil.ReadFileWithLimit(path)
	if err != nil {
		return nil, err
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return cfg, nil
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		err = json.Unmarshal(data, cfg)
	case ".toml":
		err = toml.Unmarshal(data, cfg)
	default:
		err = yaml.Unmarshal(data, cfg)
	}
	if err != nil {
		return nil, errors.Wrapf(err, "decoding %s", path)
	}

	// Set names are matched case-insensitively.
	lowered := make(map[string][]validator.Definition, len(cfg.Sets))
	for name, defs := range cfg.Sets {
		lowered[strings.ToLower(name)] = defs
	}
	cfg.Sets = lowered
	cfg.DefaultSet = strings.ToLower(cfg.DefaultSet)
	return cfg, nil
}

// ConfigValidationCheck reports every validation error of the config file,
// where loading stops at the first one.
type ConfigValidationCheck struct {
	Path string
}

var _ Check = (*ConfigValidationCheck)(nil)

// NewConfigValidationCheck creates a validation check for the file at path.
func NewConfigValidationCheck(path string) *ConfigValidationCheck {
	return &ConfigValidationCheck{Path: path}
}

// Name returns the unique identifier for this check.
func (c *ConfigValidationCheck) Name() string {
	return "config-validation"
}

// Category returns the grouping for this check.
func (c *ConfigValidationCheck) Category() string {
	return "config"
}

// Run decodes the file and validates the result.
func (c *ConfigValidationCheck) Run(_ context.Context) *CheckResult {
	result := &CheckResult{
		Name:     c.Name(),
		Category: c.Category(),
		Status:   SeverityPass,
	}

	cfg, err := decodeConfig(c.Path)
	if err != nil {
		result.Status = SeverityInfo
		result.Message = "skipped, config file could not be decoded"
		return result
	}

	errs := config.Validate(cfg)
	if len(errs) == 0 {
		result.Message = fmt.Sprintf("configuration valid (%d set(s) defined)", len(cfg.Sets))
		return result
	}

	problems := make([]string, 0, len(errs))
	for _, e := range errs {
		problems = append(problems, e.Error())
	}
	result.Status = SeverityError
	result.Message = fmt.Sprintf("%d validation error(s)", len(errs))
	result.Details = map[string]any{"errors": problems}
	result.FixHint = "valid kinds: " + kindList()
	return result
}

func kindList() string {
	kinds := validator.Kinds()
	names := make([]string, len(kinds))
	for i, k := range kinds {
		names[i] = string(k)
	}
	return strings.Join(names, ", ")
}

// SetLintCheck flags configured sets that build but likely do not do what
// their author intended.
type SetLintCheck struct {
	Path string
}

var _ Check = (*SetLintCheck)(nil)

// NewSetLintCheck creates a lint check for the sets of the file at path.
func NewSetLintCheck(path string) *SetLintCheck {
	return &SetLintCheck{Path: path}
}

// Name returns the unique identifier for this check.
func (c *SetLintCheck) Name() string {
	return "set-lint"
}

// Category returns the grouping for this check.
func (c *SetLintCheck) Category() string {
	return "sets"
}

// SetFinding is one lint finding for a configured set.
type SetFinding struct {
	Set      string   `json:"set"`
	Problem  string   `json:"problem"`
	Severity Severity `json:"severity"`
}

func (f SetFinding) String() string {
	return fmt.Sprintf("set %q: %s", f.Set, f.Problem)
}

// Run lints every configured set.
func (c *SetLintCheck) Run(_ context.Context) *CheckResult {
	result := &CheckResult{
		Name:     c.Name(),
		Category: c.Category(),
		Status:   SeverityPass,
	}

	cfg, err := decodeConfig(c.Path)
	if err != nil {
		result.Status = SeverityInfo
		result.Message = "skipped, config file could not be decoded"
		return result
	}
	if len(cfg.Sets) == 0 {
		result.Message = "no configured sets"
		return result
	}

	var findings []SetFinding
	for _, name := range slices.Sorted(maps.Keys(cfg.Sets)) {
		findings = append(findings, lintSet(name, cfg.Sets[name])...)
	}

	if len(findings) == 0 {
		result.Message = fmt.Sprintf("%d configured set(s) look fine", len(cfg.Sets))
		return result
	}

	for _, f := range findings {
		result.Status = max(result.Status, f.Severity)
	}
	result.Message = fmt.Sprintf("%d finding(s) in configured sets", len(findings))
	result.Details = map[string]any{"findings": findings}
	if result.Status == SeverityWarning {
		result.FixHint = "run slotcheck classify against the set to confirm its behavior"
	}
	return result
}

func lintSet(name string, defs []validator.Definition) []SetFinding {
	var out []SetFinding
	add := func(sev Severity, format string, args ...any) {
		out = append(out, SetFinding{Set: name, Problem: fmt.Sprintf(format, args...), Severity: sev})
	}

	if preset.IsBuiltin(name) {
		add(SeverityInfo, "replaces the built-in preset %q", name)
	}

	set, err := validator.BuildSet(defs)
	if err != nil {
		// Reported by config-validation.
		return out
	}
	if set.Len() < len(defs) {
		add(SeverityWarning, "%d duplicate validator(s) have no effect", len(defs)-set.Len())
	}

	for _, v := range set.Validators() {
		switch v := v.(type) {
		case validator.Letter:
			// A disabled alphabet's flag matches every rune outside that
			// alphabet, so the validator stops being letter-only.
			switch {
			case v.SupportsEnglish() && !v.SupportsRussian():
				add(SeverityWarning, "%s rejects only Cyrillic letters; digits and punctuation pass", v)
			case !v.SupportsEnglish() && v.SupportsRussian():
				add(SeverityWarning, "%s rejects only Latin letters; digits and punctuation pass", v)
			case !v.SupportsEnglish() && !v.SupportsRussian():
				add(SeverityWarning, "%s accepts every character", v)
			}
		case validator.MaskedDigit:
			if len(v.Placeholders()) == 0 {
				add(SeverityInfo, "%s has no placeholders and behaves like digit", v)
			}
		case validator.AcceptAll:
			if set.Len() > 1 {
				add(SeverityWarning, "%s makes the other validators redundant", v)
			}
		}
	}
	return out
}
