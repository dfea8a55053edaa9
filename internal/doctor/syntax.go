package doctor

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/thoreinstein/slotcheck/internal/errors"
	"github.com/thoreinstein/slotcheck/pkg/fileutil"
)

// ConfigSyntaxCheck validates that the config file parses.
type ConfigSyntaxCheck struct {
	// Path is the config file. Empty means no file was found.
	Path string
}

var _ Check = (*ConfigSyntaxCheck)(nil)

// NewConfigSyntaxCheck creates a syntax check for the file at path.
func NewConfigSyntaxCheck(path string) *ConfigSyntaxCheck {
	return &ConfigSyntaxCheck{Path: path}
}

// Name returns the unique identifier for this check.
func (c *ConfigSyntaxCheck) Name() string {
	return "config-syntax"
}

// Category returns the grouping for this check.
func (c *ConfigSyntaxCheck) Category() string {
	return "config"
}

// Run parses the file with the decoder its extension selects.
func (c *ConfigSyntaxCheck) Run(_ context.Context) *CheckResult {
	result := &CheckResult{
		Name:     c.Name(),
		Category: c.Category(),
		Status:   SeverityPass,
		Details:  map[string]any{"path": c.Path},
	}

	if c.Path == "" {
		result.Status = SeverityInfo
		result.Message = "no config file found, defaults in use"
		result.Details = nil
		return result
	}

	data, err := fileutil.ReadFileWithLimit(c.Path)
	if err != nil {
		result.Status = SeverityError
		switch {
		case errors.Is(err, os.ErrNotExist):
			result.Message = "config file does not exist"
			result.FixHint = "create it or drop the --config flag"
		case errors.Is(err, os.ErrPermission):
			result.Message = fmt.Sprintf("permission denied: %v", err)
			result.FixHint = "chmod 644 " + c.Path
		default:
			result.Message = fmt.Sprintf("read error: %v", err)
		}
		return result
	}

	// Empty files are valid (no content to parse)
	if len(data) == 0 {
		result.Message = "empty file"
		return result
	}

	if msg := syntaxError(c.Path, data); msg != "" {
		result.Status = SeverityError
		result.Message = msg
		result.FixHint = "fix the syntax at the reported position"
		return result
	}

	result.Message = "config file parses"
	return result
}

// syntaxError returns a description of the first syntax error in data, or
// "" when it parses.
func syntaxError(path string, data []byte) string {
	var v any
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		if err := json.Unmarshal(data, &v); err != nil {
			return formatJSONError(err, data)
		}
	case ".toml":
		if err := toml.Unmarshal(data, &v); err != nil {
			return formatTOMLError(err)
		}
	default:
		if err := yaml.Unmarshal(data, &v); err != nil {
			return formatYAMLError(err)
		}
	}
	return ""
}

// formatJSONError extracts position information from JSON syntax errors.
func formatJSONError(err error, data []byte) string {
	var syntaxErr *json.SyntaxError
	if errors.As(err, &syntaxErr) {
		line, col := offsetToLineCol(data, int(syntaxErr.Offset))
		return fmt.Sprintf("JSON syntax error at line %d, column %d: %s", line, col, syntaxErr.Error())
	}

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		line, col := offsetToLineCol(data, int(typeErr.Offset))
		return fmt.Sprintf("JSON type error at line %d, column %d: %s", line, col, typeErr.Error())
	}

	return fmt.Sprintf("JSON error: %v", err)
}

// formatTOMLError extracts position information from TOML decode errors.
func formatTOMLError(err error) string {
	var decodeErr *toml.DecodeError
	if errors.As(err, &decodeErr) {
		row, col := decodeErr.Position()
		return fmt.Sprintf("TOML syntax error at line %d, column %d: %s",
			row, col, decodeErr.Error())
	}

	return fmt.Sprintf("TOML error: %v", err)
}

// formatYAMLError normalizes yaml.v3 errors, which already carry the line.
func formatYAMLError(err error) string {
	return "YAML syntax error: " + strings.TrimPrefix(err.Error(), "yaml: ")
}

// offsetToLineCol converts a byte offset to line and column numbers.
// Lines and columns are 1-indexed.
func offsetToLineCol(data []byte, offset int) (line, col int) {
	if offset > len(data) {
		offset = len(data)
	}
	if offset < 0 {
		offset = 0
	}

	line = 1
	lineStart := 0

	for i := range offset {
		if data[i] == '\n' {
			line++
			lineStart = i + 1
		}
	}

	col = offset - lineStart + 1
	return line, col
}
