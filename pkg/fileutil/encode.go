package fileutil

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/thoreinstein/slotcheck/internal/errors"
)

// Encoding names a document encoding.
type Encoding string

const (
	// EncodingYAML encodes with gopkg.in/yaml.v3.
	EncodingYAML Encoding = "yaml"
	// EncodingTOML encodes with github.com/pelletier/go-toml/v2.
	EncodingTOML Encoding = "toml"
	// EncodingJSON encodes with encoding/json, indented by two spaces.
	EncodingJSON Encoding = "json"
)

// Encodings lists the supported encodings.
func Encodings() []Encoding {
	return []Encoding{EncodingYAML, EncodingTOML, EncodingJSON}
}

// ParseEncoding converts s to an Encoding. "yml" is accepted for YAML.
func ParseEncoding(s string) (Encoding, error) {
	switch e := Encoding(strings.ToLower(s)); e {
	case EncodingYAML, EncodingTOML, EncodingJSON:
		return e, nil
	case "yml":
		return EncodingYAML, nil
	default:
		return "", errors.Wrapf(errors.ErrInvalidFormat, "encoding %q (valid: yaml, toml, json)", s)
	}
}

// EncodingFromPath infers the encoding from a file extension.
// It reports false when the extension is not recognized.
func EncodingFromPath(path string) (Encoding, bool) {
	ext := strings.TrimPrefix(filepath.Ext(path), ".")
	if ext == "" {
		return "", false
	}
	e, err := ParseEncoding(ext)
	return e, err == nil
}

// Encode serializes v. Every encoding ends with a trailing newline.
func Encode(enc Encoding, v any) (data []byte, err error) {
	switch enc {
	case EncodingYAML:
		// yaml.Marshal panics on unmarshalable types; recover and return error
		defer func() {
			if r := recover(); r != nil {
				err = errors.Newf("marshaling YAML: %v", r)
			}
		}()
		var buf bytes.Buffer
		e := yaml.NewEncoder(&buf)
		e.SetIndent(2)
		if err := e.Encode(v); err != nil {
			return nil, errors.Wrap(err, "marshaling YAML")
		}
		if err := e.Close(); err != nil {
			return nil, errors.Wrap(err, "marshaling YAML")
		}
		data = buf.Bytes()
	case EncodingTOML:
		data, err = toml.Marshal(v)
		if err != nil {
			return nil, errors.Wrap(err, "marshaling TOML")
		}
	case EncodingJSON:
		data, err = json.MarshalIndent(v, "", "  ")
		if err != nil {
			return nil, errors.Wrap(err, "marshaling JSON")
		}
	default:
		return nil, errors.Wrapf(errors.ErrInvalidFormat, "encoding %q", enc)
	}

	if len(data) == 0 || data[len(data)-1] != '\n' {
		data = append(data, '\n')
	}
	return data, nil
}
