package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"

	"github.com/thoreinstein/slotcheck/internal/errors"
	"github.com/thoreinstein/slotcheck/internal/paths"
	"github.com/thoreinstein/slotcheck/internal/preset"
	"github.com/thoreinstein/slotcheck/internal/validator"
)

func writeConfig(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestInit(t *testing.T) {
	Init()

	if viper.GetInt("version") != CurrentVersion {
		t.Errorf("expected version default %d, got %d", CurrentVersion, viper.GetInt("version"))
	}
	if viper.GetString("default_set") != preset.Any {
		t.Errorf("expected default_set %q, got %q", preset.Any, viper.GetString("default_set"))
	}
}

func TestLoad_NoConfigFile(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv(paths.ConfigDirEnv, t.TempDir())
	Init()

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() with no config file should not error: %v", err)
	}
	if cfg.Format != "text" || cfg.DefaultSet != preset.Any {
		t.Errorf("unexpected defaults: %+v", cfg)
	}
}

func TestLoad_WithConfigFile(t *testing.T) {
	path := writeConfig(t, t.TempDir(), `version: 1
format: json
default_set: Phone
sets:
  Phone:
    - kind: digit
    - kind: masked_digit
      placeholders: "#"
  initials:
    - kind: letter
      russian: false
`)
	Init()

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.Format != "json" {
		t.Errorf("Format = %q, want json", cfg.Format)
	}
	if len(cfg.Sets) != 2 {
		t.Fatalf("expected 2 sets, got %d", len(cfg.Sets))
	}
	phone, ok := cfg.Sets["phone"]
	if !ok {
		t.Fatalf("set names should be lower-cased, got %v", cfg.Sets)
	}
	if len(phone) != 2 || phone[1].Placeholders == nil || *phone[1].Placeholders != "#" {
		t.Errorf("phone definitions = %+v", phone)
	}
	initials := cfg.Sets["initials"]
	if len(initials) != 1 || initials[0].Russian == nil || *initials[0].Russian || initials[0].English != nil {
		t.Errorf("initials definitions = %+v", initials)
	}
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv(paths.ConfigDirEnv, t.TempDir())
	t.Setenv("SLOTCHECK_DEFAULT_SET", "digit")
	Init()

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.DefaultSet != "digit" {
		t.Errorf("DefaultSet = %q, want digit", cfg.DefaultSet)
	}
}

func TestLoad_ExplicitPathNotFound(t *testing.T) {
	Init()

	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err == nil {
		t.Fatal("Load() with non-existent explicit path should error")
	}
}

func TestLoad_InvalidConfig(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{
			name:    "invalid version",
			content: "version: 2\n",
			wantErr: "2: unsupported config version",
		},
		{
			name:    "invalid format",
			content: "format: xml\n",
			wantErr: `"xml" (valid: text, json): invalid output format`,
		},
		{
			name:    "unknown default set",
			content: "default_set: phone\n",
			wantErr: `"phone": unknown default set`,
		},
		{
			name:    "bad validator kind",
			content: "sets:\n  phone:\n    - kind: hex\n",
			wantErr: `set "phone": validator 0: unknown validator kind "hex"`,
		},
		{
			name:    "misplaced option",
			content: "sets:\n  phone:\n    - kind: digit\n      english: true\n",
			wantErr: `set "phone": validator 0: option "english" does not apply to digit validators`,
		},
		{
			name:    "empty set",
			content: "sets:\n  phone: []\n",
			wantErr: `set "phone": no validators defined`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeConfig(t, t.TempDir(), tt.content)
			Init()

			_, err := Load(path)
			if err == nil {
				t.Fatal("Load() expected error, got nil")
			}
			if err.Error() != "validating config: "+tt.wantErr {
				t.Errorf("Load() error = %v, want %v", err, "validating config: "+tt.wantErr)
			}
		})
	}
}

func TestValidate_MarksInvalidConfiguration(t *testing.T) {
	cfg := Default()
	cfg.Sets = map[string][]validator.Definition{"bad": {{Kind: "nope"}}}

	errs := Validate(cfg)
	if len(errs) != 1 {
		t.Fatalf("Validate() = %v, want 1 error", errs)
	}
	if !errors.Is(errs[0], validator.ErrInvalidConfiguration) {
		t.Errorf("error %v should be marked ErrInvalidConfiguration", errs[0])
	}
	var setErr *SetError
	if !errors.As(errs[0], &setErr) || setErr.Set != "bad" {
		t.Errorf("expected SetError for set bad, got %v", errs[0])
	}
}

func TestValidate_Nil(t *testing.T) {
	if errs := Validate(nil); len(errs) != 1 {
		t.Errorf("Validate(nil) = %v", errs)
	}
}

func TestConfig_Registry(t *testing.T) {
	cfg := Default()
	cfg.Sets = map[string][]validator.Definition{
		"card": {{Kind: validator.KindDigit}, {Kind: validator.KindMaskedDigit}},
	}

	r, err := cfg.Registry(context.Background())
	if err != nil {
		t.Fatalf("Registry() error: %v", err)
	}
	s, err := r.Lookup("card")
	if err != nil {
		t.Fatalf("Lookup(card) error: %v", err)
	}
	if !s.Validate('*') || s.Validate('a') {
		t.Errorf("card set = %s behaves unexpectedly", s)
	}
	if _, err := r.Lookup(preset.Digit); err != nil {
		t.Errorf("built-ins should remain available: %v", err)
	}
}

func TestLoad_TOMLFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sets.toml")
	content := `version = 1

[[sets.card]]
kind = "masked_digit"
placeholders = "#"
`
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	Init()

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	card := cfg.Sets["card"]
	if len(card) != 1 || card[0].Kind != validator.KindMaskedDigit {
		t.Errorf("card definitions = %+v", card)
	}
}
