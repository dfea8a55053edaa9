package config

import (
	"context"
	"maps"
	"path/filepath"
	"slices"
	"strings"

	"github.com/spf13/viper"

	"github.com/thoreinstein/slotcheck/internal/errors"
	"github.com/thoreinstein/slotcheck/internal/logging"
	"github.com/thoreinstein/slotcheck/internal/paths"
	"github.com/thoreinstein/slotcheck/internal/preset"
	"github.com/thoreinstein/slotcheck/internal/validator"
)

// CurrentVersion is the only supported config file version.
const CurrentVersion = 1

// Config represents the top-level configuration structure.
type Config struct {
	Version    int                               `mapstructure:"version" yaml:"version" json:"version" toml:"version"`
	Format     string                            `mapstructure:"format" yaml:"format" json:"format" toml:"format"`
	DefaultSet string                            `mapstructure:"default_set" yaml:"default_set" json:"default_set" toml:"default_set"`
	Sets       map[string][]validator.Definition `mapstructure:"sets" yaml:"sets,omitempty" json:"sets,omitempty" toml:"sets,omitempty"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{
		Version:    CurrentVersion,
		Format:     string(validator.FormatText),
		DefaultSet: preset.Any,
	}
}

// Init resets Viper and installs the search paths, environment binding
// and defaults. Call it once before Load.
func Init() {
	viper.Reset()

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")

	// Search paths (in order of precedence)
	viper.AddConfigPath(".")
	viper.AddConfigPath(paths.ConfigDir())

	viper.SetEnvPrefix("SLOTCHECK")
	viper.AutomaticEnv()

	def := Default()
	viper.SetDefault("version", def.Version)
	viper.SetDefault("format", def.Format)
	viper.SetDefault("default_set", def.DefaultSet)
}

// Load reads the configuration file.
// If path is provided, it reads from that specific file and a missing file
// is an error; .toml and .json files are accepted besides YAML. If path is empty, the default locations are searched and
// defaults are used when no file exists.
func Load(path string) (*Config, error) {
	if path != "" {
		viper.SetConfigFile(path)
		switch ext := strings.TrimPrefix(filepath.Ext(path), "."); ext {
		case "yaml", "yml", "toml", "json":
			viper.SetConfigType(ext)
		}
	}

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		switch {
		case errors.As(err, &notFound) && path == "":
			// Implicit load without a file: defaults apply.
		case errors.As(err, &notFound):
			return nil, errors.Wrapf(errors.ErrNotFound, "config file %s", path)
		default:
			return nil, errors.Wrap(err, "reading config file")
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, errors.Wrap(err, "unmarshaling config")
	}
	// Viper lower-cases map keys; match that for the reference.
	cfg.DefaultSet = strings.ToLower(cfg.DefaultSet)

	if errs := Validate(&cfg); len(errs) > 0 {
		return nil, errors.Wrap(errs[0], "validating config")
	}

	return &cfg, nil
}

// FileUsed returns the path of the config file that was read, if any.
func FileUsed() string {
	return viper.ConfigFileUsed()
}

// Registry returns a preset registry holding the built-ins plus every set
// defined in the configuration.
func (c *Config) Registry(ctx context.Context) (*preset.Registry, error) {
	r := preset.NewRegistry()
	for _, name := range slices.Sorted(maps.Keys(c.Sets)) {
		if err := r.Register(ctx, name, c.Sets[name]); err != nil {
			return nil, err
		}
	}
	logging.FromContext(ctx).Debug("registry ready", "registry", r, "configured", len(c.Sets))
	return r, nil
}
