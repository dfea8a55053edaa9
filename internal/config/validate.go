package config

import (
	"fmt"
	"maps"
	"slices"

	"github.com/thoreinstein/slotcheck/internal/errors"
	"github.com/thoreinstein/slotcheck/internal/preset"
	"github.com/thoreinstein/slotcheck/internal/validator"
)

// Validation errors for configuration fields.
var (
	// ErrUnsupportedVersion indicates the version field is not CurrentVersion.
	ErrUnsupportedVersion = errors.New("unsupported config version")

	// ErrUnknownDefaultSet indicates default_set names no known set.
	ErrUnknownDefaultSet = errors.New("unknown default set")
)

// Validate checks a Config for validity.
// Returns nil if valid, or the validation errors in field order.
func Validate(cfg *Config) []error {
	if cfg == nil {
		return []error{errors.New("config is nil")}
	}

	var errs []error

	if cfg.Version != CurrentVersion {
		errs = append(errs, errors.Wrapf(ErrUnsupportedVersion, "%d", cfg.Version))
	}

	if _, err := validator.ParseFormat(cfg.Format); err != nil {
		errs = append(errs, err)
	}

	for _, name := range slices.Sorted(maps.Keys(cfg.Sets)) {
		if len(cfg.Sets[name]) == 0 {
			errs = append(errs, &SetError{Set: name, Err: errors.Mark(
				errors.New("no validators defined"), validator.ErrInvalidConfiguration)})
			continue
		}
		if _, err := validator.BuildSet(cfg.Sets[name]); err != nil {
			errs = append(errs, &SetError{Set: name, Err: err})
		}
	}

	if cfg.DefaultSet != "" && !preset.IsBuiltin(cfg.DefaultSet) {
		if _, ok := cfg.Sets[cfg.DefaultSet]; !ok {
			errs = append(errs, errors.Wrapf(ErrUnknownDefaultSet, "%q", cfg.DefaultSet))
		}
	}

	return errs
}

// SetError represents an error in one configured set.
type SetError struct {
	Set string
	Err error
}

func (e *SetError) Error() string {
	return fmt.Sprintf("set %q: %v", e.Set, e.Err)
}

func (e *SetError) Unwrap() error {
	return e.Err
}
