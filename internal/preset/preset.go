package preset

import (
	"context"
	"log/slog"
	"maps"
	"slices"

	"github.com/thoreinstein/slotcheck/internal/errors"
	"github.com/thoreinstein/slotcheck/internal/logging"
	"github.com/thoreinstein/slotcheck/internal/validator"
)

// Built-in preset names.
const (
	Any           = "any"
	Digit         = "digit"
	MaskableDigit = "maskable_digit"
	Letter        = "letter"
	English       = "english"
	Russian       = "russian"
	Alphanumeric  = "alphanumeric"
)

// ErrUnknownSet indicates that no set is registered under a name.
var ErrUnknownSet = errors.New("unknown validator set")

func boolPtr(b bool) *bool { return &b }

// builtins maps preset names to their definitions.
var builtins = map[string][]validator.Definition{
	Any:           {{Kind: validator.KindAcceptAll}},
	Digit:         {{Kind: validator.KindDigit}},
	MaskableDigit: {{Kind: validator.KindMaskedDigit}},
	Letter:        {{Kind: validator.KindLetter}},
	English:       {{Kind: validator.KindLetter, English: boolPtr(true), Russian: boolPtr(false)}},
	Russian:       {{Kind: validator.KindLetter, English: boolPtr(false), Russian: boolPtr(true)}},
	Alphanumeric:  {{Kind: validator.KindDigit}, {Kind: validator.KindLetter}},
}

// Builtins returns the names of the built-in presets, sorted.
func Builtins() []string {
	return slices.Sorted(maps.Keys(builtins))
}

// IsBuiltin reports whether name is a built-in preset.
func IsBuiltin(name string) bool {
	_, ok := builtins[name]
	return ok
}

// Registry resolves set names to validator sets.
// It is not safe for concurrent registration.
type Registry struct {
	defs map[string][]validator.Definition
	sets map[string]*validator.Set
}

// NewRegistry returns a Registry holding the built-in presets.
func NewRegistry() *Registry {
	r := &Registry{
		defs: make(map[string][]validator.Definition, len(builtins)),
		sets: make(map[string]*validator.Set, len(builtins)),
	}
	for name, defs := range builtins {
		s, err := validator.BuildSet(defs)
		if err != nil {
			// Built-in definitions are static.
			panic(errors.Wrapf(err, "building preset %q", name))
		}
		r.defs[name] = defs
		r.sets[name] = s
	}
	return r
}

// Register builds defs and stores the result under name.
// The name must be non-empty and the set must contain at least one validator.
func (r *Registry) Register(ctx context.Context, name string, defs []validator.Definition) error {
	if name == "" {
		return errors.Mark(errors.New("set name is required"), validator.ErrInvalidConfiguration)
	}
	if len(defs) == 0 {
		return errors.Mark(errors.Newf("set %q has no validators", name), validator.ErrInvalidConfiguration)
	}
	s, err := validator.BuildSet(defs)
	if err != nil {
		return errors.Wrapf(err, "set %q", name)
	}

	logger := logging.FromContext(ctx)
	if IsBuiltin(name) {
		logger.Debug("set shadows built-in preset", "set", name)
	}
	if len(defs) != s.Len() {
		logger.Debug("duplicate validators collapsed", "set", name, "defined", len(defs), "kept", s.Len())
	}

	r.defs[name] = slices.Clone(defs)
	r.sets[name] = s
	return nil
}

// Lookup returns the set registered under name.
// The returned Set is shared; callers must not mutate it.
func (r *Registry) Lookup(name string) (*validator.Set, error) {
	s, ok := r.sets[name]
	if !ok {
		err := errors.Wrapf(ErrUnknownSet, "%q", name)
		return nil, errors.WithHint(err, "Run: slotcheck sets list")
	}
	return s, nil
}

// Definitions returns the definitions registered under name as written,
// before duplicates were collapsed.
func (r *Registry) Definitions(name string) ([]validator.Definition, error) {
	defs, ok := r.defs[name]
	if !ok {
		return nil, errors.Wrapf(ErrUnknownSet, "%q", name)
	}
	return slices.Clone(defs), nil
}

// Names returns every registered set name, sorted.
func (r *Registry) Names() []string {
	return slices.Sorted(maps.Keys(r.sets))
}

// LogValue implements slog.LogValuer.
func (r *Registry) LogValue() slog.Value {
	return slog.GroupValue(slog.Int("sets", len(r.sets)))
}
