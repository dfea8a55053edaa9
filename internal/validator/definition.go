package validator

import (
	"github.com/thoreinstein/slotcheck/internal/errors"
)

// Definition is the serializable form of a validator.
//
// Placeholders applies to masked_digit only; English and Russian apply to
// letter only. Unset options take the variant's defaults.
type Definition struct {
	Kind         Kind    `mapstructure:"kind" yaml:"kind" json:"kind" toml:"kind"`
	Placeholders *string `mapstructure:"placeholders" yaml:"placeholders,omitempty" json:"placeholders,omitempty" toml:"placeholders,omitempty"`
	English      *bool   `mapstructure:"english" yaml:"english,omitempty" json:"english,omitempty" toml:"english,omitempty"`
	Russian      *bool   `mapstructure:"russian" yaml:"russian,omitempty" json:"russian,omitempty" toml:"russian,omitempty"`
}

// Build constructs the validator described by d.
func (d Definition) Build() (Validator, error) {
	switch d.Kind {
	case KindAcceptAll, KindDigit:
		if err := d.rejectOptions("placeholders", "english", "russian"); err != nil {
			return nil, err
		}
		if d.Kind == KindAcceptAll {
			return NewAcceptAll(), nil
		}
		return NewDigit(), nil

	case KindMaskedDigit:
		if err := d.rejectOptions("english", "russian"); err != nil {
			return nil, err
		}
		if d.Placeholders == nil {
			return NewMaskedDigit(), nil
		}
		// An empty string is an explicit empty list: digits only.
		m, err := MaskedDigitFrom(append([]rune{}, []rune(*d.Placeholders)...))
		if err != nil {
			return nil, err
		}
		return m, nil

	case KindLetter:
		if err := d.rejectOptions("placeholders"); err != nil {
			return nil, err
		}
		var opts []LetterOption
		if d.English != nil {
			opts = append(opts, WithEnglish(*d.English))
		}
		if d.Russian != nil {
			opts = append(opts, WithRussian(*d.Russian))
		}
		return NewLetter(opts...), nil

	case "":
		return nil, errors.Mark(errors.New("validator kind is required"), ErrInvalidConfiguration)

	default:
		err := errors.Mark(errors.Newf("unknown validator kind %q", d.Kind), ErrInvalidConfiguration)
		return nil, errors.WithHintf(err, "valid kinds: %v", Kinds())
	}
}

// rejectOptions fails when any of the named options is set on d.
func (d Definition) rejectOptions(names ...string) error {
	for _, name := range names {
		var set bool
		switch name {
		case "placeholders":
			set = d.Placeholders != nil
		case "english":
			set = d.English != nil
		case "russian":
			set = d.Russian != nil
		}
		if set {
			return errors.Mark(
				errors.Newf("option %q does not apply to %s validators", name, d.Kind),
				ErrInvalidConfiguration,
			)
		}
	}
	return nil
}

// BuildSet builds every definition and collects the results into a Set.
// Errors are annotated with the position of the failing definition.
func BuildSet(defs []Definition) (*Set, error) {
	s := NewSet()
	for i, d := range defs {
		v, err := d.Build()
		if err != nil {
			return nil, errors.Wrapf(err, "validator %d", i)
		}
		s.Add(v)
	}
	return s, nil
}

// Describe returns the Definition of a built-in validator with every option
// spelled out. It reports false for validators of other types.
func Describe(v Validator) (Definition, bool) {
	switch c := canonical(v).(type) {
	case AcceptAll:
		return Definition{Kind: KindAcceptAll}, true
	case Digit:
		return Definition{Kind: KindDigit}, true
	case MaskedDigit:
		// Runes with no UTF-8 form, such as surrogates, read back as U+FFFD.
		p := string(c.Placeholders())
		return Definition{Kind: KindMaskedDigit, Placeholders: &p}, true
	case Letter:
		en, ru := c.SupportsEnglish(), c.SupportsRussian()
		return Definition{Kind: KindLetter, English: &en, Russian: &ru}, true
	default:
		return Definition{}, false
	}
}

// DescribeSet returns the Definitions of every member of s.
// It fails when a member is not a built-in validator.
func DescribeSet(s *Set) ([]Definition, error) {
	defs := make([]Definition, 0, s.Len())
	for _, v := range s.Validators() {
		d, ok := Describe(v)
		if !ok {
			return nil, errors.Newf("validator %s has no definition", v)
		}
		defs = append(defs, d)
	}
	return defs, nil
}
