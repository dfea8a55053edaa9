package validator

import (
	"encoding/binary"
	"fmt"

	"github.com/thoreinstein/slotcheck/internal/errors"
)

// defaultPlaceholders are the runes MaskedDigit accepts besides digits
// when no placeholders are given.
var defaultPlaceholders = []rune{'X', 'x', '*'}

// DefaultPlaceholders returns a copy of the default placeholder runes.
func DefaultPlaceholders() []rune {
	return append([]rune(nil), defaultPlaceholders...)
}

// MaskedDigit accepts decimal digits and a fixed, ordered list of
// placeholder runes. Placeholders let a slot hold a masked value such as
// "**** 1234" while still rejecting arbitrary input.
//
// The zero value accepts digits only. Use [NewMaskedDigit] for the default
// placeholders.
type MaskedDigit struct {
	digit Digit
	// placeholders holds each rune as 4 big-endian bytes. A string keeps
	// MaskedDigit comparable; the fixed width keeps surrogates and other
	// non-UTF-8 runes intact.
	placeholders string
}

// NewMaskedDigit returns a MaskedDigit accepting digits and the given
// placeholders. With no arguments it uses [DefaultPlaceholders].
func NewMaskedDigit(placeholders ...rune) MaskedDigit {
	if len(placeholders) == 0 {
		placeholders = defaultPlaceholders
	}
	return MaskedDigit{placeholders: packRunes(placeholders)}
}

// MaskedDigitFrom returns a MaskedDigit for an explicit placeholder list.
// A nil list is rejected with an error marked [ErrInvalidConfiguration];
// an empty non-nil list yields a validator that accepts digits only.
func MaskedDigitFrom(placeholders []rune) (MaskedDigit, error) {
	if placeholders == nil {
		err := errors.Mark(errors.New("placeholder set must not be null"), ErrInvalidConfiguration)
		return MaskedDigit{}, errors.WithHint(err, "omit the placeholders to use the defaults X, x and *")
	}
	return MaskedDigit{placeholders: packRunes(placeholders)}, nil
}

func packRunes(rs []rune) string {
	buf := make([]byte, 0, 4*len(rs))
	for _, r := range rs {
		buf = binary.BigEndian.AppendUint32(buf, uint32(r))
	}
	return string(buf)
}

// Validate reports whether r is a digit or one of the placeholders.
// Placeholders are scanned in construction order.
func (m MaskedDigit) Validate(r rune) bool {
	if m.digit.Validate(r) {
		return true
	}
	for i := 0; i+4 <= len(m.placeholders); i += 4 {
		if m.at(i) == r {
			return true
		}
	}
	return false
}

func (m MaskedDigit) at(i int) rune {
	p := m.placeholders
	return rune(uint32(p[i])<<24 | uint32(p[i+1])<<16 | uint32(p[i+2])<<8 | uint32(p[i+3]))
}

// Placeholders returns a copy of the placeholder runes in construction order.
func (m MaskedDigit) Placeholders() []rune {
	out := make([]rune, 0, len(m.placeholders)/4)
	for i := 0; i+4 <= len(m.placeholders); i += 4 {
		out = append(out, m.at(i))
	}
	return out
}

// Kind returns KindMaskedDigit.
func (MaskedDigit) Kind() Kind { return KindMaskedDigit }

// Equal reports whether other is a MaskedDigit with the same placeholders
// in the same order.
func (m MaskedDigit) Equal(other Validator) bool {
	o, ok := canonical(other).(MaskedDigit)
	return ok && o.placeholders == m.placeholders
}

// Hash returns a hash of the placeholder sequence.
func (m MaskedDigit) Hash() uint64 {
	return hashConfig(KindMaskedDigit, m.placeholders)
}

func (m MaskedDigit) String() string {
	return fmt.Sprintf("%s(%q)", KindMaskedDigit, string(m.Placeholders()))
}
