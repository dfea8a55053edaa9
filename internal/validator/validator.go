package validator

import (
	"fmt"
	"unicode"

	"github.com/cespare/xxhash/v2"

	"github.com/thoreinstein/slotcheck/internal/errors"
)

// Kind identifies a validator variant.
type Kind string

const (
	// KindAcceptAll accepts every rune.
	KindAcceptAll Kind = "accept_all"
	// KindDigit accepts Unicode decimal digits.
	KindDigit Kind = "digit"
	// KindMaskedDigit accepts digits and placeholder runes.
	KindMaskedDigit Kind = "masked_digit"
	// KindLetter accepts runes by alphabet membership.
	KindLetter Kind = "letter"
)

// Kinds returns every known validator kind.
func Kinds() []Kind {
	return []Kind{KindAcceptAll, KindDigit, KindMaskedDigit, KindLetter}
}

// Valid reports whether k names a known variant.
func (k Kind) Valid() bool {
	switch k {
	case KindAcceptAll, KindDigit, KindMaskedDigit, KindLetter:
		return true
	default:
		return false
	}
}

// ErrInvalidConfiguration marks every error raised while constructing a
// validator from invalid input.
var ErrInvalidConfiguration = errors.New("invalid validator configuration")

// Validator decides whether a single rune is acceptable.
//
// Implementations must be immutable. Equal and Hash must agree: validators
// that are Equal return the same Hash.
type Validator interface {
	fmt.Stringer

	// Validate reports whether r is acceptable. It never fails.
	Validate(r rune) bool

	// Kind returns the variant tag.
	Kind() Kind

	// Equal reports whether other is the same variant with the same configuration.
	Equal(other Validator) bool

	// Hash returns a hash of the variant tag and configuration.
	Hash() uint64
}

var (
	acceptAllHash = xxhash.Sum64String(string(KindAcceptAll))
	digitHash     = xxhash.Sum64String(string(KindDigit))
)

// hashConfig hashes a variant tag followed by its configuration bytes.
// The zero byte keeps the tag from running into the configuration.
func hashConfig(kind Kind, config ...string) uint64 {
	d := xxhash.New()
	_, _ = d.WriteString(string(kind))
	for _, c := range config {
		_, _ = d.Write([]byte{0})
		_, _ = d.WriteString(c)
	}
	return d.Sum64()
}

// canonical dereferences pointers to the built-in variants so that
// &Digit{} and Digit{} compare equal. Nil pointers to them yield nil.
func canonical(v Validator) Validator {
	switch p := v.(type) {
	case *AcceptAll:
		if p == nil {
			return nil
		}
		return *p
	case *Digit:
		if p == nil {
			return nil
		}
		return *p
	case *MaskedDigit:
		if p == nil {
			return nil
		}
		return *p
	case *Letter:
		if p == nil {
			return nil
		}
		return *p
	}
	return v
}

// AcceptAll accepts every rune.
type AcceptAll struct{}

// NewAcceptAll returns the AcceptAll validator.
func NewAcceptAll() AcceptAll { return AcceptAll{} }

// Validate always returns true.
func (AcceptAll) Validate(rune) bool { return true }

// Kind returns KindAcceptAll.
func (AcceptAll) Kind() Kind { return KindAcceptAll }

// Equal reports whether other is an AcceptAll.
func (AcceptAll) Equal(other Validator) bool {
	_, ok := canonical(other).(AcceptAll)
	return ok
}

// Hash returns a fixed value shared by all AcceptAll validators.
func (AcceptAll) Hash() uint64 { return acceptAllHash }

func (AcceptAll) String() string { return string(KindAcceptAll) }

// Digit accepts runes in the Unicode decimal digit category (Nd), which
// includes digits from non-Latin scripts such as '٣' or '७'.
type Digit struct{}

// NewDigit returns the Digit validator.
func NewDigit() Digit { return Digit{} }

// Validate reports whether r is a decimal digit.
func (Digit) Validate(r rune) bool { return unicode.IsDigit(r) }

// Kind returns KindDigit.
func (Digit) Kind() Kind { return KindDigit }

// Equal reports whether other is a Digit.
func (Digit) Equal(other Validator) bool {
	_, ok := canonical(other).(Digit)
	return ok
}

// Hash returns a fixed value shared by all Digit validators.
func (Digit) Hash() uint64 { return digitHash }

func (Digit) String() string { return string(KindDigit) }
