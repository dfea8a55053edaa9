package validator

import (
	"fmt"
	"unicode"

	"golang.org/x/text/unicode/rangetable"
)

var (
	// latin holds the basic Latin letters A-Z and a-z.
	latin = rangetable.Merge(
		&unicode.RangeTable{R16: []unicode.Range16{{Lo: 'A', Hi: 'Z', Stride: 1}}},
		&unicode.RangeTable{R16: []unicode.Range16{{Lo: 'a', Hi: 'z', Stride: 1}}},
	)

	// cyrillic is the raw code point range from 'А' (U+0410) to 'я' (U+044F).
	// Ё and ё fall outside it.
	cyrillic = rangetable.New(runeRange('А', 'я')...)
)

func runeRange(lo, hi rune) []rune {
	rs := make([]rune, 0, hi-lo+1)
	for r := lo; r <= hi; r++ {
		rs = append(rs, r)
	}
	return rs
}

// IsEnglish reports whether r is a basic Latin letter.
func IsEnglish(r rune) bool { return unicode.Is(latin, r) }

// IsRussian reports whether r lies in the range 'А'..'я'.
func IsRussian(r rune) bool { return unicode.Is(cyrillic, r) }

// Letter accepts runes by Latin and Cyrillic alphabet membership.
//
// Validate returns true when the English flag matches Latin membership or
// the Russian flag matches Cyrillic membership. A disabled flag therefore
// matches runes outside its alphabet: Letter with English only accepts
// Latin letters but also digits and punctuation, and rejects only Cyrillic.
//
// The zero value supports both alphabets.
type Letter struct {
	// Stored inverted so the zero value is the default.
	noEnglish bool
	noRussian bool
}

// LetterOption configures a Letter.
type LetterOption func(*Letter)

// WithEnglish sets whether Latin letters are supported.
func WithEnglish(enabled bool) LetterOption {
	return func(l *Letter) { l.noEnglish = !enabled }
}

// WithRussian sets whether Cyrillic letters are supported.
func WithRussian(enabled bool) LetterOption {
	return func(l *Letter) { l.noRussian = !enabled }
}

// NewLetter returns a Letter supporting both alphabets unless changed by opts.
func NewLetter(opts ...LetterOption) Letter {
	var l Letter
	for _, opt := range opts {
		opt(&l)
	}
	return l
}

// SupportsEnglish reports whether the Latin alphabet is enabled.
func (l Letter) SupportsEnglish() bool { return !l.noEnglish }

// SupportsRussian reports whether the Cyrillic range is enabled.
func (l Letter) SupportsRussian() bool { return !l.noRussian }

// Validate applies the flag-matches-membership rule described on Letter.
func (l Letter) Validate(r rune) bool {
	return l.SupportsEnglish() == IsEnglish(r) || l.SupportsRussian() == IsRussian(r)
}

// Kind returns KindLetter.
func (Letter) Kind() Kind { return KindLetter }

// Equal reports whether other is a Letter with the same flags.
func (l Letter) Equal(other Validator) bool {
	o, ok := canonical(other).(Letter)
	return ok && o == l
}

// Hash returns a hash of both flags.
func (l Letter) Hash() uint64 {
	return hashConfig(KindLetter, flag(l.SupportsEnglish()), flag(l.SupportsRussian()))
}

func (l Letter) String() string {
	return fmt.Sprintf("%s(english=%t, russian=%t)", KindLetter, l.SupportsEnglish(), l.SupportsRussian())
}

func flag(b bool) string {
	if b {
		return "1"
	}
	return "0"
}
