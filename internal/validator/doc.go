// Package validator implements single-character validators for formatted
// input fields such as phone-number or date masks.
//
// A [Validator] decides whether one candidate rune is acceptable at a slot.
// Four variants are provided:
//
//   - [AcceptAll]: accepts every rune.
//   - [Digit]: accepts Unicode decimal digits (category Nd).
//   - [MaskedDigit]: accepts digits or one of a fixed list of placeholder
//     runes, X, x and * by default.
//   - [Letter]: accepts runes by Latin and Cyrillic alphabet membership,
//     each alphabet toggled independently.
//
// # Identity
//
// Validators are immutable comparable values. Two validators of the same
// variant and configuration are [Validator.Equal] and share a
// [Validator.Hash], so a [Set] holding validators collapses duplicates:
//
//	set := validator.NewSet(validator.NewDigit(), validator.NewMaskedDigit())
//	set.Add(validator.NewMaskedDigit()) // false, already present
//	set.Validate('x')                   // true
//
// # Definitions
//
// A [Definition] is the serializable form of a validator used in
// configuration files. [Definition.Build] turns it into a Validator and
// [Describe] goes the other way. Invalid configurations are reported with
// errors marked [ErrInvalidConfiguration].
//
// # Concurrency
//
// Validators are safe for concurrent use. A Set may be read concurrently
// once it is no longer mutated.
package validator
