// Package preset provides named validator sets for slots.
//
// Built-in presets cover the common slot kinds of masked inputs:
//
//	| Name           | Validators                          |
//	|----------------|-------------------------------------|
//	| any            | accept_all                          |
//	| digit          | digit                               |
//	| maskable_digit | masked_digit (X, x, *)              |
//	| letter         | letter (english, russian)           |
//	| english        | letter (english only)               |
//	| russian        | letter (russian only)               |
//	| alphanumeric   | digit, letter (english, russian)    |
//
// A [Registry] starts with the built-ins and accepts additional sets from
// configuration. Registered sets may shadow built-ins.
package preset
