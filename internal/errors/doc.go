// Package errors provides error handling conventions for the slotcheck CLI.
//
// It re-exports the helpers of github.com/cockroachdb/errors that the rest of
// the module relies on, defines sentinel errors for the CLI surface, and
// carries the [ExitError] type used to map failures onto process exit codes.
//
// # Sentinel Errors
//
// Sentinel errors allow callers to check for specific error conditions
// using [Is]:
//
//	if errors.Is(err, errors.ErrNotFound) {
//	    // handle not found case
//	}
//
// # Exit Codes
//
//   - ExitSuccess (0): Command completed successfully
//   - ExitUser (1): Rejected input, bad flags or configuration
//   - ExitSystem (2): I/O and other environment failures
//
// # Hints
//
// Errors may carry user-facing hints attached with [WithHint]. The CLI prints
// them below the error message, together with any [ExitError] suggestion:
//
//	err := errors.WithHint(errors.ErrNotFound, "Run: slotcheck sets list")
//	for _, h := range errors.GetAllHints(err) {
//	    fmt.Println("hint:", h)
//	}
package errors
