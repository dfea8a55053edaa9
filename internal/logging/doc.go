// Package logging provides structured logging for the slotcheck CLI using slog.
//
// Loggers write either TTY-friendly text (colorized when the terminal allows
// it) or JSON. [Setup] builds the process logger from CLI options, optionally
// teeing JSON records to a log file, and the logger travels with the command
// context via [NewContext] and [FromContext].
//
// # Basic Usage
//
//	logger := logging.New(logging.Config{
//		Level:  slog.LevelInfo,
//		Format: logging.FormatText,
//	})
//	logger.Info("registered sets", "count", 7)
//
// # Testing
//
// [ForTest] routes log output through t.Log:
//
//	func TestSomething(t *testing.T) {
//		ctx := logging.NewContext(context.Background(), logging.ForTest(t))
//		// ...
//	}
package logging
