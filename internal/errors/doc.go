// Package errors provides error handling conventions for the syncopener CLI.
//
// Errors are created and wrapped with github.com/cockroachdb/errors, whose
// most common helpers are re-exported here so callers only import one errors
// package:
//
//	return errors.Wrap(err, "reading pairs file")
//
// # Sentinel Errors
//
// Sentinel errors allow callers to check for specific conditions using [Is]:
//
//	if errors.Is(err, errors.ErrNotFound) {
//	    // no pairs file in this workspace
//	}
//
// # Exit Codes
//
//   - ExitSuccess (0): Command completed successfully
//   - ExitUser (1): User-related error (invalid input, configuration, etc.)
//   - ExitSystem (2): System-related error (I/O, permissions, etc.)
//
// # ExitError
//
// [ExitError] wraps an underlying error with an exit code and optional
// suggestion. main prints the suggestion and exits with the code:
//
//	err := errors.NewUserError(errors.ErrInvalidConfig, "Run: syncopener doctor")
//	var exitErr *errors.ExitError
//	if errors.As(err, &exitErr) {
//	    os.Exit(exitErr.Code)
//	}
package errors
