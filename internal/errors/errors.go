package errors

import (
	"errors"
	"fmt"
	"os"

	"github.com/Stevedee925/phoenix/internal/logger"
)

// Domain error kinds. Engine operations wrap these with %w so callers can
// classify failures with errors.Is and surface a message without losing the
// precondition that was violated.
var (
	// ErrValidation indicates a required field was empty or malformed.
	ErrValidation = errors.New("validation failed")
	// ErrInvalidState indicates an operation that is not legal in the
	// entity's current lifecycle state.
	ErrInvalidState = errors.New("invalid state")
	// ErrInvalidDuration indicates a zero or negative duration where a
	// positive one is required.
	ErrInvalidDuration = errors.New("invalid duration")
)

// Format formats an error message with a consistent "Error: " prefix
func Format(err error) string {
	if err == nil {
		return ""
	}
	return fmt.Sprintf("Error: %v", err)
}

// Formatf formats an error message with a consistent "Error: " prefix using a format string
func Formatf(format string, args ...interface{}) string {
	return fmt.Sprintf("Error: "+format, args...)
}

// Fatal logs an error and exits the program with exit code 1
func Fatal(err error) {
	if err != nil {
		logger.Error("Command execution failed", "error", err)
		fmt.Fprintf(os.Stderr, "%s\n", Format(err))
		os.Exit(1)
	}
}

// Is reports whether any error in err's chain matches target.
// Re-exported so callers don't need both this package and stdlib errors.
func Is(err, target error) bool {
	return errors.Is(err, target)
}
