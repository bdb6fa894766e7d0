package vettura

import (
	"errors"
	"fmt"
)

// StartupError represents a fatal failure during application startup
// (SDL init, renderer creation, window construction). The bootstrap
// does not recover from these; the process exits abnormally.
type StartupError struct {
	Step string // Startup step that failed (e.g., "init", "window")
	Err  error  // Underlying error
}

func (e *StartupError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("vettura: %s: %v", e.Step, e.Err)
	}
	return fmt.Sprintf("vettura: %s", e.Step)
}

func (e *StartupError) Unwrap() error {
	return e.Err
}

// NewStartupError creates a new startup error.
func NewStartupError(step string, err error) *StartupError {
	return &StartupError{Step: step, Err: err}
}

// IsStartupError checks if an error is a startup error.
func IsStartupError(err error) bool {
	var startupErr *StartupError
	return errors.As(err, &startupErr)
}
