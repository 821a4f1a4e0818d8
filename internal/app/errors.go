package app

import "fmt"

// CompanionExitError reports a non-zero exit of the companion executable.
// The companion has already printed its own diagnostics.
type CompanionExitError struct {
	Code int
}

func (e *CompanionExitError) Error() string {
	return fmt.Sprintf("companion executable exited with status %d", e.Code)
}
