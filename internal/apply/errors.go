package apply

import "errors"

// Process exit codes
const (
	ExitOK             = 0
	ExitFailure        = 1 // usage, unknown profile, backup failure
	ExitMissingPalette = 2 // pywal color cache missing or unreadable
	ExitBadTarget      = 3 // polybar config unreadable or unparsable
	ExitWriteFailed    = 4 // polybar config could not be written
	ExitBootstrapped   = 5 // fresh local config created; run again
)

// ExitError is a fatal error carrying the process exit code and an
// optional hint for the user.
type ExitError struct {
	Code int
	Err  error
	Hint string
}

func (e *ExitError) Error() string {
	return e.Err.Error()
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

// ExitCode maps err to a process exit code
func ExitCode(err error) int {
	if err == nil {
		return ExitOK
	}
	var ee *ExitError
	if errors.As(err, &ee) {
		return ee.Code
	}
	return ExitFailure
}
