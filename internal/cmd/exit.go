// Package cmd implements the urlcoder CLI commands and Kong parser setup.
package cmd

import (
	"errors"

	"github.com/dedene/urlcoder"
)

// Process exit codes beyond the generic failure (1).
const (
	ExitUsage      = 2
	ExitValidation = 3
)

// ExitError wraps an error with a process exit code.
type ExitError struct {
	Code int
	Err  error
}

func (e *ExitError) Error() string {
	if e == nil || e.Err == nil {
		return "exit"
	}
	return e.Err.Error()
}

func (e *ExitError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// ExitCode extracts the exit code from an error.
// Returns 0 for nil, the embedded code for ExitError, 1 otherwise.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	var ee *ExitError
	if errors.As(err, &ee) && ee != nil {
		if ee.Code < 0 {
			return 1
		}
		return ee.Code
	}
	return 1
}

// validationExit tags policy rejections from the urlcoder package with
// ExitValidation. Other errors pass through unchanged.
func validationExit(err error) error {
	if err == nil {
		return nil
	}

	for _, target := range []error{
		urlcoder.ErrInvalidURL,
		urlcoder.ErrReservedChars,
		urlcoder.ErrInvalidParamKeys,
		urlcoder.ErrPatternTimeout,
	} {
		if errors.Is(err, target) {
			return &ExitError{Code: ExitValidation, Err: err}
		}
	}

	return err
}

// exitPanic is used by the kong.Exit trick to intercept os.Exit calls.
type exitPanic struct{ code int }
