package resample

import (
	"errors"
	"strings"
)

// ErrInvalidParameter is wrapped by every error caused by an out-of-range
// caller parameter (target count outside [1,N], non-positive k and so on).
// Test it with errors.Is.
var ErrInvalidParameter = errors.New("invalid parameter")

// Error is the error type returned by the strategies and the Resampler.
// The Decorate method allows callers to add information while passing the
// error up, without wrapping it in another type.
type Error struct {
	message string
	op      string //the strategy that produced the error
	deco    []string
	invalid bool //caller-supplied parameter out of range
}

func (err *Error) Error() string {
	deco := ""
	if len(err.deco) > 0 {
		deco = " (" + strings.Join(err.deco, ", ") + ")"
	}
	return "goPIC/resample." + err.op + ": " + err.message + deco
}

// Decorate adds deco to the error and returns the current decoration slice.
// An empty string only returns the slice.
func (err *Error) Decorate(deco string) []string {
	if deco != "" {
		err.deco = append(err.deco, deco)
	}
	return err.deco
}

// Op returns the name of the operation that produced the error.
func (err *Error) Op() string {
	return err.op
}

func (err *Error) Unwrap() error {
	if err.invalid {
		return ErrInvalidParameter
	}
	return nil
}

// errDecorate asserts that err is an *Error and decorates it. It lets the
// facade add its own frame to strategy errors.
func errDecorate(err error, caller string) error {
	err2, ok := err.(*Error)
	if !ok {
		return err
	}
	err2.Decorate(caller)
	return err2
}
