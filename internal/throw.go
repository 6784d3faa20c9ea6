package internal

import "github.com/pkg/errors"

// Threading errors through the hull partitioning and everything built on it
// would clutter every signature for a failure that can only happen at the
// boundary. Instead, we panic with a HullError, and the public API recovers to
// convert it back into an error.

var ErrInvalidInput = errors.New("invalid input")

type HullError struct {
	error
}

func (e HullError) Unwrap() error {
	return e.error
}

func (e HullError) Cause() error {
	return e.error
}

// Panic with a HullError.
func fatalf(format string, args ...interface{}) {
	panic(HullError{errors.Errorf(format, args...)})
}

// Panic with a HullError whose cause is ErrInvalidInput.
func invalidInputf(format string, args ...interface{}) {
	panic(HullError{errors.Wrapf(ErrInvalidInput, format, args...)})
}

// Converts a recovered HullError into an error. Anything else is a real panic
// and is re-raised.
func HandleHullPanicRecover(r interface{}) error {
	if r != nil {
		if hullError, ok := r.(HullError); ok {
			return hullError.error
		}
		panic(r)
	}
	return nil
}
