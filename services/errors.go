package services

import (
	"errors"
	"fmt"
)

// ValidationError rejects bad input before any state is touched. It is
// handled at the point of entry and never rolls anything back, because
// nothing was written.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string { return e.Reason }

func validationErr(format string, args ...any) error {
	return &ValidationError{Reason: fmt.Sprintf(format, args...)}
}

// IsValidation reports whether err is a ValidationError.
func IsValidation(err error) bool {
	var v *ValidationError
	return errors.As(err, &v)
}

// PersistenceError reports a failed flush to the backing store. The
// in-memory ledger already holds the update, so callers surface this as
// a warning rather than rolling back; the next successful flush of the
// collection reconciles the stored state.
type PersistenceError struct {
	Key string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("persist %s: %v", e.Key, e.Err)
}

func (e *PersistenceError) Unwrap() error { return e.Err }

// IsPersistence reports whether err is an advisory PersistenceError.
func IsPersistence(err error) bool {
	var p *PersistenceError
	return errors.As(err, &p)
}

// ErrSensorUnavailable means the step sensor cannot deliver data on this
// device; the feature degrades to an informational state and no record
// is mutated.
var ErrSensorUnavailable = errors.New("step sensor unavailable")
