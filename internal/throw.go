package internal

import "github.com/pkg/errors"

var (
	ErrInsufficientPoints = errors.New("at least 3 points are required")
	ErrNonFinitePoint     = errors.New("point has a non-finite coordinate")
	ErrUnknownAlgorithm   = errors.New("unknown hull algorithm")
)

// Input errors are returned normally. Broken invariants deep inside an
// algorithm (a successor walk that never closes, say) are not something a
// caller can act on, so those panic with a HullError and the public API
// recovers them into an error.

type HullError error

// Panic with a HullError.
func fatalf(format string, args ...interface{}) {
	panic(HullError(errors.Errorf(format, args...)))
}

func HandleHullPanicRecover(r interface{}) error {
	if r != nil {
		if hullError, ok := r.(HullError); ok {
			return hullError
		}
		panic(r)
	}
	return nil
}
