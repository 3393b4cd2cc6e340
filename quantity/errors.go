// Package quantity defines the typed physical quantities used by the sizing
// formulas. Every type wraps a single float64 held in one canonical SI unit;
// values are immutable and compared with ==. Distinct Go types are what keep
// a Length from being passed where a Mass is expected, so there is no
// runtime dimension tag.
//
// Unit constructors are plain functions (Millimeters(8), Grams(250), RPM(3000))
// and accessors convert back (l.Millimeters()). Only a few physically
// meaningful cross-type products exist, e.g. Mass.MulAcceleration → Force.
package quantity

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidArgument is the root of every validation failure in this module.
// Errors returned by constructors and formulas satisfy
// errors.Is(err, ErrInvalidArgument).
var ErrInvalidArgument = errors.New("invalid argument")

// ErrNonPositive reports a magnitude that must be strictly positive.
var ErrNonPositive = fmt.Errorf("%w: non-positive value", ErrInvalidArgument)

// RequirePositive returns an ErrNonPositive error naming field when v is not
// strictly positive. NaN is rejected as well.
func RequirePositive(field string, v float64) error {
	if !(v > 0) || math.IsInf(v, 1) {
		return fmt.Errorf("%w: %s must be > 0, got %g", ErrNonPositive, field, v)
	}
	return nil
}

// Invalidf formats an ErrInvalidArgument error.
func Invalidf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidArgument, fmt.Sprintf(format, args...))
}
