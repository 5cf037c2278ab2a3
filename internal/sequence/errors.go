package sequence

import (
	"errors"
	"fmt"
	"math/big"
)

// ErrNoSequence is returned when evaluating terms of a Sequence whose
// terms matched no known family.
var ErrNoSequence = errors.New("no sequence found")

// ErrDivisionByZero matches any DivisionByZeroError via errors.Is.
var ErrDivisionByZero = errors.New("division by zero")

// ErrExponentTooLarge is returned when a geometric term would need a power
// of the ratio beyond MaxExponent.
var ErrExponentTooLarge = errors.New("exponent too large")

// DivisionByZeroError indicates a ratio was requested with a zero divisor.
type DivisionByZeroError struct {
	Dividend *big.Rat
}

func (e *DivisionByZeroError) Error() string {
	return fmt.Sprintf("cannot compute ratio %s/0: division by zero", e.Dividend.RatString())
}

func (e *DivisionByZeroError) Is(target error) bool { return target == ErrDivisionByZero }

// MalformedCoefficientError indicates a quadratic fit produced a
// coefficient that cannot be represented faithfully.
type MalformedCoefficientError struct {
	Index  int // position in [a, b, c]
	Value  *big.Rat
	Reason string
}

func (e *MalformedCoefficientError) Error() string {
	return fmt.Sprintf("malformed quadratic coefficient %c = %s: %s",
		"abc"[e.Index], e.Value.RatString(), e.Reason)
}
