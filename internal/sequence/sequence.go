// Package sequence classifies numeric term lists as constant, arithmetic,
// geometric or quadratic sequences and evaluates their closed form.
//
// Terms are 1-indexed: the first observed term is n=1. Term substitutes n
// literally, so Term(0) extrapolates one step before the first term.
package sequence

import (
	"fmt"
	"math"
	"math/big"

	"github.com/abhisek/seqiz/internal/numeric"
	"github.com/abhisek/seqiz/internal/poly"
)

// Sequence is a classified term list with its closed-form equation.
// It is read-only after New and safe for concurrent use.
type Sequence struct {
	typ      Type
	equation Equation
	terms    []*big.Rat
}

type options struct {
	integerCoefficients bool
}

// Option configures New.
type Option func(*options)

// WithIntegerCoefficients makes New fail with a MalformedCoefficientError
// when a quadratic fit has a non-integer coefficient.
func WithIntegerCoefficients() Option {
	return func(o *options) { o.integerCoefficients = true }
}

// New classifies terms and builds the equation for the first matching
// family, checked in order: constant, arithmetic, geometric, quadratic.
// Terms that match nothing produce a Sequence of TypeNone, not an error.
func New(terms []*big.Rat, opts ...Option) (*Sequence, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	s := &Sequence{typ: TypeNone, terms: copyTerms(terms)}
	t := s.terms

	if IsConstant(t) {
		s.typ = TypeConstant
		s.equation = ConstantEquation{Value: t[0]}
	} else if IsArithmetic(t) {
		s.typ = TypeArithmetic
		s.equation = LinearEquation{First: t[0], Diff: difference(t[0], t[1])}
	} else if r, ok := commonRatio(t); ok && len(t) >= 3 {
		s.typ = TypeGeometric
		s.equation = GeometricEquation{First: t[0], Ratio: r}
	} else if IsQuadratic(t) {
		eq, err := fitQuadratic(t, o)
		if err != nil {
			return nil, err
		}
		s.typ = TypeQuadratic
		s.equation = eq
	}

	return s, nil
}

// fitQuadratic interpolates the first three terms at n = 1, 2, 3.
func fitQuadratic(t []*big.Rat, o options) (QuadraticEquation, error) {
	points := make([]poly.Point, 3)
	for i := range points {
		points[i] = poly.Point{X: new(big.Rat).SetInt64(int64(i + 1)), Y: t[i]}
	}

	// Three distinct points always yield three coefficients.
	coeffs, err := poly.Interpolate(points)
	if err != nil {
		return QuadraticEquation{}, fmt.Errorf("fit quadratic: %w", err)
	}

	if o.integerCoefficients {
		for i, c := range coeffs {
			if !c.IsInt() {
				return QuadraticEquation{}, &MalformedCoefficientError{
					Index:  i,
					Value:  c,
					Reason: "not an integer",
				}
			}
		}
	}

	return QuadraticEquation{A: coeffs[0], B: coeffs[1], C: coeffs[2]}, nil
}

// Type returns the classification.
func (s *Sequence) Type() Type { return s.typ }

// Equation returns the closed form, or nil for TypeNone.
func (s *Sequence) Equation() Equation { return s.equation }

// Terms returns a copy of the observed terms.
func (s *Sequence) Terms() []*big.Rat { return copyTerms(s.terms) }

// Term returns the value of the equation at n, normalized to an integer
// when exactly whole. n is substituted as is: Term(1) is the first
// observed term and Term(0) the one before it.
func (s *Sequence) Term(n int64) (numeric.Value, error) {
	if s.typ == TypeNone || s.equation == nil {
		return numeric.Value{}, ErrNoSequence
	}
	r, err := s.equation.Eval(n)
	if err != nil {
		return numeric.Value{}, fmt.Errorf("term %d: %w", n, err)
	}
	return numeric.Normalize(r), nil
}

// MaxExtrapolate bounds the count accepted by Extrapolate.
const MaxExtrapolate = 10000

// Extrapolate returns count consecutive terms starting at index from.
// The last index, from+count-1, must fit in an int64.
func (s *Sequence) Extrapolate(from int64, count int) ([]numeric.Value, error) {
	if count < 0 || count > MaxExtrapolate {
		return nil, fmt.Errorf("count must be between 0 and %d, got %d", MaxExtrapolate, count)
	}
	if count > 0 && from > math.MaxInt64-int64(count-1) {
		return nil, fmt.Errorf("%d terms from index %d overflow int64", count, from)
	}
	if s.typ == TypeNone {
		return nil, ErrNoSequence
	}
	out := make([]numeric.Value, 0, count)
	for i := 0; i < count; i++ {
		v, err := s.Term(from + int64(i))
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

func copyTerms(terms []*big.Rat) []*big.Rat {
	out := make([]*big.Rat, len(terms))
	for i, t := range terms {
		out[i] = new(big.Rat).Set(t)
	}
	return out
}
