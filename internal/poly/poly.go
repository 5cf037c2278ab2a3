// Package poly fits polynomials through points using exact rational
// arithmetic.
package poly

import (
	"errors"
	"fmt"
	"math/big"
)

// ErrNoPoints is returned when Interpolate is called without points.
var ErrNoPoints = errors.New("no points to interpolate")

// Point is a sample (X, Y) of the polynomial.
type Point struct {
	X, Y *big.Rat
}

// Interpolate returns the coefficients of the unique polynomial of degree
// < len(points) passing through every point, highest degree first. The
// result always has len(points) entries; leading coefficients may be zero.
func Interpolate(points []Point) ([]*big.Rat, error) {
	if len(points) == 0 {
		return nil, ErrNoPoints
	}
	for i := range points {
		for j := i + 1; j < len(points); j++ {
			if points[i].X.Cmp(points[j].X) == 0 {
				return nil, fmt.Errorf("duplicate x value %s at points %d and %d",
					points[i].X.RatString(), i, j)
			}
		}
	}

	// Accumulate in ascending order, reverse at the end.
	n := len(points)
	acc := make([]*big.Rat, n)
	for i := range acc {
		acc[i] = new(big.Rat)
	}

	for i, pi := range points {
		// Basis polynomial L_i(x) = prod_{j != i} (x - x_j) / (x_i - x_j).
		basis := []*big.Rat{big.NewRat(1, 1)}
		denom := big.NewRat(1, 1)
		for j, pj := range points {
			if i == j {
				continue
			}
			basis = mulLinear(basis, pj.X)
			denom.Mul(denom, new(big.Rat).Sub(pi.X, pj.X))
		}

		scale := new(big.Rat).Quo(pi.Y, denom)
		for k, c := range basis {
			acc[k].Add(acc[k], new(big.Rat).Mul(c, scale))
		}
	}

	coeffs := make([]*big.Rat, n)
	for k := range acc {
		coeffs[n-1-k] = acc[k]
	}
	return coeffs, nil
}

// mulLinear multiplies the ascending-order polynomial p by (x - root).
func mulLinear(p []*big.Rat, root *big.Rat) []*big.Rat {
	out := make([]*big.Rat, len(p)+1)
	for i := range out {
		out[i] = new(big.Rat)
	}
	for k, c := range p {
		out[k+1].Add(out[k+1], c)
		out[k].Sub(out[k], new(big.Rat).Mul(c, root))
	}
	return out
}

// Eval evaluates coefficients (highest degree first) at x using Horner's
// method.
func Eval(coeffs []*big.Rat, x *big.Rat) *big.Rat {
	result := new(big.Rat)
	for _, c := range coeffs {
		result.Mul(result, x)
		result.Add(result, c)
	}
	return result
}
