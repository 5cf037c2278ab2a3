package sequence

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/abhisek/seqiz/internal/numeric"
	"github.com/abhisek/seqiz/internal/poly"
)

// Equation is a closed-form expression for the nth term.
// Implementations are immutable and safe for concurrent use.
type Equation interface {
	// Eval substitutes n into the expression.
	Eval(n int64) (*big.Rat, error)

	// String renders the expression with n as the free variable,
	// e.g. "2*n + 1" or "3*2^(n - 1)".
	String() string
}

// ConstantEquation is the same value for every n.
type ConstantEquation struct {
	Value *big.Rat
}

func (e ConstantEquation) Eval(int64) (*big.Rat, error) {
	return new(big.Rat).Set(e.Value), nil
}

func (e ConstantEquation) String() string {
	return numeric.FormatRat(e.Value)
}

// LinearEquation is First + (n - 1) * Diff.
type LinearEquation struct {
	First *big.Rat
	Diff  *big.Rat
}

func (e LinearEquation) Eval(n int64) (*big.Rat, error) {
	steps := new(big.Rat).SetInt(offset(n))
	r := new(big.Rat).Mul(steps, e.Diff)
	return r.Add(r, e.First), nil
}

func (e LinearEquation) String() string {
	intercept := new(big.Rat).Sub(e.First, e.Diff)
	return formatPolynomial([]*big.Rat{e.Diff, intercept})
}

// GeometricEquation is First * Ratio^(n - 1).
type GeometricEquation struct {
	First *big.Rat
	Ratio *big.Rat
}

func (e GeometricEquation) Eval(n int64) (*big.Rat, error) {
	p, err := pow(e.Ratio, offset(n))
	if err != nil {
		return nil, err
	}
	return p.Mul(p, e.First), nil
}

func (e GeometricEquation) String() string {
	var b strings.Builder
	switch {
	case e.First.Cmp(big.NewRat(1, 1)) == 0:
	case e.First.Cmp(big.NewRat(-1, 1)) == 0:
		b.WriteString("-")
	default:
		b.WriteString(wrapRat(e.First))
		b.WriteString("*")
	}
	b.WriteString(wrapRat(e.Ratio))
	b.WriteString("^(n - 1)")
	return b.String()
}

// QuadraticEquation is A*n^2 + B*n + C.
type QuadraticEquation struct {
	A, B, C *big.Rat
}

func (e QuadraticEquation) Eval(n int64) (*big.Rat, error) {
	return poly.Eval(e.Coefficients(), new(big.Rat).SetInt64(n)), nil
}

func (e QuadraticEquation) String() string {
	return formatPolynomial(e.Coefficients())
}

// Coefficients returns [A, B, C].
func (e QuadraticEquation) Coefficients() []*big.Rat {
	return []*big.Rat{e.A, e.B, e.C}
}

// offset returns n - 1 without overflowing.
func offset(n int64) *big.Int {
	k := big.NewInt(n)
	return k.Sub(k, big.NewInt(1))
}

// MaxExponent bounds |n - 1| for geometric terms. Ratios of 0, 1 and -1
// are exempt since their powers stay small.
const MaxExponent = 1 << 16

// pow returns base^exp for any integer exp. A negative exp on a zero base
// is a DivisionByZeroError.
func pow(base *big.Rat, exp *big.Int) (*big.Rat, error) {
	abs := new(big.Int).Abs(exp)
	if abs.Cmp(big.NewInt(MaxExponent)) > 0 && !trivialBase(base) {
		return nil, fmt.Errorf("%w: |%s| exceeds %d", ErrExponentTooLarge, exp, MaxExponent)
	}
	num := new(big.Int).Exp(base.Num(), abs, nil)
	den := new(big.Int).Exp(base.Denom(), abs, nil)
	if exp.Sign() >= 0 {
		return new(big.Rat).SetFrac(num, den), nil
	}
	if num.Sign() == 0 {
		return nil, &DivisionByZeroError{Dividend: big.NewRat(1, 1)}
	}
	return new(big.Rat).SetFrac(den, num), nil
}

// trivialBase reports whether base is an integer of magnitude at most 1.
func trivialBase(base *big.Rat) bool {
	return base.IsInt() && base.Num().CmpAbs(big.NewInt(1)) <= 0
}

// formatPolynomial renders coefficients (highest degree first) in n,
// dropping zero terms: [1/2, -1/2, 1] -> "n^2/2 - n/2 + 1".
func formatPolynomial(coeffs []*big.Rat) string {
	var b strings.Builder
	degree := len(coeffs) - 1
	for i, c := range coeffs {
		if c.Sign() == 0 {
			continue
		}
		power := degree - i
		switch {
		case b.Len() == 0 && c.Sign() < 0:
			b.WriteString("-")
		case b.Len() > 0 && c.Sign() < 0:
			b.WriteString(" - ")
		case b.Len() > 0:
			b.WriteString(" + ")
		}
		b.WriteString(formatMonomial(new(big.Rat).Abs(c), power))
	}
	if b.Len() == 0 {
		return "0"
	}
	return b.String()
}

// formatMonomial renders a positive coefficient times n^power.
func formatMonomial(c *big.Rat, power int) string {
	if power == 0 {
		return numeric.FormatRat(c)
	}

	v := "n"
	if power > 1 {
		v = "n^" + big.NewInt(int64(power)).String()
	}

	num := c.Num().String()
	switch {
	case c.IsInt() && num == "1":
		return v
	case c.IsInt():
		return num + "*" + v
	case num == "1":
		return v + "/" + c.Denom().String()
	default:
		return num + "*" + v + "/" + c.Denom().String()
	}
}

// wrapRat parenthesizes negative and fractional values so they read
// unambiguously next to an operator.
func wrapRat(r *big.Rat) string {
	s := numeric.FormatRat(r)
	if r.Sign() < 0 || !r.IsInt() {
		return "(" + s + ")"
	}
	return s
}
