package sequence

import "math/big"

// IsConstant reports whether terms holds at least two values, all equal.
func IsConstant(terms []*big.Rat) bool {
	if len(terms) < 2 {
		return false
	}
	for _, t := range terms[1:] {
		if t.Cmp(terms[0]) != 0 {
			return false
		}
	}
	return true
}

// IsArithmetic reports whether terms share a common difference. At least
// three terms are needed to confirm the pattern.
func IsArithmetic(terms []*big.Rat) bool {
	if len(terms) < 3 {
		return false
	}
	d := difference(terms[0], terms[1])
	for i := 2; i < len(terms); i++ {
		if difference(terms[i-1], terms[i]).Cmp(d) != 0 {
			return false
		}
	}
	return true
}

// IsGeometric reports whether terms share a common ratio. At least three
// terms are needed. A zero divisor anywhere means the ratio is undefined
// and the terms are not geometric.
func IsGeometric(terms []*big.Rat) bool {
	if len(terms) < 3 {
		return false
	}
	_, ok := commonRatio(terms)
	return ok
}

// commonRatio returns the ratio shared by every pair of consecutive terms.
func commonRatio(terms []*big.Rat) (*big.Rat, bool) {
	if len(terms) < 2 {
		return nil, false
	}
	r, err := Ratio(terms[1], terms[0])
	if err != nil {
		return nil, false
	}
	for i := 2; i < len(terms); i++ {
		ri, err := Ratio(terms[i], terms[i-1])
		if err != nil || ri.Cmp(r) != 0 {
			return nil, false
		}
	}
	return r, true
}

// IsQuadratic reports whether terms have a constant second difference and
// are not arithmetic. At least four terms are needed.
func IsQuadratic(terms []*big.Rat) bool {
	if len(terms) < 4 {
		return false
	}
	// Arithmetic terms have a zero second difference; keep them out.
	if IsArithmetic(terms) {
		return false
	}

	diffs := make([]*big.Rat, 0, len(terms)-1)
	for i := 1; i < len(terms); i++ {
		diffs = append(diffs, difference(terms[i-1], terms[i]))
	}

	d := difference(diffs[0], diffs[1])
	for i := 2; i < len(diffs); i++ {
		if difference(diffs[i-1], diffs[i]).Cmp(d) != 0 {
			return false
		}
	}
	return true
}

// Ratio returns a/b, or a DivisionByZeroError when b is zero.
func Ratio(a, b *big.Rat) (*big.Rat, error) {
	if b.Sign() == 0 {
		return nil, &DivisionByZeroError{Dividend: new(big.Rat).Set(a)}
	}
	return new(big.Rat).Quo(a, b), nil
}

// difference returns b - a.
func difference(a, b *big.Rat) *big.Rat {
	return new(big.Rat).Sub(b, a)
}
