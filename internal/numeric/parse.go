package numeric

import (
	"errors"
	"fmt"
	"math/big"
	"regexp"
	"strconv"
	"strings"
)

// ErrInvalidTerm is wrapped by every parse failure.
var ErrInvalidTerm = errors.New("invalid term")

// MaxExponent bounds the exponent of a decimal term such as "1e300".
const MaxExponent = 1000

var (
	integerPattern = regexp.MustCompile(`^[+-]?\d+$`)
	decimalPattern = regexp.MustCompile(`^[+-]?(?:\d+(?:\.\d+)?|\.\d+)(?:[eE]([+-]?\d+))?$`)
)

// Parse parses a single term in base 10. Accepted forms:
// - integers: "42", "-7", "007"
// - decimals: "3.5", "-0.25", "1e3"
// - fractions: "3/4", "-7/2"
// Base prefixes such as "0x" are rejected.
func Parse(s string) (*big.Rat, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, fmt.Errorf("%w: empty", ErrInvalidTerm)
	}

	if num, den, ok := strings.Cut(s, "/"); ok {
		return parseFraction(s, strings.TrimSpace(num), strings.TrimSpace(den))
	}

	m := decimalPattern.FindStringSubmatch(s)
	if m == nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidTerm, s)
	}
	if m[1] != "" {
		exp, err := strconv.Atoi(m[1])
		if err != nil || exp > MaxExponent || exp < -MaxExponent {
			return nil, fmt.Errorf("%w: exponent in %q exceeds %d", ErrInvalidTerm, s, MaxExponent)
		}
	}

	r, ok := new(big.Rat).SetString(s)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrInvalidTerm, s)
	}
	return r, nil
}

// parseFraction parses "a/b" with both parts as base-10 integers.
func parseFraction(s, num, den string) (*big.Rat, error) {
	if !integerPattern.MatchString(num) {
		return nil, fmt.Errorf("%w: invalid numerator in %q", ErrInvalidTerm, s)
	}
	if !integerPattern.MatchString(den) {
		return nil, fmt.Errorf("%w: invalid denominator in %q", ErrInvalidTerm, s)
	}

	n, ok := new(big.Int).SetString(num, 10)
	if !ok {
		return nil, fmt.Errorf("%w: invalid numerator in %q", ErrInvalidTerm, s)
	}
	d, ok := new(big.Int).SetString(den, 10)
	if !ok {
		return nil, fmt.Errorf("%w: invalid denominator in %q", ErrInvalidTerm, s)
	}
	if d.Sign() == 0 {
		return nil, fmt.Errorf("%w: zero denominator in %q", ErrInvalidTerm, s)
	}
	return new(big.Rat).SetFrac(n, d), nil
}

// ParseList parses terms from command-line style arguments. Each argument
// may hold several terms separated by commas or whitespace.
func ParseList(args []string) ([]*big.Rat, error) {
	var terms []*big.Rat
	for _, arg := range args {
		fields := strings.FieldsFunc(arg, func(r rune) bool {
			return r == ',' || r == ' ' || r == '\t' || r == '\n'
		})
		for _, f := range fields {
			r, err := Parse(f)
			if err != nil {
				return nil, fmt.Errorf("term %d: %w", len(terms)+1, err)
			}
			terms = append(terms, r)
		}
	}
	return terms, nil
}

// Ints builds a term list from integers.
func Ints(xs ...int64) []*big.Rat {
	out := make([]*big.Rat, len(xs))
	for i, x := range xs {
		out[i] = new(big.Rat).SetInt64(x)
	}
	return out
}
