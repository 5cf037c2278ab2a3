package sequence

import (
	"errors"
	"math/big"
	"testing"

	"github.com/abhisek/seqiz/internal/numeric"
)

var ints = numeric.Ints

func TestIsArithmetic(t *testing.T) {
	tests := []struct {
		terms []*big.Rat
		want  bool
	}{
		{ints(), false},
		{ints(1), false},
		{ints(1, 2), false},
		{ints(1, 2, 3), true},
		{ints(2, 4, 6, 8), true},
		{ints(10, 7, 4, 1, -2), true},
		{ints(5, 5, 5), true},
		{ints(1, 2, 4), false},
		{ints(1, 2, 3, 5), false},
		{[]*big.Rat{big.NewRat(1, 2), big.NewRat(1, 1), big.NewRat(3, 2)}, true},
		{[]*big.Rat{big.NewRat(1, 3), big.NewRat(2, 3), big.NewRat(1, 1), big.NewRat(4, 3)}, true},
	}

	for _, tc := range tests {
		if got := IsArithmetic(tc.terms); got != tc.want {
			t.Errorf("IsArithmetic(%v) = %v, want %v", tc.terms, got, tc.want)
		}
	}
}

func TestIsGeometric(t *testing.T) {
	tests := []struct {
		terms []*big.Rat
		want  bool
	}{
		{ints(), false},
		{ints(3), false},
		{ints(3, 6), false},
		{ints(3, 6, 12), true},
		{ints(1, 2, 4, 8, 16), true},
		{ints(2, -6, 18, -54), true},
		{ints(16, 8, 4, 2), true},
		{ints(7, 7, 7), true},
		{ints(1, 2, 3), false},
		{ints(1, 2, 4, 7), false},
		// Zero divisors make the ratio undefined.
		{ints(0, 0, 0), false},
		{ints(0, 1, 2), false},
		{ints(2, 0, 0), false},
		{ints(3, 6, 0, 0), false},
	}

	for _, tc := range tests {
		if got := IsGeometric(tc.terms); got != tc.want {
			t.Errorf("IsGeometric(%v) = %v, want %v", tc.terms, got, tc.want)
		}
	}
}

func TestIsQuadratic(t *testing.T) {
	tests := []struct {
		terms []*big.Rat
		want  bool
	}{
		{ints(1, 4, 9), false},
		{ints(1, 4, 9, 16), true},
		{ints(1, 4, 9, 16, 25, 36), true},
		{ints(1, 2, 4, 7), true},
		{ints(6, 11, 18, 27), true},
		{ints(0, -1, -4, -9), true},
		{ints(1, 4, 9, 17), false},
		{ints(1, 2, 4, 8), false},
		// Arithmetic lists have a constant (zero) second difference but
		// are not quadratic.
		{ints(2, 4, 6, 8), false},
		{ints(5, 5, 5, 5), false},
	}

	for _, tc := range tests {
		if got := IsQuadratic(tc.terms); got != tc.want {
			t.Errorf("IsQuadratic(%v) = %v, want %v", tc.terms, got, tc.want)
		}
	}
}

func TestIsConstant(t *testing.T) {
	tests := []struct {
		terms []*big.Rat
		want  bool
	}{
		{ints(), false},
		{ints(5), false},
		{ints(5, 5), true},
		{ints(5, 5, 5), true},
		{ints(0, 0, 0), true},
		{ints(5, 5, 6), false},
		{[]*big.Rat{big.NewRat(1, 2), big.NewRat(2, 4)}, true},
	}

	for _, tc := range tests {
		if got := IsConstant(tc.terms); got != tc.want {
			t.Errorf("IsConstant(%v) = %v, want %v", tc.terms, got, tc.want)
		}
	}
}

func TestRatio(t *testing.T) {
	r, err := Ratio(big.NewRat(12, 1), big.NewRat(8, 1))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if r.Cmp(big.NewRat(3, 2)) != 0 {
		t.Errorf("Ratio(12, 8) = %s, want 3/2", r.RatString())
	}

	_, err = Ratio(big.NewRat(3, 1), new(big.Rat))
	if !errors.Is(err, ErrDivisionByZero) {
		t.Fatalf("expected ErrDivisionByZero, got %v", err)
	}
	var dz *DivisionByZeroError
	if !errors.As(err, &dz) {
		t.Fatalf("expected *DivisionByZeroError, got %T", err)
	}
	if dz.Dividend.Cmp(big.NewRat(3, 1)) != 0 {
		t.Errorf("Dividend = %s, want 3", dz.Dividend.RatString())
	}
	if got := err.Error(); got != "cannot compute ratio 3/0: division by zero" {
		t.Errorf("Error() = %q", got)
	}
}

func TestClassifiers_DoNotMutateInput(t *testing.T) {
	terms := ints(1, 4, 9, 16)
	IsArithmetic(terms)
	IsGeometric(terms)
	IsQuadratic(terms)
	IsConstant(terms)

	want := ints(1, 4, 9, 16)
	for i := range want {
		if terms[i].Cmp(want[i]) != 0 {
			t.Fatalf("term %d changed to %s", i, terms[i].RatString())
		}
	}
}
