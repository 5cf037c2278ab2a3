package numeric

import (
	"math/big"
)

// Kind describes how a Value is represented.
type Kind int

const (
	KindInteger Kind = iota // exactly whole
	KindReal                // non-integer rational
)

func (k Kind) String() string {
	switch k {
	case KindInteger:
		return "integer"
	case KindReal:
		return "real"
	default:
		return "unknown"
	}
}

// Value is an exact number tagged as Integer or Real. The zero Value is
// the integer 0.
type Value struct {
	kind Kind
	rat  *big.Rat
}

// Normalize converts r into a Value, tagging it as an integer when it is
// exactly whole. r is copied.
func Normalize(r *big.Rat) Value {
	if r == nil {
		return Value{kind: KindInteger, rat: new(big.Rat)}
	}
	c := new(big.Rat).Set(r)
	if c.IsInt() {
		return Value{kind: KindInteger, rat: c}
	}
	return Value{kind: KindReal, rat: c}
}

// Int64 returns an integer Value.
func Int64(n int64) Value {
	return Normalize(new(big.Rat).SetInt64(n))
}

func (v Value) Kind() Kind { return v.kind }

func (v Value) IsInteger() bool { return v.kind == KindInteger }

// Rat returns a copy of the exact value.
func (v Value) Rat() *big.Rat {
	if v.rat == nil {
		return new(big.Rat)
	}
	return new(big.Rat).Set(v.rat)
}

// Int returns the value as a big.Int and whether it is whole.
func (v Value) Int() (*big.Int, bool) {
	if !v.IsInteger() {
		return nil, false
	}
	return new(big.Int).Set(v.Rat().Num()), true
}

// Float64 returns the nearest float64.
func (v Value) Float64() float64 {
	f, _ := v.Rat().Float64()
	return f
}

// Equal reports whether both values hold the same number.
func (v Value) Equal(o Value) bool {
	return v.Rat().Cmp(o.Rat()) == 0
}

// String renders integers as plain digits and reals as p/q.
func (v Value) String() string {
	return FormatRat(v.Rat())
}

// Decimal renders the value with prec digits after the decimal point.
// Integers ignore prec.
func (v Value) Decimal(prec int) string {
	if v.IsInteger() {
		return v.String()
	}
	return v.Rat().FloatString(prec)
}

// FormatRat renders r as integer digits when whole, otherwise as p/q.
func FormatRat(r *big.Rat) string {
	if r.IsInt() {
		return r.Num().String()
	}
	return r.RatString()
}
