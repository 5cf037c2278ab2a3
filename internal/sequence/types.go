package sequence

import "fmt"

// Type is the family a term list was classified as.
type Type string

const (
	TypeNone       Type = "none"       // no family matched
	TypeConstant   Type = "constant"   // 5, 5, 5
	TypeArithmetic Type = "arithmetic" // 2, 4, 6
	TypeGeometric  Type = "geometric"  // 3, 6, 12
	TypeQuadratic  Type = "quadratic"  // 1, 4, 9, 16
)

// AllTypes returns every classification in priority order, followed by
// TypeNone.
func AllTypes() []Type {
	return []Type{
		TypeConstant,
		TypeArithmetic,
		TypeGeometric,
		TypeQuadratic,
		TypeNone,
	}
}

func (t Type) String() string { return string(t) }

// ParseType converts a name such as "geometric" into a Type.
func ParseType(s string) (Type, error) {
	for _, t := range AllTypes() {
		if string(t) == s {
			return t, nil
		}
	}
	return "", fmt.Errorf("unknown sequence type: %q", s)
}
