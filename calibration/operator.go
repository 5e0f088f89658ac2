package calibration

import (
	"errors"
	"math"
)

var (
	// ErrMalformedEquation indicates a line that is not "target: a b c ...".
	ErrMalformedEquation = errors.New("calibration: equation must be \"target: operands...\"")

	// ErrOperatorCount indicates an operator list whose length is not one less
	// than the number of operands.
	ErrOperatorCount = errors.New("calibration: wrong number of operators")

	// ErrOverflow indicates an intermediate result outside the int64 range.
	ErrOverflow = errors.New("calibration: integer overflow")
)

// Operator combines the running value with the next operand.
type Operator uint8

const (
	Add Operator = iota
	Multiply
	Concat
)

var (
	// PartOne is the operator set of the first puzzle part.
	PartOne = []Operator{Add, Multiply}

	// PartTwo adds concatenation.
	PartTwo = []Operator{Add, Multiply, Concat}
)

// String returns the operator symbol.
func (o Operator) String() string {
	switch o {
	case Add:
		return "+"
	case Multiply:
		return "*"
	case Concat:
		return "||"
	default:
		return "?"
	}
}

// Apply returns a o b, and false if the result overflows int64.
// Operands are expected to be non-negative.
func (o Operator) Apply(a, b int64) (int64, bool) {
	switch o {
	case Add:
		if a > math.MaxInt64-b {
			return 0, false
		}
		return a + b, true
	case Multiply:
		if b != 0 && a > math.MaxInt64/b {
			return 0, false
		}
		return a * b, true
	case Concat:
		shift, ok := pow10Above(b)
		if !ok {
			if a == 0 {
				return b, true
			}
			return 0, false
		}
		if a > (math.MaxInt64-b)/shift {
			return 0, false
		}
		return a*shift + b, true
	default:
		return 0, false
	}
}

// pow10Above returns the smallest power of ten greater than b (10 for b = 0),
// and false if that power does not fit in an int64.
func pow10Above(b int64) (int64, bool) {
	p := int64(10)
	for p <= b {
		if p > math.MaxInt64/10 {
			return 0, false
		}
		p *= 10
	}
	return p, true
}
