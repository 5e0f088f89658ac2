package calibration

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/aoc2024/input"
)

// Equation is one calibration line.
type Equation struct {
	Target   int64
	Operands []int64
}

// Parse reads one equation per line. Blank lines are skipped. Every equation
// needs at least one operand and all numbers must be non-negative.
func Parse(r io.Reader) ([]Equation, error) {
	var eqs []Equation
	err := input.ForLines(r, func(n int, line string) error {
		if strings.TrimSpace(line) == "" {
			return nil
		}
		e, err := parseEquation(line)
		if err != nil {
			return fmt.Errorf("%w: line %d: %q", ErrMalformedEquation, n, line)
		}
		eqs = append(eqs, e)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return eqs, nil
}

func parseEquation(line string) (Equation, error) {
	head, tail, ok := strings.Cut(line, ":")
	if !ok {
		return Equation{}, ErrMalformedEquation
	}
	target, err := strconv.ParseInt(strings.TrimSpace(head), 10, 64)
	if err != nil || target < 0 {
		return Equation{}, ErrMalformedEquation
	}
	operands, err := input.Int64s(tail)
	if err != nil || len(operands) == 0 {
		return Equation{}, ErrMalformedEquation
	}
	for _, v := range operands {
		if v < 0 {
			return Equation{}, ErrMalformedEquation
		}
	}
	return Equation{Target: target, Operands: operands}, nil
}

// String renders e in its input form.
func (e Equation) String() string {
	var b strings.Builder
	b.WriteString(strconv.FormatInt(e.Target, 10))
	b.WriteByte(':')
	for _, v := range e.Operands {
		b.WriteByte(' ')
		b.WriteString(strconv.FormatInt(v, 10))
	}
	return b.String()
}

// Evaluate applies ops left to right: ops[i] joins the running value with
// Operands[i+1]. Returns ErrOperatorCount unless len(ops) == len(Operands)-1,
// and ErrOverflow if an intermediate value leaves the int64 range.
func (e Equation) Evaluate(ops []Operator) (int64, error) {
	if len(e.Operands) == 0 || len(ops) != len(e.Operands)-1 {
		return 0, fmt.Errorf("%w: %d operators for %d operands", ErrOperatorCount, len(ops), len(e.Operands))
	}
	acc := e.Operands[0]
	for i, op := range ops {
		v, ok := op.Apply(acc, e.Operands[i+1])
		if !ok {
			return 0, fmt.Errorf("%w: %d %s %d", ErrOverflow, acc, op, e.Operands[i+1])
		}
		acc = v
	}
	return acc, nil
}

// Solution returns the first operator assignment, in base-k counting order
// with ops[0] as the lowest digit, that makes e evaluate to its target.
// Assignments that overflow count as misses. An equation with one operand is
// solved by the empty assignment iff the operand equals the target.
func (e Equation) Solution(ops ...Operator) ([]Operator, bool) {
	gaps := len(e.Operands) - 1
	if gaps < 0 {
		return nil, false
	}
	if gaps == 0 {
		return []Operator{}, e.Operands[0] == e.Target
	}
	if len(ops) == 0 {
		return nil, false
	}

	digits := make([]int, gaps)
	assign := make([]Operator, gaps)
	for {
		for i, d := range digits {
			assign[i] = ops[d]
		}
		if v, err := e.Evaluate(assign); err == nil && v == e.Target {
			return assign, true
		}
		if !increment(digits, len(ops)) {
			return nil, false
		}
	}
}

// Solvable reports whether some assignment of ops makes e hit its target.
func (e Equation) Solvable(ops ...Operator) bool {
	_, ok := e.Solution(ops...)
	return ok
}

// Format renders e with the given assignment, e.g. "81 * 40 + 27".
// Extra operators are ignored; missing ones render as "?".
func (e Equation) Format(ops []Operator) string {
	var b strings.Builder
	for i, v := range e.Operands {
		if i > 0 {
			sym := "?"
			if i-1 < len(ops) {
				sym = ops[i-1].String()
			}
			b.WriteString(" " + sym + " ")
		}
		b.WriteString(strconv.FormatInt(v, 10))
	}
	return b.String()
}

// increment advances a little-endian base-k counter and reports false once
// it wraps back to all zeroes.
func increment(digits []int, k int) bool {
	for i := range digits {
		digits[i]++
		if digits[i] < k {
			return true
		}
		digits[i] = 0
	}
	return false
}

// Total sums the targets of every equation solvable with ops.
func Total(eqs []Equation, ops ...Operator) int64 {
	var sum int64
	for _, e := range eqs {
		if e.Solvable(ops...) {
			sum += e.Target
		}
	}
	return sum
}
