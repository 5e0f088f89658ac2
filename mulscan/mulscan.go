// Package mulscan recovers multiplication instructions from corrupted memory.
//
// Only the exact forms mul(A,B), do() and don't() are instructions, with A
// and B unsigned decimal integers that fit in 32 bits; everything else is
// noise. do() and don't() switch subsequent mul instructions on and off;
// memory starts switched on.
//
// Sums are exact: a product or running total outside the int64 range
// yields ErrOverflow instead of a wrapped value.
package mulscan

import (
	"errors"
	"fmt"
	"io"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/katalvlaran/aoc2024/input"
)

// ErrOverflow indicates a product or sum outside the int64 range.
var ErrOverflow = errors.New("mulscan: integer overflow")

// Op identifies an instruction kind.
type Op uint8

const (
	// Mul multiplies its two operands.
	Mul Op = iota
	// Do enables later Mul instructions.
	Do
	// Dont disables later Mul instructions.
	Dont
)

func (o Op) String() string {
	switch o {
	case Mul:
		return "mul"
	case Do:
		return "do"
	case Dont:
		return "don't"
	}
	return "?"
}

// Instruction is one recovered instruction. A and B are set for Mul only.
type Instruction struct {
	Op   Op
	A, B int64
}

var (
	mulOnly = regexp.MustCompile(`mul\((\d+),(\d+)\)`)
	withCtl = regexp.MustCompile(`mul\((\d+),(\d+)\)|do\(\)|don't\(\)`)
)

// Read returns the program text from r with CRLF line endings normalized
// to '\n'.
func Read(r io.Reader) (string, error) {
	lines, err := input.Lines(r)
	if err != nil {
		return "", err
	}
	return strings.Join(lines, "\n"), nil
}

// Scan returns the instructions in program order. When control is false,
// do() and don't() are left out as noise.
// A mul whose operand does not fit in a uint32 is skipped.
func Scan(program string, control bool) []Instruction {
	re := mulOnly
	if control {
		re = withCtl
	}
	var out []Instruction
	for _, m := range re.FindAllStringSubmatch(program, -1) {
		switch m[0] {
		case "do()":
			out = append(out, Instruction{Op: Do})
		case "don't()":
			out = append(out, Instruction{Op: Dont})
		default:
			a, errA := strconv.ParseUint(m[1], 10, 32)
			b, errB := strconv.ParseUint(m[2], 10, 32)
			if errA != nil || errB != nil {
				continue
			}
			out = append(out, Instruction{Op: Mul, A: int64(a), B: int64(b)})
		}
	}
	return out
}

// Sum adds up the products of every mul instruction, ignoring do() and don't().
// Returns ErrOverflow if the result does not fit in an int64.
func Sum(program string) (int64, error) {
	var total int64
	for _, in := range Scan(program, false) {
		var err error
		if total, err = accumulate(total, in); err != nil {
			return 0, err
		}
	}
	return total, nil
}

// SumEnabled adds up the products of the mul instructions that are switched
// on. Line breaks are removed first, so an instruction split across lines
// still counts. Returns ErrOverflow if the result does not fit in an int64.
func SumEnabled(program string) (int64, error) {
	program = strings.NewReplacer("\r", "", "\n", "").Replace(program)

	var total int64
	enabled := true
	for _, in := range Scan(program, true) {
		switch in.Op {
		case Do:
			enabled = true
		case Dont:
			enabled = false
		case Mul:
			if !enabled {
				continue
			}
			var err error
			if total, err = accumulate(total, in); err != nil {
				return 0, err
			}
		}
	}
	return total, nil
}

// accumulate returns total + in.A*in.B. All values are non-negative.
func accumulate(total int64, in Instruction) (int64, error) {
	if in.B != 0 && in.A > math.MaxInt64/in.B {
		return 0, fmt.Errorf("%w: mul(%d,%d)", ErrOverflow, in.A, in.B)
	}
	p := in.A * in.B
	if total > math.MaxInt64-p {
		return 0, fmt.Errorf("%w: %d + mul(%d,%d)", ErrOverflow, total, in.A, in.B)
	}
	return total + p, nil
}
