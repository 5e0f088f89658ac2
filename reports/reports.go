// Package reports classifies reactor reports as safe or unsafe.
//
// A report is a sequence of levels. It is safe when it has at least two
// levels, is strictly increasing or strictly decreasing, and every adjacent
// pair differs by 1 to 3. The problem dampener additionally accepts a report
// that becomes safe after removing exactly one level.
package reports

import (
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/aoc2024/input"
)

const (
	minStep = 1
	maxStep = 3
)

// Parse reads one report per line, levels separated by whitespace.
// Blank lines are skipped.
func Parse(r io.Reader) ([][]int, error) {
	var out [][]int
	err := input.ForLines(r, func(n int, line string) error {
		if strings.TrimSpace(line) == "" {
			return nil
		}
		levels, err := input.Ints(line)
		if err != nil {
			return fmt.Errorf("reports: line %d: %w", n, err)
		}
		out = append(out, levels)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Safe reports whether levels is strictly monotonic with steps of 1 to 3.
func Safe(levels []int) bool {
	if len(levels) < 2 {
		return false
	}
	increasing, decreasing := true, true
	for i := 1; i < len(levels); i++ {
		d := levels[i] - levels[i-1]
		if step := input.AbsDiff(levels[i], levels[i-1]); step < minStep || step > maxStep {
			return false
		}
		if d <= 0 {
			increasing = false
		}
		if d >= 0 {
			decreasing = false
		}
	}
	return increasing || decreasing
}

// SafeDampened reports whether levels is safe, or becomes safe once any
// single level is removed.
func SafeDampened(levels []int) bool {
	if Safe(levels) {
		return true
	}
	buf := make([]int, 0, len(levels))
	for skip := range levels {
		buf = append(buf[:0], levels[:skip]...)
		buf = append(buf, levels[skip+1:]...)
		if Safe(buf) {
			return true
		}
	}
	return false
}

// CountSafe counts the safe reports, using SafeDampened when dampened is true.
func CountSafe(reports [][]int, dampened bool) int {
	check := Safe
	if dampened {
		check = SafeDampened
	}
	n := 0
	for _, levels := range reports {
		if check(levels) {
			n++
		}
	}
	return n
}
