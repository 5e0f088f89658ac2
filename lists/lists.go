// Package lists reconciles two columns of location IDs by pairing them up
// in sorted order and summing the distances between partners.
package lists

import (
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/katalvlaran/aoc2024/input"
)

// ErrMalformedLine indicates a line that does not hold exactly two integers.
var ErrMalformedLine = errors.New("lists: line must hold exactly two integers")

// Pairs holds the left and right columns in input order.
type Pairs struct {
	Left, Right []int
}

// Parse reads one pair of whitespace-separated integers per line.
// Blank lines are skipped.
func Parse(r io.Reader) (*Pairs, error) {
	p := &Pairs{}
	err := input.ForLines(r, func(n int, line string) error {
		if strings.TrimSpace(line) == "" {
			return nil
		}
		nums, err := input.Ints(line)
		if err != nil || len(nums) != 2 {
			return fmt.Errorf("%w: line %d: %q", ErrMalformedLine, n, line)
		}
		p.Left = append(p.Left, nums[0])
		p.Right = append(p.Right, nums[1])
		return nil
	})
	if err != nil {
		return nil, err
	}
	return p, nil
}

// TotalDistance pairs the smallest left with the smallest right, the second
// smallest with the second smallest and so on, and sums |left - right|.
// The columns in p are not modified.
func TotalDistance(p *Pairs) int {
	left, right := slices.Clone(p.Left), slices.Clone(p.Right)
	slices.Sort(left)
	slices.Sort(right)

	total := 0
	for i := range min(len(left), len(right)) {
		total += input.AbsDiff(left[i], right[i])
	}
	return total
}
