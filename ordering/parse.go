package ordering

import (
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/aoc2024/input"
)

// Parse reads the rules section, one "X|Y" per line, then a blank line, then
// one comma-separated update per line. Blank lines after the separator are
// skipped. Input without a separator holds rules only.
func Parse(r io.Reader) (*Manual, error) {
	m := &Manual{Rules: NewRules()}
	inUpdates := false
	err := input.ForLines(r, func(n int, line string) error {
		line = strings.TrimSpace(line)
		switch {
		case line == "":
			inUpdates = true
			return nil
		case !inUpdates:
			return m.parseRule(n, line)
		default:
			pages, err := input.SplitInts(line, ",")
			if err != nil {
				return fmt.Errorf("%w: line %d: %q", ErrMalformedUpdate, n, line)
			}
			if err := checkDistinct(pages); err != nil {
				return fmt.Errorf("ordering: line %d: %w", n, err)
			}
			m.Updates = append(m.Updates, pages)
			return nil
		}
	})
	if err != nil {
		return nil, err
	}
	return m, nil
}

func (m *Manual) parseRule(n int, line string) error {
	pair, err := input.SplitInts(line, "|")
	if err != nil || len(pair) != 2 {
		return fmt.Errorf("%w: line %d: %q", ErrMalformedRule, n, line)
	}
	m.Rules.Add(pair[0], pair[1])
	return nil
}
