package grid

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Parse reads one grid row per line. A trailing '\r' is dropped from each
// line and leading or trailing blank lines are ignored; any other line,
// including a blank one in the middle, must match the width of the first row.
// Returns ErrEmptyGrid for empty input and ErrNonRectangular (annotated with
// the offending line number) for ragged input.
func Parse(r io.Reader) (*Grid[byte], error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1<<20)

	var (
		rows    [][]byte
		width   int
		pending int // blank lines not yet known to be trailing
	)
	for line := 1; sc.Scan(); line++ {
		text := strings.TrimSuffix(sc.Text(), "\r")
		if text == "" {
			pending++
			continue
		}
		if len(rows) == 0 {
			width, pending = len(text), 0
		}
		if pending > 0 || len(text) != width {
			return nil, fmt.Errorf("%w: line %d", ErrNonRectangular, line)
		}
		rows = append(rows, []byte(text))
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("grid: read: %w", err)
	}
	return FromRows(rows)
}

// ParseString is Parse over an in-memory string.
func ParseString(s string) (*Grid[byte], error) {
	return Parse(strings.NewReader(s))
}

// String renders a byte grid back to its text form.
func String(g *Grid[byte]) string {
	return Render(g, func(_ Point, v byte) byte { return v })
}
