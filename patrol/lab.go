package patrol

import (
	"fmt"
	"io"

	"github.com/katalvlaran/aoc2024/grid"
)

// Lab is a floor plan with a known start position.
// A Lab is not safe for concurrent use; Clone it per goroutine.
type Lab struct {
	floor *grid.Grid[Cell]
	start grid.Point
}

// ParseLab reads a floor plan, one row per line.
func ParseLab(r io.Reader) (*Lab, error) {
	g, err := grid.Parse(r)
	if err != nil {
		return nil, err
	}
	return NewLab(g)
}

// NewLab converts a character grid into a Lab.
// Returns ErrUnknownCell, ErrMissingStart or ErrMultipleStarts.
func NewLab(g *grid.Grid[byte]) (*Lab, error) {
	if g == nil || g.Len() == 0 {
		return nil, ErrEmptyGrid
	}
	var (
		start  grid.Point
		starts int
	)
	floor, err := grid.Map(g, func(p grid.Point, b byte) (Cell, error) {
		c, err := cellOf(b)
		if err != nil {
			return 0, fmt.Errorf("%w at %v", err, p)
		}
		if c == StartMarker {
			start = p
			starts++
		}
		return c, nil
	})
	if err != nil {
		return nil, err
	}
	switch {
	case starts == 0:
		return nil, ErrMissingStart
	case starts > 1:
		return nil, fmt.Errorf("%w: found %d", ErrMultipleStarts, starts)
	}
	return &Lab{floor: floor, start: start}, nil
}

// Start returns the guard's starting position.
func (l *Lab) Start() grid.Point { return l.start }

// Rows returns the number of rows of the floor plan.
func (l *Lab) Rows() int { return l.floor.Rows() }

// Cols returns the number of columns of the floor plan.
func (l *Lab) Cols() int { return l.floor.Cols() }

// CellAt returns the cell at p and whether p is on the map.
func (l *Lab) CellAt(p grid.Point) (Cell, bool) {
	return l.floor.Get(p)
}

// maxTransitions is the number of distinct states; a walk longer than this
// must have repeated one.
func (l *Lab) maxTransitions() int {
	return l.floor.Len() * 4
}

// Clone returns an independent copy of the lab.
func (l *Lab) Clone() *Lab {
	return &Lab{floor: l.floor.Clone(), start: l.start}
}

// WithObstacle places a temporary obstacle at p, runs fn, and restores the
// original cell on every exit path, panics included.
// Returns grid.ErrOutOfBounds or ErrCellOccupied if p cannot take an obstacle.
func (l *Lab) WithObstacle(p grid.Point, fn func(*Lab) error) error {
	c, ok := l.floor.Get(p)
	if !ok {
		return fmt.Errorf("%w: %v", grid.ErrOutOfBounds, p)
	}
	if c != Empty {
		return fmt.Errorf("%w: %v holds %q", ErrCellOccupied, p, c.Glyph())
	}
	_ = l.floor.Set(p, Obstacle)
	defer func() { _ = l.floor.Set(p, c) }()

	return fn(l)
}

// String renders the floor plan in its input form.
func (l *Lab) String() string {
	return grid.Render(l.floor, func(_ grid.Point, c Cell) byte { return c.Glyph() })
}

// RenderPath draws the floor plan with every visited cell marked 'X'.
func (l *Lab) RenderPath(v Visited) string {
	return grid.Render(l.floor, func(p grid.Point, c Cell) byte {
		if v.Has(p) {
			return 'X'
		}
		return c.Glyph()
	})
}
