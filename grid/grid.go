package grid

import (
	"iter"
	"strings"
)

// Grid is a rectangular, row-major store of cells. The zero value is not
// usable; build one with New, FromRows, Parse or Map.
type Grid[T any] struct {
	rows, cols int
	cells      []T
}

// New allocates a rows×cols grid of zero-valued cells.
// Returns ErrEmptyGrid if either dimension is not positive.
func New[T any](rows, cols int) (*Grid[T], error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrEmptyGrid
	}
	return &Grid[T]{rows: rows, cols: cols, cells: make([]T, rows*cols)}, nil
}

// FromRows builds a grid from a non-empty, rectangular 2D slice.
// It copies the input, so later changes to values do not leak in.
// Returns ErrEmptyGrid if values has no rows or no columns,
// ErrNonRectangular if any row length differs.
// Complexity: O(Rows×Cols) time and memory.
func FromRows[T any](values [][]T) (*Grid[T], error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(values), len(values[0])
	for _, row := range values {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
	}
	g := &Grid[T]{rows: h, cols: w, cells: make([]T, 0, h*w)}
	for _, row := range values {
		g.cells = append(g.cells, row...)
	}
	return g, nil
}

// Map builds a grid of the same shape as src by converting every cell with fn.
// The first error returned by fn aborts the conversion.
func Map[T, U any](src *Grid[T], fn func(p Point, v T) (U, error)) (*Grid[U], error) {
	dst := &Grid[U]{rows: src.rows, cols: src.cols, cells: make([]U, len(src.cells))}
	for i, v := range src.cells {
		u, err := fn(src.Coordinate(i), v)
		if err != nil {
			return nil, err
		}
		dst.cells[i] = u
	}
	return dst, nil
}

// Rows returns the number of rows.
func (g *Grid[T]) Rows() int { return g.rows }

// Cols returns the number of columns.
func (g *Grid[T]) Cols() int { return g.cols }

// Len returns Rows×Cols.
func (g *Grid[T]) Len() int { return len(g.cells) }

// InBounds reports whether p lies within the grid boundaries.
// Complexity: O(1).
func (g *Grid[T]) InBounds(p Point) bool {
	return p.Row >= 0 && p.Row < g.rows && p.Col >= 0 && p.Col < g.cols
}

// At returns the cell at p. It panics if p is out of bounds; use Get when
// the point may be outside.
func (g *Grid[T]) At(p Point) T {
	return g.cells[g.Index(p)]
}

// Get returns the cell at p and whether p was in bounds.
func (g *Grid[T]) Get(p Point) (T, bool) {
	if !g.InBounds(p) {
		var zero T
		return zero, false
	}
	return g.cells[g.Index(p)], true
}

// Set stores v at p. Returns ErrOutOfBounds if p is outside the grid.
func (g *Grid[T]) Set(p Point, v T) error {
	if !g.InBounds(p) {
		return ErrOutOfBounds
	}
	g.cells[g.Index(p)] = v
	return nil
}

// Index maps p to its row-major index: Row*Cols + Col.
// Complexity: O(1).
func (g *Grid[T]) Index(p Point) int {
	return p.Row*g.cols + p.Col
}

// Coordinate converts a row-major index back to a Point.
// Complexity: O(1).
func (g *Grid[T]) Coordinate(idx int) Point {
	return Point{Row: idx / g.cols, Col: idx % g.cols}
}

// All yields every cell in row-major order.
func (g *Grid[T]) All() iter.Seq2[Point, T] {
	return func(yield func(Point, T) bool) {
		for i, v := range g.cells {
			if !yield(g.Coordinate(i), v) {
				return
			}
		}
	}
}

// Find returns the first point, in row-major order, whose cell satisfies match.
func (g *Grid[T]) Find(match func(T) bool) (Point, bool) {
	for i, v := range g.cells {
		if match(v) {
			return g.Coordinate(i), true
		}
	}
	return Point{}, false
}

// Clone returns an independent copy of g.
func (g *Grid[T]) Clone() *Grid[T] {
	cells := make([]T, len(g.cells))
	copy(cells, g.cells)
	return &Grid[T]{rows: g.rows, cols: g.cols, cells: cells}
}

// Render draws the grid one line per row using glyph for each cell.
// Rows are separated by '\n' with no trailing newline.
func Render[T any](g *Grid[T], glyph func(p Point, v T) byte) string {
	var b strings.Builder
	b.Grow(g.rows * (g.cols + 1))
	for i, v := range g.cells {
		if i > 0 && i%g.cols == 0 {
			b.WriteByte('\n')
		}
		b.WriteByte(glyph(g.Coordinate(i), v))
	}
	return b.String()
}
