package patrol

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/aoc2024/grid"
)

// Sentinel errors for lab construction and simulation.
var (
	// ErrEmptyGrid indicates a floor plan with zero rows or columns.
	ErrEmptyGrid = grid.ErrEmptyGrid

	// ErrMissingStart indicates the floor plan has no start marker.
	ErrMissingStart = errors.New("patrol: floor plan has no start marker '^'")

	// ErrMultipleStarts indicates the floor plan has more than one start marker.
	ErrMultipleStarts = errors.New("patrol: floor plan has more than one start marker")

	// ErrUnknownCell indicates a character that is not '.', '#' or '^'.
	ErrUnknownCell = errors.New("patrol: unknown cell character")

	// ErrLoop is returned by RunCollectVisited when the walk does not leave
	// the map within Rows×Cols×4 transitions.
	ErrLoop = errors.New("patrol: guard never leaves the map")

	// ErrCellOccupied indicates an obstacle placement on a non-empty cell.
	ErrCellOccupied = errors.New("patrol: cell is not empty")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("patrol: invalid option supplied")
)

// Cell is the kind of a single floor-plan cell.
type Cell uint8

const (
	// Empty is open floor ('.').
	Empty Cell = iota
	// Obstacle blocks the guard ('#').
	Obstacle
	// StartMarker is where the guard starts, facing up ('^'). It is walkable.
	StartMarker
)

// Glyph returns the floor-plan character for c.
func (c Cell) Glyph() byte {
	switch c {
	case Obstacle:
		return '#'
	case StartMarker:
		return '^'
	}
	return '.'
}

// cellOf maps a floor-plan character to its Cell.
func cellOf(b byte) (Cell, error) {
	switch b {
	case '.':
		return Empty, nil
	case '#':
		return Obstacle, nil
	case '^':
		return StartMarker, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownCell, b)
}

// State is the guard's position and heading; the unit of loop detection.
type State struct {
	Pos     grid.Point
	Heading grid.Direction
}

// Visited is a set of distinct positions.
type Visited map[grid.Point]struct{}

// Has reports whether p is in the set.
func (v Visited) Has(p grid.Point) bool {
	_, ok := v[p]
	return ok
}

// Result is the outcome of a single walk.
type Result struct {
	// Visited holds every distinct position entered, the start included.
	Visited Visited
	// Loop is true if the walk stopped on a repeated state.
	Loop bool
	// Transitions counts rotations plus steps.
	Transitions int
	// Final is the last state before the guard left the map, or the
	// repeated state when Loop is true.
	Final State
}

// WalkOption configures a single walk.
type WalkOption func(*walkOptions)

type walkOptions struct {
	detectLoop bool
	onStep     func(State)
}

// WithLoopDetection tracks (position, heading) states and stops on the
// first repeat instead of failing with ErrLoop.
func WithLoopDetection() WalkOption {
	return func(o *walkOptions) {
		o.detectLoop = true
	}
}

// WithOnStep installs a hook called with the new state after every
// transition.
func WithOnStep(fn func(State)) WalkOption {
	return func(o *walkOptions) {
		o.onStep = fn
	}
}

// Option configures the obstruction search.
type Option func(*SearchOptions)

// SearchOptions holds parameters for Obstructions and CountLoopObstructions.
type SearchOptions struct {
	// Ctx allows cancellation between trials; defaults to context.Background().
	Ctx context.Context

	// Workers is the number of concurrent trials. 1 runs the search on the
	// caller's goroutine against the lab itself.
	Workers int

	// OnTrial, if non-nil, is called after each trial with the candidate
	// cell and whether it produced a loop. Calls never overlap.
	OnTrial func(p grid.Point, loops bool)

	// internal error recorded during option parsing
	err error
}

// DefaultSearchOptions returns a sequential search with a background context.
func DefaultSearchOptions() SearchOptions {
	return SearchOptions{
		Ctx:     context.Background(),
		Workers: 1,
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *SearchOptions) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithWorkers runs up to n trials concurrently.
//
//	n > 0: use n workers
//	n <= 0: invalid option → ErrOptionViolation
func WithWorkers(n int) Option {
	return func(o *SearchOptions) {
		if n <= 0 {
			o.err = fmt.Errorf("%w: Workers must be positive (%d)", ErrOptionViolation, n)
			return
		}
		o.Workers = n
	}
}

// WithOnTrial registers a callback run after every trial.
func WithOnTrial(fn func(p grid.Point, loops bool)) Option {
	return func(o *SearchOptions) {
		o.OnTrial = fn
	}
}
