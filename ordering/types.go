package ordering

import (
	"context"
	"errors"
)

var (
	// ErrMalformedRule indicates a rule line that is not "X|Y".
	ErrMalformedRule = errors.New("ordering: rule must be two page numbers separated by '|'")

	// ErrMalformedUpdate indicates an update line that is not a list of page numbers.
	ErrMalformedUpdate = errors.New("ordering: update must be comma-separated page numbers")

	// ErrDuplicatePage indicates an update that lists a page twice.
	ErrDuplicatePage = errors.New("ordering: page appears twice in update")

	// ErrEmptyUpdate indicates an update without pages.
	ErrEmptyUpdate = errors.New("ordering: update has no pages")

	// ErrCycleDetected indicates rules that cannot all be satisfied.
	ErrCycleDetected = errors.New("ordering: cycle detected")
)

// Manual is a parsed puzzle input: the rules and the updates in input order.
type Manual struct {
	Rules   *Rules
	Updates [][]int
}

// SortOption configures optional behavior for Sort.
type SortOption func(*sortOptions)

// sortOptions holds settings for Sort, currently only cancellation.
type sortOptions struct {
	ctx context.Context // allows cancellation; defaults to Background
}

// defaultSortOptions returns the default options (Background context).
func defaultSortOptions() sortOptions {
	return sortOptions{ctx: context.Background()}
}

// WithCancelContext returns a SortOption that sets the cancellation context.
// Passing a nil context has no effect.
func WithCancelContext(ctx context.Context) SortOption {
	return func(o *sortOptions) {
		if ctx != nil {
			o.ctx = ctx
		}
	}
}
