package ordering

import (
	"fmt"
	"slices"
)

// Rules is a set of "before|after" page constraints.
// The zero value is not usable; create one with NewRules.
type Rules struct {
	after map[int]map[int]struct{} // after[x] holds every y with rule x|y
	n     int
}

// NewRules returns an empty rule set.
func NewRules() *Rules {
	return &Rules{after: make(map[int]map[int]struct{})}
}

// Add records that page before must precede page after.
// Adding the same rule twice has no effect.
func (r *Rules) Add(before, after int) {
	set, ok := r.after[before]
	if !ok {
		set = make(map[int]struct{})
		r.after[before] = set
	}
	if _, dup := set[after]; !dup {
		set[after] = struct{}{}
		r.n++
	}
}

// Len returns the number of distinct rules.
func (r *Rules) Len() int { return r.n }

// Before reports whether a rule requires x to precede y.
func (r *Rules) Before(x, y int) bool {
	_, ok := r.after[x][y]
	return ok
}

// Ordered reports whether update satisfies every applicable rule: no page is
// required to come before a page listed earlier than it.
// Empty and single-page updates are ordered.
func (r *Rules) Ordered(update []int) bool {
	for i := range update {
		for j := i + 1; j < len(update); j++ {
			if r.Before(update[j], update[i]) {
				return false
			}
		}
	}
	return true
}

// Middle returns the page at the center of update.
// Updates of even length yield the upper of the two central pages.
func Middle(update []int) (int, error) {
	if len(update) == 0 {
		return 0, ErrEmptyUpdate
	}
	return update[len(update)/2], nil
}

// checkDistinct returns ErrDuplicatePage if update repeats a page.
func checkDistinct(update []int) error {
	seen := make(map[int]struct{}, len(update))
	for _, p := range update {
		if _, ok := seen[p]; ok {
			return fmt.Errorf("%w: %d", ErrDuplicatePage, p)
		}
		seen[p] = struct{}{}
	}
	return nil
}

// SumOrderedMiddles sums the middle page of every update that is already
// ordered.
func SumOrderedMiddles(m *Manual) (int, error) {
	sum := 0
	for i, u := range m.Updates {
		if !m.Rules.Ordered(u) {
			continue
		}
		mid, err := Middle(u)
		if err != nil {
			return 0, fmt.Errorf("ordering: update %d: %w", i+1, err)
		}
		sum += mid
	}
	return sum, nil
}

// SumReorderedMiddles sorts every update that is not ordered and sums the
// middle pages of the sorted results. Ordered updates contribute nothing.
// The updates in m are not modified.
func SumReorderedMiddles(m *Manual, opts ...SortOption) (int, error) {
	sum := 0
	for i, u := range m.Updates {
		if m.Rules.Ordered(u) {
			continue
		}
		sorted, err := m.Rules.Sort(slices.Clone(u), opts...)
		if err != nil {
			return 0, fmt.Errorf("ordering: update %d: %w", i+1, err)
		}
		mid, err := Middle(sorted)
		if err != nil {
			return 0, fmt.Errorf("ordering: update %d: %w", i+1, err)
		}
		sum += mid
	}
	return sum, nil
}
