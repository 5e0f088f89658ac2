package ordering

// kahnSorter holds the state of one Sort call.
type kahnSorter struct {
	opts  sortOptions
	pages []int         // the update, in input order
	next  map[int][]int // edges restricted to pages, in input order
	indeg map[int]int
	queue []int
	order []int
}

// Sort returns the pages of update rearranged so that every applicable rule
// holds. Only rules whose two pages both occur in update are considered.
//
// Kahn's algorithm is seeded with the update's zero in-degree pages in their
// input order and releases successors in input order as well, so the result
// is deterministic.
// Returns ErrDuplicatePage, ErrCycleDetected, or the context error when
// canceled via WithCancelContext. The input slice is not modified.
func (r *Rules) Sort(update []int, options ...SortOption) ([]int, error) {
	opts := defaultSortOptions()
	for _, opt := range options {
		opt(&opts)
	}
	if err := checkDistinct(update); err != nil {
		return nil, err
	}

	s := &kahnSorter{
		opts:  opts,
		pages: update,
		next:  make(map[int][]int, len(update)),
		indeg: make(map[int]int, len(update)),
		order: make([]int, 0, len(update)),
	}
	s.build(r)
	if err := s.drain(); err != nil {
		return nil, err
	}
	return s.order, nil
}

// build restricts the rules to the update's pages.
func (s *kahnSorter) build(r *Rules) {
	for _, x := range s.pages {
		for _, y := range s.pages {
			if x != y && r.Before(x, y) {
				s.next[x] = append(s.next[x], y)
				s.indeg[y]++
			}
		}
	}
	for _, p := range s.pages {
		if s.indeg[p] == 0 {
			s.queue = append(s.queue, p)
		}
	}
}

// drain pops pages until the queue is empty. Pages left behind sit on a cycle.
func (s *kahnSorter) drain() error {
	for len(s.queue) > 0 {
		select {
		case <-s.opts.ctx.Done():
			return s.opts.ctx.Err()
		default:
		}

		p := s.queue[0]
		s.queue = s.queue[1:]
		s.order = append(s.order, p)
		for _, q := range s.next[p] {
			s.indeg[q]--
			if s.indeg[q] == 0 {
				s.queue = append(s.queue, q)
			}
		}
	}
	if len(s.order) != len(s.pages) {
		return ErrCycleDetected
	}
	return nil
}
