package patrol

import (
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/aoc2024/grid"
)

// searcher holds the state shared by all trials of one obstruction search.
type searcher struct {
	opts SearchOptions
	mu   sync.Mutex // serializes OnTrial
}

// CountLoopObstructions returns how many single-obstacle placements make the
// guard loop. See Obstructions.
func CountLoopObstructions(l *Lab, opts ...Option) (int, error) {
	pts, err := Obstructions(l, opts...)
	if err != nil {
		return 0, err
	}
	return len(pts), nil
}

// Obstructions tries an extra obstacle on every empty cell other than the
// start and returns, in row-major order, the cells where RunDetectLoop
// reports a loop. Each trial is independent: its obstacle is removed before
// the next trial starts.
//
// With WithWorkers(n), n > 1, trials run concurrently, each worker on its own
// Clone of l; l itself is then never mutated. The result does not depend on n.
// Returns ErrOptionViolation for bad options or the context error on
// cancellation.
func Obstructions(l *Lab, opts ...Option) ([]grid.Point, error) {
	o := DefaultSearchOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	cands := candidates(l)
	s := &searcher{opts: o}

	var (
		loops []bool
		err   error
	)
	if o.Workers > 1 && len(cands) > 1 {
		loops, err = s.parallel(l, cands)
	} else {
		loops, err = s.sequential(l, cands)
	}
	if err != nil {
		return nil, err
	}

	var out []grid.Point
	for i, p := range cands {
		if loops[i] {
			out = append(out, p)
		}
	}
	return out, nil
}

// candidates lists every empty cell except the start, row-major.
func candidates(l *Lab) []grid.Point {
	var out []grid.Point
	for p, c := range l.floor.All() {
		if c == Empty && p != l.start {
			out = append(out, p)
		}
	}
	return out
}

func (s *searcher) sequential(l *Lab, cands []grid.Point) ([]bool, error) {
	loops := make([]bool, len(cands))
	for i, p := range cands {
		if err := s.opts.Ctx.Err(); err != nil {
			return nil, err
		}
		ok, err := s.trial(l, p)
		if err != nil {
			return nil, err
		}
		loops[i] = ok
	}
	return loops, nil
}

// parallel stripes the candidates over the workers. Worker k owns indices
// k, k+n, k+2n, ... of loops, so writes never overlap.
func (s *searcher) parallel(l *Lab, cands []grid.Point) ([]bool, error) {
	n := min(s.opts.Workers, len(cands))
	loops := make([]bool, len(cands))
	g, ctx := errgroup.WithContext(s.opts.Ctx)

	for k := 0; k < n; k++ {
		own := l.Clone()
		g.Go(func() error {
			for i := k; i < len(cands); i += n {
				if err := ctx.Err(); err != nil {
					return err
				}
				ok, err := s.trial(own, cands[i])
				if err != nil {
					return err
				}
				loops[i] = ok
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return loops, nil
}

// trial places one obstacle, runs the loop check and restores the cell.
func (s *searcher) trial(l *Lab, p grid.Point) (bool, error) {
	var loops bool
	err := l.WithObstacle(p, func(l *Lab) error {
		loops = RunDetectLoop(l)
		return nil
	})
	if err != nil {
		return false, err
	}
	if s.opts.OnTrial != nil {
		s.mu.Lock()
		s.opts.OnTrial(p, loops)
		s.mu.Unlock()
	}
	return loops, nil
}
