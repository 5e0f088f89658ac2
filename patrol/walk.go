package patrol

// walker encapsulates the mutable state of one walk.
type walker struct {
	lab   *Lab
	opts  walkOptions
	state State
	seen  map[State]struct{} // nil unless loop detection is on
	res   *Result
}

// Walk moves the guard from the lab's start, facing Up, until it leaves the
// map or, with WithLoopDetection, until a (position, heading) state repeats.
// Without loop detection a walk that exceeds Rows×Cols×4 transitions fails
// with ErrLoop.
// The lab is only read; callers must not mutate it during the walk.
func Walk(l *Lab, opts ...WalkOption) (*Result, error) {
	var o walkOptions
	for _, opt := range opts {
		opt(&o)
	}
	w := &walker{
		lab:   l,
		opts:  o,
		state: State{Pos: l.start},
		res:   &Result{Visited: make(Visited)},
	}
	if o.detectLoop {
		w.seen = make(map[State]struct{})
	}
	if err := w.run(); err != nil {
		return nil, err
	}
	return w.res, nil
}

// RunCollectVisited walks the lab once and returns the distinct positions
// entered, the start cell included.
func RunCollectVisited(l *Lab) (Visited, error) {
	res, err := Walk(l)
	if err != nil {
		return nil, err
	}
	return res.Visited, nil
}

// RunDetectLoop reports whether the guard, started at the lab's start facing
// Up, ever repeats a (position, heading) state before leaving the map.
func RunDetectLoop(l *Lab) bool {
	// With loop detection on, Walk cannot fail.
	res, _ := Walk(l, WithLoopDetection())
	return res.Loop
}

// run drives the walk. One loop iteration is one transition: a rotation in
// place or a single step.
func (w *walker) run() error {
	limit := w.lab.maxTransitions()
	w.res.Visited[w.state.Pos] = struct{}{}
	w.markSeen(w.state)

	for {
		ahead := w.state.Pos.Add(w.state.Heading.Delta())
		c, onMap := w.lab.floor.Get(ahead)
		if !onMap {
			w.res.Final = w.state
			return nil
		}
		if c == Obstacle {
			w.state.Heading = w.state.Heading.TurnRight()
		} else {
			w.state.Pos = ahead
			w.res.Visited[ahead] = struct{}{}
		}
		w.res.Transitions++
		if w.opts.onStep != nil {
			w.opts.onStep(w.state)
		}

		if w.seen != nil {
			if w.markSeen(w.state) {
				w.res.Loop = true
				w.res.Final = w.state
				return nil
			}
		} else if w.res.Transitions > limit {
			return ErrLoop
		}
	}
}

// markSeen records s and reports whether it had been recorded before.
// It is a no-op without loop detection.
func (w *walker) markSeen(s State) (repeat bool) {
	if w.seen == nil {
		return false
	}
	if _, ok := w.seen[s]; ok {
		return true
	}
	w.seen[s] = struct{}{}
	return false
}
