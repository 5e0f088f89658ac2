// Package antenna locates the antinodes produced by pairs of same-frequency
// antennas on a rectangular map.
package antenna

import (
	"io"
	"maps"
	"slices"

	"github.com/katalvlaran/aoc2024/grid"
)

// Background is the map glyph for a cell without an antenna. Every other
// byte is an antenna whose frequency is that byte.
const Background = '.'

// Set is a collection of distinct map positions.
type Set map[grid.Point]struct{}

// Has reports whether p is in the set.
func (s Set) Has(p grid.Point) bool {
	_, ok := s[p]
	return ok
}

// Sorted returns the members of s in row-major order.
func (s Set) Sorted() []grid.Point {
	out := slices.Collect(maps.Keys(s))
	slices.SortFunc(out, func(a, b grid.Point) int {
		switch {
		case a.Less(b):
			return -1
		case b.Less(a):
			return 1
		}
		return 0
	})
	return out
}

// Map holds the antenna positions grouped by frequency.
type Map struct {
	rows, cols int
	antennas   map[byte][]grid.Point // row-major within a frequency
}

// Parse reads a map, one row per line. See grid.Parse for the accepted
// layout and its errors.
func Parse(r io.Reader) (*Map, error) {
	g, err := grid.Parse(r)
	if err != nil {
		return nil, err
	}
	return New(g), nil
}

// New indexes the antennas of g.
func New(g *grid.Grid[byte]) *Map {
	m := &Map{rows: g.Rows(), cols: g.Cols(), antennas: make(map[byte][]grid.Point)}
	for p, b := range g.All() {
		if b != Background {
			m.antennas[b] = append(m.antennas[b], p)
		}
	}
	return m
}

// Rows returns the map height.
func (m *Map) Rows() int { return m.rows }

// Cols returns the map width.
func (m *Map) Cols() int { return m.cols }

func (m *Map) inBounds(p grid.Point) bool {
	return p.Row >= 0 && p.Row < m.rows && p.Col >= 0 && p.Col < m.cols
}

// Frequencies returns the distinct antenna frequencies in ascending order.
func (m *Map) Frequencies() []byte {
	return slices.Sorted(maps.Keys(m.antennas))
}

// Antennas returns the positions of every antenna tuned to f, row-major.
func (m *Map) Antennas(f byte) []grid.Point {
	return slices.Clone(m.antennas[f])
}

// Antinodes returns, for every pair (a, b) of same-frequency antennas, the
// points a-(b-a) and b+(b-a) that fall on the map.
func (m *Map) Antinodes() Set {
	out := make(Set)
	m.eachPair(func(a, b grid.Point) {
		d := b.Sub(a)
		for _, p := range [...]grid.Point{a.Sub(d), b.Add(d)} {
			if m.inBounds(p) {
				out[p] = struct{}{}
			}
		}
	})
	return out
}

// ResonantAntinodes returns, for every pair (a, b) of same-frequency
// antennas, both antennas and every on-map point reached by stepping from a
// by -(b-a) and from b by +(b-a). The step is not reduced by the gcd of its
// components.
func (m *Map) ResonantAntinodes() Set {
	out := make(Set)
	m.eachPair(func(a, b grid.Point) {
		d := b.Sub(a)
		out[a], out[b] = struct{}{}, struct{}{}
		for p := a.Sub(d); m.inBounds(p); p = p.Sub(d) {
			out[p] = struct{}{}
		}
		for p := b.Add(d); m.inBounds(p); p = p.Add(d) {
			out[p] = struct{}{}
		}
	})
	return out
}

// eachPair calls fn once per unordered pair of same-frequency antennas,
// frequencies ascending, pairs in row-major order.
func (m *Map) eachPair(fn func(a, b grid.Point)) {
	for _, f := range m.Frequencies() {
		ps := m.antennas[f]
		for i := 0; i < len(ps)-1; i++ {
			for j := i + 1; j < len(ps); j++ {
				fn(ps[i], ps[j])
			}
		}
	}
}

// Render draws the map with '#' for members of s and '.' elsewhere, one line
// per row, without a trailing newline.
func (m *Map) Render(s Set) string {
	g, err := grid.New[byte](m.rows, m.cols)
	if err != nil {
		return ""
	}
	return grid.Render(g, func(p grid.Point, _ byte) byte {
		if s.Has(p) {
			return '#'
		}
		return Background
	})
}
