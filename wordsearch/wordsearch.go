// Package wordsearch finds words in a letter grid: straight runs in any of
// the eight directions, and crosses formed by two diagonals.
package wordsearch

import (
	"errors"

	"github.com/katalvlaran/aoc2024/grid"
)

// ErrEmptyWord is returned when the word to search for is empty.
var ErrEmptyWord = errors.New("wordsearch: word must not be empty")

// Match is one occurrence of a word: its first letter and its direction.
type Match struct {
	Start grid.Point
	Dir   grid.Point
}

// Find lists every occurrence of word written in a straight line in any of
// the eight directions, overlaps included. Matches are ordered by start
// (row-major), then by direction in grid.Compass8 order.
func Find(g *grid.Grid[byte], word string) ([]Match, error) {
	if word == "" {
		return nil, ErrEmptyWord
	}
	var out []Match
	for p := range g.All() {
		if g.At(p) != word[0] {
			continue
		}
		for _, d := range grid.Compass8 {
			if spells(g, word, p, d) {
				out = append(out, Match{Start: p, Dir: d})
			}
		}
	}
	return out, nil
}

// Count returns len(Find(g, word)).
func Count(g *grid.Grid[byte], word string) (int, error) {
	m, err := Find(g, word)
	return len(m), err
}

// CountCrosses counts the len(word)×len(word) windows whose two diagonals
// both spell word, each forwards or backwards.
func CountCrosses(g *grid.Grid[byte], word string) (int, error) {
	if word == "" {
		return 0, ErrEmptyWord
	}
	k := len(word)
	down := grid.Point{Row: 1, Col: 1}
	up := grid.Point{Row: -1, Col: 1}

	n := 0
	for r := 0; r+k <= g.Rows(); r++ {
		for c := 0; c+k <= g.Cols(); c++ {
			tl := grid.Point{Row: r, Col: c}
			bl := grid.Point{Row: r + k - 1, Col: c}
			if eitherWay(g, word, tl, down) && eitherWay(g, word, bl, up) {
				n++
			}
		}
	}
	return n, nil
}

// spells reports whether word starts at p and runs in direction d.
func spells(g *grid.Grid[byte], word string, p, d grid.Point) bool {
	end := p.Add(d.Scale(len(word) - 1))
	if !g.InBounds(end) {
		return false
	}
	for i := 0; i < len(word); i++ {
		if g.At(p.Add(d.Scale(i))) != word[i] {
			return false
		}
	}
	return true
}

// eitherWay reports whether the run of len(word) cells from p in direction d
// spells word forwards or backwards.
func eitherWay(g *grid.Grid[byte], word string, p, d grid.Point) bool {
	end := p.Add(d.Scale(len(word) - 1))
	return spells(g, word, p, d) || spells(g, word, end, d.Scale(-1))
}
