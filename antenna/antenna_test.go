package antenna_test

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/aoc2024/antenna"
	"github.com/katalvlaran/aoc2024/grid"
)

const sample = `............
........0...
.....0......
.......0....
....0.......
......A.....
............
............
........A...
.........A..
............
............
`

func parse(t *testing.T, s string) *antenna.Map {
	t.Helper()
	m, err := antenna.Parse(strings.NewReader(s))
	require.NoError(t, err)
	return m
}

func TestParse(t *testing.T) {
	m := parse(t, sample)
	assert.Equal(t, 12, m.Rows())
	assert.Equal(t, 12, m.Cols())
	assert.Equal(t, []byte{'0', 'A'}, m.Frequencies())
	assert.Equal(t, []grid.Point{{Row: 5, Col: 6}, {Row: 8, Col: 8}, {Row: 9, Col: 9}}, m.Antennas('A'))
	assert.Empty(t, m.Antennas('z'))
}

func TestParse_Errors(t *testing.T) {
	_, err := antenna.Parse(strings.NewReader(""))
	assert.ErrorIs(t, err, grid.ErrEmptyGrid)

	_, err = antenna.Parse(strings.NewReader("...\n..\n"))
	assert.ErrorIs(t, err, grid.ErrNonRectangular)
}

func TestAntinodes_Sample(t *testing.T) {
	assert.Len(t, parse(t, sample).Antinodes(), 14)
}

func TestAntinodes_Pair(t *testing.T) {
	in := strings.Repeat("..........\n", 3) +
		"....a.....\n" +
		"..........\n" +
		".....a....\n" +
		strings.Repeat("..........\n", 4)
	m := parse(t, in)
	got := m.Antinodes()

	want := []grid.Point{{Row: 1, Col: 3}, {Row: 7, Col: 6}}
	if diff := cmp.Diff(want, got.Sorted()); diff != "" {
		t.Errorf("Antinodes mismatch (-want +got):\n%s", diff)
	}

	wantRender := strings.Join([]string{
		"..........",
		"...#......",
		"..........",
		"..........",
		"..........",
		"..........",
		"..........",
		"......#...",
		"..........",
		"..........",
	}, "\n")
	assert.Equal(t, wantRender, m.Render(got))
}

func TestAntinodes_FrequenciesDoNotMix(t *testing.T) {
	m := parse(t, "......\n.a....\n..b...\n......\n")
	assert.Empty(t, m.Antinodes())
	assert.Empty(t, m.ResonantAntinodes())
}

func TestAntinodes_OffMapDropped(t *testing.T) {
	m := parse(t, "a..a\n")
	assert.Empty(t, m.Antinodes())
}

func TestResonantAntinodes_Sample(t *testing.T) {
	assert.Len(t, parse(t, sample).ResonantAntinodes(), 34)
}

func TestResonantAntinodes_T(t *testing.T) {
	in := "T.........\n" +
		"...T......\n" +
		".T........\n" +
		strings.Repeat("..........\n", 7)
	got := parse(t, in).ResonantAntinodes()
	assert.Len(t, got, 9)
	for _, p := range []grid.Point{{Row: 0, Col: 0}, {Row: 1, Col: 3}, {Row: 2, Col: 1}} {
		assert.True(t, got.Has(p), "antenna %v is an antinode", p)
	}
}

func TestResonantAntinodes_Line(t *testing.T) {
	got := parse(t, "a.a....\n").ResonantAntinodes()
	want := []grid.Point{{Row: 0, Col: 0}, {Row: 0, Col: 2}, {Row: 0, Col: 4}, {Row: 0, Col: 6}}
	assert.Equal(t, want, got.Sorted())
}

func TestSorted_RowMajor(t *testing.T) {
	s := antenna.Set{{Row: 1, Col: 0}: {}, {Row: 0, Col: 5}: {}, {Row: 0, Col: 1}: {}}
	assert.Equal(t, []grid.Point{{Row: 0, Col: 1}, {Row: 0, Col: 5}, {Row: 1, Col: 0}}, s.Sorted())
}
