package reports_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/aoc2024/input"
	"github.com/katalvlaran/aoc2024/reports"
)

const sample = `7 6 4 2 1
1 2 7 8 9
9 7 6 2 1
1 3 2 4 5
8 6 4 4 1
1 3 6 7 9
`

func TestSafe(t *testing.T) {
	cases := []struct {
		name     string
		levels   []int
		safe     bool
		dampened bool
	}{
		{"Decreasing", []int{7, 6, 4, 2, 1}, true, true},
		{"JumpUp", []int{1, 2, 7, 8, 9}, false, false},
		{"JumpDown", []int{9, 7, 6, 2, 1}, false, false},
		{"DirectionChange", []int{1, 3, 2, 4, 5}, false, true},
		{"Flat", []int{8, 6, 4, 4, 1}, false, true},
		{"Increasing", []int{1, 3, 6, 7, 9}, true, true},
		{"DropFirst", []int{9, 1, 2, 3}, false, true},
		{"DropLast", []int{1, 2, 3, 9}, false, true},
		{"Single", []int{5}, false, false},
		{"Empty", nil, false, false},
		{"PairAfterDrop", []int{1, 1}, false, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.safe, reports.Safe(tc.levels))
			assert.Equal(t, tc.dampened, reports.SafeDampened(tc.levels))
		})
	}
}

func TestCountSafe_Sample(t *testing.T) {
	rs, err := reports.Parse(strings.NewReader(sample))
	require.NoError(t, err)
	require.Len(t, rs, 6)

	assert.Equal(t, 2, reports.CountSafe(rs, false))
	assert.Equal(t, 4, reports.CountSafe(rs, true))
}

func TestSafeDampened_LeavesInputAlone(t *testing.T) {
	levels := []int{1, 3, 2, 4, 5}
	require.True(t, reports.SafeDampened(levels))
	assert.Equal(t, []int{1, 3, 2, 4, 5}, levels)
}

func TestParse_Errors(t *testing.T) {
	_, err := reports.Parse(strings.NewReader("1 2 3\n4 x 6\n"))
	assert.ErrorIs(t, err, input.ErrSyntax)
	assert.Contains(t, err.Error(), "line 2")
}
