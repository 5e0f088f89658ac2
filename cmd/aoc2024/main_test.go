package main

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/aoc2024/internal/ctxlog"
)

func runCLI(t *testing.T, args ...string) (code int, stdout, stderr string) {
	t.Helper()
	var out, errb bytes.Buffer
	code = run(context.Background(), args, &out, &errb)
	return code, out.String(), errb.String()
}

//-----------------------------------------------------------------------------
// Answers
//-----------------------------------------------------------------------------

func TestRun_Samples(t *testing.T) {
	cases := []struct {
		day  string
		want string
	}{
		{"day1", "total distance: 11\n"},
		{"day2", "safe reports: 2\nsafe with dampener: 4\n"},
		{"day3", "sum of products: 161\nsum of enabled products: 48\n"},
		{"day4", "XMAS occurrences: 18\nX-MAS crosses: 9\n"},
		{"day5", "ordered middle sum: 143\nreordered middle sum: 123\n"},
		{"day6", "visited positions: 41\nloop obstructions: 6\n"},
		{"day7", "calibration total: 3749\ncalibration total with concat: 11387\n"},
		{"day8", "antinodes: 14\nresonant antinodes: 34\n"},
	}
	for _, tc := range cases {
		t.Run(tc.day, func(t *testing.T) {
			code, out, errOut := runCLI(t, "--log-level", "error", tc.day, filepath.Join("testdata", tc.day+".txt"))
			require.Equal(t, 0, code, errOut)
			assert.Equal(t, tc.want, out)
		})
	}
}

func TestRun_Human(t *testing.T) {
	code, out, _ := runCLI(t, "--human", "--log-level", "error", "day7", "testdata/day7.txt")
	require.Equal(t, 0, code)
	assert.Equal(t, "calibration total: 3,749\ncalibration total with concat: 11,387\n", out)
}

func TestRun_Workers(t *testing.T) {
	code, out, _ := runCLI(t, "--log-level", "error", "day6", "--workers", "4", "testdata/day6.txt")
	require.Equal(t, 0, code)
	assert.Equal(t, "visited positions: 41\nloop obstructions: 6\n", out)

	code, _, errOut := runCLI(t, "day6", "--workers", "0", "testdata/day6.txt")
	assert.Equal(t, 1, code)
	assert.Contains(t, errOut, "invalid option")
}

func TestRun_Dump(t *testing.T) {
	code, out, _ := runCLI(t, "--log-level", "error", "day7", "--dump", "testdata/day7.txt")
	require.Equal(t, 0, code)
	assert.Contains(t, out, "Target:")
	assert.True(t, strings.HasSuffix(out, "calibration total with concat: 11387\n"))
}

func TestRun_JSONLogs(t *testing.T) {
	code, _, errOut := runCLI(t, "--log-format", "json", "day1", "testdata/day1.txt")
	require.Equal(t, 0, code)
	assert.Contains(t, errOut, `"msg":"solved"`)
	assert.Contains(t, errOut, `"day":1`)
}

func TestRun_List(t *testing.T) {
	code, out, _ := runCLI(t, "list")
	require.Equal(t, 0, code)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 8)
	for i, line := range lines {
		assert.True(t, strings.HasPrefix(line, "day"+string(rune('1'+i))), line)
	}
}

//-----------------------------------------------------------------------------
// Exit statuses
//-----------------------------------------------------------------------------

func TestRun_UsageErrors(t *testing.T) {
	for _, args := range [][]string{
		{},
		{"day6"},
		{"day6", "a.txt", "b.txt"},
		{"day9", "input.txt"},
		{"--log-format", "xml", "day1", "testdata/day1.txt"},
		{"day6", "--bogus", "x", "testdata/day6.txt"},
		{"day6", "--workers", "abc", "testdata/day6.txt"},
		{"day6", "--watch=maybe", "testdata/day6.txt"},
		{"--log-levle", "debug", "list"},
	} {
		code, out, errOut := runCLI(t, args...)
		assert.Equal(t, 2, code, "args %q", args)
		assert.Empty(t, out, "args %q", args)
		assert.Contains(t, errOut, "Usage:", "args %q", args)
	}
}

func TestRun_MissingFile(t *testing.T) {
	code, out, errOut := runCLI(t, "day6", filepath.Join(t.TempDir(), "nope.txt"))
	assert.Equal(t, 1, code)
	assert.Empty(t, out)
	assert.Contains(t, errOut, "no such file")
}

func TestRun_PuzzleError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lab.txt")
	require.NoError(t, os.WriteFile(path, []byte("...\n.#.\n"), 0o600))
	code, _, errOut := runCLI(t, "day6", path)
	assert.Equal(t, 1, code)
	assert.Contains(t, errOut, "start")
}

func TestRun_Day3Overflow(t *testing.T) {
	path := filepath.Join(t.TempDir(), "memory.txt")
	require.NoError(t, os.WriteFile(path, []byte("mul(4294967295,4294967295)\n"), 0o600))
	code, out, errOut := runCLI(t, "day3", path)
	assert.Equal(t, 1, code)
	assert.Empty(t, out)
	assert.Contains(t, errOut, "overflow")
}

func TestRun_Day8DebugMap(t *testing.T) {
	code, out, errOut := runCLI(t, "--log-level", "debug", "day8", "testdata/day8.txt")
	require.Equal(t, 0, code)
	assert.Equal(t, "antinodes: 14\nresonant antinodes: 34\n", out)
	assert.Contains(t, errOut, `msg="antinode map"`)
	assert.Contains(t, errOut, `msg="resonant antinode map"`)
	assert.Contains(t, errOut, `......#....#`, "first row of the antinode picture")

	_, _, errOut = runCLI(t, "day8", "testdata/day8.txt")
	assert.NotContains(t, errOut, "antinode map")
}

func TestRun_Config(t *testing.T) {
	dir := t.TempDir()
	good := filepath.Join(dir, "good.yaml")
	require.NoError(t, os.WriteFile(good, []byte("human: true\nlog_level: error\nworkers: 2\n"), 0o600))
	code, out, errOut := runCLI(t, "--config", good, "day7", "testdata/day7.txt")
	require.Equal(t, 0, code)
	assert.Contains(t, out, "11,387")
	assert.Empty(t, errOut)

	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("colour: blue\n"), 0o600))
	code, _, _ = runCLI(t, "--config", bad, "day7", "testdata/day7.txt")
	assert.Equal(t, 1, code)
}

//-----------------------------------------------------------------------------
// Watch mode
//-----------------------------------------------------------------------------

func TestWatchInput_SolvesAgainOnWrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "input.txt")
	require.NoError(t, os.WriteFile(path, []byte("1"), 0o600))

	ctx, cancel := context.WithCancel(ctxlog.WithLogger(context.Background(),
		slog.New(slog.NewTextHandler(io.Discard, nil))))
	defer cancel()

	var calls atomic.Int32
	done := make(chan error, 1)
	go func() {
		done <- watchInput(ctx, path, 10*time.Millisecond, func() error {
			calls.Add(1)
			return nil
		})
	}()

	require.Eventually(t, func() bool { return calls.Load() == 1 }, 5*time.Second, 5*time.Millisecond)
	require.NoError(t, os.WriteFile(path, []byte("2"), 0o600))
	require.Eventually(t, func() bool { return calls.Load() >= 2 }, 5*time.Second, 5*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("watchInput did not stop after cancel")
	}
}

func TestWatchInput_MissingDir(t *testing.T) {
	err := watchInput(context.Background(), filepath.Join(t.TempDir(), "no", "input.txt"), time.Millisecond, func() error { return nil })
	assert.Error(t, err)
}
