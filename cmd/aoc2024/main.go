// Command aoc2024 solves Advent of Code 2024, days 1 to 8.
//
// Usage:
//
//	aoc2024 [flags] dayN <input-file>
//	aoc2024 list
//
// Each day prints one "<label>: <value>" line per answer. Logs go to stderr.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

// exitError carries the process exit status for err.
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string { return e.err.Error() }

func (e *exitError) Unwrap() error { return e.err }

// run executes the command line and returns the exit status: 0 on success,
// 2 for usage errors, 1 for everything else.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	root := newRootCmd(stdout, stderr)
	root.SetArgs(args)
	err := root.ExecuteContext(ctx)
	if err == nil {
		return 0
	}
	fmt.Fprintln(stderr, "aoc2024:", err)

	var ee *exitError
	if errors.As(err, &ee) {
		return ee.code
	}
	return 1
}
