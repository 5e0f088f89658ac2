package main

import (
	"context"
	"fmt"
	"io"
	"maps"
	"os"
	"slices"
	"text/tabwriter"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/kr/pretty"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/aoc2024/internal/ctxlog"
)

// answer is one labeled puzzle result.
type answer struct {
	label string
	value int64
}

// dayOptions holds the flags of one day command.
type dayOptions struct {
	watch   bool
	dump    bool
	workers int
}

// day is a registered solution.
type day struct {
	n     int
	short string
	run   func(ctx context.Context, a *app, o *dayOptions, r io.Reader) error
	flags func(cmd *cobra.Command, o *dayOptions) // extra flags, may be nil
}

var days = make(map[int]*day)

// register adds the solution for day n. parse turns the input file into T;
// solve computes the answers from it.
func register[T any](
	n int,
	short string,
	parse func(io.Reader) (T, error),
	solve func(ctx context.Context, o *dayOptions, in T) ([]answer, error),
) *day {
	if _, ok := days[n]; ok {
		panic(fmt.Sprintf("duplicate solutions registered for day %d", n))
	}
	d := &day{n: n, short: short}
	d.run = func(ctx context.Context, a *app, o *dayOptions, r io.Reader) error {
		logger := ctxlog.FromContext(ctx)
		start := time.Now()
		in, err := parse(r)
		if err != nil {
			return err
		}
		logger.Debug("parsed input", "day", n, "elapsed", time.Since(start))
		if o.dump {
			if _, err := pretty.Fprintf(a.stdout, "%# v\n", in); err != nil {
				return err
			}
		}

		answers, err := solve(ctx, o, in)
		if err != nil {
			return err
		}
		logger.Info("solved", "day", n, "answers", len(answers), "elapsed", time.Since(start))
		return printAnswers(a.stdout, a.cfg.Human, answers)
	}
	days[n] = d
	return d
}

func (d *day) name() string { return fmt.Sprintf("day%d", d.n) }

// command builds the cobra command for d.
func (d *day) command(a *app) *cobra.Command {
	o := &dayOptions{}
	cmd := &cobra.Command{
		Use:   d.name() + " <input-file>",
		Short: d.short,
		Args:  exactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("workers") {
				o.workers = a.cfg.Workers
			}
			ctx, path := cmd.Context(), args[0]
			solve := func() error { return d.solveFile(ctx, a, o, path) }
			if o.watch {
				return watchInput(ctx, path, watchDebounce, solve)
			}
			return solve()
		},
	}
	cmd.Flags().BoolVar(&o.watch, "watch", false, "solve again whenever the input file changes")
	cmd.Flags().BoolVar(&o.dump, "dump", false, "pretty-print the parsed input before solving")
	if d.flags != nil {
		d.flags(cmd, o)
	}
	return cmd
}

func (d *day) solveFile(ctx context.Context, a *app, o *dayOptions, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := d.run(ctx, a, o, f); err != nil {
		return fmt.Errorf("%s: %s: %w", d.name(), path, err)
	}
	return nil
}

func printAnswers(w io.Writer, human bool, answers []answer) error {
	for _, ans := range answers {
		v := fmt.Sprint(ans.value)
		if human {
			v = humanize.Comma(ans.value)
		}
		if _, err := fmt.Fprintf(w, "%s: %s\n", ans.label, v); err != nil {
			return err
		}
	}
	return nil
}

func listCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the available days",
		Args:  exactArgs(0),
		RunE: func(cmd *cobra.Command, _ []string) error {
			tw := tabwriter.NewWriter(a.stdout, 0, 4, 2, ' ', 0)
			for _, n := range slices.Sorted(maps.Keys(days)) {
				fmt.Fprintf(tw, "%s\t%s\n", days[n].name(), days[n].short)
			}
			return tw.Flush()
		},
	}
}
