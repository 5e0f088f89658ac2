package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/aoc2024/grid"
	"github.com/katalvlaran/aoc2024/internal/ctxlog"
	"github.com/katalvlaran/aoc2024/patrol"
)

func init() {
	d := register(6, "Guard Gallivant: patrol path and loop obstructions", patrol.ParseLab, solveDay6)
	d.flags = func(cmd *cobra.Command, o *dayOptions) {
		cmd.Flags().IntVar(&o.workers, "workers", 0, "parallel obstruction trials (defaults to the config value)")
	}
}

func solveDay6(ctx context.Context, o *dayOptions, lab *patrol.Lab) ([]answer, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("lab loaded", "rows", lab.Rows(), "cols", lab.Cols(), "start", lab.Start().String())

	visited, err := patrol.RunCollectVisited(lab)
	if err != nil {
		return nil, err
	}
	loops, err := patrol.CountLoopObstructions(lab,
		patrol.WithContext(ctx),
		patrol.WithWorkers(o.workers),
		patrol.WithOnTrial(func(p grid.Point, trapped bool) {
			if trapped {
				logger.Debug("loop obstruction", "at", p.String())
			}
		}),
	)
	if err != nil {
		return nil, err
	}
	return []answer{
		{"visited positions", int64(len(visited))},
		{"loop obstructions", int64(loops)},
	}, nil
}
