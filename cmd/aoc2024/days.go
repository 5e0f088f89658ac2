package main

import (
	"context"
	"log/slog"

	"github.com/katalvlaran/aoc2024/antenna"
	"github.com/katalvlaran/aoc2024/calibration"
	"github.com/katalvlaran/aoc2024/grid"
	"github.com/katalvlaran/aoc2024/internal/ctxlog"
	"github.com/katalvlaran/aoc2024/lists"
	"github.com/katalvlaran/aoc2024/mulscan"
	"github.com/katalvlaran/aoc2024/ordering"
	"github.com/katalvlaran/aoc2024/reports"
	"github.com/katalvlaran/aoc2024/wordsearch"
)

func init() {
	register(1, "Historian Hysteria: distance between two location lists", lists.Parse, solveDay1)
	register(2, "Red-Nosed Reports: safe level sequences", reports.Parse, solveDay2)
	register(3, "Mull It Over: corrupted multiplication program", mulscan.Read, solveDay3)
	register(4, "Ceres Search: XMAS word search", grid.Parse, solveDay4)
	register(5, "Print Queue: page ordering rules", ordering.Parse, solveDay5)
	register(7, "Bridge Repair: calibration operators", calibration.Parse, solveDay7)
	register(8, "Resonant Collinearity: antenna antinodes", antenna.Parse, solveDay8)
}

func solveDay1(_ context.Context, _ *dayOptions, p *lists.Pairs) ([]answer, error) {
	return []answer{{"total distance", int64(lists.TotalDistance(p))}}, nil
}

func solveDay2(_ context.Context, _ *dayOptions, rs [][]int) ([]answer, error) {
	return []answer{
		{"safe reports", int64(reports.CountSafe(rs, false))},
		{"safe with dampener", int64(reports.CountSafe(rs, true))},
	}, nil
}

func solveDay3(_ context.Context, _ *dayOptions, program string) ([]answer, error) {
	all, err := mulscan.Sum(program)
	if err != nil {
		return nil, err
	}
	enabled, err := mulscan.SumEnabled(program)
	if err != nil {
		return nil, err
	}
	return []answer{
		{"sum of products", all},
		{"sum of enabled products", enabled},
	}, nil
}

func solveDay4(_ context.Context, _ *dayOptions, g *grid.Grid[byte]) ([]answer, error) {
	words, err := wordsearch.Count(g, "XMAS")
	if err != nil {
		return nil, err
	}
	crosses, err := wordsearch.CountCrosses(g, "MAS")
	if err != nil {
		return nil, err
	}
	return []answer{
		{"XMAS occurrences", int64(words)},
		{"X-MAS crosses", int64(crosses)},
	}, nil
}

func solveDay5(ctx context.Context, _ *dayOptions, m *ordering.Manual) ([]answer, error) {
	ordered, err := ordering.SumOrderedMiddles(m)
	if err != nil {
		return nil, err
	}
	reordered, err := ordering.SumReorderedMiddles(m, ordering.WithCancelContext(ctx))
	if err != nil {
		return nil, err
	}
	return []answer{
		{"ordered middle sum", int64(ordered)},
		{"reordered middle sum", int64(reordered)},
	}, nil
}

func solveDay7(_ context.Context, _ *dayOptions, eqs []calibration.Equation) ([]answer, error) {
	return []answer{
		{"calibration total", calibration.Total(eqs, calibration.PartOne...)},
		{"calibration total with concat", calibration.Total(eqs, calibration.PartTwo...)},
	}, nil
}

func solveDay8(ctx context.Context, _ *dayOptions, m *antenna.Map) ([]answer, error) {
	logger := ctxlog.FromContext(ctx)
	antinodes, resonant := m.Antinodes(), m.ResonantAntinodes()
	if logger.Enabled(ctx, slog.LevelDebug) {
		logger.Debug("antinode map", "frequencies", len(m.Frequencies()), "map", "\n"+m.Render(antinodes))
		logger.Debug("resonant antinode map", "map", "\n"+m.Render(resonant))
	}
	return []answer{
		{"antinodes", int64(len(antinodes))},
		{"resonant antinodes", int64(len(resonant))},
	}, nil
}

