// Package aoc2024 collects solutions to Advent of Code 2024, days 1 to 8,
// as small algorithm packages plus one command that runs them.
//
// What is in here?
//
//	Each day is a library package with its own parser, sentinel errors,
//	tests, examples and, where speed matters, benchmarks:
//		• lists         day 1, pairwise distance of two sorted columns
//		• reports       day 2, monotonic level checks with a dampener
//		• mulscan       day 3, mul/do/don't instruction scanning
//		• wordsearch    day 4, 8-way word search and diagonal crosses
//		• ordering      day 5, page rules and Kahn topological repair
//		• patrol        day 6, guard walk, loop detection, obstruction search
//		• calibration   day 7, left-to-right operator search
//		• antenna       day 8, antinodes and resonant harmonics
//
// Shared building blocks:
//
//	grid/              generic rectangular Grid[T], Point, Direction, text parsing
//	input/             line scanning and integer fields
//	internal/config    YAML settings with defaults and validation
//	internal/ctxlog    *slog.Logger on a context.Context
//	cmd/aoc2024        cobra CLI: aoc2024 dayN <input-file>
//
// Library packages never print or log; they return errors and expose hooks
// (patrol.WithOnStep, patrol.WithOnTrial) that the command wires to slog.
//
// Quick example:
//
//	go run ./cmd/aoc2024 day6 input.txt
//	visited positions: 41
//	loop obstructions: 6
package aoc2024
