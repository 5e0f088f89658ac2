// Package grid holds the rectangular character maps that several puzzles
// are drawn on, together with the points and headings used to walk them.
//
// What:
//
//   - Grid[T] stores Rows×Cols cells in one row-major slice.
//   - Parse reads a text block (one line per row) into a Grid[byte].
//   - Map converts a grid cell by cell, e.g. bytes into a typed cell kind.
//   - Point is a (Row, Col) coordinate; Direction is one of the four compass
//     headings with a table-driven TurnRight.
//   - Compass8 lists the eight unit offsets for word-search style scans.
//
// Why:
//
//   - Puzzle maps are small, dense and rectangular; a flat slice keeps At/Set
//     O(1) and Clone a single copy.
//   - Point is comparable, so it can key maps and sets directly.
//
// Complexity:
//
//   - Parse, Map, Clone: O(Rows×Cols) time and memory.
//   - At, Set, InBounds: O(1).
//
// Errors:
//
//   - ErrEmptyGrid: input has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrOutOfBounds: a point lies outside the grid.
package grid
