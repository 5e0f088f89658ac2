// Package patrol simulates a guard walking a lab floor plan and searches
// for single obstacle placements that trap the guard in a loop.
//
// What:
//
//   - Lab: a grid of Empty, Obstacle and StartMarker cells plus the start.
//   - RunCollectVisited: walks from the start facing Up until the guard
//     leaves the map; returns every distinct cell entered (start included).
//   - RunDetectLoop: the same walk, tracking (position, heading) states;
//     reports true as soon as a state repeats.
//   - Obstructions / CountLoopObstructions: tries an extra obstacle on every
//     empty cell and collects the placements for which RunDetectLoop is true.
//
// Walk rules:
//
//  1. Look one cell ahead in the current heading.
//  2. Outside the map: the walk ends.
//  3. Obstacle: turn 90° clockwise without moving and look again.
//  4. Otherwise: step into the cell.
//
// Every rotation and every step is one transition. A walk has at most
// Rows×Cols×4 distinct states, so a loop is always found within that bound.
//
// Complexity:
//
//   - RunCollectVisited, RunDetectLoop: O(R×C) time, O(R×C) memory.
//   - Obstructions: O(E×R×C) time for E empty cells; no pruning or reuse
//     between trials. WithWorkers spreads trials over goroutines, each with
//     its own copy of the lab.
//
// Errors:
//
//   - ErrEmptyGrid: the floor plan has no rows or no columns.
//   - ErrMissingStart: no '^' in the floor plan.
//   - ErrMultipleStarts: more than one '^'.
//   - ErrUnknownCell: a character other than '.', '#' or '^'.
//   - ErrLoop: RunCollectVisited exceeded the transition bound.
//   - ErrCellOccupied: WithObstacle targeted a non-empty cell.
package patrol
