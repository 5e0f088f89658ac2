// Package ordering checks and repairs print-queue updates against page
// ordering rules.
//
// What:
//
//   - Rules: a set of "X|Y" constraints meaning page X must be printed
//     before page Y whenever both appear in the same update.
//   - Ordered: reports whether an update already satisfies every rule that
//     applies to it.
//   - Sort: reorders an update with Kahn's algorithm over the rules
//     restricted to the update's pages, returning ErrCycleDetected when those
//     rules contradict each other.
//   - SumOrderedMiddles / SumReorderedMiddles: the two puzzle answers, the
//     sum of middle pages of correct updates and of repaired incorrect ones.
//
// Why:
//
//   - Rules only constrain pages that are present, so the global rule graph
//     may well contain cycles while every single update still sorts.
//
// Complexity:
//
//   - Ordered: O(n²) rule lookups for an update of n pages.
//   - Sort:    O(n²) to build the restricted graph, O(n+e) for Kahn.
//
// Errors:
//
//   - ErrMalformedRule      a rule line is not "X|Y"
//   - ErrMalformedUpdate    an update line is not a comma-separated list
//   - ErrDuplicatePage      an update lists the same page twice
//   - ErrEmptyUpdate        middle page of an empty update
//   - ErrCycleDetected      the applicable rules form a cycle
//   - context.Canceled      Sort canceled via WithCancelContext
package ordering
