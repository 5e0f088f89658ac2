// Package calibration decides which calibration equations can be made true
// by inserting operators between their operands.
//
// An equation "190: 10 19" has a target and an ordered operand list. Each gap
// between operands takes one Operator; the expression is evaluated strictly
// left to right, with no precedence, and the operands are never reordered.
//
// Operators:
//
//   - Add       a + b
//   - Multiply  a * b
//   - Concat    the decimal digits of a followed by those of b (12 || 345 = 12345)
//
// Solvable enumerates every one of k^(n-1) operator assignments for k operators
// and n operands with a base-k counter, and stops at the first assignment that
// hits the target.
//
// Complexity:
//
//   - Solvable: O(k^(n-1) · n) time, O(n) memory.
//
// Errors:
//
//   - ErrMalformedEquation  a line is not "target: a b c ..."
//   - ErrOperatorCount      Evaluate got the wrong number of operators
//   - ErrOverflow           an intermediate value left the int64 range
package calibration
