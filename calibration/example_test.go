package calibration_test

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/aoc2024/calibration"
)

// ExampleEquation_Solution finds the operators for one calibration line.
func ExampleEquation_Solution() {
	eqs, _ := calibration.Parse(strings.NewReader("7290: 6 8 6 15\n"))
	e := eqs[0]

	_, ok := e.Solution(calibration.PartOne...)
	fmt.Println(ok)

	ops, _ := e.Solution(calibration.PartTwo...)
	fmt.Println(e.Format(ops))

	// Output:
	// false
	// 6 * 8 || 6 * 15
}
