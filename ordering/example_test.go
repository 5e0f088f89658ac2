package ordering_test

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/aoc2024/ordering"
)

// ExampleRules_Sort repairs an update that breaks two rules.
func ExampleRules_Sort() {
	m, _ := ordering.Parse(strings.NewReader("1|2\n2|3\n\n3,1,2\n"))
	u := m.Updates[0]
	fmt.Println(m.Rules.Ordered(u))

	sorted, _ := m.Rules.Sort(u)
	fmt.Println(sorted)

	// Output:
	// false
	// [1 2 3]
}
