// SPDX-License-Identifier: MIT

package search_test

import (
	"fmt"

	"github.com/katalvlaran/lvsearch/search"
)

// ExampleUniformCostSearch finds the cheapest route across a small triangle.
func ExampleUniformCostSearch() {
	// A-B(1), B-C(2), A-C(5): the detour through B is cheaper.
	g := newGraphProblem("A", "C").link("A", "B", 1).link("B", "C", 2).link("A", "C", 5)

	res, err := search.UniformCostSearch[search.NoMemory](g)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Printf("found=%v cost=%g actions=%v\n", res.Found, res.PathCost, res.Actions)
	// Output: found=true cost=3 actions=[B C]
}

// ExampleAStar shows that the reported cost is in the original units even
// though the engine searched the reduced problem.
func ExampleAStar() {
	g := newGraphProblem("A", "C").link("A", "B", 1).link("B", "C", 2).link("A", "C", 5)

	res, err := search.AStar[search.NoMemory](g, exact(g))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Printf("cost=%g actions=%v\n", res.PathCost, res.Actions)
	// Output: cost=3 actions=[B C]
}
