package core_test

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/deporder/core"
)

// ExampleGraph demonstrates declaring nodes, recording dependencies,
// and querying both directions of the relation.
// Graph structure (A depends on B and C, both depend on D):
//
//	    A
//	   / \
//	  B   C
//	   \ /
//	    D
func ExampleGraph() {
	g := core.NewGraph()

	// Declare the node set first (strict mode).
	for _, id := range []string{"A", "B", "C", "D"} {
		_ = g.AddNode(id)
	}

	// Record the depends-on edges.
	_ = g.AddDependency("A", "B")
	_ = g.AddDependency("A", "C")
	_ = g.AddDependency("B", "D")
	_ = g.AddDependency("C", "D")

	// Forward query: what must precede A?
	deps, _ := g.DependenciesOf("A")
	fmt.Println("A depends on:", strings.Join(deps, " "))

	// Reverse query: who waits on D?
	ups, _ := g.DependentsOf("D")
	fmt.Println("D is required by:", strings.Join(ups, " "))

	// Output:
	// A depends on: B C
	// D is required by: B C
}

// ExampleFromMap shows the one-call bridge from the caller's natural
// mapping representation to a Graph.
func ExampleFromMap() {
	g, err := core.FromMap(
		[]string{"app", "db", "cache"},
		map[string][]string{"app": {"db", "cache"}},
	)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println(g.NodeCount(), "nodes,", g.DependencyCount(), "dependencies")

	// Output:
	// 3 nodes, 2 dependencies
}
