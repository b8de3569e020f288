package toposort_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/deporder/builder"
	"github.com/katalvlaran/deporder/core"
	"github.com/katalvlaran/deporder/toposort"
)

// position returns index of v in slice or -1 if not found
func position(order []string, v string) int {
	for i, x := range order {
		if x == v {
			return i
		}
	}

	return -1
}

// assertRespectsEdges verifies the core invariant: for every recorded edge
// "node depends on dep", dep occurs strictly before node in order.
func assertRespectsEdges(t *testing.T, g *core.Graph, order []string) {
	t.Helper()
	for node, deps := range g.DependencyMap() {
		for _, dep := range deps {
			assert.Lessf(t,
				position(order, dep), position(order, node),
				"dependency %s should come before %s", dep, node,
			)
		}
	}
}

// TestSort_NilGraph verifies that passing a nil graph returns ErrGraphNil.
func TestSort_NilGraph(t *testing.T) {
	order, err := toposort.Sort(nil)
	assert.Nil(t, order)
	assert.ErrorIs(t, err, toposort.ErrGraphNil)
}

// TestSort_EmptyGraph covers a graph with no nodes: empty order, no error.
func TestSort_EmptyGraph(t *testing.T) {
	g := core.NewGraph()
	order, err := toposort.Sort(g)
	assert.NoError(t, err)
	assert.Empty(t, order)
}

// TestSort_NoDependencies checks that independent nodes sort into the
// lexicographic permutation — any permutation would satisfy the edges, but
// the committed deterministic choice is sorted root order.
func TestSort_NoDependencies(t *testing.T) {
	g := core.NewGraph()
	_ = g.AddNode("C")
	_ = g.AddNode("A")
	_ = g.AddNode("B")

	order, err := toposort.Sort(g)
	assert.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C"}, order)
}

// TestSort_LinearChain verifies A→B→C dependencies yield exactly [C, B, A]:
// C has no deps and is emitted first; B depends on C; A depends on B.
func TestSort_LinearChain(t *testing.T) {
	order, err := toposort.SortMap(
		[]string{"A", "B", "C"},
		map[string][]string{"A": {"B"}, "B": {"C"}},
	)
	assert.NoError(t, err)
	assert.Equal(t, []string{"C", "B", "A"}, order)
}

// TestSort_Diamond checks the shared-dependency shape: D precedes B and C,
// B and C precede A, and D appears exactly once despite being a dependency
// of two nodes.
func TestSort_Diamond(t *testing.T) {
	g, err := builder.Build(nil, nil, builder.Diamond())
	require.NoError(t, err)

	order, err := toposort.Sort(g)
	assert.NoError(t, err)
	assert.Equal(t, []string{"D", "B", "C", "A"}, order)

	// D exactly once.
	count := 0
	for _, id := range order {
		if id == "D" {
			count++
		}
	}
	assert.Equal(t, 1, count, "shared dependency must be emitted once")
	assertRespectsEdges(t, g, order)
}

// TestSort_Disconnected verifies that disconnected components are all
// included and each respects its own edges.
func TestSort_Disconnected(t *testing.T) {
	g := core.NewGraph(core.WithImplicitNodes())
	// component 1: X depends on Y
	_ = g.AddDependency("X", "Y")
	// component 2: A depends on B
	_ = g.AddDependency("A", "B")

	order, err := toposort.Sort(g)
	assert.NoError(t, err)
	assert.Len(t, order, 4)
	assert.Less(t, position(order, "Y"), position(order, "X"))
	assert.Less(t, position(order, "B"), position(order, "A"))
	assert.ElementsMatch(t, []string{"A", "B", "X", "Y"}, order)
}

// TestSort_SimpleCycle ensures a two-node loop fails with a CycleError
// naming both participants.
func TestSort_SimpleCycle(t *testing.T) {
	order, err := toposort.SortMap(
		[]string{"A", "B"},
		map[string][]string{"A": {"B"}, "B": {"A"}},
	)
	assert.Nil(t, order)
	assert.ErrorIs(t, err, toposort.ErrCycleDetected)

	var cerr *toposort.CycleError
	require.ErrorAs(t, err, &cerr)
	assert.Contains(t, cerr.Cycle, "A")
	assert.Contains(t, cerr.Cycle, "B")
	// Canonical form: minimal rotation, closed loop.
	assert.Equal(t, []string{"A", "B", "A"}, cerr.Cycle)
}

// TestSort_SelfCycle ensures a self-dependency fails with a CycleError
// containing the node.
func TestSort_SelfCycle(t *testing.T) {
	order, err := toposort.SortMap([]string{"A"}, map[string][]string{"A": {"A"}})
	assert.Nil(t, order)
	assert.ErrorIs(t, err, toposort.ErrCycleDetected)

	var cerr *toposort.CycleError
	require.ErrorAs(t, err, &cerr)
	assert.Equal(t, []string{"A", "A"}, cerr.Cycle)
}

// TestSort_RingFailure uses a 6-node ring to verify the failure path at a
// slightly larger scale, and that the evidence is an actual closed loop.
func TestSort_RingFailure(t *testing.T) {
	g, err := builder.Build(nil, nil, builder.Ring(6))
	require.NoError(t, err)

	order, err := toposort.Sort(g)
	assert.Nil(t, order)

	var cerr *toposort.CycleError
	require.ErrorAs(t, err, &cerr)
	assert.Len(t, cerr.Cycle, 7, "6-node ring closes into a 7-element loop")
	assert.Equal(t, cerr.Cycle[0], cerr.Cycle[len(cerr.Cycle)-1])
	// Every consecutive pair is a recorded dependency.
	for i := 0; i+1 < len(cerr.Cycle); i++ {
		assert.Truef(t, g.HasDependency(cerr.Cycle[i], cerr.Cycle[i+1]),
			"loop step %s -> %s is not a recorded edge", cerr.Cycle[i], cerr.Cycle[i+1])
	}
}

// TestSort_UnknownReference ensures a dependency on an undeclared node fails
// with UnknownNodeError naming the stray reference and its origin.
func TestSort_UnknownReference(t *testing.T) {
	order, err := toposort.SortMap([]string{"A"}, map[string][]string{"A": {"Z"}})
	assert.Nil(t, order)
	assert.ErrorIs(t, err, toposort.ErrUnknownNode)

	var uerr *toposort.UnknownNodeError
	require.ErrorAs(t, err, &uerr)
	assert.Equal(t, "Z", uerr.Node)
	assert.Equal(t, "A", uerr.RequiredBy)
}

// TestSort_UnknownMappingKey ensures an undeclared mapping key is rejected
// the same way as an undeclared dependency.
func TestSort_UnknownMappingKey(t *testing.T) {
	g := core.NewGraph()
	_ = g.AddNode("A")
	// "Q" records dependencies but is never declared.
	_ = g.AddDependency("Q", "A")

	order, err := toposort.Sort(g)
	assert.Nil(t, order)

	var uerr *toposort.UnknownNodeError
	require.ErrorAs(t, err, &uerr)
	assert.Equal(t, "Q", uerr.Node)
	assert.Empty(t, uerr.RequiredBy)
}

// TestSort_ImplicitGraph verifies that implicit-mode graphs never produce
// UnknownNode: endpoints were declared on first sight.
func TestSort_ImplicitGraph(t *testing.T) {
	g := core.NewGraph(core.WithImplicitNodes())
	_ = g.AddDependency("A", "Z")

	order, err := toposort.Sort(g)
	assert.NoError(t, err)
	assert.Equal(t, []string{"Z", "A"}, order)
}

// TestSort_Determinism re-runs Sort on the same layered DAG and expects the
// identical sequence every time (no hidden randomness).
func TestSort_Determinism(t *testing.T) {
	g, err := builder.Build(nil, []builder.Option{builder.WithSeed(7)}, builder.Layered(5, 8))
	require.NoError(t, err)

	first, err := toposort.Sort(g)
	require.NoError(t, err)
	assertRespectsEdges(t, g, first)

	for run := 0; run < 10; run++ {
		again, err := toposort.Sort(g)
		require.NoError(t, err)
		assert.Equal(t, first, again, "run %d diverged", run)
	}
}

// TestSort_DeepChain drives a 100k-node chain through the sorter: the
// explicit frame stack must handle a traversal depth no recursive
// implementation could.
func TestSort_DeepChain(t *testing.T) {
	const n = 100_000
	g, err := builder.Build(nil, nil, builder.Chain(n))
	require.NoError(t, err)

	order, err := toposort.Sort(g)
	require.NoError(t, err)
	require.Len(t, order, n)
	// The deepest dependency is emitted first, the root last.
	assert.Equal(t, "N99999", order[0])
	assert.Equal(t, "N00000", order[n-1])
}

// TestSort_DoesNotMutateGraph verifies sorting leaves the input untouched.
func TestSort_DoesNotMutateGraph(t *testing.T) {
	g, err := builder.Build(nil, nil, builder.Diamond())
	require.NoError(t, err)

	beforeNodes := g.Nodes()
	beforeDeps := g.DependencyMap()

	_, err = toposort.Sort(g)
	require.NoError(t, err)

	assert.Equal(t, beforeNodes, g.Nodes())
	assert.Equal(t, beforeDeps, g.DependencyMap())
}

// TestSortMap_ConstructionErrors verifies that empty IDs surface the wrapped
// core sentinel rather than a sort-level failure.
func TestSortMap_ConstructionErrors(t *testing.T) {
	_, err := toposort.SortMap([]string{""}, nil)
	assert.ErrorIs(t, err, core.ErrEmptyNodeID)
}
