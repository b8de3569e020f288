// File: methods_clone.go
// Role: Cloning and clearing graph instances.
// Determinism:
//   - Clone/CloneEmpty copy configuration flags verbatim.
// Concurrency:
//   - Read locks for snapshotting; no mutation of the source graph.

package core

// CloneEmpty returns a new Graph with identical configuration and declared
// nodes, but no dependencies.
//
// Complexity: O(V) to copy the node catalog.
func (g *Graph) CloneEmpty() *Graph {
	g.muNode.RLock()
	defer g.muNode.RUnlock()
	// Copy configuration via options
	var opts []GraphOption
	if g.implicit {
		opts = append(opts, WithImplicitNodes())
	}
	clone := NewGraph(opts...)
	// Copy nodes
	var id string
	for id = range g.nodes {
		clone.nodes[id] = struct{}{}
	}

	return clone
}

// Clone returns a deep copy of the Graph: configuration, nodes, and every
// recorded dependency (including stray strict-mode references).
//
// Complexity: O(V + E)
func (g *Graph) Clone() *Graph {
	clone := g.CloneEmpty()
	g.muDep.RLock()
	defer g.muDep.RUnlock()
	// Copy dependency sets
	var node, dep string
	var set map[string]struct{}
	for node, set = range g.deps {
		ns := make(map[string]struct{}, len(set))
		for dep = range set {
			ns[dep] = struct{}{}
		}
		clone.deps[node] = ns
	}
	clone.depCount = g.depCount

	return clone
}

// Clear resets the graph to an empty state while preserving configuration flags.
//
// Behavior:
//   - Reinitializes node and dependency maps; resets the edge counter.
//   - The implicit flag is preserved.
//
// Complexity: O(1) for map reallocation; no iteration over existing entries.
// Concurrency: acquires both write locks; not safe to call concurrently with readers.
func (g *Graph) Clear() {
	g.muNode.Lock()
	g.muDep.Lock()
	// reset maps
	g.nodes = make(map[string]struct{})
	g.deps = make(map[string]map[string]struct{})
	g.depCount = 0
	g.muDep.Unlock()
	g.muNode.Unlock()
}
