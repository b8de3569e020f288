// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: Thin, deterministic public facade exposing constructors and read-only getters.
// Policy:
//   - No algorithms or hidden state here.
//   - Concurrency model and invariants are defined in types.go/doc.go.
//   - Every exported function documents complexity and locking strategy.
// AI-HINT (file):
//   - FromMap(nodes, deps) is the one-call bridge from "caller mapping" to Graph.
//   - Implicit() reports the construction-time auto-declaration flag.

package core

import "fmt"

// FromMap builds a Graph from the caller's natural in-memory representation:
// an explicit node list plus a mapping from each node to the nodes it
// depends on.
//
// Implementation:
//   - Stage 1: Construct an empty Graph with the provided options.
//   - Stage 2: Declare every entry of nodes via AddNode (ErrEmptyNodeID on "").
//   - Stage 3: Record every mapping entry via AddDependency.
//
// Behavior highlights:
//   - A node absent from deps simply has no dependencies.
//   - In strict mode (default) mapping endpoints are NOT validated here;
//     stray references are the sorter's UnknownNode domain, so that graph
//     construction and graph validation stay separate concerns.
//
// Inputs:
//   - nodes: the complete set of items to order; may be empty.
//   - deps: node → its dependencies; may be nil.
//   - opts: GraphOption values applied before population.
//
// Returns:
//   - *Graph: populated graph.
//   - error: nil on success; ErrEmptyNodeID wrapped with the offending entry.
//
// Determinism:
//   - Map iteration order does not matter: storage is set-shaped and every
//     enumeration surface sorts on the way out.
//
// Complexity:
//   - Time O(V + E), Space O(V + E).
func FromMap(nodes []string, deps map[string][]string, opts ...GraphOption) (*Graph, error) {
	// Stage 1: fresh graph with caller options.
	g := NewGraph(opts...)

	// Stage 2: declare the node set.
	for _, id := range nodes {
		if err := g.AddNode(id); err != nil {
			return nil, fmt.Errorf("FromMap: AddNode(%q): %w", id, err)
		}
	}

	// Stage 3: record the dependency mapping.
	for node, ds := range deps {
		for _, dep := range ds {
			if err := g.AddDependency(node, dep); err != nil {
				return nil, fmt.Errorf("FromMap: AddDependency(%q, %q): %w", node, dep, err)
			}
		}
	}

	return g, nil
}

// Implicit reports the construction-time auto-declaration flag.
// When true, AddDependency declares unseen endpoints instead of recording
// stray references.
//
// Complexity: O(1). Pure query; flags are immutable after construction.
func (g *Graph) Implicit() bool {
	g.muNode.RLock()
	defer g.muNode.RUnlock()

	return g.implicit
}
