// File: methods_nodes.go
// Role: Node lifecycle & queries.
//
// Determinism:
//   - Nodes() returns IDs sorted lexicographically ascending.
//
// Concurrency:
//   - Node catalog protected by muNode.
//   - RemoveNode also rewrites adjacency under muDep (lock order muNode → muDep).
//
// AI-Hints (file):
//   - Nodes() is a stable enumeration surface; rely on it for reproducible outputs.
package core

import "sort"

// AddNode declares a node if missing (idempotent).
//
// Implementation:
//   - Stage 1: Validate non-empty ID (ErrEmptyNodeID).
//   - Stage 2: Under muNode write lock, register the ID in the catalog.
//
// Behavior highlights:
//   - Idempotent: declaring an existing node is a no-op.
//   - Declaring a node never creates dependencies.
//
// Errors:
//   - ErrEmptyNodeID: if id == "".
//
// Complexity:
//   - Time O(1) amortized, Space O(1) amortized.
func (g *Graph) AddNode(id string) error {
	if id == "" {
		return ErrEmptyNodeID
	}

	// Stage 2: register in the node catalog under muNode.
	g.muNode.Lock()
	defer g.muNode.Unlock()

	g.nodes[id] = struct{}{}

	return nil
}

// HasNode reports whether the node ID is declared (empty ID ⇒ false).
//
// Complexity: O(1). Pure query under muNode read lock.
func (g *Graph) HasNode(id string) bool {
	if id == "" {
		return false
	}
	// Acquire read lock on the node catalog
	g.muNode.RLock()
	defer g.muNode.RUnlock()
	_, ok := g.nodes[id]

	return ok
}

// RemoveNode deletes a node and every edge incident to it, on either side.
//
// Implementation:
//   - Stage 1: Validate non-empty ID (ErrEmptyNodeID).
//   - Stage 2: Acquire muNode and muDep write locks for an atomic topology update.
//   - Stage 3: Verify node presence (ErrNodeNotFound).
//   - Stage 4: Drop the node's own dependency set, then scan all remaining
//     sets and remove references to the node.
//   - Stage 5: Delete the node from the catalog.
//
// Behavior highlights:
//   - Leaves the graph in a consistent state (no dangling references).
//   - Stray references recorded against the removed ID in strict mode are
//     dropped together with the node.
//
// Errors:
//   - ErrEmptyNodeID: if id == "".
//   - ErrNodeNotFound: if the node does not exist.
//
// Complexity:
//   - Time O(V + E) for the adjacency scan, Space O(1) extra.
//
// Notes:
//   - This method is intentionally "heavy": removing a node is a topology rewrite.
func (g *Graph) RemoveNode(id string) error {
	if id == "" {
		return ErrEmptyNodeID
	}

	// Acquire both locks (muNode → muDep) for atomic removal.
	g.muNode.Lock()
	defer g.muNode.Unlock()

	g.muDep.Lock()
	defer g.muDep.Unlock()

	// Verify node presence
	if _, exists := g.nodes[id]; !exists {
		return ErrNodeNotFound
	}

	// Drop the node's own dependency set.
	if own, ok := g.deps[id]; ok {
		g.depCount -= len(own)
		delete(g.deps, id)
	}

	// Remove references to the node from every other dependency set.
	var node string
	var set map[string]struct{}
	for node, set = range g.deps {
		if _, ok := set[id]; ok {
			delete(set, id)
			g.depCount--
			// prune the now-empty set
			if len(set) == 0 {
				delete(g.deps, node)
			}
		}
	}

	// Delete the catalog record.
	delete(g.nodes, id)

	return nil
}

// Nodes returns all declared node IDs in lexicographic ascending order.
//
// Behavior highlights:
//   - Stable enumeration surface used for determinism in higher-level algorithms.
//
// Complexity:
//   - Time O(V log V), Space O(V).
//
// AI-Hints:
//   - Use Nodes() for reproducible traversal seeds and stable test assertions.
func (g *Graph) Nodes() []string {
	g.muNode.RLock()
	defer g.muNode.RUnlock()

	ids := make([]string, 0, len(g.nodes))
	var id string
	for id = range g.nodes {
		ids = append(ids, id)
	}

	sort.Strings(ids)

	return ids
}

// NodeCount returns the current number of declared nodes.
//
// Complexity: O(1). Prefer NodeCount() over len(Nodes()) to avoid sorting costs.
func (g *Graph) NodeCount() int {
	g.muNode.RLock()
	defer g.muNode.RUnlock()

	return len(g.nodes)
}
