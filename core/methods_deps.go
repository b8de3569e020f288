// File: methods_deps.go
// Role: Dependency lifecycle & neighborhood queries.
//
// Determinism:
//   - DependenciesOf() returns unique IDs sorted lex asc.
//   - DependentsOf() returns unique IDs sorted lex asc.
//   - DependencyMap() returns per-node dependency slices sorted lex asc;
//     returned slices are independent (no shared backing).
//
// Concurrency:
//   - Adjacency protected by muDep; AddDependency in implicit mode touches
//     the catalog first (lock order muNode → muDep).
package core

import "sort"

// AddDependency records "node depends on dep": dep must precede node in any
// valid ordering. Recording the same pair twice is a no-op.
//
// Implementation:
//   - Stage 1: Validate both IDs are non-empty (ErrEmptyNodeID).
//   - Stage 2: In implicit mode, declare both endpoints under muNode.
//   - Stage 3: Under muDep write lock, insert dep into node's set,
//     bootstrapping the set on first use.
//
// Behavior highlights:
//   - Strict mode (default) records the edge without validating that either
//     endpoint is declared; the sorter surfaces stray references as
//     UnknownNode errors, keeping construction cheap and validation exact.
//   - Self-dependencies are recorded as given; they are cycle evidence for
//     the sorter, not a construction error.
//
// Errors:
//   - ErrEmptyNodeID: if node == "" or dep == "".
//
// Complexity:
//   - Time O(1) amortized, Space O(1) amortized.
func (g *Graph) AddDependency(node, dep string) error {
	// Stage 1: both endpoints need usable IDs.
	if node == "" || dep == "" {
		return ErrEmptyNodeID
	}

	// Stage 2: implicit mode declares endpoints on first sight.
	if g.implicit {
		g.muNode.Lock()
		g.nodes[node] = struct{}{}
		g.nodes[dep] = struct{}{}
		g.muNode.Unlock()
	}

	// Stage 3: record the edge under muDep.
	g.muDep.Lock()
	defer g.muDep.Unlock()

	set, ok := g.deps[node]
	if !ok {
		set = make(map[string]struct{})
		g.deps[node] = set
	}
	if _, dup := set[dep]; dup {
		return nil // no-op for an already-recorded pair
	}
	set[dep] = struct{}{}
	g.depCount++

	return nil
}

// HasDependency reports whether "node depends on dep" has been recorded.
//
// Complexity: O(1). Pure query under muDep read lock.
func (g *Graph) HasDependency(node, dep string) bool {
	if node == "" || dep == "" {
		return false
	}
	g.muDep.RLock()
	defer g.muDep.RUnlock()

	set, ok := g.deps[node]
	if !ok {
		return false
	}
	_, ok = set[dep]

	return ok
}

// DependenciesOf returns the direct dependencies of id, sorted lex asc.
//
// Implementation:
//   - Stage 1: Validate id (ErrEmptyNodeID) and declaration (ErrNodeNotFound).
//   - Stage 2: Under muDep read lock, copy the node's set into a slice.
//   - Stage 3: Sort ascending and return.
//
// Behavior highlights:
//   - A declared node with no recorded dependencies yields an empty slice.
//   - Returned dependencies may themselves be undeclared in strict mode;
//     that is the sorter's UnknownNode domain, not a query failure.
//
// Errors:
//   - ErrEmptyNodeID: if id == "".
//   - ErrNodeNotFound: if the node is not declared.
//
// Complexity:
//   - Time O(d log d), Space O(d), where d = number of direct dependencies.
func (g *Graph) DependenciesOf(id string) ([]string, error) {
	if id == "" {
		return nil, ErrEmptyNodeID
	}

	// Lock order muNode → muDep for a consistent snapshot.
	g.muNode.RLock()
	defer g.muNode.RUnlock()

	if _, ok := g.nodes[id]; !ok {
		return nil, ErrNodeNotFound
	}

	g.muDep.RLock()
	defer g.muDep.RUnlock()

	out := make([]string, 0, len(g.deps[id]))
	var dep string
	for dep = range g.deps[id] {
		out = append(out, dep)
	}

	sort.Strings(out)

	return out, nil
}

// DependentsOf returns the nodes that directly depend on id, sorted lex asc.
//
// Implementation:
//   - Stage 1: Validate id (ErrEmptyNodeID) and declaration (ErrNodeNotFound).
//   - Stage 2: Under muDep read lock, scan every dependency set for id.
//   - Stage 3: Sort ascending and return.
//
// Errors:
//   - ErrEmptyNodeID: if id == "".
//   - ErrNodeNotFound: if the node is not declared.
//
// Complexity:
//   - Time O(V + E) — the adjacency is optimized for the forward direction
//     and carries no reverse index.
func (g *Graph) DependentsOf(id string) ([]string, error) {
	if id == "" {
		return nil, ErrEmptyNodeID
	}

	g.muNode.RLock()
	defer g.muNode.RUnlock()

	if _, ok := g.nodes[id]; !ok {
		return nil, ErrNodeNotFound
	}

	g.muDep.RLock()
	defer g.muDep.RUnlock()

	var out []string
	var node string
	var set map[string]struct{}
	for node, set = range g.deps {
		if _, ok := set[id]; ok {
			out = append(out, node)
		}
	}

	sort.Strings(out)

	return out, nil
}

// DependencyMap returns a snapshot of every recorded edge as a mapping from
// node ID to its sorted dependency slice.
//
// Behavior highlights:
//   - Includes entries whose endpoints are undeclared (strict mode), so the
//     sorter can validate the full edge set in one pass.
//   - The returned map and slices are copies; callers may retain and mutate
//     them without holding graph locks.
//
// Complexity:
//   - Time O(V + E·log d), Space O(V + E).
func (g *Graph) DependencyMap() map[string][]string {
	g.muDep.RLock()
	defer g.muDep.RUnlock()

	out := make(map[string][]string, len(g.deps))
	var node, dep string
	var set map[string]struct{}
	for node, set = range g.deps {
		ds := make([]string, 0, len(set))
		for dep = range set {
			ds = append(ds, dep)
		}
		sort.Strings(ds)
		out[node] = ds
	}

	return out
}

// DependencyCount returns the number of distinct recorded edges.
//
// Complexity: O(1).
func (g *Graph) DependencyCount() int {
	g.muDep.RLock()
	defer g.muDep.RUnlock()

	return g.depCount
}
