// Package toposort provides deterministic dependency ordering.
//
// Sort computes a linear ordering of nodes such that for every recorded
// dependency "A depends on B", B appears strictly before A. If the graph
// contains a cycle, a *CycleError is returned; if an edge references an
// undeclared node, a *UnknownNodeError is returned.
//
// The traversal is depth-first over an explicit frame stack holding
// (node, next-dependency-index) pairs, so recursion depth never bounds the
// size of sortable graphs.
//
// Complexity:
//
//   - Time:   O(V + E) (each node and edge visited once)
//   - Memory: O(V)     (frame stack, path stack and state map)
package toposort

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/deporder/core"
)

// sorter encapsulates working state for one Sort invocation.
// All state is invocation-local: Sort only reads the graph, so concurrent
// calls on the same Graph need no coordination.
type sorter struct {
	depsOf map[string][]string // node → lexicographically sorted dependencies
	state  map[string]int      // visitation state: 0=White,1=Gray,2=Black
	path   []string            // active traversal path for cycle reconstruction
	order  []string            // accumulated dependency-first sequence
}

// frame is one entry of the explicit traversal stack: a node plus the index
// of its next unexplored dependency.
type frame struct {
	id   string
	deps []string // dependencies of id, snapshot order
	next int      // index of the next dependency to explore
}

// Sort computes a dependency-first ordering of all declared nodes in g.
// If g is nil, returns ErrGraphNil.
// If an edge references an undeclared node, returns a *UnknownNodeError.
// If a cycle is detected, returns a *CycleError carrying the loop.
// On success the result is a permutation of g.Nodes() in which every
// dependency precedes its dependents; identical input yields an identical
// sequence (roots and siblings iterate in lexicographic order).
func Sort(g *core.Graph) ([]string, error) {
	// 1. Validate graph pointer
	if g == nil {
		return nil, ErrGraphNil
	}
	// 2. Snapshot the graph once; everything after this line is local state,
	//    so sorting can never corrupt caller-owned structures.
	nodes := g.Nodes()          // sorted list of declared node IDs
	depsOf := g.DependencyMap() // every recorded edge, sorted values
	// 3. Validate edge endpoints against the declared node set.
	if err := validateEdges(nodes, depsOf); err != nil {
		return nil, err
	}
	// 4. Initialize sorter state
	s := &sorter{
		depsOf: depsOf,
		state:  make(map[string]int, len(nodes)), // all nodes start as White (0)
		path:   make([]string, 0, len(nodes)),
		order:  make([]string, 0, len(nodes)), // capacity hint for post-order
	}
	// 5. Drive DFS from every unvisited node
	for _, id := range nodes {
		if s.state[id] == White {
			if err := s.visit(id); err != nil {
				return nil, err
			}
		}
	}
	// 6. Post-order emission is already dependency-first; no reversal needed.
	return s.order, nil
}

// SortMap applies the Sort contract directly to the caller's natural
// representation: the complete node set plus a mapping from each node to
// the nodes it depends on. A node absent from the mapping simply has no
// dependencies. Construction failures (empty IDs) are wrapped core errors.
func SortMap(nodes []string, deps map[string][]string) ([]string, error) {
	g, err := core.FromMap(nodes, deps)
	if err != nil {
		return nil, fmt.Errorf("toposort: SortMap: %w", err)
	}

	return Sort(g)
}

// validateEdges checks that every endpoint of every recorded edge is a
// declared node. The scan iterates mapping keys in lexicographic order so
// the first offender is deterministic for identical input.
func validateEdges(nodes []string, depsOf map[string][]string) error {
	declared := make(map[string]struct{}, len(nodes))
	for _, id := range nodes {
		declared[id] = struct{}{}
	}

	keys := make([]string, 0, len(depsOf))
	for k := range depsOf {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, node := range keys {
		// A mapping key must itself be declared.
		if _, ok := declared[node]; !ok {
			return &UnknownNodeError{Node: node}
		}
		// So must every dependency it references.
		for _, dep := range depsOf[node] {
			if _, ok := declared[dep]; !ok {
				return &UnknownNodeError{Node: dep, RequiredBy: node}
			}
		}
	}

	return nil
}

// visit performs an iterative DFS from root, marking states and detecting
// cycles. The explicit frame stack replaces recursion: each frame remembers
// how far into its dependency list the traversal has progressed.
func (s *sorter) visit(root string) error {
	// 1. Seed the stack; the root joins the active path immediately.
	s.state[root] = Gray
	s.path = append(s.path, root)
	stack := []frame{{id: root, deps: s.depsOf[root]}}

	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		// 2. Explore the next unexplored dependency, if any remain.
		if top.next < len(top.deps) {
			dep := top.deps[top.next]
			top.next++
			switch s.state[dep] {
			case Gray:
				// 2a. Back-edge onto the active path: the graph has no
				//     valid order. Reconstruct the loop as evidence.
				return &CycleError{Cycle: s.sliceCycle(dep)}
			case White:
				// 2b. Unvisited: descend. Dependencies are emitted before
				//     the node itself (post-order ⇒ dependency-first).
				s.state[dep] = Gray
				s.path = append(s.path, dep)
				stack = append(stack, frame{id: dep, deps: s.depsOf[dep]})
			}
			// Black: already emitted earlier, nothing to do.
			continue
		}
		// 3. All dependencies emitted: emit the node itself and backtrack.
		s.state[top.id] = Black
		s.order = append(s.order, top.id)
		s.path = s.path[:len(s.path)-1]
		stack = stack[:len(stack)-1]
	}

	return nil
}

// sliceCycle extracts the closed loop created by a back-edge to start: the
// active path segment from start to the stack top, rotated to its canonical
// (lexicographically minimal) form and closed by repeating the first node.
// A self-dependency yields the two-element loop [v, v].
func (s *sorter) sliceCycle(start string) []string {
	idx := IndexOf(s.path, start)
	seg := append([]string(nil), s.path[idx:]...) // copy the loop segment
	canon := MinimalRotation(seg)                 // deterministic evidence

	return append(canon, canon[0]) // close the loop
}
