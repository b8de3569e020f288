// Package toposort implements cycle detection over depends-on graphs.
// DetectCycles enumerates the distinct dependency cycles discoverable via
// DFS back-edges, using three-color marking and an explicit path stack for
// loop reconstruction. Each cycle is reported as a closed loop in canonical
// minimal-rotation form (Booth's algorithm, O(L) per loop); the final list
// is deduplicated by signature and sorted for deterministic output.
//
// Complexity:
//
//   - Time:   O(V + E + C·L)   (V=#nodes, E=#edges, C=#cycles, L=avg cycle length)
//   - Memory: O(V + L_max)     (frame stack + state map + cycle storage)
package toposort

import (
	"sort"

	"github.com/katalvlaran/deporder/core"
)

// DetectCycles inspects graph g for dependency cycles.
// Returns (true, cycles, nil) if any cycles are found;
// if no cycles, returns (false, nil, nil).
// If g is nil, returns ErrGraphNil; a stray edge endpoint returns a
// *UnknownNodeError, the same validation contract as Sort.
func DetectCycles(g *core.Graph) (bool, [][]string, error) {
	// 1) Validate graph pointer
	if g == nil {
		return false, nil, ErrGraphNil
	}

	// 2) Snapshot once and validate endpoints, exactly like Sort.
	nodes := g.Nodes()
	depsOf := g.DependencyMap()
	if err := validateEdges(nodes, depsOf); err != nil {
		return false, nil, err
	}

	// 3) Prepare shared traversal state:
	//    White=0 (unvisited), Gray=1 (on the active path), Black=2 (completed)
	d := &detector{
		depsOf: depsOf,
		state:  make(map[string]int, len(nodes)),
		path:   make([]string, 0, len(nodes)),
		seen:   make(map[string]struct{}),
	}

	// 4) Launch DFS from each unvisited node, lexicographic root order.
	for _, id := range nodes {
		if d.state[id] == White {
			d.visit(id)
		}
	}

	// 5) Sort cycles lexicographically by their comma-joined signature,
	//    ensuring a deterministic output order.
	sort.Slice(d.cycles, func(i, j int) bool {
		return JoinSig(d.cycles[i]) < JoinSig(d.cycles[j])
	})

	// 6) Return whether any cycles were found
	if len(d.cycles) == 0 {
		return false, nil, nil
	}

	return true, d.cycles, nil
}

// detector holds traversal-local state for one DetectCycles invocation.
type detector struct {
	depsOf map[string][]string
	state  map[string]int
	path   []string            // active path for loop reconstruction
	seen   map[string]struct{} // canonical signatures already recorded
	cycles [][]string          // collected distinct cycles
}

// visit runs an iterative DFS from root. Unlike the sorter, a back-edge does
// not abort the walk: the loop is recorded and exploration continues, so one
// pass can surface several distinct cycles.
func (d *detector) visit(root string) {
	// Seed the explicit stack; the root joins the active path immediately.
	d.state[root] = Gray
	d.path = append(d.path, root)
	stack := []frame{{id: root, deps: d.depsOf[root]}}

	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		if top.next < len(top.deps) {
			dep := top.deps[top.next]
			top.next++
			switch d.state[dep] {
			case Gray:
				// Back-edge Gray→Gray: record the loop and keep walking.
				d.record(dep)
			case White:
				d.state[dep] = Gray
				d.path = append(d.path, dep)
				stack = append(stack, frame{id: dep, deps: d.depsOf[dep]})
			}
			continue
		}
		// Backtrack: pop from path and mark fully explored.
		d.state[top.id] = Black
		d.path = d.path[:len(d.path)-1]
		stack = stack[:len(stack)-1]
	}
}

// record extracts, canonicalizes and deduplicates the loop that the current
// back-edge to start closes. The path segment path[idx:] is the open loop;
// Booth's minimal rotation fixes its starting point, the repeated first
// element closes it, and the comma-joined signature filters duplicates.
func (d *detector) record(start string) {
	// 1) Locate start on the active path and copy the segment out.
	idx := IndexOf(d.path, start)
	seg := append([]string(nil), d.path[idx:]...)

	// 2) Canonicalize (rotation only: direction is meaningful here).
	canon := MinimalRotation(seg)
	closed := append(canon, canon[0])

	// 3) Keep the loop only if its signature is new.
	sig := JoinSig(closed)
	if _, exists := d.seen[sig]; exists {
		return
	}
	d.seen[sig] = struct{}{}
	d.cycles = append(d.cycles, closed)
}
