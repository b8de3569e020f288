// Package toposort implements deterministic topological ordering and cycle
// analysis over a core.Graph of depends-on edges.
//
// What:
//
//   - Sort: computes a linear ordering of all declared nodes in which every
//     dependency strictly precedes its dependents. The traversal is an
//     iterative depth-first search over an explicit frame stack, so graphs
//     with arbitrarily long dependency chains never exhaust the call stack.
//   - SortMap: the same contract fed directly from the caller's natural
//     representation (node list + dependency mapping), no Graph required.
//   - DetectCycles: enumerates the distinct dependency cycles discoverable
//     via DFS back-edges, each reported as a closed loop in canonical
//     minimal-rotation form, deduplicated and sorted for stable output.
//
// Why:
//
//   - Determine safe execution orders for build steps, migrations, service
//     start-up, package installation — anything with "X before Y" rules.
//   - Detect cycles early, with evidence: a failed Sort names an actual
//     closed loop, not just "a cycle exists".
//   - Catch malformed input: a dependency on an undeclared node is reported
//     as UnknownNodeError, never silently included or dropped.
//
// Key Types & Constants:
//
//   - NodeState: White, Gray, Black (visitation markers)
//   - CycleError: closed dependency loop, wraps ErrCycleDetected
//   - UnknownNodeError: stray reference, wraps ErrUnknownNode
//
// Determinism:
//
//   - Roots and sibling dependencies are visited in lexicographic order
//     (core's sorted enumeration surface), so for identical input the
//     output sequence — and the reported cycle — is always identical.
//
// Complexity:
//
//   - Sort:         Time O(V+E), Memory O(V)     (frame stack + state map)
//   - DetectCycles: Time O(V+E + C·L), Memory O(V+L_max)
//     (C=#cycles, L=avg cycle length)
//
// Errors:
//
//   - ErrGraphNil         graph pointer is nil
//   - ErrCycleDetected    the dependency graph has a directed cycle
//   - ErrUnknownNode      an edge references an undeclared node
//
// Functions:
//
//   - Sort(g *core.Graph) ([]string, error)
//     return dependency-first order or a structured failure
//   - SortMap(nodes []string, deps map[string][]string) ([]string, error)
//     one-call variant over the caller's mapping
//   - DetectCycles(g *core.Graph) (bool, [][]string, error)
//     report existence and list of distinct cycles
//
// The sorter performs no I/O and holds no shared state: concurrent calls on
// independent (or even shared, read-only) graphs need no coordination.
// There is no cancellation semantic — a call is strictly bounded by O(V+E)
// work; callers needing a cap should size-limit the input instead.
package toposort
