// Package core provides a thread-safe in-memory dependency graph
// (DepGraph) with a minimal, composable API surface.
//
// The Graph holds a catalog of named nodes plus "depends-on" edges between
// them. An edge (A → B) means "A depends on B": any valid ordering of the
// nodes must place B before A. The graph itself only stores and serves this
// relation; ordering and cycle analysis live in package toposort.
//
// Why use core.Graph?
//
//   - Single type, composable flags — construction behavior is tuned via
//     functional options, not separate graph types.
//   - Deterministic iteration — Nodes(), DependenciesOf(), DependentsOf()
//     and DependencyMap() all return lexicographically sorted results, so
//     every downstream computation is reproducible.
//   - Strict by default — recording a dependency never silently declares a
//     node; undeclared endpoints surface as UnknownNode errors at sort time.
//     Opt into auto-declaration with WithImplicitNodes().
//   - Clone support — CloneEmpty (nodes+flags), Clone (deep copy of edges).
//   - Separate sync.RWMutex for the node catalog (muNode) and the adjacency
//     (muDep) to minimize lock contention under concurrency.
//
// Configuration Options (GraphOption):
//
//	– WithImplicitNodes()
//	    AddDependency declares both endpoints on first sight, mirroring the
//	    convenience of mappings whose keys/values imply membership.
//	    Without it, declaration happens only through AddNode/FromMap's node
//	    list, and the sorter reports stray references.
//
// Core Methods:
//
//	// Node lifecycle
//	AddNode(id string) error            // O(1), idempotent
//	HasNode(id string) bool             // O(1)
//	RemoveNode(id string) error         // O(V+E)
//
//	// Dependency lifecycle
//	AddDependency(node, dep string) error // O(1), idempotent
//	HasDependency(node, dep string) bool  // O(1)
//
//	// Query
//	Nodes() []string                        // O(V·log V), sorted
//	DependenciesOf(id) ([]string, error)    // O(d·log d), sorted
//	DependentsOf(id) ([]string, error)      // O(V+E), sorted
//	DependencyMap() map[string][]string     // O(V+E), sorted values
//	NodeCount() int                         // O(1)
//	DependencyCount() int                   // O(1)
//
//	// Maintenance
//	Clear()                              // O(1): reset catalogs; preserve flags
//
//	// Cloning
//	CloneEmpty() *Graph                  // O(V): copy nodes+flags only
//	Clone() *Graph                       // O(V+E): deep-copy nodes+edges
//
// Errors:
//
//	ErrEmptyNodeID  – zero-length node ID
//	ErrNodeNotFound – query referenced an undeclared node
//
// Concurrency: all methods are safe for concurrent use. Lock order is
// muNode → muDep; read paths take read locks only, so sorting a shared
// graph from several goroutines needs no external coordination.
package core
