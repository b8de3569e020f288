// Package core defines the central dependency Graph type and provides
// thread-safe primitives for building, querying, and cloning it.
//
// All core APIs use separate sync.RWMutex locks internally (muNode for the
// node catalog, muDep for the adjacency), so you can safely mutate graphs
// across goroutines with minimal contention.
//
// This file declares Graph, GraphOption, sentinel errors, and the NewGraph
// constructor.
//
// Errors:
//
//	ErrEmptyNodeID  - node ID is the empty string.
//	ErrNodeNotFound - requested node does not exist.
package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyNodeID indicates that the provided node ID is empty.
	ErrEmptyNodeID = errors.New("core: node ID is empty")

	// ErrNodeNotFound indicates an operation referenced a non-existent node.
	ErrNodeNotFound = errors.New("core: node not found")
)

// GraphOption configures behavior of a Graph before creation.
type GraphOption func(g *Graph)

// WithImplicitNodes makes AddDependency declare both endpoints on first
// sight instead of leaving stray references for the sorter to reject.
func WithImplicitNodes() GraphOption {
	return func(g *Graph) { g.implicit = true }
}

// Graph is the core in-memory dependency graph.
//
// It stores a node catalog and a depends-on adjacency. An entry
// deps[node][dep] records that node depends on dep, i.e. dep must precede
// node in any valid ordering.
// muNode protects the node catalog; muDep protects deps and depCount.
type Graph struct {
	muNode sync.RWMutex // guards nodes
	muDep  sync.RWMutex // guards deps and depCount

	// Configuration flags
	implicit bool // AddDependency auto-declares endpoints

	// Storage
	nodes map[string]struct{} // declared node IDs

	// deps[(dependent)node ID][(dependency)node ID] = struct{}{}
	deps     map[string]map[string]struct{}
	depCount int // number of distinct recorded edges
}

// NewGraph creates an empty Graph with the given options.
// By default, Graph is strict: dependencies never declare nodes implicitly.
// Complexity: O(1)
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		nodes: make(map[string]struct{}),
		deps:  make(map[string]map[string]struct{}),
	}
	// Apply options
	for _, opt := range opts {
		opt(g)
	}

	return g
}
