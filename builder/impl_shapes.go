// SPDX-License-Identifier: MIT
// Package: deporder/builder
//
// impl_shapes.go - implementations of the shape constructors.
//
// Shared contract:
//   - Nodes are declared in ascending index order via cfg.id (zero-padded).
//   - Edges are emitted in stable increasing order.
//   - Only sentinel errors are returned; constructors never panic.

package builder

import (
	"fmt"

	"github.com/katalvlaran/deporder/core"
)

// File-local constants for method tagging and parameter minima.
const (
	methodChain   = "Chain"
	methodFan     = "Fan"
	methodDiamond = "Diamond"
	methodRing    = "Ring"
	methodLayered = "Layered"

	minChainNodes = 2
	minFanLeaves  = 1
	minRingNodes  = 1
	minLayerCount = 2
	minLayerWidth = 1
)

// Chain returns a Constructor that builds a linear dependency chain of n
// nodes: node i depends on node i+1, so the highest index is the only leaf
// and the sorter must walk the full depth before emitting anything.
//
// Complexity: O(n).
func Chain(n int) Constructor {
	// Return a closure capturing n; Build supplies (g, cfg).
	return func(g *core.Graph, cfg builderConfig) error {
		// Validate parameter domain early.
		if n < minChainNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodChain, n, minChainNodes, ErrTooFewNodes)
		}

		// Declare n nodes with deterministic zero-padded IDs.
		for i := 0; i < n; i++ {
			if err := g.AddNode(cfg.id(i, n)); err != nil {
				return fmt.Errorf("%s: AddNode(%s): %w", methodChain, cfg.id(i, n), err)
			}
		}

		// Emit edges i → i+1 in stable increasing order.
		for i := 0; i < n-1; i++ {
			if err := g.AddDependency(cfg.id(i, n), cfg.id(i+1, n)); err != nil {
				return fmt.Errorf("%s: AddDependency(%d,%d): %w", methodChain, i, i+1, err)
			}
		}

		return nil
	}
}

// Fan returns a Constructor that builds one dependent (index 0) depending on
// n leaves (indices 1..n). Exercises wide sibling iteration.
//
// Complexity: O(n).
func Fan(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minFanLeaves {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodFan, n, minFanLeaves, ErrTooFewNodes)
		}

		total := n + 1
		for i := 0; i < total; i++ {
			if err := g.AddNode(cfg.id(i, total)); err != nil {
				return fmt.Errorf("%s: AddNode(%s): %w", methodFan, cfg.id(i, total), err)
			}
		}
		root := cfg.id(0, total)
		for i := 1; i < total; i++ {
			if err := g.AddDependency(root, cfg.id(i, total)); err != nil {
				return fmt.Errorf("%s: AddDependency(root,%d): %w", methodFan, i, err)
			}
		}

		return nil
	}
}

// Diamond returns a Constructor that builds the classic shared-dependency
// shape on fixed IDs: A depends on B and C; B and C both depend on D.
//
//	    A
//	   / \
//	  B   C
//	   \ /
//	    D
func Diamond() Constructor {
	return func(g *core.Graph, _ builderConfig) error {
		for _, id := range []string{"A", "B", "C", "D"} {
			if err := g.AddNode(id); err != nil {
				return fmt.Errorf("%s: AddNode(%s): %w", methodDiamond, id, err)
			}
		}
		for _, e := range [][2]string{{"A", "B"}, {"A", "C"}, {"B", "D"}, {"C", "D"}} {
			if err := g.AddDependency(e[0], e[1]); err != nil {
				return fmt.Errorf("%s: AddDependency(%s,%s): %w", methodDiamond, e[0], e[1], err)
			}
		}

		return nil
	}
}

// Ring returns a Constructor that builds an n-node dependency cycle:
// node i depends on node (i+1) mod n. Ring(1) is a self-dependency.
// Rings exist to exercise the failure path of the sorter.
//
// Complexity: O(n).
func Ring(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minRingNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodRing, n, minRingNodes, ErrTooFewNodes)
		}

		for i := 0; i < n; i++ {
			if err := g.AddNode(cfg.id(i, n)); err != nil {
				return fmt.Errorf("%s: AddNode(%s): %w", methodRing, cfg.id(i, n), err)
			}
		}
		for i := 0; i < n; i++ {
			if err := g.AddDependency(cfg.id(i, n), cfg.id((i+1)%n, n)); err != nil {
				return fmt.Errorf("%s: AddDependency(%d,%d): %w", methodRing, i, (i+1)%n, err)
			}
		}

		return nil
	}
}

// Layered returns a Constructor that builds a seeded random DAG of
// layers×width nodes. Every node in layer l ≥ 1 depends on one or more
// random nodes of layer l-1, so edges only point "downward" and the result
// is acyclic by construction. Node IDs are "L<layer>W<index>" under the
// configured prefix.
//
// Determinism: fixed seed ⇒ identical topology (cfg.rng is seeded per Build).
// Complexity: O(layers · width²) worst case.
func Layered(layers, width int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if layers < minLayerCount {
			return fmt.Errorf("%s: layers=%d < min=%d: %w", methodLayered, layers, minLayerCount, ErrTooFewNodes)
		}
		if width < minLayerWidth {
			return fmt.Errorf("%s: width=%d < min=%d: %w", methodLayered, width, minLayerWidth, ErrTooFewNodes)
		}

		// Deterministic ID helper local to this shape.
		nodeID := func(layer, idx int) string {
			return fmt.Sprintf("%sL%03dW%03d", cfg.prefix, layer, idx)
		}

		// Declare all nodes layer by layer.
		for l := 0; l < layers; l++ {
			for w := 0; w < width; w++ {
				if err := g.AddNode(nodeID(l, w)); err != nil {
					return fmt.Errorf("%s: AddNode(%s): %w", methodLayered, nodeID(l, w), err)
				}
			}
		}

		// Wire each node to 1..width distinct parents in the layer below.
		for l := 1; l < layers; l++ {
			for w := 0; w < width; w++ {
				k := 1 + cfg.rng.Intn(width) // at least one parent
				for _, p := range cfg.rng.Perm(width)[:k] {
					if err := g.AddDependency(nodeID(l, w), nodeID(l-1, p)); err != nil {
						return fmt.Errorf("%s: AddDependency(%s,%s): %w",
							methodLayered, nodeID(l, w), nodeID(l-1, p), err)
					}
				}
			}
		}

		return nil
	}
}
