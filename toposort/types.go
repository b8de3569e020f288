// Package toposort defines visitation states, sentinel errors, and the
// structured error values returned by Sort and DetectCycles.
package toposort

import (
	"errors"
	"fmt"
	"strings"
)

// DFS visitation states, stored per node during a traversal.
const (
	White = iota // White: the node has not been visited yet.
	Gray         // Gray: the node is on the active traversal path (visiting).
	Black        // Black: the node and all its dependencies have been emitted.
)

var (
	// ErrGraphNil is returned when a nil *core.Graph is passed to Sort
	// or DetectCycles.
	ErrGraphNil = errors.New("toposort: graph is nil")

	// ErrCycleDetected indicates that the dependency graph contains a
	// directed cycle and no valid total order exists. Returned wrapped
	// inside a *CycleError carrying the offending loop.
	ErrCycleDetected = errors.New("toposort: cycle detected")

	// ErrUnknownNode indicates that a recorded dependency references a node
	// absent from the declared node set. Returned wrapped inside a
	// *UnknownNodeError naming the stray reference.
	ErrUnknownNode = errors.New("toposort: unknown node")
)

// CycleError reports a directed dependency cycle as evidence: an actual
// closed loop reachable from the traversal, not necessarily the only cycle
// in the graph, and not necessarily the shortest.
//
// Cycle is a closed sequence [n0, n1, ..., n0]: each element depends on the
// next, and the last element repeats the first. The loop is canonicalized
// (lexicographically minimal rotation) so identical input always yields
// identical evidence.
type CycleError struct {
	Cycle []string
}

// Error renders the loop as "toposort: cycle detected: a -> b -> a".
func (e *CycleError) Error() string {
	return fmt.Sprintf("%v: %s", ErrCycleDetected, strings.Join(e.Cycle, " -> "))
}

// Unwrap lets callers branch with errors.Is(err, ErrCycleDetected).
func (e *CycleError) Unwrap() error { return ErrCycleDetected }

// UnknownNodeError reports a dependency edge whose endpoint is not in the
// declared node set. Malformed input is a caller programming error; it is
// surfaced immediately and never silently repaired.
//
// Node is the undeclared ID. RequiredBy names the dependent whose mapping
// referenced it; it is empty when the stray ID is itself a mapping key.
type UnknownNodeError struct {
	Node       string
	RequiredBy string
}

// Error renders the stray reference with its origin when known.
func (e *UnknownNodeError) Error() string {
	if e.RequiredBy == "" {
		return fmt.Sprintf("%v: %q", ErrUnknownNode, e.Node)
	}

	return fmt.Sprintf("%v: %q (required by %q)", ErrUnknownNode, e.Node, e.RequiredBy)
}

// Unwrap lets callers branch with errors.Is(err, ErrUnknownNode).
func (e *UnknownNodeError) Unwrap() error { return ErrUnknownNode }
