// SPDX-License-Identifier: MIT
// Package core_test contains test helpers for deporder/core.
//
// Purpose:
//   - Provide small, deterministic fixtures and assertion utilities for core.Graph.
//   - Keep tests stdlib-only (no third-party assertion frameworks).
//   - Enforce concurrency-safe testing patterns (no *testing.T usage inside goroutines).

package core_test

import (
	"errors"
	"sort"
	"testing"

	"github.com/katalvlaran/deporder/core"
)

// Common node IDs used across core tests.
const (
	NodeEmpty = ""

	NodeA = "A"
	NodeB = "B"
	NodeC = "C"
	NodeD = "D"

	NodeX = "X"
	NodeY = "Y"
	NodeZ = "Z"
)

// Common concurrency sizes used across core tests (avoid magic numbers in test bodies).
const (
	NConcurrentAdds   = 200
	NConcurrentRounds = 100
	NReaders          = 50
	NCloners          = 20
)

// NewDiamondGraph returns the canonical shared-dependency fixture:
// A depends on B and C; B and C both depend on D.
//
// Notes:
//   - This is a TEST-FIXTURE constructor; it intentionally does not belong to production API.
//   - All four nodes are declared explicitly so the fixture is valid in strict mode.
func NewDiamondGraph(t *testing.T) *core.Graph {
	t.Helper()

	g := core.NewGraph()
	for _, id := range []string{NodeA, NodeB, NodeC, NodeD} {
		MustNoError(t, g.AddNode(id), "AddNode("+id+")")
	}
	MustNoError(t, g.AddDependency(NodeA, NodeB), "AddDependency(A,B)")
	MustNoError(t, g.AddDependency(NodeA, NodeC), "AddDependency(A,C)")
	MustNoError(t, g.AddDependency(NodeB, NodeD), "AddDependency(B,D)")
	MustNoError(t, g.AddDependency(NodeC, NodeD), "AddDependency(C,D)")

	return g
}

// MustNoError FAILS the test if err != nil.
func MustNoError(t *testing.T, err error, op string) {
	t.Helper()

	if err == nil {
		return
	}

	t.Fatalf("%s: unexpected error: %v", op, err)
}

// MustErrorIs FAILS the test unless errors.Is(err, want).
func MustErrorIs(t *testing.T, err, want error, op string) {
	t.Helper()

	if errors.Is(err, want) {
		return
	}

	t.Fatalf("%s: got error %v, want %v", op, err, want)
}

// MustEqualBool FAILS the test if got != want.
func MustEqualBool(t *testing.T, got, want bool, op string) {
	t.Helper()

	if got != want {
		t.Fatalf("%s: got %v, want %v", op, got, want)
	}
}

// MustEqualInt FAILS the test if got != want.
func MustEqualInt(t *testing.T, got, want int, op string) {
	t.Helper()

	if got != want {
		t.Fatalf("%s: got %d, want %d", op, got, want)
	}
}

// MustEqualStrings FAILS the test unless got and want are element-wise equal.
func MustEqualStrings(t *testing.T, got, want []string, op string) {
	t.Helper()

	if len(got) != len(want) {
		t.Fatalf("%s: got %v, want %v", op, got, want)
	}
	for i := range got {
		if got[i] != want[i] {
			t.Fatalf("%s: got %v, want %v", op, got, want)
		}
	}
}

// MustBeSorted FAILS the test unless s is sorted lexicographically ascending.
func MustBeSorted(t *testing.T, s []string, op string) {
	t.Helper()

	if !sort.StringsAreSorted(s) {
		t.Fatalf("%s: slice not sorted: %v", op, s)
	}
}
