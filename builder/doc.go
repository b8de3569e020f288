// SPDX-License-Identifier: MIT
//
// Package builder provides deterministic constructors for dependency-graph
// fixtures: chains, fans, diamonds, rings and layered random DAGs.
//
// What:
//
//   - One orchestrator, Build(gopts, bopts, cons...): creates a core.Graph,
//     resolves the builder configuration, and applies constructors in order.
//   - Shape constructors (Chain, Fan, Diamond, Ring, Layered) return
//     Constructor closures; compose several in one Build call to assemble
//     complex fixtures deterministically.
//
// Why:
//
//   - Tests and benchmarks need reproducible topologies: a 100k-node chain
//     to prove the sorter's explicit stack, a ring to exercise the failure
//     path, a seeded layered DAG for invariant checks at scale.
//
// Determinism:
//
//   - Same inputs/options/seed and constructor order ⇒ identical graphs.
//   - Node IDs are zero-padded so lexicographic order equals numeric order.
//
// Safety:
//
//   - Constructors never panic; they validate parameters early and return
//     sentinel errors (ErrTooFewNodes, ErrConstructFailed).
//   - Every generated node is declared explicitly, so fixtures are valid in
//     strict graphs as well as implicit ones.
package builder
