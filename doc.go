// Package deporder is an in-memory toolkit for dependency ordering —
// declare what depends on what, then get back a safe order to act in,
// or hard evidence of the cycle that makes one impossible.
//
// 🚀 What is deporder?
//
//	A small, thread-safe, pure-Go library built from three pieces:
//		• core/     — the DepGraph: declare nodes & depends-on edges, query,
//		              clone and snapshot them safely under locks
//		• toposort/ — deterministic topological sort (iterative DFS, explicit
//		              frame stack) with structured cycle & unknown-node errors
//		• builder/  — deterministic fixture generators (chains, fans,
//		              diamonds, rings, layered random DAGs)
//
// ✨ Why choose deporder?
//
//   - Deterministic – the same input always yields the same order
//   - Rock-solid failure modes – a bad graph never yields a partial order,
//     only CycleError or UnknownNodeError you can branch on with errors.Is
//   - No recursion – an explicit frame stack keeps 100k-node chains safe
//   - Pure Go – no cgo, no I/O, no hidden deps
//
// Quick ASCII example:
//
//	    A          A depends on B and C,
//	   / \         B and C both depend on D:
//	  B   C        the only questions are "what first?"
//	   \ /         (D) and "what last?" (A).
//	    D
//
// Dive into each package's doc.go for contracts, complexity and examples.
//
//	go get github.com/katalvlaran/deporder
package deporder
