// SPDX-License-Identifier: MIT
// Package: deporder/builder
//
// errors.go — sentinel errors for the builder package.
//
// Error policy (explicit and strict):
//   • Only sentinel variables (package-level) are exposed.
//   • Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   • Implementations SHOULD attach context using `%w`.
//   • Constructors MUST NOT panic at runtime.

package builder

import "errors"

// ErrTooFewNodes indicates that a numeric parameter (n, layers, width) is
// smaller than the allowed minimum for the requested constructor.
// Usage: if errors.Is(err, ErrTooFewNodes) { /* report invalid size */ }.
var ErrTooFewNodes = errors.New("builder: parameter too small")

// ErrConstructFailed indicates that Build received an unusable constructor
// (currently: a nil Constructor value).
var ErrConstructFailed = errors.New("builder: construction failed")
