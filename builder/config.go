// SPDX-License-Identifier: MIT
// Package: deporder/builder
//
// config.go — functional options resolved into an immutable builderConfig.
//
// Determinism contract:
//   - The RNG is seeded exactly once per Build call from cfg.seed, so the
//     same seed and constructor order always reproduce the same topology.

package builder

import (
	"fmt"
	"math/rand"
	"strconv"
)

// Default configuration values.
const (
	defaultPrefix = "N"
	defaultSeed   = int64(1)
)

// Option configures the builder before constructors run.
type Option func(*builderConfig)

// builderConfig is the resolved, immutable configuration shared by all
// constructors of one Build call.
type builderConfig struct {
	prefix string     // node ID prefix
	seed   int64      // RNG seed for stochastic constructors
	rng    *rand.Rand // seeded once per Build call
}

// newBuilderConfig resolves opts into a config and seeds the RNG.
func newBuilderConfig(opts ...Option) builderConfig {
	cfg := builderConfig{prefix: defaultPrefix, seed: defaultSeed}
	for _, opt := range opts {
		opt(&cfg)
	}
	cfg.rng = rand.New(rand.NewSource(cfg.seed))

	return cfg
}

// WithSeed freezes the stochastic constructors (Layered) to a fixed seed.
func WithSeed(seed int64) Option {
	return func(c *builderConfig) { c.seed = seed }
}

// WithIDPrefix overrides the default "N" node ID prefix.
// Passing an empty prefix has no effect.
func WithIDPrefix(prefix string) Option {
	return func(c *builderConfig) {
		if prefix != "" {
			c.prefix = prefix
		}
	}
}

// id renders the i-th node ID of a shape with n nodes, zero-padded to the
// width of n-1 so lexicographic order equals numeric order.
func (c builderConfig) id(i, n int) string {
	width := len(strconv.Itoa(n - 1))

	return fmt.Sprintf("%s%0*d", c.prefix, width, i)
}
