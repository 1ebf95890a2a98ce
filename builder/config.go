// SPDX-License-Identifier: MIT
// Package: builder
//
// config.go: internal configuration, deterministic defaults and options.
//
// Deterministic defaults:
//   • base = 1   (index i → vertex 1+i)
//   • rng  = nil (no randomness unless seeded)

package builder

import "math/rand"

const defaultBase = 1

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors.
type builderConfig struct {
	base int
	rng  *rand.Rand
}

// idFn maps a constructor-local index to a vertex identifier.
func (c builderConfig) idFn(i int) int { return c.base + i }

// BuilderOption customizes builderConfig.
type BuilderOption func(*builderConfig)

// newBuilderConfig applies options in order over the defaults.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{base: defaultBase}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	return cfg
}

// WithBase sets the identifier of index 0.
func WithBase(base int) BuilderOption {
	return func(c *builderConfig) { c.base = base }
}

// WithRand uses r for stochastic constructors. A nil r is ignored.
func WithRand(r *rand.Rand) BuilderOption {
	return func(c *builderConfig) {
		if r != nil {
			c.rng = r
		}
	}
}

// WithSeed seeds a fresh RNG for stochastic constructors.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) { c.rng = rand.New(rand.NewSource(seed)) }
}
