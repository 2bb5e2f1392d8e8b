// SPDX-License-Identifier: MIT
// Package: lvnet/builder
//
// config.go — resolved builder settings.
//
// Defaults: no RNG (every stochastic weight is DefaultEdgeWeight), N(0,1)
// weights once seeded, and bias 0.

package builder

import "math/rand"

// builderConfig is resolved once per BuildGraph/Apply call and handed to each
// constructor by value.
type builderConfig struct {
	rng      *rand.Rand
	weightFn WeightFn
	bias     float64
}

// newBuilderConfig applies opts over the defaults, last one winning.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{weightFn: StandardNormalWeightFn}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// weight draws the next initial weight for a connection between groups of
// the given fan.
func (c builderConfig) weight(fan Fan) float64 {
	return c.weightFn(c.rng, fan)
}
