// SPDX-License-Identifier: MIT
// Package: lvnet/builder
//
// options.go — BuilderOption constructors.
//
// Option constructors panic on arguments that can never be valid (nil RNG,
// nil WeightFn, non-finite bias). Constructors never panic; they return
// errors wrapping the package sentinels.

package builder

import (
	"fmt"
	"math"
	"math/rand"
)

// BuilderOption adjusts the builderConfig seen by every constructor of a
// BuildGraph or Apply call. Later options override earlier ones.
type BuilderOption func(*builderConfig)

// WithRand draws initial weights from r. Panics on nil.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}

	return func(c *builderConfig) { c.rng = r }
}

// WithSeed draws initial weights from a fresh source seeded with seed.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) { c.rng = rand.New(rand.NewSource(seed)) }
}

// WithWeightFn selects the initial weight distribution. Panics on nil.
func WithWeightFn(fn WeightFn) BuilderOption {
	if fn == nil {
		panic("builder: WithWeightFn(nil)")
	}

	return func(c *builderConfig) { c.weightFn = fn }
}

// WithConstantWeight is WithWeightFn(ConstantWeightFn(w)).
func WithConstantWeight(w float64) BuilderOption {
	return WithWeightFn(ConstantWeightFn(w))
}

// WithUniformWeight is WithWeightFn(UniformWeightFn(lo, hi)).
func WithUniformWeight(lo, hi float64) BuilderOption {
	return WithWeightFn(UniformWeightFn(lo, hi))
}

// WithNormalWeight is WithWeightFn(NormalWeightFn(mean, stddev)).
func WithNormalWeight(mean, stddev float64) BuilderOption {
	return WithWeightFn(NormalWeightFn(mean, stddev))
}

// WithXavierWeight is WithWeightFn(XavierWeightFn).
func WithXavierWeight() BuilderOption { return WithWeightFn(XavierWeightFn) }

// WithHeWeight is WithWeightFn(HeWeightFn).
func WithHeWeight() BuilderOption { return WithWeightFn(HeWeightFn) }

// WithBias sets the initial bias of every non-input node created by Layered.
// Input nodes keep bias 0. Panics if b is NaN or ±Inf.
func WithBias(b float64) BuilderOption {
	if math.IsNaN(b) || math.IsInf(b, 0) {
		panic(fmt.Sprintf("builder: WithBias(%g): bias must be finite", b))
	}

	return func(c *builderConfig) { c.bias = b }
}
