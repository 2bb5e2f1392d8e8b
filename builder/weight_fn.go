// SPDX-License-Identifier: MIT
// Package: lvnet/builder
//
// weight_fn.go — initial weight distributions for new connections.
//
// Every WeightFn sees the fan of the layer pair it is wiring (|from|, |to|),
// so fan-scaled schemes (Xavier, He) need no extra plumbing. A nil RNG makes
// every stochastic initializer return DefaultEdgeWeight, which keeps unseeded
// builds reproducible.

package builder

import (
	"fmt"
	"math"
	"math/rand"
)

// DefaultEdgeWeight is the weight of every stochastic initializer when no RNG
// is configured.
const DefaultEdgeWeight float64 = 1

// Fan is the size of the two node groups a connection joins.
type Fan struct {
	In  int // nodes feeding each destination
	Out int // destinations fed by each source
}

// WeightFn draws the initial weight of one connection.
type WeightFn func(rng *rand.Rand, fan Fan) float64

// StandardNormalWeightFn draws from N(0,1) regardless of fan. It is the
// default, matching the random initialisation of a freshly loaded model.
func StandardNormalWeightFn(rng *rand.Rand, _ Fan) float64 {
	if rng == nil {
		return DefaultEdgeWeight
	}

	return rng.NormFloat64()
}

// ConstantWeightFn gives every connection the same weight.
func ConstantWeightFn(value float64) WeightFn {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		panic(fmt.Sprintf("builder: ConstantWeightFn(%g): weight must be finite", value))
	}

	return func(*rand.Rand, Fan) float64 { return value }
}

// UniformWeightFn draws from U[lo, hi). Panics if hi < lo.
func UniformWeightFn(lo, hi float64) WeightFn {
	if hi < lo {
		panic(fmt.Sprintf("builder: UniformWeightFn: lo=%g > hi=%g", lo, hi))
	}

	return func(rng *rand.Rand, _ Fan) float64 {
		switch {
		case rng == nil:
			return DefaultEdgeWeight
		case lo == hi:
			return lo
		}

		return lo + rng.Float64()*(hi-lo)
	}
}

// NormalWeightFn draws from N(mean, stddev²). Panics if stddev < 0.
func NormalWeightFn(mean, stddev float64) WeightFn {
	if stddev < 0 {
		panic(fmt.Sprintf("builder: NormalWeightFn: negative stddev %g", stddev))
	}

	return func(rng *rand.Rand, _ Fan) float64 {
		if rng == nil {
			return DefaultEdgeWeight
		}

		return mean + stddev*rng.NormFloat64()
	}
}

// XavierWeightFn draws from U[-a, a) with a = √(6/(in+out)), suited to
// sigmoid and tanh layers.
func XavierWeightFn(rng *rand.Rand, fan Fan) float64 {
	if rng == nil {
		return DefaultEdgeWeight
	}
	a := math.Sqrt(6 / float64(max(fan.In+fan.Out, 1)))

	return (2*rng.Float64() - 1) * a
}

// HeWeightFn draws from N(0, 2/in), suited to ReLU layers.
func HeWeightFn(rng *rand.Rand, fan Fan) float64 {
	if rng == nil {
		return DefaultEdgeWeight
	}

	return rng.NormFloat64() * math.Sqrt(2/float64(max(fan.In, 1)))
}
