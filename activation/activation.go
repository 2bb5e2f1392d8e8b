// SPDX-License-Identifier: MIT
// Package: lvnet/activation
//
// activation.go — closed set of node activation functions.
//
// Contract:
//   • Kind is a closed enumeration; every dispatch is an exhaustive switch.
//   • Activate(k, x) evaluates f(x) on the pre-activation value.
//   • Derive(k, post) evaluates f'(x) expressed through post = f(x), which is
//     the only value the reverse pass keeps per node.
//   • Unknown kinds never panic: Activate falls back to identity, Derive to 1.
//
// AI-Hints:
//   • Parse/String round-trip the names used by the model file format.
//   • Adding a kind means touching Parse, String, Activate and Derive together.

package activation

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

// ErrUnknownActivation indicates a name that does not map to any Kind.
var ErrUnknownActivation = errors.New("activation: unknown activation")

// Kind selects the activation function family of a node.
type Kind uint8

const (
	// Identity passes the pre-activation value through unchanged.
	Identity Kind = iota
	// Sigmoid is the logistic function 1/(1+e^-x), bounded in (0,1).
	Sigmoid
	// Tanh is the hyperbolic tangent, bounded in (-1,1).
	Tanh
	// ReLU is max(0, x).
	ReLU
)

// Canonical names as written in model files.
const (
	nameIdentity = "identity"
	nameLinear   = "linear"
	nameSigmoid  = "sigmoid"
	nameTanh     = "tanh"
	nameReLU     = "relu"
)

// Kinds returns every known Kind in declaration order.
func Kinds() []Kind {
	return []Kind{Identity, Sigmoid, Tanh, ReLU}
}

// Parse maps a model-file name to its Kind. Matching is case-insensitive and
// "linear" is accepted as an alias of identity.
func Parse(name string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case nameIdentity, nameLinear:
		return Identity, nil
	case nameSigmoid:
		return Sigmoid, nil
	case nameTanh:
		return Tanh, nil
	case nameReLU:
		return ReLU, nil
	default:
		return Identity, fmt.Errorf("%w: %q", ErrUnknownActivation, name)
	}
}

// String returns the canonical model-file name of k.
func (k Kind) String() string {
	switch k {
	case Identity:
		return nameIdentity
	case Sigmoid:
		return nameSigmoid
	case Tanh:
		return nameTanh
	case ReLU:
		return nameReLU
	default:
		return fmt.Sprintf("activation(%d)", uint8(k))
	}
}

// Valid reports whether k is one of the declared kinds.
func (k Kind) Valid() bool {
	return k <= ReLU
}

// Activate evaluates the activation function of kind k at x.
// Complexity: O(1).
func Activate(k Kind, x float64) float64 {
	switch k {
	case Sigmoid:
		return sigmoid(x)
	case Tanh:
		return math.Tanh(x)
	case ReLU:
		if x > 0 {
			return x
		}
		return 0
	default: // Identity
		return x
	}
}

// Derive evaluates df/dx for kind k given post = f(x).
// Complexity: O(1).
func Derive(k Kind, post float64) float64 {
	switch k {
	case Sigmoid:
		return post * (1 - post)
	case Tanh:
		return 1 - post*post
	case ReLU:
		if post > 0 {
			return 1
		}
		return 0
	default: // Identity
		return 1
	}
}

// sigmoid is split by sign so that exp never overflows for large |x|.
func sigmoid(x float64) float64 {
	if x >= 0 {
		return 1 / (1 + math.Exp(-x))
	}
	e := math.Exp(x)

	return e / (1 + e)
}
