// SPDX-License-Identifier: MIT
// Package: lvnet/network
//
// options.go — functional options for New.
//
// Contract:
//   • Options panic on meaningless values (negative or non-finite learning
//     rate, clamp outside [0, 0.5), unknown traversal). Engine methods never panic.
//   • Options apply in order; the last one wins.

package network

import "math"

// Option customizes a Network at construction.
type Option func(n *Network)

// WithLearningRate sets the Update step size. Panics if lr < 0 or lr is not finite.
func WithLearningRate(lr float64) Option {
	if !validLearningRate(lr) {
		panic("network: WithLearningRate(lr<0 or non-finite)")
	}
	return func(n *Network) { n.learningRate = lr }
}

// WithTraversal selects the scheduling of forward and reverse passes.
// Panics on an unknown order.
func WithTraversal(t TraversalOrder) Option {
	if t != Topological && t != Frontier {
		panic("network: WithTraversal(unknown order)")
	}
	return func(n *Network) { n.traversal = t }
}

// WithOutputClamp sets eps for clamping p into [eps, 1-eps] in the loss
// derivative. Zero disables clamping. Panics if eps < 0 or eps >= 0.5.
func WithOutputClamp(eps float64) Option {
	if eps < 0 || eps >= 0.5 || math.IsNaN(eps) {
		panic("network: WithOutputClamp(eps outside [0, 0.5))")
	}
	return func(n *Network) { n.clamp = eps }
}

// WithEvaluating starts the network in evaluation mode.
func WithEvaluating() Option {
	return func(n *Network) { n.evaluating = true }
}

// validLearningRate reports whether lr is finite and non-negative.
func validLearningRate(lr float64) bool {
	return lr >= 0 && !math.IsInf(lr, 0)
}
