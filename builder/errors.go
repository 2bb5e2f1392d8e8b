// SPDX-License-Identifier: MIT
// Package: lvnet/builder
//
// errors.go — sentinel errors for the builder package.
//
// Error policy (explicit and strict):
//   • Only sentinel variables (package-level) are exposed.
//   • Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   • Implementations attach context using `%w`.
//   • Constructors MUST NOT panic at runtime; validation panics are confined to
//     option constructor functions (WithX...).

package builder

import "errors"

// ErrTooFewLayers indicates a layered topology with fewer than two layers.
// Usage: if errors.Is(err, ErrTooFewLayers) { /* reject model file */ }.
var ErrTooFewLayers = errors.New("builder: at least two layers required")

// ErrTooFewVertices indicates a layer with fewer nodes than allowed.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrBadLayer indicates a layer index outside the graph's layers, or a pair of
// layers that cannot be linked (from must precede to and not be adjacent).
var ErrBadLayer = errors.New("builder: invalid layer reference")

// ErrConstructFailed indicates that the builder could not apply a constructor
// (nil constructor, or a core mutation rejected by the graph).
var ErrConstructFailed = errors.New("builder: construction failed")
