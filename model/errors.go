// SPDX-License-Identifier: MIT
// Package: lvnet/model
//
// errors.go — sentinel errors of the model format.
//
// Policy:
//   • Every structural problem of a model source wraps exactly one sentinel
//     below; the wrapped chain may also carry the underlying activation, core
//     or builder sentinel for finer branching.
//   • I/O failures are returned wrapped, unchanged in kind (e.g. fs.ErrNotExist).

package model

import "errors"

var (
	// ErrTooFewLayers indicates a model with fewer than two layers.
	ErrTooFewLayers = errors.New("model: need at least 2 layers")

	// ErrMalformed indicates a missing or invalid field, an unknown
	// activation, layer sizes that do not add up, or an out-of-range ID.
	ErrMalformed = errors.New("model: malformed model")

	// ErrLayout indicates a graph whose layers do not cover the node IDs
	// sequentially, so it cannot be written in the model format.
	ErrLayout = errors.New("model: layers are not sequential")

	// ErrNotFinite indicates a NaN or ±Inf weight or bias, which the format
	// cannot reload.
	ErrNotFinite = errors.New("model: parameter is not finite")
)
