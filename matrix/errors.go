// SPDX-License-Identifier: MIT

// Package matrix - sentinel errors.
//
// Policy:
//   - Return sentinels directly or wrap with fmt.Errorf("Ctx: %w", ErrX);
//     callers branch with errors.Is.
//   - Never panic on user input.

package matrix

import "errors"

var (
	// ErrBadShape is returned when requested shape is invalid (r<=0 or c<=0).
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrOutOfRange indicates that an index (row or column) is outside valid bounds.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between operands.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNaNInf signals a NaN or ±Inf value where finite values are required.
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

	// ErrGraphNil indicates that a nil *core.Graph was passed into an adapter.
	ErrGraphNil = errors.New("matrix: graph is nil")

	// ErrLayerRange indicates a layer index with no following layer.
	ErrLayerRange = errors.New("matrix: layer index out of range")
)
