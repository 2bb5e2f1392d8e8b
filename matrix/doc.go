// Package matrix provides a small row-major Dense matrix and adapters that
// view the connections between two consecutive layers of a core.Graph as a
// weight (or gradient) matrix.
//
// What & Why:
//
//	The propagation engine works edge by edge. For inspection, export and
//	cross-checks it is convenient to see a fully connected layer pair as the
//	familiar |L_k|×|L_{k+1}| weight matrix W, where the next layer's weighted
//	input is x·W.
//
// Core API:
//
//	NewDense(r, c) (*Dense, error)
//	(*Dense).At / Set / Clone / MulVec / String
//	LayerWeights(g, k) (*Dense, error)
//	LayerGradients(g, k) (*Dense, error)
//	SetLayerWeights(g, k, m) error
//
// Errors:
//
//	ErrBadShape, ErrOutOfRange, ErrDimensionMismatch, ErrNaNInf,
//	ErrGraphNil, ErrLayerRange.
package matrix
