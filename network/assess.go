// SPDX-License-Identifier: MIT
// Package: lvnet/network
//
// assess.go — accuracy and the mini-batch training loop.

package network

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvnet/dataset"
)

const (
	methodAssess = "Assess"
	methodFit    = "Fit"
	methodLoss   = "Loss"
)

// Assess returns the fraction of examples whose rounded first output equals
// the label. It runs in evaluation mode and restores the previous mode before
// returning, so no gradients are accumulated. Like any evaluation-mode
// Predict, it flushes: a pending batch size is reset.
//
// Errors: ErrEmptyDataset for zero examples (checked before any work), or the
// first Predict error.
func (n *Network) Assess(examples []dataset.Example) (float64, error) {
	if len(examples) == 0 {
		return 0, fmt.Errorf("%s: %w", methodAssess, ErrEmptyDataset)
	}
	prev := n.evaluating
	n.Eval()
	defer func() { n.evaluating = prev }()

	correct := 0
	for i, ex := range examples {
		out, err := n.Predict(ex)
		if err != nil {
			return 0, fmt.Errorf("%s: example %d: %w", methodAssess, i, err)
		}
		if math.Round(out[0]) == ex.Label {
			correct++
		}
	}

	return float64(correct) / float64(len(examples)), nil
}

// Loss returns the mean log-loss -(y·ln p + (1-y)·ln(1-p)) of the first output
// over examples, with p clamped like the reverse pass. Mode handling and
// errors match Assess.
func (n *Network) Loss(examples []dataset.Example) (float64, error) {
	if len(examples) == 0 {
		return 0, fmt.Errorf("%s: %w", methodLoss, ErrEmptyDataset)
	}
	prev := n.evaluating
	n.Eval()
	defer func() { n.evaluating = prev }()

	var sum float64
	for i, ex := range examples {
		out, err := n.Predict(ex)
		if err != nil {
			return 0, fmt.Errorf("%s: example %d: %w", methodLoss, i, err)
		}
		p := n.clampOutput(out[0])
		sum -= ex.Label*math.Log(p) + (1-ex.Label)*math.Log(1-p)
	}

	return sum / float64(len(examples)), nil
}

// Fit trains for the given number of epochs in training mode, calling Update
// after every batchSize examples and once more for a trailing partial batch.
// Any batch pending before the call is discarded. The network is left in
// training mode. Returns the number of updates applied.
//
// Errors: ErrBadBatchSize when batchSize < 1, or the first Predict error (the
// partial batch is discarded, applied updates are kept).
func (n *Network) Fit(examples []dataset.Example, batchSize, epochs int) (int, error) {
	if batchSize < 1 {
		return 0, fmt.Errorf("%s: batch size %d: %w", methodFit, batchSize, ErrBadBatchSize)
	}
	n.Train()
	n.reset()

	updates := 0
	for e := 0; e < epochs; e++ {
		for i, ex := range examples {
			if _, err := n.Predict(ex); err != nil {
				n.reset()
				return updates, fmt.Errorf("%s: epoch %d, example %d: %w", methodFit, e, i, err)
			}
			if n.batchSize == batchSize && n.Update() {
				updates++
			}
		}
		if n.Update() {
			updates++
		}
	}

	return updates, nil
}

// reset discards the pending batch: transient state and gradient accumulators.
func (n *Network) reset() {
	n.Flush()
	n.graph.ResetDeltas()
}
