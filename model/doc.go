// Package model reads and writes the plain-text model format of lvnet.
//
// Format (whitespace separated, one record per line):
//
//	<numLayers> <totalNodes>
//	<nodesInLayer> <activationName>      × numLayers
//	<numWeightEntries>
//	<sourceId> <destId> <weight>         × numWeightEntries
//	<numBiasEntries>
//	<nodeId> <bias>                      × numBiasEntries
//
// Loading assigns node IDs 0..totalNodes-1 in layer order, fully connects
// every pair of consecutive layers with random initial weights drawn through
// the builder package (standard normal, seedable with builder.WithSeed), and
// then applies the weight and bias entries. A weight entry for a pair that is
// not yet connected adds that connection, so skip connections survive a round
// trip. Layer 0 holds the inputs and the last layer the outputs.
//
// Blank lines are skipped and tokens after the expected ones on a line are
// ignored. Saving writes the layer header using the activation of each
// layer's first node, every connection ordered by (source, dest), and the bias
// of every node, with floats in their shortest round-trip form.
package model
