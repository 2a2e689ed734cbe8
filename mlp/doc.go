// SPDX-License-Identifier: MIT
//
// Package mlp implements the small fixed-topology feed-forward network used
// to score beam-search candidate nodes.
//
// An MLP is defined entirely by its layer widths (UnitsPerLayer): input
// width equals the feature count, the final layer always has width 1. Its
// weights and biases are packed into and unpacked from a single flat
// vector, laid out layer-by-layer, each layer's weight matrix in row-major
// order immediately followed by that layer's bias vector — exactly the
// wire format the weights file uses on disk.
package mlp
