// SPDX-License-Identifier: MIT
package mlp

import "math"

// Forward computes the network's scalar output for feature vector x:
// iterating y = W_l*prev + b_l, prev = activation(y) for every layer,
// including the final output layer. len(x) must equal the input width
// UnitsPerLayer[0].
func (m *MLP) Forward(x []float64) (float64, error) {
	if len(x) != m.UnitsPerLayer[0] {
		return 0, ErrFeatureDimensionMismatch
	}

	prev := x
	for l := 0; l < len(m.weights); l++ {
		w := m.weights[l]
		b := m.biases[l]
		y := make([]float64, w.Rows)
		for r := 0; r < w.Rows; r++ {
			sum := b.Data[r]
			for c := 0; c < w.Cols; c++ {
				sum += w.At(r, c) * prev[c]
			}
			y[r] = m.activate(sum)
		}
		prev = y
	}

	return prev[0], nil
}

// activate applies m.Activation to a single pre-activation value.
func (m *MLP) activate(y float64) float64 {
	switch m.Activation {
	case Tanh:
		return math.Tanh(y)
	case ReLU:
		if y < 0 {
			return 0
		}
		return y
	case Sigmoid:
		return 1.0 / (1.0 + math.Exp(-y))
	default:
		return y
	}
}
