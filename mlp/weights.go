// SPDX-License-Identifier: MIT
package mlp

import "errors"

// New builds an MLP with the given layer widths and activation kind. It
// allocates zeroed weight matrices and bias vectors of the right shapes;
// call UnpackWeights to load trained or randomly-initialised values.
func New(unitsPerLayer []int, activation Activation) (*MLP, error) {
	if len(unitsPerLayer) < 2 {
		return nil, ErrTooFewLayers
	}
	for _, u := range unitsPerLayer {
		if u <= 0 {
			return nil, ErrNonPositiveWidth
		}
	}
	if unitsPerLayer[len(unitsPerLayer)-1] != 1 {
		return nil, errors.New("mlp: output layer width must be 1")
	}

	units := append([]int(nil), unitsPerLayer...)
	m := &MLP{
		UnitsPerLayer: units,
		Activation:    activation,
	}
	m.weights = make([]Matrix, len(units)-1)
	m.biases = make([]Vector, len(units)-1)
	for l := 0; l < len(units)-1; l++ {
		rows, cols := units[l+1], units[l]
		m.weights[l] = Matrix{Rows: rows, Cols: cols, Data: make([]float64, rows*cols)}
		m.biases[l] = Vector{Data: make([]float64, rows)}
	}
	return m, nil
}

// NumWeights returns W = sum over layers of (units[l]+1)*units[l+1], the
// total flat-vector length PackWeights/UnpackWeights use for the given
// architecture.
func NumWeights(unitsPerLayer []int) int {
	total := 0
	for l := 0; l < len(unitsPerLayer)-1; l++ {
		total += (unitsPerLayer[l] + 1) * unitsPerLayer[l+1]
	}
	return total
}

// UnpackWeights loads a flat weight vector into m's matrices and biases.
// The layout is layer-by-layer, each layer's Rows*Cols weights in row-major
// order immediately followed by that layer's Rows biases. A length that
// does not exactly equal NumWeights(m.UnitsPerLayer) is a fatal
// configuration error.
func (m *MLP) UnpackWeights(flat []float64) error {
	if len(flat) != NumWeights(m.UnitsPerLayer) {
		return ErrWeightLengthMismatch
	}
	idx := 0
	for l := 0; l < len(m.UnitsPerLayer)-1; l++ {
		w := m.weights[l]
		for r := 0; r < w.Rows; r++ {
			for c := 0; c < w.Cols; c++ {
				w.Set(r, c, flat[idx])
				idx++
			}
		}
		b := m.biases[l]
		for r := 0; r < len(b.Data); r++ {
			b.Data[r] = flat[idx]
			idx++
		}
	}
	return nil
}

// PackWeights flattens m's matrices and biases into the same layout
// UnpackWeights consumes. Packing then unpacking yields bitwise-identical
// matrices.
func (m *MLP) PackWeights() []float64 {
	flat := make([]float64, 0, NumWeights(m.UnitsPerLayer))
	for l := 0; l < len(m.UnitsPerLayer)-1; l++ {
		flat = append(flat, m.weights[l].Data...)
		flat = append(flat, m.biases[l].Data...)
	}
	return flat
}

// Clone returns a deep copy of m, suitable for handing to a parallel worker
// that must not share mutable weight state with the owner.
func (m *MLP) Clone() *MLP {
	c := &MLP{
		UnitsPerLayer: append([]int(nil), m.UnitsPerLayer...),
		Activation:    m.Activation,
		weights:       make([]Matrix, len(m.weights)),
		biases:        make([]Vector, len(m.biases)),
	}
	for l := range m.weights {
		c.weights[l] = Matrix{Rows: m.weights[l].Rows, Cols: m.weights[l].Cols, Data: append([]float64(nil), m.weights[l].Data...)}
		c.biases[l] = Vector{Data: append([]float64(nil), m.biases[l].Data...)}
	}
	return c
}
