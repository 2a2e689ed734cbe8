package mlp_test

import (
	"testing"

	"github.com/katalvlaran/rlcsbeam/mlp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_RejectsTooFewLayers(t *testing.T) {
	_, err := mlp.New([]int{9}, mlp.Tanh)
	assert.ErrorIs(t, err, mlp.ErrTooFewLayers)
}

func TestNew_RejectsNonPositiveWidth(t *testing.T) {
	_, err := mlp.New([]int{9, 0, 1}, mlp.Tanh)
	assert.ErrorIs(t, err, mlp.ErrNonPositiveWidth)
}

func TestNumWeights_MatchesFormula(t *testing.T) {
	// units = [9, 4, 1]: (9+1)*4 + (4+1)*1 = 40 + 5 = 45.
	assert.Equal(t, 45, mlp.NumWeights([]int{9, 4, 1}))
}

func TestUnpackWeights_RejectsWrongLength(t *testing.T) {
	net, err := mlp.New([]int{9, 4, 1}, mlp.Tanh)
	require.NoError(t, err)
	err = net.UnpackWeights(make([]float64, 10))
	assert.ErrorIs(t, err, mlp.ErrWeightLengthMismatch)
}

// TestPackUnpack_RoundTrip: pack then unpack yields bitwise-identical
// matrices.
func TestPackUnpack_RoundTrip(t *testing.T) {
	net, err := mlp.New([]int{3, 2, 1}, mlp.Tanh)
	require.NoError(t, err)

	want := make([]float64, mlp.NumWeights([]int{3, 2, 1}))
	for i := range want {
		want[i] = float64(i) * 0.5
	}
	require.NoError(t, net.UnpackWeights(want))

	got := net.PackWeights()
	assert.Equal(t, want, got)

	net2, err := mlp.New([]int{3, 2, 1}, mlp.Tanh)
	require.NoError(t, err)
	require.NoError(t, net2.UnpackWeights(got))
	assert.Equal(t, want, net2.PackWeights())
}

func TestForward_RejectsDimensionMismatch(t *testing.T) {
	net, err := mlp.New([]int{3, 2, 1}, mlp.Identity)
	require.NoError(t, err)
	_, err = net.Forward([]float64{1, 2})
	assert.ErrorIs(t, err, mlp.ErrFeatureDimensionMismatch)
}

func TestForward_IdentityActivationIsLinear(t *testing.T) {
	net, err := mlp.New([]int{1, 1}, mlp.Identity)
	require.NoError(t, err)
	// single weight=2, bias=3: f(x) = 2x+3
	require.NoError(t, net.UnpackWeights([]float64{2, 3}))

	out, err := net.Forward([]float64{5})
	require.NoError(t, err)
	assert.InDelta(t, 13.0, out, 1e-12)
}

func TestForward_ReLUClampsNegative(t *testing.T) {
	net, err := mlp.New([]int{1, 1}, mlp.ReLU)
	require.NoError(t, err)
	require.NoError(t, net.UnpackWeights([]float64{1, 0}))

	out, err := net.Forward([]float64{-5})
	require.NoError(t, err)
	assert.Equal(t, 0.0, out)
}

func TestForward_SigmoidBounded(t *testing.T) {
	net, err := mlp.New([]int{1, 1}, mlp.Sigmoid)
	require.NoError(t, err)
	require.NoError(t, net.UnpackWeights([]float64{1000, 0}))

	out, err := net.Forward([]float64{1})
	require.NoError(t, err)
	assert.InDelta(t, 1.0, out, 1e-9)
}

func TestClone_IsIndependent(t *testing.T) {
	net, err := mlp.New([]int{2, 1}, mlp.Tanh)
	require.NoError(t, err)
	require.NoError(t, net.UnpackWeights([]float64{1, 1, 0}))

	clone := net.Clone()
	require.NoError(t, net.UnpackWeights([]float64{9, 9, 9}))

	assert.NotEqual(t, net.PackWeights(), clone.PackWeights())
}
