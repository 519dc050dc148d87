package nn

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/graphline-ml/graphline/internal/tensor"
)

func sigmoid64(x float64) float64 {
	return 1 / (1 + math.Exp(-x))
}

// TestLSTMSingleUnitStep hand-computes one recurrence step for a single
// unit against the gate equations.
func TestLSTMSingleUnitStep(t *testing.T) {
	// Gate blocks along the 4*out axis: [input | forget | candidate | output].
	kIn, kForget, kCand, kOut := 0.5, -0.25, 0.75, 1.0

	lstm := NewLSTM[float64](1, 1)
	kernel := tensor.NewMatrix[float64](1, 4)
	copy(kernel.Data(), []float64{kIn, kForget, kCand, kOut})
	require.NoError(t, lstm.SetKernel(kernel))

	x := 1.0
	got := lstm.Forward([]float64{x})

	// First step: hidden and cell state start at zero, so pre-activations
	// are just kernel * x.
	iGate := sigmoid64(kIn * x)
	cand := math.Tanh(kCand * x)
	oGate := sigmoid64(kOut * x)
	cell := iGate * cand
	want := oGate * math.Tanh(cell)

	assert.InDelta(t, want, got[0], 1e-12)
}

// TestLSTMStatePersistsAndResets tests that hidden/cell state carries
// across steps and that Reset restores the initial response.
func TestLSTMStatePersistsAndResets(t *testing.T) {
	lstm := NewLSTM[float64](1, 2)

	kernel := tensor.NewMatrix[float64](1, 8)
	for i := range kernel.Data() {
		kernel.Data()[i] = 0.1 * float64(i+1)
	}
	require.NoError(t, lstm.SetKernel(kernel))

	recurrent := tensor.NewMatrix[float64](2, 8)
	for i := range recurrent.Data() {
		recurrent.Data()[i] = -0.05 * float64(i+1)
	}
	require.NoError(t, lstm.SetRecurrent(recurrent))

	input := []float64{0.5}
	first := append([]float64(nil), lstm.Forward(input)...)
	second := append([]float64(nil), lstm.Forward(input)...)
	assert.NotEqual(t, first, second, "state did not influence the second step")

	lstm.Reset()
	again := append([]float64(nil), lstm.Forward(input)...)
	assert.InDeltaSlice(t, first, again, 1e-12, "Reset did not restore initial state")
}

// TestLSTMZeroWeights tests that all-zero weights keep the output at zero.
func TestLSTMZeroWeights(t *testing.T) {
	lstm := NewLSTM[float32](3, 4)
	out := lstm.Forward([]float32{1, -1, 2})
	assert.Equal(t, make([]float32, 4), out)
}

// TestLSTMSetterDimensionChecks tests weight group dimension validation.
func TestLSTMSetterDimensionChecks(t *testing.T) {
	lstm := NewLSTM[float32](3, 2)

	assert.Error(t, lstm.SetKernel(tensor.NewMatrix[float32](3, 2)),
		"kernel without the 4x gate axis accepted")
	assert.NoError(t, lstm.SetKernel(tensor.NewMatrix[float32](3, 8)))

	assert.Error(t, lstm.SetRecurrent(tensor.NewMatrix[float32](3, 8)),
		"recurrent with kernel row count accepted")
	assert.NoError(t, lstm.SetRecurrent(tensor.NewMatrix[float32](2, 8)))

	assert.Error(t, lstm.SetBias(make([]float32, 2)), "bias of out_size accepted")
	assert.NoError(t, lstm.SetBias(make([]float32, 8)))
}

// TestLSTMBiasOnly tests the gate equations driven purely by bias terms.
func TestLSTMBiasOnly(t *testing.T) {
	lstm := NewLSTM[float64](2, 1)
	require.NoError(t, lstm.SetBias([]float64{1.0, 0.0, 2.0, -1.0}))

	got := lstm.Forward([]float64{0, 0})

	cell := sigmoid64(1.0) * math.Tanh(2.0)
	want := sigmoid64(-1.0) * math.Tanh(cell)
	assert.InDelta(t, want, got[0], 1e-12)
}
