package nn

import (
	"fmt"
	"math"

	"github.com/graphline-ml/graphline/internal/tensor"
)

// LSTM is a single-step Long Short-Term Memory layer.
//
// Weight layout follows the serialized format: the kernel (input-to-gates)
// matrix has shape [in_size, 4*out_size] and the recurrent (hidden-to-gates)
// matrix has shape [out_size, 4*out_size]. The 4*out_size gate axis is
// organized in four equal blocks, positionally: input gate, forget gate,
// cell candidate, output gate. The bias vector has length 4*out_size with
// the same block order.
//
// Hidden and cell state persist between Forward calls; Reset clears them.
// Sample-rate hosts call Forward once per frame and Reset between takes.
type LSTM[T tensor.Float] struct {
	inSize  int
	outSize int

	kernel    *tensor.Matrix[T] // [in_size, 4*out_size]
	recurrent *tensor.Matrix[T] // [out_size, 4*out_size]
	bias      []T               // [4*out_size]

	// State and scratch buffers, reused every step.
	hidden []T // [out_size]
	cell   []T // [out_size]
	gates  []T // [4*out_size] pre-activations
}

// NewLSTM creates an LSTM layer with zeroed weights and cleared state.
func NewLSTM[T tensor.Float](inSize, outSize int) *LSTM[T] {
	return &LSTM[T]{
		inSize:    inSize,
		outSize:   outSize,
		kernel:    tensor.NewMatrix[T](inSize, 4*outSize),
		recurrent: tensor.NewMatrix[T](outSize, 4*outSize),
		bias:      make([]T, 4*outSize),
		hidden:    make([]T, outSize),
		cell:      make([]T, outSize),
		gates:     make([]T, 4*outSize),
	}
}

// SetKernel installs the input-to-gates matrix, taking ownership of it.
//
// The matrix must have shape [in_size, 4*out_size].
func (l *LSTM[T]) SetKernel(w *tensor.Matrix[T]) error {
	if w.Rows() != l.inSize || w.Cols() != 4*l.outSize {
		return fmt.Errorf("lstm kernel: expected %dx%d, got %dx%d",
			l.inSize, 4*l.outSize, w.Rows(), w.Cols())
	}
	l.kernel = w
	return nil
}

// SetRecurrent installs the hidden-to-gates matrix, taking ownership of it.
//
// The matrix must have shape [out_size, 4*out_size].
func (l *LSTM[T]) SetRecurrent(w *tensor.Matrix[T]) error {
	if w.Rows() != l.outSize || w.Cols() != 4*l.outSize {
		return fmt.Errorf("lstm recurrent: expected %dx%d, got %dx%d",
			l.outSize, 4*l.outSize, w.Rows(), w.Cols())
	}
	l.recurrent = w
	return nil
}

// SetBias installs the gate bias vector, taking ownership of it.
func (l *LSTM[T]) SetBias(b []T) error {
	if len(b) != 4*l.outSize {
		return fmt.Errorf("lstm bias: expected length %d, got %d", 4*l.outSize, len(b))
	}
	l.bias = b
	return nil
}

// Forward advances the recurrence by one step and returns the hidden state.
func (l *LSTM[T]) Forward(input []T) []T {
	// Pre-activations: z = bias + kernel.T @ x + recurrent.T @ h
	copy(l.gates, l.bias)
	for i, x := range input {
		row := l.kernel.Row(i)
		for g := range l.gates {
			l.gates[g] += row[g] * x
		}
	}
	for k, h := range l.hidden {
		row := l.recurrent.Row(k)
		for g := range l.gates {
			l.gates[g] += row[g] * h
		}
	}

	// Gate blocks: [input | forget | candidate | output]
	n := l.outSize
	for j := 0; j < n; j++ {
		in := sigmoid(l.gates[j])
		forget := sigmoid(l.gates[n+j])
		cand := tanh(l.gates[2*n+j])
		out := sigmoid(l.gates[3*n+j])

		l.cell[j] = forget*l.cell[j] + in*cand
		l.hidden[j] = out * tanh(l.cell[j])
	}
	return l.hidden
}

// Reset clears the hidden and cell state.
func (l *LSTM[T]) Reset() {
	for j := range l.hidden {
		l.hidden[j] = 0
		l.cell[j] = 0
	}
}

// InSize returns the input width.
func (l *LSTM[T]) InSize() int {
	return l.inSize
}

// OutSize returns the output width.
func (l *LSTM[T]) OutSize() int {
	return l.outSize
}

// Kernel returns the input-to-gates matrix (read-only).
func (l *LSTM[T]) Kernel() *tensor.Matrix[T] {
	return l.kernel
}

// Recurrent returns the hidden-to-gates matrix (read-only).
func (l *LSTM[T]) Recurrent() *tensor.Matrix[T] {
	return l.recurrent
}

// Bias returns the gate bias vector (read-only).
func (l *LSTM[T]) Bias() []T {
	return l.bias
}

func sigmoid[T tensor.Float](x T) T {
	return T(1 / (1 + math.Exp(float64(-x))))
}

func tanh[T tensor.Float](x T) T {
	return T(math.Tanh(float64(x)))
}
