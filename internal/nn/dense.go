package nn

import (
	"fmt"

	"github.com/graphline-ml/graphline/internal/tensor"
)

// Dense implements a fully connected (affine) layer.
//
// Performs the transformation: y = W @ x + b
// where:
//   - x is the input vector with length in_size
//   - W is the weight matrix with shape [out_size, in_size]
//   - b is the bias vector with length out_size
//   - y is the output vector with length out_size
//
// Weights start zeroed and are set exactly once via SetWeights/SetBias
// during model assembly.
type Dense[T tensor.Float] struct {
	inSize  int
	outSize int
	weights *tensor.Matrix[T] // [out_size, in_size]
	bias    []T               // [out_size]
	out     []T
}

// NewDense creates a Dense layer with zeroed weights.
func NewDense[T tensor.Float](inSize, outSize int) *Dense[T] {
	return &Dense[T]{
		inSize:  inSize,
		outSize: outSize,
		weights: tensor.NewMatrix[T](outSize, inSize),
		bias:    make([]T, outSize),
		out:     make([]T, outSize),
	}
}

// SetWeights installs the weight matrix, taking ownership of it.
//
// The matrix must have shape [out_size, in_size].
func (d *Dense[T]) SetWeights(w *tensor.Matrix[T]) error {
	if w.Rows() != d.outSize || w.Cols() != d.inSize {
		return fmt.Errorf("dense weights: expected %dx%d, got %dx%d",
			d.outSize, d.inSize, w.Rows(), w.Cols())
	}
	d.weights = w
	return nil
}

// SetBias installs the bias vector, taking ownership of it.
func (d *Dense[T]) SetBias(b []T) error {
	if len(b) != d.outSize {
		return fmt.Errorf("dense bias: expected length %d, got %d", d.outSize, len(b))
	}
	d.bias = b
	return nil
}

// Forward computes y = W @ x + b into the layer's output buffer.
func (d *Dense[T]) Forward(input []T) []T {
	for o := 0; o < d.outSize; o++ {
		row := d.weights.Row(o)
		sum := d.bias[o]
		for i, x := range input {
			sum += row[i] * x
		}
		d.out[o] = sum
	}
	return d.out
}

// InSize returns the input width.
func (d *Dense[T]) InSize() int {
	return d.inSize
}

// OutSize returns the output width.
func (d *Dense[T]) OutSize() int {
	return d.outSize
}

// Weights returns the weight matrix (read-only).
func (d *Dense[T]) Weights() *tensor.Matrix[T] {
	return d.weights
}

// Bias returns the bias vector (read-only).
func (d *Dense[T]) Bias() []T {
	return d.bias
}
