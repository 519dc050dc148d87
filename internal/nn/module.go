// Package nn implements the layer graph that graphline assembles models into.
//
// This package provides the building blocks of a sequential inference graph:
//   - Layer interface: base interface for all graph nodes
//   - Dense: fully connected affine layer
//   - LSTM: gated recurrent layer with persistent hidden/cell state
//   - Activation: pointwise nonlinearities (tanh, relu, sigmoid, softmax, elu)
//   - Model: owned, ordered container threading widths between layers
//
// Layers are built once by the loader, receive their weights exactly once,
// and are never mutated afterwards. Forward passes reuse per-layer output
// buffers so the inference hot path performs no allocations.
package nn

import "github.com/graphline-ml/graphline/internal/tensor"

// Layer is the base interface for every node in an assembled model.
//
// A Layer knows its input and output widths and can run one forward step.
// Implementations keep their output in an internal buffer that is valid
// until the next Forward call on the same layer.
type Layer[T tensor.Float] interface {
	// InSize returns the layer's input width.
	InSize() int

	// OutSize returns the layer's output width.
	OutSize() int

	// Forward computes one step. The input slice must have length InSize;
	// the returned slice has length OutSize and is owned by the layer.
	Forward(input []T) []T
}

// Stateful is implemented by layers that carry state between forward steps.
type Stateful interface {
	// Reset clears the layer's internal state.
	Reset()
}
