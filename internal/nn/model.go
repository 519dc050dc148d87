package nn

import "github.com/graphline-ml/graphline/internal/tensor"

// Model is the ordered, owned sequence of layers produced by one load.
//
// Each layer's output feeds the next layer's input. The model owns its
// layers exclusively; once assembly finishes the sequence is never
// reordered or mutated.
//
// Example:
//
//	model := nn.NewModel[float32](8)
//	model.Append(nn.NewDense[float32](8, 4))
//	model.Append(nn.NewActivation[float32](nn.ActTanh, 4))
//
//	output := model.Forward(input) // length 4
type Model[T tensor.Float] struct {
	inSize int
	layers []Layer[T]
}

// NewModel creates an empty model with the given input width.
func NewModel[T tensor.Float](inSize int) *Model[T] {
	return &Model[T]{inSize: inSize}
}

// Append adds a layer to the end of the sequence, taking ownership of it.
func (m *Model[T]) Append(layer Layer[T]) {
	m.layers = append(m.layers, layer)
}

// NextInSize returns the input width the next appended layer must have:
// the output width of the last layer, or the model's input width while
// the sequence is empty.
func (m *Model[T]) NextInSize() int {
	if len(m.layers) == 0 {
		return m.inSize
	}
	return m.layers[len(m.layers)-1].OutSize()
}

// InSize returns the model's declared input width.
func (m *Model[T]) InSize() int {
	return m.inSize
}

// OutSize returns the output width of the last layer, or the input width
// for an empty model.
func (m *Model[T]) OutSize() int {
	return m.NextInSize()
}

// Len returns the number of layers.
func (m *Model[T]) Len() int {
	return len(m.layers)
}

// Layer returns the layer at the given index.
//
// Panics if index is out of bounds.
func (m *Model[T]) Layer(index int) Layer[T] {
	if index < 0 || index >= len(m.layers) {
		panic("Model.Layer: index out of bounds")
	}
	return m.layers[index]
}

// Forward runs one inference step through every layer in order.
//
// The returned slice is owned by the last layer and is valid until the
// next Forward call.
func (m *Model[T]) Forward(input []T) []T {
	output := input
	for _, layer := range m.layers {
		output = layer.Forward(output)
	}
	return output
}

// Reset clears the state of every stateful layer (LSTM hidden/cell state).
func (m *Model[T]) Reset() {
	for _, layer := range m.layers {
		if s, ok := layer.(Stateful); ok {
			s.Reset()
		}
	}
}
