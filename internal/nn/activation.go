package nn

import (
	"math"

	"github.com/graphline-ml/graphline/internal/tensor"
)

// ActivationKind identifies a pointwise nonlinearity.
type ActivationKind int

// Supported activation kinds.
const (
	ActTanh ActivationKind = iota
	ActReLU
	ActSigmoid
	ActSoftmax
	ActELU
)

// String returns the serialized name of the activation kind.
func (k ActivationKind) String() string {
	switch k {
	case ActTanh:
		return "tanh"
	case ActReLU:
		return "relu"
	case ActSigmoid:
		return "sigmoid"
	case ActSoftmax:
		return "softmax"
	case ActELU:
		return "elu"
	default:
		return "unknown"
	}
}

// ParseActivationKind resolves a serialized activation name.
//
// The boolean reports whether the name is one of the supported kinds;
// unrecognized names are a distinguishable case, not a default.
func ParseActivationKind(name string) (ActivationKind, bool) {
	switch name {
	case "tanh":
		return ActTanh, true
	case "relu":
		return ActReLU, true
	case "sigmoid":
		return ActSigmoid, true
	case "softmax":
		return ActSoftmax, true
	case "elu":
		return ActELU, true
	default:
		return 0, false
	}
}

// Activation is a pointwise nonlinearity with no learned weights.
//
// Input and output widths are always equal.
type Activation[T tensor.Float] struct {
	kind ActivationKind
	size int
	out  []T
}

// NewActivation creates an activation layer of the given kind and width.
func NewActivation[T tensor.Float](kind ActivationKind, size int) *Activation[T] {
	return &Activation[T]{
		kind: kind,
		size: size,
		out:  make([]T, size),
	}
}

// Forward applies the nonlinearity elementwise.
func (a *Activation[T]) Forward(input []T) []T {
	switch a.kind {
	case ActTanh:
		for i, x := range input {
			a.out[i] = tanh(x)
		}
	case ActReLU:
		for i, x := range input {
			if x > 0 {
				a.out[i] = x
			} else {
				a.out[i] = 0
			}
		}
	case ActSigmoid:
		for i, x := range input {
			a.out[i] = sigmoid(x)
		}
	case ActSoftmax:
		a.softmax(input)
	case ActELU:
		for i, x := range input {
			if x > 0 {
				a.out[i] = x
			} else {
				a.out[i] = T(math.Expm1(float64(x)))
			}
		}
	}
	return a.out
}

// softmax is computed against the running maximum for numerical stability.
func (a *Activation[T]) softmax(input []T) {
	maxVal := input[0]
	for _, x := range input[1:] {
		if x > maxVal {
			maxVal = x
		}
	}

	var sum T
	for i, x := range input {
		e := T(math.Exp(float64(x - maxVal)))
		a.out[i] = e
		sum += e
	}
	for i := range a.out {
		a.out[i] /= sum
	}
}

// Kind returns the activation kind.
func (a *Activation[T]) Kind() ActivationKind {
	return a.kind
}

// Name returns the serialized name of the activation.
func (a *Activation[T]) Name() string {
	return a.kind.String()
}

// InSize returns the layer width.
func (a *Activation[T]) InSize() int {
	return a.size
}

// OutSize returns the layer width.
func (a *Activation[T]) OutSize() int {
	return a.size
}
