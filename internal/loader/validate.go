package loader

import (
	"github.com/graphline-ml/graphline/internal/nn"
	"github.com/graphline-ml/graphline/internal/tensor"
)

// CheckLayer reports whether a constructed layer agrees with the type tag
// that was declared for it and the expected output width.
//
// It is not invoked during loading; callers compose it as a separate
// verification step after assembly. Disagreements are described through
// the tracer only: the layer and model are never altered and no error is
// raised. For activation layers the tag is the activation name.
func CheckLayer[T tensor.Float](layer nn.Layer[T], tag string, dims int, tr *Tracer) bool {
	switch l := layer.(type) {
	case *nn.Dense[T]:
		if kind := ParseLayerKind(tag); kind != KindDense && kind != KindTimeDistributedDense {
			tr.Printf("wrong layer type! expected: dense")
			return false
		}

	case *nn.LSTM[T]:
		if ParseLayerKind(tag) != KindLSTM {
			tr.Printf("wrong layer type! expected: lstm")
			return false
		}

	case *nn.Activation[T]:
		if tag != l.Name() {
			tr.Printf("wrong layer type! expected: %s", l.Name())
			return false
		}

	default:
		tr.Printf("unrecognized layer implementation")
		return false
	}

	if layer.OutSize() != dims {
		tr.Printf("wrong layer size! expected: %d", layer.OutSize())
		return false
	}
	return true
}
