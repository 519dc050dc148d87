package loader

import (
	"github.com/graphline-ml/graphline/internal/nn"
	"github.com/graphline-ml/graphline/internal/tensor"
)

// LayerKind identifies a layer type tag. Unknown tags map to KindUnknown,
// a distinguishable case rather than a dispatch fallthrough.
type LayerKind int

// Recognized layer kinds.
const (
	KindUnknown LayerKind = iota
	KindDense
	KindTimeDistributedDense
	KindLSTM
	KindActivation
)

// ParseLayerKind resolves a serialized layer type tag.
func ParseLayerKind(tag string) LayerKind {
	switch tag {
	case "dense":
		return KindDense
	case "time-distributed-dense":
		return KindTimeDistributedDense
	case "lstm":
		return KindLSTM
	case "activation":
		return KindActivation
	default:
		return KindUnknown
	}
}

// String returns the serialized tag for the kind.
func (k LayerKind) String() string {
	switch k {
	case KindDense:
		return "dense"
	case KindTimeDistributedDense:
		return "time-distributed-dense"
	case KindLSTM:
		return "lstm"
	case KindActivation:
		return "activation"
	default:
		return "unknown"
	}
}

// buildDense constructs a Dense layer and loads its weights.
//
// The serialized payload carries two groups: the [in_size][out_size] weight
// array (transposed into [out_size][in_size] storage) and the flat bias.
func buildDense[T tensor.Float](inSize, outSize int, entry layerEntry, index int) (*nn.Dense[T], error) {
	if len(entry.Weights) < 2 {
		return nil, &StructureError{
			Field:  "weights",
			Index:  index,
			Reason: "dense layer requires weight and bias groups",
		}
	}

	rows, err := decodeNested[T](entry.Weights[0], "weights", index)
	if err != nil {
		return nil, err
	}
	weights, err := denseWeights(rows, inSize, outSize, index)
	if err != nil {
		return nil, err
	}

	flat, err := decodeFlat[T](entry.Weights[1], "bias", index)
	if err != nil {
		return nil, err
	}
	bias, err := biasVector(flat, outSize, "bias", index)
	if err != nil {
		return nil, err
	}

	dense := nn.NewDense[T](inSize, outSize)
	if err := dense.SetWeights(weights); err != nil {
		return nil, err
	}
	if err := dense.SetBias(bias); err != nil {
		return nil, err
	}
	return dense, nil
}

// buildLSTM constructs an LSTM layer and loads its three weight groups.
//
// Kernel [in_size][4*out_size] and recurrent [out_size][4*out_size] load
// row-major as-is; the bias is flat with length 4*out_size. The four gate
// blocks are copied positionally, never interpreted here.
func buildLSTM[T tensor.Float](inSize, outSize int, entry layerEntry, index int) (*nn.LSTM[T], error) {
	if len(entry.Weights) < 3 {
		return nil, &StructureError{
			Field:  "weights",
			Index:  index,
			Reason: "lstm layer requires kernel, recurrent and bias groups",
		}
	}

	kernelRows, err := decodeNested[T](entry.Weights[0], "kernel", index)
	if err != nil {
		return nil, err
	}
	kernel, err := gateMatrix(kernelRows, inSize, 4*outSize, "kernel", index)
	if err != nil {
		return nil, err
	}

	recurrentRows, err := decodeNested[T](entry.Weights[1], "recurrent", index)
	if err != nil {
		return nil, err
	}
	recurrent, err := gateMatrix(recurrentRows, outSize, 4*outSize, "recurrent", index)
	if err != nil {
		return nil, err
	}

	flat, err := decodeFlat[T](entry.Weights[2], "bias", index)
	if err != nil {
		return nil, err
	}
	bias, err := biasVector(flat, 4*outSize, "bias", index)
	if err != nil {
		return nil, err
	}

	lstm := nn.NewLSTM[T](inSize, outSize)
	if err := lstm.SetKernel(kernel); err != nil {
		return nil, err
	}
	if err := lstm.SetRecurrent(recurrent); err != nil {
		return nil, err
	}
	if err := lstm.SetBias(bias); err != nil {
		return nil, err
	}
	return lstm, nil
}
