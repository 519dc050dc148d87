package loader

import (
	"encoding/json"

	"github.com/graphline-ml/graphline/internal/tensor"
)

// document is the transient, structure-checked form of a model description.
// It exists only for the duration of one load call.
type document struct {
	inShape tensor.Shape
	layers  []layerEntry
}

// layerEntry is one element of the "layers" sequence. Weight groups stay
// raw until the layer factory knows which element type to decode them as.
type layerEntry struct {
	Type       string            `json:"type"`
	Shape      json.RawMessage   `json:"shape"`
	Weights    []json.RawMessage `json:"weights"`
	Activation string            `json:"activation"`
}

// parseDocument decodes and structure-checks the top level of the wire
// document. Field contents beyond the layer list itself are validated
// later, with layer-index context.
func parseDocument(data []byte) (*document, error) {
	var top struct {
		InShape json.RawMessage `json:"in_shape"`
		Layers  json.RawMessage `json:"layers"`
	}
	if err := json.Unmarshal(data, &top); err != nil {
		return nil, &StructureError{
			Field:  "(document)",
			Index:  documentIndex,
			Reason: "not a JSON object: " + err.Error(),
		}
	}

	inShape, err := parseShape(top.InShape, "in_shape", documentIndex)
	if err != nil {
		return nil, err
	}

	if top.Layers == nil || string(top.Layers) == "null" {
		return nil, &StructureError{Field: "layers", Index: documentIndex, Reason: "missing"}
	}
	var rawLayers []json.RawMessage
	if err := json.Unmarshal(top.Layers, &rawLayers); err != nil {
		return nil, &StructureError{Field: "layers", Index: documentIndex, Reason: "not a sequence"}
	}

	doc := &document{
		inShape: inShape,
		layers:  make([]layerEntry, len(rawLayers)),
	}
	for i, raw := range rawLayers {
		if err := json.Unmarshal(raw, &doc.layers[i]); err != nil {
			return nil, &StructureError{
				Field:  "layers",
				Index:  i,
				Reason: "invalid layer description: " + err.Error(),
			}
		}
		if doc.layers[i].Type == "" {
			return nil, &StructureError{Field: "type", Index: i, Reason: "missing or empty"}
		}
	}
	return doc, nil
}

// parseShape decodes a required shape descriptor field.
func parseShape(raw json.RawMessage, field string, index int) (tensor.Shape, error) {
	if raw == nil {
		return nil, &StructureError{Field: field, Index: index, Reason: "missing"}
	}
	var shape tensor.Shape
	if err := json.Unmarshal(raw, &shape); err != nil {
		return nil, &StructureError{Field: field, Index: index, Reason: "not a sequence of integers"}
	}
	if err := shape.Validate(); err != nil {
		return nil, &StructureError{Field: field, Index: index, Reason: err.Error()}
	}
	return shape, nil
}

// effectiveWidth reduces a shape descriptor to a scalar layer width.
//
// A 4-element shape is a batch/height/width/channel tensor descriptor; its
// width is the product of the last two axes. Every other shape contributes
// its final element.
func effectiveWidth(shape tensor.Shape) int {
	if len(shape) == 4 {
		return shape[2] * shape[3]
	}
	return shape[len(shape)-1]
}
