package loader

import "fmt"

// documentIndex marks an error raised at document level rather than inside
// a particular layer entry.
const documentIndex = -1

// StructureError reports a required document field that is missing or not
// of the expected container kind.
type StructureError struct {
	Field  string // JSON field name (e.g. "in_shape", "layers", "weights")
	Index  int    // layer index, or -1 for document-level fields
	Reason string // what was wrong with the field
}

// Error implements the error interface.
func (e *StructureError) Error() string {
	if e.Index >= 0 {
		return fmt.Sprintf("layer %d: field %q: %s", e.Index, e.Field, e.Reason)
	}
	return fmt.Sprintf("field %q: %s", e.Field, e.Reason)
}

// ShapeError reports a weights payload whose nested lengths disagree with
// the declared layer dimensions.
type ShapeError struct {
	Index int    // layer index
	Field string // which weight group (e.g. "weights", "bias", "kernel")
	Want  int    // declared length
	Got   int    // serialized length
}

// Error implements the error interface.
func (e *ShapeError) Error() string {
	return fmt.Sprintf("layer %d: %s: length mismatch: declared %d, serialized %d",
		e.Index, e.Field, e.Want, e.Got)
}

// UnknownLayerError reports an unrecognized layer type tag. It is returned
// only in strict mode; permissive loads skip the entry instead.
type UnknownLayerError struct {
	Index int
	Type  string
}

// Error implements the error interface.
func (e *UnknownLayerError) Error() string {
	return fmt.Sprintf("layer %d: unknown layer type %q", e.Index, e.Type)
}

// UnknownActivationError reports an unrecognized activation name. It is
// returned only in strict mode; permissive loads add no activation layer.
type UnknownActivationError struct {
	Index int
	Name  string
}

// Error implements the error interface.
func (e *UnknownActivationError) Error() string {
	return fmt.Sprintf("layer %d: unknown activation %q", e.Index, e.Name)
}
