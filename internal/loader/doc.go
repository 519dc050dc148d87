// Package loader turns a serialized model topology into a runnable graph.
//
// The wire format is a JSON document with an input shape and an ordered
// layer list; each layer entry carries a type tag, a shape, nested weight
// arrays, and an optional activation name. Loading walks the list exactly
// once, threading the running input width between layers, and produces an
// nn.Model that owns every constructed layer.
//
// Loading is all-or-nothing: a structural or shape error aborts the whole
// load and no partial model is returned. Unknown layer types and activation
// names are skipped by default, matching the format's observed behavior;
// WithStrict(true) turns both into load-fatal errors.
//
// Example:
//
//	model, err := loader.ParseFile[float32]("model.json")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	out := model.Forward(frame)
//
// Design principles:
//   - The document is fully buffered before parsing; no streaming state.
//   - Every nested weight length is validated before indexing.
//   - Each load call produces an independently owned model with no
//     aliasing back into the document.
package loader
