package loader

import (
	"fmt"
	"io"
	"os"

	"github.com/graphline-ml/graphline/internal/nn"
	"github.com/graphline-ml/graphline/internal/tensor"
)

// config collects per-load settings resolved from Options.
type config struct {
	strict bool
	tracer *Tracer
}

// Option configures one load call.
type Option func(*config)

// WithStrict controls how unrecognized layer types and activation names are
// handled. Permissive loads (the default, matching the wire format's
// observed behavior) skip them; strict loads fail with UnknownLayerError or
// UnknownActivationError.
func WithStrict(strict bool) Option {
	return func(c *config) {
		c.strict = strict
	}
}

// WithTrace enables the debug trace, writing one line per assembly step
// to w. Tracing never affects the assembled model.
func WithTrace(w io.Writer) Option {
	return func(c *config) {
		c.tracer = NewTracer(w)
	}
}

// Parse assembles a model from a fully buffered JSON document.
//
// The layer list is walked exactly once, left to right, threading the
// running input width: each constructed layer's in_size is the out_size of
// the layer before it, starting from the document's input width. Any
// structural or shape failure aborts the load; no partial model is
// returned.
func Parse[T tensor.Float](data []byte, opts ...Option) (*nn.Model[T], error) {
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}
	tr := cfg.tracer

	doc, err := parseDocument(data)
	if err != nil {
		return nil, err
	}

	inWidth := effectiveWidth(doc.inShape)
	tr.Printf("# dimensions: %d", inWidth)

	model := nn.NewModel[T](inWidth)

	for i, entry := range doc.layers {
		kind := ParseLayerKind(entry.Type)
		tr.Printf("layer %d: %s", i, entry.Type)

		if kind == KindUnknown {
			if cfg.strict {
				return nil, &UnknownLayerError{Index: i, Type: entry.Type}
			}
			tr.Printf("  skipped: unknown layer type")
			continue
		}

		shape, err := parseShape(entry.Shape, "shape", i)
		if err != nil {
			return nil, err
		}
		dims := effectiveWidth(shape)
		tr.Printf("  dims: %d", dims)

		switch kind {
		case KindDense, KindTimeDistributedDense:
			dense, err := buildDense[T](model.NextInSize(), dims, entry, i)
			if err != nil {
				return nil, err
			}
			model.Append(dense)
			if err := attachActivation(model, entry, dims, i, cfg); err != nil {
				return nil, err
			}

		case KindLSTM:
			// The format never carries an inline activation for lstm
			// entries; the field is ignored here even when present.
			lstm, err := buildLSTM[T](model.NextInSize(), dims, entry, i)
			if err != nil {
				return nil, err
			}
			model.Append(lstm)

		case KindActivation:
			if err := attachActivation(model, entry, model.NextInSize(), i, cfg); err != nil {
				return nil, err
			}
		}
	}

	return model, nil
}

// attachActivation appends the activation layer named by the entry, if any.
//
// An absent or empty activation field appends nothing and is never an
// error. An unrecognized name is skipped when permissive and fatal when
// strict.
func attachActivation[T tensor.Float](model *nn.Model[T], entry layerEntry, dims, index int, cfg config) error {
	if entry.Activation == "" {
		return nil
	}
	kind, ok := nn.ParseActivationKind(entry.Activation)
	if !ok {
		if cfg.strict {
			return &UnknownActivationError{Index: index, Name: entry.Activation}
		}
		cfg.tracer.Printf("  skipped: unknown activation %q", entry.Activation)
		return nil
	}
	cfg.tracer.Printf("  activation: %s", entry.Activation)
	model.Append(nn.NewActivation[T](kind, dims))
	return nil
}

// ParseReader assembles a model from a JSON stream. The stream is fully
// buffered before parsing begins.
func ParseReader[T tensor.Float](r io.Reader, opts ...Option) (*nn.Model[T], error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read model document: %w", err)
	}
	return Parse[T](data, opts...)
}

// ParseFile assembles a model from a JSON file on disk.
func ParseFile[T tensor.Float](path string, opts ...Option) (*nn.Model[T], error) {
	//nolint:gosec // G304: File path comes from user input, which is expected for model loading
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read model document: %w", err)
	}
	return Parse[T](data, opts...)
}
