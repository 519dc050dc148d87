// Copyright 2026 The Graphline Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package loader provides model topology loading for graphline.
//
// This package wraps the internal loader implementation and exports a clean
// public API for turning a serialized model description into a runnable
// nn.Model.
//
// Example usage:
//
//	import "github.com/graphline-ml/graphline/loader"
//
//	model, err := loader.ParseFile[float32]("model.json")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	out := model.Forward(frame)
package loader

import (
	"io"

	"github.com/graphline-ml/graphline/internal/loader"
	"github.com/graphline-ml/graphline/internal/nn"
	"github.com/graphline-ml/graphline/internal/tensor"
)

// Option configures one load call.
type Option = loader.Option

// WithStrict makes unrecognized layer types and activation names
// load-fatal instead of silently skipped.
func WithStrict(strict bool) Option {
	return loader.WithStrict(strict)
}

// WithTrace enables the per-step debug trace on w.
func WithTrace(w io.Writer) Option {
	return loader.WithTrace(w)
}

// Parse assembles a model from a fully buffered JSON document.
func Parse[T tensor.Float](data []byte, opts ...Option) (*nn.Model[T], error) {
	return loader.Parse[T](data, opts...)
}

// ParseReader assembles a model from a JSON stream.
func ParseReader[T tensor.Float](r io.Reader, opts ...Option) (*nn.Model[T], error) {
	return loader.ParseReader[T](r, opts...)
}

// ParseFile assembles a model from a JSON file on disk.
func ParseFile[T tensor.Float](path string, opts ...Option) (*nn.Model[T], error) {
	return loader.ParseFile[T](path, opts...)
}

// LayerKind identifies a layer type tag.
type LayerKind = loader.LayerKind

// Recognized layer kinds.
const (
	KindUnknown              LayerKind = loader.KindUnknown
	KindDense                LayerKind = loader.KindDense
	KindTimeDistributedDense LayerKind = loader.KindTimeDistributedDense
	KindLSTM                 LayerKind = loader.KindLSTM
	KindActivation           LayerKind = loader.KindActivation
)

// ParseLayerKind resolves a serialized layer type tag.
func ParseLayerKind(tag string) LayerKind {
	return loader.ParseLayerKind(tag)
}

// Tracer is the debug reporting channel consulted during assembly and
// validation.
type Tracer = loader.Tracer

// NewTracer creates a tracer writing to w.
func NewTracer(w io.Writer) *Tracer {
	return loader.NewTracer(w)
}

// CheckLayer reports whether a constructed layer agrees with its declared
// type tag and expected output width. See the internal documentation for
// the full contract.
func CheckLayer[T tensor.Float](layer nn.Layer[T], tag string, dims int, tr *Tracer) bool {
	return loader.CheckLayer[T](layer, tag, dims, tr)
}

// Error types

// StructureError reports a required document field that is missing or not
// of the expected container kind.
type StructureError = loader.StructureError

// ShapeError reports a weights payload whose nested lengths disagree with
// the declared layer dimensions.
type ShapeError = loader.ShapeError

// UnknownLayerError reports an unrecognized layer type tag under strict
// loading.
type UnknownLayerError = loader.UnknownLayerError

// UnknownActivationError reports an unrecognized activation name under
// strict loading.
type UnknownActivationError = loader.UnknownActivationError
