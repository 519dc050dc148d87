// Copyright 2026 The Graphline Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package nn exports the layer graph that graphline assembles models into.
//
// This package wraps the internal nn implementation and exposes the layer
// types a host application touches after loading: the Model container, the
// Layer interface, and the concrete Dense, LSTM and Activation layers.
package nn

import (
	"github.com/graphline-ml/graphline/internal/nn"
	"github.com/graphline-ml/graphline/internal/tensor"
)

// Layer is the base interface for every node in an assembled model.
type Layer[T tensor.Float] = nn.Layer[T]

// Stateful is implemented by layers that carry state between forward steps.
type Stateful = nn.Stateful

// Model is the ordered, owned sequence of layers produced by one load.
type Model[T tensor.Float] = nn.Model[T]

// NewModel creates an empty model with the given input width.
func NewModel[T tensor.Float](inSize int) *Model[T] {
	return nn.NewModel[T](inSize)
}

// Layers

// Dense is a fully connected (affine) layer.
type Dense[T tensor.Float] = nn.Dense[T]

// NewDense creates a Dense layer with zeroed weights.
//
// Example:
//
//	layer := nn.NewDense[float32](16, 8)
func NewDense[T tensor.Float](inSize, outSize int) *Dense[T] {
	return nn.NewDense[T](inSize, outSize)
}

// LSTM is a single-step Long Short-Term Memory layer.
type LSTM[T tensor.Float] = nn.LSTM[T]

// NewLSTM creates an LSTM layer with zeroed weights and cleared state.
func NewLSTM[T tensor.Float](inSize, outSize int) *LSTM[T] {
	return nn.NewLSTM[T](inSize, outSize)
}

// Activation is a pointwise nonlinearity with no learned weights.
type Activation[T tensor.Float] = nn.Activation[T]

// ActivationKind identifies a pointwise nonlinearity.
type ActivationKind = nn.ActivationKind

// Supported activation kinds.
const (
	ActTanh    = nn.ActTanh
	ActReLU    = nn.ActReLU
	ActSigmoid = nn.ActSigmoid
	ActSoftmax = nn.ActSoftmax
	ActELU     = nn.ActELU
)

// NewActivation creates an activation layer of the given kind and width.
func NewActivation[T tensor.Float](kind ActivationKind, size int) *Activation[T] {
	return nn.NewActivation[T](kind, size)
}

// ParseActivationKind resolves a serialized activation name.
func ParseActivationKind(name string) (ActivationKind, bool) {
	return nn.ParseActivationKind(name)
}
