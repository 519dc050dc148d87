// Copyright 2026 The Graphline Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package tensor exports the weight containers used by graphline layers.
package tensor

import "github.com/graphline-ml/graphline/internal/tensor"

// Float is the set of element types a weight container can hold.
type Float = tensor.Float

// Shape represents the dimensions of a serialized tensor descriptor.
type Shape = tensor.Shape

// Matrix is a dense 2-D container with row-major backing storage.
type Matrix[T Float] = tensor.Matrix[T]

// NewMatrix creates a zero-filled rows x cols matrix.
func NewMatrix[T Float](rows, cols int) *Matrix[T] {
	return tensor.NewMatrix[T](rows, cols)
}
