// Package tensor provides the weight containers used by graphline layers.
//
// The containers are deliberately small: a model description carries dense
// weight matrices and flat bias vectors, nothing higher-dimensional survives
// past load time. Matrices are stored row-major in a single flat slice so a
// layer's hot loop can walk rows without pointer chasing.
//
// All containers are generic over the element type:
//   - Matrix[T]: row-major 2-D storage with owned backing memory
//   - Shape: the raw dimension descriptor as it appears on the wire
package tensor
