package tensor

import "fmt"

// Matrix is a dense 2-D container with row-major backing storage.
//
// A Matrix owns its memory exclusively: nothing it is built from is aliased,
// and handing a Matrix to a layer transfers that ownership.
type Matrix[T Float] struct {
	rows int
	cols int
	data []T
}

// NewMatrix creates a zero-filled rows x cols matrix.
//
// Panics if either dimension is not positive; callers validate dimensions
// against the document before allocating.
func NewMatrix[T Float](rows, cols int) *Matrix[T] {
	if rows <= 0 || cols <= 0 {
		panic(fmt.Sprintf("tensor.NewMatrix: invalid dimensions %dx%d", rows, cols))
	}
	return &Matrix[T]{
		rows: rows,
		cols: cols,
		data: make([]T, rows*cols),
	}
}

// Rows returns the number of rows.
func (m *Matrix[T]) Rows() int {
	return m.rows
}

// Cols returns the number of columns.
func (m *Matrix[T]) Cols() int {
	return m.cols
}

// At returns the element at row r, column c.
func (m *Matrix[T]) At(r, c int) T {
	return m.data[r*m.cols+c]
}

// Set stores v at row r, column c.
func (m *Matrix[T]) Set(r, c int, v T) {
	m.data[r*m.cols+c] = v
}

// Row returns a view of row r backed by the matrix storage.
func (m *Matrix[T]) Row(r int) []T {
	return m.data[r*m.cols : (r+1)*m.cols]
}

// Data returns the flat row-major backing slice.
func (m *Matrix[T]) Data() []T {
	return m.data
}

// Clone returns a deep copy of the matrix.
func (m *Matrix[T]) Clone() *Matrix[T] {
	clone := NewMatrix[T](m.rows, m.cols)
	copy(clone.data, m.data)
	return clone
}
