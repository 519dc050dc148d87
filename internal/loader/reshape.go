package loader

import (
	"encoding/json"

	"github.com/graphline-ml/graphline/internal/tensor"
)

// Weight reshaping: every function here checks serialized lengths against
// the declared dimensions before indexing. Out-of-bounds reads and silent
// truncation or zero-filling are never relied on.

// decodeNested decodes one weight group as a nested numeric array.
func decodeNested[T tensor.Float](raw json.RawMessage, field string, index int) ([][]T, error) {
	var rows [][]T
	if err := json.Unmarshal(raw, &rows); err != nil {
		return nil, &StructureError{
			Field:  field,
			Index:  index,
			Reason: "not a nested numeric array",
		}
	}
	return rows, nil
}

// decodeFlat decodes one weight group as a flat numeric array.
func decodeFlat[T tensor.Float](raw json.RawMessage, field string, index int) ([]T, error) {
	var vals []T
	if err := json.Unmarshal(raw, &vals); err != nil {
		return nil, &StructureError{
			Field:  field,
			Index:  index,
			Reason: "not a flat numeric array",
		}
	}
	return vals, nil
}

// denseWeights reshapes a serialized [in_size][out_size] payload into the
// [out_size][in_size] matrix a Dense layer stores: M[o][i] = serialized[i][o].
func denseWeights[T tensor.Float](rows [][]T, inSize, outSize, index int) (*tensor.Matrix[T], error) {
	if len(rows) != inSize {
		return nil, &ShapeError{Index: index, Field: "weights", Want: inSize, Got: len(rows)}
	}
	m := tensor.NewMatrix[T](outSize, inSize)
	for i, row := range rows {
		if len(row) != outSize {
			return nil, &ShapeError{Index: index, Field: "weights", Want: outSize, Got: len(row)}
		}
		for o, v := range row {
			m.Set(o, i, v)
		}
	}
	return m, nil
}

// gateMatrix loads a serialized [rows][cols] payload row-major as-is, with
// no transpose. Used for LSTM kernel and recurrent groups.
func gateMatrix[T tensor.Float](rows [][]T, nRows, nCols int, field string, index int) (*tensor.Matrix[T], error) {
	if len(rows) != nRows {
		return nil, &ShapeError{Index: index, Field: field, Want: nRows, Got: len(rows)}
	}
	m := tensor.NewMatrix[T](nRows, nCols)
	for r, row := range rows {
		if len(row) != nCols {
			return nil, &ShapeError{Index: index, Field: field, Want: nCols, Got: len(row)}
		}
		copy(m.Row(r), row)
	}
	return m, nil
}

// biasVector copies a flat bias payload verbatim after checking its length.
func biasVector[T tensor.Float](vals []T, n int, field string, index int) ([]T, error) {
	if len(vals) != n {
		return nil, &ShapeError{Index: index, Field: field, Want: n, Got: len(vals)}
	}
	out := make([]T, n)
	copy(out, vals)
	return out, nil
}
