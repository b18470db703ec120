// Package matrix provides the immutable row-major point matrix consumed by
// the sampling strategies. Row order defines each point's canonical index;
// that index is the only identity a point carries downstream.
package matrix

import (
	"errors"
	"fmt"
)

// ErrRaggedRows is returned when input rows have differing lengths.
var ErrRaggedRows = errors.New("rows must all have the same length")

// Matrix is an immutable N x D matrix of float64 coordinates stored
// row-major in a single flat slice.
type Matrix struct {
	data []float64
	rows int
	cols int
}

// FromRows builds a Matrix from a slice of equally sized coordinate rows.
// The rows are copied; the caller may reuse the input afterwards.
func FromRows(rows [][]float64) (*Matrix, error) {
	if len(rows) == 0 {
		return nil, errors.New("no rows provided")
	}

	cols := len(rows[0])
	data := make([]float64, 0, len(rows)*cols)

	for i, row := range rows {
		if len(row) != cols {
			return nil, fmt.Errorf("%w: row %d has %d columns, expected %d", ErrRaggedRows, i, len(row), cols)
		}
		data = append(data, row...)
	}

	return &Matrix{data: data, rows: len(rows), cols: cols}, nil
}

// FromFlat wraps an existing row-major flat slice without copying.
// The caller must not mutate data after handing it over.
func FromFlat(data []float64, rows, cols int) (*Matrix, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("invalid shape %dx%d", rows, cols)
	}
	if len(data) != rows*cols {
		return nil, fmt.Errorf("flat data has %d values, expected %d for %dx%d", len(data), rows*cols, rows, cols)
	}
	return &Matrix{data: data, rows: rows, cols: cols}, nil
}

// Rows returns the number of points N.
func (m *Matrix) Rows() int { return m.rows }

// Cols returns the dimensionality D.
func (m *Matrix) Cols() int { return m.cols }

// Row returns the coordinates of point i as a view into the backing slice.
// The returned slice must be treated as read-only.
func (m *Matrix) Row(i int) []float64 {
	return m.data[i*m.cols : (i+1)*m.cols]
}

// At returns the coordinate at row i, column j.
func (m *Matrix) At(i, j int) float64 {
	return m.data[i*m.cols+j]
}
