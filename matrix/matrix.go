// SPDX-License-Identifier: MIT

// Package matrix - fixed-shape storage (row-major, inline) & accessors.
//
// Purpose:
//   - Keep the whole R×C grid inside the Matrix value: no pointer, no slice header.
//   - Offer an unchecked fast path (At/Set/Elem/Row) and an opt-in checked path (Try*).
//   - Keep loops deterministic (flat 0..R*C-1, row-major).
//
// Complexity quicksheet:
//   - New/Filled/Fill/Clone: O(R*C); At/Set/Elem/Row/Rows/Cols: O(1).
package matrix

import "unsafe"

// Matrix is a fixed-dimension R×C grid of T.
//   - S is the shape: an array type [R*C]T that also reports R and C.
//   - cells is the row-major storage (offset = row*C + col).
//
// The zero value is ready to use: every cell holds T's zero value.
// Matrix has value semantics; assignment copies the full grid.
// A single Matrix is not safe for concurrent mutation.
type Matrix[T Number, S Shape[T]] struct {
	cells S
}

// New returns a zero-initialized matrix after validating the shape S.
// Equivalent to the zero value for every well-formed shape.
//
// Errors: ErrInvalidDimensions.
func New[T Number, S Shape[T]]() (Matrix[T, S], error) {
	var m Matrix[T, S]
	if err := ValidateShape[T, S](); err != nil {
		return m, matrixErrorf(opNew, err)
	}

	return m, nil
}

// Filled returns a matrix with every cell set to v (default-construct, then Fill).
//
// Errors: ErrInvalidDimensions, reported before any cell is written.
func Filled[T Number, S Shape[T]](v T) (Matrix[T, S], error) {
	var m Matrix[T, S]
	if err := ValidateShape[T, S](); err != nil {
		return m, matrixErrorf(opFilled, err)
	}
	m.Fill(v)

	return m, nil
}

// FromValues builds a matrix from a row-major list of exactly R*C values.
//
//	m, err := FromValues[int, Cells2x2[int]](1, 2,
//	                                          3, 4)
//
// Errors: ErrInvalidDimensions for a bad shape, ErrDimensionMismatch when
// len(vals) != R*C.
func FromValues[T Number, S Shape[T]](vals ...T) (Matrix[T, S], error) {
	var m Matrix[T, S]
	if err := ValidateShape[T, S](); err != nil {
		return m, matrixErrorf(opFromValues, err)
	}
	if err := ValidateLen(len(vals), len(m.cells)); err != nil {
		return m, matrixErrorf(opFromValues, err)
	}
	for i, v := range vals {
		m.cells[i] = v
	}

	return m, nil
}

// Rows returns R. No side effects.
func (m *Matrix[T, S]) Rows() int { return m.cells.Rows() }

// Cols returns C. No side effects.
func (m *Matrix[T, S]) Cols() int { return m.cells.Cols() }

// Shape packs Rows() and Cols() into a single call.
func (m *Matrix[T, S]) Shape() (rows, cols int) { return m.cells.Rows(), m.cells.Cols() }

// Len returns the number of cells, R*C.
func (m *Matrix[T, S]) Len() int { return len(m.cells) }

// offset is the row-major position of (row, col). No bounds check.
func (m *Matrix[T, S]) offset(row, col int) int {
	return row*m.cells.Cols() + col
}

// At returns the value at (row, col).
//
// Unchecked: the caller guarantees 0 <= row < R and 0 <= col < C. Offsets
// outside the storage panic through the runtime bounds check; in-storage
// offsets with an invalid column address an unspecified cell.
// Use TryAt for a checked read.
func (m *Matrix[T, S]) At(row, col int) T {
	return m.cells[m.offset(row, col)]
}

// Set stores v at (row, col). Unchecked, see At.
func (m *Matrix[T, S]) Set(row, col int, v T) {
	m.cells[m.offset(row, col)] = v
}

// Elem returns a reference to the cell at ix, so that
//
//	*m.Elem(Index{Row: 1, Col: 1}) = 9
//
// writes into the grid. Unchecked, see At.
func (m *Matrix[T, S]) Elem(ix Index) *T {
	return &m.cells[m.offset(ix.Row, ix.Col)]
}

// Row returns row r as a slice of length C that aliases the grid:
// m.Row(r)[c] reads and writes cell (r, c). Unchecked, see At.
//
// The slice stays valid for as long as m does; it must not outlive m.
func (m *Matrix[T, S]) Row(r int) []T {
	cols := m.cells.Cols()
	return unsafe.Slice(&m.cells[r*cols], cols)
}

// Data returns all R*C cells as one row-major slice aliasing the grid.
// It is the mutable begin/end view used for whole-grid traversal.
func (m *Matrix[T, S]) Data() []T {
	return unsafe.Slice(&m.cells[0], len(m.cells))
}

// Fill assigns v to every cell.
// Complexity: O(R*C).
func (m *Matrix[T, S]) Fill(v T) {
	for i := 0; i < len(m.cells); i++ {
		m.cells[i] = v
	}
}

// Clone returns an independent copy of m.
// Same as plain assignment; provided for call sites holding a *Matrix.
func (m *Matrix[T, S]) Clone() Matrix[T, S] {
	return *m
}

// ---------- checked accessors (opt-in) ----------

// TryAt is the bounds-checked form of At.
// Errors: ErrOutOfRange, wrapped with the coordinates.
func (m *Matrix[T, S]) TryAt(row, col int) (T, error) {
	if err := ValidateIndex(row, col, m.Rows(), m.Cols()); err != nil {
		var zero T
		return zero, accessErrorf(ctxAt, row, col, err)
	}

	return m.At(row, col), nil
}

// TrySet is the bounds-checked form of Set. On error the grid is unchanged.
func (m *Matrix[T, S]) TrySet(row, col int, v T) error {
	if err := ValidateIndex(row, col, m.Rows(), m.Cols()); err != nil {
		return accessErrorf(ctxSet, row, col, err)
	}
	m.Set(row, col, v)

	return nil
}

// TryElem is the bounds-checked form of Elem.
func (m *Matrix[T, S]) TryElem(ix Index) (*T, error) {
	if err := ValidateIndex(ix.Row, ix.Col, m.Rows(), m.Cols()); err != nil {
		return nil, accessErrorf(ctxElem, ix.Row, ix.Col, err)
	}

	return m.Elem(ix), nil
}

// TryRow is the bounds-checked form of Row. The column in the error is 0.
func (m *Matrix[T, S]) TryRow(r int) ([]T, error) {
	if err := ValidateIndex(r, 0, m.Rows(), m.Cols()); err != nil {
		return nil, accessErrorf(ctxRow, r, 0, err)
	}

	return m.Row(r), nil
}
