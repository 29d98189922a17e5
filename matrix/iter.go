// SPDX-License-Identifier: MIT

package matrix

import "iter"

// Values yields every cell in row-major order (read-only traversal).
// The sequence is restartable; each call to the returned func walks from (0,0).
func (m *Matrix[T, S]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for idx := 0; idx < len(m.cells); idx++ {
			if !yield(m.cells[idx]) {
				return
			}
		}
	}
}

// All yields (Index, value) for every cell in row-major order.
func (m *Matrix[T, S]) All() iter.Seq2[Index, T] {
	return func(yield func(Index, T) bool) {
		rows, cols := m.Shape()
		for i := 0; i < rows; i++ {
			for j := 0; j < cols; j++ {
				if !yield(Index{Row: i, Col: j}, m.cells[i*cols+j]) {
					return
				}
			}
		}
	}
}

// Cells yields (Index, *T) for every cell in row-major order. The pointers
// alias the grid: writing through them mutates m.
//
//	for _, p := range m.Cells() {
//		*p *= 2
//	}
func (m *Matrix[T, S]) Cells() iter.Seq2[Index, *T] {
	return func(yield func(Index, *T) bool) {
		rows, cols := m.Shape()
		for i := 0; i < rows; i++ {
			for j := 0; j < cols; j++ {
				if !yield(Index{Row: i, Col: j}, &m.cells[i*cols+j]) {
					return
				}
			}
		}
	}
}

// RowSeq yields (r, row) for r in [0, R). Each row aliases the grid, as Row does.
func (m *Matrix[T, S]) RowSeq() iter.Seq2[int, []T] {
	return func(yield func(int, []T) bool) {
		for r := 0; r < m.Rows(); r++ {
			if !yield(r, m.Row(r)) {
				return
			}
		}
	}
}
