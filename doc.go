// Package fixmat is a home for small, fixed-dimension numeric matrices with
// value semantics: the grid lives inside the value, dimensions are part of
// the type, and nothing is allocated on the heap.
//
// Everything lives in one subpackage:
//
//	matrix/ — Matrix[T, S], shapes (Cells2x2 … Cells5x5, rectangles, vectors),
//	          element/row access, Fill, element-wise Add/Sub, iteration
//
// Quick example:
//
//	var m matrix.Matrix2[int]
//	m.Fill(1)
//	n := matrix.Add(m, m) // [[2 2] [2 2]]
//
//	go get github.com/katalvlaran/fixmat/matrix
package fixmat
