// SPDX-License-Identifier: MIT

// Package matrix: element and shape constraints plus the Index pair.
// This file intentionally contains ONLY the type-level vocabulary. The
// container lives in matrix.go, concrete shapes in shapes.go.
package matrix

import "golang.org/x/exp/constraints"

// MaxCells bounds the inline storage of a single matrix (8×8).
// The Shape type set lists every array length from 1 to MaxCells.
const MaxCells = 64

// Number is the element constraint: every built-in integer, float and
// complex type (and named types over them). All of them have a zero value,
// support + and -, and are comparable.
type Number interface {
	constraints.Integer | constraints.Float | constraints.Complex
}

// Shape is the compile-time dimension carrier.
//
// A shape is a named array type whose underlying type is [R*C]T and whose
// value methods report R and C:
//
//	type Cells2x3[T Number] [6]T
//
//	func (Cells2x3[T]) Rows() int { return 2 }
//	func (Cells2x3[T]) Cols() int { return 3 }
//
// The array is the matrix storage, so the grid is embedded in the Matrix value.
// [0]T is not part of the type set: a zero-cell shape does not compile.
// Shapes that compile but lie about their dimensions are rejected by
// ValidateShape and by every constructor.
type Shape[T Number] interface {
	~[1]T | ~[2]T | ~[3]T | ~[4]T | ~[5]T | ~[6]T | ~[7]T | ~[8]T |
		~[9]T | ~[10]T | ~[11]T | ~[12]T | ~[13]T | ~[14]T | ~[15]T | ~[16]T |
		~[17]T | ~[18]T | ~[19]T | ~[20]T | ~[21]T | ~[22]T | ~[23]T | ~[24]T |
		~[25]T | ~[26]T | ~[27]T | ~[28]T | ~[29]T | ~[30]T | ~[31]T | ~[32]T |
		~[33]T | ~[34]T | ~[35]T | ~[36]T | ~[37]T | ~[38]T | ~[39]T | ~[40]T |
		~[41]T | ~[42]T | ~[43]T | ~[44]T | ~[45]T | ~[46]T | ~[47]T | ~[48]T |
		~[49]T | ~[50]T | ~[51]T | ~[52]T | ~[53]T | ~[54]T | ~[55]T | ~[56]T |
		~[57]T | ~[58]T | ~[59]T | ~[60]T | ~[61]T | ~[62]T | ~[63]T | ~[64]T

	// Rows returns the compile-time row count R.
	Rows() int

	// Cols returns the compile-time column count C.
	Cols() int
}

// Index addresses a single cell by (row, column) pair.
type Index struct {
	Row int
	Col int
}
