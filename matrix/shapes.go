// SPDX-License-Identifier: MIT

package matrix

// Predefined shapes. Each one is the inline row-major storage of an R×C grid.
// Callers may declare their own following the same pattern (see Shape).

// Square shapes.
type (
	// Cells2x2 stores a 2×2 grid.
	Cells2x2[T Number] [4]T
	// Cells3x3 stores a 3×3 grid.
	Cells3x3[T Number] [9]T
	// Cells4x4 stores a 4×4 grid.
	Cells4x4[T Number] [16]T
	// Cells5x5 stores a 5×5 grid.
	Cells5x5[T Number] [25]T
)

func (Cells2x2[T]) Rows() int { return 2 }
func (Cells2x2[T]) Cols() int { return 2 }
func (Cells3x3[T]) Rows() int { return 3 }
func (Cells3x3[T]) Cols() int { return 3 }
func (Cells4x4[T]) Rows() int { return 4 }
func (Cells4x4[T]) Cols() int { return 4 }
func (Cells5x5[T]) Rows() int { return 5 }
func (Cells5x5[T]) Cols() int { return 5 }

// Row vectors (1×C).
type (
	Cells1x2[T Number] [2]T
	Cells1x3[T Number] [3]T
	Cells1x4[T Number] [4]T
)

func (Cells1x2[T]) Rows() int { return 1 }
func (Cells1x2[T]) Cols() int { return 2 }
func (Cells1x3[T]) Rows() int { return 1 }
func (Cells1x3[T]) Cols() int { return 3 }
func (Cells1x4[T]) Rows() int { return 1 }
func (Cells1x4[T]) Cols() int { return 4 }

// Column vectors (R×1).
type (
	Cells2x1[T Number] [2]T
	Cells3x1[T Number] [3]T
	Cells4x1[T Number] [4]T
)

func (Cells2x1[T]) Rows() int { return 2 }
func (Cells2x1[T]) Cols() int { return 1 }
func (Cells3x1[T]) Rows() int { return 3 }
func (Cells3x1[T]) Cols() int { return 1 }
func (Cells4x1[T]) Rows() int { return 4 }
func (Cells4x1[T]) Cols() int { return 1 }

// Rectangular shapes.
type (
	Cells2x3[T Number] [6]T
	Cells3x2[T Number] [6]T
	Cells3x4[T Number] [12]T
	Cells4x3[T Number] [12]T
)

func (Cells2x3[T]) Rows() int { return 2 }
func (Cells2x3[T]) Cols() int { return 3 }
func (Cells3x2[T]) Rows() int { return 3 }
func (Cells3x2[T]) Cols() int { return 2 }
func (Cells3x4[T]) Rows() int { return 3 }
func (Cells3x4[T]) Cols() int { return 4 }
func (Cells4x3[T]) Rows() int { return 4 }
func (Cells4x3[T]) Cols() int { return 3 }

// Compile-time assertions that every predefined shape satisfies Shape.
var (
	_ = ValidateShape[int, Cells2x2[int]]
	_ = ValidateShape[int, Cells3x3[int]]
	_ = ValidateShape[int, Cells4x4[int]]
	_ = ValidateShape[int, Cells5x5[int]]
	_ = ValidateShape[int, Cells1x2[int]]
	_ = ValidateShape[int, Cells1x3[int]]
	_ = ValidateShape[int, Cells1x4[int]]
	_ = ValidateShape[int, Cells2x1[int]]
	_ = ValidateShape[int, Cells3x1[int]]
	_ = ValidateShape[int, Cells4x1[int]]
	_ = ValidateShape[int, Cells2x3[int]]
	_ = ValidateShape[int, Cells3x2[int]]
	_ = ValidateShape[int, Cells3x4[int]]
	_ = ValidateShape[int, Cells4x3[int]]
)
