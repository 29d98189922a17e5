// Package matrix offers small fixed-dimension numeric matrices with value semantics.
//
// 🚀 What is a fixed matrix?
//
//	A Matrix[T, S] is an R×C grid of numbers whose dimensions are part of
//	its type. The grid lives inline in the value (no heap, no pointer), so
//	assignment copies it and two matrices never share storage.
//	Typical uses:
//	  • 2D/3D transforms (2×2 … 4×4)
//	  • small state or covariance blocks
//	  • lookup tables with a fixed layout
//
// ✨ Key features:
//   - compile-time shape: S is an array type [R*C]T reporting R and C,
//     predefined as Cells2x2 … Cells5x5 plus common rectangles and vectors
//   - zero value is usable: every cell is T's zero value
//   - unchecked fast access (At, Set, Elem, Row) and opt-in checked access (Try*)
//   - element-wise AddInPlace/SubInPlace and value forms Add/Sub
//   - range-over-func iteration: Values, All, Cells, RowSeq
//
// ⚠️ Known gap:
//
//	The matrix product (Mul, MulInPlace, Product) is a placeholder that
//	returns the left operand unchanged. TryMul reports ErrMatrixNotImplemented.
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/fixmat/matrix"
//
//	a, _ := matrix.Filled[int, matrix.Cells2x2[int]](1)
//	b, _ := matrix.Filled[int, matrix.Cells2x2[int]](2)
//	c := matrix.Add(a, b) // every cell is 3
//
//	var m matrix.Matrix3[int]
//	m.Fill(5)
//	*m.Elem(matrix.Index{Row: 1, Col: 1}) = 9
//	m.Row(0)[2] = 7
//
// Performance:
//
//   - At/Set/Elem/Row: O(1), no allocation
//   - Fill, Add, Sub, copies: O(R·C), no allocation
//
// A single Matrix is not safe for concurrent mutation; serialize access or
// give each goroutine its own copy.
package matrix
