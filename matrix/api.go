// SPDX-License-Identifier: MIT
// Package matrix — public API facades.
//
// Purpose:
//   - Name the common square shapes once (Matrix2..Matrix5).
//   - Provide intention-revealing aliases that delegate to the canonical kernels.
//   - Avoid any logic duplication — each facade is a one-line forward.

package matrix

// ---------- Shape aliases ----------

// Matrix2 is a 2×2 matrix of T.
type Matrix2[T Number] = Matrix[T, Cells2x2[T]]

// Matrix3 is a 3×3 matrix of T.
type Matrix3[T Number] = Matrix[T, Cells3x3[T]]

// Matrix4 is a 4×4 matrix of T.
type Matrix4[T Number] = Matrix[T, Cells4x4[T]]

// Matrix5 is a 5×5 matrix of T.
type Matrix5[T Number] = Matrix[T, Cells5x5[T]]

// ---------- Arithmetic aliases (O(R*C)) ----------

// Sum is an alias for Add: element-wise a + b.
func Sum[T Number, S Shape[T]](a, b Matrix[T, S]) Matrix[T, S] { return Add(a, b) }

// Diff is an alias for Sub: element-wise a − b.
func Diff[T Number, S Shape[T]](a, b Matrix[T, S]) Matrix[T, S] { return Sub(a, b) }

// Product is an alias for Mul. Placeholder: returns a unchanged.
func Product[T Number, S Shape[T]](a, b Matrix[T, S]) Matrix[T, S] { return Mul(a, b) }

// ---------- Constructors ----------

// NewZeros returns a validated zero matrix. Thin alias of New.
func NewZeros[T Number, S Shape[T]]() (Matrix[T, S], error) { return New[T, S]() }

// ZerosLike returns the zero matrix of m's type.
func ZerosLike[T Number, S Shape[T]](m *Matrix[T, S]) Matrix[T, S] {
	return Matrix[T, S]{}
}

// CloneMatrix returns an independent copy of m. Thin wrapper over Clone.
func CloneMatrix[T Number, S Shape[T]](m *Matrix[T, S]) Matrix[T, S] { return m.Clone() }
