// Package matrix provides the element-wise arithmetic on Matrix: in-place
// compound forms (AddInPlace, SubInPlace) and value forms (Add, Sub).
// Operands always share one Matrix[T, S] type, so a shape mismatch cannot
// reach these functions. The matrix product is a placeholder.
package matrix

// plus and minus are the element operators fed to the ew kernel.
func plus[T Number](a, b T) T { return a + b }
func minus[T Number](a, b T) T { return a - b }

// ew applies dst[i] = op(dst[i], rhs[i]) over the flat row-major storage.
// Equivalent to the i→j double loop since both operands share the layout.
// rhs may alias m.
func (m *Matrix[T, S]) ew(rhs *Matrix[T, S], op func(a, b T) T) {
	n := len(m.cells)
	for idx := 0; idx < n; idx++ {
		m.cells[idx] = op(m.cells[idx], rhs.cells[idx])
	}
}

// AddInPlace performs m[r][c] = m[r][c] + rhs[r][c] for every cell and returns m.
// Complexity: O(R*C).
func (m *Matrix[T, S]) AddInPlace(rhs *Matrix[T, S]) *Matrix[T, S] {
	m.ew(rhs, plus[T])
	return m
}

// SubInPlace performs m[r][c] = m[r][c] - rhs[r][c] for every cell and returns m.
// Complexity: O(R*C).
func (m *Matrix[T, S]) SubInPlace(rhs *Matrix[T, S]) *Matrix[T, S] {
	m.ew(rhs, minus[T])
	return m
}

// MulInPlace is the placeholder for the matrix product and returns m unchanged.
//
// Known gap: no multiplication algorithm is implemented, rhs is ignored.
// TryMul reports the gap as ErrMatrixNotImplemented.
func (m *Matrix[T, S]) MulInPlace(rhs *Matrix[T, S]) *Matrix[T, S] {
	return m
}

// Add returns a + b element-wise. a and b are copies; neither caller value changes.
func Add[T Number, S Shape[T]](a, b Matrix[T, S]) Matrix[T, S] {
	a.AddInPlace(&b)
	return a
}

// Sub returns a - b element-wise.
func Sub[T Number, S Shape[T]](a, b Matrix[T, S]) Matrix[T, S] {
	a.SubInPlace(&b)
	return a
}

// Mul returns a copy of a unchanged (placeholder, see MulInPlace).
func Mul[T Number, S Shape[T]](a, b Matrix[T, S]) Matrix[T, S] {
	a.MulInPlace(&b)
	return a
}

// TryMul is Mul with the gap made explicit: it returns a copy of a together
// with ErrMatrixNotImplemented.
func TryMul[T Number, S Shape[T]](a, b Matrix[T, S]) (Matrix[T, S], error) {
	return Mul(a, b), matrixErrorf(opMul, ErrMatrixNotImplemented)
}

// Equal reports whether a and b hold identical values in every cell.
// Complexity: O(R*C), stops at the first difference.
func Equal[T Number, S Shape[T]](a, b *Matrix[T, S]) bool {
	n := len(a.cells)
	for idx := 0; idx < n; idx++ {
		if a.cells[idx] != b.cells[idx] {
			return false
		}
	}

	return true
}
