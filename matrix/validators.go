// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Provide the single source of truth for shape and index checks.
//   - Return plain sentinel errors (no wrapping) so call sites can wrap uniformly.
//
// Determinism & Performance:
//   - All checks are pure, deterministic and allocate nothing.
//   - Unchecked accessors never call into this file.

package matrix

// ValidateShape ensures the shape type S describes a non-empty grid whose
// storage length equals Rows()*Cols().
//
// Returns ErrInvalidDimensions otherwise.
// Complexity: O(1).
func ValidateShape[T Number, S Shape[T]]() error {
	var s S
	rows, cols := s.Rows(), s.Cols()
	if rows <= 0 || cols <= 0 {
		return ErrInvalidDimensions
	}
	// Storage must hold exactly R*C cells; a shorter or longer array would
	// break the row-major offset formula.
	if rows*cols != len(s) {
		return ErrInvalidDimensions
	}

	return nil
}

// ValidateIndex ensures 0 <= row < rows and 0 <= col < cols.
// Returns ErrOutOfRange otherwise.
func ValidateIndex(row, col, rows, cols int) error {
	if row < 0 || row >= rows {
		return ErrOutOfRange
	}
	if col < 0 || col >= cols {
		return ErrOutOfRange
	}

	return nil
}

// ValidateLen ensures a row-major value list has exactly n entries.
// Returns ErrDimensionMismatch otherwise.
func ValidateLen(got, n int) error {
	if got != n {
		return ErrDimensionMismatch
	}

	return nil
}
