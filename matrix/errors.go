// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors. Checked entry points
// return these sentinels (wrapped with call-site context) and tests match them
// via errors.Is. Unchecked accessors never return errors.

package matrix

import (
	"errors"
	"fmt"
)

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency and to allow
// easy grepping across logs. Call sites wrap with matrixErrorf/accessErrorf,
// callers still match with errors.Is.
//
// ERROR PRIORITY (enforced in tests):
// shape -> dimension mismatch -> index -> not implemented.

var (
	// ErrInvalidDimensions indicates a shape type whose Rows()/Cols() are not
	// positive or whose Rows()*Cols() does not match its storage length.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrDimensionMismatch indicates that a value list does not have exactly
	// Rows()*Cols() elements.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrOutOfRange indicates that a row or column index is outside valid bounds.
	// Only the Try* accessors report it; At/Set/Row/Elem are unchecked.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrMatrixNotImplemented marks the matrix product, which is a placeholder.
	ErrMatrixNotImplemented = errors.New("matrix: operation not implemented")
)

// ---------- error context tags ----------

const (
	opNew        = "New"
	opFilled     = "Filled"
	opFromValues = "FromValues"
	opMul        = "Mul"

	ctxAt   = "At"
	ctxSet  = "Set"
	ctxRow  = "Row"
	ctxElem = "Elem"
)

// matrixErrorf wraps an underlying error with the given operation tag.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// accessErrorf wraps an error with the accessor name and the offending coordinates.
//
// Format: "Matrix.<method>(row,col): <sentinel>". Sentinel preserved via %w.
func accessErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Matrix.%s(%d,%d): %w", method, row, col, err)
}
