// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic fixtures (seeded RNG, literal builders).
//   • Declare malformed shapes that compile but must be rejected at construction.

package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/fixmat/matrix"
	"github.com/stretchr/testify/require"
)

// Seeds swept by the property tests.
var seeds = []int64{1, 7, 42, 1337, 4242}

// ---------- malformed shapes ----------

// zeroRows claims 0×3 on a 3-cell array (the Go rendition of Matrix<int,0,3>).
type zeroRows[T matrix.Number] [3]T

func (zeroRows[T]) Rows() int { return 0 }
func (zeroRows[T]) Cols() int { return 3 }

// zeroCols claims 3×0.
type zeroCols[T matrix.Number] [3]T

func (zeroCols[T]) Rows() int { return 3 }
func (zeroCols[T]) Cols() int { return 0 }

// shortStorage claims 3×3 on a 4-cell array.
type shortStorage[T matrix.Number] [4]T

func (shortStorage[T]) Rows() int { return 3 }
func (shortStorage[T]) Cols() int { return 3 }

// negativeRows claims -2×-2 on a 4-cell array; the product alone would match.
type negativeRows[T matrix.Number] [4]T

func (negativeRows[T]) Rows() int { return -2 }
func (negativeRows[T]) Cols() int { return -2 }

// ---------- builders ----------

// MustFromValues builds a matrix from row-major values or fails the test.
func MustFromValues[T matrix.Number, S matrix.Shape[T]](t *testing.T, vals ...T) matrix.Matrix[T, S] {
	t.Helper()
	m, err := matrix.FromValues[T, S](vals...)
	require.NoError(t, err)

	return m
}

// MustFilled builds a matrix with every cell set to v or fails the test.
func MustFilled[T matrix.Number, S matrix.Shape[T]](t *testing.T, v T) matrix.Matrix[T, S] {
	t.Helper()
	m, err := matrix.Filled[T, S](v)
	require.NoError(t, err)

	return m
}

// RandInts returns a matrix filled with deterministic values in [-100, 100].
func RandInts[S matrix.Shape[int]](seed int64) matrix.Matrix[int, S] {
	var m matrix.Matrix[int, S]
	rng := rand.New(rand.NewSource(seed))
	data := m.Data()
	for i := range data {
		data[i] = rng.Intn(201) - 100
	}

	return m
}

// RandFloats returns a matrix filled with deterministic U(-1,1) values.
func RandFloats[S matrix.Shape[float64]](seed int64) matrix.Matrix[float64, S] {
	var m matrix.Matrix[float64, S]
	rng := rand.New(rand.NewSource(seed))
	data := m.Data()
	for i := range data {
		data[i] = rng.Float64()*2 - 1
	}

	return m
}

// ---------- assertions ----------

// RequireAll asserts every cell of m equals want.
func RequireAll[T matrix.Number, S matrix.Shape[T]](t *testing.T, m *matrix.Matrix[T, S], want T) {
	t.Helper()
	for ix, v := range m.All() {
		require.Equalf(t, want, v, "cell (%d,%d)", ix.Row, ix.Col)
	}
}

// RequireCells asserts m matches a row-major literal.
func RequireCells[T matrix.Number, S matrix.Shape[T]](t *testing.T, m *matrix.Matrix[T, S], want ...T) {
	t.Helper()
	require.Len(t, want, m.Len(), "literal length")
	for ix, v := range m.All() {
		require.Equalf(t, want[ix.Row*m.Cols()+ix.Col], v, "cell (%d,%d)", ix.Row, ix.Col)
	}
}
