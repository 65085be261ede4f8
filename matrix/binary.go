// SPDX-License-Identifier: MIT

// Package matrix - Binary storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide one owned N×N buffer with the explicit index formula i*n + j.
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//   - Keep algorithmic determinism (fixed loop orders, no map iteration).
//
// Complexity quicksheet:
//   - NewBinary: O(N²) zero-init; At/Set/Has: O(1); OrRow/RowCount: O(N); Clone/Equal/Count: O(N²).

package matrix

import (
	"bytes"
	"fmt"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxAt       = "At"
	ctxSet      = "Set"
	ctxOrRow    = "OrRow"
	ctxRowCount = "RowCount"
	ctxFromRows = "FromRows"
	ctxNew      = "NewBinary"
)

// Binary is a square row-major 0/1 matrix.
//   - n holds the order (rows == cols == n, n >= 0).
//   - data is a flat buffer of length n*n in row-major order (offset = i*n + j).
type Binary struct {
	n    int     // order of the matrix
	data []uint8 // contiguous row-major storage (len == n*n), cells are off/on
}

var _ fmt.Stringer = (*Binary)(nil)

// NewBinary creates an n×n zero matrix.
// A 0×0 matrix is legal and represents the empty relation.
//
// Errors: ErrInvalidDimensions when n < 0.
// Complexity: Time O(n²), Space O(n²).
func NewBinary(n int) (*Binary, error) {
	if n < 0 {
		return nil, matrixErrorf(ctxNew, ErrInvalidDimensions)
	}

	return &Binary{n: n, data: make([]uint8, n*n)}, nil
}

// Identity returns the n×n matrix with only the diagonal set.
// Errors: ErrInvalidDimensions when n < 0.
func Identity(n int) (*Binary, error) {
	m, err := NewBinary(n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		m.data[i*n+i] = on
	}

	return m, nil
}

// FromRows copies a [][]int grid into a fresh Binary.
//
// Implementation:
//   - Stage 1: shape check over every row (ErrNonSquare).
//   - Stage 2: domain check over every cell (ErrNonBinary).
//   - Stage 3: copy into the flat buffer.
//
// The input is never retained; later mutation of rows has no effect.
// Complexity: Time O(N²), Space O(N²).
func FromRows(rows [][]int) (*Binary, error) {
	// Stage 1+2: validate in the documented priority order.
	if err := ValidateSquareBinaryRows(rows); err != nil {
		return nil, matrixErrorf(ctxFromRows, err)
	}

	// Stage 3: copy cells row by row.
	n := len(rows)
	m := &Binary{n: n, data: make([]uint8, n*n)}
	var i, j, base int
	for i = 0; i < n; i++ {
		base = i * n
		for j = 0; j < n; j++ {
			if rows[i][j] == One {
				m.data[base+j] = on
			}
		}
	}

	return m, nil
}

// Size returns the order N of the matrix.
// Complexity: O(1).
func (m *Binary) Size() int {
	return m.n
}

// indexOf computes the flat index for (row, col) or returns ErrOutOfRange.
func (m *Binary) indexOf(method string, row, col int) (int, error) {
	if row < 0 || row >= m.n || col < 0 || col >= m.n {
		return 0, binaryErrorf(method, row, col, ErrOutOfRange)
	}

	return row*m.n + col, nil
}

// At reports whether cell (row, col) is set.
// Errors: ErrOutOfRange on invalid indices.
// Complexity: O(1).
func (m *Binary) At(row, col int) (bool, error) {
	idx, err := m.indexOf(ctxAt, row, col)
	if err != nil {
		return false, err
	}

	return m.data[idx] == on, nil
}

// Has reports whether cell (row, col) is set; out-of-range indices read as unset.
// Intended for hot loops whose indices are already bounded by Size.
// Complexity: O(1).
func (m *Binary) Has(row, col int) bool {
	if row < 0 || row >= m.n || col < 0 || col >= m.n {
		return false
	}

	return m.data[row*m.n+col] == on
}

// Set assigns cell (row, col).
// Errors: ErrOutOfRange on invalid indices.
// Complexity: O(1).
func (m *Binary) Set(row, col int, v bool) error {
	idx, err := m.indexOf(ctxSet, row, col)
	if err != nil {
		return err
	}
	if v {
		m.data[idx] = on
	} else {
		m.data[idx] = off
	}

	return nil
}

// OrRow merges row src into row dst (dst |= src) and reports whether any
// cell of dst flipped from 0 to 1. Cells only ever go 0 -> 1.
//
// Errors: ErrOutOfRange when either row index is invalid.
// Complexity: O(N).
func (m *Binary) OrRow(dst, src int) (bool, error) {
	if dst < 0 || dst >= m.n || src < 0 || src >= m.n {
		return false, binaryErrorf(ctxOrRow, dst, src, ErrOutOfRange)
	}

	to := m.data[dst*m.n : (dst+1)*m.n]
	from := m.data[src*m.n : (src+1)*m.n]
	changed := false
	for j, v := range from {
		if v == on && to[j] == off {
			to[j] = on
			changed = true
		}
	}

	return changed, nil
}

// RowCount returns the number of set cells in row i.
// Errors: ErrOutOfRange on an invalid row.
// Complexity: O(N).
func (m *Binary) RowCount(i int) (int, error) {
	if i < 0 || i >= m.n {
		return 0, binaryErrorf(ctxRowCount, i, 0, ErrOutOfRange)
	}

	count := 0
	for _, v := range m.data[i*m.n : (i+1)*m.n] {
		count += int(v)
	}

	return count, nil
}

// Count returns the number of set cells in the whole matrix.
// Complexity: O(N²).
func (m *Binary) Count() int {
	count := 0
	for _, v := range m.data {
		count += int(v)
	}

	return count
}

// Clone returns a deep copy; the copy shares no storage with m.
// Complexity: O(N²).
func (m *Binary) Clone() *Binary {
	data := make([]uint8, len(m.data))
	copy(data, m.data)

	return &Binary{n: m.n, data: data}
}

// Equal reports whether m and other have the same order and cells.
// Two nil matrices are equal; a nil and a non-nil matrix are not.
// Complexity: O(N²).
func (m *Binary) Equal(other *Binary) bool {
	if m == nil || other == nil {
		return m == other
	}

	return m.n == other.n && bytes.Equal(m.data, other.data)
}

// Contains reports whether every cell set in other is also set in m.
//
// Errors: ErrNilMatrix, ErrNonSquare when the orders differ.
// Complexity: O(N²).
func (m *Binary) Contains(other *Binary) (bool, error) {
	if err := ValidateSameOrder(m, other); err != nil {
		return false, fmt.Errorf("Binary.Contains: %w", err)
	}
	for k, v := range other.data {
		if v == on && m.data[k] == off {
			return false, nil
		}
	}

	return true, nil
}

// Bytes returns a copy of the row-major buffer, one byte (0 or 1) per cell.
// Complexity: O(N²).
func (m *Binary) Bytes() []byte {
	out := make([]byte, len(m.data))
	copy(out, m.data)

	return out
}

// ToRows returns an owned [][]int copy of the matrix.
// Complexity: O(N²).
func (m *Binary) ToRows() [][]int {
	rows := make([][]int, m.n)
	var i, j int
	for i = 0; i < m.n; i++ {
		row := make([]int, m.n)
		for j = 0; j < m.n; j++ {
			row[j] = int(m.data[i*m.n+j])
		}
		rows[i] = row
	}

	return rows
}

// String renders the matrix as rows of space-separated digits, one row per line.
func (m *Binary) String() string {
	var sb strings.Builder
	sb.Grow(m.n * (2*m.n + 1))
	var i, j int
	for i = 0; i < m.n; i++ {
		for j = 0; j < m.n; j++ {
			if j > 0 {
				sb.WriteString(_fmtSep)
			}
			sb.WriteByte('0' + m.data[i*m.n+j])
		}
		sb.WriteString(_fmtRowStop)
	}

	return sb.String()
}
