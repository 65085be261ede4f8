// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// All constructors and accessors return these sentinels (possibly wrapped
// with fmt.Errorf("ctx: %w", ErrX)); tests match them via errors.Is.

package matrix

import (
	"errors"
	"fmt"
)

// ERROR PRIORITY (enforced in FromRows and its tests):
// nil/shape -> domain. Every row is checked for length before any cell value
// is inspected, so a ragged matrix with bad values reports ErrNonSquare.

var (
	// ErrInvalidDimensions indicates that a negative order was requested.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be >= 0")

	// ErrNonSquare signals that a square matrix was required but the input wasn't.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrNonBinary signals a cell value outside {0,1}.
	ErrNonBinary = errors.New("matrix: non-binary cell")

	// ErrOutOfRange indicates that an index (row or column) is outside valid bounds.
	// Public indexers (At/Set) return this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrNilMatrix indicates that a nil *Binary was used.
	ErrNilMatrix = errors.New("matrix: nil receiver")
)

// matrixErrorf wraps err with an operation tag.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// binaryErrorf wraps an error with a uniform Binary context and callsite indices.
func binaryErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Binary.%s(%d,%d): %w", method, row, col, err)
}
