// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single source of truth for shape and domain checks on [][]int
//    grids before they are copied into a Binary buffer.
//  - Return sentinel errors wrapped with a validator tag so call sites can
//    match them with errors.Is.
//
// Determinism & Performance:
//  - All checks are pure, deterministic and allocate nothing beyond the error.
//  - Rows are scanned in ascending order; the first violation wins.
//
// Note:
//  - Composite validators follow a fixed sequence (Square -> Binary).

package matrix

import "fmt"

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures the matrix reference is non-nil.
//
// Returns ErrNilMatrix if m == nil.
// Complexity: O(1).
func ValidateNotNil(m *Binary) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateSquareRows checks that every row of rows has exactly len(rows) cells.
// A nil or empty grid is a legal 0×0 matrix.
//
// Errors: ErrNonSquare (wrapped with the offending row and its length).
// Complexity: O(N).
func ValidateSquareRows(rows [][]int) error {
	n := len(rows)
	for i, row := range rows {
		if len(row) != n {
			return validatorErrorf("ValidateSquareRows",
				fmt.Errorf("row %d has %d cells, want %d: %w", i, len(row), n, ErrNonSquare))
		}
	}

	return nil
}

// ValidateBinaryRows checks that every cell of rows is Zero or One.
//
// Implementation: assumes nothing about shape; ragged rows are scanned as-is.
// Errors: ErrNonBinary (wrapped with the offending cell).
// Complexity: O(N²).
func ValidateBinaryRows(rows [][]int) error {
	var i, j int
	for i = 0; i < len(rows); i++ {
		for j = 0; j < len(rows[i]); j++ {
			if v := rows[i][j]; v != Zero && v != One {
				return validatorErrorf("ValidateBinaryRows",
					fmt.Errorf("cell (%d,%d) = %d: %w", i, j, v, ErrNonBinary))
			}
		}
	}

	return nil
}

// ValidateSquareBinaryRows is the composite Square -> Binary check.
//
// Errors: ErrNonSquare, ErrNonBinary.
// Complexity: O(N²).
func ValidateSquareBinaryRows(rows [][]int) error {
	if err := ValidateSquareRows(rows); err != nil {
		return err
	}

	return ValidateBinaryRows(rows)
}

// ValidateSameOrder ensures a and b are non-nil and have the same order.
//
// Errors: ErrNilMatrix, ErrNonSquare.
// Complexity: O(1).
func ValidateSameOrder(a, b *Binary) error {
	if err := ValidateNotNil(a); err != nil {
		return validatorErrorf("ValidateSameOrder", err)
	}
	if err := ValidateNotNil(b); err != nil {
		return validatorErrorf("ValidateSameOrder", err)
	}
	if a.n != b.n {
		return validatorErrorf("ValidateSameOrder",
			fmt.Errorf("order %d vs %d: %w", a.n, b.n, ErrNonSquare))
	}

	return nil
}
