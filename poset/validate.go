// SPDX-License-Identifier: MIT
// Package: poset
//
// Purpose:
//  - Check the poset laws on a raw [][]int relation before any derived
//    structure is built.
//  - Re-check antisymmetry after closure and report ErrInvalidPoset.
//
// Note:
//  - Checks run in a fixed sequence (Shape -> Domain -> Reflexivity ->
//    Antisymmetry); the first violation aborts, nothing is accumulated.

package poset

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/poset/matrix"
)

// Validate checks that rows encodes a reflexive, antisymmetric binary relation.
//
// Errors (in priority order): ErrShape, ErrDomain, ErrReflexivity, ErrAntisymmetry.
// Shape and domain errors also match the underlying matrix.ErrNonSquare /
// matrix.ErrNonBinary sentinels.
// Complexity: O(N²).
func Validate(rows [][]int) error {
	_, err := validate(opValidate, rows)

	return err
}

// ValidateLabeled is Validate with label checks folded into the shape stage:
// the label count must equal the matrix order and labels must be unique.
//
// Errors (in priority order): ErrShape, ErrDomain, ErrReflexivity, ErrAntisymmetry.
// Complexity: O(N²).
func ValidateLabeled[L comparable](labels []L, rows [][]int) error {
	if _, err := indexLabels(opValidateLabeled, labels, rows); err != nil {
		return err
	}
	_, err := validate(opValidateLabeled, rows)

	return err
}

// CheckExpanded re-runs the antisymmetry check on an expanded matrix.
// Shape, domain and reflexivity cannot be broken by closure, so only
// antisymmetry is meaningful here.
//
// Errors: ErrShape for a nil matrix, ErrInvalidPoset when a symmetric pair exists.
// Complexity: O(N²).
func CheckExpanded(expanded *matrix.Binary) error {
	if err := matrix.ValidateNotNil(expanded); err != nil {
		return posetWrapf(opCheckExpanded, ErrShape, err)
	}
	if i, j, ok := symmetricPair(expanded); ok {
		return posetErrorf(opCheckExpanded, ErrInvalidPoset,
			fmt.Sprintf("elements %d and %d become mutually related", i, j))
	}

	return nil
}

// validate runs the full fail-fast pipeline and returns the owned buffer on success.
func validate(op string, rows [][]int) (*matrix.Binary, error) {
	// 1. Shape.
	if err := matrix.ValidateSquareRows(rows); err != nil {
		return nil, posetWrapf(op, ErrShape, err)
	}

	// 2. Domain. FromRows repeats the shape check, which already passed.
	m, err := matrix.FromRows(rows)
	if err != nil {
		if errors.Is(err, matrix.ErrNonBinary) {
			return nil, posetWrapf(op, ErrDomain, err)
		}
		return nil, posetWrapf(op, ErrShape, err)
	}

	// 3+4. Laws.
	if err = checkLaws(op, m); err != nil {
		return nil, err
	}

	return m, nil
}

// checkLaws verifies reflexivity over the whole diagonal, then antisymmetry.
func checkLaws(op string, m *matrix.Binary) error {
	n := m.Size()
	for i := 0; i < n; i++ {
		if !m.Has(i, i) {
			return posetErrorf(op, ErrReflexivity, fmt.Sprintf("cell (%d,%d) is 0", i, i))
		}
	}
	if i, j, ok := symmetricPair(m); ok {
		return posetErrorf(op, ErrAntisymmetry, fmt.Sprintf("cells (%d,%d) and (%d,%d) are both 1", i, j, j, i))
	}

	return nil
}

// symmetricPair returns the first (i,j), i<j, with both m[i][j] and m[j][i] set.
// Scans the strict upper triangle in row order.
func symmetricPair(m *matrix.Binary) (int, int, bool) {
	n := m.Size()
	var i, j int
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			if m.Has(i, j) && m.Has(j, i) {
				return i, j, true
			}
		}
	}

	return 0, 0, false
}

// indexLabels runs the shape stage for labelled input and returns the
// label -> index bijection.
func indexLabels[L comparable](op string, labels []L, rows [][]int) (map[L]int, error) {
	if err := matrix.ValidateSquareRows(rows); err != nil {
		return nil, posetWrapf(op, ErrShape, err)
	}
	if len(labels) != len(rows) {
		return nil, posetErrorf(op, ErrShape,
			fmt.Sprintf("%d labels for a %dx%d matrix", len(labels), len(rows), len(rows)))
	}

	index := make(map[L]int, len(labels))
	for i, l := range labels {
		if prev, dup := index[l]; dup {
			return nil, posetErrorf(op, ErrShape,
				fmt.Sprintf("duplicate label %v at positions %d and %d", l, prev, i))
		}
		index[l] = i
	}

	return index, nil
}
