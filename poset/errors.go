// SPDX-License-Identifier: MIT
// Package poset: sentinel error set.
// Every construction failure is one of these sentinels, wrapped with the
// operation tag and, where available, the underlying matrix sentinel and the
// offending cell. Callers match with errors.Is.

package poset

import (
	"errors"
	"fmt"
)

// ERROR PRIORITY (fail-fast, first violation wins):
// shape -> domain -> reflexivity -> antisymmetry -> invalid poset (post-closure).

var (
	// ErrShape is returned when the matrix is not square, when the label count
	// differs from the matrix order, or when labels contain a duplicate.
	ErrShape = errors.New("poset: invalid shape")

	// ErrDomain is returned when a cell value lies outside {0,1}.
	ErrDomain = errors.New("poset: cell outside {0,1}")

	// ErrReflexivity is returned when a diagonal cell is not 1.
	ErrReflexivity = errors.New("poset: reflexivity violated")

	// ErrAntisymmetry is returned when the input itself holds both (i,j) and (j,i) for i≠j.
	ErrAntisymmetry = errors.New("poset: antisymmetry violated")

	// ErrInvalidPoset is returned when antisymmetry only breaks after transitive
	// expansion: the supplied relation cannot be completed into a partial order.
	ErrInvalidPoset = errors.New("poset: relation has no valid transitive expansion")
)

// Operation tags used in error wrapping.
const (
	opValidate        = "Validate"
	opValidateLabeled = "ValidateLabeled"
	opCheckExpanded   = "CheckExpanded"
	opNew             = "New"
	opNewLabeled      = "NewLabeled"
)

// posetErrorf wraps a poset sentinel with an operation tag and optional detail.
func posetErrorf(op string, sentinel error, detail string) error {
	if detail == "" {
		return fmt.Errorf("%s: %w", op, sentinel)
	}

	return fmt.Errorf("%s: %w: %s", op, sentinel, detail)
}

// posetWrapf wraps a poset sentinel together with the underlying cause so that
// errors.Is matches both.
func posetWrapf(op string, sentinel, cause error) error {
	return fmt.Errorf("%s: %w: %w", op, sentinel, cause)
}
