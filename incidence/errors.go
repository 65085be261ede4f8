// SPDX-License-Identifier: MIT
package incidence

import "errors"

var (
	// ErrSyntax is returned when a token is not an integer.
	ErrSyntax = errors.New("incidence: non-numeric token")

	// ErrNotBinary is returned when a numeric token is neither 0 nor 1.
	ErrNotBinary = errors.New("incidence: token is not 0 or 1")

	// ErrEmptyDocument is returned when a YAML input holds no document.
	ErrEmptyDocument = errors.New("incidence: empty document")

	// ErrUnknownFormat is returned for an unrecognised format name.
	ErrUnknownFormat = errors.New("incidence: unknown format")
)
