// SPDX-License-Identifier: MIT

// Package incidence reads and writes incidence matrices for the poset engine.
//
// The text encoding holds one row per line, cells as whitespace-separated
// "0"/"1" tokens; blank lines are ignored:
//
//	1 1 0
//	0 1 1
//	0 0 1
//
// The YAML encoding is a Document with optional element labels and the
// matrix, rows rendered in flow style:
//
//	labels: [a, b, c]
//	matrix:
//	  - [1, 1, 0]
//	  - [0, 1, 1]
//	  - [0, 0, 1]
//
// Readers reject non-numeric tokens (ErrSyntax) and numbers outside {0,1}
// (ErrNotBinary) before the matrix reaches the engine. Shape and the poset
// laws are the engine's concern and are not checked here.
package incidence
