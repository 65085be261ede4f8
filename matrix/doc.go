// SPDX-License-Identifier: MIT

// Package matrix provides the square 0/1 incidence buffer used by the poset
// engine.
//
// What:
//
//   - Binary: an owned N×N row-major buffer of 0/1 cells. Cell (i,j) set
//     means "element i ≤ element j".
//   - Boundary conversions (FromRows, ToRows) between the buffer and plain
//     [][]int grids, with shape and domain validation.
//   - Row kernels (OrRow, RowCount) used by closure propagation and
//     topological weighting.
//
// Why:
//
//   - A single contiguous buffer keeps one owner for all rows; rows are
//     addressed by integer index, never by reference.
//   - Row-level OR merges are the unit of work of transitive expansion.
//
// Errors:
//
//   - ErrInvalidDimensions  negative order requested
//   - ErrNonSquare          ragged or non-square [][]int input
//   - ErrNonBinary          cell value outside {0,1}
//   - ErrOutOfRange         row or column index outside [0,N)
//   - ErrNilMatrix          nil *Binary passed where a matrix is required
//
// Complexity:
//
//   - NewBinary, FromRows, ToRows, Clone, Equal, Count: O(N²)
//   - At, Set, Has: O(1)
//   - OrRow, RowCount: O(N)
package matrix
