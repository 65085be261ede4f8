// SPDX-License-Identifier: MIT

// Package matrix: cell literals shared by the buffer and its conversions.
package matrix

// Cell values as they appear at the [][]int boundary.
const (
	Zero = 0 // element i is not ≤ element j
	One  = 1 // element i ≤ element j
)

// cell literals inside the flat buffer.
const (
	off uint8 = 0
	on  uint8 = 1
)

// Formatting literals used by String.
const (
	_fmtSep     = " "
	_fmtRowStop = "\n"
)
