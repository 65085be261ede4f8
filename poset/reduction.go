// SPDX-License-Identifier: MIT

package poset

import "github.com/katalvlaran/poset/matrix"

// Reduce returns the transitive reduction of an expanded (transitively
// closed, antisymmetric) matrix: the covering relation plus the diagonal.
//
// A cell (i,k), i≠k, is cleared when some j ∉ {i,k} has expanded[i][j] = 1
// and expanded[j][k] = 1. All reads go to the input; only the copy is
// written, so the loop order does not affect the result.
//
// Complexity: Time O(N³), Space O(N²).
func Reduce(expanded *matrix.Binary) *matrix.Binary {
	if expanded == nil {
		return nil
	}
	out := expanded.Clone()
	n := expanded.Size()

	var i, j, k int
	for i = 0; i < n; i++ {
		for k = 0; k < n; k++ {
			if i == k || !expanded.Has(i, k) {
				continue
			}
			for j = 0; j < n; j++ {
				if j == i || j == k {
					continue
				}
				if expanded.Has(i, j) && expanded.Has(j, k) {
					_ = out.Set(i, k, false) // indices bounded by n
					break
				}
			}
		}
	}

	return out
}
