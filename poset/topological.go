// SPDX-License-Identifier: MIT

package poset

import (
	"sort"

	"github.com/katalvlaran/poset/matrix"
)

// TopologicalOrder returns the element indices of an expanded matrix ordered
// so that no element precedes one it is greater than.
//
// Each row is weighted by its number of set cells (how many elements it is ≤
// to, itself included). Indices are sorted by descending weight; ties keep
// ascending index order. If a ≤ b with a ≠ b then row(a) ⊋ row(b) by
// transitivity and antisymmetry, so weight(a) > weight(b) and a comes first.
// Equal weights only occur between incomparable elements.
//
// Complexity: Time O(N² + N log N), Space O(N).
func TopologicalOrder(expanded *matrix.Binary) []int {
	if expanded == nil {
		return nil
	}
	n := expanded.Size()

	order := make([]int, n)
	weight := make([]int, n)
	for i := 0; i < n; i++ {
		order[i] = i
		weight[i], _ = expanded.RowCount(i) // i bounded by n
	}

	sort.SliceStable(order, func(a, b int) bool {
		return weight[order[a]] > weight[order[b]]
	})

	return order
}
