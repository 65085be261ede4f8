// SPDX-License-Identifier: MIT
// Package: poset
//
// Purpose:
//   - Transitive expansion (closure) of a reflexive 0/1 relation by
//     reachability propagation along reverse edges.
//
// Contract:
//   - Input is square; the input buffer is never mutated.
//   - The result may still violate antisymmetry; callers run CheckExpanded.

package poset

import "github.com/katalvlaran/poset/matrix"

// Expand returns the transitive closure of m.
//
// Implementation:
//   - Stage 1: build dependents[j] = { i : m[i][j] = 1, i ≠ j }, the rows that
//     reach row j directly.
//   - Stage 2: seed a work-list with every row index.
//   - Stage 3: pop j, OR row j into each dependent; any dependent that gained
//     a bit and is not already queued is pushed again.
//
// At the fixpoint row(i) ⊇ row(j) for every direct edge i→j, so every row
// holds exactly the indices reachable from it. OR is monotone and
// commutative, so the result does not depend on processing order.
//
// Complexity: at most N² bit flips, each cascading over ≤ N dependents of
// O(N) merges: Time O(N³), Space O(N²) for the dependents lists.
func Expand(m *matrix.Binary) *matrix.Binary {
	if m == nil {
		return nil
	}
	out := m.Clone()
	n := out.Size()

	// Stage 1: reverse adjacency, built once from the input relation.
	dependents := make([][]int, n)
	var i, j int
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			if i != j && out.Has(i, j) {
				dependents[j] = append(dependents[j], i)
			}
		}
	}

	// Stage 2: every row starts dirty.
	queue := make([]int, n)
	queued := make([]bool, n)
	for i = 0; i < n; i++ {
		queue[i] = i
		queued[i] = true
	}

	// Stage 3: propagate until no row changes.
	for len(queue) > 0 {
		j = queue[0]
		queue = queue[1:]
		queued[j] = false

		for _, dep := range dependents[j] {
			changed, _ := out.OrRow(dep, j) // indices bounded by n
			if changed && !queued[dep] {
				queue = append(queue, dep)
				queued[dep] = true
			}
		}
	}

	return out
}
