// SPDX-License-Identifier: MIT

// Package poset validates and derives partial orders encoded as 0/1
// incidence matrices.
//
// What:
//
//   - Validate: shape, domain, reflexivity and antisymmetry checks, fail-fast.
//   - Expand: transitive closure by propagating rows along reverse edges
//     through a work-list until nothing changes.
//   - CheckExpanded: post-closure antisymmetry check (ErrInvalidPoset).
//   - Reduce: transitive reduction (covering relation plus the diagonal).
//   - TopologicalOrder: indices sorted by descending row weight, ties by index.
//   - Poset: the immutable aggregate built by New.
//   - Labeled[L]: a Poset whose elements carry unique labels.
//
// Cell (i,j) = 1 means element i ≤ element j. For the reduction
//
//	1 1 0 0
//	0 1 1 0
//	0 0 1 0
//	1 0 0 1
//
// New produces the expansion
//
//	1 1 1 0
//	0 1 1 0
//	0 0 1 0
//	1 1 1 1
//
// with 10 expanded relations, 7 reduced relations and topological order
// [3 0 1 2].
//
// Errors:
//
//   - ErrShape         non-square matrix, label count ≠ N, duplicate label
//   - ErrDomain        cell outside {0,1}
//   - ErrReflexivity   diagonal cell is 0
//   - ErrAntisymmetry  (i,j) and (j,i) both set in the input
//   - ErrInvalidPoset  antisymmetry broken only after transitive expansion
//
// Complexity:
//
//   - New:              Time O(N³), Memory O(N²)
//   - Expand, Reduce:   Time O(N³)
//   - TopologicalOrder: Time O(N² + N log N)
//
// Concurrency: every function is pure and a *Poset is never mutated after
// New returns, so values may be shared across goroutines without locking.
package poset
