// SPDX-License-Identifier: MIT

package poset

import (
	"encoding/binary"
	"fmt"
	"iter"

	"github.com/cespare/xxhash/v2"
)

// Labeled is a Poset whose elements carry unique labels of type L.
// Label i names row/column i of the incidence matrix. All order results are
// computed on indices by the underlying Poset and mapped through the
// index <-> label bijection.
type Labeled[L comparable] struct {
	poset  *Poset
	labels []L
	index  map[L]int
}

// NewLabeled validates labels and rows and builds the labelled poset.
// Both inputs are copied.
//
// Errors: ErrShape (non-square matrix, label count ≠ N, duplicate label),
// then ErrDomain, ErrReflexivity, ErrAntisymmetry, ErrInvalidPoset.
func NewLabeled[L comparable](labels []L, rows [][]int) (*Labeled[L], error) {
	index, err := indexLabels(opNewLabeled, labels, rows)
	if err != nil {
		return nil, err
	}
	m, err := validate(opNewLabeled, rows)
	if err != nil {
		return nil, err
	}
	p, err := fromValidated(m)
	if err != nil {
		return nil, err
	}

	own := make([]L, len(labels))
	copy(own, labels)

	return &Labeled[L]{poset: p, labels: own, index: index}, nil
}

// Poset returns the index-level poset. It is immutable and safe to share.
func (l *Labeled[L]) Poset() *Poset {
	return l.poset
}

// Len returns the number of elements.
func (l *Labeled[L]) Len() int {
	return len(l.labels)
}

// Labels returns a copy of the labels in index order.
func (l *Labeled[L]) Labels() []L {
	out := make([]L, len(l.labels))
	copy(out, l.labels)

	return out
}

// Label returns the label at index i.
func (l *Labeled[L]) Label(i int) (L, bool) {
	if i < 0 || i >= len(l.labels) {
		var zero L
		return zero, false
	}

	return l.labels[i], true
}

// Index returns the index of label v.
func (l *Labeled[L]) Index(v L) (int, bool) {
	i, ok := l.index[v]

	return i, ok
}

// TopologicalOrder returns the labels in topological order.
func (l *Labeled[L]) TopologicalOrder() []L {
	out := make([]L, len(l.poset.order))
	for k, i := range l.poset.order {
		out[k] = l.labels[i]
	}

	return out
}

// All yields the labels in topological order.
func (l *Labeled[L]) All() iter.Seq[L] {
	return func(yield func(L) bool) {
		for _, i := range l.poset.order {
			if !yield(l.labels[i]) {
				return
			}
		}
	}
}

// LessOrEqual reports whether a ≤ b. Unknown labels report false.
func (l *Labeled[L]) LessOrEqual(a, b L) bool {
	i, okA := l.index[a]
	j, okB := l.index[b]

	return okA && okB && l.poset.LessOrEqual(i, j)
}

// Covers reports whether b covers a. Unknown labels report false.
func (l *Labeled[L]) Covers(a, b L) bool {
	i, okA := l.index[a]
	j, okB := l.index[b]

	return okA && okB && l.poset.Covers(i, j)
}

// ExpandedRelations returns an owned copy of the transitive closure.
func (l *Labeled[L]) ExpandedRelations() [][]int {
	return l.poset.ExpandedRelations()
}

// ReducedRelations returns an owned copy of the transitive reduction.
func (l *Labeled[L]) ReducedRelations() [][]int {
	return l.poset.ReducedRelations()
}

// RelationCount returns the number of set cells in the selected relation.
func (l *Labeled[L]) RelationCount(mode Mode) int {
	return l.poset.RelationCount(mode)
}

// Equal reports whether both hold the same set of labels, in any index order,
// and the same index-level transitive closure.
func (l *Labeled[L]) Equal(other *Labeled[L]) bool {
	if l == nil || other == nil {
		return l == other
	}
	if len(l.labels) != len(other.labels) {
		return false
	}
	for _, v := range l.labels {
		if _, ok := other.index[v]; !ok {
			return false
		}
	}

	return l.poset.Equal(other.poset)
}

// Hash returns a 64-bit digest of the label set (by each label's %v form) and
// the transitive closure. Per-label digests are summed, so the label order
// does not change the result. Equal values hash equally.
func (l *Labeled[L]) Hash() uint64 {
	var set uint64
	for _, v := range l.labels {
		set += xxhash.Sum64String(fmt.Sprint(v))
	}

	d := xxhash.New()
	_, _ = d.Write(binary.LittleEndian.AppendUint64(nil, set))
	_, _ = d.Write(l.poset.expanded.Bytes())

	return d.Sum64()
}

// String renders the labels in index order followed by the transitive closure.
func (l *Labeled[L]) String() string {
	return fmt.Sprintln(l.labels) + l.poset.String()
}
