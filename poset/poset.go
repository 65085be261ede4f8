// SPDX-License-Identifier: MIT

package poset

import (
	"strings"

	"github.com/cespare/xxhash/v2"

	"github.com/katalvlaran/poset/matrix"
)

// Mode selects which relation a count refers to.
type Mode int

const (
	// Expanded is the transitive closure.
	Expanded Mode = iota
	// Reduced is the covering relation plus the diagonal.
	Reduced
)

// String implements fmt.Stringer.
func (m Mode) String() string {
	switch m {
	case Expanded:
		return "expanded"
	case Reduced:
		return "reduced"
	default:
		return "unknown"
	}
}

// Poset is an immutable, validated partial order over element indices 0..N-1.
//
// A Poset only exists fully built: New either returns a complete value or an
// error. Nothing exposes the internal buffers by mutable reference, so a
// *Poset may be shared freely between goroutines.
type Poset struct {
	expanded      *matrix.Binary // transitive closure
	reduced       *matrix.Binary // covering relation + diagonal
	expandedCount int            // set cells in expanded
	reducedCount  int            // set cells in reduced
	order         []int          // cached topological order
}

// New validates rows and builds the poset.
//
// Pipeline: Validate -> Expand -> CheckExpanded -> Reduce -> TopologicalOrder.
// rows is copied; later mutation by the caller has no effect.
//
// Errors: ErrShape, ErrDomain, ErrReflexivity, ErrAntisymmetry, ErrInvalidPoset.
// Complexity: Time O(N³), Space O(N²).
func New(rows [][]int) (*Poset, error) {
	m, err := validate(opNew, rows)
	if err != nil {
		return nil, err
	}

	return fromValidated(m)
}

// fromValidated runs the derivation stages on a buffer that already passed
// shape, domain and law checks.
func fromValidated(m *matrix.Binary) (*Poset, error) {
	expanded := Expand(m)
	if err := CheckExpanded(expanded); err != nil {
		return nil, err
	}
	reduced := Reduce(expanded)

	return &Poset{
		expanded:      expanded,
		reduced:       reduced,
		expandedCount: expanded.Count(),
		reducedCount:  reduced.Count(),
		order:         TopologicalOrder(expanded),
	}, nil
}

// Size returns the number of elements.
func (p *Poset) Size() int {
	return p.expanded.Size()
}

// ExpandedRelations returns an owned copy of the transitive closure.
func (p *Poset) ExpandedRelations() [][]int {
	return p.expanded.ToRows()
}

// ReducedRelations returns an owned copy of the transitive reduction.
func (p *Poset) ReducedRelations() [][]int {
	return p.reduced.ToRows()
}

// Expanded returns an owned clone of the transitive closure buffer.
func (p *Poset) Expanded() *matrix.Binary {
	return p.expanded.Clone()
}

// Reduced returns an owned clone of the transitive reduction buffer.
func (p *Poset) Reduced() *matrix.Binary {
	return p.reduced.Clone()
}

// RelationCount returns the number of set cells (diagonal included) in the
// selected relation. Unknown modes count as 0.
func (p *Poset) RelationCount(mode Mode) int {
	switch mode {
	case Expanded:
		return p.expandedCount
	case Reduced:
		return p.reducedCount
	default:
		return 0
	}
}

// TopologicalOrder returns a copy of the cached topological order.
func (p *Poset) TopologicalOrder() []int {
	out := make([]int, len(p.order))
	copy(out, p.order)

	return out
}

// LessOrEqual reports whether element i ≤ element j.
// Out-of-range indices report false.
func (p *Poset) LessOrEqual(i, j int) bool {
	return p.expanded.Has(i, j)
}

// Covers reports whether j covers i: i < j with nothing strictly between.
// Out-of-range indices report false.
func (p *Poset) Covers(i, j int) bool {
	return i != j && p.reduced.Has(i, j)
}

// Equal reports whether both posets have the same transitive closure.
// The reductions are derived from the closures, so they are not compared.
func (p *Poset) Equal(other *Poset) bool {
	if p == nil || other == nil {
		return p == other
	}

	return p.expanded.Equal(other.expanded)
}

// Extends reports whether p is an extension of other: both have the same
// elements and every relation of other also holds in p.
// Posets of different sizes never extend each other.
func (p *Poset) Extends(other *Poset) bool {
	if p == nil || other == nil {
		return false
	}
	ok, err := p.expanded.Contains(other.expanded)

	return err == nil && ok
}

// Hash returns a 64-bit digest of the transitive closure.
// Equal posets hash equally.
func (p *Poset) Hash() uint64 {
	return xxhash.Sum64(p.expanded.Bytes())
}

// Key returns a canonical string of the transitive closure, usable as a map
// key: rows of digits separated by '/', e.g. "110/010/111".
func (p *Poset) Key() string {
	n := p.expanded.Size()
	var sb strings.Builder
	sb.Grow(n * (n + 1))
	for i := 0; i < n; i++ {
		if i > 0 {
			sb.WriteByte('/')
		}
		for j := 0; j < n; j++ {
			if p.expanded.Has(i, j) {
				sb.WriteByte('1')
			} else {
				sb.WriteByte('0')
			}
		}
	}

	return sb.String()
}

// String renders the transitive closure as rows of space-separated digits.
func (p *Poset) String() string {
	return p.expanded.String()
}
