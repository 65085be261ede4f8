// SPDX-License-Identifier: MIT
package poset_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/poset/poset"
	"github.com/katalvlaran/poset/matrix"
)

// TestExpand_Fixture checks the documented four-element expansion.
func TestExpand_Fixture(t *testing.T) {
	t.Parallel()

	in := mustBinary(t, fixtureReduced)
	got := poset.Expand(in)
	requireRowsEqual(t, fixtureExpanded, got.ToRows())

	// The input buffer is untouched.
	requireRowsEqual(t, fixtureReduced, in.ToRows())
}

// TestExpand_Chain verifies a long chain closes into an upper triangle,
// which needs cascades along the whole chain.
func TestExpand_Chain(t *testing.T) {
	t.Parallel()

	const n = 12
	rows := make([][]int, n)
	for i := range rows {
		rows[i] = make([]int, n)
		rows[i][i] = 1
		if i+1 < n {
			rows[i][i+1] = 1
		}
	}
	got := poset.Expand(mustBinary(t, rows)).ToRows()
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			want := 0
			if j >= i {
				want = 1
			}
			require.Equalf(t, want, got[i][j], "cell (%d,%d)", i, j)
		}
	}
}

// TestExpand_ReverseChain covers the worst processing order for propagation:
// edges point from higher to lower indices.
func TestExpand_ReverseChain(t *testing.T) {
	t.Parallel()

	const n = 8
	rows := make([][]int, n)
	for i := range rows {
		rows[i] = make([]int, n)
		rows[i][i] = 1
		if i > 0 {
			rows[i][i-1] = 1
		}
	}
	got := poset.Expand(mustBinary(t, rows))
	assert.Equal(t, n*(n+1)/2, got.Count())
	requireRowsEqual(t, warshall(rows), got.ToRows())
}

// TestExpand_Degenerate covers nil, empty and antichain inputs.
func TestExpand_Degenerate(t *testing.T) {
	t.Parallel()

	assert.Nil(t, poset.Expand(nil))

	empty, err := matrix.NewBinary(0)
	require.NoError(t, err)
	assert.Equal(t, 0, poset.Expand(empty).Size())

	id, err := matrix.Identity(5)
	require.NoError(t, err)
	assert.True(t, poset.Expand(id).Equal(id))
}

// TestExpand_MatchesWarshall cross-checks the work-list closure against the
// textbook triple loop on random relations.
func TestExpand_MatchesWarshall(t *testing.T) {
	t.Parallel()

	rng := newRNG(1)
	for trial := 0; trial < 60; trial++ {
		n := 1 + rng.IntN(14)
		density := rng.Float64()
		rows := randomRelation(rng, n, density)
		t.Run(fmt.Sprintf("n=%d/trial=%d", n, trial), func(t *testing.T) {
			requireRowsEqual(t, warshall(rows), poset.Expand(mustBinary(t, rows)).ToRows())
		})
	}
}

// TestExpand_Idempotent verifies expand(expand(M)) == expand(M).
func TestExpand_Idempotent(t *testing.T) {
	t.Parallel()

	rng := newRNG(2)
	for trial := 0; trial < 40; trial++ {
		rows := randomRelation(rng, 1+rng.IntN(12), rng.Float64())
		once := poset.Expand(mustBinary(t, rows))
		twice := poset.Expand(once)
		require.Truef(t, once.Equal(twice), "trial %d:\n%s\nvs\n%s", trial, once, twice)
	}
}

// TestExpand_Maximality verifies closure never omits a derivable relation:
// adding any missing off-diagonal cell and re-closing changes the result.
func TestExpand_Maximality(t *testing.T) {
	t.Parallel()

	rng := newRNG(3)
	for trial := 0; trial < 20; trial++ {
		rows := randomRelation(rng, 2+rng.IntN(8), rng.Float64())
		expanded := poset.Expand(mustBinary(t, rows))
		n := expanded.Size()
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				if i == j || expanded.Has(i, j) {
					continue
				}
				grown := expanded.Clone()
				require.NoError(t, grown.Set(i, j, true))
				require.Falsef(t, poset.Expand(grown).Equal(expanded),
					"trial %d: adding (%d,%d) left the closure unchanged", trial, i, j)
			}
		}
	}
}
