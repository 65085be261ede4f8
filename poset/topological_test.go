// SPDX-License-Identifier: MIT
package poset_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/poset/poset"
	"github.com/katalvlaran/poset/matrix"
)

// requireTopological checks that no element appears before one it is greater than.
func requireTopological(t *testing.T, expanded *matrix.Binary, order []int) {
	t.Helper()
	require.Len(t, order, expanded.Size())
	require.ElementsMatch(t, indices(expanded.Size()), order)
	for p := 0; p < len(order); p++ {
		for q := p + 1; q < len(order); q++ {
			require.Falsef(t, expanded.Has(order[q], order[p]),
				"%d ≤ %d but appears after it in %v", order[q], order[p], order)
		}
	}
}

// indices returns 0..n-1.
func indices(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}

	return out
}

// TestTopologicalOrder_Fixture checks the documented order.
func TestTopologicalOrder_Fixture(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []int{3, 0, 1, 2}, poset.TopologicalOrder(mustBinary(t, fixtureExpanded)))
}

// TestTopologicalOrder_TiesByIndex verifies incomparable elements keep index order.
func TestTopologicalOrder_TiesByIndex(t *testing.T) {
	t.Parallel()

	id, err := matrix.Identity(4)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2, 3}, poset.TopologicalOrder(id))

	// 2 ≤ 0 and 2 ≤ 1; 0 and 1 are incomparable with equal weight.
	expanded := mustBinary(t, [][]int{
		{1, 0, 0},
		{0, 1, 0},
		{1, 1, 1},
	})
	assert.Equal(t, []int{2, 0, 1}, poset.TopologicalOrder(expanded))
}

// TestTopologicalOrder_Degenerate covers nil and empty inputs.
func TestTopologicalOrder_Degenerate(t *testing.T) {
	t.Parallel()

	assert.Nil(t, poset.TopologicalOrder(nil))
	empty, err := matrix.NewBinary(0)
	require.NoError(t, err)
	assert.Empty(t, poset.TopologicalOrder(empty))
}

// TestTopologicalOrder_Valid checks validity on random posets.
func TestTopologicalOrder_Valid(t *testing.T) {
	t.Parallel()

	rng := newRNG(7)
	for trial := 0; trial < 60; trial++ {
		expanded := poset.Expand(mustBinary(t, randomRelation(rng, 1+rng.IntN(16), rng.Float64())))
		requireTopological(t, expanded, poset.TopologicalOrder(expanded))
	}
}
