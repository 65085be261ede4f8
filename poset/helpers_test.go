// SPDX-License-Identifier: MIT
package poset_test

import (
	"math/rand/v2"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/poset/matrix"
)

// Fixture from the package documentation: a reduction over four elements.
var (
	fixtureReduced = [][]int{
		{1, 1, 0, 0},
		{0, 1, 1, 0},
		{0, 0, 1, 0},
		{1, 0, 0, 1},
	}
	fixtureExpanded = [][]int{
		{1, 1, 1, 0},
		{0, 1, 1, 0},
		{0, 0, 1, 0},
		{1, 1, 1, 1},
	}
	// threeCycle passes every direct law but closes into a cycle 0→1→2→0.
	threeCycle = [][]int{
		{1, 1, 0},
		{0, 1, 1},
		{1, 0, 1},
	}
)

// mustBinary builds a Binary from rows or fails the test.
func mustBinary(t testing.TB, rows [][]int) *matrix.Binary {
	t.Helper()
	m, err := matrix.FromRows(rows)
	require.NoError(t, err)

	return m
}

// requireRowsEqual fails with a readable diff when the grids differ.
func requireRowsEqual(t testing.TB, want, got [][]int) {
	t.Helper()
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("matrix mismatch (-want +got):\n%s", diff)
	}
}

// randomRelation returns a valid poset input of order n: the diagonal plus
// edges perm[a] ≤ perm[b] for a < b, each kept with probability density.
// Relations built this way are acyclic, so their closure is antisymmetric.
func randomRelation(rng *rand.Rand, n int, density float64) [][]int {
	rows := make([][]int, n)
	for i := range rows {
		rows[i] = make([]int, n)
		rows[i][i] = 1
	}
	perm := rng.Perm(n)
	for a := 0; a < n; a++ {
		for b := a + 1; b < n; b++ {
			if rng.Float64() < density {
				rows[perm[a]][perm[b]] = 1
			}
		}
	}

	return rows
}

// warshall is a reference boolean closure used to cross-check Expand.
func warshall(rows [][]int) [][]int {
	n := len(rows)
	out := make([][]int, n)
	for i := range rows {
		out[i] = append([]int(nil), rows[i]...)
	}
	for k := 0; k < n; k++ {
		for i := 0; i < n; i++ {
			if out[i][k] == 0 {
				continue
			}
			for j := 0; j < n; j++ {
				if out[k][j] == 1 {
					out[i][j] = 1
				}
			}
		}
	}

	return out
}

// newRNG returns a deterministic generator so failures reproduce.
func newRNG(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}
