// SPDX-License-Identifier: MIT

package poset_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/poset/poset"
)

// chain returns the reduction of a linear order of n elements with edges
// pointing from higher to lower index, the slowest direction for propagation.
func chain(n int) [][]int {
	rows := make([][]int, n)
	for i := range rows {
		rows[i] = make([]int, n)
		rows[i][i] = 1
		if i > 0 {
			rows[i][i-1] = 1
		}
	}

	return rows
}

// BenchmarkNew_Chain measures the full pipeline on reverse chains.
func BenchmarkNew_Chain(b *testing.B) {
	for _, n := range []int{16, 64, 128} {
		rows := chain(n)
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				_, _ = poset.New(rows)
			}
		})
	}
}

// BenchmarkExpand_Random measures closure alone on random relations.
func BenchmarkExpand_Random(b *testing.B) {
	rng := newRNG(42)
	for _, n := range []int{32, 128} {
		m := mustBinary(b, randomRelation(rng, n, 0.1))
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				_ = poset.Expand(m)
			}
		})
	}
}
