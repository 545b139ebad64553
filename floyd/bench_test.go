package floyd_test

import (
	"testing"

	"github.com/katalvlaran/floydcycle/floyd"
)

// lasso returns a tail of length tail feeding a loop of length loop.
func lasso(tail, loop int) floyd.Graph {
	n := tail + loop
	g := make(floyd.Graph, n)
	for i := 0; i < n-1; i++ {
		g[i] = floyd.Next(i + 1)
	}
	g[n-1] = floyd.Next(tail)

	return g
}

// BenchmarkFloyd_Lasso measures a single race over a 1,000-node tail and 1,000-node loop.
func BenchmarkFloyd_Lasso(b *testing.B) {
	g := lasso(1000, 1000)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = floyd.Floyd(g, 0)
	}
}

// BenchmarkDetectCycles_ManySmall runs the multi-start detector over 500 disjoint 4-cycles.
func BenchmarkDetectCycles_ManySmall(b *testing.B) {
	const k, size = 500, 4
	g := make(floyd.Graph, 0, k*size)
	for c := 0; c < k; c++ {
		base := c * size
		for j := 0; j < size; j++ {
			g = append(g, floyd.Next(base+(j+1)%size))
		}
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = floyd.DetectCycles(g)
	}
}

// BenchmarkReachesCycle_Lasso walks the same lasso depth-first.
func BenchmarkReachesCycle_Lasso(b *testing.B) {
	g := lasso(1000, 1000)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = floyd.ReachesCycle(g, 0)
	}
}
