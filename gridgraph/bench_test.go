package gridgraph_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/aoc2025/gridgraph"
)

// BenchmarkTotalEvicted measures a full cascade on a randomly generated
// 137×137 grid (the puzzle input size) with ~60% occupancy.
// Complexity: O(R×W×H)
func BenchmarkTotalEvicted(b *testing.B) {
	const n = 137
	lines := randomLines(rand.New(rand.NewSource(42)), n, n, 0.6)
	gg, err := gridgraph.NewGridGraph(lines, gridgraph.DefaultGridOptions())
	if err != nil {
		b.Fatalf("setup NewGridGraph failed: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = gg.Clone().TotalEvicted(gridgraph.DefaultThreshold, true)
	}
}

// BenchmarkLiveComponents measures component analysis on a 1000×1000 grid.
// Complexity: O(W×H×d)
func BenchmarkLiveComponents(b *testing.B) {
	const n = 1000
	lines := randomLines(rand.New(rand.NewSource(7)), n, n, 0.5)
	gg, err := gridgraph.NewGridGraph(lines, gridgraph.DefaultGridOptions())
	if err != nil {
		b.Fatalf("setup NewGridGraph failed: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = gg.LiveComponents()
	}
}
