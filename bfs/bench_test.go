package bfs_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/wordladder/bfs"
	"github.com/katalvlaran/wordladder/graph"
	"github.com/katalvlaran/wordladder/lexicon"
)

// benchGraph builds a graph of up to n random 4-letter words over a
// 6-letter alphabet; the fixed seed keeps runs comparable.
func benchGraph(b *testing.B, n int) *graph.Graph {
	r := rand.New(rand.NewSource(99))
	lines := make([]string, n)
	for i := range lines {
		w := make([]byte, 4)
		for j := range w {
			w[j] = "ABCDEF"[r.Intn(6)]
		}
		lines[i] = string(w)
	}
	lex, err := lexicon.Build(lines, 4)
	if err != nil {
		b.Fatal(err)
	}
	g, err := graph.Build(lex)
	if err != nil {
		b.Fatal(err)
	}
	return g
}

// BenchmarkFinder_Reuse measures repeated searches on one Finder (reset cost included).
func BenchmarkFinder_Reuse(b *testing.B) {
	g := benchGraph(b, 2000)
	f := bfs.NewFinder(g)
	last := g.Len() - 1

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = f.ShortestPath(0, last)
	}
}

// BenchmarkShortestPath_Fresh measures one-off searches that allocate state each time.
func BenchmarkShortestPath_Fresh(b *testing.B) {
	g := benchGraph(b, 2000)
	last := g.Len() - 1

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = bfs.ShortestPath(g, 0, last)
	}
}

// BenchmarkGraphBuild compares sequential and parallel neighbor resolution.
func BenchmarkGraphBuild(b *testing.B) {
	g := benchGraph(b, 2000)
	for _, workers := range []int{1, 4} {
		b.Run(map[int]string{1: "sequential", 4: "workers=4"}[workers], func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				_, _ = graph.Build(g.Lexicon(), graph.WithWorkers(workers))
			}
		})
	}
}
