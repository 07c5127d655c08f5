package bfs_test

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/wordladder/bfs"
	"github.com/katalvlaran/wordladder/graph"
	"github.com/katalvlaran/wordladder/lexicon"
)

// ExampleShortestPath finds the classic CAT → DOG ladder.
// Two 3-step ladders exist (via DOT or via COG); the one returned follows
// neighbor enumeration order.
func ExampleShortestPath() {
	lex, _ := lexicon.Build([]string{"cat", "cot", "cog", "dog", "dot"}, 3)
	g, _ := graph.Build(lex)

	src, _ := lex.Find("CAT")
	dst, _ := lex.Find("DOG")
	res, err := bfs.ShortestPath(g, src, dst)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(res.Distance)
	fmt.Println(strings.Join(res.Path, " > "))
	// Output:
	// 3
	// CAT > COT > DOT > DOG
}

// ExampleFinder reuses one Finder for several queries, including one with no ladder.
func ExampleFinder() {
	lex, _ := lexicon.Build([]string{"cold", "cord", "card", "ward", "warm", "wore", "core", "corm", "worm", "zinc"}, 4)
	g, _ := graph.Build(lex)
	f := bfs.NewFinder(g)

	for _, q := range [][2]string{{"COLD", "WARM"}, {"WORE", "CARD"}, {"COLD", "ZINC"}, {"COLD", "COLD"}} {
		src, _ := lex.Find(q[0])
		dst, _ := lex.Find(q[1])
		res, err := f.ShortestPath(src, dst)
		if errors.Is(err, bfs.ErrNotFound) {
			fmt.Printf("%s -> %s: no ladder\n", q[0], q[1])
			continue
		}
		fmt.Printf("%s -> %s: %d %v\n", q[0], q[1], res.Distance, res.Path)
	}
	// Output:
	// COLD -> WARM: 4 [COLD CORD CARD WARD WARM]
	// WORE -> CARD: 3 [WORE CORE CORD CARD]
	// COLD -> ZINC: no ladder
	// COLD -> COLD: 0 [COLD]
}
