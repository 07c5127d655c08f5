// Package wordladder builds the graph of equal-length dictionary words in
// which two words are adjacent when they differ in exactly one letter, and
// finds shortest word ladders over it with breadth-first search.
//
// The module is organized in layers, leaves first:
//
//	lexicon/  — normalize, filter, sort and deduplicate words; O(log n) lookup
//	neighbor/ — enumerate one-letter substitutions present in a lexicon
//	graph/    — write-once adjacency (optionally built in parallel), degree
//	            statistics and connected components
//	bfs/      — shortest-ladder search with resettable per-search state
//	ladder/   — a reusable session: query by text, cached results, logging
//
// and a command-line front end in cmd/wordladder.
//
// Quick example, the five words CAT COT COG DOG DOT:
//
//	CAT───COT───COG
//	       │     │
//	      DOT───DOG
//
// CAT → DOG takes three steps: CAT > COT > DOT > DOG.
//
//	go run ./cmd/wordladder path cat dog -d /usr/share/dict/words -n 3
package wordladder
