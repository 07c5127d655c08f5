// Package lexicon holds the fixed-length, deduplicated and sorted word
// collection that the ladder graph is built over.
package lexicon

import "errors"

// Sentinel errors for lexicon construction.
var (
	// ErrInvalidLength is returned when the required word length is not positive.
	ErrInvalidLength = errors.New("lexicon: required length must be positive")
)

// Alphabet is the set of bytes a lexicon word may contain.
const Alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// Word is a read-only view of one lexicon entry.
//
// Index is the stable arena position of the word; every other package
// (graph adjacency, BFS predecessor links) refers to words by this index.
type Word struct {
	// Index is the position of the word in the sorted lexicon.
	Index int

	// Text is the uppercase word; len(Text) equals the lexicon word length.
	Text string
}

// Lexicon is an immutable, ascending, duplicate-free set of words of one length.
// It is safe for concurrent reads.
type Lexicon struct {
	length int
	words  []string
}
