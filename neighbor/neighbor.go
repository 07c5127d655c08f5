// Package neighbor enumerates the words of a lexicon that differ from a given
// word in exactly one letter position.
//
// Enumeration is position-major, then letter-ascending over Alphabet, so the
// resulting index list is fully reproducible for a fixed lexicon.
//
// Complexity: O(L·25·log n) per word, where L is the word length.
package neighbor

import "github.com/katalvlaran/wordladder/lexicon"

// Alphabet is the substitution set tried at every position. It matches the
// bytes lexicon.Build admits, which keeps every edge symmetric.
const Alphabet = lexicon.Alphabet

// NeighborsOf returns the indices of all words in lex that differ from the
// word at index own by exactly one letter. The word itself is never included
// and each neighbor appears once.
func NeighborsOf(lex *lexicon.Lexicon, own int) []int {
	word := []byte(lex.Text(own))
	var out []int
	for pos := range word {
		orig := word[pos]
		for i := 0; i < len(Alphabet); i++ {
			c := Alphabet[i]
			if c == orig {
				continue
			}
			word[pos] = c
			if idx, ok := lex.Find(string(word)); ok && idx != own {
				out = append(out, idx)
			}
		}
		word[pos] = orig
	}

	return out
}

// Adjacent reports whether a and b have equal length and differ in exactly
// one position.
func Adjacent(a, b string) bool {
	if len(a) != len(b) {
		return false
	}
	diff := 0
	for i := 0; i < len(a); i++ {
		if a[i] != b[i] {
			diff++
			if diff > 1 {
				return false
			}
		}
	}

	return diff == 1
}
