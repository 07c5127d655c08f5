package lexicon

import (
	"fmt"
	"slices"
	"strings"
)

// Build normalizes lines into a Lexicon of words of exactly requiredLength bytes.
//
// Each line is trimmed of any surrounding whitespace (spaces, tabs, a
// trailing \r), not only line terminators, and then uppercased. Lines of any
// other length are dropped, as are words with a byte outside Alphabet
// (apostrophes, hyphens, digits): neighbor substitution only produces
// Alphabet letters, so such a word would get one-way edges. The survivors
// are sorted and then every duplicate is removed, so repeated words are
// collapsed regardless of where they occur in the input.
//
// Returns ErrInvalidLength (and no lexicon) if requiredLength <= 0.
// Empty input yields an empty, valid lexicon.
//
// Complexity: O(N·L + M log M) for N lines and M kept words.
func Build(lines []string, requiredLength int) (*Lexicon, error) {
	if requiredLength <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidLength, requiredLength)
	}

	words := make([]string, 0, len(lines))
	for _, line := range lines {
		w := strings.ToUpper(strings.TrimSpace(line))
		if len(w) != requiredLength || !lettersOnly(w) {
			continue
		}
		words = append(words, w)
	}

	// sort first, then compact: equal words are adjacent only after sorting
	slices.Sort(words)
	words = slices.Compact(words)

	return &Lexicon{length: requiredLength, words: slices.Clip(words)}, nil
}

// lettersOnly reports whether every byte of w is in Alphabet.
func lettersOnly(w string) bool {
	for i := 0; i < len(w); i++ {
		if w[i] < 'A' || w[i] > 'Z' {
			return false
		}
	}
	return true
}

// Find returns the index of text and true, or -1 and false when text is absent.
// text must already be normalized (uppercase); Find does not rewrite it.
//
// Complexity: O(log n).
func (l *Lexicon) Find(text string) (int, bool) {
	if len(text) != l.length {
		return -1, false
	}
	i, ok := slices.BinarySearch(l.words, text)
	if !ok {
		return -1, false
	}

	return i, true
}

// Len reports the number of words.
func (l *Lexicon) Len() int { return len(l.words) }

// WordLength reports the fixed length every word has.
func (l *Lexicon) WordLength() int { return l.length }

// WordAt returns the word stored at index i. It panics if i is out of range,
// like a slice index would.
func (l *Lexicon) WordAt(i int) Word {
	return Word{Index: i, Text: l.words[i]}
}

// Text is a shorthand for WordAt(i).Text.
func (l *Lexicon) Text(i int) string { return l.words[i] }

// Words returns a copy of all words in ascending order.
func (l *Lexicon) Words() []string {
	return slices.Clone(l.words)
}
