// Package graph builds the one-letter-difference adjacency over a lexicon
// and derives degree statistics and connected components from it.
package graph

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/wordladder/lexicon"
)

// Sentinel errors for graph construction and statistics.
var (
	// ErrLexiconNil is returned if a nil lexicon pointer is passed to Build.
	ErrLexiconNil = errors.New("graph: lexicon is nil")

	// ErrEmptyGraph is returned by Stats when the lexicon holds no words.
	ErrEmptyGraph = errors.New("graph: no words to summarize")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("graph: invalid option supplied")
)

// Option configures Build via functional arguments. Invalid values are
// recorded and surfaced as ErrOptionViolation when Build runs.
type Option func(*BuildOptions)

// BuildOptions holds parameters for adjacency construction.
type BuildOptions struct {
	// Ctx allows cancellation of a long build.
	Ctx context.Context

	// Workers is the number of goroutines resolving neighbors.
	// 0 and 1 both mean sequential resolution.
	Workers int

	err error
}

// DefaultOptions returns background context and sequential resolution.
func DefaultOptions() BuildOptions {
	return BuildOptions{Ctx: context.Background(), Workers: 1}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *BuildOptions) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithWorkers resolves neighbor lists on n goroutines.
//
//	n > 1:  concurrent resolution
//	n <= 1: sequential (n == 0 is accepted as "default")
//	n < 0:  invalid option → ErrOptionViolation
func WithWorkers(n int) Option {
	return func(o *BuildOptions) {
		if n < 0 {
			o.err = fmt.Errorf("%w: Workers cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.Workers = max(n, 1)
	}
}

// Graph is the write-once adjacency over a lexicon.
// adj[i] lists the indices of word i's neighbors in enumeration order.
// After Build returns, a Graph is safe for concurrent reads.
type Graph struct {
	lex *lexicon.Lexicon
	adj [][]int
}

// Stats summarizes degrees over all words of a non-empty graph.
// Word lists are in lexicon (ascending) order.
type Stats struct {
	Words            int
	TotalDegree      int
	AverageDegree    float64
	MaxDegree        int
	MaxDegreeWords   []string
	MinDegree        int
	MinDegreeWords   []string
	Isolated         []string
	Components       int
	LargestComponent int
}
