package graph

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/wordladder/lexicon"
	"github.com/katalvlaran/wordladder/neighbor"
)

// Build resolves the neighbor list of every word in lex and returns the
// completed Graph. Nothing is returned until every word is resolved.
//
// With WithWorkers(n>1) words are resolved concurrently; each goroutine
// writes only the adjacency slot of the word it resolves and reads the
// immutable lexicon, so no locking is needed and the result is identical
// to a sequential build.
//
// Returns ErrLexiconNil, ErrOptionViolation, or the context error if the
// build is cancelled.
func Build(lex *lexicon.Lexicon, opts ...Option) (*Graph, error) {
	if lex == nil {
		return nil, ErrLexiconNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	g := &Graph{lex: lex, adj: make([][]int, lex.Len())}
	if o.Workers <= 1 {
		if err := g.resolveRange(o.Ctx, 0, lex.Len()); err != nil {
			return nil, err
		}
		return g, nil
	}

	eg, ctx := errgroup.WithContext(o.Ctx)
	chunk := (lex.Len() + o.Workers - 1) / o.Workers
	for lo := 0; lo < lex.Len(); lo += chunk {
		lo := lo
		hi := min(lo+chunk, lex.Len())
		eg.Go(func() error { return g.resolveRange(ctx, lo, hi) })
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	return g, nil
}

// resolveRange fills adj[lo:hi], checking for cancellation once per word.
func (g *Graph) resolveRange(ctx context.Context, lo, hi int) error {
	for i := lo; i < hi; i++ {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		g.adj[i] = neighbor.NeighborsOf(g.lex, i)
	}
	return nil
}

// Lexicon returns the lexicon the graph was built over.
func (g *Graph) Lexicon() *lexicon.Lexicon { return g.lex }

// Len reports the number of words (vertices).
func (g *Graph) Len() int { return len(g.adj) }

// Neighbors returns the neighbor indices of word i in enumeration order.
// The slice is shared; callers must not modify it.
func (g *Graph) Neighbors(i int) []int { return g.adj[i] }

// Degree reports the number of neighbors of word i.
func (g *Graph) Degree(i int) int { return len(g.adj[i]) }
