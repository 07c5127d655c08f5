package bfs

import (
	"context"
	"fmt"
	"slices"

	"github.com/katalvlaran/wordladder/graph"
)

// noPredecessor marks the source and every unreached word.
const noPredecessor = -1

// Finder owns the per-search state for one graph: visited flags, distances
// and predecessor indices, each sized to the lexicon. The state is kept apart
// from the graph's adjacency and is reset at the start of every search, so one
// Finder can answer any number of queries in sequence.
//
// A Finder is not safe for concurrent use; the graph it reads is.
type Finder struct {
	graph       *graph.Graph
	visited     []bool
	distance    []int
	predecessor []int
	queue       []int
}

// NewFinder allocates search state for g.
func NewFinder(g *graph.Graph) *Finder {
	n := 0
	if g != nil {
		n = g.Len()
	}
	return &Finder{
		graph:       g,
		visited:     make([]bool, n),
		distance:    make([]int, n),
		predecessor: make([]int, n),
		queue:       make([]int, 0, n),
	}
}

// ShortestPath runs a one-off search with freshly allocated state.
// Independent callers may use it concurrently on the same graph.
func ShortestPath(g *graph.Graph, source, target int, opts ...Option) (*Result, error) {
	return NewFinder(g).ShortestPath(source, target, opts...)
}

// ShortestPath finds a shortest ladder from source to target.
//
// Neighbors are expanded in their stored order and the first predecessor to
// discover a word keeps it, so among several shortest ladders the one
// returned is deterministic for a fixed lexicon.
//
// Returns ErrGraphNil, ErrIndexOutOfRange, ErrOptionViolation, ErrNotFound
// when target is unreachable (or beyond MaxDepth), or the context error.
//
// Complexity: O(V + E) time, O(V) memory.
func (f *Finder) ShortestPath(source, target int, opts ...Option) (*Result, error) {
	if f.graph == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	n := f.graph.Len()
	if source < 0 || source >= n || target < 0 || target >= n {
		return nil, fmt.Errorf("%w: source=%d target=%d size=%d", ErrIndexOutOfRange, source, target, n)
	}

	f.reset()
	f.enqueue(source, 0, noPredecessor, o)

	return f.loop(o.Ctx, target, o)
}

// Distance reports the distance recorded for word i by the most recent
// search, or -1 if that search did not reach it.
func (f *Finder) Distance(i int) int { return f.distance[i] }

// reset returns every word to the unvisited state.
func (f *Finder) reset() {
	for i := range f.visited {
		f.visited[i] = false
		f.distance[i] = -1
		f.predecessor[i] = noPredecessor
	}
	f.queue = f.queue[:0]
}

// enqueue marks idx visited at distance d with predecessor pred.
func (f *Finder) enqueue(idx, d, pred int, o BFSOptions) {
	f.visited[idx] = true
	f.distance[idx] = d
	f.predecessor[idx] = pred
	o.OnEnqueue(idx, d)
	f.queue = append(f.queue, idx)
}

// loop drains the frontier until target is dequeued or nothing is left.
func (f *Finder) loop(ctx context.Context, target int, o BFSOptions) (*Result, error) {
	for head := 0; head < len(f.queue); head++ {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		cur := f.queue[head]
		o.OnDequeue(cur, f.distance[cur])
		if cur == target {
			return f.result(target), nil
		}

		next := f.distance[cur] + 1
		if o.MaxDepth > 0 && next > o.MaxDepth {
			continue
		}
		for _, nbr := range f.graph.Neighbors(cur) {
			if !f.visited[nbr] {
				f.enqueue(nbr, next, cur, o)
			}
		}
	}

	return nil, ErrNotFound
}

// result walks predecessor links back from target and reverses them.
func (f *Finder) result(target int) *Result {
	d := f.distance[target]
	indices := make([]int, 0, d+1)
	for cur := target; cur != noPredecessor; cur = f.predecessor[cur] {
		indices = append(indices, cur)
	}
	slices.Reverse(indices)

	lex := f.graph.Lexicon()
	path := make([]string, len(indices))
	for i, idx := range indices {
		path[i] = lex.Text(idx)
	}

	return &Result{Distance: d, Indices: indices, Path: path}
}
