// Package bfs finds shortest word ladders over a graph.Graph with
// breadth-first search, tracking visitation, distance and predecessor per word.
//
// What
//
//   - Explore words in non-decreasing distance (single-letter steps) from a source.
//   - Stop as soon as the target is dequeued and return a Result:
//   - Distance: number of steps
//   - Indices:  word indices source → target
//   - Path:     the same words as text
//   - Report ErrNotFound when the source's component does not contain the target.
//   - Supports hooks at two stages:
//   - OnEnqueue (when a word is discovered)
//   - OnDequeue (immediately before a word is expanded)
//   - Honors MaxDepth limit (d>0) or explicit "no limit" (d==0).
//
// State
//
//	Search state lives in a Finder, not in the graph. Every call to
//	Finder.ShortestPath resets it before seeding the frontier, so successive
//	queries on one Finder never see each other's marks. The package-level
//	ShortestPath allocates a fresh Finder per call and is safe to use from
//	several goroutines on one graph.
//
// Determinism
//
//	graph.Build stores neighbors in position-major, letter-ascending order and
//	BFS enqueues them in that order; the first word to discover a neighbor
//	becomes its predecessor. Which of several equally short ladders is returned
//	is therefore implementation-defined but fixed for a given lexicon.
//
// Complexity (V = words, E = one-letter edges)
//
//   - Time:   O(V + E)
//   - Memory: O(V) for the queue and the three state slices
//
// Usage
//
//	f := bfs.NewFinder(g)
//	res, err := f.ShortestPath(src, dst, bfs.WithMaxDepth(10))
//	switch {
//	case errors.Is(err, bfs.ErrNotFound):
//		// no ladder
//	case err != nil:
//		// ErrGraphNil, ErrIndexOutOfRange, ErrOptionViolation or ctx error
//	default:
//		fmt.Println(res.Distance, strings.Join(res.Path, " > "))
//	}
//
// Errors
//
//   - ErrGraphNil             if the graph pointer is nil.
//   - ErrIndexOutOfRange      if source or target is not a word index.
//   - ErrOptionViolation      if invalid Option (e.g. negative MaxDepth).
//   - ErrNotFound             if no ladder exists (within MaxDepth).
//   - context errors          if Ctx is cancelled.
package bfs
