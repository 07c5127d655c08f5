// Package bfs provides tunable options and error definitions
// for shortest-ladder search over a graph.Graph.
package bfs

import (
	"context"
	"errors"
	"fmt"
)

// Sentinel errors for BFS execution.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrIndexOutOfRange is returned when source or target is not a valid word index.
	ErrIndexOutOfRange = errors.New("bfs: word index out of range")

	// ErrNotFound is returned when the frontier empties without reaching the target.
	// It is an ordinary outcome, not a failure of the search.
	ErrNotFound = errors.New("bfs: no ladder between words")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")
)

// Option configures BFS behavior via functional arguments.
// If an Option is invalid (e.g. negative depth), it will be recorded
// internally and surfaced as ErrOptionViolation when the search is invoked.
type Option func(*BFSOptions)

// BFSOptions holds parameters and callbacks to customize a search.
type BFSOptions struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// OnEnqueue is called when a word is discovered and enqueued.
	// Receives word index and its distance from the source.
	OnEnqueue func(idx int, depth int)

	// OnDequeue is called immediately before a word is expanded.
	OnDequeue func(idx int, depth int)

	// MaxDepth, if > 0, stops exploring beyond this distance.
	// A value of 0 explicitly disables any depth limit.
	MaxDepth int

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns a BFSOptions with:
//   - Context.Background()
//   - no depth limit (MaxDepth == 0)
//   - no-op hooks
func DefaultOptions() BFSOptions {
	return BFSOptions{
		Ctx:       context.Background(),
		OnEnqueue: func(int, int) {},
		OnDequeue: func(int, int) {},
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *BFSOptions) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnEnqueue registers a callback to run on enqueue.
func WithOnEnqueue(fn func(idx int, depth int)) Option {
	return func(o *BFSOptions) {
		if fn != nil {
			o.OnEnqueue = fn
		}
	}
}

// WithOnDequeue registers a callback to run on dequeue.
func WithOnDequeue(fn func(idx int, depth int)) Option {
	return func(o *BFSOptions) {
		if fn != nil {
			o.OnDequeue = fn
		}
	}
}

// WithMaxDepth bounds the ladder length (in edges).
//
//	d > 0: words farther than d are never enqueued
//	d == 0: explicit no depth limit
//	d < 0: invalid option → ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *BFSOptions) {
		switch {
		case d < 0:
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
		default:
			o.MaxDepth = d
		}
	}
}

// Result is a successful ladder.
//   - Distance: number of single-letter steps.
//   - Indices:  word indices from source to target, len == Distance+1.
//   - Path:     the same words as text.
type Result struct {
	Distance int
	Indices  []int
	Path     []string
}
