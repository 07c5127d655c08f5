// Package ladder ties lexicon, graph and bfs together into a reusable
// session that answers word-ladder queries by text.
package ladder

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
)

// ErrWordNotInLexicon is returned (wrapped in a *WordError) when a queried
// word has no entry of the session's length.
var ErrWordNotInLexicon = errors.New("ladder: word not in lexicon")

// ErrOptionViolation is returned when an invalid Option is supplied.
var ErrOptionViolation = errors.New("ladder: invalid option supplied")

// WordError reports which queried word could not be resolved.
type WordError struct {
	Word string
}

func (e *WordError) Error() string {
	return fmt.Sprintf("ladder: %q is not a word", e.Word)
}

// Unwrap lets errors.Is match ErrWordNotInLexicon.
func (e *WordError) Unwrap() error { return ErrWordNotInLexicon }

// DefaultCacheSize is the number of query results kept by default.
const DefaultCacheSize = 128

// Option configures a Session.
type Option func(*options)

type options struct {
	logger    *slog.Logger
	cacheSize int
	workers   int
	err       error
}

func defaultOptions() options {
	return options{
		logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
		cacheSize: DefaultCacheSize,
		workers:   1,
	}
}

// WithLogger sets the logger used for build and query events.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithCacheSize sets how many query results are remembered.
// 0 disables caching; negative values are rejected.
func WithCacheSize(n int) Option {
	return func(o *options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: cache size cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.cacheSize = n
	}
}

// WithWorkers sets the goroutine count used to resolve neighbors.
func WithWorkers(n int) Option {
	return func(o *options) { o.workers = n }
}

// queryKey identifies a cached query by resolved indices.
type queryKey struct {
	source, target int
}
