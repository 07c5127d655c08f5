package ladder

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/katalvlaran/wordladder/bfs"
	"github.com/katalvlaran/wordladder/graph"
	"github.com/katalvlaran/wordladder/lexicon"
)

// Session is a built lexicon and graph plus the state needed to answer
// repeated ladder queries. It is safe for concurrent use.
type Session struct {
	lex    *lexicon.Lexicon
	graph  *graph.Graph
	labels []int
	logger *slog.Logger

	mu     sync.Mutex // guards finder
	finder *bfs.Finder

	cache *lru.Cache[queryKey, *bfs.Result] // nil when caching is disabled
}

// New builds a Session from raw dictionary lines, keeping words of
// requiredLength. Errors from lexicon.Build (ErrInvalidLength) and
// graph.Build are returned unchanged.
func New(lines []string, requiredLength int, opts ...Option) (*Session, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	start := time.Now()
	lex, err := lexicon.Build(lines, requiredLength)
	if err != nil {
		return nil, err
	}
	o.logger.Debug("lexicon built", "lines", len(lines), "words", lex.Len(), "length", requiredLength,
		"elapsed", time.Since(start))

	start = time.Now()
	g, err := graph.Build(lex, graph.WithWorkers(o.workers))
	if err != nil {
		return nil, fmt.Errorf("ladder: build graph: %w", err)
	}
	labels, comps := g.Components()
	o.logger.Debug("graph built", "words", g.Len(), "components", comps, "workers", o.workers,
		"elapsed", time.Since(start))

	s := &Session{
		lex:    lex,
		graph:  g,
		labels: labels,
		logger: o.logger,
		finder: bfs.NewFinder(g),
	}
	if o.cacheSize > 0 {
		s.cache, err = lru.New[queryKey, *bfs.Result](o.cacheSize)
		if err != nil {
			return nil, fmt.Errorf("ladder: create cache: %w", err)
		}
	}

	return s, nil
}

// Lexicon returns the session's lexicon.
func (s *Session) Lexicon() *lexicon.Lexicon { return s.lex }

// Graph returns the session's graph.
func (s *Session) Graph() *graph.Graph { return s.graph }

// Stats returns degree statistics, or graph.ErrEmptyGraph for an empty lexicon.
func (s *Session) Stats() (graph.Stats, error) { return s.graph.Stats() }

// Normalize trims and uppercases a query word the same way lexicon.Build
// normalizes dictionary lines.
func Normalize(word string) string {
	return strings.ToUpper(strings.TrimSpace(word))
}

// Resolve returns the index of word, or a *WordError wrapping
// ErrWordNotInLexicon.
func (s *Session) Resolve(word string) (int, error) {
	w := Normalize(word)
	if i, ok := s.lex.Find(w); ok {
		return i, nil
	}
	return -1, &WordError{Word: w}
}

// Connected reports whether two resolved words lie in the same component.
func (s *Session) Connected(source, target int) bool {
	return s.labels[source] == s.labels[target]
}

// Path answers a ladder query by text.
//
// Both words are resolved before any search and every unresolved one is
// reported as its own *WordError; when both are missing the two are joined
// with errors.Join, source first. Words in different components return
// bfs.ErrNotFound without searching. Successful results are cached and
// shared between callers; treat them as read-only.
func (s *Session) Path(from, to string, opts ...bfs.Option) (*bfs.Result, error) {
	src, srcErr := s.Resolve(from)
	dst, dstErr := s.Resolve(to)
	switch {
	case srcErr != nil && dstErr != nil:
		return nil, errors.Join(srcErr, dstErr)
	case srcErr != nil:
		return nil, srcErr
	case dstErr != nil:
		return nil, dstErr
	}
	key := queryKey{source: src, target: dst}

	if !s.Connected(src, dst) {
		s.logger.Info("no ladder", "from", s.lex.Text(src), "to", s.lex.Text(dst), "reason", "components")
		return nil, bfs.ErrNotFound
	}
	// options may bound the search, so only unbounded results are cached
	cacheable := s.cache != nil && len(opts) == 0
	if cacheable {
		if res, ok := s.cache.Get(key); ok {
			s.logger.Debug("cache hit", "from", s.lex.Text(src), "to", s.lex.Text(dst))
			return res, nil
		}
	}

	s.mu.Lock()
	res, err := s.finder.ShortestPath(src, dst, opts...)
	s.mu.Unlock()
	if err != nil {
		s.logger.Info("no ladder", "from", s.lex.Text(src), "to", s.lex.Text(dst), "err", err)
		return nil, err
	}

	if cacheable {
		s.cache.Add(key, res)
	}
	s.logger.Info("ladder found", "from", s.lex.Text(src), "to", s.lex.Text(dst), "distance", res.Distance)

	return res, nil
}
