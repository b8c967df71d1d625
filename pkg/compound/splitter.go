package compound

import (
	"context"
	"io"
	"slices"
	"strings"

	"github.com/charmbracelet/log"
	lru "github.com/hashicorp/golang-lru/v2"
	"golang.org/x/sync/errgroup"
)

// DefaultCacheSize is the default number of memoized splits.
// At ~100 bytes per entry, 100k entries uses approximately 10MB of memory.
const DefaultCacheSize = 100_000

// DefaultMaxSteps bounds the search for a single token.
const DefaultMaxSteps = 100_000

// Options configures a Splitter.
type Options struct {
	CacheSize     int // 0 disables the cache
	MinPartLength int
	MaxSteps      int // 0 means unlimited
	Logger        *log.Logger
}

// DefaultOptions returns the options used by NewSplitter callers that do not
// care about tuning.
func DefaultOptions() Options {
	return Options{
		CacheSize:     DefaultCacheSize,
		MinPartLength: MinPartLength,
		MaxSteps:      DefaultMaxSteps,
	}
}

// Splitter decomposes tokens against a shared dictionary and memoizes the
// results. It is safe for concurrent use.
type Splitter struct {
	matcher Matcher
	opts    Options
	cache   *lru.Cache[string, []string]
	logger  *log.Logger
}

// NewSplitter creates a splitter over m.
func NewSplitter(m Matcher, opts Options) *Splitter {
	if opts.MinPartLength <= 0 {
		opts.MinPartLength = MinPartLength
	}

	s := &Splitter{
		matcher: m,
		opts:    opts,
		logger:  opts.Logger,
	}
	if s.logger == nil {
		s.logger = log.New(io.Discard)
	}
	if opts.CacheSize > 0 {
		cache, err := lru.New[string, []string](opts.CacheSize)
		if err == nil {
			s.cache = cache
		}
	}
	return s
}

// Solve returns the compound parts of text. An empty result without error
// means text does not decompose.
func (s *Splitter) Solve(text string) ([]string, error) {
	lower := strings.ToLower(text)
	candidates := extractCandidates(lower, s.matcher, s.opts.MinPartLength)
	return SegmentBudget(lower, candidates, s.opts.MaxSteps)
}

// Split returns the compound parts of word, or the lowercase word itself
// when it cannot be decomposed. The result is owned by the caller.
func (s *Splitter) Split(word string) []string {
	lower := strings.ToLower(word)

	if s.cache != nil {
		if parts, ok := s.cache.Get(lower); ok {
			return slices.Clone(parts)
		}
	}

	parts, err := s.Solve(lower)
	if err != nil {
		s.logger.Debug("split abandoned", "token", lower, "err", err)
	}
	if len(parts) == 0 {
		parts = []string{lower}
	}

	if s.cache != nil {
		s.cache.Add(lower, slices.Clone(parts))
	}
	return parts
}

// SplitAll splits every word using up to workers goroutines. Results keep
// the order of words.
func (s *Splitter) SplitAll(ctx context.Context, words []string, workers int) ([][]string, error) {
	if workers <= 0 {
		workers = 1
	}

	out := make([][]string, len(words))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i, word := range words {
		if gctx.Err() != nil {
			break
		}
		i, word := i, word
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			out[i] = s.Split(word)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// ClearCache clears the memoization cache.
func (s *Splitter) ClearCache() {
	if s.cache != nil {
		s.cache.Purge()
	}
}

// CacheSize returns the number of cached entries (0 if cache is disabled).
func (s *Splitter) CacheSize() int {
	if s.cache == nil {
		return 0
	}
	return s.cache.Len()
}

// CacheEnabled returns true if caching is enabled.
func (s *Splitter) CacheEnabled() bool {
	return s.cache != nil
}
