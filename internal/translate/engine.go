// Package translate resolves text fragments into a target language by racing
// several translation strategies, scoring their candidates and memoizing the
// winner.
package translate

import (
	"context"
	"fmt"
	"log"
	"strings"
	"sync"
	"sync/atomic"
	"time"
	"unicode"
	"unicode/utf8"

	"golang.org/x/sync/singleflight"

	"github.com/vmarik/lingo/internal/lang"
	"github.com/vmarik/lingo/internal/lexicon"
)

// DefaultAdapterTimeout bounds each strategy invocation.
const DefaultAdapterTimeout = 8 * time.Second

// Config wires an Engine.
type Config struct {
	Adapters       []Adapter // in priority order, remote first
	Scorer         *Scorer
	Cache          *Cache
	Logger         *log.Logger
	AdapterTimeout time.Duration
}

// Engine orchestrates adapters, scoring and the cache. Shared by every
// session; all methods are safe for concurrent use.
type Engine struct {
	adapters []Adapter
	scorer   *Scorer
	cache    *Cache
	logger   *log.Logger
	timeout  time.Duration

	group singleflight.Group

	total         atomic.Uint64
	cacheHits     atomic.Uint64
	apiCalls      atomic.Uint64
	dictFallbacks atomic.Uint64
}

// New returns an Engine for the given configuration.
func New(cfg Config) *Engine {
	timeout := cfg.AdapterTimeout
	if timeout <= 0 {
		timeout = DefaultAdapterTimeout
	}
	cache := cfg.Cache
	if cache == nil {
		cache = NewCache(DefaultCacheCapacity)
	}
	return &Engine{
		adapters: cfg.Adapters,
		scorer:   cfg.Scorer,
		cache:    cache,
		logger:   cfg.Logger,
		timeout:  timeout,
	}
}

// Translate resolves text from src to dst. It always returns a renderable
// string: empty input yields an empty string, and total strategy failure
// yields a sentinel that embeds the original text. Failures of individual
// adapters never surface.
func (e *Engine) Translate(ctx context.Context, text string, src, dst lang.Code) string {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return ""
	}

	e.total.Add(1)

	key := CacheKey(src, dst, trimmed)
	if cached, ok := e.cache.Get(key); ok {
		e.cacheHits.Add(1)
		return cached
	}

	// Identical concurrent requests collapse into one fan-out; followers
	// share the leader's result.
	result, _, _ := e.group.Do(key, func() (any, error) {
		if cached, ok := e.cache.Get(key); ok {
			return cached, nil
		}
		return e.resolve(ctx, trimmed, src, dst, key), nil
	})
	return result.(string)
}

func (e *Engine) resolve(ctx context.Context, text string, src, dst lang.Code, key string) string {
	candidates := e.fanOut(ctx, text, src, dst)
	if len(candidates) == 0 {
		e.logger.Printf("translate: no candidates for %q (%s→%s)", text, src, dst)
		return fmt.Sprintf("[Translation unavailable: %s]", text)
	}

	best := candidates[0]
	for _, c := range candidates[1:] {
		if c.Score > best.Score {
			best = c
		}
	}

	final := postprocess(best.Text)
	e.cache.Put(key, final)
	e.logger.Printf("translate: %q → %q via %s (score %.2f)", text, final, best.Adapter, best.Score)
	return final
}

// fanOut invokes every adapter in parallel, each under its own timeout, and
// returns the scored candidates ordered by adapter priority.
func (e *Engine) fanOut(ctx context.Context, text string, src, dst lang.Code) []Candidate {
	processed := lexicon.Normalize(text)

	results := make([]Candidate, len(e.adapters))
	ok := make([]bool, len(e.adapters))

	var wg sync.WaitGroup
	for i, a := range e.adapters {
		wg.Add(1)
		go func(i int, a Adapter) {
			defer wg.Done()
			attemptCtx, cancel := context.WithTimeout(ctx, e.timeout)
			defer cancel()
			if out, hit := a.Attempt(attemptCtx, processed, src, dst); hit {
				results[i] = Candidate{Text: out, Method: a.Method(), Adapter: a.Name()}
				ok[i] = true
			}
		}(i, a)
	}
	wg.Wait()

	candidates := make([]Candidate, 0, len(e.adapters))
	for i := range results {
		if !ok[i] {
			continue
		}
		c := results[i]
		switch c.Method {
		case MethodRemote:
			e.apiCalls.Add(1)
		case MethodLexical:
			e.dictFallbacks.Add(1)
		}
		c.Score = e.scorer.Score(text, c.Text, src, dst)
		candidates = append(candidates, c)
	}
	return candidates
}

// postprocess trims the winner and capitalizes its first letter.
func postprocess(text string) string {
	text = strings.TrimSpace(text)
	if text == "" {
		return text
	}
	r, size := utf8.DecodeRuneInString(text)
	return string(unicode.ToUpper(r)) + text[size:]
}

// ClearCache empties the translation cache.
func (e *Engine) ClearCache() {
	e.cache.Clear()
}

// CacheSize returns the number of cached translations.
func (e *Engine) CacheSize() int {
	return e.cache.Len()
}

// Stats is a point-in-time snapshot of engine counters.
type Stats struct {
	TotalTranslations   uint64 `json:"totalTranslations"`
	CacheHits           uint64 `json:"cacheHits"`
	APICalls            uint64 `json:"apiCalls"`
	DictionaryFallbacks uint64 `json:"dictionaryFallbacks"`
	CacheHitRate        string `json:"cacheHitRate"`
	CacheSize           int    `json:"cacheSize"`
}

// Stats returns current counters and cache occupancy.
func (e *Engine) Stats() Stats {
	total := e.total.Load()
	hits := e.cacheHits.Load()
	rate := 0.0
	if total > 0 {
		rate = float64(hits) / float64(total) * 100
	}
	return Stats{
		TotalTranslations:   total,
		CacheHits:           hits,
		APICalls:            e.apiCalls.Load(),
		DictionaryFallbacks: e.dictFallbacks.Load(),
		CacheHitRate:        fmt.Sprintf("%.1f%%", rate),
		CacheSize:           e.cache.Len(),
	}
}
