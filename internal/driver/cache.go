package driver

import (
	"sync"

	"regxl/internal/codegen"
	"regxl/internal/resolver"
)

// cacheKey identifies one compilation: the exact source text plus the
// registry by pointer identity. Two registries with equal contents are still
// distinct keys; callers who want cache hits must reuse one *Registry.
type cacheKey struct {
	src string
	reg *resolver.Registry
}

// Cache memoizes successful compilations. Failed compilations leave no entry,
// so a source that failed once is re-reported with fresh diagnostics on every
// attempt.
type Cache struct {
	mu      sync.Mutex
	entries map[cacheKey]codegen.Pattern
	hits    uint64
	misses  uint64
	tokens  uint64 // tokens lexed across all misses
	opts    CompileOptions
}

// NewCache creates an empty cache bound to opts. The registry inside opts is
// part of every key this cache produces.
func NewCache(opts CompileOptions) *Cache {
	return &Cache{
		entries: make(map[cacheKey]codegen.Pattern),
		opts:    opts,
	}
}

// Compile returns the cached pattern for src or runs the pipeline and stores
// the result. The lock is held across the compute so concurrent callers with
// the same key never compile twice.
func (c *Cache) Compile(name, src string) *CompileResult {
	key := cacheKey{src: src, reg: c.opts.Registry}

	c.mu.Lock()
	defer c.mu.Unlock()

	if pattern, ok := c.entries[key]; ok {
		c.hits++
		return &CompileResult{Pattern: pattern, OK: true}
	}
	c.misses++

	res := CompileSource(name, src, c.opts)
	c.tokens += res.TokensLexed
	if res.OK {
		c.entries[key] = res.Pattern
	}
	return res
}

// Len returns the number of cached patterns.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// Stats returns the hit and miss counters.
func (c *Cache) Stats() (hits, misses uint64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.hits, c.misses
}

// TokensLexed returns the total tokens scanned by cache misses. Hits serve
// the stored pattern without touching the lexer, so a repeat compile leaves
// this counter unchanged.
func (c *Cache) TokensLexed() uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.tokens
}

// Purge drops every entry and resets the counters.
func (c *Cache) Purge() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[cacheKey]codegen.Pattern)
	c.hits = 0
	c.misses = 0
	c.tokens = 0
}
