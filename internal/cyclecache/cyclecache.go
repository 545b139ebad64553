// Package cyclecache memoizes cycle detection results.
//
// Results are keyed by a SipHash-2-4 digest of the request (operation,
// start, graph and options in canonical JSON). Detection is a pure function
// of that input, so a cached answer never goes stale. Concurrent misses on
// the same key share one computation.
package cyclecache

import (
	"context"
	"crypto/rand"
	"encoding/binary"
	"encoding/json"
	"fmt"
	"strconv"
	"sync/atomic"

	"github.com/dchest/siphash"
	lru "github.com/hashicorp/golang-lru"
	"go.brendoncarroll.net/stdctx/logctx"
	"golang.org/x/exp/slices"
	"golang.org/x/sync/singleflight"

	"github.com/katalvlaran/floydcycle/floyd"
)

// DefaultSize is the number of results kept when New is given size <= 0.
const DefaultSize = 1024

const (
	opDetect = "detect"
	opFind   = "find"
)

// Stats counts cache lookups.
type Stats struct {
	Hits   uint64 `json:"hits"`
	Misses uint64 `json:"misses"`
	Len    int    `json:"len"`
}

// Cache is safe for concurrent use.
type Cache struct {
	lru    *lru.Cache
	group  singleflight.Group
	k0, k1 uint64

	hits, misses atomic.Uint64
}

// New returns a Cache holding up to size results.
func New(size int) (*Cache, error) {
	if size <= 0 {
		size = DefaultSize
	}
	l, err := lru.New(size)
	if err != nil {
		return nil, fmt.Errorf("cyclecache: %w", err)
	}
	var key [16]byte
	if _, err := rand.Read(key[:]); err != nil {
		return nil, fmt.Errorf("cyclecache: seeding digest key: %w", err)
	}

	return &Cache{
		lru: l,
		k0:  binary.LittleEndian.Uint64(key[:8]),
		k1:  binary.LittleEndian.Uint64(key[8:]),
	}, nil
}

// request is the canonical form that gets digested.
type request struct {
	Op      string        `json:"op"`
	Start   int           `json:"start"`
	Graph   floyd.Graph   `json:"graph"`
	Options floyd.Options `json:"options"`
}

// found is the cached value of a Find call.
type found struct {
	cycle floyd.Cycle
	ok    bool
}

// Digest returns the cache key of a request.
func (c *Cache) Digest(op string, start int, g floyd.Graph, opts floyd.Options) (uint64, error) {
	data, err := json.Marshal(request{Op: op, Start: start, Graph: g, Options: opts})
	if err != nil {
		return 0, fmt.Errorf("cyclecache: encoding request: %w", err)
	}

	return siphash.Hash(c.k0, c.k1, data), nil
}

// Detect returns floyd.DetectCycles(g, opts), computing it at most once per
// distinct input while the entry stays cached. The returned slice is owned
// by the caller.
func (c *Cache) Detect(ctx context.Context, g floyd.Graph, opts floyd.Options) ([]floyd.Cycle, error) {
	v, err := c.do(ctx, opDetect, 0, g, opts, func() any {
		return floyd.DetectCycles(g, floyd.WithOptions(opts))
	})
	if err != nil {
		return nil, err
	}

	return slices.Clone(v.([]floyd.Cycle)), nil
}

// Find returns floyd.Floyd(g, start, opts) through the cache.
func (c *Cache) Find(ctx context.Context, g floyd.Graph, start int, opts floyd.Options) (floyd.Cycle, bool, error) {
	v, err := c.do(ctx, opFind, start, g, opts, func() any {
		cy, ok := floyd.Floyd(g, start, floyd.WithOptions(opts))
		return found{cycle: cy, ok: ok}
	})
	if err != nil {
		return floyd.Cycle{}, false, err
	}
	f := v.(found)

	return f.cycle, f.ok, nil
}

// Stats reports lookup counters and the current number of entries.
func (c *Cache) Stats() Stats {
	return Stats{
		Hits:   c.hits.Load(),
		Misses: c.misses.Load(),
		Len:    c.lru.Len(),
	}
}

// Purge drops every cached result.
func (c *Cache) Purge() {
	c.lru.Purge()
}

func (c *Cache) do(ctx context.Context, op string, start int, g floyd.Graph, opts floyd.Options, compute func() any) (any, error) {
	key, err := c.Digest(op, start, g, opts)
	if err != nil {
		return nil, err
	}
	if v, ok := c.lru.Get(key); ok {
		c.hits.Add(1)
		return v, nil
	}

	var computed bool
	v, err, _ := c.group.Do(strconv.FormatUint(key, 16), func() (any, error) {
		// Another caller may have filled the entry while we waited.
		if v, ok := c.lru.Get(key); ok {
			return v, nil
		}
		computed = true
		c.misses.Add(1)
		v := compute()
		c.lru.Add(key, v)
		logctx.Infof(ctx, "cyclecache: computed %s over %d nodes, digest %016x", op, len(g), key)

		return v, nil
	})
	if err != nil {
		return nil, err
	}
	if !computed {
		c.hits.Add(1)
	}

	return v, nil
}
