// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package query is the keyed cache of server-derived state shared by the
// client services.
//
// A *Client is created once per process and passed to every service that
// reads or mutates server data. Entries are addressed by [Key]; concurrent
// fetches of the same key share one request, results of superseded requests
// are discarded, paginated listings are cached as [InfiniteData] and
// mutations patch the cache optimistically through [Mutate].
package query

import (
	"context"
	"sort"
	"strconv"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/MKhiriev/legacy-keeper/internal/logger"
)

// Client is the cache. It is safe for concurrent use.
type Client struct {
	mu      sync.Mutex
	entries map[string]*entry
	flights singleflight.Group

	// seq feeds entry generations. It is client-wide so a removed and
	// recreated key never reuses a generation of its previous life.
	seq uint64

	now          func() time.Time
	gcTime       time.Duration
	triggerLimit int
	logger       *logger.Logger
}

// NewClient constructs an empty cache.
func NewClient(opts ...ClientOption) *Client {
	c := &Client{
		entries:      make(map[string]*entry),
		now:          time.Now,
		gcTime:       DefaultGCTime,
		triggerLimit: 4,
		logger:       logger.Nop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// ensureLocked returns the entry for key, creating an idle one. c.mu must be
// held.
func (c *Client) ensureLocked(key Key) *entry {
	id := key.id()
	e, ok := c.entries[id]
	if !ok {
		e = &entry{key: NewKey(key...), status: StatusIdle}
		c.bumpLocked(e)
		c.entries[id] = e
	}
	return e
}

func (c *Client) bumpLocked(e *entry) {
	c.seq++
	e.generation = c.seq
}

func (c *Client) freshLocked(e *entry) bool {
	if !e.hasData || e.stale || e.status == StatusError {
		return false
	}
	if e.opts.StaleTime == StaleNever {
		return true
	}
	return c.now().Sub(e.updatedAt) < e.opts.StaleTime
}

// matchLocked returns the entries under prefix in key order. c.mu must be
// held.
func (c *Client) matchLocked(prefix Key) []*entry {
	var out []*entry
	for _, e := range c.entries {
		if e.key.HasPrefix(prefix) {
			out = append(out, e)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].key.id() < out[j].key.id() })
	return out
}

// Fetch returns the data of key, loading it with fn unless the cached data
// is still fresh under opts.StaleTime. fn and opts are remembered for later
// refetches (Invalidate, Trigger).
//
// The caller always receives what was fetched for it. Whether the result is
// written to the cache depends on the entry not having been rewritten in the
// meantime.
func (c *Client) Fetch(ctx context.Context, key Key, fn Fetcher, opts Options) (any, error) {
	c.mu.Lock()
	e := c.ensureLocked(key)
	e.fetcher = fn
	e.opts = opts
	if c.freshLocked(e) {
		data := e.data
		c.mu.Unlock()
		return data, nil
	}
	c.mu.Unlock()

	return c.refetch(ctx, key)
}

// Refetch loads key again with its registered fetcher, regardless of
// freshness.
func (c *Client) Refetch(ctx context.Context, key Key) (any, error) {
	return c.refetch(ctx, key)
}

func (c *Client) refetch(ctx context.Context, key Key) (any, error) {
	id := key.id()

	c.mu.Lock()
	e, ok := c.entries[id]
	if !ok || e.fetcher == nil {
		c.mu.Unlock()
		return nil, ErrNoFetcher
	}
	gen := e.generation
	fn, opts := e.fetcher, e.opts
	if !e.hasData {
		e.status = StatusLoading
	}
	c.mu.Unlock()

	flightKey := id + "#" + strconv.FormatUint(gen, 10)
	ch := c.flights.DoChan(flightKey, func() (any, error) {
		c.setFetching(id, 1)
		defer c.setFetching(id, -1)

		// Detached from the first caller: other callers may be waiting on
		// the same flight.
		data, err := c.run(context.WithoutCancel(ctx), fn, opts)
		c.settle(key, gen, data, err)
		return data, err
	})

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-ch:
		return res.Val, res.Err
	}
}

func (c *Client) setFetching(id string, delta int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if e, ok := c.entries[id]; ok {
		e.fetching += delta
		if e.fetching < 0 {
			e.fetching = 0
		}
	}
}

func (c *Client) run(ctx context.Context, fn Fetcher, opts Options) (any, error) {
	var err error
	for attempt := 0; attempt <= opts.Retry; attempt++ {
		if attempt > 0 && opts.RetryDelay > 0 {
			timer := time.NewTimer(opts.RetryDelay * time.Duration(attempt))
			select {
			case <-ctx.Done():
				timer.Stop()
				return nil, ctx.Err()
			case <-timer.C:
			}
		}

		var data any
		data, err = fn(ctx)
		if err == nil {
			return data, nil
		}
	}
	return nil, err
}

// settle writes a fetch result into the entry if nothing superseded it.
func (c *Client) settle(key Key, gen uint64, data any, err error) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[key.id()]
	if !ok || e.generation != gen {
		c.logger.Debug().
			Str("func", "query.settle").
			Stringer("key", key).
			Msg("discarding result of superseded request")
		return false
	}

	if err != nil {
		e.status = StatusError
		e.err = err
		return true
	}

	e.data = data
	e.hasData = true
	e.status = StatusSuccess
	e.err = nil
	e.stale = false
	e.updatedAt = c.now()
	return true
}

// Entry returns a view of the entry for key.
func (c *Client) Entry(key Key) (Entry, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[key.id()]
	if !ok {
		return Entry{}, false
	}
	return e.view(), true
}

// GetQueryData returns the cached data of key.
func (c *Client) GetQueryData(key Key) (any, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[key.id()]
	if !ok || !e.hasData {
		return nil, false
	}
	return e.data, true
}

// SetQueryData replaces the data of key, creating the entry when needed. In
// flight requests for key are superseded.
func (c *Client) SetQueryData(key Key, data any) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e := c.ensureLocked(key)
	e.data = data
	e.hasData = true
	e.status = StatusSuccess
	e.err = nil
	e.updatedAt = c.now()
	c.bumpLocked(e)
}

// Snapshot is the saved value of one entry.
type Snapshot struct {
	Key     Key
	Data    any
	HasData bool
}

// GetQueriesData returns the data of every entry under prefix, in key order.
func (c *Client) GetQueriesData(prefix Key) []Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.snapshotLocked([]Key{prefix})
}

func (c *Client) snapshotLocked(prefixes []Key) []Snapshot {
	seen := make(map[string]struct{})
	var out []Snapshot
	for _, prefix := range prefixes {
		for _, e := range c.matchLocked(prefix) {
			id := e.key.id()
			if _, dup := seen[id]; dup {
				continue
			}
			seen[id] = struct{}{}
			out = append(out, Snapshot{Key: e.key, Data: e.data, HasData: e.hasData})
		}
	}
	return out
}

// SetQueriesData rewrites the data of every entry under prefix that holds
// data. fn must return a new value rather than mutate the one it receives:
// the old value may be held by a snapshot. It returns the number of entries
// rewritten.
func (c *Client) SetQueriesData(prefix Key, fn func(key Key, data any) any) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.updateLocked(prefix, fn)
}

func (c *Client) updateLocked(prefix Key, fn func(key Key, data any) any) int {
	n := 0
	for _, e := range c.matchLocked(prefix) {
		if !e.hasData {
			continue
		}
		e.data = fn(e.key, e.data)
		c.bumpLocked(e)
		n++
	}
	return n
}

// Restore puts snapshots back, superseding in-flight requests for their
// keys.
func (c *Client) Restore(snaps []Snapshot) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, s := range snaps {
		e := c.ensureLocked(s.Key)
		e.data = s.Data
		e.hasData = s.HasData
		c.bumpLocked(e)
	}
}

// Invalidate marks every entry under prefix stale so the next observation
// refetches it. In-flight requests for those keys are superseded. It returns
// the number of entries marked.
func (c *Client) Invalidate(prefix Key) int {
	c.mu.Lock()
	defer c.mu.Unlock()

	matched := c.matchLocked(prefix)
	for _, e := range matched {
		e.stale = true
		c.bumpLocked(e)
	}
	return len(matched)
}

// Cancel supersedes in-flight requests under prefix without touching data.
func (c *Client) Cancel(prefix Key) int {
	c.mu.Lock()
	defer c.mu.Unlock()

	matched := c.matchLocked(prefix)
	for _, e := range matched {
		c.bumpLocked(e)
	}
	return len(matched)
}

// Remove drops every entry under prefix. Results of in-flight requests for
// them are discarded.
func (c *Client) Remove(prefix Key) int {
	c.mu.Lock()
	defer c.mu.Unlock()

	matched := c.matchLocked(prefix)
	for _, e := range matched {
		delete(c.entries, e.key.id())
	}
	return len(matched)
}

// Observe registers interest in key, creating the entry on first
// subscription. The returned release func is idempotent.
func (c *Client) Observe(key Key) (release func()) {
	c.mu.Lock()
	c.ensureLocked(key).observers++
	c.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			c.mu.Lock()
			defer c.mu.Unlock()
			if e, ok := c.entries[key.id()]; ok && e.observers > 0 {
				e.observers--
				if e.observers == 0 {
					e.releasedAt = c.now()
				}
			}
		})
	}
}

// Collect removes entries that have not been observed for the GC time and
// have no request in flight. It returns the number removed.
func (c *Client) Collect() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	removed := 0
	for id, e := range c.entries {
		if e.observers > 0 || e.fetching > 0 {
			continue
		}
		last := e.releasedAt
		if e.updatedAt.After(last) {
			last = e.updatedAt
		}
		if now.Sub(last) >= c.gcTime {
			delete(c.entries, id)
			removed++
		}
	}
	return removed
}

// Len returns the number of entries.
func (c *Client) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// Clear drops every entry, as on logout.
func (c *Client) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[string]*entry)
}
