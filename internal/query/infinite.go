// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package query

import (
	"context"
	"strconv"

	"github.com/MKhiriev/legacy-keeper/models"
)

// FirstPageParam is the page number of the first page.
const FirstPageParam = 1

// InfiniteData is a paginated listing loaded page by page. Items of all
// pages, in fetch order, form the authoritative ordered view.
type InfiniteData[T any] struct {
	Pages      []models.Page[T]
	PageParams []int
}

// Items concatenates the items of every page.
func (d InfiniteData[T]) Items() []T {
	n := 0
	for _, p := range d.Pages {
		n += len(p.Items)
	}
	out := make([]T, 0, n)
	for _, p := range d.Pages {
		out = append(out, p.Items...)
	}
	return out
}

// HasNextPage reports the server flag of the last loaded page.
func (d InfiniteData[T]) HasNextPage() bool {
	return len(d.Pages) > 0 && d.Pages[len(d.Pages)-1].HasNextPage
}

// NextPageParam is len(pages)+1 while the server reports more pages.
func (d InfiniteData[T]) NextPageParam() (int, bool) {
	if !d.HasNextPage() {
		return 0, false
	}
	return len(d.Pages) + 1, true
}

// TotalCount is the total reported with the most recent page.
func (d InfiniteData[T]) TotalCount() int {
	if len(d.Pages) == 0 {
		return 0
	}
	return d.Pages[len(d.Pages)-1].TotalCount
}

// MapPages returns a copy with fn applied to every page.
func (d InfiniteData[T]) MapPages(fn func(models.Page[T]) models.Page[T]) InfiniteData[T] {
	out := InfiniteData[T]{
		Pages:      make([]models.Page[T], len(d.Pages)),
		PageParams: append([]int(nil), d.PageParams...),
	}
	for i, p := range d.Pages {
		out.Pages[i] = fn(p)
	}
	return out
}

// MapItems returns a copy where every item is replaced by fn's result, or
// dropped when fn reports false. Page totals are left unchanged.
func (d InfiniteData[T]) MapItems(fn func(T) (T, bool)) InfiniteData[T] {
	return d.MapPages(func(p models.Page[T]) models.Page[T] {
		items := make([]T, 0, len(p.Items))
		for _, it := range p.Items {
			if next, keep := fn(it); keep {
				items = append(items, next)
			}
		}
		p.Items = items
		return p
	})
}

// PageFetcher loads one page by its number.
type PageFetcher[T any] func(ctx context.Context, pageParam int) (models.Page[T], error)

// pager is the type-erased page loader stored on an entry so FetchNextPage
// can run without knowing T.
type pager interface {
	fetchPage(ctx context.Context, param int) (any, error)
}

type pagerOf[T any] struct {
	fetch PageFetcher[T]
}

func (p pagerOf[T]) fetchPage(ctx context.Context, param int) (any, error) {
	return p.fetch(ctx, param)
}

// InfiniteQuery returns the cached listing of key or loads it. A (re)load
// fetches pages 1..n sequentially where n is the number of pages currently
// cached (at least one), stopping early when the server reports the last
// page.
func InfiniteQuery[T any](ctx context.Context, c *Client, key Key, fetch PageFetcher[T], opts Options) (InfiniteData[T], error) {
	reload := func(ctx context.Context) (any, error) {
		n := 1
		if cur, ok := Data[InfiniteData[T]](c, key); ok && len(cur.Pages) > n {
			n = len(cur.Pages)
		}

		var data InfiniteData[T]
		for param := FirstPageParam; param <= n; param++ {
			page, err := fetch(ctx, param)
			if err != nil {
				return nil, err
			}
			data.Pages = append(data.Pages, page)
			data.PageParams = append(data.PageParams, param)
			if !page.HasNextPage {
				break
			}
		}
		return data, nil
	}

	c.mu.Lock()
	c.ensureLocked(key).pager = pagerOf[T]{fetch: fetch}
	c.mu.Unlock()

	v, err := c.Fetch(ctx, key, reload, opts)
	if err != nil {
		return InfiniteData[T]{}, err
	}
	data, ok := v.(InfiniteData[T])
	if !ok {
		return InfiniteData[T]{}, ErrTypeMismatch
	}
	return data, nil
}

// FetchNextPage loads page len(pages)+1 of key and appends it. Concurrent
// calls for the same page share one request. If the entry was rewritten
// while the page was in flight, the page is dropped and ErrSuperseded is
// returned with the current data.
func FetchNextPage[T any](ctx context.Context, c *Client, key Key) (InfiniteData[T], error) {
	id := key.id()

	c.mu.Lock()
	e, ok := c.entries[id]
	if !ok || !e.hasData || e.pager == nil {
		c.mu.Unlock()
		return InfiniteData[T]{}, ErrNotLoaded
	}
	cur, ok := e.data.(InfiniteData[T])
	if !ok {
		c.mu.Unlock()
		return InfiniteData[T]{}, ErrTypeMismatch
	}
	param, more := cur.NextPageParam()
	if !more {
		c.mu.Unlock()
		return cur, ErrNoNextPage
	}
	gen, p := e.generation, e.pager
	c.mu.Unlock()

	flightKey := id + "#next#" + strconv.Itoa(param) + "#" + strconv.FormatUint(gen, 10)
	ch := c.flights.DoChan(flightKey, func() (any, error) {
		c.setFetching(id, 1)
		defer c.setFetching(id, -1)

		page, err := p.fetchPage(context.WithoutCancel(ctx), param)
		if err != nil {
			c.settle(key, gen, nil, err)
			return nil, err
		}
		return appendPage[T](c, key, gen, param, page)
	})

	select {
	case <-ctx.Done():
		return cur, ctx.Err()
	case res := <-ch:
		data, _ := Data[InfiniteData[T]](c, key)
		if res.Err != nil {
			return data, res.Err
		}
		if out, ok := res.Val.(InfiniteData[T]); ok {
			return out, nil
		}
		return data, ErrTypeMismatch
	}
}

func appendPage[T any](c *Client, key Key, gen uint64, param int, page any) (any, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[key.id()]
	if !ok || e.generation != gen {
		return nil, ErrSuperseded
	}
	cur, ok := e.data.(InfiniteData[T])
	if !ok {
		return nil, ErrTypeMismatch
	}
	typed, ok := page.(models.Page[T])
	if !ok {
		return nil, ErrTypeMismatch
	}
	if len(cur.Pages) != param-1 {
		return nil, ErrSuperseded
	}

	next := InfiniteData[T]{
		Pages:      append(append([]models.Page[T](nil), cur.Pages...), typed),
		PageParams: append(append([]int(nil), cur.PageParams...), param),
	}
	e.data = next
	e.status = StatusSuccess
	e.err = nil
	e.updatedAt = c.now()
	return next, nil
}

// Data returns the cached data of key as T.
func Data[T any](c *Client, key Key) (T, bool) {
	var zero T
	v, ok := c.GetQueryData(key)
	if !ok {
		return zero, false
	}
	typed, ok := v.(T)
	return typed, ok
}

// Query is Fetch with a typed loader.
func Query[T any](ctx context.Context, c *Client, key Key, fn func(ctx context.Context) (T, error), opts Options) (T, error) {
	var zero T
	v, err := c.Fetch(ctx, key, func(ctx context.Context) (any, error) {
		return fn(ctx)
	}, opts)
	if err != nil {
		return zero, err
	}
	typed, ok := v.(T)
	if !ok {
		return zero, ErrTypeMismatch
	}
	return typed, nil
}
