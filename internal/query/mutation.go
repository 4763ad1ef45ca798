// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package query

import "context"

// Patch is one optimistic rewrite: Update is applied to the data of every
// entry under Prefix that holds data.
type Patch struct {
	Prefix Key
	Update func(key Key, data any) any
}

// Mutation describes a server write with an optimistic cache update.
//
// Patches are applied together under one lock before Call runs. On success
// Reconcile receives the server result and may rewrite or invalidate the
// cache. On failure Rollback receives the snapshot taken before the patches;
// a nil Rollback restores it.
type Mutation[R any] struct {
	Patches   []Patch
	Call      func(ctx context.Context) (R, error)
	Reconcile func(c *Client, result R)
	Rollback  func(c *Client, snaps []Snapshot)
}

// Mutate runs m. The error of Call is returned unchanged after rollback.
func Mutate[R any](ctx context.Context, c *Client, m Mutation[R]) (R, error) {
	snaps := c.apply(m.Patches)

	result, err := m.Call(ctx)
	if err != nil {
		if m.Rollback != nil {
			m.Rollback(c, snaps)
		} else {
			c.Restore(snaps)
		}
		return result, err
	}

	if m.Reconcile != nil {
		m.Reconcile(c, result)
	}
	return result, nil
}

// apply snapshots every entry under the patch prefixes and runs the patches,
// all under one lock so no reader sees a half-applied mutation.
func (c *Client) apply(patches []Patch) []Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()

	prefixes := make([]Key, 0, len(patches))
	for _, p := range patches {
		prefixes = append(prefixes, p.Prefix)
	}
	snaps := c.snapshotLocked(prefixes)

	for _, p := range patches {
		if p.Update != nil {
			c.updateLocked(p.Prefix, p.Update)
		}
	}
	return snaps
}

// Update adapts a typed updater to the untyped form used by Patch and
// SetQueriesData. Entries holding another type are left as they are.
func Update[T any](fn func(key Key, data T) T) func(Key, any) any {
	return func(key Key, data any) any {
		typed, ok := data.(T)
		if !ok {
			return data
		}
		return fn(key, typed)
	}
}
