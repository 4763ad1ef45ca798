package query

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// Event is an explicit refetch trigger. Which queries react to it is decided
// per query through Options.
type Event int

const (
	// EventFocus fires when the user returns to the application.
	EventFocus Event = iota + 1
	// EventReconnect fires when connectivity is restored.
	EventReconnect
	// EventMount fires when a view starts observing its queries again.
	EventMount
)

func (e Event) String() string {
	switch e {
	case EventFocus:
		return "focus"
	case EventReconnect:
		return "reconnect"
	case EventMount:
		return "mount"
	}
	return "unknown"
}

// Trigger refetches every observed, non-fresh query whose options opt into
// ev. Failures are background failures: they are logged and swallowed, and
// the next trigger retries. It returns the number of queries refetched.
func (c *Client) Trigger(ctx context.Context, ev Event) int {
	c.mu.Lock()
	var keys []Key
	for _, e := range c.entries {
		if e.observers == 0 || e.fetcher == nil || !e.opts.refetchOn(ev) || c.freshLocked(e) {
			continue
		}
		keys = append(keys, e.key)
	}
	c.mu.Unlock()

	g := new(errgroup.Group)
	g.SetLimit(c.triggerLimit)
	for _, key := range keys {
		g.Go(func() error {
			if _, err := c.refetch(ctx, key); err != nil {
				c.logger.Debug().Err(err).
					Str("func", "query.Trigger").
					Stringer("event", ev).
					Stringer("key", key).
					Msg("background refetch failed")
			}
			return nil
		})
	}
	_ = g.Wait()

	return len(keys)
}
