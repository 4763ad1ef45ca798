package query

import (
	"math"
	"time"

	"github.com/MKhiriev/legacy-keeper/internal/logger"
)

// StaleNever keeps data fresh until it is invalidated.
const StaleNever = time.Duration(math.MaxInt64)

// DefaultGCTime is how long an unobserved entry survives before Collect
// removes it.
const DefaultGCTime = 5 * time.Minute

// Options configure one query. The zero value never treats data as fresh,
// never retries and never refetches on any Trigger event.
type Options struct {
	// StaleTime is how long fetched data is served without a request.
	StaleTime time.Duration

	// Retry is the number of extra attempts after a failed fetch.
	Retry      int
	RetryDelay time.Duration

	// Trigger flags: which events refetch this query while it is observed.
	RefetchOnFocus     bool
	RefetchOnReconnect bool
	RefetchOnMount     bool
}

// DefaultOptions refetch on every trigger and never serve cached data
// without a request.
func DefaultOptions() Options {
	return Options{
		RefetchOnFocus:     true,
		RefetchOnReconnect: true,
		RefetchOnMount:     true,
	}
}

func (o Options) refetchOn(ev Event) bool {
	switch ev {
	case EventFocus:
		return o.RefetchOnFocus
	case EventReconnect:
		return o.RefetchOnReconnect
	case EventMount:
		return o.RefetchOnMount
	}
	return false
}

// ClientOption configures a Client.
type ClientOption func(*Client)

// WithLogger sets the logger used for background failures and discarded
// results.
func WithLogger(l *logger.Logger) ClientOption {
	return func(c *Client) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithClock replaces time.Now.
func WithClock(now func() time.Time) ClientOption {
	return func(c *Client) {
		if now != nil {
			c.now = now
		}
	}
}

// WithGCTime sets how long unobserved entries are kept.
func WithGCTime(d time.Duration) ClientOption {
	return func(c *Client) {
		c.gcTime = d
	}
}

// WithTriggerConcurrency bounds parallel refetches started by Trigger.
func WithTriggerConcurrency(n int) ClientOption {
	return func(c *Client) {
		if n > 0 {
			c.triggerLimit = n
		}
	}
}
