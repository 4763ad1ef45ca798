package query

import (
	"context"
	"time"
)

// Status is the lifecycle state of a cache entry.
type Status int

const (
	StatusIdle Status = iota
	StatusLoading
	StatusError
	StatusSuccess
)

func (s Status) String() string {
	switch s {
	case StatusIdle:
		return "idle"
	case StatusLoading:
		return "loading"
	case StatusError:
		return "error"
	case StatusSuccess:
		return "success"
	}
	return "unknown"
}

// Fetcher loads the data of one key.
type Fetcher func(ctx context.Context) (any, error)

// Entry is a read-only view of a cache entry.
type Entry struct {
	Key           Key
	Data          any
	HasData       bool
	Status        Status
	Err           error
	LastFetchedAt time.Time
	Stale         bool
	Fetching      bool
	Observers     int
}

type entry struct {
	key     Key
	data    any
	hasData bool
	status  Status
	err     error

	updatedAt  time.Time
	releasedAt time.Time
	stale      bool
	fetching   int
	observers  int

	// generation is bumped by every write that must win over in-flight
	// requests (cancel, invalidate, set, optimistic patch). A request only
	// settles into the entry if the generation is unchanged.
	generation uint64

	fetcher Fetcher
	pager   pager
	opts    Options
}

func (e *entry) view() Entry {
	return Entry{
		Key:           e.key,
		Data:          e.data,
		HasData:       e.hasData,
		Status:        e.status,
		Err:           e.err,
		LastFetchedAt: e.updatedAt,
		Stale:         e.stale,
		Fetching:      e.fetching > 0,
		Observers:     e.observers,
	}
}
