package query

import "errors"

var (
	// ErrNoFetcher is returned when a key is refetched before any Fetch
	// registered how to load it.
	ErrNoFetcher = errors.New("query: no fetcher registered for key")

	// ErrNotLoaded is returned by FetchNextPage before the first page exists.
	ErrNotLoaded = errors.New("query: infinite query not loaded")

	// ErrNoNextPage is returned by FetchNextPage when the server reported
	// the last page.
	ErrNoNextPage = errors.New("query: no next page")

	// ErrSuperseded is returned when a page arrived for a key that was
	// cancelled, invalidated or rewritten while the request was in flight.
	ErrSuperseded = errors.New("query: result superseded by a newer state")

	// ErrTypeMismatch is returned when cached data has a different type than
	// the caller asked for.
	ErrTypeMismatch = errors.New("query: cached data has unexpected type")
)
