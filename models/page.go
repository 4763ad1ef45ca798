package models

// Page is one page of a paginated listing. HasNextPage is taken from the
// server, never inferred from the page size.
type Page[T any] struct {
	Items           []T  `json:"items"`
	TotalCount      int  `json:"totalCount"`
	HasNextPage     bool `json:"hasNextPage"`
	HasPreviousPage bool `json:"hasPreviousPage"`
}

// PaginatedResponse is the list envelope used by the REST API.
type PaginatedResponse[T any] struct {
	Count    int     `json:"count"`
	Next     *string `json:"next"`
	Previous *string `json:"previous"`
	Results  []T     `json:"results"`
}

// ToPage converts the envelope into a Page, mapping every result with fn.
// A zero count falls back to the number of mapped items.
func ToPage[A, T any](resp PaginatedResponse[A], fn func(A) T) Page[T] {
	items := make([]T, 0, len(resp.Results))
	for _, r := range resp.Results {
		items = append(items, fn(r))
	}

	total := resp.Count
	if total == 0 {
		total = len(items)
	}

	return Page[T]{
		Items:           items,
		TotalCount:      total,
		HasNextPage:     resp.Next != nil && *resp.Next != "",
		HasPreviousPage: resp.Previous != nil && *resp.Previous != "",
	}
}
