package http

import (
	"net/http"
	"net/url"
	"strconv"

	"github.com/MKhiriev/legacy-keeper/internal/app"
	"github.com/MKhiriev/legacy-keeper/internal/utils"
	"github.com/MKhiriev/legacy-keeper/models"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

// pageWindow reads page and pageSize from the query. Missing or malformed
// sizes fall back to the default. ok is false for a malformed page or one
// past the last page of total items; page 1 always exists.
func pageWindow(q url.Values, total int) (page, size int, ok bool) {
	page, size = 1, defaultPageSize
	if raw := q.Get("pageSize"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			size = min(n, maxPageSize)
		}
	}
	if raw := q.Get("page"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			return 0, 0, false
		}
		page = n
	}
	if last := max((total+size-1)/size, 1); page > last {
		return 0, 0, false
	}
	return page, size, true
}

// pageLink is the absolute URL of the same listing at page.
func pageLink(r *http.Request, page int) *string {
	u := *r.URL
	u.Host = r.Host
	u.Scheme = "http"
	if r.TLS != nil {
		u.Scheme = "https"
	}
	q := u.Query()
	q.Set("page", strconv.Itoa(page))
	u.RawQuery = q.Encode()
	link := u.String()
	return &link
}

// writePage renders one page of items in the paginated envelope. Asking
// for a page past the end is a 404, except page 1 of an empty listing.
func writePage[T any](w http.ResponseWriter, r *http.Request, items []T) {
	page, size, ok := pageWindow(r.URL.Query(), len(items))
	if !ok {
		utils.WriteDetail(w, app.MsgInvalidPage, http.StatusNotFound)
		return
	}
	start := (page - 1) * size
	end := min(start+size, len(items))

	resp := models.PaginatedResponse[T]{
		Count:   len(items),
		Results: items[start:end],
	}
	if resp.Results == nil {
		resp.Results = []T{}
	}
	if end < len(items) {
		resp.Next = pageLink(r, page+1)
	}
	if page > 1 {
		resp.Previous = pageLink(r, page-1)
	}
	utils.WriteJSON(w, resp, http.StatusOK)
}
