// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"net/url"
	"strconv"
	"strings"
	"time"
)

// MediaSort is the ordering requested for media listings.
type MediaSort string

const (
	SortNewest MediaSort = "newest"
	SortOldest MediaSort = "oldest"
	SortTitle  MediaSort = "title"
)

// MediaSortField is the date field newest/oldest orderings are based on.
type MediaSortField string

const (
	SortByCreatedAt MediaSortField = "created_at"
	SortByDateTaken MediaSortField = "date_taken"
)

// MediaQueryParams enumerates every filter of the media listings. Pagination
// is handled by the caller.
type MediaQueryParams struct {
	Search    string
	Type      MediaType
	Types     []MediaType
	People    []string
	Tags      []string
	Locations []string
	Era       string
	DateFrom  string
	DateTo    string
	SortBy    MediaSort
	SortField MediaSortField
}

// WithoutSort returns p with ordering dropped, as used by the filters
// endpoint.
func (p MediaQueryParams) WithoutSort() MediaQueryParams {
	p.SortBy = ""
	p.SortField = ""
	return p
}

// Values renders the query string parameters. The output is canonical:
// identical params always encode identically, so it doubles as a cache key
// part.
func (p MediaQueryParams) Values() url.Values {
	v := url.Values{}
	if s := strings.TrimSpace(p.Search); s != "" {
		v.Set("search", s)
	}
	if p.Type != "" {
		v.Set("mediaType", string(p.Type))
	}
	if len(p.Types) > 0 {
		types := make([]string, 0, len(p.Types))
		for _, t := range p.Types {
			types = append(types, string(t))
		}
		setCSV(v, "mediaType", types)
	}
	setCSV(v, "people", p.People)
	setCSV(v, "tags", p.Tags)
	setCSV(v, "locations", p.Locations)
	if p.Era != "" {
		v.Set("era", p.Era)
	}
	if p.DateFrom != "" {
		v.Set("dateFrom", p.DateFrom)
	}
	if p.DateTo != "" {
		v.Set("dateTo", p.DateTo)
	}

	if p.SortBy != "" {
		field := SortByCreatedAt
		if p.SortField == SortByDateTaken {
			field = SortByDateTaken
		}
		v.Set("sort", string(p.SortBy))
		switch p.SortBy {
		case SortNewest:
			v.Set("ordering", "-"+string(field))
		case SortOldest:
			v.Set("ordering", string(field))
		case SortTitle:
			v.Set("ordering", "title")
		}
	}
	return v
}

func setCSV(v url.Values, key string, values []string) {
	normalized := make([]string, 0, len(values))
	for _, value := range values {
		if s := strings.TrimSpace(value); s != "" {
			normalized = append(normalized, s)
		}
	}
	if len(normalized) > 0 {
		v.Set(key, strings.Join(normalized, ","))
	}
}

// MembersQueryParams filters the member list.
type MembersQueryParams struct {
	Search string
	Role   UserRole
	Status MemberStatus
}

// Normalize trims the search term.
func (p MembersQueryParams) Normalize() MembersQueryParams {
	p.Search = strings.TrimSpace(p.Search)
	return p
}

// KeyParts returns the normalized filters in a fixed order.
func (p MembersQueryParams) KeyParts() []string {
	n := p.Normalize()
	return []string{n.Search, string(n.Role), string(n.Status)}
}

// Values renders the query string parameters.
func (p MembersQueryParams) Values() url.Values {
	n := p.Normalize()
	v := url.Values{}
	if n.Search != "" {
		v.Set("search", n.Search)
	}
	if n.Role != "" {
		v.Set("role", string(n.Role))
	}
	if n.Status != "" {
		v.Set("isActive", strconv.FormatBool(n.Status == MemberActive))
	}
	return v
}

// ProfilesQueryParams filters genealogy profiles.
type ProfilesQueryParams struct {
	Search string
}

// Values renders the query string parameters.
func (p ProfilesQueryParams) Values() url.Values {
	v := url.Values{}
	if s := strings.TrimSpace(p.Search); s != "" {
		v.Set("search", s)
	}
	return v
}

// AuditCategory narrows audit logs by kind of action.
type AuditCategory string

const (
	AuditAll        AuditCategory = "All"
	AuditUploads    AuditCategory = "Uploads"
	AuditAccess     AuditCategory = "Access"
	AuditSystem     AuditCategory = "System"
	AuditManagement AuditCategory = "Management"
)

// AuditTimeframe narrows audit logs to a recent window.
type AuditTimeframe string

const (
	TimeframeAll   AuditTimeframe = "ALL"
	TimeframeDay   AuditTimeframe = "DAY"
	TimeframeWeek  AuditTimeframe = "WEEK"
	TimeframeMonth AuditTimeframe = "MONTH"
)

// AuditLogsQueryParams filters audit logs and exports.
type AuditLogsQueryParams struct {
	Category  AuditCategory
	Timeframe AuditTimeframe
	Search    string
	Action    string
	Actor     string
	DateFrom  string
	DateTo    string
}

// Values renders the query string parameters. "All" filters are omitted.
func (p AuditLogsQueryParams) Values() url.Values {
	v := url.Values{}
	if p.Category != "" && p.Category != AuditAll {
		v.Set("category", string(p.Category))
	}
	if p.Timeframe != "" && p.Timeframe != TimeframeAll {
		v.Set("timeframe", string(p.Timeframe))
	}
	if s := strings.TrimSpace(p.Search); s != "" {
		v.Set("q", s)
	}
	if p.Action != "" {
		v.Set("action", p.Action)
	}
	if p.Actor != "" {
		v.Set("actor", p.Actor)
	}
	if p.DateFrom != "" {
		v.Set("timestampAfter", p.DateFrom)
	}
	if p.DateTo != "" {
		v.Set("timestampBefore", p.DateTo)
	}
	return v
}

// Default page of the shareable invite listing.
const (
	DefaultInvitesPage     = 1
	DefaultInvitesPageSize = 10
)

// InvitesQueryParams pages the shareable invite listing.
type InvitesQueryParams struct {
	Page     int
	PageSize int
}

// Normalize applies the defaults to unset fields.
func (p InvitesQueryParams) Normalize() InvitesQueryParams {
	if p.Page <= 0 {
		p.Page = DefaultInvitesPage
	}
	if p.PageSize <= 0 {
		p.PageSize = DefaultInvitesPageSize
	}
	return p
}

// NotificationsQueryParams selects notifications. A zero Since means no
// lower bound.
type NotificationsQueryParams struct {
	Since time.Time
	Limit int
}

// Values renders the query string parameters.
func (p NotificationsQueryParams) Values() url.Values {
	v := url.Values{}
	if !p.Since.IsZero() {
		v.Set("since", p.Since.UTC().Format(time.RFC3339Nano))
	}
	if p.Limit > 0 {
		v.Set("limit", strconv.Itoa(p.Limit))
	}
	return v
}
