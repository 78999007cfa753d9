package shared

import (
	"math"
	"net/url"
	"strconv"
	"strings"
)

// ListParams captures the common query parameters accepted by list
// endpoints.
type ListParams struct {
	Page    int
	PerPage int
	Search  string
	SortBy  string
	SortDir string
}

// Values encodes the params as URL query values, omitting zero fields.
func (p ListParams) Values() url.Values {
	q := url.Values{}
	if p.Page > 0 {
		q.Set("page", strconv.Itoa(p.Page))
	}
	if p.PerPage > 0 {
		q.Set("per_page", strconv.Itoa(p.PerPage))
	}
	if s := strings.TrimSpace(p.Search); s != "" {
		q.Set("q", s)
	}
	if p.SortBy != "" {
		q.Set("sort_by", p.SortBy)
	}
	if p.SortDir != "" {
		q.Set("sort_dir", p.SortDir)
	}
	return q
}

// CacheKey renders the params as a stable cache key suffix.
func (p ListParams) CacheKey() string {
	return p.Values().Encode()
}

// Pagination contains metadata for paginated listings.
type Pagination struct {
	Page       int `json:"page"`
	PerPage    int `json:"per_page"`
	Total      int `json:"total"`
	TotalPages int `json:"total_pages"`
}

// NewPagination computes pagination metadata.
func NewPagination(page, perPage, total int) Pagination {
	if perPage <= 0 {
		perPage = 20
	}
	if page <= 0 {
		page = 1
	}
	totalPages := int(math.Ceil(float64(total) / float64(perPage)))
	return Pagination{Page: page, PerPage: perPage, Total: total, TotalPages: totalPages}
}
