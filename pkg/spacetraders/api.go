// Package spacetraders holds the typed data shapes of the SpaceTraders API and
// a client exposing its endpoints as typed calls.
package spacetraders

import (
	"github.com/Adda-Baaj/spacetraders-go/pkg/fetcher"
	"github.com/Adda-Baaj/spacetraders-go/pkg/shape"
)

const (
	defaultPageLimit = 10
	defaultPage      = 1
	maxPageLimit     = 20
)

// Pagination selects one page of a list endpoint. Zero fields take the API
// defaults (limit 10, page 1).
type Pagination struct {
	Limit int `json:"limit"`
	Page  int `json:"page"`
}

// Normalize fills in defaults and clamps the limit to what the API accepts.
func (p Pagination) Normalize() Pagination {
	if p.Limit <= 0 {
		p.Limit = defaultPageLimit
	}
	if p.Limit > maxPageLimit {
		p.Limit = maxPageLimit
	}
	if p.Page <= 0 {
		p.Page = defaultPage
	}
	return p
}

// Query renders the pagination as query parameters.
func (p Pagination) Query() fetcher.Params {
	p = p.Normalize()
	return fetcher.Params{"limit": p.Limit, "page": p.Page}
}

// Meta describes the position of a page within a list.
type Meta struct {
	Limit int `json:"limit"`
	Page  int `json:"page"`
	Total int `json:"total"`
}

// Pages returns the number of pages the list spans.
func (m Meta) Pages() int {
	if m.Limit <= 0 {
		return 0
	}
	return (m.Total + m.Limit - 1) / m.Limit
}

// Page is one page of a list response.
type Page[T any] struct {
	Data []T `json:"data"`
	Meta Meta `json:"meta"`
}

var metaShape = shape.Object(
	shape.Prop("limit", shape.Int(), func(m *Meta, v int) { m.Limit = v }),
	shape.Prop("page", shape.Int(), func(m *Meta, v int) { m.Page = v }),
	shape.Prop("total", shape.Int(), func(m *Meta, v int) { m.Total = v }),
)

// ResponseOf unwraps the {"data": ...} envelope of single-item responses.
func ResponseOf[T any](s shape.Shape[T]) shape.Shape[T] {
	return shape.Object(
		shape.Prop("data", s, func(dst *T, v T) { *dst = v }),
	)
}

// PageOf decodes the {"data": [...], "meta": {...}} envelope of list responses.
func PageOf[T any](s shape.Shape[T]) shape.Shape[Page[T]] {
	return shape.Object(
		shape.Prop("data", shape.Array(s), func(p *Page[T], v []T) { p.Data = v }),
		shape.Prop("meta", metaShape, func(p *Page[T], v Meta) { p.Meta = v }),
	)
}
