package paging

import (
	"fmt"
	"net/url"

	"github.com/google/go-querystring/query"
)

const (
	// DefaultLimit is the page size used when none is given
	DefaultLimit = 20
	// MaxLimit caps the page size
	MaxLimit = 100
)

// Params holds the page-number pagination parameters
type Params struct {
	Page  int `json:"page" form:"page" url:"page"`
	Limit int `json:"limit" form:"limit" url:"limit"`
}

// Envelope is one page of a list
type Envelope[T any] struct {
	Data        []T `json:"data"`
	CurrentPage int `json:"currentPage"`
	TotalItems  int `json:"totalItems"`
	TotalPages  int `json:"totalPages"`
}

// NormalizeParams clamps Page to at least 1 and Limit into (0, MaxLimit]
func NormalizeParams(params Params) Params {
	if params.Page < 1 {
		params.Page = 1
	}
	if params.Limit <= 0 {
		params.Limit = DefaultLimit
	}
	if params.Limit > MaxLimit {
		params.Limit = MaxLimit
	}
	return params
}

// TotalPages returns ceil(totalItems / pageSize); zero items means zero pages
func TotalPages(totalItems, pageSize int) int {
	if totalItems <= 0 || pageSize <= 0 {
		return 0
	}
	return (totalItems + pageSize - 1) / pageSize
}

// Query encodes params and any extra filter struct as URL query values
func Query(params Params, filters ...any) (url.Values, error) {
	values, err := query.Values(NormalizeParams(params))
	if err != nil {
		return nil, fmt.Errorf("encode paging params: %w", err)
	}
	for _, f := range filters {
		if f == nil {
			continue
		}
		extra, err := query.Values(f)
		if err != nil {
			return nil, fmt.Errorf("encode filters: %w", err)
		}
		for k, vs := range extra {
			values[k] = vs
		}
	}
	return values, nil
}

// Normalize fills the invariants an upstream page may omit: a non-nil Data
// slice and CurrentPage of at least 1. A page past the end stays an empty list.
func (e *Envelope[T]) Normalize() {
	if e.Data == nil {
		e.Data = make([]T, 0)
	}
	if e.CurrentPage < 1 {
		e.CurrentPage = 1
	}
	if e.TotalItems < 0 {
		e.TotalItems = 0
	}
}

// IsEmpty reports whether the page has no items
func (e *Envelope[T]) IsEmpty() bool {
	return len(e.Data) == 0
}

// HasNext reports whether a later page exists
func (e *Envelope[T]) HasNext() bool {
	return e.CurrentPage < e.TotalPages
}
