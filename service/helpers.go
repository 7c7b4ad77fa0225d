package service

import (
	"context"

	"github.com/ncobase/boardfront/ecode"
	"github.com/ncobase/boardfront/net/apiclient"
	"github.com/ncobase/boardfront/net/cookie"
	"github.com/ncobase/boardfront/paging"
)

func errEmptyBody() error {
	return ecode.New(ecode.KindServerError, "invalid response body")
}

// one fetches a single resource; an empty 2xx body is an invalid response.
func one[T any](ctx context.Context, c *apiclient.Client, store cookie.TokenStore, req apiclient.Request) (*T, error) {
	out, err := apiclient.Fetch[*T](ctx, c, store, req)
	if err != nil {
		return nil, err
	}
	if out == nil {
		return nil, errEmptyBody()
	}
	return out, nil
}

// listOf fetches a plain list; null becomes empty.
func listOf[T any](ctx context.Context, c *apiclient.Client, store cookie.TokenStore, req apiclient.Request) ([]T, error) {
	out, err := apiclient.Fetch[[]T](ctx, c, store, req)
	if err != nil {
		return nil, err
	}
	if out == nil {
		out = make([]T, 0)
	}
	return out, nil
}

// pageOf fetches one page of a paginated list. Tagged pages are cacheable
// for anonymous visitors.
func pageOf[T any](ctx context.Context, c *apiclient.Client, store cookie.TokenStore, path string, params paging.Params, tags ...string) (*paging.Envelope[T], error) {
	query, err := paging.Query(params)
	if err != nil {
		return nil, ecode.New(ecode.KindBadRequest, err.Error())
	}
	req := apiclient.Get(path, query)
	if len(tags) > 0 {
		req = req.Tagged(tags...)
	}
	page, err := apiclient.Fetch[paging.Envelope[T]](ctx, c, store, req)
	if err != nil {
		return nil, err
	}
	page.Normalize()
	return &page, nil
}
