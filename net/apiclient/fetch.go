package apiclient

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/ncobase/boardfront/ecode"
	"github.com/ncobase/boardfront/logging/logger"
	"github.com/ncobase/boardfront/logging/observes"
	"github.com/ncobase/boardfront/net/cookie"
	"github.com/ncobase/boardfront/structs"
	"github.com/sony/gobreaker"
)

const invalidBodyMsg = "invalid response body"

// Fetch performs an authenticated request on behalf of the session in store.
// A 401 triggers one refresh and, when it succeeds, exactly one resend of the
// same request. Any returned error is an *ecode.Error.
func Fetch[T any](ctx context.Context, c *Client, store cookie.TokenStore, req Request) (T, error) {
	body, err := c.perform(ctx, store, req, true)
	if err != nil {
		var zero T
		return zero, err
	}
	return decode[T](ctx, body)
}

// Call performs a request without credentials. A 401 is classified like any
// other failure; no refresh is attempted.
func Call[T any](ctx context.Context, c *Client, req Request) (T, error) {
	body, err := c.perform(ctx, anonymous{}, req, false)
	if err != nil {
		var zero T
		return zero, err
	}
	return decode[T](ctx, body)
}

// Exec is Fetch for calls whose response body is not needed.
func Exec(ctx context.Context, c *Client, store cookie.TokenStore, req Request) error {
	_, err := c.perform(ctx, store, req, true)
	return err
}

// perform runs the request pipeline and returns the body of a 2xx
// response. Revalidation tags fire before it returns.
func (c *Client) perform(ctx context.Context, store cookie.TokenStore, req Request, refresh bool) ([]byte, error) {
	body, err := req.encodeBody()
	if err != nil {
		return nil, ecode.New(ecode.KindBadRequest, err.Error())
	}

	tokens := store.Tokens()
	accessToken := tokens.AccessToken
	// only visitors without any session share cached reads
	anon := accessToken == "" && tokens.RefreshToken == ""
	if anon {
		if data, ok := c.loadCached(ctx, req); ok {
			return data, nil
		}
	}

	res, err := c.send(ctx, req, body, accessToken)
	if err != nil {
		return nil, c.networkError(ctx, req, err)
	}

	if refresh && res.status == http.StatusUnauthorized {
		pair, rerr := c.Refresh(ctx, store)
		if rerr != nil {
			return nil, ecode.SessionExpired()
		}
		res, err = c.send(ctx, req, body, pair.AccessToken)
		if err != nil {
			return nil, c.networkError(ctx, req, err)
		}
	}

	if !res.ok() {
		return nil, c.classify(ctx, req, res)
	}

	if anon {
		c.storeCached(ctx, req, res.body)
	}
	c.revalidate(ctx, req)
	return res.body, nil
}

// anonymous is an empty token store for unauthenticated calls.
type anonymous struct{}

func (anonymous) Tokens() structs.TokenPair { return structs.TokenPair{} }
func (anonymous) SetAccessToken(string)     {}
func (anonymous) SetRefreshToken(string)    {}
func (anonymous) ClearAuth()                {}

func decode[T any](ctx context.Context, data []byte) (T, error) {
	var out T
	if len(data) == 0 {
		return out, nil
	}
	if err := json.Unmarshal(data, &out); err != nil {
		logger.Warnf(ctx, "decode upstream body: %v", err)
		var zero T
		return zero, ecode.New(ecode.KindServerError, invalidBodyMsg)
	}
	return out, nil
}

func (c *Client) networkError(ctx context.Context, req Request, err error) *ecode.Error {
	e := ecode.Network()
	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		logger.Warnf(ctx, "upstream %s %s rejected by circuit breaker", req.method(), req.Path)
	} else {
		logger.Warnf(ctx, "upstream %s %s: %v", req.method(), req.Path, err)
	}
	observes.CaptureError(ctx, err, map[string]string{"kind": e.Kind.String(), "path": req.Path})
	return e
}

func (c *Client) classify(ctx context.Context, req Request, res *response) *ecode.Error {
	e := ecode.Classify(res.status, res.body)
	logger.Infof(ctx, "upstream %s %s: %v", req.method(), req.Path, e)
	switch e.Kind {
	case ecode.KindServerError, ecode.KindUnknown:
		observes.CaptureError(ctx, e, map[string]string{"kind": e.Kind.String(), "path": req.Path})
	}
	return e
}

// revalidate fires the request's tags.
func (c *Client) revalidate(ctx context.Context, req Request) {
	c.Invalidate(ctx, req.Revalidate...)
}

// Invalidate drops cached reads under tags. Failures are logged, not
// returned: the mutation that fired them already succeeded.
func (c *Client) Invalidate(ctx context.Context, tags ...string) {
	if c.revalidator == nil || len(tags) == 0 {
		return
	}
	if err := c.revalidator.Invalidate(ctx, tags...); err != nil {
		logger.Warnf(ctx, "revalidate %v: %v", tags, err)
	}
}

func (c *Client) cacheable(req Request) bool {
	return c.cache != nil && len(req.CacheTags) > 0 && req.method() == http.MethodGet
}

func (c *Client) loadCached(ctx context.Context, req Request) ([]byte, bool) {
	if !c.cacheable(req) {
		return nil, false
	}
	return c.cache.Load(ctx, c.cacheKey(req))
}

func (c *Client) storeCached(ctx context.Context, req Request, body []byte) {
	if !c.cacheable(req) || !json.Valid(body) {
		return
	}
	c.cache.Store(ctx, c.cacheKey(req), body, req.CacheTags)
}
