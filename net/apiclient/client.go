// Package apiclient talks to the upstream REST API on behalf of a browser
// session: it injects the bearer token, refreshes it once on 401, and
// reduces every failure to an *ecode.Error.
package apiclient

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/ncobase/boardfront/config"
	"github.com/ncobase/boardfront/ctxutil"
	"github.com/ncobase/boardfront/logging/logger"
	"github.com/sony/gobreaker"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"golang.org/x/sync/singleflight"
)

// maxBodySize caps how much of an upstream body is read.
const maxBodySize = 8 << 20

// Revalidator drops cached reads tagged by a successful mutation.
type Revalidator interface {
	Invalidate(ctx context.Context, tags ...string) error
}

// ResponseCache keeps anonymous GET bodies until their tags are invalidated.
type ResponseCache interface {
	Load(ctx context.Context, key string) ([]byte, bool)
	Store(ctx context.Context, key string, body []byte, tags []string)
}

// Client is the upstream API client. It is safe for concurrent use; all
// per-session state lives in the cookie.TokenStore passed to each call.
type Client struct {
	baseURL     string
	http        *http.Client
	breaker     *gobreaker.CircuitBreaker
	revalidator Revalidator
	cache       ResponseCache
	dedup       bool
	group       singleflight.Group
}

// Option configures a Client
type Option func(*Client)

// WithHTTPClient replaces the default instrumented http client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.http = hc
	}
}

// WithBreaker guards upstream calls with a circuit breaker. An open breaker
// fails fast and surfaces as a network error.
func WithBreaker(settings gobreaker.Settings) Option {
	return func(c *Client) {
		c.breaker = gobreaker.NewCircuitBreaker(settings)
	}
}

// WithRevalidator sets the tag invalidation target for mutations.
func WithRevalidator(r Revalidator) Option {
	return func(c *Client) {
		c.revalidator = r
	}
}

// WithResponseCache enables caching of anonymous GETs that carry cache tags.
func WithResponseCache(rc ResponseCache) Option {
	return func(c *Client) {
		c.cache = rc
	}
}

// WithRefreshDedup collapses concurrent refreshes of the same refresh token
// into one upstream call.
func WithRefreshDedup() Option {
	return func(c *Client) {
		c.dedup = true
	}
}

// New creates a client for the API rooted at baseURL.
func New(baseURL string, opts ...Option) (*Client, error) {
	u, err := url.Parse(baseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("invalid upstream base url %q", baseURL)
	}

	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http: &http.Client{
			Timeout:   10 * time.Second,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// NewFromConfig creates a client from the upstream config section.
func NewFromConfig(cfg *config.Upstream, opts ...Option) (*Client, error) {
	base := []Option{
		WithHTTPClient(&http.Client{
			Timeout:   cfg.Timeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		}),
	}
	if b := cfg.Breaker; b != nil && b.Enabled {
		base = append(base, WithBreaker(BreakerSettings("upstream", b)))
	}
	if cfg.RefreshDedup {
		base = append(base, WithRefreshDedup())
	}
	return New(cfg.BaseURL, append(base, opts...)...)
}

// BreakerSettings builds breaker settings that trip on consecutive transport
// failures. Caller cancellation is not counted.
func BreakerSettings(name string, b *config.Breaker) gobreaker.Settings {
	return gobreaker.Settings{
		Name:        name,
		MaxRequests: b.MaxRequests,
		Interval:    b.Interval,
		Timeout:     b.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= b.Failures
		},
		IsSuccessful: func(err error) bool {
			return err == nil || errors.Is(err, context.Canceled)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warnf(context.Background(), "circuit breaker %s: %s -> %s", name, from, to)
		},
	}
}

// response is a fully read upstream response.
type response struct {
	status int
	body   []byte
}

func (r *response) ok() bool {
	return r.status >= 200 && r.status < 300
}

// endpoint joins the base url, path and query.
func (c *Client) endpoint(path string, query url.Values) string {
	var target string
	if strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		target = path
	} else {
		target = c.baseURL + "/" + strings.TrimLeft(path, "/")
	}
	if len(query) > 0 {
		sep := "?"
		if strings.Contains(target, "?") {
			sep = "&"
		}
		target += sep + query.Encode()
	}
	return target
}

// send performs one exchange. accessToken, when set, overrides any
// Authorization header supplied by the caller.
func (c *Client) send(ctx context.Context, req Request, body []byte, accessToken string) (*response, error) {
	var reader io.Reader
	if len(body) > 0 {
		reader = bytes.NewReader(body)
	}
	method := req.method()
	httpReq, err := http.NewRequestWithContext(ctx, method, c.endpoint(req.Path, req.Query), reader)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}

	for k, vs := range req.Header {
		for _, v := range vs {
			httpReq.Header.Add(k, v)
		}
	}
	httpReq.Header.Set("Accept", "application/json")
	if len(body) > 0 && httpReq.Header.Get("Content-Type") == "" {
		httpReq.Header.Set("Content-Type", "application/json")
	}
	if id := ctxutil.GetRequestID(ctx); id != "" {
		httpReq.Header.Set("X-Request-ID", id)
	}
	if accessToken != "" {
		httpReq.Header.Set("Authorization", "Bearer "+accessToken)
	}

	start := time.Now()
	res, err := c.do(httpReq)
	if err != nil {
		logger.Debugf(ctx, "upstream %s %s failed after %s: %v", method, req.Path, time.Since(start), err)
		return nil, err
	}
	logger.Debugf(ctx, "upstream %s %s -> %d in %s", method, req.Path, res.status, time.Since(start))
	return res, nil
}

// do executes req through the breaker when one is configured.
func (c *Client) do(req *http.Request) (*response, error) {
	exec := func() (*response, error) {
		res, err := c.http.Do(req)
		if err != nil {
			return nil, err
		}
		defer res.Body.Close()
		body, err := io.ReadAll(io.LimitReader(res.Body, maxBodySize))
		if err != nil {
			return nil, fmt.Errorf("read response body: %w", err)
		}
		return &response{status: res.StatusCode, body: body}, nil
	}

	if c.breaker == nil {
		return exec()
	}
	out, err := c.breaker.Execute(func() (interface{}, error) {
		return exec()
	})
	if err != nil {
		return nil, err
	}
	return out.(*response), nil
}
