package apiclient

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
)

// Request describes one upstream call.
type Request struct {
	Method string
	Path   string
	Query  url.Values
	// Body is sent as JSON. []byte and json.RawMessage are sent as is.
	Body   any
	Header http.Header
	// Revalidate lists cache tags invalidated after a 2xx response.
	Revalidate []string
	// CacheTags marks an anonymous GET as cacheable under these tags.
	CacheTags []string
}

func (r Request) method() string {
	if r.Method == "" {
		return http.MethodGet
	}
	return r.Method
}

// encodeBody serializes the body once so a retry replays the same bytes.
func (r Request) encodeBody() ([]byte, error) {
	switch b := r.Body.(type) {
	case nil:
		return nil, nil
	case []byte:
		return b, nil
	case json.RawMessage:
		return b, nil
	default:
		data, err := json.Marshal(b)
		if err != nil {
			return nil, fmt.Errorf("encode request body: %w", err)
		}
		return data, nil
	}
}

// cacheKey identifies an anonymous GET in the response cache.
func (c *Client) cacheKey(r Request) string {
	return r.method() + " " + c.endpoint(r.Path, r.Query)
}

// Get builds a GET request.
func Get(path string, query url.Values) Request {
	return Request{Method: http.MethodGet, Path: path, Query: query}
}

// Post builds a POST request with a JSON body.
func Post(path string, body any) Request {
	return Request{Method: http.MethodPost, Path: path, Body: body}
}

// Patch builds a PATCH request with a JSON body.
func Patch(path string, body any) Request {
	return Request{Method: http.MethodPatch, Path: path, Body: body}
}

// Delete builds a DELETE request.
func Delete(path string) Request {
	return Request{Method: http.MethodDelete, Path: path}
}

// Tagged returns a copy of r that caches anonymous reads under tags.
func (r Request) Tagged(tags ...string) Request {
	r.CacheTags = append([]string(nil), tags...)
	return r
}

// Revalidates returns a copy of r that invalidates tags on success.
func (r Request) Revalidates(tags ...string) Request {
	r.Revalidate = append([]string(nil), tags...)
	return r
}
