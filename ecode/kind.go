package ecode

import (
	"fmt"
	"net/http"
)

// Kind is the closed set of failure categories for upstream exchanges.
type Kind int

const (
	KindUnknown Kind = iota
	KindBadRequest
	KindUnauthorized
	KindForbidden
	KindNotFound
	KindConflict
	KindServerError
	KindNetworkError
)

var kindNames = [...]string{
	KindUnknown:      "Unknown",
	KindBadRequest:   "BadRequest",
	KindUnauthorized: "Unauthorized",
	KindForbidden:    "Forbidden",
	KindNotFound:     "NotFound",
	KindConflict:     "Conflict",
	KindServerError:  "ServerError",
	KindNetworkError: "NetworkError",
}

// String returns the kind name
func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return kindNames[KindUnknown]
	}
	return kindNames[k]
}

// MarshalText renders the kind by name in JSON payloads.
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// UnmarshalText parses a kind name.
func (k *Kind) UnmarshalText(text []byte) error {
	for i, name := range kindNames {
		if name == string(text) {
			*k = Kind(i)
			return nil
		}
	}
	return fmt.Errorf("unknown error kind %q", text)
}

// Text returns the default human message for the kind.
func (k Kind) Text() string {
	switch k {
	case KindBadRequest:
		return "bad request"
	case KindUnauthorized:
		return "unauthorized"
	case KindForbidden:
		return "forbidden"
	case KindNotFound:
		return "not found"
	case KindConflict:
		return "conflict"
	case KindServerError:
		return "server error"
	case KindNetworkError:
		return "connection failed"
	default:
		return "unknown error"
	}
}

// Code returns the business code rendered to clients.
func (k Kind) Code() int {
	switch k {
	case KindBadRequest:
		return RequestErr
	case KindUnauthorized:
		return NoLogin
	case KindForbidden:
		return AccessDenied
	case KindNotFound:
		return NothingFound
	case KindConflict:
		return Conflict
	case KindServerError:
		return ServerErr
	case KindNetworkError:
		return UpstreamErr
	default:
		return UnknownErr
	}
}

// KindOf maps an HTTP status to a kind. Statuses outside the table are Unknown.
func KindOf(status int) Kind {
	switch status {
	case http.StatusBadRequest:
		return KindBadRequest
	case http.StatusUnauthorized:
		return KindUnauthorized
	case http.StatusForbidden:
		return KindForbidden
	case http.StatusNotFound:
		return KindNotFound
	case http.StatusConflict:
		return KindConflict
	case http.StatusInternalServerError:
		return KindServerError
	default:
		return KindUnknown
	}
}
