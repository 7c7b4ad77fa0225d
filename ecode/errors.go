package ecode

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
)

const (
	requiredMsg       = "required"
	invalidMsg        = "invalid"
	sessionExpiredMsg = "session expired"
)

// Error is a classified upstream failure.
type Error struct {
	Kind       Kind   `json:"kind"`
	Message    string `json:"message"`
	StatusCode int    `json:"status,omitempty"`
}

// Error implements error
func (e *Error) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("%s (%d): %s", e.Kind, e.StatusCode, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// HTTPStatus returns the status to render for this error.
// The upstream status is kept when there is one.
func (e *Error) HTTPStatus() int {
	if e.StatusCode >= 400 {
		return e.StatusCode
	}
	switch e.Kind {
	case KindNetworkError:
		return http.StatusBadGateway
	case KindUnknown:
		return http.StatusInternalServerError
	default:
		return ToHTTPStatus(e.Kind.Code())
	}
}

// New creates an error of the given kind. An empty message falls back to the kind's text.
func New(kind Kind, message string) *Error {
	if message == "" {
		message = kind.Text()
	}
	return &Error{Kind: kind, Message: message}
}

// Network is the outcome of a transport failure.
func Network() *Error {
	return New(KindNetworkError, "")
}

// SessionExpired is the outcome of a failed token refresh after a 401.
func SessionExpired() *Error {
	return &Error{Kind: KindUnauthorized, Message: sessionExpiredMsg}
}

// Classify turns a non-2xx upstream response into an *Error.
func Classify(status int, body []byte) *Error {
	kind := KindOf(status)
	message, ok := parseMessage(body)
	if !ok {
		message = strings.TrimSpace(string(body))
	}
	if message == "" {
		message = kind.Text()
	}
	return &Error{Kind: kind, Message: message, StatusCode: status}
}

// parseMessage extracts the conventional message field. ok is false when body is not a JSON object.
func parseMessage(body []byte) (string, bool) {
	var payload struct {
		Message json.RawMessage `json:"message"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return "", false
	}
	if len(payload.Message) == 0 {
		return "", true
	}

	var single string
	if err := json.Unmarshal(payload.Message, &single); err == nil {
		return strings.TrimSpace(single), true
	}

	// validation pipelines report a list of messages
	var list []string
	if err := json.Unmarshal(payload.Message, &list); err == nil {
		parts := make([]string, 0, len(list))
		for _, m := range list {
			if m = strings.TrimSpace(m); m != "" {
				parts = append(parts, m)
			}
		}
		return strings.Join(parts, ", "), true
	}
	return "", true
}

// As extracts an *Error from err.
func As(err error) (*Error, bool) {
	var e *Error
	if errors.As(err, &e) && e != nil {
		return e, true
	}
	return nil, false
}

// KindOfError returns the kind carried by err, or KindUnknown.
func KindOfError(err error) Kind {
	if e, ok := As(err); ok {
		return e.Kind
	}
	return KindUnknown
}

// IsKind reports whether err carries the given kind.
func IsKind(err error, kind Kind) bool {
	e, ok := As(err)
	return ok && e.Kind == kind
}

// FieldIsRequired returns field required message
func FieldIsRequired(k ...string) string {
	if len(k) > 0 {
		return fmt.Sprintf("%s %s", k[0], requiredMsg)
	}
	return requiredMsg
}

// FieldIsInvalid returns field invalid message
func FieldIsInvalid(k ...string) string {
	if len(k) > 0 {
		return fmt.Sprintf("%s %s", k[0], invalidMsg)
	}
	return invalidMsg
}
