package ecode

import "net/http"

// Business codes
const (
	OK               = 0
	UnknownErr       = -1
	NoLogin          = -101
	TokenExpired     = -102
	RequestErr       = -400
	ParamErr         = -401
	AccessDenied     = -403
	NothingFound     = -404
	MethodNotAllowed = -405
	Conflict         = -409
	ServerErr        = -500
	UpstreamErr      = -502
)

var codeTexts = map[int]string{
	OK:               "ok",
	UnknownErr:       "Unknown error",
	NoLogin:          "Account not logged in",
	TokenExpired:     "Session expired",
	RequestErr:       "Invalid request",
	ParamErr:         "Invalid parameters",
	AccessDenied:     "Access denied",
	NothingFound:     "Resource not found",
	MethodNotAllowed: "Method not allowed",
	Conflict:         "Resource conflict",
	ServerErr:        "Internal server error",
	UpstreamErr:      "Upstream unavailable",
}

var codeStatuses = map[int]int{
	OK:               http.StatusOK,
	NoLogin:          http.StatusUnauthorized,
	TokenExpired:     http.StatusUnauthorized,
	RequestErr:       http.StatusBadRequest,
	ParamErr:         http.StatusBadRequest,
	AccessDenied:     http.StatusForbidden,
	NothingFound:     http.StatusNotFound,
	MethodNotAllowed: http.StatusMethodNotAllowed,
	Conflict:         http.StatusConflict,
	ServerErr:        http.StatusInternalServerError,
	UpstreamErr:      http.StatusBadGateway,
}

// Text returns the default message for a business code.
func Text(code int) string {
	if text, ok := codeTexts[code]; ok {
		return text
	}
	return codeTexts[UnknownErr]
}

// ToHTTPStatus maps a business code to an HTTP status.
func ToHTTPStatus(code int) int {
	if status, ok := codeStatuses[code]; ok {
		return status
	}
	return http.StatusInternalServerError
}
