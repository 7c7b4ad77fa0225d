package resp

import (
	"net/http"

	"github.com/ncobase/boardfront/ecode"
)

// BadRequest indicates a bad request.
func BadRequest(message string, data ...any) *Exception {
	return newResponse(http.StatusBadRequest, ecode.RequestErr, message, data...)
}

// InvalidParams reports field validation errors.
func InvalidParams(errs map[string]string) *Exception {
	return newResponse(http.StatusBadRequest, ecode.ParamErr, ecode.Text(ecode.ParamErr), errs)
}

// NotFound indicates that the requested resource is not found.
func NotFound(message string, data ...any) *Exception {
	return newResponse(http.StatusNotFound, ecode.NothingFound, message, data...)
}

// NotAllowed indicates a not allowed error.
func NotAllowed(message string, data ...any) *Exception {
	return newResponse(http.StatusMethodNotAllowed, ecode.MethodNotAllowed, message, data...)
}

// InternalServer indicates a server error.
func InternalServer(message string, data ...any) *Exception {
	return newResponse(http.StatusInternalServerError, ecode.ServerErr, message, data...)
}

// FromError renders a classified upstream error with its upstream status.
func FromError(e *ecode.Error) *Exception {
	if e == nil {
		return InternalServer(ecode.Text(ecode.ServerErr))
	}
	code := e.Kind.Code()
	if e.Kind == ecode.KindUnauthorized && e.StatusCode == 0 {
		code = ecode.TokenExpired
	}
	return &Exception{
		Status:  e.HTTPStatus(),
		Code:    code,
		Kind:    e.Kind.String(),
		Message: e.Message,
	}
}
