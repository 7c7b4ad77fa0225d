package resp

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ncobase/boardfront/ecode"
	"github.com/stretchr/testify/assert"
)

func TestSuccess(t *testing.T) {
	w := httptest.NewRecorder()
	Success(w, map[string]string{"slug": "free"})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/json; charset=utf-8", w.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"slug":"free"}`, w.Body.String())

	w = httptest.NewRecorder()
	WithStatusCode(w, http.StatusCreated, "created")
	assert.Equal(t, http.StatusCreated, w.Code)
	assert.JSONEq(t, `{"message":"created"}`, w.Body.String())
}

func TestFailFromError(t *testing.T) {
	tests := []struct {
		name   string
		err    *ecode.Error
		status int
		body   string
	}{
		{
			name:   "conflict keeps upstream message",
			err:    ecode.Classify(http.StatusConflict, []byte(`{"message":"Slug \"foo\" is already in use"}`)),
			status: http.StatusConflict,
			body:   `{"code":-409,"kind":"Conflict","message":"Slug \"foo\" is already in use"}`,
		},
		{
			name:   "network error",
			err:    ecode.Network(),
			status: http.StatusBadGateway,
			body:   `{"code":-502,"kind":"NetworkError","message":"connection failed"}`,
		},
		{
			name:   "unknown status kept",
			err:    ecode.Classify(http.StatusServiceUnavailable, nil),
			status: http.StatusServiceUnavailable,
			body:   `{"code":-1,"kind":"Unknown","message":"unknown error"}`,
		},
		{
			name:   "session expired",
			err:    ecode.SessionExpired(),
			status: http.StatusUnauthorized,
			body:   `{"code":-102,"kind":"Unauthorized","message":"session expired"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			Fail(w, FromError(tt.err))
			assert.Equal(t, tt.status, w.Code)
			assert.JSONEq(t, tt.body, w.Body.String())
		})
	}
}

func TestInvalidParams(t *testing.T) {
	w := httptest.NewRecorder()
	Fail(w, InvalidParams(map[string]string{"email": "The field 'email' is required."}))
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"code":-401,"message":"Invalid parameters","errors":{"email":"The field 'email' is required."}}`, w.Body.String())
}

func TestFailNil(t *testing.T) {
	w := httptest.NewRecorder()
	Fail(w, nil)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
