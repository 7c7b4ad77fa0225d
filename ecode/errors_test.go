package ecode

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKindOf(t *testing.T) {
	tests := []struct {
		status int
		want   Kind
	}{
		{http.StatusBadRequest, KindBadRequest},
		{http.StatusUnauthorized, KindUnauthorized},
		{http.StatusForbidden, KindForbidden},
		{http.StatusNotFound, KindNotFound},
		{http.StatusConflict, KindConflict},
		{http.StatusInternalServerError, KindServerError},
		{http.StatusTeapot, KindUnknown},
		{http.StatusBadGateway, KindUnknown},
		{http.StatusServiceUnavailable, KindUnknown},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprint(tt.status), func(t *testing.T) {
			assert.Equal(t, tt.want, KindOf(tt.status))
		})
	}
}

func TestClassify(t *testing.T) {
	t.Run("json message", func(t *testing.T) {
		err := Classify(http.StatusConflict, []byte(`{"message": "Slug \"foo\" is already in use"}`))
		assert.Equal(t, &Error{Kind: KindConflict, Message: `Slug "foo" is already in use`, StatusCode: 409}, err)
	})

	t.Run("raw text body", func(t *testing.T) {
		err := Classify(http.StatusNotFound, []byte("Not Found\n"))
		assert.Equal(t, KindNotFound, err.Kind)
		assert.Equal(t, "Not Found", err.Message)
	})

	t.Run("message list", func(t *testing.T) {
		err := Classify(http.StatusBadRequest, []byte(`{"message": ["title should not be empty", "content too long"]}`))
		assert.Equal(t, KindBadRequest, err.Kind)
		assert.Equal(t, "title should not be empty, content too long", err.Message)
	})

	t.Run("json without message", func(t *testing.T) {
		err := Classify(http.StatusForbidden, []byte(`{"statusCode": 403}`))
		assert.Equal(t, KindForbidden, err.Kind)
		assert.Equal(t, "forbidden", err.Message)
	})

	t.Run("empty body", func(t *testing.T) {
		err := Classify(http.StatusInternalServerError, nil)
		assert.Equal(t, KindServerError, err.Kind)
		assert.Equal(t, "server error", err.Message)
	})

	t.Run("unmapped status", func(t *testing.T) {
		err := Classify(http.StatusServiceUnavailable, []byte(`{"message": "maintenance"}`))
		assert.Equal(t, KindUnknown, err.Kind)
		assert.Equal(t, "maintenance", err.Message)
		assert.Equal(t, http.StatusServiceUnavailable, err.HTTPStatus())
	})
}

func TestFixedOutcomes(t *testing.T) {
	assert.Equal(t, &Error{Kind: KindUnauthorized, Message: "session expired"}, SessionExpired())
	assert.Equal(t, &Error{Kind: KindNetworkError, Message: "connection failed"}, Network())
	assert.Equal(t, http.StatusBadGateway, Network().HTTPStatus())
	assert.Equal(t, http.StatusUnauthorized, SessionExpired().HTTPStatus())
}

func TestAs(t *testing.T) {
	wrapped := fmt.Errorf("load board: %w", Classify(http.StatusNotFound, nil))

	e, ok := As(wrapped)
	require.True(t, ok)
	assert.Equal(t, KindNotFound, e.Kind)
	assert.True(t, IsKind(wrapped, KindNotFound))
	assert.Equal(t, KindUnknown, KindOfError(fmt.Errorf("plain")))

	_, ok = As(nil)
	assert.False(t, ok)
}

func TestKindJSON(t *testing.T) {
	b, err := json.Marshal(New(KindConflict, ""))
	require.NoError(t, err)
	assert.JSONEq(t, `{"kind":"Conflict","message":"conflict"}`, string(b))

	var decoded Error
	require.NoError(t, json.Unmarshal(b, &decoded))
	assert.Equal(t, KindConflict, decoded.Kind)
}
