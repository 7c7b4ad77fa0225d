package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/ncobase/boardfront/config"
	"github.com/ncobase/boardfront/ctxutil"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLogger(buf *bytes.Buffer) *Logger {
	l := &Logger{Logger: logrus.New()}
	l.SetFormatter(&logrus.JSONFormatter{})
	l.SetOutput(buf)
	l.SetLevel(logrus.DebugLevel)
	return l
}

func TestEntryCarriesTraceID(t *testing.T) {
	var buf bytes.Buffer
	l := newTestLogger(&buf)
	l.SetVersion("1.2.3")

	ctx := ctxutil.SetTraceID(context.Background(), "trace-42")
	l.Infof(ctx, "hello %s", "world")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "hello world", entry["msg"])
	assert.Equal(t, "trace-42", entry["trace_id"])
	assert.Equal(t, "1.2.3", entry["version"])
}

func TestDesensitizeHook(t *testing.T) {
	var buf bytes.Buffer
	l := newTestLogger(&buf)
	l.AddHook(NewDesensitizeHook(NewDesensitizer(&config.Desensitization{
		Enabled:         true,
		SensitiveFields: []string{"token", "password"},
		MaskChar:        "*",
		FixedMaskLength: 6,
	})))

	l.WithFieldsContext(context.Background(), logrus.Fields{
		"refresh_token": "abc.def.ghi",
		"path":          "/auth/refresh",
		"body":          map[string]any{"password": "hunter2", "email": "a@b.c"},
	}).Info("sent Authorization: Bearer abc.def")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "******", entry["refresh_token"])
	assert.Equal(t, "/auth/refresh", entry["path"])
	assert.Equal(t, map[string]any{"password": "******", "email": "a@b.c"}, entry["body"])
	assert.Equal(t, "sent Authorization: Bearer ******", entry["msg"])
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, logrus.DebugLevel, ParseLevel("debug"))
	assert.Equal(t, logrus.InfoLevel, ParseLevel("nonsense"))
}
