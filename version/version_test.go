package version

import (
	"encoding/json"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetVersionInfo(t *testing.T) {
	info := GetVersionInfo()
	assert.Equal(t, runtime.Version(), info.GoVersion)
	assert.NotEmpty(t, info.Version)

	out, err := info.JSON()
	require.NoError(t, err)
	var decoded Info
	require.NoError(t, json.Unmarshal([]byte(out), &decoded))
	assert.Equal(t, info, decoded)
	assert.Contains(t, info.String(), "Go Version: "+runtime.Version())
}

func TestShortRevision(t *testing.T) {
	assert.Equal(t, "abcdef1", shortRevision("abcdef1234567"))
	assert.Equal(t, "abc", shortRevision("abc"))
}
