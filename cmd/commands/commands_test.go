package commands

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/ncobase/boardfront/config"
	"github.com/ncobase/boardfront/version"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVersionCommand(t *testing.T) {
	root := NewRootCmd()
	out := &bytes.Buffer{}
	root.SetOut(out)
	root.SetArgs([]string{"version", "--json"})
	require.NoError(t, root.Execute())

	var info version.Info
	require.NoError(t, json.Unmarshal(out.Bytes(), &info))
	assert.NotEmpty(t, info.GoVersion)
}

func TestRootHasServe(t *testing.T) {
	cmd, _, err := NewRootCmd().Find([]string{"serve"})
	require.NoError(t, err)
	assert.Equal(t, "serve", cmd.Name())
	assert.NotNil(t, cmd.Flags().Lookup("config"))
}

func TestTracerOption(t *testing.T) {
	v := viper.New()
	v.Set("run_mode", "release")
	v.Set("observes.tracer.endpoint", "otel:4317")
	cfg := config.FromViper(v)

	opt := tracerOption(cfg, "1.2.3")
	assert.Equal(t, "otel:4317", opt.URL)
	assert.Equal(t, "boardfront", opt.Name)
	assert.Equal(t, "1.2.3", opt.Version)
	assert.Equal(t, "release", opt.Environment)
}
