package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"histpad/history"
)

func write(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), ".histpad")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestNew(t *testing.T) {
	t.Run("missing file yields the default pad", func(t *testing.T) {
		config, err := New(filepath.Join(t.TempDir(), "absent"))
		require.NoError(t, err)
		assert.Equal(t, Default(), config)
	})

	t.Run("full config", func(t *testing.T) {
		path := write(t, `{"capacity": 5, "fields": [{"name": "repl", "prompt": "> ", "history": true}]}`)
		config, err := New(path)
		require.NoError(t, err)
		assert.Equal(t, 5, config.Capacity)
		require.Len(t, config.Fields, 1)
		assert.Equal(t, "repl", config.Fields[0].Name)
		assert.True(t, config.Fields[0].History)
	})

	t.Run("zero capacity means the default", func(t *testing.T) {
		path := write(t, `{"fields": [{"name": "repl"}]}`)
		config, err := New(path)
		require.NoError(t, err)
		assert.Equal(t, history.DefaultCap, config.Capacity)
	})

	t.Run("missing prompt is derived from the name", func(t *testing.T) {
		path := write(t, `{"fields": [{"name": "repl"}]}`)
		config, err := New(path)
		require.NoError(t, err)
		assert.Equal(t, "(repl) ", config.Fields[0].Prompt)
	})

	t.Run("negative capacity", func(t *testing.T) {
		path := write(t, `{"capacity": -1, "fields": [{"name": "repl"}]}`)
		_, err := New(path)
		assert.Error(t, err)
	})

	t.Run("no fields", func(t *testing.T) {
		path := write(t, `{"capacity": 10}`)
		_, err := New(path)
		assert.Error(t, err)
	})

	t.Run("unnamed field", func(t *testing.T) {
		path := write(t, `{"fields": [{"prompt": "> "}]}`)
		_, err := New(path)
		assert.Error(t, err)
	})

	t.Run("malformed json", func(t *testing.T) {
		path := write(t, `{`)
		_, err := New(path)
		assert.Error(t, err)
	})
}
