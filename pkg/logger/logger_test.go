package logger

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/johnquangdev/meeting-notes/pkg/config"
)

func TestNew_InvalidLevel(t *testing.T) {
	_, err := New(&config.Config{
		Server: config.ServerConfig{Environment: "development"},
		Log:    config.LogConfig{Level: "verbose"},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "LOG_LEVEL")
}

func TestNew_WritesToRotatingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "notes.log")
	log, err := New(&config.Config{
		Server: config.ServerConfig{Environment: "production"},
		Log:    config.LogConfig{Level: "info", File: path, MaxSizeMB: 1, MaxBackups: 1, MaxAgeDays: 1},
	})
	require.NoError(t, err)

	log.Debug("hidden")
	log.Info("meeting processed")
	_ = log.Sync()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "meeting processed")
	assert.NotContains(t, string(data), "hidden")
}

func TestRotatingWriter(t *testing.T) {
	w := RotatingWriter(&config.LogConfig{File: "/tmp/x.log", MaxSizeMB: 10, MaxBackups: 3, MaxAgeDays: 7})
	assert.Equal(t, "/tmp/x.log", w.Filename)
	assert.Equal(t, 10, w.MaxSize)
	assert.Equal(t, 3, w.MaxBackups)
	assert.Equal(t, 7, w.MaxAge)
}
