package logger

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInit(t *testing.T) {
	defer log.SetLevel(log.GetLevel())
	defer log.SetFormatter(log.StandardLogger().Formatter)

	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_FORMAT", "JSON")
	Init()
	assert.Equal(t, log.DebugLevel, log.GetLevel())
	assert.IsType(t, &log.JSONFormatter{}, log.StandardLogger().Formatter)

	t.Setenv("LOG_LEVEL", "bogus")
	t.Setenv("LOG_FORMAT", "")
	Init()
	assert.Equal(t, log.InfoLevel, log.GetLevel())
	assert.IsType(t, &log.TextFormatter{}, log.StandardLogger().Formatter)
}

func TestRedirect(t *testing.T) {
	path := filepath.Join(t.TempDir(), "boulders.log")
	restore, err := Redirect(path)
	require.NoError(t, err)
	log.Warn("into the file")
	restore()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "into the file")

	restore, err = Redirect("")
	require.NoError(t, err)
	assert.Equal(t, io.Discard, log.StandardLogger().Out)
	restore()
	assert.Equal(t, os.Stderr, log.StandardLogger().Out)

	_, err = Redirect(filepath.Join(t.TempDir(), "missing", "boulders.log"))
	assert.Error(t, err)
}
