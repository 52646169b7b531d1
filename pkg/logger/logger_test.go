package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInfoContextAddsRequestID(t *testing.T) {
	var buf bytes.Buffer
	InitWithWriter(&buf, "info", "json")

	ctx := ContextWithRequestID(context.Background(), "req-123")
	InfoContext(ctx, "hello", "user_id", 7)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "hello", entry["msg"])
	assert.Equal(t, "req-123", entry["request_id"])
	assert.EqualValues(t, 7, entry["user_id"])
}

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	InitWithWriter(&buf, "warn", "text")

	Info("dropped")
	assert.Empty(t, buf.String())

	Warn("kept")
	assert.Contains(t, buf.String(), "kept")
}

func TestGetRequestID(t *testing.T) {
	assert.Equal(t, "", GetRequestID(context.Background()))
	assert.Equal(t, "abc", GetRequestID(ContextWithRequestID(context.Background(), "abc")))
}

func TestInitFileOutput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "app.log")
	cfg := DefaultConfig()
	cfg.Output = "file"
	cfg.FilePath = path

	require.NoError(t, Init(cfg))
	Info("to file")
	require.NoError(t, Close())

	assert.FileExists(t, path)
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, "DEBUG", parseLevel("debug").String())
	assert.Equal(t, "ERROR", parseLevel("error").String())
	assert.Equal(t, "INFO", parseLevel("bogus").String())
}
