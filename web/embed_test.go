package web

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestViewsLoadAndRender(t *testing.T) {
	engine := NewViewEngine()
	require.NoError(t, engine.Load())

	for _, name := range []string{"welcome", "auth/login", "auth/register", "tasks/index", "tasks/create", "tasks/edit"} {
		var buf bytes.Buffer
		err := engine.Render(&buf, name, map[string]any{"Title": "x"}, DefaultLayout)
		require.NoError(t, err, name)
		assert.Contains(t, buf.String(), "<nav>", name)
	}
}

func TestLoginViewShowsError(t *testing.T) {
	engine := NewViewEngine()
	require.NoError(t, engine.Load())

	var buf bytes.Buffer
	require.NoError(t, engine.Render(&buf, "auth/login", map[string]any{"Error": "Invalid Credentials"}))
	assert.Contains(t, buf.String(), "Invalid Credentials")
}

func TestFormatTime(t *testing.T) {
	assert.Equal(t, "", formatTime(time.Time{}))
	assert.Equal(t, "2017-10-26 22:24", formatTime(time.Date(2017, 10, 26, 22, 24, 51, 0, time.UTC)))
}
