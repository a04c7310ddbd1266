package logger

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitText(t *testing.T) {
	var out bytes.Buffer
	Init(Options{Enabled: true, Level: slog.LevelInfo, Output: &out})
	t.Cleanup(func() { Init(Options{}) })

	L.Debug("hidden")
	L.Info("add extension", "type", 5)
	assert.NotContains(t, out.String(), "hidden")
	assert.Contains(t, out.String(), "msg=\"add extension\" type=5")
}

func TestInitJSON(t *testing.T) {
	var out bytes.Buffer
	Init(Options{Enabled: true, Level: slog.LevelDebug, JSON: true, Output: &out})
	t.Cleanup(func() { Init(Options{}) })

	L.Debug("zero out extension", "type", 7)
	assert.Contains(t, out.String(), `"msg":"zero out extension","type":7`)
}

func TestDisabledDiscards(t *testing.T) {
	var out bytes.Buffer
	Init(Options{Enabled: false, Level: slog.LevelDebug, Output: &out})

	L.Error("dropped")
	assert.Zero(t, out.Len())
}

func TestParseLevel(t *testing.T) {
	l, err := ParseLevel("debug")
	require.NoError(t, err)
	assert.Equal(t, slog.LevelDebug, l)
	l, err = ParseLevel(" WARN ")
	require.NoError(t, err)
	assert.Equal(t, slog.LevelWarn, l)
	_, err = ParseLevel("chatty")
	require.Error(t, err)
}
