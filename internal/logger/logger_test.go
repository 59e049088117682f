package logger

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Guliveer/livegame-go/internal/model"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, ParseLevel("debug"))
	assert.Equal(t, slog.LevelWarn, ParseLevel("WARNING"))
	assert.Equal(t, slog.LevelError, ParseLevel("ERROR"))
	assert.Equal(t, slog.LevelInfo, ParseLevel("nonsense"))
}

func TestWithComponent_PrefixesLines(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, slog.LevelInfo).WithComponent("livegame")

	log.Info("hello", "puuid", "abc")

	out := buf.String()
	assert.Contains(t, out, "[livegame] hello")
	assert.Contains(t, out, "puuid=abc")
}

func TestEvent_AddsEmojiAndAttr(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, slog.LevelInfo)

	log.Event(context.Background(), model.EventCacheHit, "served from cache")

	out := buf.String()
	assert.Contains(t, out, "⚡ served from cache")
	assert.Contains(t, out, "event=CACHE_HIT")
}

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, slog.LevelWarn)

	log.Info("dropped")
	log.Warn("kept")

	assert.NotContains(t, buf.String(), "dropped")
	assert.Contains(t, buf.String(), "kept")
}
