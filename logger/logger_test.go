package logger

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"twofour/twofour"
)

// slog needs no adapter.
var _ twofour.Logger = (*slog.Logger)(nil)

func newBufferedLogrus(level logrus.Level) (*logrus.Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	l := logrus.New()
	l.SetOutput(&buf)
	l.SetFormatter(&logrus.JSONFormatter{})
	l.SetLevel(level)
	return l, &buf
}

func decodeLines(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()
	var entries []map[string]any
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if line == "" {
			continue
		}
		entry := map[string]any{}
		require.NoError(t, json.Unmarshal([]byte(line), &entry))
		entries = append(entries, entry)
	}
	return entries
}

func TestLogrusAdapter(t *testing.T) {
	t.Parallel()

	l, buf := newBufferedLogrus(logrus.DebugLevel)
	log := NewLogrus(l)

	log.Debug("split root", "median", 47, "height", 2)
	log.Info("info message")
	log.Warn("insert rejected key", "key", "x", 7, "ignored", "dangling")
	log.Error("invariant check failed")

	entries := decodeLines(t, buf)
	require.Len(t, entries, 4)
	assert.Equal(t, "split root", entries[0]["msg"])
	assert.Equal(t, "debug", entries[0]["level"])
	assert.EqualValues(t, 47, entries[0]["median"])
	assert.EqualValues(t, 2, entries[0]["height"])
	assert.Equal(t, "info", entries[1]["level"])
	assert.Equal(t, "warning", entries[2]["level"])
	assert.Equal(t, "x", entries[2]["key"])
	assert.NotContains(t, entries[2], "dangling")
	assert.Equal(t, "error", entries[3]["level"])
}

func TestLogrusAdapterRespectsLevel(t *testing.T) {
	t.Parallel()

	l, buf := newBufferedLogrus(logrus.InfoLevel)
	NewLogrus(l).Debug("split node")
	assert.Empty(t, buf.String())
}

func TestZapAdapter(t *testing.T) {
	t.Parallel()

	core, logs := observer.New(zapcore.DebugLevel)
	log := NewZap(zap.New(core))

	log.Debug("split root", "median", 47)
	log.Info("info message")
	log.Warn("remove is not supported", "key", 3)
	log.Error("invariant check failed", "error", "size mismatch")

	require.Equal(t, 4, logs.Len())
	split := logs.FilterMessage("split root").All()
	require.Len(t, split, 1)
	assert.Equal(t, zapcore.DebugLevel, split[0].Level)
	assert.EqualValues(t, 47, split[0].ContextMap()["median"])
	assert.Equal(t, zapcore.WarnLevel, logs.FilterMessage("remove is not supported").All()[0].Level)
	assert.Equal(t, zapcore.ErrorLevel, logs.FilterMessage("invariant check failed").All()[0].Level)
}

func TestAdaptersReceiveTreeEvents(t *testing.T) {
	t.Parallel()

	core, logs := observer.New(zapcore.DebugLevel)
	l, buf := newBufferedLogrus(logrus.DebugLevel)

	for _, log := range []twofour.Logger{NewZap(zap.New(core)), NewLogrus(l)} {
		tree := twofour.New[int, string](twofour.Natural[int](), twofour.WithLogger(log))
		for _, k := range []int{47, 83, 22, 16} {
			require.NoError(t, tree.Insert(k, "v"))
		}
	}

	assert.Equal(t, 1, logs.FilterMessage("split root").Len())
	assert.Contains(t, buf.String(), `"msg":"split root"`)
}
