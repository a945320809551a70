package logger_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/johanchan/website/pkg/logger"
)

type ctxKey struct{}

func TestContextExtractors(t *testing.T) {
	t.Parallel()

	// Exercise the context handler directly against a buffer; New writes to
	// stdout, which a test cannot capture cleanly.
	var buf bytes.Buffer
	base := slog.NewJSONHandler(&buf, nil)

	extract := func(ctx context.Context) (slog.Attr, bool) {
		if id, ok := ctx.Value(ctxKey{}).(string); ok {
			return slog.String("request_id", id), true
		}
		return slog.Attr{}, false
	}

	log := slog.New(logger.NewContextHandler(base, extract))

	ctx := context.WithValue(context.Background(), ctxKey{}, "req-123")
	log.InfoContext(ctx, "hello")

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.Equal(t, "req-123", record["request_id"])

	buf.Reset()
	log.InfoContext(context.Background(), "no id")
	record = map[string]any{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.NotContains(t, record, "request_id")
}

func TestNew_WithoutSentry(t *testing.T) {
	t.Parallel()

	log := logger.New(logger.Config{Level: "debug"})
	require.NotNil(t, log)
	assert.True(t, log.Enabled(context.Background(), slog.LevelDebug))

	quiet := logger.New(logger.Config{Level: "error"})
	assert.False(t, quiet.Enabled(context.Background(), slog.LevelInfo))
}
