package logger_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/authkit/pkg/logger"
)

func decodeRecord(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	return record
}

func TestRedactingHandler(t *testing.T) {
	t.Parallel()

	t.Run("masks pii attributes", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		log := logger.New(logger.WithOutput(&buf))

		log.Info("user registered",
			slog.String("email", "jane@example.com"),
			slog.String("user_id", "u-1"),
		)

		record := decodeRecord(t, &buf)
		assert.Equal(t, logger.Redaction, record["email"])
		assert.Equal(t, "u-1", record["user_id"])
		assert.Equal(t, "user registered", record["msg"])
	})

	t.Run("masks every default key", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		log := logger.New(logger.WithOutput(&buf))

		log.Info("profile",
			slog.String("name", "Jane"),
			slog.String("email", "jane@example.com"),
			slog.String("phone", "555-0100"),
			slog.String("ssn", "000-00-0000"),
			slog.String("password", "s3cret"),
		)

		record := decodeRecord(t, &buf)
		for _, key := range logger.DefaultRedactedKeys() {
			assert.Equal(t, logger.Redaction, record[key], key)
		}
	})

	t.Run("masks group members", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		log := logger.New(logger.WithOutput(&buf))

		log.Info("profile", slog.Group("user",
			slog.String("email", "jane@example.com"),
			slog.String("id", "u-1"),
		))

		record := decodeRecord(t, &buf)
		group, ok := record["user"].(map[string]any)
		require.True(t, ok)
		assert.Equal(t, logger.Redaction, group["email"])
		assert.Equal(t, "u-1", group["id"])
	})

	t.Run("masks attributes attached via With", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		log := logger.New(logger.WithOutput(&buf)).With(slog.String("email", "jane@example.com"))

		log.Info("request handled")

		record := decodeRecord(t, &buf)
		assert.Equal(t, logger.Redaction, record["email"])
	})

	t.Run("masks static factory attributes", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		log := logger.New(
			logger.WithOutput(&buf),
			logger.WithAttr(slog.String("email", "jane@example.com")),
		)

		log.Info("boot")

		record := decodeRecord(t, &buf)
		assert.Equal(t, logger.Redaction, record["email"])
	})

	t.Run("custom key set replaces the default", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		log := logger.New(
			logger.WithOutput(&buf),
			logger.WithRedactedKeys("token"),
		)

		log.Info("session created",
			slog.String("token", "tok-1"),
			slog.String("email", "jane@example.com"),
		)

		record := decodeRecord(t, &buf)
		assert.Equal(t, logger.Redaction, record["token"])
		assert.Equal(t, "jane@example.com", record["email"])
	})
}

func TestNew(t *testing.T) {
	t.Parallel()

	t.Run("level filter", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		log := logger.New(logger.WithOutput(&buf), logger.WithLevel(slog.LevelWarn))

		log.Info("dropped")
		assert.Zero(t, buf.Len())

		log.Warn("kept")
		assert.NotZero(t, buf.Len())
	})

	t.Run("text format", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		log := logger.New(logger.WithOutput(&buf), logger.WithFormat(logger.FormatText))

		log.Info("hello", slog.String("email", "jane@example.com"))

		out := buf.String()
		assert.Contains(t, out, "msg=hello")
		assert.Contains(t, out, "email="+logger.Redaction)
		assert.NotContains(t, out, "jane@example.com")
	})
}
