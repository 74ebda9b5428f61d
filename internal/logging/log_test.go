package logging

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	t.Parallel()

	t.Run("filters below level", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger, err := New(&buf, "WARN")
		require.NoError(t, err)

		logger.Info().Msg("hidden")
		require.Zero(t, buf.Len())

		logger.Warn().Str("pool", "0x01").Msg("shown")

		var entry map[string]interface{}
		require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
		require.Equal(t, "warn", entry["level"])
		require.Equal(t, "shown", entry["message"])
		require.Equal(t, "0x01", entry["pool"])
		require.Contains(t, entry, "time")
	})

	t.Run("empty level means info", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger, err := New(&buf, "")
		require.NoError(t, err)

		logger.Debug().Msg("hidden")
		require.Zero(t, buf.Len())
		logger.Info().Msg("shown")
		require.NotZero(t, buf.Len())
	})

	t.Run("unknown level", func(t *testing.T) {
		t.Parallel()

		_, err := New(&bytes.Buffer{}, "loud")
		require.ErrorContains(t, err, "unknown log level")
	})
}

func TestStdWriter(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger, err := New(&buf, "info")
	require.NoError(t, err)

	n, err := stdWriter{logger: logger}.Write([]byte("listening on :1337\n"))
	require.NoError(t, err)
	require.Equal(t, 19, n)

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	require.Equal(t, "listening on :1337", entry["message"])
}
