package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/arthur-debert/futils/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVerbosityToLevel(t *testing.T) {
	tests := []struct {
		verbosity int
		want      zerolog.Level
		wantErr   bool
	}{
		{0, zerolog.ErrorLevel, false},
		{1, zerolog.InfoLevel, false},
		{2, zerolog.DebugLevel, false},
		{3, zerolog.NoLevel, true},
		{-1, zerolog.NoLevel, true},
	}

	for _, tt := range tests {
		got, err := VerbosityToLevel(tt.verbosity)
		if tt.wantErr {
			require.Error(t, err, "verbosity %d", tt.verbosity)
			assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
			assert.Contains(t, err.Error(), "Invalid value for verbosity")
			continue
		}
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, "verbosity %d", tt.verbosity)
	}
}

func TestSetupLogger(t *testing.T) {
	t.Cleanup(func() { zerolog.SetGlobalLevel(zerolog.InfoLevel) })

	tests := []struct {
		name      string
		verbosity int
		wantLevel zerolog.Level
	}{
		{"quiet", 0, zerolog.ErrorLevel},
		{"info level", 1, zerolog.InfoLevel},
		{"debug level", 2, zerolog.DebugLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logPath := filepath.Join(t.TempDir(), "state", "futils.log")

			require.NoError(t, SetupLogger(tt.verbosity, logPath))
			assert.Equal(t, tt.wantLevel, zerolog.GlobalLevel())

			_, err := os.Stat(logPath)
			assert.NoError(t, err, "log file should be created")
		})
	}

	t.Run("invalid verbosity", func(t *testing.T) {
		err := SetupLogger(9, "")
		assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
	})

	t.Run("console only", func(t *testing.T) {
		require.NoError(t, SetupLogger(1, ""))
	})
}

func TestSetupLogger_WritesToFile(t *testing.T) {
	t.Cleanup(func() { zerolog.SetGlobalLevel(zerolog.InfoLevel) })

	logPath := filepath.Join(t.TempDir(), "futils.log")
	require.NoError(t, SetupLogger(1, logPath))

	logger := GetLogger("restore")
	logger.Info().Msg("hello from test")

	data, err := os.ReadFile(logPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "hello from test")
	assert.Contains(t, string(data), `"component":"restore"`)
}

func TestWithFields(t *testing.T) {
	var buf bytes.Buffer
	original := log.Logger
	t.Cleanup(func() { log.Logger = original })
	log.Logger = zerolog.New(&buf)

	logger := WithFields(map[string]interface{}{
		"key1": "value1",
		"key2": 42,
	})
	logger.Info().Msg("test message with fields")

	out := buf.String()
	assert.True(t, strings.Contains(out, `"key1":"value1"`))
	assert.True(t, strings.Contains(out, `"key2":42`))
}

func TestLogOperationStart(t *testing.T) {
	var buf bytes.Buffer
	zerolog.SetGlobalLevel(zerolog.DebugLevel)
	t.Cleanup(func() { zerolog.SetGlobalLevel(zerolog.InfoLevel) })

	done := LogOperationStart(zerolog.New(&buf), "hash")
	done()

	out := buf.String()
	assert.Contains(t, out, "Operation started")
	assert.Contains(t, out, "Operation completed")
}
