package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/checkers-backend/internal/entity"
)

func TestLoad(t *testing.T) {
	t.Run("Reads values from the yml file", func(t *testing.T) {
		// Given: a config file with custom markers
		path := filepath.Join(t.TempDir(), "config.yml")
		content := "log-level: debug\nmarkers:\n  empty: \".\"\n  player1: w\n  player2: b\n"
		require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

		// When: loading it
		conf, err := Load(path)

		// Then: file values win, missing ones get defaults
		require.NoError(t, err)
		assert.Equal(t, "debug", conf.LogLevel)
		assert.Equal(t, "> ", conf.Prompt)
		assert.Equal(t, entity.Markers{Empty: ".", Player1: "w", Player2: "b"}, conf.Markers.BoardMarkers())
	})

	t.Run("Falls back to env and defaults without a file", func(t *testing.T) {
		// Given: no config file and an env override
		t.Setenv("CHECKERS_LOG_LEVEL", "debug")
		path := filepath.Join(t.TempDir(), "missing.yml")

		// When: loading
		conf, err := Load(path)

		// Then: env and defaults are applied
		require.NoError(t, err)
		assert.Equal(t, "debug", conf.LogLevel)
		assert.Equal(t, entity.DefaultMarkers, conf.Markers.BoardMarkers())
	})

	t.Run("MustLoad panics on a broken file", func(t *testing.T) {
		// Given: a file that is not yml
		path := filepath.Join(t.TempDir(), "config.yml")
		require.NoError(t, os.WriteFile(path, []byte("log-level: [unterminated"), 0o600))

		// Then: MustLoad panics
		assert.Panics(t, func() { MustLoad(path) })
	})
}

func TestConfig_SlogLevel(t *testing.T) {
	t.Run("Maps known levels", func(t *testing.T) {
		levels := map[string]slog.Level{
			"debug": slog.LevelDebug,
			"info":  slog.LevelInfo,
			"warn":  slog.LevelWarn,
			"error": slog.LevelError,
		}

		for name, want := range levels {
			// When: the level is parsed
			level, err := (&Config{LogLevel: name}).SlogLevel()

			// Then: it maps to the slog level
			require.NoError(t, err, "level %s", name)
			assert.Equal(t, want, level, "level %s", name)
		}
	})

	t.Run("Returns ErrUnknownLogLevel for anything else", func(t *testing.T) {
		for _, name := range []string{"", "verbose", "trace"} {
			_, err := (&Config{LogLevel: name}).SlogLevel()

			assert.ErrorIs(t, err, ErrUnknownLogLevel, "level %q", name)
		}
	})
}
