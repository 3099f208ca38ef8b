package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"

	"github.com/ilyakaznacheev/cleanenv"

	"github.com/rocketscienceinc/checkers-backend/internal/entity"
)

var ErrUnknownLogLevel = errors.New("unknown log level")

type Config struct {
	LogLevel string  `yaml:"log-level" env:"CHECKERS_LOG_LEVEL" env-default:"info"`
	Prompt   string  `yaml:"prompt" env:"CHECKERS_PROMPT" env-default:"> "`
	Markers  Markers `yaml:"markers"`
}

type Markers struct {
	Empty   string `yaml:"empty" env:"CHECKERS_MARKER_EMPTY" env-default:" "`
	Player1 string `yaml:"player1" env:"CHECKERS_MARKER_PLAYER1" env-default:"1"`
	Player2 string `yaml:"player2" env:"CHECKERS_MARKER_PLAYER2" env-default:"2"`
}

// MustLoad - load all configurations from the yml file at path, falling back
// to environment variables and defaults when the file does not exist.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(fmt.Errorf("unable to load config file: %w", err))
	}

	return config
}

func Load(path string) (*Config, error) {
	config := &Config{}

	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		if err = cleanenv.ReadEnv(config); err != nil {
			return nil, fmt.Errorf("failed to read env: %w", err)
		}

		return config, nil
	}

	if err := cleanenv.ReadConfig(path, config); err != nil {
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	return config, nil
}

// BoardMarkers - markers in the form the board renderer takes.
func (that *Markers) BoardMarkers() entity.Markers {
	return entity.Markers{
		Empty:   that.Empty,
		Player1: that.Player1,
		Player2: that.Player2,
	}
}

// SlogLevel - parses log-level: debug, info, warn or error.
func (that *Config) SlogLevel() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(that.LogLevel)); err != nil {
		return 0, fmt.Errorf("%w: %q", ErrUnknownLogLevel, that.LogLevel)
	}

	return level, nil
}
