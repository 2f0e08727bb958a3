package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/lk16/reversi/internal/reversi"
)

const (
	DefaultAIDelay   = time.Second
	DefaultFlipDelay = 100 * time.Millisecond
	DefaultPassDelay = 3 * time.Second
)

// ServerConfig holds all configuration values for the server, loaded from environment variables.
type ServerConfig struct {
	ServerHost string
	ServerPort string

	// RedisURL and PostgresURL are optional. Empty values disable the sink.
	RedisURL    string
	PostgresURL string

	Game GameConfig
}

// GameConfig holds the board size and the pacing of a game.
type GameConfig struct {
	BoardWidth  int
	BoardHeight int

	// Delays only exist so humans can follow the game.
	AIDelay   time.Duration
	FlipDelay time.Duration
	PassDelay time.Duration
}

// LoadServerConfig loads configuration from environment variables.
func LoadServerConfig() *ServerConfig {
	return &ServerConfig{
		ServerHost:  getEnvMust("REVERSI_SERVER_HOST"),
		ServerPort:  getEnvMust("REVERSI_SERVER_PORT"),
		RedisURL:    os.Getenv("REVERSI_REDIS_URL"),
		PostgresURL: os.Getenv("REVERSI_POSTGRES_URL"),
		Game:        *LoadGameConfig(),
	}
}

// LoadGameConfig loads the game configuration, falling back to an 8x8 board and the default delays.
func LoadGameConfig() *GameConfig {
	cfg := &GameConfig{
		BoardWidth:  getEnvInt("REVERSI_BOARD_WIDTH", reversi.DefaultWidth),
		BoardHeight: getEnvInt("REVERSI_BOARD_HEIGHT", reversi.DefaultHeight),
		AIDelay:     getEnvDuration("REVERSI_AI_DELAY", DefaultAIDelay),
		FlipDelay:   getEnvDuration("REVERSI_FLIP_DELAY", DefaultFlipDelay),
		PassDelay:   getEnvDuration("REVERSI_PASS_DELAY", DefaultPassDelay),
	}

	if err := cfg.validate(); err != nil {
		slog.Error("Invalid board dimensions", "width", cfg.BoardWidth, "height", cfg.BoardHeight, "error", err)
		os.Exit(1)
	}

	return cfg
}

func (cfg *GameConfig) validate() error {
	if cfg.BoardWidth < 2 || cfg.BoardHeight < 2 {
		return errors.New("board dimensions must be at least 2")
	}

	if cfg.BoardWidth > reversi.MaxWidth || cfg.BoardHeight > reversi.MaxHeight {
		return fmt.Errorf("board dimensions must be at most %dx%d", reversi.MaxWidth, reversi.MaxHeight)
	}

	return nil
}

// getEnvMust either returns the environment variable or logs a fatal error if it is not set.
func getEnvMust(key string) string {
	value := os.Getenv(key)
	if value == "" {
		slog.Error("Environment variable is not set", "key", key)
		os.Exit(1)
	}
	return value
}

func getEnvInt(key string, fallback int) int {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}

	parsed, err := strconv.Atoi(value)
	if err != nil {
		slog.Error("Cannot load environment variable, it must be an integer", "key", key, "value", value)
		os.Exit(1)
	}

	return parsed
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}

	parsed, err := time.ParseDuration(value)
	if err != nil || parsed < 0 {
		slog.Error("Cannot load environment variable, it must be a non-negative duration", "key", key, "value", value)
		os.Exit(1)
	}

	return parsed
}
