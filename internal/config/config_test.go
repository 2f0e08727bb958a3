package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoadGameConfig_Defaults(t *testing.T) {
	for _, key := range []string{
		"REVERSI_BOARD_WIDTH", "REVERSI_BOARD_HEIGHT",
		"REVERSI_AI_DELAY", "REVERSI_FLIP_DELAY", "REVERSI_PASS_DELAY",
	} {
		t.Setenv(key, "")
	}

	cfg := LoadGameConfig()

	require.Equal(t, &GameConfig{
		BoardWidth:  8,
		BoardHeight: 8,
		AIDelay:     DefaultAIDelay,
		FlipDelay:   DefaultFlipDelay,
		PassDelay:   DefaultPassDelay,
	}, cfg)
}

func TestLoadGameConfig_FromEnv(t *testing.T) {
	t.Setenv("REVERSI_BOARD_WIDTH", "6")
	t.Setenv("REVERSI_BOARD_HEIGHT", "4")
	t.Setenv("REVERSI_AI_DELAY", "0s")
	t.Setenv("REVERSI_FLIP_DELAY", "5ms")
	t.Setenv("REVERSI_PASS_DELAY", "1m")

	cfg := LoadGameConfig()

	require.Equal(t, 6, cfg.BoardWidth)
	require.Equal(t, 4, cfg.BoardHeight)
	require.Equal(t, time.Duration(0), cfg.AIDelay)
	require.Equal(t, 5*time.Millisecond, cfg.FlipDelay)
	require.Equal(t, time.Minute, cfg.PassDelay)
}

func TestLoadServerConfig(t *testing.T) {
	t.Setenv("REVERSI_SERVER_HOST", "localhost")
	t.Setenv("REVERSI_SERVER_PORT", "3000")
	t.Setenv("REVERSI_REDIS_URL", "")
	t.Setenv("REVERSI_POSTGRES_URL", "")

	cfg := LoadServerConfig()

	require.Equal(t, "localhost", cfg.ServerHost)
	require.Equal(t, "3000", cfg.ServerPort)
	require.Empty(t, cfg.RedisURL)
	require.Empty(t, cfg.PostgresURL)
}

func TestGameConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		width   int
		height  int
		wantErr bool
	}{
		{"smallest", 2, 2, false},
		{"default", 8, 8, false},
		{"largest", 26, 26, false},
		{"too narrow", 1, 8, true},
		{"too short", 8, 0, true},
		{"too wide", 27, 8, true},
		{"too tall", 8, 27, true},
		{"huge", 1 << 40, 1 << 40, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &GameConfig{BoardWidth: tt.width, BoardHeight: tt.height}

			err := cfg.validate()
			if tt.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
		})
	}
}
