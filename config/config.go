package config

import (
	"os"
	"strconv"

	"github.com/pkg/errors"

	// this will automatically load your .env file:
	_ "github.com/joho/godotenv/autoload"
)

type Config struct {
	Logs  LogConfig
	White BotConfig
	Black BotConfig
	Games GamesConfig
	DB    DBConfig
}

type LogConfig struct {
	Style string
	Level string
}

type BotConfig struct {
	Kind  string
	Depth int
}

type GamesConfig struct {
	Count       int
	MaxPlies    int
	Parallelism int
	StartFEN    string
}

// DBConfig locates the badger directory. An empty Dir keeps results in
// memory only.
type DBConfig struct {
	Dir string
}

func LoadConfig() (*Config, error) {
	games, err := intEnv("CHESSMATE_GAMES", 1)
	if err != nil {
		return nil, err
	}
	whiteDepth, err := intEnv("CHESSMATE_WHITE_DEPTH", 2)
	if err != nil {
		return nil, err
	}
	blackDepth, err := intEnv("CHESSMATE_BLACK_DEPTH", 2)
	if err != nil {
		return nil, err
	}
	maxPlies, err := intEnv("CHESSMATE_MAX_PLIES", 500)
	if err != nil {
		return nil, err
	}
	parallel, err := intEnv("CHESSMATE_PARALLEL", 1)
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		Logs: LogConfig{
			Style: os.Getenv("LOG_STYLE"),
			Level: stringEnv("LOG_LEVEL", "info"),
		},
		White: BotConfig{
			Kind:  stringEnv("CHESSMATE_WHITE", "minimax"),
			Depth: whiteDepth,
		},
		Black: BotConfig{
			Kind:  stringEnv("CHESSMATE_BLACK", "random"),
			Depth: blackDepth,
		},
		Games: GamesConfig{
			Count:       games,
			MaxPlies:    maxPlies,
			Parallelism: parallel,
			StartFEN:    os.Getenv("CHESSMATE_FEN"),
		},
		DB: DBConfig{
			Dir: os.Getenv("CHESSMATE_DB_DIR"),
		},
	}
	if cfg.Games.Count < 0 {
		return nil, errors.Errorf("CHESSMATE_GAMES must not be negative, got %d", cfg.Games.Count)
	}
	return cfg, nil
}

func stringEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func intEnv(key string, fallback int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, errors.Wrapf(err, "parsing %s", key)
	}
	return n, nil
}
