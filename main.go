package main

import (
	"context"
	"os"
	"os/signal"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"chessmate/config"
	"chessmate/playground"
	"chessmate/storage"
)

func setupLogging(cfg config.LogConfig) {
	level, err := zerolog.ParseLevel(cfg.Level)
	if err != nil {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)
	if cfg.Style == "console" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}
}

func openStore(cfg config.DBConfig) (*storage.Store, error) {
	if cfg.Dir == "" {
		return storage.OpenInMemory()
	}
	return storage.Open(cfg.Dir)
}

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("config-load-failed")
	}
	setupLogging(cfg.Logs)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	pg, err := playground.New(
		playground.BotFactory(cfg.White.Kind, cfg.White.Depth),
		playground.BotFactory(cfg.Black.Kind, cfg.Black.Depth),
		playground.WithMaxPlies(cfg.Games.MaxPlies),
		playground.WithParallelism(cfg.Games.Parallelism),
		playground.WithStartFEN(cfg.Games.StartFEN),
	)
	if err != nil {
		log.Fatal().Err(err).Msg("playground-setup-failed")
	}

	store, err := openStore(cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("storage-open-failed")
	}
	defer store.Close()

	session := time.Now().UTC().Format("20060102T150405")
	log.Info().
		Str("session", session).
		Str("white", cfg.White.Kind).
		Str("black", cfg.Black.Kind).
		Int("games", cfg.Games.Count).
		Msg("session-started")

	records, err := pg.PlayGames(ctx, cfg.Games.Count)
	if err != nil {
		log.Error().Err(err).Msg("self-play-failed")
		return
	}

	totals, err := store.RecordSession(session, records)
	if err != nil {
		log.Error().Err(err).Msg("storage-write-failed")
		return
	}
	summary := playground.Summarize(records)
	log.Info().
		Str("session", session).
		Interface("endings", summary.Endings).
		Interface("methods", summary.Methods).
		Int("totalGames", totals.Games).
		Msg("session-finished")
}
