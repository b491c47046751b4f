package main

import (
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle-rooms/internal/config"
	"github.com/robalobadob/wordle-rooms/internal/game"
	"github.com/robalobadob/wordle-rooms/internal/httpserver"
	"github.com/robalobadob/wordle-rooms/internal/store"
	"github.com/robalobadob/wordle-rooms/internal/token"
	"github.com/robalobadob/wordle-rooms/internal/words"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()
	if lvl, err := zerolog.ParseLevel(cfg.LogLevel); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}

	if err := words.Init(cfg.WordsFile); err != nil {
		log.Fatal().Err(err).Msg("failed to load word list")
	}
	log.Info().Int("words", words.Count()).Msg("word list loaded")

	results, err := store.OpenSQLite(cfg.DBPath)
	if err != nil {
		log.Fatal().Err(err).Str("path", cfg.DBPath).Msg("failed to open database")
	}
	defer results.Close()

	tokens := token.NewIssuer(cfg.TokenSecret, cfg.TokenTTL)
	registry := game.NewRegistry(game.RegistryConfig{
		DefaultMaxRounds: cfg.DefaultMaxRounds,
		AllowSpectators:  cfg.AllowSpectators,
		PickAnswer:       words.RandomAnswer,
		Tokens:           tokens,
	})

	srv := httpserver.New(registry, tokens, results, cfg)
	log.Info().Str("port", cfg.Port).Msg("starting wordle-rooms server")
	if err := srv.Start(":" + cfg.Port); err != nil {
		log.Fatal().Err(err).Msg("server exited")
	}
}
