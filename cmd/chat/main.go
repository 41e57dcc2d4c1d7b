package main

import (
	"chatty/ai"
	"chatty/catalog"
	"chatty/internal"
	"chatty/lookup"
	"chatty/moderation"
	"chatty/nlp"
	"chatty/repositories"
	"chatty/router"
	"chatty/services"
	"context"
	"fmt"
	"math/rand/v2"
	"os"
	"os/signal"
	"syscall"

	"github.com/dgraph-io/badger/v4"
	"github.com/mama165/sdk-go/logs"
	"github.com/peterh/liner"
)

const (
	exitOK      = 0
	exitRuntime = 1
	exitConfig  = 2
)

func main() {
	code, err := run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Chat error: %v\n", err)
	}
	os.Exit(code)
}

// run wires the bot from the current training run and hands the terminal to the session.
func run() (int, error) {
	config, err := internal.LoadConfig()
	if err != nil {
		return exitConfig, err
	}
	log := logs.GetLoggerFromString(config.LogLevel)

	intents, err := catalog.Load(config.CatalogPath)
	if err != nil {
		return exitConfig, err
	}

	db, err := badger.Open(badger.DefaultOptions(config.BadgerFilepath).
		WithLoggingLevel(badger.WARNING))
	if err != nil {
		return exitRuntime, fmt.Errorf("database opening failed: %w", err)
	}
	defer func() {
		log.Info("Closing BadgerDB...")
		_ = db.Close()
	}()

	artifacts, err := repositories.NewArtifactRepository(db, log).LoadArtifacts()
	if err != nil {
		return exitRuntime, fmt.Errorf("loading model (run the trainer first): %w", err)
	}
	log.Info("Model loaded", "run", artifacts.RunID, "trained_at", artifacts.TrainedAt,
		"vocabulary", len(artifacts.Vocabulary), "labels", len(artifacts.Labels))

	var censor moderation.ICensor
	if len(config.CensoredWords) > 0 {
		char, err := internal.CharacterRune(config.CharacterReplacement)
		if err != nil {
			return exitConfig, err
		}
		moderator, err := moderation.NewModerator(config.CensoredWords, char, log)
		if err != nil {
			return exitConfig, fmt.Errorf("building moderator: %w", err)
		}
		censor = moderator
	}

	client := lookup.NewHTTPClient(config.HTTPTimeout)
	weather := lookup.NewWeatherClient(log, client, config.WeatherAPIURL, config.DefaultCity, lookup.FromEnvironment)
	news := lookup.NewNewsClient(log, client, config.NewsAPIURL, lookup.FromEnvironment)

	analysis := ai.NewAnalysis(ai.NewVectorizer(artifacts.Vocabulary, nlp.NewNormalizer()), artifacts.Model, artifacts.Labels)
	bot := services.NewBot(log,
		analysis,
		router.NewRouter(log, intents, weather, news, rand.IntN),
		censor,
		repositories.NewExchangeRepository(db, log, nil))

	// Signals cancel in-flight lookups; Ctrl-C at the prompt reaches liner as input.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	line := liner.NewLiner()
	defer func() { _ = line.Close() }()
	line.SetCtrlCAborts(true)

	if err := NewSession(line, os.Stdout, bot).Run(ctx); err != nil {
		return exitRuntime, err
	}
	return exitOK, nil
}
