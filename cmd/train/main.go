package main

import (
	"chatty/catalog"
	"chatty/domain"
	"chatty/internal"
	"chatty/nlp"
	"chatty/repositories"
	"chatty/services"
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/dgraph-io/badger/v4"
	"github.com/mama165/sdk-go/logs"
)

const (
	exitOK      = 0
	exitRuntime = 1
	exitConfig  = 2
)

func main() {
	code, err := run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Training error: %v\n", err)
	}
	os.Exit(code)
}

// run loads the catalog, trains a new model and makes it the current run.
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

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	service := services.NewTrainingService(log,
		repositories.NewArtifactRepository(db, log),
		nlp.NewNormalizer(),
		config.TrainingConfig())
	if err := train(ctx, service, intents, os.Stdout); err != nil {
		return exitRuntime, err
	}
	return exitOK, nil
}

// train runs one training and prints its summary.
func train(ctx context.Context, service services.ITrainingService, intents domain.Catalog, out io.Writer) error {
	artifacts, err := service.Train(ctx, intents)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(out, "Model trained: run %s, %d words, %d intents\n",
		artifacts.RunID, len(artifacts.Vocabulary), len(artifacts.Labels))
	return err
}
