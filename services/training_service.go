//go:generate go run go.uber.org/mock/mockgen -source=training_service.go -destination=../mocks/mock_training_service.go -package=mocks
package services

import (
	"chatty/ai"
	"chatty/catalog"
	"chatty/domain"
	"chatty/nlp"
	"chatty/repositories"
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/samber/lo"
)

type ITrainingService interface {
	Train(ctx context.Context, intents domain.Catalog) (repositories.Artifacts, error)
}

type TrainingService struct {
	log        *slog.Logger
	repository repositories.IArtifactRepository
	normalizer nlp.INormalizer
	config     ai.TrainingConfig
}

func NewTrainingService(log *slog.Logger, repository repositories.IArtifactRepository,
	normalizer nlp.INormalizer, config ai.TrainingConfig) *TrainingService {
	return &TrainingService{log: log, repository: repository, normalizer: normalizer, config: config}
}

// Train builds the vocabulary and label set, fits a new network and stores
// the three of them as a new run that becomes the current one.
func (s *TrainingService) Train(ctx context.Context, intents domain.Catalog) (repositories.Artifacts, error) {
	if err := catalog.Validate(intents); err != nil {
		return repositories.Artifacts{}, err
	}
	vocabulary, labels, err := nlp.BuildVocabulary(intents, s.normalizer)
	if err != nil {
		return repositories.Artifacts{}, err
	}
	samples, err := ai.Samples(intents, ai.NewVectorizer(vocabulary, s.normalizer), labels)
	if err != nil {
		return repositories.Artifacts{}, err
	}
	s.log.Info("Training started",
		"intents", len(labels), "vocabulary", len(vocabulary), "samples", len(samples), "epochs", s.config.Epochs)

	start := time.Now()
	network, history, err := ai.NewTrainer(s.log, s.config).Fit(ctx, samples)
	if err != nil {
		return repositories.Artifacts{}, fmt.Errorf("training: %w", err)
	}

	artifacts := repositories.Artifacts{
		RunID:      uuid.New(),
		TrainedAt:  time.Now().UTC(),
		Vocabulary: vocabulary,
		Labels:     labels,
		Model:      network,
	}
	if err := s.repository.SaveArtifacts(artifacts); err != nil {
		return repositories.Artifacts{}, fmt.Errorf("storing artifacts: %w", err)
	}

	last, _ := lo.Last(history)
	s.log.Info("Training done",
		"run", artifacts.RunID,
		"loss", last.Loss,
		"accuracy", last.Accuracy,
		"duration", time.Since(start))
	return artifacts, nil
}
