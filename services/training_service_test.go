package services

import (
	"chatty/ai"
	"chatty/domain"
	"chatty/errors"
	"chatty/mocks"
	"chatty/nlp"
	"chatty/repositories"
	"context"
	"fmt"
	"log/slog"
	"testing"

	"github.com/google/uuid"
	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func trainingCatalog() domain.Catalog {
	return domain.Catalog{Intents: []domain.Intent{
		{Tag: "greeting", Patterns: []string{"Hi", "Hello", "Good day"}, Responses: []string{"Hello!"}},
		{Tag: "goodbye", Patterns: []string{"Bye", "See you later"}, Responses: []string{"Goodbye!"}},
		{Tag: domain.TagWeather, Patterns: []string{"What's the weather in Paris?", "Temperature in Rome"}},
	}}
}

func smallConfig() ai.TrainingConfig {
	config := ai.DefaultTrainingConfig()
	config.Hidden = []int{16}
	config.DropoutRate = 0
	config.Epochs = 150
	config.LearningRate = 0.1
	return config
}

func TestTrainingService_Train(t *testing.T) {
	req := require.New(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	ctrl := gomock.NewController(t)
	repository := mocks.NewMockIArtifactRepository(ctrl)
	service := NewTrainingService(log, repository, nlp.NewNormalizer(), smallConfig())

	var stored repositories.Artifacts
	repository.EXPECT().SaveArtifacts(gomock.Any()).DoAndReturn(func(a repositories.Artifacts) error {
		stored = a
		return nil
	})

	artifacts, err := service.Train(context.Background(), trainingCatalog())
	req.NoError(err)
	req.Equal(stored, artifacts)
	req.NotEqual(uuid.Nil, artifacts.RunID)
	req.False(artifacts.TrainedAt.IsZero())
	req.Equal(domain.LabelSet{"goodbye", "greeting", "weather_query"}, artifacts.Labels)
	req.Contains(artifacts.Vocabulary, "weather")
	req.Equal(len(artifacts.Vocabulary), artifacts.Model.InputSize())
	req.Equal(len(artifacts.Labels), artifacts.Model.OutputSize())

	analysis := ai.NewAnalysis(ai.NewVectorizer(artifacts.Vocabulary, nlp.NewNormalizer()), artifacts.Model, artifacts.Labels)
	classification, err := analysis.Classify("Hello")
	req.NoError(err)
	top, ok := classification.Top()
	req.True(ok)
	req.Equal("greeting", top.Tag)
}

func TestTrainingService_Train_Failures(t *testing.T) {
	errDiskFull := fmt.Errorf("disk full")
	tests := []struct {
		name     string
		ctx      func() context.Context
		catalog  domain.Catalog
		saveErr  error
		expected error
	}{
		{
			name:     "Invalid catalog is rejected before training",
			ctx:      context.Background,
			catalog:  domain.Catalog{},
			expected: errors.ErrEmptyCatalog,
		},
		{
			name: "Cancelled training is not stored",
			ctx: func() context.Context {
				ctx, cancel := context.WithCancel(context.Background())
				cancel()
				return ctx
			},
			catalog:  trainingCatalog(),
			expected: context.Canceled,
		},
		{
			name:     "Storage failure is returned",
			ctx:      context.Background,
			catalog:  trainingCatalog(),
			saveErr:  errDiskFull,
			expected: errDiskFull,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := require.New(t)
			ctrl := gomock.NewController(t)
			repository := mocks.NewMockIArtifactRepository(ctrl)
			config := smallConfig()
			config.Epochs = 2
			service := NewTrainingService(slog.Default(), repository, nlp.NewNormalizer(), config)
			if tt.saveErr != nil {
				repository.EXPECT().SaveArtifacts(gomock.Any()).Return(tt.saveErr)
			}

			_, err := service.Train(tt.ctx(), tt.catalog)
			req.ErrorIs(err, tt.expected)
		})
	}
}
