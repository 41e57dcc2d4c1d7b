package main

import (
	"bytes"
	"chatty/domain"
	"chatty/errors"
	"chatty/mocks"
	"chatty/repositories"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestInspector_Render(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	artifacts := mocks.NewMockIArtifactRepository(ctrl)
	exchanges := mocks.NewMockIExchangeRepository(ctrl)

	run := uuid.New()
	at := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	artifacts.EXPECT().ListRuns().Return([]repositories.RunSummary{
		{RunID: run, TrainedAt: at, InputSize: 42, OutputSize: 2, Current: true},
	}, nil)
	artifacts.EXPECT().LoadArtifacts().Return(repositories.Artifacts{
		RunID:      run,
		Vocabulary: make(domain.Vocabulary, 42),
		Labels:     domain.LabelSet{"greeting", "weather_query"},
	}, nil)
	exchanges.EXPECT().GetExchanges(nil).Return([]domain.Exchange{
		{Message: "Any news?", Lang: "en", Intent: "news", Probability: 0.91,
			Response: "Here are the top headlines:\n- A", At: at},
	}, nil, nil)

	var out bytes.Buffer
	err := Inspector{artifacts: artifacts, exchanges: exchanges}.Render(&out)
	req.NoError(err)
	req.Contains(out.String(), run.String())
	req.Contains(out.String(), "2026-03-01 10:00:00")
	req.Contains(out.String(), "42 words")
	req.Contains(out.String(), "weather_query")
	req.Contains(out.String(), "0.91")
	req.Contains(out.String(), "Here are the top headlines:")
	req.NotContains(out.String(), "- A")
}

func TestInspector_Render_Empty_Database(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	artifacts := mocks.NewMockIArtifactRepository(ctrl)
	exchanges := mocks.NewMockIExchangeRepository(ctrl)

	artifacts.EXPECT().ListRuns().Return(nil, nil)
	artifacts.EXPECT().LoadArtifacts().Return(repositories.Artifacts{}, errors.ErrArtifactsNotFound)
	exchanges.EXPECT().GetExchanges(nil).Return(nil, nil, nil)

	var out bytes.Buffer
	req.NoError(Inspector{artifacts: artifacts, exchanges: exchanges}.Render(&out))
	req.Contains(out.String(), "No trained model")
}
