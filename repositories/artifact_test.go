package repositories

import (
	"chatty/ai"
	"chatty/domain"
	"chatty/errors"
	"log/slog"
	"math/rand/v2"
	"testing"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"
	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
)

func openDB(t *testing.T) *badger.DB {
	t.Helper()
	db, err := badger.Open(badger.DefaultOptions(t.TempDir()).WithLoggingLevel(badger.ERROR))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func newArtifacts(at time.Time) Artifacts {
	vocabulary := domain.Vocabulary{"hello", "hi", "news", "weather"}
	labels := domain.LabelSet{"greeting", "news", "weather_query"}
	rng := rand.New(rand.NewPCG(7, 7))
	return Artifacts{
		RunID:      uuid.New(),
		TrainedAt:  at,
		Vocabulary: vocabulary,
		Labels:     labels,
		Model:      ai.NewNetwork(len(vocabulary), []int{8, 4}, len(labels), 0.5, rng),
	}
}

func TestArtifactRepository_Save_And_Load(t *testing.T) {
	req := require.New(t)
	repository := NewArtifactRepository(openDB(t), logs.GetLoggerFromLevel(slog.LevelDebug))

	artifacts := newArtifacts(time.Now().UTC())
	req.NoError(repository.SaveArtifacts(artifacts))

	loaded, err := repository.LoadArtifacts()
	req.NoError(err)
	req.Equal(artifacts.RunID, loaded.RunID)
	req.True(artifacts.TrainedAt.Equal(loaded.TrainedAt))
	req.Equal(artifacts.Vocabulary, loaded.Vocabulary)
	req.Equal(artifacts.Labels, loaded.Labels)
	req.Equal(artifacts.Model, loaded.Model)

	features := domain.FeatureVector{1, 0, 0, 1}
	expected, err := artifacts.Model.Predict(features)
	req.NoError(err)
	actual, err := loaded.Model.Predict(features)
	req.NoError(err)
	req.Equal(expected, actual)
}

func TestArtifactRepository_Load_Without_Run(t *testing.T) {
	req := require.New(t)
	repository := NewArtifactRepository(openDB(t), slog.Default())

	_, err := repository.LoadArtifacts()
	req.ErrorIs(err, errors.ErrArtifactsNotFound)
}

func TestArtifactRepository_Retraining_Moves_Current(t *testing.T) {
	req := require.New(t)
	repository := NewArtifactRepository(openDB(t), slog.Default())

	at := time.Now().UTC()
	first := newArtifacts(at)
	second := newArtifacts(at.Add(time.Hour))
	req.NoError(repository.SaveArtifacts(first))
	req.NoError(repository.SaveArtifacts(second))

	loaded, err := repository.LoadArtifacts()
	req.NoError(err)
	req.Equal(second.RunID, loaded.RunID)

	runs, err := repository.ListRuns()
	req.NoError(err)
	req.Len(runs, 2)
	req.Equal(second.RunID, runs[0].RunID)
	req.True(runs[0].Current)
	req.Equal(first.RunID, runs[1].RunID)
	req.False(runs[1].Current)
	req.Equal(4, runs[0].InputSize)
	req.Equal(3, runs[0].OutputSize)
}

func TestArtifactRepository_Rejects_Mismatched_Widths(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(a *Artifacts)
	}{
		{
			name:   "Vocabulary wider than the model",
			mutate: func(a *Artifacts) { a.Vocabulary = append(a.Vocabulary, "zebra") },
		},
		{
			name:   "Label set narrower than the model",
			mutate: func(a *Artifacts) { a.Labels = a.Labels[:2] },
		},
		{
			name:   "Missing model",
			mutate: func(a *Artifacts) { a.Model = nil },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := require.New(t)
			repository := NewArtifactRepository(openDB(t), slog.Default())
			artifacts := newArtifacts(time.Now().UTC())
			tt.mutate(&artifacts)
			req.ErrorIs(repository.SaveArtifacts(artifacts), errors.ErrArtifactMismatch)
		})
	}
}

func TestArtifactRepository_Load_Detects_Tampered_Vocabulary(t *testing.T) {
	req := require.New(t)
	db := openDB(t)
	repository := NewArtifactRepository(db, slog.Default())

	artifacts := newArtifacts(time.Now().UTC())
	req.NoError(repository.SaveArtifacts(artifacts))

	err := db.Update(func(txn *badger.Txn) error {
		return txn.Set(artifactKey(artifacts.RunID, "vocabulary"), []byte(`["hello","hi"]`))
	})
	req.NoError(err)

	_, err = repository.LoadArtifacts()
	req.ErrorIs(err, errors.ErrArtifactMismatch)
}

func TestArtifactRepository_Load_Detects_Truncated_Model(t *testing.T) {
	req := require.New(t)
	db := openDB(t)
	repository := NewArtifactRepository(db, slog.Default())

	artifacts := newArtifacts(time.Now().UTC())
	req.NoError(repository.SaveArtifacts(artifacts))

	artifacts.Model.Layers[1].Weights = artifacts.Model.Layers[1].Weights[:3]
	model, err := json.Marshal(artifacts.Model)
	req.NoError(err)
	err = db.Update(func(txn *badger.Txn) error {
		return txn.Set(artifactKey(artifacts.RunID, "model"), model)
	})
	req.NoError(err)

	_, err = repository.LoadArtifacts()
	req.ErrorIs(err, errors.ErrArtifactMismatch)
	req.ErrorIs(err, errors.ErrMalformedModel)
}
