//go:generate go run go.uber.org/mock/mockgen -source=artifact.go -destination=../mocks/mock_artifact_repository.go -package=mocks
package repositories

import (
	"chatty/ai"
	"chatty/domain"
	"chatty/errors"
	"cmp"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"
	jsoniter "github.com/json-iterator/go"
	"github.com/samber/lo"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const (
	artifactPrefix     = "artifact:"
	currentArtifactKey = "artifact:current"
)

type IArtifactRepository interface {
	SaveArtifacts(artifacts Artifacts) error
	LoadArtifacts() (Artifacts, error)
	ListRuns() ([]RunSummary, error)
}

// Artifacts is everything produced by one training run.
// Vocabulary and Labels fix the input and output widths of Model.
type Artifacts struct {
	RunID      uuid.UUID
	TrainedAt  time.Time
	Vocabulary domain.Vocabulary
	Labels     domain.LabelSet
	Model      *ai.Network
}

// RunSummary is the meta record of a training run.
type RunSummary struct {
	RunID      uuid.UUID `json:"run_id"`
	TrainedAt  time.Time `json:"-"`
	At         int64     `json:"at"`
	InputSize  int       `json:"input_size"`
	OutputSize int       `json:"output_size"`
	Current    bool      `json:"-"`
}

type ArtifactRepository struct {
	db  *badger.DB
	log *slog.Logger
}

func NewArtifactRepository(db *badger.DB, log *slog.Logger) ArtifactRepository {
	return ArtifactRepository{db: db, log: log}
}

func artifactKey(run uuid.UUID, part string) []byte {
	return []byte(fmt.Sprintf("%s%s:%s", artifactPrefix, run, part))
}

// SaveArtifacts writes the three artifacts and the meta record of a run,
// then moves the current pointer, all in one transaction. A reader never
// sees a vocabulary from one run next to a model from another.
func (a ArtifactRepository) SaveArtifacts(artifacts Artifacts) error {
	if err := checkWidths(artifacts); err != nil {
		return err
	}
	meta := RunSummary{
		RunID:      artifacts.RunID,
		At:         artifacts.TrainedAt.UnixNano(),
		InputSize:  artifacts.Model.InputSize(),
		OutputSize: artifacts.Model.OutputSize(),
	}

	parts := map[string]any{
		"vocabulary": artifacts.Vocabulary,
		"labels":     artifacts.Labels,
		"model":      artifacts.Model,
		"meta":       meta,
	}
	encoded := make(map[string][]byte, len(parts))
	for part, value := range parts {
		bytes, err := json.Marshal(value)
		if err != nil {
			return fmt.Errorf("encoding %s: %w", part, err)
		}
		encoded[part] = bytes
	}

	err := a.db.Update(func(txn *badger.Txn) error {
		for part, bytes := range encoded {
			if err := txn.Set(artifactKey(artifacts.RunID, part), bytes); err != nil {
				return err
			}
		}
		return txn.Set([]byte(currentArtifactKey), []byte(artifacts.RunID.String()))
	})
	if err != nil {
		return err
	}
	a.log.Debug("Artifacts stored", "run", artifacts.RunID,
		"vocabulary", len(artifacts.Vocabulary), "labels", len(artifacts.Labels))
	return nil
}

// LoadArtifacts returns the run the current pointer designates.
func (a ArtifactRepository) LoadArtifacts() (Artifacts, error) {
	var artifacts Artifacts
	var meta RunSummary
	err := a.db.View(func(txn *badger.Txn) error {
		current, err := readValue(txn, []byte(currentArtifactKey))
		if err != nil {
			return err
		}
		run, err := uuid.ParseBytes(current)
		if err != nil {
			return fmt.Errorf("%w: current run %q", errors.ErrArtifactMismatch, current)
		}
		artifacts.RunID = run

		artifacts.Model = &ai.Network{}
		targets := []struct {
			part string
			out  any
		}{
			{"vocabulary", &artifacts.Vocabulary},
			{"labels", &artifacts.Labels},
			{"model", artifacts.Model},
			{"meta", &meta},
		}
		for _, target := range targets {
			bytes, err := readValue(txn, artifactKey(run, target.part))
			if err != nil {
				return fmt.Errorf("run %s %s: %w", run, target.part, err)
			}
			if err := json.Unmarshal(bytes, target.out); err != nil {
				return fmt.Errorf("decoding %s: %w", target.part, err)
			}
		}
		return nil
	})
	if err != nil {
		return Artifacts{}, err
	}

	artifacts.TrainedAt = time.Unix(0, meta.At).UTC()
	if meta.RunID != artifacts.RunID ||
		meta.InputSize != len(artifacts.Vocabulary) ||
		meta.OutputSize != len(artifacts.Labels) {
		return Artifacts{}, fmt.Errorf("%w: meta of run %s", errors.ErrArtifactMismatch, artifacts.RunID)
	}
	if err := checkWidths(artifacts); err != nil {
		return Artifacts{}, err
	}
	return artifacts, nil
}

// ListRuns returns the meta record of every stored run, most recent first.
func (a ArtifactRepository) ListRuns() ([]RunSummary, error) {
	var runs []RunSummary
	var current string
	err := a.db.View(func(txn *badger.Txn) error {
		if value, err := readValue(txn, []byte(currentArtifactKey)); err == nil {
			current = string(value)
		}
		prefix := []byte(artifactPrefix)
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			item := it.Item()
			if !strings.HasSuffix(string(item.Key()), ":meta") {
				continue
			}
			var run RunSummary
			err := item.Value(func(value []byte) error {
				return json.Unmarshal(value, &run)
			})
			if err != nil {
				return err
			}
			runs = append(runs, run)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	runs = lo.Map(runs, func(run RunSummary, _ int) RunSummary {
		run.TrainedAt = time.Unix(0, run.At).UTC()
		run.Current = run.RunID.String() == current
		return run
	})
	slices.SortStableFunc(runs, func(a, b RunSummary) int {
		return cmp.Compare(b.At, a.At)
	})
	return runs, nil
}

func checkWidths(artifacts Artifacts) error {
	if artifacts.Model == nil {
		return fmt.Errorf("%w: empty model", errors.ErrArtifactMismatch)
	}
	if err := artifacts.Model.Validate(); err != nil {
		return fmt.Errorf("%w: %w", errors.ErrArtifactMismatch, err)
	}
	if artifacts.Model.InputSize() != len(artifacts.Vocabulary) {
		return fmt.Errorf("%w: model expects %d features, vocabulary has %d",
			errors.ErrArtifactMismatch, artifacts.Model.InputSize(), len(artifacts.Vocabulary))
	}
	if artifacts.Model.OutputSize() != len(artifacts.Labels) {
		return fmt.Errorf("%w: model has %d outputs, label set has %d",
			errors.ErrArtifactMismatch, artifacts.Model.OutputSize(), len(artifacts.Labels))
	}
	return nil
}

func readValue(txn *badger.Txn, key []byte) ([]byte, error) {
	item, err := txn.Get(key)
	if errors.Is(err, badger.ErrKeyNotFound) {
		return nil, errors.ErrArtifactsNotFound
	}
	if err != nil {
		return nil, err
	}
	return item.ValueCopy(nil)
}
