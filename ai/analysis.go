//go:generate go run go.uber.org/mock/mockgen -source=analysis.go -destination=../mocks/mock_classifier.go -package=mocks
package ai

import (
	"chatty/domain"
	"chatty/errors"
	"fmt"
	"slices"
)

// IClassifier scores a feature vector, one probability per label.
type IClassifier interface {
	Predict(features domain.FeatureVector) ([]float64, error)
}

// Analysis encapsulates feature extraction, model prediction and ranking.
type Analysis struct {
	vectorizer *Vectorizer
	classifier IClassifier
	labels     domain.LabelSet
}

func NewAnalysis(vectorizer *Vectorizer, classifier IClassifier, labels domain.LabelSet) *Analysis {
	return &Analysis{vectorizer: vectorizer, classifier: classifier, labels: labels}
}

// Classify returns the plausible intents of text, best first.
func (a *Analysis) Classify(text string) (domain.Classification, error) {
	probabilities, err := a.classifier.Predict(a.vectorizer.Features(text))
	if err != nil {
		return nil, err
	}
	return Rank(probabilities, a.labels)
}

// Rank keeps the labels whose probability is strictly above domain.Threshold
// and sorts them by descending probability. Ties keep label order.
func Rank(probabilities []float64, labels domain.LabelSet) (domain.Classification, error) {
	if len(probabilities) != len(labels) {
		return nil, fmt.Errorf("%w: %d probabilities for %d labels",
			errors.ErrArtifactMismatch, len(probabilities), len(labels))
	}
	var result domain.Classification
	for i, p := range probabilities {
		if p > domain.Threshold {
			result = append(result, domain.Prediction{Tag: labels[i], Probability: p})
		}
	}
	slices.SortStableFunc(result, func(a, b domain.Prediction) int {
		switch {
		case a.Probability > b.Probability:
			return -1
		case a.Probability < b.Probability:
			return 1
		default:
			return 0
		}
	})
	return result, nil
}
