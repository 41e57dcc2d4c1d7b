package ai

import (
	"chatty/domain"
	"chatty/nlp"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestVectorizer_Features(t *testing.T) {
	req := require.New(t)
	vocabulary := domain.Vocabulary{"hello", "how", "run", "weather"}
	vectorizer := NewVectorizer(vocabulary, nlp.NewNormalizer())

	tests := []struct {
		name     string
		input    string
		expected domain.FeatureVector
	}{
		{
			name:     "Membership of known stems",
			input:    "Hello, how is the weather?",
			expected: domain.FeatureVector{1, 1, 0, 1},
		},
		{
			name:     "Repetitions do not count twice",
			input:    "hello hello HELLO",
			expected: domain.FeatureVector{1, 0, 0, 0},
		},
		{
			name:     "Same normalization as the vocabulary",
			input:    "Running",
			expected: domain.FeatureVector{0, 0, 1, 0},
		},
		{
			name:     "Unknown words are dropped",
			input:    "quantum chromodynamics",
			expected: domain.FeatureVector{0, 0, 0, 0},
		},
		{
			name:     "Invalid byte does not hide the following words",
			input:    "hello \xff weather",
			expected: domain.FeatureVector{1, 0, 0, 1},
		},
		{
			name:     "Empty string",
			input:    "",
			expected: domain.FeatureVector{0, 0, 0, 0},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			features := vectorizer.Features(tt.input)
			req.Len(features, vectorizer.Size())
			req.Equal(tt.expected, features, "input=%q", tt.input)
		})
	}
}
