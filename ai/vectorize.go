package ai

import (
	"chatty/domain"
	"chatty/nlp"
)

// Vectorizer transforms text into bag-of-words membership vectors over a fixed vocabulary.
type Vectorizer struct {
	vocabulary domain.Vocabulary
	index      map[string]int
	normalizer nlp.INormalizer
}

// NewVectorizer binds a vocabulary to the normalizer it was built with.
// Using any other normalizer silently corrupts predictions.
func NewVectorizer(vocabulary domain.Vocabulary, normalizer nlp.INormalizer) *Vectorizer {
	index := make(map[string]int, len(vocabulary))
	for i, stem := range vocabulary {
		index[stem] = i
	}
	return &Vectorizer{vocabulary: vocabulary, index: index, normalizer: normalizer}
}

func (v *Vectorizer) Size() int {
	return len(v.vocabulary)
}

// Features returns one slot per vocabulary entry: 1 when the stem occurs in
// the text, 0 otherwise. Repetitions do not count, unknown words are dropped.
func (v *Vectorizer) Features(text string) domain.FeatureVector {
	vec := make(domain.FeatureVector, len(v.vocabulary))
	for _, stem := range v.normalizer.Normalize(text) {
		if idx, ok := v.index[stem]; ok {
			vec[idx] = 1
		}
	}
	return vec
}
