package nlp

import (
	"chatty/domain"
	"chatty/errors"
	"slices"

	"github.com/samber/lo"
)

// BuildVocabulary derives the vocabulary and the label set from a catalog.
// Stems and tags are first collected as-is, then deduplicated and sorted in a
// single pass, so the result does not depend on the catalog order.
func BuildVocabulary(catalog domain.Catalog, normalizer INormalizer) (domain.Vocabulary, domain.LabelSet, error) {
	examples := catalog.Examples()

	stems := lo.FlatMap(examples, func(example domain.TrainingExample, _ int) []string {
		return normalizer.Normalize(example.Pattern)
	})
	stems = lo.Without(stems, IgnoredTokens...)
	tags := lo.Map(catalog.Intents, func(intent domain.Intent, _ int) string {
		return intent.Tag
	})

	vocabulary := lo.Uniq(stems)
	slices.Sort(vocabulary)
	labels := lo.Uniq(tags)
	slices.Sort(labels)

	if len(vocabulary) == 0 {
		return nil, nil, errors.ErrEmptyVocabulary
	}
	return vocabulary, labels, nil
}
