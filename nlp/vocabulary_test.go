package nlp

import (
	"chatty/domain"
	"chatty/errors"
	"slices"
	"testing"

	"github.com/samber/lo"
	"github.com/stretchr/testify/require"
)

func catalogFixture() domain.Catalog {
	return domain.Catalog{Intents: []domain.Intent{
		{Tag: "greeting", Patterns: []string{"Hello!", "Hi there", "hello hello"}, Responses: []string{"Hi!"}},
		{Tag: "goodbye", Patterns: []string{"Bye, see you later."}, Responses: []string{"Bye!"}},
		{Tag: "weather_query", Patterns: []string{"What is the weather in Paris?"}},
	}}
}

func TestBuildVocabulary(t *testing.T) {
	req := require.New(t)

	vocabulary, labels, err := BuildVocabulary(catalogFixture(), NewNormalizer())
	req.NoError(err)

	req.Equal(domain.LabelSet{"goodbye", "greeting", "weather_query"}, labels)
	req.True(slices.IsSorted(vocabulary))
	req.Len(vocabulary, len(lo.Uniq(vocabulary)))
	req.Contains(vocabulary, "hello")
	req.Contains(vocabulary, "weather")
	for _, ignored := range IgnoredTokens {
		req.NotContains(vocabulary, ignored)
	}
}

func TestBuildVocabulary_Is_Independent_Of_Catalog_Order(t *testing.T) {
	req := require.New(t)
	catalog := catalogFixture()

	reversed := domain.Catalog{Intents: slices.Clone(catalog.Intents)}
	slices.Reverse(reversed.Intents)
	for i := range reversed.Intents {
		patterns := slices.Clone(reversed.Intents[i].Patterns)
		slices.Reverse(patterns)
		reversed.Intents[i].Patterns = patterns
	}

	v1, l1, err := BuildVocabulary(catalog, NewNormalizer())
	req.NoError(err)
	v2, l2, err := BuildVocabulary(reversed, NewNormalizer())
	req.NoError(err)
	req.Equal(v1, v2)
	req.Equal(l1, l2)
}

func TestBuildVocabulary_Only_Punctuation(t *testing.T) {
	req := require.New(t)
	catalog := domain.Catalog{Intents: []domain.Intent{
		{Tag: "noise", Patterns: []string{"?!", ". ,"}, Responses: []string{"..."}},
	}}

	_, _, err := BuildVocabulary(catalog, NewNormalizer())
	req.ErrorIs(err, errors.ErrEmptyVocabulary)
}
