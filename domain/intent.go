// Package domain contains the core concepts of the chatbot.
// Intents, vocabularies and classification results are plain values:
// they are built once and never mutated afterwards.
package domain

const (
	// TagWeather and TagNews are answered by a live lookup instead of the static table.
	TagWeather = "weather_query"
	TagNews    = "news"
)

// Intent is one entry of the declarative catalog.
type Intent struct {
	Tag       string   `json:"tag" yaml:"tag" validate:"required"`
	Patterns  []string `json:"patterns" yaml:"patterns" validate:"required,min=1,dive,required"`
	Responses []string `json:"responses" yaml:"responses" validate:"dive,required"`
}

// IsDynamic reports whether the intent is answered by an external lookup.
func (i Intent) IsDynamic() bool {
	return IsDynamicTag(i.Tag)
}

func IsDynamicTag(tag string) bool {
	return tag == TagWeather || tag == TagNews
}

type Catalog struct {
	Intents []Intent `json:"intents" yaml:"intents" validate:"required,min=1,dive"`
}

// TrainingExample pairs a pattern with the tag it illustrates.
type TrainingExample struct {
	Pattern string
	Tag     string
}

// Examples flattens the catalog in declaration order.
func (c Catalog) Examples() []TrainingExample {
	var examples []TrainingExample
	for _, intent := range c.Intents {
		for _, pattern := range intent.Patterns {
			examples = append(examples, TrainingExample{Pattern: pattern, Tag: intent.Tag})
		}
	}
	return examples
}

// Lookup returns the first intent declared with the given tag.
func (c Catalog) Lookup(tag string) (Intent, bool) {
	for _, intent := range c.Intents {
		if intent.Tag == tag {
			return intent, true
		}
	}
	return Intent{}, false
}
