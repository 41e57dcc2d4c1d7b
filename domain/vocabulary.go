package domain

import "slices"

// Vocabulary is the ordered, deduplicated list of stems defining the feature width.
type Vocabulary []string

// LabelSet is the ordered, deduplicated list of tags defining the classifier output.
type LabelSet []string

// FeatureVector holds one 0/1 slot per vocabulary entry, in vocabulary order.
type FeatureVector []float64

// Index returns the position of tag, or -1.
func (l LabelSet) Index(tag string) int {
	return slices.Index(l, tag)
}

// OneHot encodes tag as a label vector.
func (l LabelSet) OneHot(tag string) ([]float64, bool) {
	idx := l.Index(tag)
	if idx < 0 {
		return nil, false
	}
	row := make([]float64, len(l))
	row[idx] = 1
	return row, true
}
