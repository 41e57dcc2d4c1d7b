package domain

// Threshold is the minimum probability for a label to be considered.
const Threshold = 0.25

// Prediction is the probability the classifier gives to one tag.
type Prediction struct {
	Tag         string
	Probability float64
}

// Classification is ranked by descending probability and only holds
// predictions above Threshold.
type Classification []Prediction

// Top returns the best ranked prediction.
func (c Classification) Top() (Prediction, bool) {
	if len(c) == 0 {
		return Prediction{}, false
	}
	return c[0], true
}
