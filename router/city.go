package router

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// cityTriggers are scanned in priority order.
var cityTriggers = []string{"in ", "for ", "at ", "weather in", "temperature in"}

// ExtractCity guesses the city a weather question is about.
// The token following the first trigger found wins; otherwise the last word of
// a multi-word message is used when it is purely alphabetic. It returns ""
// when nothing looks like a city.
func ExtractCity(message string) string {
	lower := strings.ToLower(message)
	// Offsets found in the lower-cased text only apply to the original one
	// when lower-casing kept the byte length.
	source := message
	if len(source) != len(lower) {
		source = lower
	}

	for _, trigger := range cityTriggers {
		idx := strings.Index(lower, trigger)
		if idx < 0 {
			continue
		}
		fields := strings.Fields(source[idx+len(trigger):])
		if len(fields) == 0 {
			continue
		}
		if city := strings.TrimRight(fields[0], "?!.,"); city != "" {
			return titleCase(city)
		}
	}

	words := strings.Fields(lower)
	if len(words) > 1 {
		last := words[len(words)-1]
		if isAlpha(last) {
			return titleCase(last)
		}
	}
	return ""
}

func isAlpha(word string) bool {
	if word == "" {
		return false
	}
	for _, r := range word {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}

// titleCase upper-cases the first letter of every word and lower-cases the rest.
// Casers are stateful, hence one per call.
func titleCase(word string) string {
	return cases.Title(language.Und).String(word)
}
