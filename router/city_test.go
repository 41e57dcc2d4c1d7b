package router

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestExtractCity(t *testing.T) {
	req := require.New(t)

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"Trigger in", "What's the weather in Paris", "Paris"},
		{"First token only, title-cased", "temperature in new", "New"},
		{"Single word without trigger", "hello", ""},
		{"Trigger for", "weather forecast for london please", "London"},
		{"Trigger at", "how cold is it at oslo", "Oslo"},
		{"Original casing is title-cased", "weather in PARIS", "Paris"},
		{"Trailing punctuation is trimmed", "Is it raining in Tokyo?", "Tokyo"},
		{"In has priority over for", "weather for today in Rome", "Rome"},
		{"Last word fallback", "Tell me the weather Madrid", "Madrid"},
		{"Last word must be alphabetic", "weather 2024", ""},
		{"Non ASCII city", "Wetter in MÜNCHEN", "München"},
		{"Empty message", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req.Equal(tt.expected, ExtractCity(tt.input), "input=%q", tt.input)
		})
	}
}
