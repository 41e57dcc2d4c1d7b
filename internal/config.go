// Package internal holds the configuration shared by the binaries.
package internal

import (
	"chatty/ai"
	"fmt"
	"os"
	"time"

	"github.com/Netflix/go-env"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

// Config is read from the environment, optionally seeded by a .env file.
// CENSORED_WORDS is pipe separated ("storm|tornado").
type Config struct {
	LogLevel       string `env:"LOG_LEVEL,default=INFO" validate:"required"`
	BadgerFilepath string `env:"BADGER_FILEPATH,default=./data/badger" validate:"required"`
	CatalogPath    string `env:"CATALOG_PATH,default=./data/intents.json" validate:"required"`

	Epochs       int     `env:"EPOCHS,default=200" validate:"gte=1"`
	BatchSize    int     `env:"BATCH_SIZE,default=5" validate:"gte=1"`
	LearningRate float64 `env:"LEARNING_RATE,default=0.01" validate:"gt=0"`
	Momentum     float64 `env:"MOMENTUM,default=0.9" validate:"gte=0,lt=1"`
	Decay        float64 `env:"DECAY,default=1e-6" validate:"gte=0"`
	DropoutRate  float64 `env:"DROPOUT_RATE,default=0.5" validate:"gte=0,lt=1"`
	Seed         uint64  `env:"SEED,default=42"`

	WeatherAPIURL string        `env:"WEATHER_API_URL,default=http://api.openweathermap.org/data/2.5/weather" validate:"url"`
	NewsAPIURL    string        `env:"NEWS_API_URL,default=https://newsapi.org/v2/top-headlines" validate:"url"`
	DefaultCity   string        `env:"DEFAULT_CITY,default=Berlin" validate:"required"`
	HTTPTimeout   time.Duration `env:"HTTP_TIMEOUT,default=30s" validate:"gt=0"`

	CensoredWords        []string `env:"CENSORED_WORDS"`
	CharacterReplacement string   `env:"CHARACTER_REPLACEMENT,default=*"`
	TranscriptLimit      int      `env:"TRANSCRIPT_LIMIT,default=20" validate:"gte=1"`
}

// LoadConfig reads .env when present, then the environment.
func LoadConfig() (Config, error) {
	_ = godotenv.Load()
	es, err := env.EnvironToEnvSet(os.Environ())
	if err != nil {
		return Config{}, err
	}
	return ParseConfig(es)
}

// ParseConfig decodes and validates a configuration from an env set.
func ParseConfig(es env.EnvSet) (Config, error) {
	var config Config
	if err := env.Unmarshal(es, &config); err != nil {
		return Config{}, fmt.Errorf("config error: %w", err)
	}
	if err := validator.New().Struct(config); err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}
	if _, err := CharacterRune(config.CharacterReplacement); err != nil {
		return Config{}, err
	}
	return config, nil
}

// TrainingConfig maps the hyper-parameters onto the trainer's configuration.
func (c Config) TrainingConfig() ai.TrainingConfig {
	config := ai.DefaultTrainingConfig()
	config.Epochs = c.Epochs
	config.BatchSize = c.BatchSize
	config.LearningRate = c.LearningRate
	config.Momentum = c.Momentum
	config.Decay = c.Decay
	config.DropoutRate = c.DropoutRate
	config.Seed = c.Seed
	return config
}

func CharacterRune(str string) (rune, error) {
	r := []rune(str)
	if len(r) != 1 {
		return 0, fmt.Errorf(
			"CHARACTER_REPLACEMENT must be a single character, got %q",
			str,
		)
	}
	return r[0], nil
}
