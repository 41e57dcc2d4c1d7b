//go:generate go run go.uber.org/mock/mockgen -source=weather.go -destination=../mocks/mock_weather.go -package=mocks
package lookup

import (
	"chatty/errors"
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"

	jsoniter "github.com/json-iterator/go"
)

const (
	DefaultWeatherURL  = "http://api.openweathermap.org/data/2.5/weather"
	DefaultCity        = "Berlin"
	weatherUnavailable = "Sorry, I couldn't fetch the weather right now."
)

type IWeatherLookup interface {
	Report(ctx context.Context, city string) string
}

type WeatherClient struct {
	log         *slog.Logger
	client      *http.Client
	baseURL     string
	defaultCity string
	credentials CredentialsProvider
}

func NewWeatherClient(log *slog.Logger, client *http.Client, baseURL, defaultCity string, credentials CredentialsProvider) *WeatherClient {
	if defaultCity == "" {
		defaultCity = DefaultCity
	}
	return &WeatherClient{
		log:         log,
		client:      client,
		baseURL:     baseURL,
		defaultCity: defaultCity,
		credentials: credentials,
	}
}

type weatherPayload struct {
	Main struct {
		Temp jsoniter.Number `json:"temp"`
	} `json:"main"`
	Weather []struct {
		Description string `json:"description"`
	} `json:"weather"`
}

// Current holds the subset of the provider answer the bot renders.
type Current struct {
	City        string
	Temperature string
	Description string
}

// Report describes the current weather of city, or of the default city when empty.
func (w *WeatherClient) Report(ctx context.Context, city string) string {
	if city == "" {
		city = w.defaultCity
	}
	current, err := w.Fetch(ctx, city)
	switch {
	case err == nil:
		return fmt.Sprintf("The current temperature in %s is %s°C with %s.",
			current.City, current.Temperature, current.Description)
	case errors.Is(err, errors.ErrCityNotFound):
		return fmt.Sprintf("Sorry, I couldn't find weather information for '%s'. Please check the city name.", city)
	default:
		w.log.Warn("Weather lookup failed", "city", city, "error", err)
		return weatherUnavailable
	}
}

// Fetch queries the provider once, in metric units.
func (w *WeatherClient) Fetch(ctx context.Context, city string) (Current, error) {
	credentials, err := w.credentials()
	if err != nil {
		return Current{}, fmt.Errorf("reading credentials: %w", err)
	}
	query := url.Values{}
	query.Set("q", city)
	query.Set("appid", credentials.WeatherAPIKey)
	query.Set("units", "metric")

	var payload weatherPayload
	status, err := getJSON(ctx, w.client, w.baseURL, query, &payload)
	if status == http.StatusNotFound {
		return Current{}, fmt.Errorf("%w: %s", errors.ErrCityNotFound, city)
	}
	if err != nil {
		return Current{}, err
	}
	if payload.Main.Temp == "" || len(payload.Weather) == 0 {
		return Current{}, fmt.Errorf("%w: missing temperature or description", errors.ErrMalformedPayload)
	}
	return Current{
		City:        city,
		Temperature: string(payload.Main.Temp),
		Description: payload.Weather[0].Description,
	}, nil
}
