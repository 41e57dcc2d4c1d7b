package lookup

import (
	"github.com/kelseyhightower/envconfig"
)

// Credentials are the provider keys. They are read from the process
// environment on every call and are not validated: a missing key simply
// makes the provider reject the request.
type Credentials struct {
	WeatherAPIKey string `envconfig:"WEATHER_API_KEY"`
	NewsAPIKey    string `envconfig:"NEWS_API_KEY"`
}

// CredentialsProvider returns the keys to use for the next request.
type CredentialsProvider func() (Credentials, error)

// FromEnvironment reads the keys at call time.
func FromEnvironment() (Credentials, error) {
	var credentials Credentials
	err := envconfig.Process("", &credentials)
	return credentials, err
}
