package domain

import (
	"time"

	"github.com/google/uuid"
)

// Exchange is one message/response turn of a chat session.
type Exchange struct {
	ID          uuid.UUID `json:"id"`
	Message     string    `json:"message"`
	Lang        string    `json:"lang"`
	Intent      string    `json:"intent"`
	Probability float64   `json:"probability"`
	Response    string    `json:"response"`
	At          time.Time `json:"at"`
}
