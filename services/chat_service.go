//go:generate go run go.uber.org/mock/mockgen -source=chat_service.go -destination=../mocks/mock_chat_service.go -package=mocks
package services

import (
	"chatty/ai"
	"chatty/domain"
	"chatty/moderation"
	"chatty/repositories"
	"chatty/router"
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/abadojack/whatlanggo"
	"github.com/google/uuid"
)

type IChatService interface {
	HandleMessage(ctx context.Context, text string) string
}

// Bot holds everything needed to answer a message. It is built once at
// start and carries no state from one message to the next.
type Bot struct {
	log       *slog.Logger
	analysis  *ai.Analysis
	router    *router.Router
	moderator moderation.ICensor
	exchanges repositories.IExchangeRepository
}

// NewBot wires the classifier and the router. moderator and exchanges are
// optional: a nil moderator keeps the transcript verbatim, a nil repository
// disables the transcript.
func NewBot(log *slog.Logger, analysis *ai.Analysis, router *router.Router,
	moderator moderation.ICensor, exchanges repositories.IExchangeRepository) *Bot {
	return &Bot{log: log, analysis: analysis, router: router, moderator: moderator, exchanges: exchanges}
}

// HandleMessage returns the bot's answer to one user message. Blank input
// yields an empty answer. Failures degrade to a textual answer, never an error.
func (b *Bot) HandleMessage(ctx context.Context, text string) string {
	if strings.TrimSpace(text) == "" {
		return ""
	}
	lang := whatlanggo.Detect(text).Lang.Iso6391()

	var response string
	var top domain.Prediction
	classification, err := b.analysis.Classify(text)
	switch {
	case err != nil:
		b.log.Error("Classification failed", "error", err)
		response = router.Fallback
	default:
		top, _ = classification.Top()
		response = b.router.Route(ctx, classification, text)
	}
	b.log.Debug("Message handled", "lang", lang, "intent", top.Tag, "probability", top.Probability)

	b.record(b.toExchange(text, lang, top, response))
	return response
}

func (b *Bot) toExchange(text, lang string, top domain.Prediction, response string) domain.Exchange {
	message := text
	if b.moderator != nil {
		var censored []string
		message, censored = b.moderator.Censor(text)
		if len(censored) > 0 {
			b.log.Info("Message censored", "words", len(censored), "lang", lang)
		}
	}
	return domain.Exchange{
		ID:          uuid.New(),
		Message:     message,
		Lang:        lang,
		Intent:      top.Tag,
		Probability: top.Probability,
		Response:    response,
		At:          time.Now().UTC(),
	}
}

func (b *Bot) record(exchange domain.Exchange) {
	if b.exchanges == nil {
		return
	}
	if err := b.exchanges.StoreExchange(exchange); err != nil {
		b.log.Warn("Unable to record exchange", "error", err)
	}
}
