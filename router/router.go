// Package router decides which handler answers a classified message.
package router

import (
	"chatty/domain"
	"chatty/lookup"
	"context"
	"log/slog"

	"github.com/samber/lo"
)

// Fallback is answered whenever no intent can be served.
const Fallback = "Sorry, I don't understand."

type Router struct {
	log     *slog.Logger
	catalog domain.Catalog
	weather lookup.IWeatherLookup
	news    lookup.INewsLookup
	intn    func(n int) int
}

// NewRouter wires the static catalog and the live lookups. intn draws the
// index of the canned response and must return a value in [0, n).
func NewRouter(log *slog.Logger, catalog domain.Catalog,
	weather lookup.IWeatherLookup, news lookup.INewsLookup, intn func(n int) int) *Router {
	return &Router{log: log, catalog: catalog, weather: weather, news: news, intn: intn}
}

// Route answers with the top-ranked intent only. It always returns some text.
func (r *Router) Route(ctx context.Context, classification domain.Classification, message string) string {
	top, ok := classification.Top()
	if !ok {
		r.log.Debug("No intent above threshold", "message", message)
		return Fallback
	}

	switch top.Tag {
	case domain.TagWeather:
		city := ExtractCity(message)
		r.log.Debug("Weather lookup", "city", city, "probability", top.Probability)
		return r.weather.Report(ctx, city)
	case domain.TagNews:
		r.log.Debug("News lookup", "probability", top.Probability)
		return r.news.Headlines(ctx)
	}

	intent, found := r.catalog.Lookup(top.Tag)
	if !found || len(intent.Responses) == 0 {
		r.log.Warn("Classified intent has no static response", "tag", top.Tag)
		return Fallback
	}
	return lo.SampleBy(intent.Responses, r.intn)
}
