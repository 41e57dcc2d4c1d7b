//go:generate go run go.uber.org/mock/mockgen -source=news.go -destination=../mocks/mock_news.go -package=mocks
package lookup

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/samber/lo"
)

const (
	DefaultNewsURL  = "https://newsapi.org/v2/top-headlines"
	headlinesCount  = 3
	headlinesHeader = "Here are the top headlines:"
	noNews          = "Sorry, I couldn't find any news right now."
	newsUnavailable = "Sorry, I couldn't fetch the news at this moment."
)

type INewsLookup interface {
	Headlines(ctx context.Context) string
}

type NewsClient struct {
	log         *slog.Logger
	client      *http.Client
	baseURL     string
	credentials CredentialsProvider
}

func NewNewsClient(log *slog.Logger, client *http.Client, baseURL string, credentials CredentialsProvider) *NewsClient {
	return &NewsClient{log: log, client: client, baseURL: baseURL, credentials: credentials}
}

type article struct {
	Title string `json:"title"`
}

type newsPayload struct {
	Articles []article `json:"articles"`
}

// Headlines renders the top US headlines as a dashed list.
func (n *NewsClient) Headlines(ctx context.Context) string {
	titles, err := n.Fetch(ctx)
	if err != nil {
		n.log.Warn("News lookup failed", "error", err)
		return newsUnavailable
	}
	if len(titles) == 0 {
		return noNews
	}
	lines := lo.Map(lo.Slice(titles, 0, headlinesCount), func(title string, _ int) string {
		return "- " + title
	})
	return headlinesHeader + "\n" + strings.Join(lines, "\n")
}

// Fetch returns the titles of the articles the provider answered with.
func (n *NewsClient) Fetch(ctx context.Context) ([]string, error) {
	credentials, err := n.credentials()
	if err != nil {
		return nil, fmt.Errorf("reading credentials: %w", err)
	}
	query := url.Values{}
	query.Set("country", "us")
	query.Set("pageSize", strconv.Itoa(headlinesCount))
	query.Set("apiKey", credentials.NewsAPIKey)

	var payload newsPayload
	if _, err := getJSON(ctx, n.client, n.baseURL, query, &payload); err != nil {
		return nil, err
	}
	return lo.Map(payload.Articles, func(a article, _ int) string {
		return a.Title
	}), nil
}
