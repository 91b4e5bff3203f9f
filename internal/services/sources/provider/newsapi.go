package provider

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strings"

	perr "credscan/internal/platform/errors"
	"credscan/internal/services/sources/domain"
)

// DefaultNewsURL is the article search endpoint
const DefaultNewsURL = "https://newsapi.org/v2/everything"

// maxArticles bounds how many articles contribute records
const maxArticles = 3

// News searches recent articles about the claim
// coverage alone cannot confirm a claim so agreement is always unknown
type News struct {
	APIKey  string
	BaseURL string
	Client  *http.Client
}

// NewNews constructs the provider, base url and client fall back to defaults
func NewNews(apiKey, baseURL string, client *http.Client) *News {
	if baseURL == "" {
		baseURL = DefaultNewsURL
	}
	if client == nil {
		client = http.DefaultClient
	}
	return &News{APIKey: apiKey, BaseURL: baseURL, Client: client}
}

// Name implements domain.Provider
func (n *News) Name() string { return "news" }

type newsResponse struct {
	Articles []struct {
		Source struct {
			Name string `json:"name"`
		} `json:"source"`
		URL string `json:"url"`
	} `json:"articles"`
}

// Lookup searches articles for the first 50 words of text and maps the first
// three to source records rated by domain
func (n *News) Lookup(ctx context.Context, text string) ([]domain.Source, error) {
	words := strings.Fields(text)
	if len(words) > 50 {
		words = words[:50]
	}

	q := url.Values{}
	q.Set("apiKey", n.APIKey)
	q.Set("q", strings.Join(words, " "))
	q.Set("language", "en")
	q.Set("sortBy", "relevancy")
	q.Set("pageSize", "5")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, n.BaseURL+"?"+q.Encode(), nil)
	if err != nil {
		return nil, err
	}
	resp, err := n.Client.Do(req)
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, perr.Unavailablef("news api status %d", resp.StatusCode)
	}

	var body newsResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, perr.Wrapf(err, perr.ErrorCodeJSON, "news api decode")
	}

	articles := body.Articles
	if len(articles) > maxArticles {
		articles = articles[:maxArticles]
	}
	out := make([]domain.Source, 0, len(articles))
	for _, a := range articles {
		name := a.Source.Name
		if name == "" {
			name = "Unknown"
		}
		out = append(out, domain.Source{
			Name:              name,
			URL:               a.URL,
			CredibilityRating: Rating(ExtractDomain(a.URL), 0.6),
			AgreesWithContent: nil,
		})
	}
	return out, nil
}
