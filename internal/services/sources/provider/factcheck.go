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

// DefaultFactCheckURL is the claim search endpoint
const DefaultFactCheckURL = "https://factchecktools.googleapis.com/v1alpha1/claims:search"

// maxClaims bounds how many claims contribute records
const maxClaims = 3

// FactCheck queries a claim review API for published fact checks
type FactCheck struct {
	APIKey  string
	BaseURL string
	Client  *http.Client
}

// NewFactCheck constructs the provider, base url and client fall back to defaults
func NewFactCheck(apiKey, baseURL string, client *http.Client) *FactCheck {
	if baseURL == "" {
		baseURL = DefaultFactCheckURL
	}
	if client == nil {
		client = http.DefaultClient
	}
	return &FactCheck{APIKey: apiKey, BaseURL: baseURL, Client: client}
}

// Name implements domain.Provider
func (f *FactCheck) Name() string { return "factcheck" }

type fcReview struct {
	Publisher struct {
		Name string `json:"name"`
		Site string `json:"site"`
	} `json:"publisher"`
	URL           string `json:"url"`
	TextualRating string `json:"textualRating"`
}

type fcResponse struct {
	Claims []struct {
		ClaimReview []fcReview `json:"claimReview"`
	} `json:"claims"`
}

// Lookup searches claims for the first 500 chars of text and maps every
// review on the first three claims to a source record
func (f *FactCheck) Lookup(ctx context.Context, text string) ([]domain.Source, error) {
	q := url.Values{}
	q.Set("key", f.APIKey)
	q.Set("query", truncateRunes(text, 500))
	q.Set("languageCode", "en")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.BaseURL+"?"+q.Encode(), nil)
	if err != nil {
		return nil, err
	}
	resp, err := f.Client.Do(req)
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, perr.Unavailablef("factcheck api status %d", resp.StatusCode)
	}

	var body fcResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, perr.Wrapf(err, perr.ErrorCodeJSON, "factcheck api decode")
	}

	var out []domain.Source
	claims := body.Claims
	if len(claims) > maxClaims {
		claims = claims[:maxClaims]
	}
	for _, claim := range claims {
		for _, review := range claim.ClaimReview {
			name := review.Publisher.Name
			if name == "" {
				name = "Unknown"
			}
			out = append(out, domain.Source{
				Name:              name,
				URL:               review.URL,
				CredibilityRating: Rating(ExtractDomain(review.Publisher.Site), 0.7),
				AgreesWithContent: agreement(review.TextualRating),
			})
		}
	}
	return out, nil
}

var (
	agreeWords    = []string{"true", "correct", "accurate", "verified"}
	disagreeWords = []string{"false", "incorrect", "fake", "misleading"}
)

// agreement maps a free text rating phrase to a tri-state flag
// agree keywords are checked first, unknown phrases stay nil
func agreement(rating string) *bool {
	lower := strings.ToLower(rating)
	for _, w := range agreeWords {
		if strings.Contains(lower, w) {
			return boolPtr(true)
		}
	}
	for _, w := range disagreeWords {
		if strings.Contains(lower, w) {
			return boolPtr(false)
		}
	}
	return nil
}

func boolPtr(b bool) *bool { return &b }

// truncateRunes cuts s to at most n runes
func truncateRunes(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
