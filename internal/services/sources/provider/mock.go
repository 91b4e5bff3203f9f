package provider

import (
	"strings"

	"credscan/internal/services/sources/domain"
)

type mockBucket struct {
	keywords []string
	sources  []domain.Source
}

var mockBuckets = []mockBucket{
	{
		keywords: []string{"climate", "environment", "carbon", "emissions"},
		sources: []domain.Source{
			{Name: "Reuters", URL: "https://reuters.com/environment", CredibilityRating: 0.95, AgreesWithContent: boolPtr(true)},
			{Name: "BBC News", URL: "https://bbc.com/news/science-environment", CredibilityRating: 0.93, AgreesWithContent: boolPtr(true)},
		},
	},
	{
		keywords: []string{"tech", "technology", "ai", "software"},
		sources: []domain.Source{
			{Name: "TechCrunch", URL: "https://techcrunch.com", CredibilityRating: 0.88, AgreesWithContent: boolPtr(true)},
			{Name: "The Verge", URL: "https://theverge.com", CredibilityRating: 0.85, AgreesWithContent: boolPtr(true)},
		},
	},
	{
		keywords: []string{"health", "medical", "study", "research"},
		sources: []domain.Source{
			{Name: "Medical Journal", URL: "https://example.com/medical", CredibilityRating: 0.75, AgreesWithContent: nil},
		},
	},
}

var mockDefault = []domain.Source{
	{Name: "Reuters", URL: "https://reuters.com", CredibilityRating: 0.95, AgreesWithContent: nil},
	{Name: "AP News", URL: "https://apnews.com", CredibilityRating: 0.94, AgreesWithContent: nil},
}

// Mock returns canned sources keyed off topic words in the text
// it backs development setups without API keys and keeps responses deterministic
func Mock(text string) []domain.Source {
	lower := strings.ToLower(text)
	for _, b := range mockBuckets {
		for _, kw := range b.keywords {
			if strings.Contains(lower, kw) {
				return append([]domain.Source(nil), b.sources...)
			}
		}
	}
	return append([]domain.Source(nil), mockDefault...)
}
