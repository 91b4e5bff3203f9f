// Package provider implements the external lookup backends for source
// aggregation plus the deterministic mock fallback
package provider

import (
	"net/url"
	"strings"
)

// trustedSources maps news domains to fixed credibility ratings
// anything above 0.8 counts as trusted downstream
var trustedSources = map[string]float64{
	"reuters.com":        0.95,
	"apnews.com":         0.94,
	"bbc.com":            0.93,
	"npr.org":            0.91,
	"pbs.org":            0.90,
	"nytimes.com":        0.88,
	"washingtonpost.com": 0.87,
	"theguardian.com":    0.86,
	"cnn.com":            0.82,
	"abcnews.go.com":     0.81,
	"cbsnews.com":        0.80,
}

// Rating returns the trust rating for a domain or def when unknown
func Rating(domain string, def float64) float64 {
	if r, ok := trustedSources[domain]; ok {
		return r
	}
	return def
}

// ExtractDomain pulls the host out of a url and strips a leading www.
// parse failures return the input unchanged
func ExtractDomain(raw string) string {
	u, err := url.Parse(raw)
	if err != nil {
		return raw
	}
	domain := u.Host
	if domain == "" {
		domain = u.Path
	}
	return strings.TrimPrefix(domain, "www.")
}
