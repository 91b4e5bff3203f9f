// Package domain holds types and ports for source aggregation
package domain

import "credscan/internal/core/verdict"

// Source is one external reference found for a piece of content
type Source struct {
	Name              string  `json:"name"`
	URL               string  `json:"url"`
	CredibilityRating float64 `json:"credibility_rating"`
	AgreesWithContent *bool   `json:"agrees_with_content"`
}

// Result is the aggregate outcome of a fact check pass
// Sources preserve provider response order, providers run in configuration order
type Result struct {
	Sources            []Source `json:"sources"`
	SourceCount        int      `json:"source_count"`
	TrustedSourceCount int      `json:"trusted_source_count"`
}

// trustedThreshold marks a source as trusted when its rating exceeds it
const trustedThreshold = 0.8

// Collect builds a Result from an ordered source list
func Collect(sources []Source) Result {
	trusted := 0
	for _, s := range sources {
		if s.CredibilityRating > trustedThreshold {
			trusted++
		}
	}
	return Result{
		Sources:            sources,
		SourceCount:        len(sources),
		TrustedSourceCount: trusted,
	}
}

// Signals folds the result into the counters the verdict resolver consumes
func (r Result) Signals() verdict.Signals {
	sig := verdict.Signals{
		Total:   r.SourceCount,
		Trusted: r.TrustedSourceCount,
	}
	for _, s := range r.Sources {
		if s.AgreesWithContent == nil {
			continue
		}
		if *s.AgreesWithContent {
			sig.Agreeing++
		} else {
			sig.Disagreeing++
		}
	}
	return sig
}
