// Package domain holds the analysis pipeline types and ports
package domain

import (
	"credscan/internal/core/verdict"
	srcdom "credscan/internal/services/sources/domain"
)

// Processing tiers stamped on results
// tier 1 is an immediate registry hit, tier 2 is the full edge pipeline
const (
	TierKnownFake = 1
	TierFull      = 2
)

// ScanResult is the full credibility assessment for one piece of content
type ScanResult struct {
	ID               string              `json:"id"`
	Content          string              `json:"content"`
	ContentType      string              `json:"content_type"`
	Verdict          verdict.Verdict     `json:"verdict"`
	CredibilityScore int                 `json:"credibility_score"`
	Confidence       float64             `json:"confidence"`
	Timestamp        int64               `json:"timestamp"` // epoch millis
	SourceApp        string              `json:"source_app,omitempty"`
	Sources          []srcdom.Source     `json:"sources"`
	Explanation      verdict.Explanation `json:"explanation"`
	ProcessingTier   int                 `json:"processing_tier"`
	ProcessingTimeMs int64               `json:"processing_time_ms"`
	Cached           bool                `json:"cached"`
}

// AnalyzeInput carries one analyze request through the pipeline
type AnalyzeInput struct {
	Content     string
	ContentType string
	SourceApp   string
	UserIDHash  string
}

// HistoryInput selects a page of a user's past scans
type HistoryInput struct {
	UserIDHash string
	Page       int
	PageSize   int
}

// HistoryPage is one page of scan history, newest first
type HistoryPage struct {
	Scans    []ScanResult `json:"scans"`
	Total    int64        `json:"total"`
	Page     int          `json:"page"`
	PageSize int          `json:"page_size"`
}

// StatsInput selects the aggregation window for user statistics
type StatsInput struct {
	UserIDHash string
	Days       int
}

// SourceCount pairs a source name with how often it appeared
type SourceCount struct {
	Name  string `json:"name"`
	Count int64  `json:"count"`
}

// Stats aggregates a user's scan history over the window
// FakeCount folds LIKELY_FAKE and CONFIRMED_FAKE together
type Stats struct {
	TotalScans              int64          `json:"total_scans"`
	VerifiedCount           int64          `json:"verified_count"`
	UnclearCount            int64          `json:"unclear_count"`
	FakeCount               int64          `json:"fake_count"`
	AverageCredibilityScore float64        `json:"average_credibility_score"`
	ScansByDay              map[string]int `json:"scans_by_day"`
	TopSources              []SourceCount  `json:"top_sources"`
}

// FeedbackInput records a user's take on an existing scan
type FeedbackInput struct {
	ScanID       string
	UserIDHash   string
	FeedbackType string
	Comment      string
}
