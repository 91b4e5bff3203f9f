// Package service adapts API requests onto the analysis pipeline
package service

import (
	"context"

	adom "credscan/internal/services/analysis/domain"
	"credscan/internal/services/api/scans/domain"
)

// Service defines the scans service contract
type Service interface {
	domain.ServicePort
}

// Svc implements the scans service over the injected analyzer port
type Svc struct {
	analyzer adom.AnalyzerPort
}

// New constructs a scans service
func New(analyzer adom.AnalyzerPort) *Svc {
	if analyzer == nil {
		panic("scans.Service requires a non nil AnalyzerPort")
	}
	return &Svc{analyzer: analyzer}
}

// Analyze runs the credibility pipeline for one request
func (s *Svc) Analyze(ctx context.Context, in domain.AnalyzeRequest) (adom.ScanResult, error) {
	return s.analyzer.Analyze(ctx, adom.AnalyzeInput{
		Content:     in.Content,
		ContentType: in.ContentType,
		SourceApp:   in.SourceApp,
		UserIDHash:  in.UserIDHash,
	})
}

// History returns a page of the user's scans, newest first
func (s *Svc) History(ctx context.Context, in domain.HistoryRequest) (adom.HistoryPage, error) {
	return s.analyzer.History(ctx, adom.HistoryInput{
		UserIDHash: in.UserIDHash,
		Page:       in.Page,
		PageSize:   in.PageSize,
	})
}

// Stats aggregates the user's scans over the requested window
func (s *Svc) Stats(ctx context.Context, in domain.StatsRequest) (adom.Stats, error) {
	return s.analyzer.Stats(ctx, adom.StatsInput{
		UserIDHash: in.UserIDHash,
		Days:       in.Days,
	})
}

// Feedback stores a user's take on an existing scan
func (s *Svc) Feedback(ctx context.Context, in domain.FeedbackRequest) (domain.FeedbackResponse, error) {
	err := s.analyzer.Feedback(ctx, adom.FeedbackInput{
		ScanID:       in.ScanID,
		UserIDHash:   in.UserIDHash,
		FeedbackType: in.FeedbackType,
		Comment:      in.Comment,
	})
	if err != nil {
		return domain.FeedbackResponse{}, err
	}
	return domain.FeedbackResponse{
		Status:  "success",
		Message: "Feedback submitted successfully",
	}, nil
}
