package domain

import "context"

// AnalyzerPort is the analysis surface consumed by the API modules
type AnalyzerPort interface {
	Analyze(ctx context.Context, in AnalyzeInput) (ScanResult, error)
	History(ctx context.Context, in HistoryInput) (HistoryPage, error)
	Stats(ctx context.Context, in StatsInput) (Stats, error)
	Feedback(ctx context.Context, in FeedbackInput) error
}
