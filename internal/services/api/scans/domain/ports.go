package domain

import (
	"context"

	adom "credscan/internal/services/analysis/domain"
)

// ServicePort is consumed by handlers and other modules
type ServicePort interface {
	Analyze(ctx context.Context, in AnalyzeRequest) (adom.ScanResult, error)
	History(ctx context.Context, in HistoryRequest) (adom.HistoryPage, error)
	Stats(ctx context.Context, in StatsRequest) (adom.Stats, error)
	Feedback(ctx context.Context, in FeedbackRequest) (FeedbackResponse, error)
}
