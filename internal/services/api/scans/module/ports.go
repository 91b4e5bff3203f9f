package module

import (
	"context"

	adom "credscan/internal/services/analysis/domain"
	"credscan/internal/services/api/scans/domain"
	ssvc "credscan/internal/services/api/scans/service"
)

// Ports returns the module ports (parity with other API modules)
func (m *Module) Ports() any { return m.ports }

// adaptScansPort exposes service methods as module ports for cross-module usage
type adaptScansPort struct{ svc ssvc.Service }

func (a adaptScansPort) Analyze(ctx context.Context, in domain.AnalyzeRequest) (adom.ScanResult, error) {
	return a.svc.Analyze(ctx, in)
}

func (a adaptScansPort) History(ctx context.Context, in domain.HistoryRequest) (adom.HistoryPage, error) {
	return a.svc.History(ctx, in)
}

func (a adaptScansPort) Stats(ctx context.Context, in domain.StatsRequest) (adom.Stats, error) {
	return a.svc.Stats(ctx, in)
}

func (a adaptScansPort) Feedback(ctx context.Context, in domain.FeedbackRequest) (domain.FeedbackResponse, error) {
	return a.svc.Feedback(ctx, in)
}
