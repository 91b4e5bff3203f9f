// Package http provides http transport for scans
package http

import (
	stdhttp "net/http"

	"credscan/internal/modkit/httpkit"
	"credscan/internal/services/api/scans/domain"
	svc "credscan/internal/services/api/scans/service"
)

// Register mounts scans endpoints on the given router
func Register(r httpkit.Router, s svc.Service) {
	h := &handlers{svc: s}

	// run the credibility pipeline
	httpkit.PostJSON[domain.AnalyzeRequest](r, "/analyze", h.analyze)

	// paginated scan history
	httpkit.PostJSON[domain.HistoryRequest](r, "/history", h.history)

	// per user aggregates
	httpkit.PostJSON[domain.StatsRequest](r, "/stats", h.stats)

	// feedback on an existing scan
	httpkit.PostJSON[domain.FeedbackRequest](r, "/feedback", h.feedback)
}

type handlers struct{ svc svc.Service }

// swagger:route POST /scans/analyze Scans scansAnalyze
// @Summary Analyze content for credibility
// @Tags Scans
// @Accept json
// @Produce json
// @Param payload body domain.AnalyzeRequest true "Content to analyze"
// @Success 200 {object} adom.ScanResult "ok"
// @Router /scans/analyze [post]
func (h *handlers) analyze(r *stdhttp.Request, in domain.AnalyzeRequest) (any, error) {
	return h.svc.Analyze(r.Context(), in)
}

// swagger:route POST /scans/history Scans scansHistory
// @Summary Paginated scan history for a user
// @Tags Scans
// @Accept json
// @Produce json
// @Param payload body domain.HistoryRequest true "Query"
// @Success 200 {object} adom.HistoryPage "ok"
// @Router /scans/history [post]
func (h *handlers) history(r *stdhttp.Request, in domain.HistoryRequest) (any, error) {
	return h.svc.History(r.Context(), in)
}

// swagger:route POST /scans/stats Scans scansStats
// @Summary Aggregated scan statistics for a user
// @Tags Scans
// @Accept json
// @Produce json
// @Param payload body domain.StatsRequest true "Query"
// @Success 200 {object} adom.Stats "ok"
// @Router /scans/stats [post]
func (h *handlers) stats(r *stdhttp.Request, in domain.StatsRequest) (any, error) {
	return h.svc.Stats(r.Context(), in)
}

// swagger:route POST /scans/feedback Scans scansFeedback
// @Summary Submit feedback on a scan result
// @Tags Scans
// @Accept json
// @Produce json
// @Param payload body domain.FeedbackRequest true "Feedback"
// @Success 200 {object} domain.FeedbackResponse "ok"
// @Router /scans/feedback [post]
func (h *handlers) feedback(r *stdhttp.Request, in domain.FeedbackRequest) (any, error) {
	return h.svc.Feedback(r.Context(), in)
}
