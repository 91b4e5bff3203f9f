// Package domain holds DTOs for scans http and service contracts
package domain

// AnalyzeRequest asks for a credibility assessment of one piece of content
type AnalyzeRequest struct {
	Content     string `json:"content" validate:"required,min=1,max=10000" example:"BREAKING: scientists reveal shocking truth"`
	ContentType string `json:"content_type,omitempty" validate:"omitempty,oneof=text image video mixed" example:"text"`
	SourceApp   string `json:"source_app,omitempty" validate:"omitempty,max=100" example:"browser-extension"`
	UserIDHash  string `json:"user_id_hash,omitempty" validate:"omitempty,max=64" example:"9f86d081884c7d65"`
}

// HistoryRequest selects a page of a user's past scans
type HistoryRequest struct {
	UserIDHash string `json:"user_id_hash" validate:"required,max=64" example:"9f86d081884c7d65"`
	Page       int    `json:"page,omitempty" validate:"omitempty,min=1" example:"1"`
	PageSize   int    `json:"page_size,omitempty" validate:"omitempty,min=1,max=100" example:"20"`
}

// StatsRequest selects the aggregation window for user statistics
type StatsRequest struct {
	UserIDHash string `json:"user_id_hash" validate:"required,max=64" example:"9f86d081884c7d65"`
	Days       int    `json:"days,omitempty" validate:"omitempty,min=1,max=365" example:"30"`
}

// FeedbackRequest records a user's take on an existing scan
type FeedbackRequest struct {
	ScanID       string `json:"scan_id" validate:"required,uuid4" example:"b3f1c9d2-4a5e-4f6b-8c7d-9e0f1a2b3c4d"`
	UserIDHash   string `json:"user_id_hash,omitempty" validate:"omitempty,max=64" example:"9f86d081884c7d65"`
	FeedbackType string `json:"feedback_type" validate:"required,oneof=agree disagree report_error" example:"agree"`
	Comment      string `json:"comment,omitempty" validate:"omitempty,max=2000" example:"matches what I found elsewhere"`
}

// FeedbackResponse acknowledges stored feedback
type FeedbackResponse struct {
	Status  string `json:"status" example:"success"`
	Message string `json:"message" example:"Feedback submitted successfully"`
}
