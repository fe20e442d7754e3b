package models

import "time"

const (
	ERROR_KIND_NO_CONTENT      = "no_content"
	ERROR_KIND_ANALYSIS_FAILED = "analysis_failed"
)

// AnalysisRequest is the message consumed from the transcript request topic.
type AnalysisRequest struct {
	RequestID string `json:"request_id"`
	Text      string `json:"text"`
	TopN      int    `json:"top_n,omitempty"`
}

// AnalysisResult is published for every handled request. Exactly one of
// Report or Error is set.
type AnalysisResult struct {
	RequestID   string          `json:"request_id"`
	Report      *AnalysisReport `json:"report,omitempty"`
	Error       string          `json:"error,omitempty"`
	ErrorKind   string          `json:"error_kind,omitempty"`
	ProcessedAt time.Time       `json:"processed_at"`
}
