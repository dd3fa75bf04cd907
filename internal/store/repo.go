package store

import (
	"context"
	"time"
)

// QueryOpts configures event queries with filtering and pagination.
type QueryOpts struct {
	Limit     int   // max results (0 = unlimited)
	After     int64 // sequence > After
	StudentID int   // 0 = all students
}

// PredictionEventData captures one call to the external risk classifier.
type PredictionEventData struct {
	Provider       string
	Model          string
	PredictedClass string
	Confidence     float64
	InputTokens    int
	OutputTokens   int
	LatencyMs      int64
	Success        bool
	ErrorMessage   string
}

// AssessmentEventData captures one completed risk assessment.
type AssessmentEventData struct {
	StudentID      int
	FinalScore     int
	FinalLevel     string
	RuleScore      int
	TriggeredCount int
	MLUsed         bool
	CollapseScore  int
	CollapseLevel  string
}

// IngestEventData captures one behavioral-data ingestion and its risk delta.
type IngestEventData struct {
	EventID    string
	StudentID  int
	Kind       string // "attendance" or "assignment"
	Detail     string
	RiskBefore int
	RiskAfter  int
}

// IngestEventRecord is a stored ingestion event as read back from the log.
type IngestEventRecord struct {
	Sequence  int64
	Timestamp time.Time
	IngestEventData
}

// EventRepo provides append and query access to the event log. All
// appends are advisory: scoring never fails because logging failed.
type EventRepo interface {
	// AppendPrediction records a classifier call, successful or not.
	AppendPrediction(ctx context.Context, data PredictionEventData) error

	// AppendAssessment records a completed assessment.
	AppendAssessment(ctx context.Context, data AssessmentEventData) error

	// AppendIngest records a data ingestion and its before/after risk.
	AppendIngest(ctx context.Context, data IngestEventData) error

	// RecentIngests returns ingestion events, newest first.
	RecentIngests(ctx context.Context, opts QueryOpts) ([]IngestEventRecord, error)

	// PredictionStats returns total and failed prediction call counts.
	PredictionStats(ctx context.Context) (total, failed int, err error)
}
