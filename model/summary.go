// Package model - Summary defines the aggregated statistics derived from a
// batch of findings. All derived values are immutable snapshots; nothing here
// carries persisted identity beyond the report record that wraps it.
package model

import "time"

// SeverityCount is one severity bucket. Kept as an ordered slice on Summary
// because the rendered report preserves first-seen bucket order.
type SeverityCount struct {
	Severity string `json:"severity"`
	Count    int    `json:"count"`
}

// ClassificationCount is one classification bucket in discovery order.
type ClassificationCount struct {
	Classification string `json:"classification"`
	Count          int    `json:"count"`
}

// EcosystemSummary holds per-ecosystem counters. Invariants: Critical <= Count,
// High <= Count, Fixable <= Count.
type EcosystemSummary struct {
	Ecosystem string `json:"ecosystem"`
	Count     int    `json:"count"`
	Critical  int    `json:"critical"`
	High      int    `json:"high"`
	Fixable   int    `json:"fixable"`
}

// ActionItem is one ranked, safely-actionable finding projected for the
// action-required section of the report.
type ActionItem struct {
	ID             string `json:"id"`
	Package        string `json:"package"`
	Severity       string `json:"severity"`
	Classification string `json:"classification"`
	FixVersion     string `json:"fix_version,omitempty"`
}

// ConfidenceDistribution buckets classifier confidence values. The buckets
// are mutually exclusive and exhaustive over findings that carry a confidence.
type ConfidenceDistribution struct {
	High   int `json:"high"`
	Medium int `json:"medium"`
	Low    int `json:"low"`
}

// ConfidenceStats describes the distribution of classifier confidence scores.
// Average and Minimum are 0 when no finding carries a confidence; callers that
// need to distinguish "no data" must check the input themselves.
type ConfidenceStats struct {
	Average      float64                `json:"average"`
	Minimum      float64                `json:"minimum"`
	Distribution ConfidenceDistribution `json:"distribution"`
}

// Summary is the engine's primary output: one immutable aggregation of a
// finding batch plus the wall-clock generation timestamp.
type Summary struct {
	Total            int                   `json:"total"`
	BySeverity       []SeverityCount       `json:"by_severity"`
	ByClassification []ClassificationCount `json:"by_classification"`
	Ecosystems       []EcosystemSummary    `json:"ecosystems"`
	ActionRequired   []ActionItem          `json:"action_required"`
	Confidence       ConfidenceStats       `json:"confidence"`
	GeneratedAt      time.Time             `json:"generated_at"`
}

// SeverityTotal returns the count for a severity bucket, 0 if absent.
func (s Summary) SeverityTotal(severity string) int {
	for _, c := range s.BySeverity {
		if c.Severity == severity {
			return c.Count
		}
	}
	return 0
}

// ReportRecord is a generated report as stored in the reports collection.
type ReportRecord struct {
	Key         string    `json:"_key,omitempty"`
	ObjType     string    `json:"objtype,omitempty"`
	Summary     Summary   `json:"summary"`
	Markdown    string    `json:"markdown"`
	GeneratedAt time.Time `json:"generated_at"`
}

// NewReportRecord creates a report record with default values.
func NewReportRecord(summary Summary, markdown string) *ReportRecord {
	return &ReportRecord{
		ObjType:     "Report",
		Summary:     summary,
		Markdown:    markdown,
		GeneratedAt: summary.GeneratedAt,
	}
}
