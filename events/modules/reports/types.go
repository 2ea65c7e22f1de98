// Package reports defines types for Kafka event processing of generated reports.
package reports

import (
	"time"

	"github.com/ash3dwards/cvebump/model"
)

// ReportGeneratedEvent represents a generated report published to Kafka.
// Consumers deliver the rendered markdown to the configured chat webhook and
// upload the artifact to the report store.
type ReportGeneratedEvent struct {
	EventType     string    `json:"event_type"`
	EventID       string    `json:"event_id"`
	EventTime     time.Time `json:"event_time"`
	SchemaVersion string    `json:"schema_version"`

	ReportKey string        `json:"report_key"`
	Summary   model.Summary `json:"summary"`
	Markdown  string        `json:"markdown"`
}
