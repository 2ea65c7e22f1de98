// Package reports handles Kafka event processing for generated reports.
package reports

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
)

// Deliverer defines the interface for posting a rendered report to the
// chat webhook.
type Deliverer interface {
	Deliver(ctx context.Context, text string) error
}

// Uploader defines the interface for pushing the report artifact to the
// external report store. May be nil when no store is configured.
type Uploader interface {
	Upload(ctx context.Context, key, markdown string) error
}

// HandleReportGenerated processes report.generated events from Kafka:
// webhook delivery first, then the optional artifact upload.
func HandleReportGenerated(ctx context.Context, msg []byte, deliverer Deliverer, uploader Uploader) error {
	var event ReportGeneratedEvent
	if err := json.Unmarshal(msg, &event); err != nil {
		return fmt.Errorf("failed to unmarshal ReportGeneratedEvent: %w", err)
	}

	if event.EventType != "report.generated" {
		return fmt.Errorf("unexpected event type %q", event.EventType)
	}
	if event.ReportKey == "" || event.Markdown == "" {
		return fmt.Errorf("invalid event: missing required fields")
	}

	log.Printf("Processing report %s (%d findings)", event.ReportKey, event.Summary.Total)

	if err := deliverer.Deliver(ctx, event.Markdown); err != nil {
		return fmt.Errorf("failed to deliver report %s: %w", event.ReportKey, err)
	}

	if uploader != nil {
		if err := uploader.Upload(ctx, event.ReportKey, event.Markdown); err != nil {
			return fmt.Errorf("failed to upload report %s: %w", event.ReportKey, err)
		}
	}

	log.Printf("Successfully processed report %s", event.ReportKey)
	return nil
}
