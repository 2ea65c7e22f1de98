// Package reports handles Kafka event production for generated reports.
package reports

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"

	"github.com/ash3dwards/cvebump/model"
)

// Producer handles sending report.generated events to Kafka
type Producer struct {
	Writer *kafka.Writer
}

// NewProducer initializes a new Kafka writer for report events
func NewProducer(brokers []string, topic string) *Producer {
	return &Producer{
		Writer: &kafka.Writer{
			Addr:     kafka.TCP(brokers...),
			Topic:    topic,
			Balancer: &kafka.LeastBytes{},
		},
	}
}

// PublishReportGenerated sends the event to the Kafka topic
func (p *Producer) PublishReportGenerated(ctx context.Context, rec *model.ReportRecord) error {
	event := ReportGeneratedEvent{
		EventType:     "report.generated",
		EventID:       uuid.New().String(),
		EventTime:     time.Now().UTC(),
		SchemaVersion: "v1",
		ReportKey:     rec.Key,
		Summary:       rec.Summary,
		Markdown:      rec.Markdown,
	}

	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}

	return p.Writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(rec.Key),
		Value: payload,
	})
}

// Close cleans up the Kafka writer
func (p *Producer) Close() error {
	return p.Writer.Close()
}
