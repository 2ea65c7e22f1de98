// Package kafka runs the consumer loop that turns report.generated events
// into webhook deliveries and report-store uploads.
package kafka

import (
	"context"
	"crypto/tls"
	"log"
	"os"
	"time"

	"github.com/segmentio/kafka-go"
	"github.com/segmentio/kafka-go/sasl/plain"

	"github.com/ash3dwards/cvebump/config"
	reportevents "github.com/ash3dwards/cvebump/events/modules/reports"
	"github.com/ash3dwards/cvebump/internal/services"
)

// RunEventProcessor starts the report event consumer. Delivery targets come
// from the service configuration; SASL credentials, when present in the
// environment, enable the TLS dialer required by managed Kafka.
func RunEventProcessor(ctx context.Context, cfg *config.Config) error {
	username := os.Getenv("KAFKA_API_KEY")
	password := os.Getenv("KAFKA_API_SECRET")

	var dialer *kafka.Dialer

	if username != "" && password != "" {
		mechanism := plain.Mechanism{
			Username: username,
			Password: password,
		}

		dialer = &kafka.Dialer{
			Timeout:       10 * time.Second,
			DualStack:     true,
			SASLMechanism: mechanism,
			TLS:           &tls.Config{},
		}
	} else {
		// Default dialer for local development (no SASL/TLS)
		dialer = &kafka.Dialer{
			Timeout:   10 * time.Second,
			DualStack: true,
		}
	}

	var conn *kafka.Conn
	var err error

	// Retry logic: 3 tries
	for i := 1; i <= 3; i++ {
		log.Printf("Kafka connection attempt %d/3...", i)
		conn, err = dialer.DialContext(ctx, "tcp", cfg.Kafka.Brokers[0])
		if err == nil {
			conn.Close()
			break
		}
		if i < 3 {
			time.Sleep(2 * time.Second)
		}
	}

	if err != nil {
		return err
	}

	readerConfig := kafka.ReaderConfig{
		Brokers:  cfg.Kafka.Brokers,
		GroupID:  "cvebump-delivery-worker",
		Topic:    cfg.Kafka.Topic,
		MaxBytes: 10e6,
		Dialer:   dialer,
	}

	reader := kafka.NewReader(readerConfig)

	go func() {
		defer reader.Close()

		deliverer := services.NewWebhookClient(cfg.Webhook.URL, cfg.WebhookTimeout())
		var uploader reportevents.Uploader
		if cfg.Upload.URL != "" {
			uploader = services.NewReportUploader(cfg.Upload.URL, cfg.Upload.Token)
		}

		log.Println("Kafka Event Processor started. Listening for report events...")

		for {
			select {
			case <-ctx.Done():
				return
			default:
				msg, err := reader.ReadMessage(ctx)
				if err != nil {
					if ctx.Err() != nil {
						return
					}
					continue
				}
				if err := reportevents.HandleReportGenerated(ctx, msg.Value, deliverer, uploader); err != nil {
					log.Printf("WARNING: report event handling failed: %v", err)
				}
			}
		}
	}()

	return nil
}
