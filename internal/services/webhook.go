// Package services provides internal service implementations for cvebump:
// webhook delivery, report upload, the advisory mirror, and the dependency
// freshness poller.
package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/cenkalti/backoff"
)

// WebhookClient posts rendered reports to the configured chat webhook.
type WebhookClient struct {
	URL    string
	Client *http.Client
}

// NewWebhookClient creates a webhook client with the given request timeout.
func NewWebhookClient(url string, timeout time.Duration) *WebhookClient {
	return &WebhookClient{
		URL:    url,
		Client: &http.Client{Timeout: timeout},
	}
}

// Deliver posts the report text as a JSON payload, retrying transient
// failures with exponential backoff until the context is cancelled.
func (w *WebhookClient) Deliver(ctx context.Context, text string) error {
	if w.URL == "" {
		return fmt.Errorf("webhook URL not configured")
	}

	payload, err := json.Marshal(map[string]string{"text": text})
	if err != nil {
		return err
	}

	op := func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, w.URL, bytes.NewReader(payload))
		if err != nil {
			return backoff.Permanent(err)
		}
		req.Header.Set("Content-Type", "application/json")

		resp, err := w.Client.Do(req)
		if err != nil {
			return err
		}
		defer resp.Body.Close()

		if resp.StatusCode >= 500 {
			return fmt.Errorf("webhook returned %d", resp.StatusCode)
		}
		if resp.StatusCode >= 300 {
			// Client errors will not heal on retry
			return backoff.Permanent(fmt.Errorf("webhook returned %d", resp.StatusCode))
		}
		return nil
	}

	bo := backoff.NewExponentialBackOff()
	bo.MaxElapsedTime = 2 * time.Minute

	return backoff.Retry(op, backoff.WithContext(bo, ctx))
}
