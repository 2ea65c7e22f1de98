package services

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/cenkalti/backoff"
)

// ReportUploader pushes rendered report artifacts to an external report store.
type ReportUploader struct {
	BaseURL string
	Token   string
	Client  *http.Client
}

// NewReportUploader creates an uploader for the given store.
func NewReportUploader(baseURL, token string) *ReportUploader {
	return &ReportUploader{
		BaseURL: baseURL,
		Token:   token,
		Client:  &http.Client{Timeout: 30 * time.Second},
	}
}

// Upload PUTs the markdown artifact under the report key, retrying transient
// failures with exponential backoff.
func (u *ReportUploader) Upload(ctx context.Context, key, markdown string) error {
	if u.BaseURL == "" {
		return fmt.Errorf("upload URL not configured")
	}

	target := strings.TrimSuffix(u.BaseURL, "/") + "/reports/" + key + ".md"

	op := func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodPut, target, strings.NewReader(markdown))
		if err != nil {
			return backoff.Permanent(err)
		}
		req.Header.Set("Content-Type", "text/markdown")
		req.Header.Set("Authorization", "Bearer "+u.Token)

		resp, err := u.Client.Do(req)
		if err != nil {
			return err
		}
		defer resp.Body.Close()

		if resp.StatusCode >= 500 {
			return fmt.Errorf("report store returned %d", resp.StatusCode)
		}
		if resp.StatusCode >= 300 {
			return backoff.Permanent(fmt.Errorf("report store returned %d", resp.StatusCode))
		}
		return nil
	}

	bo := backoff.NewExponentialBackOff()
	bo.MaxElapsedTime = 2 * time.Minute

	return backoff.Retry(op, backoff.WithContext(bo, ctx))
}
