package services

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWebhookDeliverPostsJSONPayload(t *testing.T) {
	var gotBody map[string]string
	var gotContentType string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotContentType = r.Header.Get("Content-Type")
		body, _ := io.ReadAll(r.Body)
		_ = json.Unmarshal(body, &gotBody)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	client := NewWebhookClient(srv.URL, 5*time.Second)
	err := client.Deliver(context.Background(), "# Vulnerability Report")

	require.NoError(t, err)
	assert.Equal(t, "application/json", gotContentType)
	assert.Equal(t, "# Vulnerability Report", gotBody["text"])
}

func TestWebhookDeliverRetriesServerErrors(t *testing.T) {
	var calls int32

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		if atomic.AddInt32(&calls, 1) < 3 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	client := NewWebhookClient(srv.URL, 5*time.Second)
	err := client.Deliver(context.Background(), "report")

	require.NoError(t, err)
	assert.Equal(t, int32(3), atomic.LoadInt32(&calls))
}

func TestWebhookDeliverClientErrorIsPermanent(t *testing.T) {
	var calls int32

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusForbidden)
	}))
	defer srv.Close()

	client := NewWebhookClient(srv.URL, 5*time.Second)
	err := client.Deliver(context.Background(), "report")

	require.Error(t, err)
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls), "4xx must not be retried")
}

func TestWebhookDeliverUnconfiguredURL(t *testing.T) {
	client := NewWebhookClient("", time.Second)

	assert.Error(t, client.Deliver(context.Background(), "report"))
}

func TestUploaderPutsMarkdownWithAuth(t *testing.T) {
	var gotPath, gotAuth, gotContentType, gotBody string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		gotContentType = r.Header.Get("Content-Type")
		body, _ := io.ReadAll(r.Body)
		gotBody = string(body)
		assert.Equal(t, http.MethodPut, r.Method)
		w.WriteHeader(http.StatusCreated)
	}))
	defer srv.Close()

	uploader := NewReportUploader(srv.URL, "store-token")
	err := uploader.Upload(context.Background(), "report-abc", "# md")

	require.NoError(t, err)
	assert.Equal(t, "/reports/report-abc.md", gotPath)
	assert.Equal(t, "Bearer store-token", gotAuth)
	assert.Equal(t, "text/markdown", gotContentType)
	assert.Equal(t, "# md", gotBody)
}

func TestUploaderClientErrorIsPermanent(t *testing.T) {
	var calls int32

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	uploader := NewReportUploader(srv.URL, "bad-token")
	err := uploader.Upload(context.Background(), "report-abc", "# md")

	require.Error(t, err)
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
}

func TestUploaderUnconfiguredURL(t *testing.T) {
	uploader := NewReportUploader("", "token")

	assert.Error(t, uploader.Upload(context.Background(), "k", "md"))
}
