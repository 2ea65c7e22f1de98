package services

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/cenkalti/backoff"
	"github.com/google/osv-scanner/pkg/models"
	"go.uber.org/zap"

	"github.com/ash3dwards/cvebump/database"
	"github.com/ash3dwards/cvebump/model"
	"github.com/ash3dwards/cvebump/util"
)

// AdvisoryMirror keeps a local copy of OSV advisories for the configured
// ecosystems, normalized with a CVSS-derived severity rating.
type AdvisoryMirror struct {
	DB         database.DBConnection
	BaseURL    string
	Ecosystems []string
	Client     *http.Client
	Logger     *zap.Logger
}

// NewAdvisoryMirror creates a mirror against the given OSV-compatible endpoint.
func NewAdvisoryMirror(db database.DBConnection, baseURL string, ecosystems []string, logger *zap.Logger) *AdvisoryMirror {
	return &AdvisoryMirror{
		DB:         db,
		BaseURL:    baseURL,
		Ecosystems: ecosystems,
		Client:     &http.Client{Timeout: 60 * time.Second},
		Logger:     logger,
	}
}

// Run mirrors on the given interval until the context is cancelled.
func (m *AdvisoryMirror) Run(ctx context.Context, interval time.Duration) {
	if err := m.Sync(ctx); err != nil {
		m.Logger.Sugar().Warnf("Advisory sync failed: %v", err)
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := m.Sync(ctx); err != nil {
				m.Logger.Sugar().Warnf("Advisory sync failed: %v", err)
			}
		}
	}
}

// Sync fetches and stores the advisory set for every configured ecosystem.
func (m *AdvisoryMirror) Sync(ctx context.Context) error {
	for _, eco := range m.Ecosystems {
		vulns, err := m.fetchEcosystem(ctx, eco)
		if err != nil {
			return fmt.Errorf("failed to mirror %s advisories: %w", eco, err)
		}

		stored := 0
		for _, v := range vulns {
			adv := normalizeAdvisory(eco, v)
			if err := database.UpsertAdvisory(ctx, m.DB, adv); err != nil {
				m.Logger.Sugar().Warnf("Failed to store advisory %s: %v", v.ID, err)
				continue
			}
			stored++
		}
		m.Logger.Sugar().Infof("Mirrored %d/%d advisories for %s", stored, len(vulns), eco)
	}
	return nil
}

func (m *AdvisoryMirror) fetchEcosystem(ctx context.Context, ecosystem string) ([]models.Vulnerability, error) {
	target := fmt.Sprintf("%s/v1/ecosystems/%s/all.json", m.BaseURL, ecosystem)

	var vulns []models.Vulnerability
	op := func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
		if err != nil {
			return backoff.Permanent(err)
		}

		resp, err := m.Client.Do(req)
		if err != nil {
			return err
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			return fmt.Errorf("advisory registry returned %d", resp.StatusCode)
		}
		return json.NewDecoder(resp.Body).Decode(&vulns)
	}

	bo := backoff.NewExponentialBackOff()
	bo.MaxElapsedTime = 5 * time.Minute

	if err := backoff.Retry(op, backoff.WithContext(bo, ctx)); err != nil {
		return nil, err
	}
	return vulns, nil
}

// normalizeAdvisory converts an OSV vulnerability into the stored advisory
// form, deriving the severity rating from the highest CVSS base score.
func normalizeAdvisory(ecosystem string, v models.Vulnerability) *model.Advisory {
	var vectors []string
	for _, sev := range v.Severity {
		if sev.Type == models.SeverityCVSSV3 || sev.Type == models.SeverityCVSSV4 {
			vectors = append(vectors, sev.Score)
		}
	}
	score, rating := util.RatingFromVectors(vectors)

	return &model.Advisory{
		ObjType:    "Advisory",
		ID:         v.ID,
		Ecosystem:  ecosystem,
		Summary:    v.Summary,
		Aliases:    v.Aliases,
		Score:      score,
		Rating:     rating,
		Published:  v.Published,
		Modified:   v.Modified,
		MirroredAt: time.Now().UTC(),
	}
}
