package services

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"go.uber.org/zap"

	"github.com/ash3dwards/cvebump/database"
	"github.com/ash3dwards/cvebump/util"
)

// FreshnessPoller periodically compares tracked packages against the registry
// mirror's latest known versions and records which ones are outdated.
type FreshnessPoller struct {
	DB       database.DBConnection
	BaseURL  string
	Interval time.Duration
	Client   *http.Client
	Logger   *zap.Logger
}

// NewFreshnessPoller creates a poller against the given registry endpoint.
func NewFreshnessPoller(db database.DBConnection, baseURL string, interval time.Duration, logger *zap.Logger) *FreshnessPoller {
	return &FreshnessPoller{
		DB:       db,
		BaseURL:  baseURL,
		Interval: interval,
		Client:   &http.Client{Timeout: 30 * time.Second},
		Logger:   logger,
	}
}

// Run polls on the configured interval until the context is cancelled.
// The first check runs immediately.
func (p *FreshnessPoller) Run(ctx context.Context) {
	p.checkOnce(ctx)

	ticker := time.NewTicker(p.Interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			p.checkOnce(ctx)
		}
	}
}

func (p *FreshnessPoller) checkOnce(ctx context.Context) {
	packages, err := database.ListPackageStates(ctx, p.DB)
	if err != nil {
		p.Logger.Sugar().Warnf("Freshness check skipped: %v", err)
		return
	}

	outdated := 0
	for _, pkg := range packages {
		latest, err := p.latestVersion(ctx, pkg.Purl)
		if err != nil {
			p.Logger.Sugar().Warnf("Failed to fetch latest version for %s: %v", pkg.Purl, err)
			continue
		}

		pkg.Latest = latest
		pkg.Outdated = util.IsOutdated(pkg.Ecosystem, pkg.Installed, latest)
		pkg.CheckedAt = time.Now().UTC()
		if pkg.Outdated {
			outdated++
		}

		if err := database.UpsertPackageState(ctx, p.DB, &pkg); err != nil {
			p.Logger.Sugar().Warnf("Failed to store freshness state for %s: %v", pkg.Purl, err)
		}
	}

	p.Logger.Sugar().Infof("Freshness check complete: %d/%d outdated, health score %d",
		outdated, len(packages), HealthScore(len(packages), outdated))
}

func (p *FreshnessPoller) latestVersion(ctx context.Context, purl string) (string, error) {
	target := fmt.Sprintf("%s/v1/packages/latest?purl=%s", p.BaseURL, url.QueryEscape(purl))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return "", err
	}

	resp, err := p.Client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("registry returned %d", resp.StatusCode)
	}

	var body struct {
		Version string `json:"version"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return "", err
	}
	return body.Version, nil
}

// HealthScore returns the percentage of tracked packages that are up to date.
// An empty package set scores 100: dividing by the raw count here would fault
// on a fresh deployment with nothing tracked yet.
func HealthScore(total, outdated int) int {
	if total == 0 {
		return 100
	}
	return (total - outdated) * 100 / total
}
