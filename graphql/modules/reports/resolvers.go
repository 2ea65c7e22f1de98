// Package reports implements the resolvers for the report dashboard.
package reports

import (
	"context"

	"github.com/ash3dwards/cvebump/database"
	"github.com/ash3dwards/cvebump/model"
)

// ResolveLatestSummary returns the summary of the most recent report.
func ResolveLatestSummary(db database.DBConnection) (interface{}, error) {
	rec, err := database.LatestReport(context.Background(), db)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, nil
	}
	return rec.Summary, nil
}

// ResolveSeverityDistribution returns the severity buckets of the most
// recent report, canonical buckets first in their fixed order.
func ResolveSeverityDistribution(db database.DBConnection) (interface{}, error) {
	rec, err := database.LatestReport(context.Background(), db)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return []model.SeverityCount{}, nil
	}
	return rec.Summary.BySeverity, nil
}

// ResolveActionRequired returns the ranked action items of the most recent
// report, capped at limit.
func ResolveActionRequired(db database.DBConnection, limit int) (interface{}, error) {
	rec, err := database.LatestReport(context.Background(), db)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return []model.ActionItem{}, nil
	}

	items := rec.Summary.ActionRequired
	if limit > 0 && len(items) > limit {
		items = items[:limit]
	}
	return items, nil
}
