// Package database - report, advisory, and package persistence helpers.
package database

import (
	"context"
	"fmt"

	"github.com/arangodb/go-driver/v2/arangodb"

	"github.com/ash3dwards/cvebump/model"
)

// SaveReport stores a generated report record and returns its key.
func SaveReport(ctx context.Context, db DBConnection, rec *model.ReportRecord) (string, error) {
	meta, err := db.Collections["reports"].CreateDocument(ctx, rec)
	if err != nil {
		return "", fmt.Errorf("failed to store report: %w", err)
	}
	return meta.Key, nil
}

// SaveFindingBatch stores the raw finding batch alongside its report key so
// reports can be drilled into later.
func SaveFindingBatch(ctx context.Context, db DBConnection, reportKey string, findings []model.Finding) error {
	for _, f := range findings {
		doc := map[string]interface{}{
			"objtype":        "Finding",
			"report_key":     reportKey,
			"cve_id":         f.CveID,
			"package_url":    f.PackageURL,
			"severity":       f.Severity,
			"classification": f.Classification,
			"fix_version":    f.FixVersion,
			"confidence":     f.Confidence,
		}
		if _, err := db.Collections["findings"].CreateDocument(ctx, doc); err != nil {
			return fmt.Errorf("failed to store finding %s: %w", f.CveID, err)
		}
	}
	return nil
}

// LatestReport returns the most recently generated report, or nil when the
// reports collection is empty.
func LatestReport(ctx context.Context, db DBConnection) (*model.ReportRecord, error) {
	query := `
		FOR r IN reports
			SORT r.generated_at DESC
			LIMIT 1
			RETURN r
	`
	cursor, err := db.Database.Query(ctx, query, nil)
	if err != nil {
		return nil, err
	}
	defer cursor.Close()

	if !cursor.HasMore() {
		return nil, nil
	}

	var rec model.ReportRecord
	if _, err := cursor.ReadDocument(ctx, &rec); err != nil {
		return nil, err
	}
	return &rec, nil
}

// GetReport returns a stored report by key, or nil when absent.
func GetReport(ctx context.Context, db DBConnection, key string) (*model.ReportRecord, error) {
	query := `
		FOR r IN reports
			FILTER r._key == @key
			LIMIT 1
			RETURN r
	`
	cursor, err := db.Database.Query(ctx, query, &arangodb.QueryOptions{
		BindVars: map[string]interface{}{
			"key": key,
		},
	})
	if err != nil {
		return nil, err
	}
	defer cursor.Close()

	if !cursor.HasMore() {
		return nil, nil
	}

	var rec model.ReportRecord
	if _, err := cursor.ReadDocument(ctx, &rec); err != nil {
		return nil, err
	}
	return &rec, nil
}

// UpsertAdvisory stores a mirrored advisory, replacing any prior document
// with the same advisory id.
func UpsertAdvisory(ctx context.Context, db DBConnection, adv *model.Advisory) error {
	query := `
		UPSERT { id: @id }
			INSERT @doc
			REPLACE @doc
		IN advisories
	`
	cursor, err := db.Database.Query(ctx, query, &arangodb.QueryOptions{
		BindVars: map[string]interface{}{
			"id":  adv.ID,
			"doc": adv,
		},
	})
	if err != nil {
		return fmt.Errorf("failed to upsert advisory %s: %w", adv.ID, err)
	}
	return cursor.Close()
}

// UpsertPackageState stores the freshness state of a tracked package,
// replacing any prior state for the same PURL.
func UpsertPackageState(ctx context.Context, db DBConnection, pkg *model.PackageState) error {
	query := `
		UPSERT { purl: @purl }
			INSERT @doc
			REPLACE @doc
		IN packages
	`
	cursor, err := db.Database.Query(ctx, query, &arangodb.QueryOptions{
		BindVars: map[string]interface{}{
			"purl": pkg.Purl,
			"doc":  pkg,
		},
	})
	if err != nil {
		return fmt.Errorf("failed to upsert package %s: %w", pkg.Purl, err)
	}
	return cursor.Close()
}

// ListPackageStates returns all tracked packages for the freshness poller.
func ListPackageStates(ctx context.Context, db DBConnection) ([]model.PackageState, error) {
	query := `
		FOR p IN packages
			RETURN p
	`
	cursor, err := db.Database.Query(ctx, query, nil)
	if err != nil {
		return nil, err
	}
	defer cursor.Close()

	var packages []model.PackageState
	for cursor.HasMore() {
		var pkg model.PackageState
		if _, err := cursor.ReadDocument(ctx, &pkg); err != nil {
			continue
		}
		packages = append(packages, pkg)
	}
	return packages, nil
}
