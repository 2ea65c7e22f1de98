package summary

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ash3dwards/cvebump/model"
)

func TestActionRequiredFiltersSeverityAndClassification(t *testing.T) {
	findings := []model.Finding{
		{CveID: "CVE-1", Severity: "CRITICAL", Classification: "SAFE_PATCH", FixVersion: "1.0.1"},
		{CveID: "CVE-2", Severity: "MEDIUM", Classification: "SAFE_PATCH", FixVersion: "2.0.1"},
		{CveID: "CVE-3", Severity: "HIGH", Classification: "NO_FIX"},
		{CveID: "CVE-4", Severity: "HIGH", Classification: "MINOR_BUMP", FixVersion: "3.1.0"},
	}

	items := ActionRequired(findings)

	require.Len(t, items, 2)
	assert.Equal(t, "CVE-1", items[0].ID)
	assert.Equal(t, "CVE-4", items[1].ID)
}

func TestActionRequiredExcludesMajorBumpSafe(t *testing.T) {
	// MAJOR_BUMP_SAFE counts toward fixable statistics but is not eligible
	// for the auto-action queue.
	findings := []model.Finding{
		{CveID: "CVE-1", Severity: "CRITICAL", Classification: "MAJOR_BUMP_SAFE", FixVersion: "2.0.0"},
	}

	assert.True(t, findings[0].IsFixable())
	assert.Empty(t, ActionRequired(findings))
}

func TestActionRequiredCriticalBeforeHighStable(t *testing.T) {
	findings := []model.Finding{
		{CveID: "CVE-1", Severity: "HIGH", Classification: "SAFE_PATCH"},
		{CveID: "CVE-2", Severity: "CRITICAL", Classification: "SAFE_PATCH"},
		{CveID: "CVE-3", Severity: "HIGH", Classification: "MINOR_BUMP"},
		{CveID: "CVE-4", Severity: "CRITICAL", Classification: "MINOR_BUMP"},
	}

	items := ActionRequired(findings)

	require.Len(t, items, 4)
	// Criticals first, each band in input order.
	assert.Equal(t, "CVE-2", items[0].ID)
	assert.Equal(t, "CVE-4", items[1].ID)
	assert.Equal(t, "CVE-1", items[2].ID)
	assert.Equal(t, "CVE-3", items[3].ID)
}

func TestActionRequiredTruncatesToTen(t *testing.T) {
	var findings []model.Finding
	for i := 0; i < 15; i++ {
		findings = append(findings, model.Finding{
			CveID:          fmt.Sprintf("CVE-%d", i),
			Severity:       "HIGH",
			Classification: "SAFE_PATCH",
		})
	}

	items := ActionRequired(findings)

	require.Len(t, items, 10)
	assert.Equal(t, "CVE-0", items[0].ID)
	assert.Equal(t, "CVE-9", items[9].ID)
}

func TestActionRequiredProjectsFindingFields(t *testing.T) {
	findings := []model.Finding{
		{CveID: "CVE-1", PackageURL: "pkg:npm/lodash@4.17.20", Severity: "critical", Classification: "SAFE_PATCH", FixVersion: "4.17.21"},
	}

	items := ActionRequired(findings)

	require.Len(t, items, 1)
	assert.Equal(t, model.ActionItem{
		ID:             "CVE-1",
		Package:        "pkg:npm/lodash@4.17.20",
		Severity:       "CRITICAL",
		Classification: "SAFE_PATCH",
		FixVersion:     "4.17.21",
	}, items[0])
}
