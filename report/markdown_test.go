package report

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/ash3dwards/cvebump/model"
)

func sampleSummary() model.Summary {
	return model.Summary{
		Total: 3,
		BySeverity: []model.SeverityCount{
			{Severity: "CRITICAL", Count: 1},
			{Severity: "HIGH", Count: 1},
			{Severity: "MEDIUM", Count: 0},
			{Severity: "LOW", Count: 1},
		},
		ByClassification: []model.ClassificationCount{
			{Classification: "SAFE_PATCH", Count: 2},
			{Classification: "NO_FIX", Count: 1},
		},
		Ecosystems: []model.EcosystemSummary{
			{Ecosystem: "npm", Count: 2, Critical: 1, High: 1, Fixable: 2},
			{Ecosystem: "pypi", Count: 1},
		},
		ActionRequired: []model.ActionItem{
			{ID: "CVE-2024-0001", Package: "pkg:npm/lodash@4.17.20", Severity: "CRITICAL", Classification: "SAFE_PATCH", FixVersion: "4.17.21"},
			{ID: "CVE-2024-0002", Package: "pkg:npm/express@4.16.0", Severity: "HIGH", Classification: "MINOR_BUMP"},
		},
		Confidence: model.ConfidenceStats{
			Average: 0.6,
			Minimum: 0.3,
			Distribution: model.ConfidenceDistribution{
				High: 1, Medium: 1, Low: 1,
			},
		},
		GeneratedAt: time.Date(2026, 8, 24, 12, 0, 0, 0, time.UTC),
	}
}

func TestMarkdownSections(t *testing.T) {
	md := Markdown(sampleSummary())

	assert.True(t, strings.HasPrefix(md, "# Vulnerability Report\n"))
	assert.Contains(t, md, "**Total:** 3 | **Critical:** 1 | **High:** 1")
	assert.Contains(t, md, "- SAFE_PATCH: 2")
	assert.Contains(t, md, "- NO_FIX: 1")
	assert.Contains(t, md, "- npm: 2 findings (2 fixable)")
	assert.Contains(t, md, "- pypi: 1 findings (0 fixable)")
	assert.Contains(t, md, "- **CVE-2024-0001** pkg:npm/lodash@4.17.20 (CRITICAL, SAFE_PATCH) fix: 4.17.21")
	assert.Contains(t, md, "Confidence: avg 0.60, min 0.30 | Generated: 2026-08-24T12:00:00Z")
}

func TestMarkdownMissingFixVersionFallsBackToNA(t *testing.T) {
	md := Markdown(sampleSummary())

	assert.Contains(t, md, "- **CVE-2024-0002** pkg:npm/express@4.16.0 (HIGH, MINOR_BUMP) fix: N/A")
}

func TestMarkdownPreservesSummaryOrdering(t *testing.T) {
	md := Markdown(sampleSummary())

	npm := strings.Index(md, "- npm:")
	pypi := strings.Index(md, "- pypi:")
	assert.True(t, npm >= 0 && pypi > npm, "ecosystem lines must follow the summary's order")

	first := strings.Index(md, "CVE-2024-0001")
	second := strings.Index(md, "CVE-2024-0002")
	assert.True(t, first >= 0 && second > first, "action items must follow the summary's order")
}

func TestMarkdownEmptySummary(t *testing.T) {
	s := model.Summary{
		BySeverity: []model.SeverityCount{
			{Severity: "CRITICAL"}, {Severity: "HIGH"}, {Severity: "MEDIUM"}, {Severity: "LOW"},
		},
		GeneratedAt: time.Date(2026, 8, 24, 12, 0, 0, 0, time.UTC),
	}

	md := Markdown(s)

	assert.Contains(t, md, "**Total:** 0 | **Critical:** 0 | **High:** 0")
	assert.Contains(t, md, "_No findings._")
	assert.Contains(t, md, "_Nothing to action._")
	assert.Contains(t, md, "Confidence: avg 0.00, min 0.00")
}

func TestMarkdownIsDeterministic(t *testing.T) {
	s := sampleSummary()

	assert.Equal(t, Markdown(s), Markdown(s))
}
