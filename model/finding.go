// Package model defines the data types shared across the cvebump service.
package model

import "strings"

// Canonical severity buckets. Severity is case-insensitive on input; any
// other value observed stays in its own bucket and is never merged into
// these four.
const (
	SeverityCritical = "CRITICAL"
	SeverityHigh     = "HIGH"
	SeverityMedium   = "MEDIUM"
	SeverityLow      = "LOW"
	SeverityUnknown  = "UNKNOWN"
)

// Classification labels recognized by the aggregation engine. The upstream
// classifier may emit arbitrary labels; only these three carry meaning here.
const (
	ClassificationSafePatch     = "SAFE_PATCH"
	ClassificationMinorBump     = "MINOR_BUMP"
	ClassificationMajorBumpSafe = "MAJOR_BUMP_SAFE"
)

// Finding is one classified vulnerability-to-package association as supplied
// by the upstream classifier. Severity and classification arrive pre-computed;
// the engine only aggregates them.
type Finding struct {
	CveID          string   `json:"cve_id"`
	PackageURL     string   `json:"package_url"`
	Severity       string   `json:"severity,omitempty"`
	Classification string   `json:"classification,omitempty"`
	FixVersion     string   `json:"fix_version,omitempty"`
	Confidence     *float64 `json:"confidence,omitempty"`
}

// NormalizedSeverity returns the severity upper-cased for aggregation.
// An absent severity maps to UNKNOWN; a present non-canonical value is
// kept verbatim as its own bucket.
func (f Finding) NormalizedSeverity() string {
	s := strings.TrimSpace(f.Severity)
	if s == "" {
		return SeverityUnknown
	}
	return strings.ToUpper(s)
}

// IsFixable reports whether the classification allows any remediation.
// Used for per-ecosystem statistics.
func (f Finding) IsFixable() bool {
	switch f.Classification {
	case ClassificationSafePatch, ClassificationMinorBump, ClassificationMajorBumpSafe:
		return true
	}
	return false
}

// IsSafelyActionable reports whether the classification is eligible for
// automated action ranking. Intentionally narrower than IsFixable:
// MAJOR_BUMP_SAFE counts as fixable but is never auto-queued.
func (f Finding) IsSafelyActionable() bool {
	switch f.Classification {
	case ClassificationSafePatch, ClassificationMinorBump:
		return true
	}
	return false
}
