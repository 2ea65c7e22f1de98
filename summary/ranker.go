package summary

import (
	"sort"

	"github.com/ash3dwards/cvebump/model"
)

// maxActionItems caps the action-required list. Truncation, not sampling.
const maxActionItems = 10

// severityRank orders action items: CRITICAL first, then HIGH. Anything else
// would rank 99, but the filter restricts the input to those two buckets.
func severityRank(severity string) int {
	switch severity {
	case model.SeverityCritical:
		return 0
	case model.SeverityHigh:
		return 1
	default:
		return 99
	}
}

// ActionRequired selects findings that are both severe (CRITICAL or HIGH) and
// safely actionable, ranks them by severity with a stable sort so equal-rank
// findings keep their input order, and returns at most the first ten.
func ActionRequired(findings []model.Finding) []model.ActionItem {
	var selected []model.Finding
	for _, f := range findings {
		sev := f.NormalizedSeverity()
		if sev != model.SeverityCritical && sev != model.SeverityHigh {
			continue
		}
		if !f.IsSafelyActionable() {
			continue
		}
		selected = append(selected, f)
	}

	sort.SliceStable(selected, func(i, j int) bool {
		return severityRank(selected[i].NormalizedSeverity()) < severityRank(selected[j].NormalizedSeverity())
	})

	if len(selected) > maxActionItems {
		selected = selected[:maxActionItems]
	}

	items := make([]model.ActionItem, 0, len(selected))
	for _, f := range selected {
		items = append(items, model.ActionItem{
			ID:             f.CveID,
			Package:        f.PackageURL,
			Severity:       f.NormalizedSeverity(),
			Classification: f.Classification,
			FixVersion:     f.FixVersion,
		})
	}
	return items
}
