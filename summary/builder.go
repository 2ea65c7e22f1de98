package summary

import (
	"time"

	"github.com/ash3dwards/cvebump/model"
)

// Build assembles the full summary for one batch of findings. Everything
// except GeneratedAt is a pure function of the input; re-running Build over
// the same batch differs only in the timestamp.
func Build(findings []model.Finding) model.Summary {
	groups := GroupFindings(findings)

	return model.Summary{
		Total:            len(findings),
		BySeverity:       groups.Severity,
		ByClassification: groups.Classification,
		Ecosystems:       SummarizeEcosystems(groups.Ecosystems),
		ActionRequired:   ActionRequired(findings),
		Confidence:       AnalyzeConfidence(findings),
		GeneratedAt:      time.Now().UTC(),
	}
}
