// Package report renders a summary into the markdown text delivered to chat
// channels and pull-request comments.
package report

import (
	"fmt"
	"strings"
	"time"

	"github.com/ash3dwards/cvebump/model"
)

// Markdown serializes a summary into the report text. Rendering is a
// deterministic function of the summary: section contents follow the
// summary's own ordering, so two renders of equal summaries differ only
// where the generation timestamps differ.
func Markdown(s model.Summary) string {
	var sb strings.Builder

	sb.WriteString("# Vulnerability Report\n\n")
	fmt.Fprintf(&sb, "**Total:** %d | **Critical:** %d | **High:** %d\n",
		s.Total, s.SeverityTotal(model.SeverityCritical), s.SeverityTotal(model.SeverityHigh))

	sb.WriteString("\n## By Classification\n\n")
	if len(s.ByClassification) == 0 {
		sb.WriteString("_No findings._\n")
	}
	for _, c := range s.ByClassification {
		fmt.Fprintf(&sb, "- %s: %d\n", c.Classification, c.Count)
	}

	sb.WriteString("\n## Ecosystems\n\n")
	if len(s.Ecosystems) == 0 {
		sb.WriteString("_No findings._\n")
	}
	for _, e := range s.Ecosystems {
		fmt.Fprintf(&sb, "- %s: %d findings (%d fixable)\n", e.Ecosystem, e.Count, e.Fixable)
	}

	sb.WriteString("\n## Action Required\n\n")
	if len(s.ActionRequired) == 0 {
		sb.WriteString("_Nothing to action._\n")
	}
	for _, item := range s.ActionRequired {
		fix := item.FixVersion
		if fix == "" {
			fix = "N/A"
		}
		fmt.Fprintf(&sb, "- **%s** %s (%s, %s) fix: %s\n",
			item.ID, item.Package, item.Severity, item.Classification, fix)
	}

	fmt.Fprintf(&sb, "\n---\nConfidence: avg %.2f, min %.2f | Generated: %s\n",
		s.Confidence.Average, s.Confidence.Minimum, s.GeneratedAt.Format(time.RFC3339))

	return sb.String()
}
