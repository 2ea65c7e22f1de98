package summary

import "github.com/ash3dwards/cvebump/model"

// SummarizeEcosystems derives per-ecosystem counters from the grouper's
// ecosystem partition. Output order matches the partition's discovery order.
func SummarizeEcosystems(groups []EcosystemGroup) []model.EcosystemSummary {
	summaries := make([]model.EcosystemSummary, 0, len(groups))

	for _, g := range groups {
		s := model.EcosystemSummary{
			Ecosystem: g.Ecosystem,
			Count:     len(g.Findings),
		}
		for _, f := range g.Findings {
			switch f.NormalizedSeverity() {
			case model.SeverityCritical:
				s.Critical++
			case model.SeverityHigh:
				s.High++
			}
			if f.IsFixable() {
				s.Fixable++
			}
		}
		summaries = append(summaries, s)
	}

	return summaries
}
