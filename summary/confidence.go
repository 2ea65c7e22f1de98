package summary

import (
	"github.com/ash3dwards/cvebump/model"
	"github.com/ash3dwards/cvebump/util"
)

// AnalyzeConfidence computes distribution statistics over the confidence
// scores of findings that carry one. Findings without a confidence are
// excluded from the denominator, not just the numerator. An empty collected
// set yields the sentinel defaults average=0, minimum=0.
func AnalyzeConfidence(findings []model.Finding) model.ConfidenceStats {
	var values []float64
	for _, f := range findings {
		if f.Confidence != nil {
			values = append(values, *f.Confidence)
		}
	}

	var stats model.ConfidenceStats
	if len(values) == 0 {
		return stats
	}

	sum := 0.0
	min := values[0]
	for _, v := range values {
		sum += v
		if v < min {
			min = v
		}
		switch {
		case v >= 0.8:
			stats.Distribution.High++
		case v >= 0.5:
			stats.Distribution.Medium++
		default:
			stats.Distribution.Low++
		}
	}

	stats.Average = util.Round2(sum / float64(len(values)))
	stats.Minimum = min
	return stats
}
