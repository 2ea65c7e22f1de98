// Package summary implements the aggregation engine: it partitions a batch of
// classified findings, derives per-ecosystem and confidence statistics, ranks
// safely-actionable items, and composes everything into a model.Summary.
// Every function here is pure except Build's generation timestamp.
package summary

import (
	"github.com/ash3dwards/cvebump/model"
	"github.com/ash3dwards/cvebump/util"
)

// EcosystemGroup is the ordered sequence of findings for one ecosystem.
// Findings keep their input order; groups appear in first-seen order.
type EcosystemGroup struct {
	Ecosystem string
	Findings  []model.Finding
}

// Groups holds the three partitions produced by GroupFindings. The slices
// preserve first-seen key order; the rendered report depends on it.
type Groups struct {
	Severity       []model.SeverityCount
	Classification []model.ClassificationCount
	Ecosystems     []EcosystemGroup
}

// GroupFindings partitions findings by severity, classification, and
// ecosystem. The severity partition always contains the four canonical
// buckets, even at zero; the classification partition is not pre-seeded.
func GroupFindings(findings []model.Finding) Groups {
	severity := newCounter(model.SeverityCritical, model.SeverityHigh, model.SeverityMedium, model.SeverityLow)
	classification := newCounter()

	var groups []EcosystemGroup
	groupIndex := make(map[string]int)

	for _, f := range findings {
		severity.Inc(f.NormalizedSeverity())
		classification.Inc(f.Classification)

		eco := util.PURLEcosystem(f.PackageURL)
		i, ok := groupIndex[eco]
		if !ok {
			i = len(groups)
			groupIndex[eco] = i
			groups = append(groups, EcosystemGroup{Ecosystem: eco})
		}
		groups[i].Findings = append(groups[i].Findings, f)
	}

	severityCounts := make([]model.SeverityCount, 0, severity.Len())
	for _, k := range severity.Keys() {
		severityCounts = append(severityCounts, model.SeverityCount{Severity: k, Count: severity.Get(k)})
	}

	classificationCounts := make([]model.ClassificationCount, 0, classification.Len())
	for _, k := range classification.Keys() {
		classificationCounts = append(classificationCounts, model.ClassificationCount{Classification: k, Count: classification.Get(k)})
	}

	return Groups{
		Severity:       severityCounts,
		Classification: classificationCounts,
		Ecosystems:     groups,
	}
}

// counter is an insertion-ordered counting map. A plain map would lose the
// first-seen key order the renderer depends on, so the order is tracked
// explicitly alongside the counts.
type counter struct {
	keys   []string
	counts map[string]int
}

func newCounter(seed ...string) *counter {
	c := &counter{counts: make(map[string]int)}
	for _, k := range seed {
		c.keys = append(c.keys, k)
		c.counts[k] = 0
	}
	return c
}

func (c *counter) Inc(key string) {
	if _, ok := c.counts[key]; !ok {
		c.keys = append(c.keys, key)
	}
	c.counts[key]++
}

func (c *counter) Get(key string) int { return c.counts[key] }

func (c *counter) Keys() []string { return c.keys }

func (c *counter) Len() int { return len(c.keys) }
