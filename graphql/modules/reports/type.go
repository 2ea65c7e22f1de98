// Package reports defines the GraphQL types for the report dashboard.
package reports

import (
	"github.com/graphql-go/graphql"

	"github.com/ash3dwards/cvebump/model"
)

// SeverityCountType represents one severity bucket.
var SeverityCountType = graphql.NewObject(graphql.ObjectConfig{
	Name: "SeverityCount",
	Fields: graphql.Fields{
		"severity": &graphql.Field{Type: graphql.String},
		"count":    &graphql.Field{Type: graphql.Int},
	},
})

// ClassificationCountType represents one classification bucket.
var ClassificationCountType = graphql.NewObject(graphql.ObjectConfig{
	Name: "ClassificationCount",
	Fields: graphql.Fields{
		"classification": &graphql.Field{Type: graphql.String},
		"count":          &graphql.Field{Type: graphql.Int},
	},
})

// EcosystemSummaryType represents per-ecosystem counters.
var EcosystemSummaryType = graphql.NewObject(graphql.ObjectConfig{
	Name: "EcosystemSummary",
	Fields: graphql.Fields{
		"ecosystem": &graphql.Field{Type: graphql.String},
		"count":     &graphql.Field{Type: graphql.Int},
		"critical":  &graphql.Field{Type: graphql.Int},
		"high":      &graphql.Field{Type: graphql.Int},
		"fixable":   &graphql.Field{Type: graphql.Int},
	},
})

// ActionItemType represents one ranked action-required item.
var ActionItemType = graphql.NewObject(graphql.ObjectConfig{
	Name: "ActionItem",
	Fields: graphql.Fields{
		"id":             &graphql.Field{Type: graphql.String},
		"package":        &graphql.Field{Type: graphql.String},
		"severity":       &graphql.Field{Type: graphql.String},
		"classification": &graphql.Field{Type: graphql.String},
		"fix_version": &graphql.Field{
			Type: graphql.String,
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				if item, ok := p.Source.(model.ActionItem); ok {
					return item.FixVersion, nil
				}
				return nil, nil
			},
		},
	},
})

// ConfidenceStatsType represents the confidence distribution statistics.
var ConfidenceStatsType = graphql.NewObject(graphql.ObjectConfig{
	Name: "ConfidenceStats",
	Fields: graphql.Fields{
		"average": &graphql.Field{Type: graphql.Float},
		"minimum": &graphql.Field{Type: graphql.Float},
		"high": &graphql.Field{
			Type: graphql.Int,
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				if stats, ok := p.Source.(model.ConfidenceStats); ok {
					return stats.Distribution.High, nil
				}
				return 0, nil
			},
		},
		"medium": &graphql.Field{
			Type: graphql.Int,
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				if stats, ok := p.Source.(model.ConfidenceStats); ok {
					return stats.Distribution.Medium, nil
				}
				return 0, nil
			},
		},
		"low": &graphql.Field{
			Type: graphql.Int,
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				if stats, ok := p.Source.(model.ConfidenceStats); ok {
					return stats.Distribution.Low, nil
				}
				return 0, nil
			},
		},
	},
})

// SummaryType represents one aggregated report summary.
var SummaryType = graphql.NewObject(graphql.ObjectConfig{
	Name: "Summary",
	Fields: graphql.Fields{
		"total": &graphql.Field{Type: graphql.Int},
		"by_severity": &graphql.Field{
			Type: graphql.NewList(SeverityCountType),
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				if s, ok := p.Source.(model.Summary); ok {
					return s.BySeverity, nil
				}
				return nil, nil
			},
		},
		"by_classification": &graphql.Field{
			Type: graphql.NewList(ClassificationCountType),
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				if s, ok := p.Source.(model.Summary); ok {
					return s.ByClassification, nil
				}
				return nil, nil
			},
		},
		"ecosystems": &graphql.Field{Type: graphql.NewList(EcosystemSummaryType)},
		"action_required": &graphql.Field{
			Type: graphql.NewList(ActionItemType),
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				if s, ok := p.Source.(model.Summary); ok {
					return s.ActionRequired, nil
				}
				return nil, nil
			},
		},
		"confidence": &graphql.Field{Type: ConfidenceStatsType},
		"generated_at": &graphql.Field{
			Type: graphql.String,
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				if s, ok := p.Source.(model.Summary); ok {
					return s.GeneratedAt, nil
				}
				return nil, nil
			},
		},
	},
})
