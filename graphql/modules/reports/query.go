// Package reports defines the GraphQL queries for the report dashboard.
package reports

import (
	"github.com/graphql-go/graphql"

	"github.com/ash3dwards/cvebump/database"
)

// GetQueryFields returns the report queries to be mounted in the root schema.
func GetQueryFields(db database.DBConnection) graphql.Fields {
	return graphql.Fields{
		"latestSummary": &graphql.Field{
			Type: SummaryType,
			Resolve: func(_ graphql.ResolveParams) (interface{}, error) {
				return ResolveLatestSummary(db)
			},
		},
		"severityDistribution": &graphql.Field{
			Type: graphql.NewList(SeverityCountType),
			Resolve: func(_ graphql.ResolveParams) (interface{}, error) {
				return ResolveSeverityDistribution(db)
			},
		},
		"actionRequired": &graphql.Field{
			Type: graphql.NewList(ActionItemType),
			Args: graphql.FieldConfigArgument{
				"limit": &graphql.ArgumentConfig{Type: graphql.Int, DefaultValue: 10},
			},
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				limit := p.Args["limit"].(int)
				return ResolveActionRequired(db, limit)
			},
		},
	}
}
