// Package graphql assembles the root schema for the dashboard query surface.
package graphql

import (
	"github.com/graphql-go/graphql"

	"github.com/ash3dwards/cvebump/database"
	"github.com/ash3dwards/cvebump/graphql/modules/reports"
)

var db database.DBConnection

// InitDB stores the database connection for the module resolvers.
func InitDB(conn database.DBConnection) {
	db = conn
}

// CreateSchema builds the root query schema from the module query fields.
func CreateSchema() (graphql.Schema, error) {
	fields := graphql.Fields{}

	for name, field := range reports.GetQueryFields(db) {
		fields[name] = field
	}

	rootQuery := graphql.NewObject(graphql.ObjectConfig{
		Name:   "Query",
		Fields: fields,
	})

	return graphql.NewSchema(graphql.SchemaConfig{
		Query: rootQuery,
	})
}
