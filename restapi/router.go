// Package restapi provides the main router and initialization for REST API endpoints.
package restapi

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/graphql-go/graphql"

	"github.com/ash3dwards/cvebump/config"
	"github.com/ash3dwards/cvebump/database"
	reportevents "github.com/ash3dwards/cvebump/events/modules/reports"
	"github.com/ash3dwards/cvebump/restapi/modules/auth"
	"github.com/ash3dwards/cvebump/restapi/modules/findings"
	"github.com/ash3dwards/cvebump/restapi/modules/reports"
)

// SetupRoutes configures all REST API routes and the GraphQL endpoint.
func SetupRoutes(app *fiber.App, db database.DBConnection, cfg *config.Config, schema graphql.Schema, producer *reportevents.Producer) {
	// API Group /api/v1
	api := app.Group("/api/v1")

	// GraphQL Route - Mounted within the api group to inherit path prefixes
	api.Post("/graphql", GraphQLHandler(schema))

	// Finding ingestion (write, token-guarded)
	api.Post("/findings", auth.RequireToken(cfg.Server.APIToken), findings.PostFindings(db, producer))

	// Report reads
	api.Get("/reports/latest", reports.GetLatestReport(db))
	api.Get("/reports/:key", reports.GetReport(db))

	log.Println("API routes initialized successfully")
}
