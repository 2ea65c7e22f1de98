// Package api assembles the Fiber application serving the REST and GraphQL surfaces.
package api

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	fiberrecover "github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/ash3dwards/cvebump/config"
	"github.com/ash3dwards/cvebump/database"
	reportevents "github.com/ash3dwards/cvebump/events/modules/reports"
	gqlschema "github.com/ash3dwards/cvebump/graphql"
	"github.com/ash3dwards/cvebump/restapi"
)

// NewFiberApp creates and configures a Fiber app with REST and GraphQL routes
func NewFiberApp(db database.DBConnection, cfg *config.Config, producer *reportevents.Producer) *fiber.App {
	// Initialize GraphQL schema
	gqlschema.InitDB(db)
	schema, err := gqlschema.CreateSchema()
	if err != nil {
		log.Fatalf("Failed to create GraphQL schema: %v", err)
	}

	app := fiber.New(fiber.Config{
		AppName:     "cvebump API v1.0",
		BodyLimit:   10 * 1024 * 1024, // 10MB finding batches
		ReadTimeout: 60 * time.Second,
	})

	// Middleware
	app.Use(fiberrecover.New())
	app.Use(compress.New(compress.Config{Level: compress.LevelBestSpeed}))
	app.Use(cors.New(cors.Config{
		AllowOrigins: "http://localhost:3000,http://127.0.0.1:3000",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET, POST, HEAD, OPTIONS",
	}))
	app.Use(logger.New())

	// Health check endpoint
	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "healthy"})
	})

	// Setup REST and GraphQL routes
	restapi.SetupRoutes(app, db, cfg, schema, producer)

	return app
}
