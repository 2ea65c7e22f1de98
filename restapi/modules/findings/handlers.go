// Package findings implements the REST API handlers for finding ingestion.
package findings

import (
	"context"
	"log"

	"github.com/gofiber/fiber/v2"

	"github.com/ash3dwards/cvebump/database"
	reportevents "github.com/ash3dwards/cvebump/events/modules/reports"
	"github.com/ash3dwards/cvebump/model"
	"github.com/ash3dwards/cvebump/report"
	"github.com/ash3dwards/cvebump/summary"
)

// PostFindings handles POST requests carrying one classified finding batch.
// The batch is aggregated, rendered, persisted, and announced on the report
// topic. An empty batch is valid and produces an all-zero summary.
func PostFindings(db database.DBConnection, producer *reportevents.Producer) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req model.FindingsIngestRequest

		if err := c.BodyParser(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"success": false,
				"message": "Invalid request body: " + err.Error(),
			})
		}

		sum := summary.Build(req.Findings)
		markdown := report.Markdown(sum)

		ctx := context.Background()
		rec := model.NewReportRecord(sum, markdown)

		key, err := database.SaveReport(ctx, db, rec)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"success": false,
				"message": "Failed to store report: " + err.Error(),
			})
		}
		rec.Key = key

		if err := database.SaveFindingBatch(ctx, db, key, req.Findings); err != nil {
			log.Printf("WARNING: Failed to store finding batch for report %s: %v", key, err)
		}

		if producer != nil {
			if err := producer.PublishReportGenerated(ctx, rec); err != nil {
				// Delivery is best effort; the report itself is already stored
				log.Printf("WARNING: Failed to publish report event for %s: %v", key, err)
			}
		}

		return c.JSON(model.FindingsIngestResponse{
			Success:   true,
			ReportKey: key,
			Summary:   sum,
			Report:    markdown,
		})
	}
}
