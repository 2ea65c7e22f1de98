// Package reports implements the REST API handlers for stored reports.
package reports

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"github.com/ash3dwards/cvebump/database"
	"github.com/ash3dwards/cvebump/model"
)

// GetLatestReport returns the most recently generated report.
func GetLatestReport(db database.DBConnection) fiber.Handler {
	return func(c *fiber.Ctx) error {
		rec, err := database.LatestReport(context.Background(), db)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(model.ReportResponse{
				Success: false,
				Message: "Failed to query reports: " + err.Error(),
			})
		}
		if rec == nil {
			return c.Status(fiber.StatusNotFound).JSON(model.ReportResponse{
				Success: false,
				Message: "no reports generated yet",
			})
		}
		return c.JSON(model.ReportResponse{Success: true, Report: rec})
	}
}

// GetReport returns one stored report by key.
func GetReport(db database.DBConnection) fiber.Handler {
	return func(c *fiber.Ctx) error {
		key := c.Params("key")
		if key == "" {
			return c.Status(fiber.StatusBadRequest).JSON(model.ReportResponse{
				Success: false,
				Message: "report key is required",
			})
		}

		rec, err := database.GetReport(context.Background(), db, key)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(model.ReportResponse{
				Success: false,
				Message: "Failed to query report: " + err.Error(),
			})
		}
		if rec == nil {
			return c.Status(fiber.StatusNotFound).JSON(model.ReportResponse{
				Success: false,
				Message: "report not found",
			})
		}
		return c.JSON(model.ReportResponse{Success: true, Report: rec})
	}
}
