package handlers

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
)

// RegisterRoutes mounts the analyze endpoints. POST /analyze keeps the path
// existing clients use; the /api/v1 group mirrors it.
func RegisterRoutes(app *fiber.App, analyzeHandler *AnalyzeHandler) {
	app.Post("/analyze", analyzeHandler.HandleAnalyze)

	api := app.Group("/api/v1")

	// Health check
	api.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now(),
		})
	})

	api.Post("/analyze", analyzeHandler.HandleAnalyze)
	api.Post("/analyze/report", analyzeHandler.HandleAnalyzeReport)

	// Root route
	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message": "Resume Analyzer API",
			"version": "1.0.0",
			"endpoints": []string{
				"POST /analyze",
				"POST /api/v1/analyze",
				"POST /api/v1/analyze/report",
				"GET /api/v1/health",
			},
		})
	})
}

func ErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError

	var e *fiber.Error
	if errors.As(err, &e) {
		code = e.Code
	}

	return c.Status(code).JSON(fiber.Map{
		"error": err.Error(),
		"code":  code,
	})
}
