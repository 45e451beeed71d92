package handlers

import (
	"fmt"
	"io"
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"alfredoptarigan/resume-analyzer/internal/models"
	"alfredoptarigan/resume-analyzer/internal/services"
)

type AnalyzeHandler struct {
	analyzer services.AnalyzerService
}

func NewAnalyzeHandler(analyzer services.AnalyzerService) *AnalyzeHandler {
	return &AnalyzeHandler{
		analyzer: analyzer,
	}
}

// HandleAnalyze handles POST /analyze. A model failure still answers 200 with
// the failure text in analysis_result.
func (h *AnalyzeHandler) HandleAnalyze(c *fiber.Ctx) error {
	result, err := h.analyze(c)
	if err != nil || result == nil {
		return err
	}

	return c.JSON(models.AnalyzeResponse{
		AnalysisResult: result.Outcome.Display(),
		Status:         string(result.Outcome.Status),
		FailureKind:    string(result.Outcome.Kind),
		Model:          result.Model,
	})
}

// HandleAnalyzeReport handles POST /analyze/report: the same analysis, with
// the model text parsed into a report.
func (h *AnalyzeHandler) HandleAnalyzeReport(c *fiber.Ctx) error {
	result, err := h.analyze(c)
	if err != nil || result == nil {
		return err
	}

	response := models.ReportResponse{
		AnalysisResult: result.Outcome.Display(),
		Status:         string(result.Outcome.Status),
		FailureKind:    string(result.Outcome.Kind),
	}

	report, err := services.ParseAnalysisText(result.Outcome.Display())
	if err != nil {
		msg := err.Error()
		response.ParseError = &msg
		return c.JSON(response)
	}

	response.Report = &models.ReportData{
		MatchPercentage:   report.MatchPercentage,
		Score:             report.Score,
		MissingSkills:     nonNil(report.MissingSkills),
		SuggestedProjects: nonNil(report.SuggestedProjects),
		MissingFields:     report.MissingFields,
	}
	if warning := report.Warning(); warning != "" {
		response.Warnings = []string{warning}
	}

	return c.JSON(response)
}

// analyze returns a nil result with a nil error when a 400 was already sent.
func (h *AnalyzeHandler) analyze(c *fiber.Ctx) (*services.AnalysisResult, error) {
	requestID := uuid.New().String()
	c.Set("X-Request-ID", requestID)

	fileHeader, err := c.FormFile("file")
	if err != nil {
		return nil, c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "file is required",
		})
	}

	description := c.FormValue("description")
	if strings.TrimSpace(description) == "" {
		return nil, c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "description is required",
		})
	}

	file, err := fileHeader.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return nil, fmt.Errorf("failed to read uploaded file: %w", err)
	}

	log.Printf("📥 [%s] Analyze request: %s (%d bytes)", requestID, fileHeader.Filename, len(data))

	result, err := h.analyzer.Analyze(c.UserContext(), models.AnalysisRequest{
		RequestID:      requestID,
		ResumeFilename: fileHeader.Filename,
		Resume:         data,
		JobDescription: description,
	})
	if err != nil {
		log.Printf("❌ [%s] Analysis failed: %v", requestID, err)
		return nil, err
	}

	log.Printf("✅ [%s] Analysis finished with status %s", requestID, result.Outcome.Status)
	return result, nil
}

func nonNil(items []string) []string {
	if items == nil {
		return []string{}
	}
	return items
}
