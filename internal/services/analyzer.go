package services

import (
	"context"
	"fmt"
	"log"

	"alfredoptarigan/resume-analyzer/internal/models"
)

type AnalyzerService interface {
	Analyze(ctx context.Context, req models.AnalysisRequest) (*AnalysisResult, error)
}

// AnalysisResult carries the model outcome unparsed; interpreting the text as
// a match report is left to the presentation layer.
type AnalysisResult struct {
	Outcome    ModelOutcome
	Model      string
	ResumeText string
}

type analyzerService struct {
	pdfParser     PDFParserService
	promptBuilder *PromptBuilder
	modelClient   *ModelClient
}

func NewAnalyzerService(pdfParser PDFParserService, modelClient *ModelClient) AnalyzerService {
	return &analyzerService{
		pdfParser:     pdfParser,
		promptBuilder: NewPromptBuilder(),
		modelClient:   modelClient,
	}
}

// Analyze implements AnalyzerService. Only extraction errors are returned;
// model failures are reported through the outcome.
func (a *analyzerService) Analyze(ctx context.Context, req models.AnalysisRequest) (*AnalysisResult, error) {
	log.Printf("📄 [%s] Parsing resume %q (%d bytes)...", req.RequestID, req.ResumeFilename, len(req.Resume))
	content, err := a.pdfParser.ExtractTextWithMetaData(req.Resume)
	if err != nil {
		return nil, fmt.Errorf("failed to parse resume: %w", err)
	}
	log.Printf("✅ [%s] Extracted %d/%d pages, %d characters", req.RequestID, content.PagesWithText, content.PageCount, len(content.Text))

	messages := a.promptBuilder.BuildMatchConversation(content.Text, req.JobDescription)

	log.Printf("🤖 [%s] Matching resume with %s...", req.RequestID, a.modelClient.Model())
	outcome := a.modelClient.Complete(ctx, messages)
	if outcome.Failed() {
		log.Printf("⚠️  [%s] Model call failed (%s), returning failure text", req.RequestID, outcome.Kind)
	} else {
		log.Printf("✅ [%s] Model response received: %d characters", req.RequestID, len(outcome.Text))
	}

	return &AnalysisResult{
		Outcome:    outcome,
		Model:      a.modelClient.Model(),
		ResumeText: content.Text,
	}, nil
}
