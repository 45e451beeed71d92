package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"alfredoptarigan/resume-analyzer/internal/models"
)

// FailureMarker prefixes the displayable text of a failed model call.
const FailureMarker = "❌ Model Error: "

const MatchTemperature float32 = 0.3

// ModelOutcome is either a success carrying the model text or a failure
// carrying a kind and message.
type ModelOutcome struct {
	Status  models.OutcomeStatus
	Text    string
	Kind    models.FailureKind
	Message string
}

func (o ModelOutcome) Failed() bool {
	return o.Status == models.OutcomeFailure
}

// Display returns the string shown to users: the model text, or the failure
// message behind FailureMarker.
func (o ModelOutcome) Display() string {
	if o.Failed() {
		return FailureMarker + o.Message
	}
	return o.Text
}

type ModelClient struct {
	backend ChatModel
	model   string
}

func NewModelClient(backend ChatModel, model string) *ModelClient {
	return &ModelClient{backend: backend, model: model}
}

func (m *ModelClient) Model() string {
	return m.model
}

// Complete sends the conversation at the fixed temperature. It never returns
// an error: backend failures come back as a failed ModelOutcome.
func (m *ModelClient) Complete(ctx context.Context, messages []ChatMessage) (outcome ModelOutcome) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("❌ %s backend panicked: %v", m.backend.Name(), r)
			outcome = failedOutcome(models.FailureUnknown, fmt.Sprintf("%s backend panic: %v", m.backend.Name(), r))
		}
	}()

	text, err := m.backend.Chat(ctx, m.model, MatchTemperature, messages)
	if err != nil {
		kind := classifyFailure(err)
		log.Printf("❌ %s error (%s): %v", m.backend.Name(), kind, err)
		return failedOutcome(kind, err.Error())
	}

	return ModelOutcome{
		Status: models.OutcomeSuccess,
		Text:   strings.TrimSpace(text),
	}
}

func failedOutcome(kind models.FailureKind, message string) ModelOutcome {
	return ModelOutcome{
		Status:  models.OutcomeFailure,
		Kind:    kind,
		Message: message,
	}
}

func classifyFailure(err error) models.FailureKind {
	switch {
	case errors.Is(err, context.DeadlineExceeded), errors.Is(err, context.Canceled):
		return models.FailureTimeout
	case errors.Is(err, ErrBackendUnavailable):
		return models.FailureUnavailable
	case errors.Is(err, ErrBackendRejected):
		return models.FailureRejected
	case errors.Is(err, ErrInvalidResponse):
		return models.FailureInvalidResponse
	default:
		return models.FailureUnknown
	}
}
