package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/go-resty/resty/v2"
	"github.com/tidwall/gjson"
)

const OllamaModel = "mistral:latest"

type ollamaService struct {
	client *resty.Client
}

// NewOllamaService talks to a local Ollama daemon through /api/chat.
func NewOllamaService(baseURL string) ChatModel {
	return &ollamaService{
		client: resty.New().
			SetBaseURL(strings.TrimRight(baseURL, "/")).
			SetHeader("Content-Type", "application/json"),
	}
}

func (o *ollamaService) Name() string {
	return "Ollama"
}

// Chat implements ChatModel.
func (o *ollamaService) Chat(ctx context.Context, model string, temperature float32, messages []ChatMessage) (string, error) {
	resp, err := o.client.R().
		SetContext(ctx).
		SetBody(map[string]any{
			"model":    model,
			"messages": messages,
			"stream":   false,
			"options": map[string]any{
				"temperature": temperature,
			},
		}).
		Post("/api/chat")
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrBackendUnavailable, err)
	}

	if resp.IsError() {
		msg := gjson.Get(resp.String(), "error").String()
		if msg == "" {
			msg = strings.TrimSpace(resp.String())
		}
		return "", fmt.Errorf("%w: status %d: %s", ErrBackendRejected, resp.StatusCode(), msg)
	}

	content := gjson.Get(resp.String(), "message.content")
	if !content.Exists() {
		return "", fmt.Errorf("%w: no message in ollama response", ErrInvalidResponse)
	}

	return content.String(), nil
}
