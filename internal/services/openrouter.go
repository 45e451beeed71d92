package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/go-resty/resty/v2"
	"github.com/tidwall/gjson"
)

const OpenRouterModel = "mistralai/mistral-7b-instruct"

type openRouterService struct {
	client *resty.Client
}

// NewOpenRouterService works with any OpenAI-compatible /chat/completions API.
func NewOpenRouterService(baseURL, apiKey string) ChatModel {
	client := resty.New().
		SetBaseURL(strings.TrimRight(baseURL, "/")).
		SetHeader("Content-Type", "application/json")
	if apiKey != "" {
		client.SetAuthToken(apiKey)
	}

	return &openRouterService{client: client}
}

func (s *openRouterService) Name() string {
	return "OpenRouter"
}

// Chat implements ChatModel.
func (s *openRouterService) Chat(ctx context.Context, model string, temperature float32, messages []ChatMessage) (string, error) {
	resp, err := s.client.R().
		SetContext(ctx).
		SetBody(map[string]any{
			"model":       model,
			"messages":    messages,
			"temperature": temperature,
		}).
		Post("/chat/completions")
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrBackendUnavailable, err)
	}

	body := resp.String()
	if resp.IsError() {
		msg := gjson.Get(body, "error.message").String()
		if msg == "" {
			msg = strings.TrimSpace(body)
		}
		return "", fmt.Errorf("%w: status %d: %s", ErrBackendRejected, resp.StatusCode(), msg)
	}

	content := gjson.Get(body, "choices.0.message.content")
	if !content.Exists() {
		return "", fmt.Errorf("%w: no choices in completion response", ErrInvalidResponse)
	}

	return content.String(), nil
}
