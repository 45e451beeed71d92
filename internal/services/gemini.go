package services

import (
	"context"
	"errors"
	"fmt"
	"net"
	"strings"

	"google.golang.org/genai"
)

const GeminiModel = "gemini-2.5-flash"

type geminiService struct {
	client *genai.Client
}

func NewGeminiService(ctx context.Context, apiKey string) (ChatModel, error) {
	return newGeminiService(ctx, apiKey, "")
}

// newGeminiService uses the default Gemini endpoint when baseURL is empty.
func newGeminiService(ctx context.Context, apiKey, baseURL string) (ChatModel, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("GEMINI_API_KEY not set")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:      apiKey,
		Backend:     genai.BackendGeminiAPI,
		HTTPOptions: genai.HTTPOptions{BaseURL: baseURL},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}

	return &geminiService{client: client}, nil
}

func (g *geminiService) Name() string {
	return "Gemini"
}

// Chat implements ChatModel. System turns are sent as the system instruction.
func (g *geminiService) Chat(ctx context.Context, model string, temperature float32, messages []ChatMessage) (string, error) {
	system, contents := toGeminiContents(messages)

	config := &genai.GenerateContentConfig{
		Temperature: &temperature,
	}
	if system != "" {
		config.SystemInstruction = genai.NewContentFromText(system, genai.RoleUser)
	}

	resp, err := g.client.Models.GenerateContent(ctx, model, contents, config)
	if err != nil {
		var netErr net.Error
		if errors.As(err, &netErr) {
			return "", fmt.Errorf("%w: %w", ErrBackendUnavailable, err)
		}
		return "", fmt.Errorf("%w: %w", ErrBackendRejected, err)
	}

	if resp == nil || len(resp.Candidates) == 0 {
		return "", fmt.Errorf("%w: no candidates in gemini response", ErrInvalidResponse)
	}

	return resp.Text(), nil
}

func toGeminiContents(messages []ChatMessage) (string, []*genai.Content) {
	var system []string
	var contents []*genai.Content

	for _, m := range messages {
		switch m.Role {
		case RoleSystem:
			system = append(system, m.Content)
		case RoleAssistant:
			contents = append(contents, genai.NewContentFromText(m.Content, genai.RoleModel))
		default:
			contents = append(contents, genai.NewContentFromText(m.Content, genai.RoleUser))
		}
	}

	return strings.Join(system, "\n\n"), contents
}
