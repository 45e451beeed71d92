package services

import (
	"context"
	"errors"
)

// ChatModel is a chat-completion backend.
type ChatModel interface {
	Name() string
	Chat(ctx context.Context, model string, temperature float32, messages []ChatMessage) (string, error)
}

var (
	// ErrBackendUnavailable means the backend could not be reached.
	ErrBackendUnavailable = errors.New("model backend unavailable")
	// ErrBackendRejected means the backend answered with an error status.
	ErrBackendRejected = errors.New("model backend rejected request")
	// ErrInvalidResponse means the backend answered but no message could be read.
	ErrInvalidResponse = errors.New("invalid model response")
)
