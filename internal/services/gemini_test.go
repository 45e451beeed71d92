package services

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
	"google.golang.org/genai"
)

func TestToGeminiContents(t *testing.T) {
	msgs := []ChatMessage{
		{Role: RoleSystem, Content: "be strict"},
		{Role: RoleUser, Content: "resume here"},
		{Role: RoleAssistant, Content: "ok"},
	}

	system, contents := toGeminiContents(msgs)

	assert.Equal(t, "be strict", system)
	require.Len(t, contents, 2)
	assert.Equal(t, string(genai.RoleUser), contents[0].Role)
	assert.Equal(t, "resume here", contents[0].Parts[0].Text)
	assert.Equal(t, string(genai.RoleModel), contents[1].Role)
}

func TestNewGeminiServiceRequiresKey(t *testing.T) {
	_, err := NewGeminiService(context.Background(), "")
	assert.Error(t, err)
}

func fakeGemini(t *testing.T, status int, reply string, gotBody *string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.True(t, strings.HasSuffix(r.URL.Path, "/models/"+GeminiModel+":generateContent"), r.URL.Path)
		if gotBody != nil {
			b, _ := io.ReadAll(r.Body)
			*gotBody = string(b)
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = io.WriteString(w, reply)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestGeminiChat(t *testing.T) {
	var body string
	srv := fakeGemini(t, http.StatusOK,
		`{"candidates":[{"content":{"role":"model","parts":[{"text":"{\"match_percentage\":\"70%\"}"}]}}]}`, &body)

	backend, err := newGeminiService(context.Background(), "key-123", srv.URL)
	require.NoError(t, err)

	text, err := backend.Chat(context.Background(), GeminiModel, 0.3, []ChatMessage{
		{Role: RoleSystem, Content: "be strict"},
		{Role: RoleUser, Content: "resume here"},
	})
	require.NoError(t, err)

	assert.Equal(t, `{"match_percentage":"70%"}`, text)
	assert.Equal(t, "be strict", gjson.Get(body, "systemInstruction.parts.0.text").String())
	assert.Equal(t, "resume here", gjson.Get(body, "contents.0.parts.0.text").String())
	assert.Equal(t, "user", gjson.Get(body, "contents.0.role").String())
	assert.InDelta(t, 0.3, gjson.Get(body, "generationConfig.temperature").Float(), 0.0001)
}

func TestGeminiChatErrors(t *testing.T) {
	rejected := fakeGemini(t, http.StatusBadRequest,
		`{"error":{"code":400,"message":"API key not valid","status":"INVALID_ARGUMENT"}}`, nil)
	backend, err := newGeminiService(context.Background(), "key-123", rejected.URL)
	require.NoError(t, err)

	_, err = backend.Chat(context.Background(), GeminiModel, 0.3, []ChatMessage{{Role: RoleUser, Content: "hi"}})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrBackendRejected))

	empty := fakeGemini(t, http.StatusOK, `{"candidates":[]}`, nil)
	backend, err = newGeminiService(context.Background(), "key-123", empty.URL)
	require.NoError(t, err)

	_, err = backend.Chat(context.Background(), GeminiModel, 0.3, []ChatMessage{{Role: RoleUser, Content: "hi"}})
	assert.True(t, errors.Is(err, ErrInvalidResponse))
}
