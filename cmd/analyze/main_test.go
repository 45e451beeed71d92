package main

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"alfredoptarigan/resume-analyzer/internal/pdftest"
)

func writeResume(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "resume.pdf")
	require.NoError(t, os.WriteFile(path, pdftest.Build("Python, SQL"), 0o644))
	return path
}

func serve(t *testing.T, status int, body string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(status)
		_, _ = io.WriteString(w, body)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestRunRendersReport(t *testing.T) {
	srv := serve(t, http.StatusOK, `{"analysis_result":"{\"match_percentage\":\"66%\",\"missing_skills\":[\"Kubernetes\"],\"suggested_projects\":[\"Deploy a service with Kubernetes\"]}"}`)

	var stdout, stderr bytes.Buffer
	code := run([]string{
		"-file", writeResume(t),
		"-description", "Requires Python, SQL, Kubernetes",
		"-api-url", srv.URL,
	}, &stdout, &stderr)

	require.Equal(t, 0, code, stderr.String())
	out := stdout.String()
	assert.Contains(t, out, "66%")
	assert.Contains(t, out, "• Kubernetes")
	assert.Contains(t, out, "🔸 Deploy a service with Kubernetes")
}

func TestRunPartialReportShowsFields(t *testing.T) {
	srv := serve(t, http.StatusOK, `{"analysis_result":"{\"match_score\":\"81%\"}"}`)

	var stdout, stderr bytes.Buffer
	code := run([]string{"-file", writeResume(t), "-description", "Go", "-api-url", srv.URL}, &stdout, &stderr)

	require.Equal(t, 0, code)
	out := stdout.String()
	warning := strings.Index(out, "Missing fields: [missing_skills, suggested_projects]")
	fields := strings.Index(out, `"match_percentage": "81%"`)
	require.NotEqual(t, -1, warning)
	require.NotEqual(t, -1, fields)
	assert.Less(t, warning, fields)
	assert.Contains(t, out, "🎉 81%")
}

func TestRunEmptyAnalysisResult(t *testing.T) {
	srv := serve(t, http.StatusOK, `{"analysis_result":"","status":"success","model":"mistral:latest"}`)

	var stdout, stderr bytes.Buffer
	code := run([]string{"-file", writeResume(t), "-description", "Go", "-api-url", srv.URL}, &stdout, &stderr)

	assert.Equal(t, 1, code)
	assert.Contains(t, stderr.String(), "Could not parse JSON from API")
	assert.NotContains(t, stdout.String(), "Analysis Results")
	assert.NotContains(t, stdout.String(), "Your resume looks great!")
}

func TestRunParseFailureDebugShowsRawResponse(t *testing.T) {
	body := `{"analysis_result":"Sure! You are a 70% match."}`
	srv := serve(t, http.StatusOK, body)

	var stdout, stderr bytes.Buffer
	code := run([]string{"-file", writeResume(t), "-description", "Go", "-api-url", srv.URL, "-debug"}, &stdout, &stderr)

	assert.Equal(t, 1, code)
	assert.Contains(t, stderr.String(), body)
	assert.NotContains(t, stderr.String(), "could not parse analysis")
}

func TestTruncateKeepsWholeCharacters(t *testing.T) {
	assert.Equal(t, "ab", truncate("ab", 5))
	assert.Equal(t, "❌ é", truncate("❌ éx", 3))
	assert.True(t, utf8.ValidString(truncate(strings.Repeat("é", 600), 1000)))
	assert.Equal(t, 1000, utf8.RuneCountInString(truncate(strings.Repeat("é", 1200), 1000)))
}

func TestRunParseFailure(t *testing.T) {
	srv := serve(t, http.StatusOK, `{"analysis_result":"❌ Model Error: connection refused"}`)

	var stdout, stderr bytes.Buffer
	code := run([]string{"-file", writeResume(t), "-description", "Go", "-api-url", srv.URL}, &stdout, &stderr)

	assert.Equal(t, 1, code)
	assert.Contains(t, stderr.String(), "Could not parse JSON from API")
	assert.NotContains(t, stdout.String(), "Analysis Results")
}

func TestRunAPIError(t *testing.T) {
	srv := serve(t, http.StatusInternalServerError, `{"error":"failed to parse resume"}`)

	var stdout, stderr bytes.Buffer
	code := run([]string{"-file", writeResume(t), "-description", "Go", "-api-url", srv.URL, "-debug"}, &stdout, &stderr)

	assert.Equal(t, 1, code)
	assert.Contains(t, stderr.String(), "API Error 500")
	assert.Contains(t, stdout.String(), "Status Code: 500")
}

func TestRunUnreachable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	url := srv.URL
	srv.Close()

	var stdout, stderr bytes.Buffer
	code := run([]string{"-file", writeResume(t), "-description", "Go", "-api-url", url}, &stdout, &stderr)

	assert.Equal(t, 1, code)
	assert.Contains(t, stderr.String(), "Could not connect to API server")
}

func TestRunRequiresInputs(t *testing.T) {
	var stdout, stderr bytes.Buffer

	assert.Equal(t, 2, run([]string{"-description", "Go"}, &stdout, &stderr))
	assert.Equal(t, 2, run([]string{"-file", "resume.pdf", "-description", "  "}, &stdout, &stderr))
	assert.Contains(t, stderr.String(), "Please upload a resume and enter a job description")
}
