// Command analyze submits a resume and job description to the analyzer API
// and prints the match report.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"alfredoptarigan/resume-analyzer/internal/config"
	"alfredoptarigan/resume-analyzer/internal/services"
)

const debugBodyLimit = 1000

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	cfg := config.Load()

	fs := flag.NewFlagSet("analyze", flag.ContinueOnError)
	fs.SetOutput(stderr)
	resumePath := fs.String("file", "", "path to the resume PDF")
	description := fs.String("description", "", "job description text")
	descriptionFile := fs.String("description-file", "", "read the job description from a file")
	apiURL := fs.String("api-url", cfg.Client.APIURL, "analyze endpoint URL")
	timeout := fs.Duration("timeout", cfg.Client.Timeout, "request timeout")
	debug := fs.Bool("debug", false, "print the raw API response")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	jobDescription := *description
	if *descriptionFile != "" {
		b, err := os.ReadFile(*descriptionFile)
		if err != nil {
			fmt.Fprintf(stderr, "❌ Failed to read job description: %v\n", err)
			return 1
		}
		jobDescription = string(b)
	}

	if *resumePath == "" || strings.TrimSpace(jobDescription) == "" {
		fmt.Fprintln(stderr, "⚠️  Please upload a resume and enter a job description.")
		return 2
	}

	resume, err := os.ReadFile(*resumePath)
	if err != nil {
		fmt.Fprintf(stderr, "❌ Failed to read resume: %v\n", err)
		return 1
	}

	fmt.Fprintln(stdout, "🔍 Analyzing your resume... please wait")

	client := services.NewAnalyzerAPIClient(*apiURL, *timeout)
	resp, err := client.Submit(context.Background(), filepath.Base(*resumePath), resume, jobDescription)

	if *debug && resp != nil {
		fmt.Fprintf(stdout, "Status Code: %d\n%s\n", resp.StatusCode, truncate(string(resp.Body), debugBodyLimit))
	}

	var apiErr *services.APIError
	switch {
	case err == nil:
	case errors.Is(err, services.ErrAPITimeout):
		fmt.Fprintln(stderr, "❌ Request timed out.")
		return 1
	case errors.Is(err, services.ErrAPIUnreachable):
		fmt.Fprintln(stderr, "❌ Could not connect to API server.")
		return 1
	case errors.As(err, &apiErr):
		fmt.Fprintf(stderr, "❌ %s\n", apiErr.Error())
		return 1
	default:
		fmt.Fprintf(stderr, "❌ Unexpected error: %v\n", err)
		return 1
	}

	report, err := services.ParseAnalysis(resp.Body)
	if err != nil {
		fmt.Fprintln(stderr, "❌ Could not parse JSON from API.")
		if *debug {
			fmt.Fprintln(stderr, string(resp.Body))
		}
		return 1
	}

	if err := services.RenderReport(stdout, report); err != nil {
		fmt.Fprintf(stderr, "❌ Failed to render report: %v\n", err)
		return 1
	}
	return 0
}

// truncate keeps the first n characters of s.
func truncate(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	return string([]rune(s)[:n])
}
