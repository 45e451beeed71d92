package services

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderReport(t *testing.T) {
	report := &Report{
		Score:             66,
		MissingSkills:     []string{"Kubernetes"},
		SuggestedProjects: []string{"Deploy a service with Kubernetes"},
	}

	var buf bytes.Buffer
	require.NoError(t, RenderReport(&buf, report))
	out := buf.String()

	assert.Contains(t, out, "👍 66%")
	assert.Contains(t, out, "[█████████████░░░░░░░]")
	assert.Contains(t, out, "• Kubernetes")
	assert.Contains(t, out, "🔸 Deploy a service with Kubernetes")
	assert.NotContains(t, out, "Missing fields")
}

func TestRenderReportEmptyListsAndWarning(t *testing.T) {
	report := &Report{
		Score:         120,
		MissingFields: []string{FieldSuggestedProjects},
		Fields:        map[string]any{FieldMatchPercentage: "120%", FieldMissingSkills: []any{}},
	}

	var buf bytes.Buffer
	require.NoError(t, RenderReport(&buf, report))
	out := buf.String()

	assert.True(t, strings.HasPrefix(out, "⚠️  Missing fields: [suggested_projects]\n{"))
	fields := strings.Index(out, `"match_percentage": "120%"`)
	gauge := strings.Index(out, "📊 Analysis Results")
	require.NotEqual(t, -1, fields)
	assert.Less(t, fields, gauge)
	assert.Contains(t, out, "🎉 100%")
	assert.Contains(t, out, "No missing skills found!")
	assert.Contains(t, out, "Your resume looks great!")
}

func TestGauge(t *testing.T) {
	assert.Equal(t, 0, GaugeScore(-5))
	assert.Equal(t, 100, GaugeScore(250))
	assert.Equal(t, 42, GaugeScore(42))

	assert.Equal(t, "🎉", GaugeEmoji(80))
	assert.Equal(t, "👍", GaugeEmoji(60))
	assert.Equal(t, "⚠️", GaugeEmoji(59))
}
