package services

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
)

const gaugeWidth = 20

// GaugeScore clamps a score to 0..100.
func GaugeScore(score int) int {
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}

// GaugeEmoji returns the band marker for a clamped score.
func GaugeEmoji(score int) string {
	switch {
	case score >= 80:
		return "🎉"
	case score >= 60:
		return "👍"
	default:
		return "⚠️"
	}
}

// RenderReport writes a plain-text match report: a score gauge, the missing
// skills and the suggested projects. An incomplete report is preceded by the
// missing-fields warning and the normalized fields.
func RenderReport(w io.Writer, report *Report) error {
	var b strings.Builder

	if warning := report.Warning(); warning != "" {
		fmt.Fprintf(&b, "⚠️  %s\n", warning)
		fields, err := json.MarshalIndent(report.Fields, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode report fields: %w", err)
		}
		fmt.Fprintf(&b, "%s\n\n", fields)
	}

	score := GaugeScore(report.Score)
	filled := score * gaugeWidth / 100

	b.WriteString("📊 Analysis Results\n")
	b.WriteString(strings.Repeat("-", 40) + "\n")
	fmt.Fprintf(&b, "%s %d%%  Resume Match Score\n", GaugeEmoji(score), score)
	fmt.Fprintf(&b, "[%s%s]\n\n", strings.Repeat("█", filled), strings.Repeat("░", gaugeWidth-filled))

	b.WriteString("❌ Missing Skills\n")
	if len(report.MissingSkills) == 0 {
		b.WriteString("   🎉 No missing skills found!\n")
	}
	for _, skill := range report.MissingSkills {
		fmt.Fprintf(&b, "   • %s\n", skill)
	}
	b.WriteString("\n")

	b.WriteString("💡 Suggested Projects\n")
	if len(report.SuggestedProjects) == 0 {
		b.WriteString("   ✅ Your resume looks great!\n")
	}
	for _, project := range report.SuggestedProjects {
		fmt.Fprintf(&b, "   🔸 %s\n", project)
	}

	_, err := io.WriteString(w, b.String())
	return err
}
