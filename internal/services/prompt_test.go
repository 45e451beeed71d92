package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildMatchConversation(t *testing.T) {
	pb := NewPromptBuilder()
	resume := "Jane Doe\nPython, SQL\n"
	jd := "Requires Python, SQL, Kubernetes"

	msgs := pb.BuildMatchConversation(resume, jd)
	require.Len(t, msgs, 2)

	system, user := msgs[0], msgs[1]
	assert.Equal(t, RoleSystem, system.Role)
	assert.Equal(t, RoleUser, user.Role)

	assert.Contains(t, system.Content, "Resume:\n"+resume)
	assert.Contains(t, system.Content, "Job Description:\n"+jd)
	assert.Equal(t, "Resume:\n"+resume+"\n\nJob Description:\n"+jd, user.Content)
}

func TestMatchPromptAsksForJSONOnly(t *testing.T) {
	msgs := NewPromptBuilder().BuildMatchConversation("r", "j")
	system := msgs[0].Content

	assert.Contains(t, system, "Return ONLY a valid JSON object")
	assert.Contains(t, system, `"match_percentage": "85%"`)
	assert.Contains(t, system, `"missing_skills"`)
	assert.Contains(t, system, `"suggested_projects"`)
	assert.NotContains(t, system, "%!", "template verbs must all be consumed")
}

func TestBuildMatchConversationKeepsPercentSignsInInput(t *testing.T) {
	msgs := NewPromptBuilder().BuildMatchConversation("improved latency by 40%", "100% remote")

	assert.Contains(t, msgs[0].Content, "improved latency by 40%")
	assert.Contains(t, msgs[1].Content, "100% remote")
}
