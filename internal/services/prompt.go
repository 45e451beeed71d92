package services

import (
	"fmt"
)

const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// matchSystemPrompt takes the resume text and the job description, in that order.
const matchSystemPrompt = `
You are a resume-job match analyzer.

Given:
Resume:
%s

Job Description:
%s

Return ONLY a valid JSON object in this exact format (no extra text, no explanations):

{
  "match_percentage": "85%%",
  "missing_skills": ["skill1", "skill2"],
  "suggested_projects": ["project1", "project2", "project3"]
}

`

type PromptBuilder struct{}

func NewPromptBuilder() *PromptBuilder {
	return &PromptBuilder{}
}

// BuildMatchConversation returns the system and user turns for a match
// analysis. The resume and job description appear in both turns; some models
// weight the user turn more heavily than the system turn.
func (pb *PromptBuilder) BuildMatchConversation(resumeText, jobDescription string) []ChatMessage {
	return []ChatMessage{
		{
			Role:    RoleSystem,
			Content: fmt.Sprintf(matchSystemPrompt, resumeText, jobDescription),
		},
		{
			Role:    RoleUser,
			Content: fmt.Sprintf("Resume:\n%s\n\nJob Description:\n%s", resumeText, jobDescription),
		},
	}
}
