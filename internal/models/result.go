package models

// AnalyzeResponse is returned by POST /analyze. AnalysisResult always holds a
// displayable string: the model text on success, or the failure-marked
// message when the model call failed.
type AnalyzeResponse struct {
	AnalysisResult string `json:"analysis_result"`
	Status         string `json:"status"`
	FailureKind    string `json:"failure_kind,omitempty"`
	Model          string `json:"model"`
}

// ReportResponse is returned by POST /api/v1/analyze/report.
type ReportResponse struct {
	AnalysisResult string      `json:"analysis_result"`
	Status         string      `json:"status"`
	FailureKind    string      `json:"failure_kind,omitempty"`
	Report         *ReportData `json:"report,omitempty"`
	Warnings       []string    `json:"warnings,omitempty"`
	ParseError     *string     `json:"parse_error,omitempty"`
}

type ReportData struct {
	MatchPercentage   any      `json:"match_percentage,omitempty"`
	Score             int      `json:"score"`
	MissingSkills     []string `json:"missing_skills"`
	SuggestedProjects []string `json:"suggested_projects"`
	MissingFields     []string `json:"missing_fields,omitempty"`
}
