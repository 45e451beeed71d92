package models

// AnalysisRequest lives for a single HTTP call and is never stored.
type AnalysisRequest struct {
	RequestID      string
	ResumeFilename string
	Resume         []byte
	JobDescription string
}

type OutcomeStatus string

const (
	OutcomeSuccess OutcomeStatus = "success"
	OutcomeFailure OutcomeStatus = "failure"
)

type FailureKind string

const (
	FailureTimeout         FailureKind = "timeout"
	FailureUnavailable     FailureKind = "unavailable"
	FailureRejected        FailureKind = "rejected"
	FailureInvalidResponse FailureKind = "invalid_response"
	FailureUnknown         FailureKind = "unknown"
)
