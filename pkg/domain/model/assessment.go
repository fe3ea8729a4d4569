package model

import (
	"github.com/google/uuid"
	"github.com/secmon-lab/themis/pkg/domain/types"
)

// AssessmentID represents a unique identifier for an assessment result
type AssessmentID string

// NewAssessmentID generates a new unique assessment ID
func NewAssessmentID() AssessmentID {
	return AssessmentID(uuid.New().String())
}

// AssessmentResult is the engine output for one feature submission.
// It is constructed once per call and holds no state across calls.
// The ID is assigned by the serving boundary, not the engine, so that
// identical inputs yield identical engine output.
type AssessmentResult struct {
	ID         AssessmentID   `json:"id,omitempty"`
	Decision   types.Decision `json:"decision"`
	Reasons    []string       `json:"reasons"`
	Conditions []string       `json:"conditions"`
	Risks      []RiskMatch    `json:"risks"`
	Markdown   string         `json:"markdown"`
}
