package model

import "github.com/m-mizutani/goerr/v2"

// Sentinel errors for input and catalog validation
var (
	ErrMissingName        = goerr.New("feature name is required")
	ErrMissingDescription = goerr.New("feature description is required")
	ErrInvalidDefinition  = goerr.New("invalid risk definition")
	ErrEmptyTriggers      = goerr.New("risk definition requires at least one trigger clause")
	ErrDuplicateRiskID    = goerr.New("duplicate risk ID")
)

// Context keys for error values
const (
	RiskIDKey = "risk_id"
	FieldKey  = "field"
)
