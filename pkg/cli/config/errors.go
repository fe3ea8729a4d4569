package config

import "github.com/m-mizutani/goerr/v2"

// Sentinel errors for policy validation
var (
	ErrPolicyNotFound = goerr.New("policy file not found")
	ErrInvalidPolicy  = goerr.New("invalid policy")
	ErrEmptyPolicy    = goerr.New("policy defines no risks")
)

// Context keys for error values
const (
	PolicyPathKey = "policy_path"
	RiskIndexKey  = "risk_index"
)
