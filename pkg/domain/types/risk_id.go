package types

import (
	"regexp"

	"github.com/m-mizutani/goerr/v2"
)

// RiskID represents a unique identifier for a risk definition
type RiskID string

var idPattern = regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)

// Validate checks if the RiskID is valid
func (r RiskID) Validate() error {
	if r == "" {
		return goerr.New("risk ID cannot be empty")
	}
	if !idPattern.MatchString(string(r)) {
		return goerr.New("risk ID must be lowercase alphanumeric with hyphens", goerr.V("id", r))
	}
	return nil
}

// String returns the string representation of RiskID
func (r RiskID) String() string {
	return string(r)
}
