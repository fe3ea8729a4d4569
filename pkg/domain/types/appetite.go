package types

import (
	"strings"

	"github.com/m-mizutani/goerr/v2"
)

// RiskAppetite represents how much residual risk a feature team accepts.
// It widens or narrows the SHIP boundary of the decision gate.
type RiskAppetite string

const (
	AppetiteLow    RiskAppetite = "low"
	AppetiteMedium RiskAppetite = "medium"
	AppetiteHigh   RiskAppetite = "high"
)

// IsValid checks if the risk appetite is valid
func (a RiskAppetite) IsValid() bool {
	switch a {
	case AppetiteLow, AppetiteMedium, AppetiteHigh:
		return true
	default:
		return false
	}
}

// String returns the string representation of the risk appetite
func (a RiskAppetite) String() string {
	return string(a)
}

// ParseRiskAppetite converts a string to a RiskAppetite.
// An empty string defaults to AppetiteMedium.
func ParseRiskAppetite(s string) (RiskAppetite, error) {
	v := strings.ToLower(strings.TrimSpace(s))
	if v == "" {
		return AppetiteMedium, nil
	}
	a := RiskAppetite(v)
	if !a.IsValid() {
		return "", goerr.New("risk appetite must be one of low, medium, high", goerr.V("risk_appetite", s))
	}
	return a, nil
}
