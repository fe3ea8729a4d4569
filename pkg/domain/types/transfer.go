package types

import (
	"strings"

	"github.com/m-mizutani/goerr/v2"
)

// TransferScope represents where personal data crosses borders
type TransferScope string

const (
	TransferNone            TransferScope = "none"
	TransferWithinRegion    TransferScope = "within_region"
	TransferAdequateCountry TransferScope = "adequate_country"
	TransferWithSafeguards  TransferScope = "with_safeguards"
	TransferOther           TransferScope = "other"
)

// IsValid checks if the transfer scope is valid
func (t TransferScope) IsValid() bool {
	switch t {
	case TransferNone, TransferWithinRegion, TransferAdequateCountry, TransferWithSafeguards, TransferOther:
		return true
	default:
		return false
	}
}

// IsNone returns true when no cross-border transfer takes place
func (t TransferScope) IsNone() bool {
	return t == TransferNone
}

// String returns the string representation of the transfer scope
func (t TransferScope) String() string {
	return string(t)
}

// ParseTransferScope converts a string to a TransferScope.
// An empty string defaults to TransferNone.
func ParseTransferScope(s string) (TransferScope, error) {
	v := strings.ToLower(strings.TrimSpace(s))
	if v == "" {
		return TransferNone, nil
	}
	t := TransferScope(v)
	if !t.IsValid() {
		return "", goerr.New("invalid cross-border transfer scope", goerr.V("cross_border_transfers", s))
	}
	return t, nil
}
