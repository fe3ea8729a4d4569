package model

import (
	"strings"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/themis/pkg/domain/types"
)

// FeatureInput is a validated feature submission. The zero values of the
// optional fields mean "not declared"; presence is explicit, the engine
// never probes for alternative spellings of a field.
type FeatureInput struct {
	Name        string `json:"feature_name"`
	Description string `json:"feature_description"`

	ProductArea          string              `json:"product_area,omitempty"`
	Jurisdictions        []string            `json:"jurisdictions,omitempty"`
	DataSubjects         []string            `json:"data_subjects,omitempty"`
	DataCategories       []string            `json:"data_categories,omitempty"`
	ProcessingOperations []string            `json:"processing_operations,omitempty"`
	Purposes             []string            `json:"purposes,omitempty"`
	LawfulBasisCandidate string              `json:"lawful_basis_candidate,omitempty"`
	Retention            string              `json:"retention,omitempty"`
	VendorsInvolved      bool                `json:"vendors_involved,omitempty"`
	CrossBorderTransfers types.TransferScope `json:"cross_border_transfers,omitempty"`
	RiskAppetite         types.RiskAppetite  `json:"risk_appetite,omitempty"`
}

// Validate checks the required fields and normalizes enum defaults.
// Missing name or description is rejected before matching begins.
func (f *FeatureInput) Validate() error {
	if strings.TrimSpace(f.Name) == "" {
		return goerr.Wrap(ErrMissingName, "feature_name must not be empty")
	}
	if strings.TrimSpace(f.Description) == "" {
		return goerr.Wrap(ErrMissingDescription, "feature_description must not be empty")
	}

	scope, err := types.ParseTransferScope(string(f.CrossBorderTransfers))
	if err != nil {
		return err
	}
	f.CrossBorderTransfers = scope

	appetite, err := types.ParseRiskAppetite(string(f.RiskAppetite))
	if err != nil {
		return err
	}
	f.RiskAppetite = appetite

	return nil
}

// HasLawfulBasis returns true when a usable lawful basis candidate was
// declared. "unknown" and "unclear" count as missing.
func (f *FeatureInput) HasLawfulBasis() bool {
	basis := strings.ToLower(strings.TrimSpace(f.LawfulBasisCandidate))
	return basis != "" && basis != "unknown" && basis != "unclear"
}
