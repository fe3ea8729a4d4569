package usecase_test

import (
	"strings"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/themis/pkg/catalog"
	"github.com/secmon-lab/themis/pkg/domain/model"
	"github.com/secmon-lab/themis/pkg/domain/types"
	"github.com/secmon-lab/themis/pkg/usecase"
)

func mustCatalog(t *testing.T, defs []model.RiskDefinition) *catalog.Catalog {
	t.Helper()
	c, err := catalog.New(defs)
	gt.NoError(t, err).Required()
	return c
}

func baseInput() *model.FeatureInput {
	return &model.FeatureInput{
		Name:                 "Test feature",
		Description:          "A feature used in tests",
		CrossBorderTransfers: types.TransferNone,
		RiskAppetite:         types.AppetiteMedium,
	}
}

func TestMatch_CrossClauseAND(t *testing.T) {
	c := mustCatalog(t, []model.RiskDefinition{
		{
			ID:            "two-clause-risk",
			Title:         "Two clause risk",
			GDPRPrinciple: "Accountability",
			Impact:        types.RatingMedium,
			Likelihood:    types.RatingMedium,
			Triggers: []model.TriggerClause{
				{Field: types.TriggerDataCategories, Values: []string{"location"}},
				{Field: types.TriggerVendors},
			},
		},
	})

	// Only the first clause satisfied: the definition must not match.
	input := baseInput()
	input.DataCategories = []string{"Location data"}
	gt.Array(t, usecase.Match(c, input)).Length(0)

	// Both clauses satisfied: the definition matches.
	input.VendorsInvolved = true
	matches := usecase.Match(c, input)
	gt.Array(t, matches).Length(1)
	gt.Value(t, matches[0].ID).Equal("two-clause-risk")
}

func TestMatch_ClauseInternalOR(t *testing.T) {
	c := mustCatalog(t, []model.RiskDefinition{
		{
			ID:            "subject-risk",
			Title:         "Subject risk",
			GDPRPrinciple: "Fairness",
			Impact:        types.RatingLow,
			Likelihood:    types.RatingLow,
			Triggers: []model.TriggerClause{
				{Field: types.TriggerDataSubjects, Values: []string{"employee", "contractor"}},
			},
		},
	})

	input := baseInput()
	input.DataSubjects = []string{"External contractors"}

	matches := usecase.Match(c, input)
	gt.Array(t, matches).Length(1)
	gt.Value(t, matches[0].MatchedOn).Equal(`data subjects include "External contractors"`)
}

func TestMatch_Monotonicity(t *testing.T) {
	c := mustCatalog(t, catalog.BuiltinDefinitions())

	input := baseInput()
	input.DataCategories = []string{"Biometric data"}

	before := usecase.Match(c, input)
	gt.Array(t, before).Length(1)

	// Adding more declared dimensions must never cancel an existing match.
	input.DataCategories = append(input.DataCategories, "Contact details", "Device identifiers")
	input.Jurisdictions = []string{"DE", "FR"}
	input.ProcessingOperations = []string{"Collection"}

	after := usecase.Match(c, input)
	found := false
	for _, m := range after {
		if m.ID == before[0].ID {
			found = true
		}
	}
	gt.Bool(t, found).True()
}

func TestMatch_CrossBorderClause(t *testing.T) {
	c := mustCatalog(t, catalog.BuiltinDefinitions())

	input := baseInput()
	gt.Array(t, usecase.Match(c, input)).Length(0)

	input.CrossBorderTransfers = types.TransferWithSafeguards
	matches := usecase.Match(c, input)
	gt.Array(t, matches).Length(1)
	gt.Value(t, matches[0].ID).Equal("international-transfers")
	gt.Value(t, matches[0].MatchedOn).Equal("cross-border transfers declared as with_safeguards")
}

func TestMatch_RetentionClause(t *testing.T) {
	c := mustCatalog(t, catalog.BuiltinDefinitions())

	tests := []struct {
		name      string
		retention string
		fires     bool
	}{
		{"over threshold", "12 months", true},
		{"at threshold", "30 days", false},
		{"under threshold", "7 days", false},
		{"unspecified", "", false},
		{"unparseable never fires", "until further notice", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := baseInput()
			input.Retention = tt.retention

			matches := usecase.Match(c, input)
			if tt.fires {
				gt.Array(t, matches).Length(1)
				gt.Value(t, matches[0].ID).Equal("storage-limitation")
				gt.Bool(t, strings.Contains(matches[0].MatchedOn, "360 days")).True()
			} else {
				gt.Array(t, matches).Length(0)
			}
		})
	}
}

func TestMatch_ContentLoggingClause(t *testing.T) {
	c := mustCatalog(t, catalog.BuiltinDefinitions())

	// Logging operation alone is not enough.
	input := baseInput()
	input.ProcessingOperations = []string{"Logging"}
	gt.Array(t, usecase.Match(c, input)).Length(0)

	// Free-text category alone is not enough.
	input = baseInput()
	input.DataCategories = []string{"User-generated content"}
	gt.Array(t, usecase.Match(c, input)).Length(0)

	// Both together fire the compound clause.
	input.ProcessingOperations = []string{"Logging"}
	matches := usecase.Match(c, input)
	gt.Array(t, matches).Length(1)
	gt.Value(t, matches[0].ID).Equal("content-sensitivity")
	gt.Value(t, matches[0].MatchedOn).Equal(`free-text category "User-generated content" combined with logging operation "Logging"`)
}

func TestMatch_ScoreFromRatings(t *testing.T) {
	c := mustCatalog(t, catalog.BuiltinDefinitions())

	input := baseInput()
	input.DataCategories = []string{"Special category data"}

	matches := usecase.Match(c, input)
	gt.Array(t, matches).Length(1)
	gt.Number(t, matches[0].Score).Equal(9)
	gt.Value(t, matches[0].Impact).Equal(types.RatingHigh)
	gt.Value(t, matches[0].Likelihood).Equal(types.RatingHigh)
}
