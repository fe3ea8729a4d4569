package usecase_test

import (
	"context"
	"strings"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/themis/pkg/catalog"
	"github.com/secmon-lab/themis/pkg/domain/model"
	"github.com/secmon-lab/themis/pkg/domain/types"
	"github.com/secmon-lab/themis/pkg/usecase"
)

func newUseCases(t *testing.T) *usecase.UseCases {
	t.Helper()
	c, err := catalog.Builtin()
	gt.NoError(t, err).Required()
	return usecase.New(c)
}

func TestAssess_RejectsMissingRequiredFields(t *testing.T) {
	uc := newUseCases(t)
	ctx := context.Background()

	_, err := uc.Assess(ctx, &model.FeatureInput{Description: "no name"})
	gt.Error(t, err)

	_, err = uc.Assess(ctx, &model.FeatureInput{Name: "no description", Description: "   "})
	gt.Error(t, err)

	_, err = uc.Assess(ctx, nil)
	gt.Error(t, err)
}

func TestAssess_ScenarioRetentionOverLimit(t *testing.T) {
	uc := newUseCases(t)

	input := &model.FeatureInput{
		Name:                 "Support transcript archive",
		Description:          "Stores support call transcripts for quality review",
		ProcessingOperations: []string{"Collection"},
		DataCategories:       []string{"Personal identifiers"},
		Retention:            "12 months",
		CrossBorderTransfers: types.TransferNone,
	}

	result, err := uc.Assess(context.Background(), input)
	gt.NoError(t, err).Required()

	gt.Value(t, result.Decision).Equal(types.DecisionShipWithConditions)
	gt.Array(t, result.Risks).Length(1)
	gt.Value(t, result.Risks[0].ID).Equal(types.RiskID("storage-limitation"))

	retentionReason := false
	for _, r := range result.Reasons {
		if strings.Contains(r, "retention parsed as 360 days") {
			retentionReason = true
		}
	}
	gt.Bool(t, retentionReason).True()

	retentionCondition := false
	for _, c := range result.Conditions {
		if strings.Contains(c, "Reduce retention to 30 days or less") {
			retentionCondition = true
		}
	}
	gt.Bool(t, retentionCondition).True()
}

func TestAssess_ScenarioCleanSubmissionShips(t *testing.T) {
	uc := newUseCases(t)

	input := &model.FeatureInput{
		Name:                 "Static help page",
		Description:          "Renders a static help article",
		CrossBorderTransfers: types.TransferNone,
	}

	result, err := uc.Assess(context.Background(), input)
	gt.NoError(t, err).Required()

	gt.Value(t, result.Decision).Equal(types.DecisionShip)
	gt.Array(t, result.Risks).Length(0)
	gt.Array(t, result.Conditions).Length(0)
}

func TestAssess_ScenarioSpecialCategoryEscalates(t *testing.T) {
	uc := newUseCases(t)

	input := &model.FeatureInput{
		Name:                 "Eligibility scoring",
		Description:          "Scores applications automatically",
		DataCategories:       []string{"Special category data"},
		ProcessingOperations: []string{"Automated decision-making"},
		RiskAppetite:         types.AppetiteLow,
	}

	result, err := uc.Assess(context.Background(), input)
	gt.NoError(t, err).Required()

	gt.Value(t, result.Decision).Equal(types.DecisionEscalate)
	gt.Array(t, result.Risks).Length(2)

	// Highest score first: special category (9) before automation (6).
	gt.Value(t, result.Risks[0].ID).Equal(types.RiskID("special-category-data"))
	gt.Number(t, result.Risks[0].Score).Equal(9)
	gt.Value(t, result.Risks[1].ID).Equal(types.RiskID("automated-decision-making"))
	gt.Number(t, result.Risks[1].Score).Equal(6)
}

func TestAssess_Determinism(t *testing.T) {
	uc := newUseCases(t)

	input := func() *model.FeatureInput {
		return &model.FeatureInput{
			Name:                 "Prompt logger",
			Description:          "Logs prompts for abuse detection",
			DataCategories:       []string{"Free-text prompts"},
			ProcessingOperations: []string{"Logging"},
			Purposes:             []string{"Safety & security"},
			Retention:            "90 days",
			VendorsInvolved:      true,
			CrossBorderTransfers: types.TransferWithSafeguards,
		}
	}

	first, err := uc.Assess(context.Background(), input())
	gt.NoError(t, err).Required()
	second, err := uc.Assess(context.Background(), input())
	gt.NoError(t, err).Required()

	gt.Value(t, second.Decision).Equal(first.Decision)
	gt.Array(t, second.Reasons).Equal(first.Reasons)
	gt.Array(t, second.Conditions).Equal(first.Conditions)
	gt.Array(t, second.Risks).Equal(first.Risks)
	gt.Value(t, second.Markdown).Equal(first.Markdown)
}

func TestAssess_OrderingStability(t *testing.T) {
	// Two equal-severity definitions must appear in catalog order.
	defs := []model.RiskDefinition{
		{
			ID: "earlier-risk", Title: "Earlier risk", GDPRPrinciple: "Accountability",
			Impact: types.RatingMedium, Likelihood: types.RatingMedium,
			Triggers: []model.TriggerClause{{Field: types.TriggerVendors}},
		},
		{
			ID: "later-risk", Title: "Later risk", GDPRPrinciple: "Accountability",
			Impact: types.RatingMedium, Likelihood: types.RatingMedium,
			Triggers: []model.TriggerClause{{Field: types.TriggerCrossBorder}},
		},
	}
	c, err := catalog.New(defs)
	gt.NoError(t, err).Required()
	uc := usecase.New(c)

	input := &model.FeatureInput{
		Name:                 "Vendor sync",
		Description:          "Synchronizes records with a vendor abroad",
		LawfulBasisCandidate: "contract",
		VendorsInvolved:      true,
		CrossBorderTransfers: types.TransferOther,
	}

	result, err := uc.Assess(context.Background(), input)
	gt.NoError(t, err).Required()
	gt.Array(t, result.Risks).Length(2)
	gt.Value(t, result.Risks[0].ID).Equal(types.RiskID("earlier-risk"))
	gt.Value(t, result.Risks[1].ID).Equal(types.RiskID("later-risk"))
}
