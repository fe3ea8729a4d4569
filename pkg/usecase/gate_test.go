package usecase_test

import (
	"strings"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/themis/pkg/domain/model"
	"github.com/secmon-lab/themis/pkg/domain/types"
	"github.com/secmon-lab/themis/pkg/usecase"
)

func matchWithScore(id types.RiskID, score int, mitigations ...string) model.RiskMatch {
	return model.RiskMatch{
		ID:            id,
		Title:         "Risk " + string(id),
		GDPRPrinciple: "Accountability",
		MatchedOn:     "test trigger",
		Score:         score,
		Mitigations:   mitigations,
	}
}

func TestDecide_EscalatePrecedence(t *testing.T) {
	// One severe match must escalate regardless of how many minor matches
	// accompany it.
	ranked := []model.RiskMatch{
		matchWithScore("severe", 9, "Complete a DPIA."),
		matchWithScore("minor-1", 1),
		matchWithScore("minor-2", 1),
		matchWithScore("minor-3", 1),
		matchWithScore("minor-4", 1),
		matchWithScore("minor-5", 1),
	}

	verdict := usecase.Decide(baseInput(), ranked)
	gt.Value(t, verdict.Decision).Equal(types.DecisionEscalate)

	// Escalation must not imply conditional approval.
	gt.Array(t, verdict.Conditions).Length(0)
}

func TestDecide_ModerateSeverityBand(t *testing.T) {
	for _, score := range []int{4, 6} {
		ranked := []model.RiskMatch{matchWithScore("moderate", score, "Document safeguards.")}
		verdict := usecase.Decide(baseInput(), ranked)
		gt.Value(t, verdict.Decision).Equal(types.DecisionShipWithConditions)
		gt.Array(t, verdict.Conditions).Length(1)
	}
}

func TestDecide_ShipOnMinorMatches(t *testing.T) {
	input := baseInput()
	input.LawfulBasisCandidate = "legitimate interests"

	ranked := []model.RiskMatch{matchWithScore("minor", 3)}
	verdict := usecase.Decide(input, ranked)
	gt.Value(t, verdict.Decision).Equal(types.DecisionShip)
	gt.Array(t, verdict.Conditions).Length(0)
}

func TestDecide_ShipOnNoMatches(t *testing.T) {
	verdict := usecase.Decide(baseInput(), nil)
	gt.Value(t, verdict.Decision).Equal(types.DecisionShip)
	gt.Array(t, verdict.Reasons).Length(1)
	gt.Array(t, verdict.Conditions).Length(0)
}

func TestDecide_UncertaintyForcesConditions(t *testing.T) {
	// Unparseable retention is an uncertainty even when no risk matched.
	input := baseInput()
	input.Retention = "as long as needed"

	verdict := usecase.Decide(input, nil)
	gt.Value(t, verdict.Decision).Equal(types.DecisionShipWithConditions)

	found := false
	for _, r := range verdict.Reasons {
		if strings.Contains(r, "could not be parsed") {
			found = true
		}
	}
	gt.Bool(t, found).True()
}

func TestDecide_MissingLawfulBasisOnlyWithMatches(t *testing.T) {
	// No matches: a missing lawful basis alone does not block shipping.
	verdict := usecase.Decide(baseInput(), nil)
	gt.Value(t, verdict.Decision).Equal(types.DecisionShip)

	// With a match, the missing basis becomes an uncertainty reason.
	ranked := []model.RiskMatch{matchWithScore("minor", 2)}
	verdict = usecase.Decide(baseInput(), ranked)
	gt.Value(t, verdict.Decision).Equal(types.DecisionShipWithConditions)

	found := false
	for _, r := range verdict.Reasons {
		if strings.Contains(r, "lawful basis") {
			found = true
		}
	}
	gt.Bool(t, found).True()
}

func TestDecide_LowAppetiteNarrowsBoundary(t *testing.T) {
	input := baseInput()
	input.RiskAppetite = types.AppetiteLow
	input.LawfulBasisCandidate = "consent"

	ranked := []model.RiskMatch{matchWithScore("minor", 2)}
	verdict := usecase.Decide(input, ranked)
	gt.Value(t, verdict.Decision).Equal(types.DecisionShipWithConditions)
}

func TestDecide_HighAppetiteWidensBoundary(t *testing.T) {
	input := baseInput()
	input.RiskAppetite = types.AppetiteHigh
	input.LawfulBasisCandidate = "contract"

	// Severity 4 ships under high appetite when nothing is uncertain.
	ranked := []model.RiskMatch{matchWithScore("moderate", 4, "Document safeguards.")}
	verdict := usecase.Decide(input, ranked)
	gt.Value(t, verdict.Decision).Equal(types.DecisionShip)
	gt.Array(t, verdict.Conditions).Length(0)

	// Severity 6 exceeds the widened boundary.
	ranked = []model.RiskMatch{matchWithScore("serious", 6, "Document safeguards.")}
	verdict = usecase.Decide(input, ranked)
	gt.Value(t, verdict.Decision).Equal(types.DecisionShipWithConditions)

	// An uncertainty cancels the high-appetite shortcut.
	input.Retention = "indefinitely"
	ranked = []model.RiskMatch{matchWithScore("moderate", 4, "Document safeguards.")}
	verdict = usecase.Decide(input, ranked)
	gt.Value(t, verdict.Decision).Equal(types.DecisionShipWithConditions)
}

func TestDecide_ConditionsDeduplicated(t *testing.T) {
	shared := "Verify vendor processor terms."
	ranked := []model.RiskMatch{
		matchWithScore("risk-a", 6, shared, "Reduce retention."),
		matchWithScore("risk-b", 4, shared),
		matchWithScore("risk-c", 2, "Below threshold, must not appear."),
	}

	verdict := usecase.Decide(baseInput(), ranked)
	gt.Value(t, verdict.Decision).Equal(types.DecisionShipWithConditions)
	gt.Array(t, verdict.Conditions).Length(2)
	gt.Value(t, verdict.Conditions[0]).Equal(shared)
	gt.Value(t, verdict.Conditions[1]).Equal("Reduce retention.")
}

func TestDecide_ReasonOrder(t *testing.T) {
	input := baseInput()
	ranked := []model.RiskMatch{matchWithScore("moderate", 4, "Document safeguards.")}

	verdict := usecase.Decide(input, ranked)

	// Tier sentence first, match citations next, uncertainties last.
	gt.Array(t, verdict.Reasons).Length(3)
	gt.Bool(t, strings.HasPrefix(verdict.Reasons[0], "SHIP_WITH_CONDITIONS:")).True()
	gt.Bool(t, strings.Contains(verdict.Reasons[1], "matched on test trigger")).True()
	gt.Bool(t, strings.Contains(verdict.Reasons[2], "lawful basis")).True()
}
