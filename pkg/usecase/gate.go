package usecase

import (
	"fmt"

	"github.com/secmon-lab/themis/pkg/domain/model"
	"github.com/secmon-lab/themis/pkg/domain/types"
)

// Severity thresholds of the decision gate.
const (
	// EscalationSeverity is the aggregate severity at which an unmitigated
	// assessment escalates.
	EscalationSeverity = 7
	// ConditionsSeverity is the severity from which a match contributes its
	// mitigations as shipping conditions.
	ConditionsSeverity = 4
)

// Verdict is the decision gate output prior to rendering.
type Verdict struct {
	Decision   types.Decision
	Reasons    []string
	Conditions []string
}

// gateContext carries the facts the gate rules are evaluated against.
type gateContext struct {
	maxSeverity   int
	matchCount    int
	appetite      types.RiskAppetite
	uncertainties []string
}

// gateRule is one (predicate, outcome) pair of the precedence-ordered
// decision policy. Rules are evaluated in order and the first applicable
// rule wins, which keeps the policy auditable clause by clause.
type gateRule struct {
	name     string
	decision types.Decision
	applies  func(gateContext) bool
	reason   func(gateContext) string
}

var gateRules = []gateRule{
	{
		name:     "escalate-severe-unmitigated",
		decision: types.DecisionEscalate,
		applies: func(g gateContext) bool {
			return g.maxSeverity >= EscalationSeverity
		},
		reason: func(g gateContext) string {
			return fmt.Sprintf("ESCALATE: aggregate severity %d reaches the escalation threshold of %d with no applied safeguards.", g.maxSeverity, EscalationSeverity)
		},
	},
	{
		name:     "conditions-low-appetite",
		decision: types.DecisionShipWithConditions,
		applies: func(g gateContext) bool {
			return g.appetite == types.AppetiteLow && g.maxSeverity >= 2
		},
		reason: func(g gateContext) string {
			return fmt.Sprintf("SHIP_WITH_CONDITIONS: low risk appetite narrows the shipping boundary at aggregate severity %d.", g.maxSeverity)
		},
	},
	{
		name:     "ship-high-appetite",
		decision: types.DecisionShip,
		applies: func(g gateContext) bool {
			return g.appetite == types.AppetiteHigh && g.maxSeverity <= 5 && len(g.uncertainties) == 0
		},
		reason: func(g gateContext) string {
			return fmt.Sprintf("SHIP: high risk appetite permits aggregate severity %d with no outstanding uncertainty.", g.maxSeverity)
		},
	},
	{
		name:     "conditions-moderate-severity",
		decision: types.DecisionShipWithConditions,
		applies: func(g gateContext) bool {
			return g.maxSeverity >= ConditionsSeverity
		},
		reason: func(g gateContext) string {
			return fmt.Sprintf("SHIP_WITH_CONDITIONS: aggregate severity %d requires documented safeguards before shipping.", g.maxSeverity)
		},
	},
	{
		name:     "conditions-uncertainty",
		decision: types.DecisionShipWithConditions,
		applies: func(g gateContext) bool {
			return len(g.uncertainties) > 0
		},
		reason: func(g gateContext) string {
			return "SHIP_WITH_CONDITIONS: unresolved uncertainty requires clarification before shipping."
		},
	},
	{
		name:     "ship-default",
		decision: types.DecisionShip,
		applies: func(gateContext) bool {
			return true
		},
		reason: func(g gateContext) string {
			if g.matchCount == 0 {
				return "SHIP: no risk triggers matched the declared inputs."
			}
			return fmt.Sprintf("SHIP: all matched risks are at or below severity 3 (aggregate %d) with no outstanding uncertainty.", g.maxSeverity)
		},
	},
}

// Uncertainties collects the input ambiguities that must influence the
// decision conservatively. Ambiguity is never resolved in the permissive
// direction.
func Uncertainties(input *model.FeatureInput, matches []model.RiskMatch) []string {
	var out []string

	if input.Retention != "" {
		if _, ok := ParseRetentionDays(input.Retention); !ok {
			out = append(out, fmt.Sprintf("Retention %q could not be parsed; it is treated as unspecified and must be confirmed.", input.Retention))
		}
	}

	// A missing lawful basis only matters once some risky processing was
	// actually matched; an empty submission with no matches ships clean.
	if len(matches) > 0 && !input.HasLawfulBasis() {
		out = append(out, "No lawful basis candidate is declared for the matched processing; define and document one before launch.")
	}

	if input.RiskAppetite == types.AppetiteLow && len(matches) > 0 {
		out = append(out, "Risk appetite is declared low while risks matched; conservative handling applies.")
	}

	return out
}

// Decide maps ranked matches and input context onto one of the three
// terminal decisions via the precedence-ordered rule table, and assembles
// the reason and condition lists.
func Decide(input *model.FeatureInput, ranked []model.RiskMatch) Verdict {
	uncertainties := Uncertainties(input, ranked)
	gctx := gateContext{
		maxSeverity:   MaxSeverity(ranked),
		matchCount:    len(ranked),
		appetite:      input.RiskAppetite,
		uncertainties: uncertainties,
	}

	var decision types.Decision
	var tierReason string
	for _, rule := range gateRules {
		if rule.applies(gctx) {
			decision = rule.decision
			tierReason = rule.reason(gctx)
			break
		}
	}

	reasons := make([]string, 0, 1+len(ranked)+len(uncertainties))
	reasons = append(reasons, tierReason)
	for _, m := range ranked {
		reasons = append(reasons, fmt.Sprintf("%s: matched on %s (GDPR principle: %s).", m.Title, m.MatchedOn, m.GDPRPrinciple))
	}
	reasons = append(reasons, uncertainties...)

	return Verdict{
		Decision:   decision,
		Reasons:    reasons,
		Conditions: conditionsFor(decision, ranked),
	}
}

// conditionsFor builds the deduplicated union of mitigations of every
// match at or above ConditionsSeverity, preserving first-seen order.
// A SHIP decision carries no conditions; an escalation must not imply
// conditional approval, so it carries none either.
func conditionsFor(decision types.Decision, ranked []model.RiskMatch) []string {
	if decision != types.DecisionShipWithConditions {
		return []string{}
	}

	seen := make(map[string]bool)
	conditions := []string{}
	for _, m := range ranked {
		if m.Score < ConditionsSeverity {
			continue
		}
		for _, mit := range m.Mitigations {
			if seen[mit] {
				continue
			}
			seen[mit] = true
			conditions = append(conditions, mit)
		}
	}
	return conditions
}
