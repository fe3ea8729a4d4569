package usecase

import (
	"fmt"
	"strings"

	"github.com/secmon-lab/themis/pkg/catalog"
	"github.com/secmon-lab/themis/pkg/domain/model"
	"github.com/secmon-lab/themis/pkg/domain/types"
)

// Keyword sets for the compound content-logging trigger. Matching is
// case-insensitive substring over the declared input sets only; the engine
// never interprets free-text descriptions.
var (
	loggingOperationKeywords = []string{"log"}
	freeTextCategoryKeywords = []string{"content", "prompt", "free-text", "free text", "behavio"}
)

// Match evaluates the feature input against every catalog definition in
// catalog order. A definition matches only when every one of its trigger
// clauses is satisfied (cross-clause AND); within a clause any accepted
// value counts (clause-internal OR). Each match records the concrete
// clause(s) that fired so the decision stays traceable.
func Match(c *catalog.Catalog, input *model.FeatureInput) []model.RiskMatch {
	var matches []model.RiskMatch

	for _, def := range c.Definitions() {
		var firedOn []string
		matched := true

		for _, clause := range def.Triggers {
			explanation, fired := evaluateClause(clause, input)
			if !fired {
				matched = false
				break
			}
			firedOn = append(firedOn, explanation)
		}

		if !matched {
			continue
		}

		matches = append(matches, model.RiskMatch{
			ID:            def.ID,
			Title:         def.Title,
			Description:   def.Description,
			GDPRPrinciple: def.GDPRPrinciple,
			Impact:        def.Impact,
			Likelihood:    def.Likelihood,
			MatchedOn:     strings.Join(firedOn, "; "),
			Score:         Severity(def.Impact, def.Likelihood),
			Mitigations:   def.Mitigations,
		})
	}

	return matches
}

// evaluateClause checks a single trigger clause against the input and, when
// it fires, explains what fired in concrete terms.
func evaluateClause(clause model.TriggerClause, input *model.FeatureInput) (string, bool) {
	switch clause.Field {
	case types.TriggerCrossBorder:
		if input.CrossBorderTransfers == "" || input.CrossBorderTransfers.IsNone() {
			return "", false
		}
		return fmt.Sprintf("cross-border transfers declared as %s", input.CrossBorderTransfers), true

	case types.TriggerVendors:
		if !input.VendorsInvolved {
			return "", false
		}
		return "third-party vendors are involved", true

	case types.TriggerRetention:
		days, ok := ParseRetentionDays(input.Retention)
		if !ok || days <= RetentionThresholdDays {
			return "", false
		}
		return fmt.Sprintf("retention parsed as %d days, exceeding the %d day limit", days, RetentionThresholdDays), true

	case types.TriggerContentLogging:
		op, opHit := firstKeywordHit(input.ProcessingOperations, loggingOperationKeywords)
		cat, catHit := firstKeywordHit(input.DataCategories, freeTextCategoryKeywords)
		if !opHit || !catHit {
			return "", false
		}
		return fmt.Sprintf("free-text category %q combined with logging operation %q", cat, op), true

	default:
		items := inputSet(clause.Field, input)
		item, hit := firstKeywordHit(items, clause.Values)
		if !hit {
			return "", false
		}
		return fmt.Sprintf("%s include %q", fieldLabel(clause.Field), item), true
	}
}

// inputSet returns the input value set corresponding to a set-membership
// trigger field.
func inputSet(field types.TriggerField, input *model.FeatureInput) []string {
	switch field {
	case types.TriggerDataCategories:
		return input.DataCategories
	case types.TriggerProcessingOperations:
		return input.ProcessingOperations
	case types.TriggerJurisdictions:
		return input.Jurisdictions
	case types.TriggerDataSubjects:
		return input.DataSubjects
	case types.TriggerPurposes:
		return input.Purposes
	default:
		return nil
	}
}

func fieldLabel(field types.TriggerField) string {
	switch field {
	case types.TriggerDataCategories:
		return "data categories"
	case types.TriggerProcessingOperations:
		return "processing operations"
	case types.TriggerJurisdictions:
		return "jurisdictions"
	case types.TriggerDataSubjects:
		return "data subjects"
	case types.TriggerPurposes:
		return "purposes"
	default:
		return field.String()
	}
}

// firstKeywordHit returns the first input item containing any of the
// keywords, case-insensitively. Scanning items in declaration order keeps
// the matched-on explanation stable.
func firstKeywordHit(items, keywords []string) (string, bool) {
	for _, item := range items {
		lower := strings.ToLower(item)
		for _, kw := range keywords {
			if strings.Contains(lower, strings.ToLower(kw)) {
				return item, true
			}
		}
	}
	return "", false
}
