package catalog

import (
	"github.com/secmon-lab/themis/pkg/domain/model"
	"github.com/secmon-lab/themis/pkg/domain/types"
)

// BuiltinDefinitions returns the default risk policy used when no policy
// file is supplied. Catalog order is significant: ranking ties are broken
// by position, so more consequential themes come first.
func BuiltinDefinitions() []model.RiskDefinition {
	return []model.RiskDefinition{
		{
			ID:            "special-category-data",
			Title:         "Special category data",
			Description:   "Processing special category data (including proxy categories such as biometric or health data) requires an Article 9 condition and heightened safeguards.",
			GDPRPrinciple: "Lawfulness, fairness and transparency; data minimisation",
			Impact:        types.RatingHigh,
			Likelihood:    types.RatingHigh,
			Triggers: []model.TriggerClause{
				{Field: types.TriggerDataCategories, Values: []string{
					"special category", "biometric", "health", "medical", "genetic",
					"religion", "political", "sexual", "union", "race", "ethnic",
				}},
			},
			Mitigations: []string{
				"Complete a DPIA and identify an explicit Article 9 condition before any processing of special category data.",
				"Minimise and segregate special category data with strict access controls.",
			},
		},
		{
			ID:            "minors-in-scope",
			Title:         "Children and minors in scope",
			Description:   "Data subjects include children or minors; heightened safeguards and governance review apply.",
			GDPRPrinciple: "Fairness; lawfulness",
			Impact:        types.RatingHigh,
			Likelihood:    types.RatingHigh,
			Triggers: []model.TriggerClause{
				{Field: types.TriggerDataSubjects, Values: []string{"child", "children", "minor"}},
			},
			Mitigations: []string{
				"Implement age assurance and child-appropriate transparency measures.",
				"Obtain governance sign-off for any processing of children's data.",
			},
		},
		{
			ID:            "automated-decision-making",
			Title:         "Automated decision-making",
			Description:   "Automated decisions require clear explanations, meaningful human oversight, and a route to contest outcomes.",
			GDPRPrinciple: "Fairness; transparency; accountability",
			Impact:        types.RatingHigh,
			Likelihood:    types.RatingMedium,
			Triggers: []model.TriggerClause{
				{Field: types.TriggerProcessingOperations, Values: []string{"automated decision", "profiling"}},
			},
			Mitigations: []string{
				"Document the role of automation and implement meaningful human oversight in practice.",
				"Provide transparency about automation and a route to contest outcomes or request human review.",
				"Implement monitoring and periodic review to detect drift, bias, or unexpected impacts.",
			},
		},
		{
			ID:            "storage-limitation",
			Title:         "Storage limitation",
			Description:   "Retention beyond the 30 day policy threshold increases exposure and requires a necessity and proportionality justification.",
			GDPRPrinciple: "Storage limitation",
			Impact:        types.RatingMedium,
			Likelihood:    types.RatingHigh,
			Triggers: []model.TriggerClause{
				{Field: types.TriggerRetention},
			},
			Mitigations: []string{
				"Reduce retention to 30 days or less, or document a necessity and proportionality justification with safeguards such as aggregation and minimisation.",
			},
		},
		{
			ID:            "content-sensitivity",
			Title:         "Content sensitivity (free-text logging)",
			Description:   "Logging free-text inputs increases the likelihood of capturing sensitive or confidential information and requires minimisation and access controls.",
			GDPRPrinciple: "Data minimisation; integrity and confidentiality",
			Impact:        types.RatingMedium,
			Likelihood:    types.RatingMedium,
			Triggers: []model.TriggerClause{
				{Field: types.TriggerContentLogging},
			},
			Mitigations: []string{
				"Implement content logging minimisation: log only what is necessary and avoid storing raw prompts where possible.",
				"Apply redaction and PII filtering for logs and enforce strict access controls.",
				"Document the purposes for logging and communicate them transparently to users.",
			},
		},
		{
			ID:            "training-reuse",
			Title:         "Training or reuse of user content",
			Description:   "Using user-provided content to train or improve a model changes governance expectations and requires explicit controls and transparency.",
			GDPRPrinciple: "Purpose limitation; transparency; data minimisation",
			Impact:        types.RatingMedium,
			Likelihood:    types.RatingMedium,
			Triggers: []model.TriggerClause{
				{Field: types.TriggerProcessingOperations, Values: []string{"training", "fine-tun", "model improvement"}},
			},
			Mitigations: []string{
				"Make training and reuse transparent in user-facing documentation, including consequences.",
				"Implement an opt-out, or obtain consent where required by internal policy, for training on user content.",
				"Minimise and protect training datasets: exclude sensitive content by default and apply access controls.",
			},
		},
		{
			ID:            "vendor-processor",
			Title:         "Third-party processor accountability",
			Description:   "Processor terms must cover instructions, security, retention, sub-processors, and auditability.",
			GDPRPrinciple: "Accountability; integrity and confidentiality",
			Impact:        types.RatingMedium,
			Likelihood:    types.RatingMedium,
			Triggers: []model.TriggerClause{
				{Field: types.TriggerVendors},
			},
			Mitigations: []string{
				"Verify vendor processor terms, sub-processor controls, retention commitments, and security due diligence.",
			},
		},
		{
			ID:            "international-transfers",
			Title:         "International transfers",
			Description:   "Cross-border transfers require an appropriate mechanism and, where applicable, a transfer risk assessment.",
			GDPRPrinciple: "Lawfulness; accountability",
			Impact:        types.RatingMedium,
			Likelihood:    types.RatingMedium,
			Triggers: []model.TriggerClause{
				{Field: types.TriggerCrossBorder},
			},
			Mitigations: []string{
				"Confirm and document the transfer mechanism (for example SCCs) and complete a transfer risk assessment where required.",
			},
		},
	}
}
