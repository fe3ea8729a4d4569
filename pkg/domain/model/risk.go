package model

import (
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/themis/pkg/domain/types"
)

// TriggerClause is a single predicate of a risk definition: a feature input
// field plus the value set that satisfies it. Clauses on special fields
// (cross-border, vendors, retention, content logging) carry no values and
// are evaluated by dedicated predicates in the matcher.
type TriggerClause struct {
	Field  types.TriggerField
	Values []string
}

// Validate checks if the trigger clause is valid
func (c *TriggerClause) Validate() error {
	if !c.Field.IsValid() {
		return goerr.New("unknown trigger field", goerr.V(FieldKey, c.Field))
	}
	if c.Field.RequiresValues() && len(c.Values) == 0 {
		return goerr.New("trigger clause requires accepted values", goerr.V(FieldKey, c.Field))
	}
	return nil
}

// RiskDefinition is one entry of the risk catalog. Definitions are loaded
// once at process start and never mutated afterwards.
type RiskDefinition struct {
	ID            types.RiskID
	Title         string
	Description   string
	GDPRPrinciple string
	Impact        types.Rating
	Likelihood    types.Rating
	Triggers      []TriggerClause
	Mitigations   []string
}

// Validate checks the catalog invariants of a single definition: valid ID,
// valid ratings, and a non-empty trigger set (a risk that can never match
// is a loading error, not a silent no-op).
func (r *RiskDefinition) Validate() error {
	if err := r.ID.Validate(); err != nil {
		return goerr.Wrap(err, "invalid risk ID")
	}
	if r.Title == "" {
		return goerr.Wrap(ErrInvalidDefinition, "risk title is required", goerr.V(RiskIDKey, r.ID))
	}
	if err := r.Impact.Validate(); err != nil {
		return goerr.Wrap(err, "invalid impact", goerr.V(RiskIDKey, r.ID))
	}
	if err := r.Likelihood.Validate(); err != nil {
		return goerr.Wrap(err, "invalid likelihood", goerr.V(RiskIDKey, r.ID))
	}
	if len(r.Triggers) == 0 {
		return goerr.Wrap(ErrEmptyTriggers, "risk definition has no triggers", goerr.V(RiskIDKey, r.ID))
	}
	for _, clause := range r.Triggers {
		if err := clause.Validate(); err != nil {
			return goerr.Wrap(err, "invalid trigger clause", goerr.V(RiskIDKey, r.ID))
		}
	}
	return nil
}

// Clone returns a deep copy of the definition so catalog consumers can
// never reach back into loaded policy data.
func (r RiskDefinition) Clone() RiskDefinition {
	c := r
	c.Triggers = make([]TriggerClause, len(r.Triggers))
	for i, t := range r.Triggers {
		c.Triggers[i] = TriggerClause{
			Field:  t.Field,
			Values: append([]string(nil), t.Values...),
		}
	}
	c.Mitigations = append([]string(nil), r.Mitigations...)
	return c
}

// RiskMatch is produced per matching RiskDefinition. It is created fresh
// per assessment and never mutated after creation.
type RiskMatch struct {
	ID            types.RiskID `json:"id"`
	Title         string       `json:"title"`
	Description   string       `json:"description"`
	GDPRPrinciple string       `json:"gdpr_principle"`
	Impact        types.Rating `json:"impact"`
	Likelihood    types.Rating `json:"likelihood"`
	MatchedOn     string       `json:"matched_on"`
	Score         int          `json:"score"`

	// Mitigations are carried for the decision gate but are not part of
	// the serialized risk entry; required safeguards surface through the
	// result's conditions list instead.
	Mitigations []string `json:"-"`
}
