package config

import (
	"os"

	"github.com/m-mizutani/goerr/v2"
	"github.com/pelletier/go-toml/v2"
	"github.com/secmon-lab/themis/pkg/catalog"
	"github.com/secmon-lab/themis/pkg/domain/model"
	"github.com/secmon-lab/themis/pkg/domain/types"
	"github.com/urfave/cli/v3"
)

// Policy holds the risk catalog policy file location. When no path is
// given the built-in catalog is used.
type Policy struct {
	path string
}

func (p *Policy) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "policy",
			Usage:       "Path to risk catalog policy file (TOML). Uses the built-in catalog when omitted",
			Sources:     cli.EnvVars("THEMIS_POLICY"),
			Destination: &p.path,
		},
	}
}

func (p *Policy) Path() string {
	return p.path
}

// PolicyFile is the TOML representation of a risk catalog
type PolicyFile struct {
	Risks []PolicyRisk `toml:"risk"`
}

// PolicyRisk represents one risk definition in a policy file
type PolicyRisk struct {
	ID            string          `toml:"id"`
	Title         string          `toml:"title"`
	Description   string          `toml:"description"`
	GDPRPrinciple string          `toml:"gdpr_principle"`
	Impact        string          `toml:"impact"`
	Likelihood    string          `toml:"likelihood"`
	Mitigations   []string        `toml:"mitigations"`
	Triggers      []PolicyTrigger `toml:"trigger"`
}

// PolicyTrigger represents one trigger clause of a risk definition
type PolicyTrigger struct {
	Field  string   `toml:"field"`
	Values []string `toml:"values"`
}

// ToDefinition converts a policy risk to the domain risk definition
func (r *PolicyRisk) ToDefinition() model.RiskDefinition {
	triggers := make([]model.TriggerClause, len(r.Triggers))
	for i, trg := range r.Triggers {
		triggers[i] = model.TriggerClause{
			Field:  types.TriggerField(trg.Field),
			Values: trg.Values,
		}
	}

	return model.RiskDefinition{
		ID:            types.RiskID(r.ID),
		Title:         r.Title,
		Description:   r.Description,
		GDPRPrinciple: r.GDPRPrinciple,
		Impact:        types.Rating(r.Impact),
		Likelihood:    types.Rating(r.Likelihood),
		Triggers:      triggers,
		Mitigations:   r.Mitigations,
	}
}

// LoadPolicyFile loads and parses a risk catalog policy from a TOML file
func LoadPolicyFile(path string) (*PolicyFile, error) {
	// #nosec G304 - path is expected to be provided by CLI argument
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, goerr.Wrap(ErrPolicyNotFound, "failed to read policy file", goerr.V(PolicyPathKey, path))
		}
		return nil, goerr.Wrap(err, "failed to read policy file", goerr.V(PolicyPathKey, path))
	}

	var policy PolicyFile
	if err := toml.Unmarshal(data, &policy); err != nil {
		return nil, goerr.Wrap(err, "failed to parse TOML policy", goerr.V(PolicyPathKey, path))
	}

	if len(policy.Risks) == 0 {
		return nil, goerr.Wrap(ErrEmptyPolicy, "policy validation failed", goerr.V(PolicyPathKey, path))
	}

	return &policy, nil
}

// Configure builds the risk catalog from the configured policy file,
// falling back to the built-in catalog when no path is set.
func (p *Policy) Configure() (*catalog.Catalog, error) {
	if p.path == "" {
		return catalog.Builtin()
	}

	policy, err := LoadPolicyFile(p.path)
	if err != nil {
		return nil, err
	}

	defs := make([]model.RiskDefinition, len(policy.Risks))
	for i, risk := range policy.Risks {
		defs[i] = risk.ToDefinition()
	}

	cat, err := catalog.New(defs)
	if err != nil {
		return nil, goerr.Wrap(err, "policy validation failed", goerr.V(PolicyPathKey, p.path))
	}

	return cat, nil
}
