package catalog

import (
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/themis/pkg/domain/model"
)

// Catalog is a read-only ordered collection of risk definitions. It is
// built once at process start; the constructor deep-copies its input and
// accessors hand out copies, so no caller can mutate loaded policy data.
type Catalog struct {
	defs []model.RiskDefinition
}

// New validates the definitions and builds an immutable catalog.
// It fails on the first malformed entry: a partial catalog must never
// silently produce a permissive assessment.
func New(defs []model.RiskDefinition) (*Catalog, error) {
	seen := make(map[string]bool, len(defs))
	copied := make([]model.RiskDefinition, 0, len(defs))

	for _, def := range defs {
		if err := def.Validate(); err != nil {
			return nil, goerr.Wrap(err, "risk definition validation failed")
		}
		if seen[def.ID.String()] {
			return nil, goerr.Wrap(model.ErrDuplicateRiskID, "catalog load failed",
				goerr.V(model.RiskIDKey, def.ID))
		}
		seen[def.ID.String()] = true
		copied = append(copied, def.Clone())
	}

	return &Catalog{defs: copied}, nil
}

// Builtin returns a catalog with the default risk policy.
func Builtin() (*Catalog, error) {
	return New(BuiltinDefinitions())
}

// Len returns the number of definitions in the catalog
func (c *Catalog) Len() int {
	return len(c.defs)
}

// Definitions returns a copy of the definitions in catalog order
func (c *Catalog) Definitions() []model.RiskDefinition {
	out := make([]model.RiskDefinition, len(c.defs))
	for i, def := range c.defs {
		out[i] = def.Clone()
	}
	return out
}
