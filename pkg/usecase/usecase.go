package usecase

import (
	"time"

	"github.com/secmon-lab/themis/pkg/catalog"
)

// UseCases bundles the decision engine with its immutable catalog.
// The engine is a pure computation over its inputs; concurrent Assess
// calls share the catalog without coordination.
type UseCases struct {
	catalog *catalog.Catalog
	now     func() time.Time
}

type Option func(*UseCases)

// WithGeneratedAt supplies a clock for the report timestamp. When absent,
// reports carry no timestamp so identical inputs render byte-identical
// output.
func WithGeneratedAt(now func() time.Time) Option {
	return func(uc *UseCases) {
		uc.now = now
	}
}

func New(c *catalog.Catalog, opts ...Option) *UseCases {
	uc := &UseCases{
		catalog: c,
	}

	for _, opt := range opts {
		opt(uc)
	}

	return uc
}
