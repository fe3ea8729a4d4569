package usecase

import (
	"sort"

	"github.com/secmon-lab/themis/pkg/domain/model"
	"github.com/secmon-lab/themis/pkg/domain/types"
)

// Severity converts an impact and likelihood pair into a numeric severity
// in the range 1-9 (low=1, medium=2, high=3, multiplied).
func Severity(impact, likelihood types.Rating) int {
	return impact.Weight() * likelihood.Weight()
}

// Rank orders matches by score descending. The sort is stable so that
// equal-severity matches keep their catalog order, which makes the risks
// sequence reproducible for presentation and tests.
func Rank(matches []model.RiskMatch) []model.RiskMatch {
	ranked := append([]model.RiskMatch(nil), matches...)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score > ranked[j].Score
	})
	return ranked
}

// MaxSeverity returns the aggregate feature severity: the maximum single
// match severity. A single severe risk must not be diluted by averaging
// with minor ones.
func MaxSeverity(matches []model.RiskMatch) int {
	max := 0
	for _, m := range matches {
		if m.Score > max {
			max = m.Score
		}
	}
	return max
}
