package usecase

import (
	"context"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/themis/pkg/domain/model"
)

// Assess runs one feature submission through the decision engine:
// match against the catalog, score and rank, gate, render. The call is
// side-effect free and holds no state across invocations.
func (uc *UseCases) Assess(ctx context.Context, input *model.FeatureInput) (*model.AssessmentResult, error) {
	if input == nil {
		return nil, goerr.New("feature input is required")
	}
	if err := input.Validate(); err != nil {
		return nil, goerr.Wrap(err, "invalid feature input")
	}

	ranked := Rank(Match(uc.catalog, input))
	verdict := Decide(input, ranked)

	if ranked == nil {
		ranked = []model.RiskMatch{}
	}

	result := &model.AssessmentResult{
		Decision:   verdict.Decision,
		Reasons:    verdict.Reasons,
		Conditions: verdict.Conditions,
		Risks:      ranked,
	}

	var opts []RenderOption
	if uc.now != nil {
		opts = append(opts, WithTimestamp(uc.now()))
	}
	result.Markdown = Render(input, result, opts...)

	return result, nil
}
