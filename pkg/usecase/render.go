package usecase

import (
	"fmt"
	"strings"
	"time"

	"github.com/secmon-lab/themis/pkg/domain/model"
)

const reportDisclaimer = "_This report was generated by a deterministic policy check. It is not legal advice; consult the privacy team for authoritative guidance._"

type renderConfig struct {
	generatedAt *time.Time
}

type RenderOption func(*renderConfig)

// WithTimestamp embeds a generation timestamp in the report. Without it
// the report contains no time-dependent content, so identical inputs
// render byte-identical documents.
func WithTimestamp(t time.Time) RenderOption {
	return func(c *renderConfig) {
		c.generatedAt = &t
	}
}

// Render assembles the audit document for an assessment. It is a pure
// function of its arguments: sections appear in fixed order and empty
// sections are omitted rather than rendered as "None".
func Render(input *model.FeatureInput, result *model.AssessmentResult, opts ...RenderOption) string {
	var cfg renderConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	var b strings.Builder

	b.WriteString("# Feature Privacy Risk Assessment\n\n")

	b.WriteString("## Executive summary\n\n")
	fmt.Fprintf(&b, "**Feature:** %s\n\n", input.Name)
	fmt.Fprintf(&b, "**Decision:** %s\n\n", result.Decision)
	if len(result.Reasons) > 0 {
		fmt.Fprintf(&b, "%s\n\n", result.Reasons[0])
	}
	if cfg.generatedAt != nil {
		fmt.Fprintf(&b, "_Generated at %s_\n\n", cfg.generatedAt.UTC().Format(time.RFC3339))
	}

	if len(result.Reasons) > 0 {
		b.WriteString("## Key findings\n\n")
		for _, reason := range result.Reasons {
			fmt.Fprintf(&b, "- %s\n", reason)
		}
		b.WriteString("\n")
	}

	if len(result.Risks) > 0 {
		b.WriteString("## Identified risks\n\n")
		b.WriteString("| Risk | GDPR principle | Impact | Likelihood | Matched on |\n")
		b.WriteString("|------|----------------|--------|------------|------------|\n")
		for _, r := range result.Risks {
			fmt.Fprintf(&b, "| %s | %s | %s | %s | %s |\n",
				r.Title, r.GDPRPrinciple, r.Impact, r.Likelihood, r.MatchedOn)
		}
		b.WriteString("\n")
	}

	if len(result.Conditions) > 0 {
		b.WriteString("## Conditions\n\n")
		for _, c := range result.Conditions {
			fmt.Fprintf(&b, "- %s\n", c)
		}
		b.WriteString("\n")
	}

	b.WriteString("---\n\n")
	b.WriteString(reportDisclaimer)
	b.WriteString("\n")

	return b.String()
}
