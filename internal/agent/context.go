package agent

import (
	"fmt"
	"strings"
)

// OrganizationContext identifies whose numbers the assistant is seeing.
type OrganizationContext struct {
	Name                  string  `json:"name"`
	Industry              string  `json:"industry,omitempty"`
	AnnualMarketingBudget float64 `json:"annual_marketing_budget,omitempty"`
}

// CampaignContext is one campaign line in the rendered context. A nil
// Score renders as N/A rather than a misleading zero.
type CampaignContext struct {
	Name   string   `json:"name"`
	Status string   `json:"status"`
	Score  *float64 `json:"overall_score,omitempty"`
}

// ChannelContext is one channel line in the rendered context.
type ChannelContext struct {
	Name            string   `json:"name"`
	ROAS            float64  `json:"roas"`
	EfficiencyScore *float64 `json:"efficiency_score,omitempty"`
}

// BenchmarkContext summarizes the latest benchmark report.
type BenchmarkContext struct {
	OverallScore float64  `json:"overall_score"`
	Grade        string   `json:"grade"`
	Strengths    []string `json:"strengths,omitempty"`
}

// ContextData is the business snapshot rendered into the system prompt.
// Every field is optional; absent sections are simply omitted.
type ContextData struct {
	Organization *OrganizationContext `json:"organization,omitempty"`
	Campaigns    []CampaignContext    `json:"campaigns,omitempty"`
	Channels     []ChannelContext     `json:"channels,omitempty"`
	Metrics      map[string]float64   `json:"metrics,omitempty"`
	Benchmark    *BenchmarkContext    `json:"benchmark,omitempty"`
}

// FormatContext renders the snapshot as the markdown block appended to
// the persona prompt. Campaign and channel lists are truncated to five
// entries to keep the prompt bounded.
func FormatContext(ctx ContextData) string {
	var parts []string

	if org := ctx.Organization; org != nil {
		parts = append(parts, fmt.Sprintf("**Organization**: %s", org.Name))
		if org.Industry != "" {
			parts = append(parts, fmt.Sprintf("**Industry**: %s", org.Industry))
		}
		if org.AnnualMarketingBudget > 0 {
			parts = append(parts, fmt.Sprintf("**Annual Marketing Budget**: $%.0f", org.AnnualMarketingBudget))
		}
	}

	if len(ctx.Campaigns) > 0 {
		parts = append(parts, fmt.Sprintf("\n**Active Campaigns**: %d", len(ctx.Campaigns)))
		for i, c := range ctx.Campaigns {
			if i == 5 {
				break
			}
			parts = append(parts, fmt.Sprintf("- %s: %s (Score: %s)", c.Name, c.Status, formatOptionalScore(c.Score)))
		}
	}

	if len(ctx.Channels) > 0 {
		parts = append(parts, fmt.Sprintf("\n**Marketing Channels**: %d", len(ctx.Channels)))
		for i, ch := range ctx.Channels {
			if i == 5 {
				break
			}
			parts = append(parts, fmt.Sprintf("- %s: ROAS %.0f%%, Score: %s", ch.Name, ch.ROAS, formatOptionalScore(ch.EfficiencyScore)))
		}
	}

	if m := ctx.Metrics; len(m) > 0 {
		parts = append(parts, "\n**Key Metrics**:")
		if v, ok := m["cac"]; ok && v != 0 {
			parts = append(parts, fmt.Sprintf("- CAC: $%.2f", v))
		}
		if v, ok := m["clv"]; ok && v != 0 {
			parts = append(parts, fmt.Sprintf("- CLV: $%.2f", v))
		}
		if v, ok := m["roas"]; ok && v != 0 {
			parts = append(parts, fmt.Sprintf("- ROAS: %.0f%%", v))
		}
		if v, ok := m["marketing_roi"]; ok && v != 0 {
			parts = append(parts, fmt.Sprintf("- Marketing ROI: %.0f%%", v))
		}
	}

	if b := ctx.Benchmark; b != nil {
		parts = append(parts, "\n**Benchmark Summary**:")
		parts = append(parts, fmt.Sprintf("- Overall Score: %.1f", b.OverallScore))
		grade := b.Grade
		if grade == "" {
			grade = "N/A"
		}
		parts = append(parts, fmt.Sprintf("- Grade: %s", grade))
		if len(b.Strengths) > 0 {
			strengths := b.Strengths
			if len(strengths) > 3 {
				strengths = strengths[:3]
			}
			parts = append(parts, fmt.Sprintf("- Strengths: %s", strings.Join(strengths, ", ")))
		}
	}

	if len(parts) == 0 {
		return "No additional context available."
	}
	return strings.Join(parts, "\n")
}

func formatOptionalScore(score *float64) string {
	if score == nil {
		return "N/A"
	}
	return fmt.Sprintf("%.1f", *score)
}
