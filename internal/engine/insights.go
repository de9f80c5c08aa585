package engine

import (
	"fmt"
	"strings"
)

// maxInsights caps the advisory list at the most important entries
const maxInsights = 6

// InsightComposer renders an assessment into ordered human-readable strings.
// Purely advisory: rendering problems degrade to an empty list, never an
// error, and the list has no effect on the verdict.
type InsightComposer struct{}

// NewInsightComposer creates an insight composer
func NewInsightComposer() *InsightComposer {
	return &InsightComposer{}
}

// Compose renders critical failures, below-threshold pillars, the strongest
// pillar, and metric highlights, in that order.
func (c *InsightComposer) Compose(a Assessment, scores PillarScores, m RawMetrics) (insights []string) {
	defer func() {
		if r := recover(); r != nil {
			insights = nil
		}
	}()

	// Critical failures first, in rule order
	for _, f := range a.CriticalFailures {
		insights = append(insights, "Critical: "+f.Message)
	}

	// Pillars that missed their stage threshold
	for _, p := range a.BelowThreshold {
		insights = append(insights, fmt.Sprintf("%s score %.2f is below the %.2f minimum for this stage",
			pillarLabel(p), scores.Score(p), a.StageThresholds[p]))
	}

	// Strongest pillar, when it actually stands out
	strongest := scores.Strongest()
	if scores.Score(strongest) >= 0.7 {
		insights = append(insights, fmt.Sprintf("%s is the strongest pillar at %.2f", pillarLabel(strongest), scores.Score(strongest)))
	}

	insights = append(insights, c.metricHighlights(m)...)

	if len(insights) > maxInsights {
		insights = insights[:maxInsights]
	}
	return insights
}

// metricHighlights surfaces notable raw metrics that are not already covered
// by a critical failure
func (c *InsightComposer) metricHighlights(m RawMetrics) []string {
	var highlights []string

	if m.RunwayMonths >= 3 && m.RunwayMonths < 6 {
		highlights = append(highlights, "Less than 6 months runway - plan the next raise now")
	} else if m.RunwayMonths >= 6 && m.RunwayMonths < 12 {
		highlights = append(highlights, "Runway below 12 months - prepare the next raise")
	}

	if m.BurnMultiple > 2 && m.BurnMultiple <= 5 {
		highlights = append(highlights, fmt.Sprintf("Burn multiple of %.1f - improve capital efficiency", m.BurnMultiple))
	}

	if m.RevenueGrowthPct > 150 {
		highlights = append(highlights, fmt.Sprintf("Hypergrowth: %.0f%% YoY revenue growth", m.RevenueGrowthPct))
	} else if m.RevenueGrowthPct > 100 {
		highlights = append(highlights, fmt.Sprintf("Strong growth: %.0f%% YoY revenue growth", m.RevenueGrowthPct))
	}

	if m.NetDollarRetentionPct > 120 {
		highlights = append(highlights, fmt.Sprintf("Excellent net dollar retention at %.0f%% - strong expansion revenue", m.NetDollarRetentionPct))
	}

	if m.ProductRetention30D > 0.8 {
		highlights = append(highlights, fmt.Sprintf("Outstanding product retention: %.0f%% at 30 days", m.ProductRetention30D*100))
	}

	if m.CustomerConcentrationPct > 50 && m.CustomerConcentrationPct <= 80 {
		highlights = append(highlights, fmt.Sprintf("High customer concentration risk: %.0f%%", m.CustomerConcentrationPct))
	}

	if m.MonthlyChurnPct > 10 && m.MonthlyChurnPct <= 20 {
		highlights = append(highlights, fmt.Sprintf("High churn rate: %.0f%% monthly", m.MonthlyChurnPct))
	}

	return highlights
}

// pillarLabel returns the display name for a pillar
func pillarLabel(p Pillar) string {
	if p == "" {
		return ""
	}
	return strings.ToUpper(string(p[:1])) + string(p[1:])
}
