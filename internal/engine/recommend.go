package engine

import (
	"fmt"
	"strings"
)

// Pillar score buckets used for recommendation selection
const (
	pillarCriticalBelow = 0.30
	pillarWeakBelow     = 0.50
	pillarStrongAbove   = 0.70
)

// recommendation templates per pillar and severity
var pillarRecommendations = map[Pillar]map[string]string{
	PillarCapital: {
		"critical": "Raise funding immediately or drastically cut burn. Target 18+ months runway.",
		"weak":     "Extend runway to 18+ months. Focus on revenue growth or raise a bridge round.",
		"improve":  "Optimize burn rate and improve unit economics for the next funding round.",
	},
	PillarAdvantage: {
		"critical": "Build defensibility now: file patents, create network effects, or develop proprietary tech.",
		"weak":     "Strengthen the moat: increase switching costs and build deeper technical differentiation.",
		"improve":  "Enhance competitive position through product innovation and brand building.",
	},
	PillarMarket: {
		"critical": "Fix product-market fit urgently. Consider a pivot if 30-day retention is below 40%.",
		"weak":     "Improve retention metrics and reduce customer concentration below 30%.",
		"improve":  "Expand market share and lift net dollar retention above 120%.",
	},
	PillarPeople: {
		"critical": "Hire senior talent immediately. Add experienced advisors in your domain.",
		"weak":     "Strengthen the leadership team and add board members with relevant exits.",
		"improve":  "Scale the team thoughtfully while maintaining culture and expertise.",
	},
}

// composeRecommendation assembles an actionable recommendation from the
// adjusted probability, pillar buckets, and concrete metric targets. Advisory
// only; rendering problems degrade to an empty string.
func composeRecommendation(probability float64, scores PillarScores, m RawMetrics) (rec string) {
	defer func() {
		if r := recover(); r != nil {
			rec = ""
		}
	}()

	var criticalPillars, weakPillars []Pillar
	for _, p := range Pillars {
		s := scores.Score(p)
		switch {
		case s < pillarCriticalBelow:
			criticalPillars = append(criticalPillars, p)
		case s < pillarWeakBelow:
			weakPillars = append(weakPillars, p)
		}
	}

	var parts []string

	switch {
	case probability >= 0.75:
		parts = append(parts, "Strong position - ready to scale aggressively.")
	case probability >= 0.60:
		parts = append(parts, "Solid foundation with a clear growth path.")
	case probability >= 0.45:
		parts = append(parts, "Moderate risk - focus on key improvements.")
	case probability >= 0.30:
		parts = append(parts, "Significant challenges - immediate action required.")
	default:
		parts = append(parts, "Major pivot or restructuring needed.")
	}

	switch {
	case len(criticalPillars) > 0:
		parts = append(parts, "Critical fixes:")
		for _, p := range pillarCap(criticalPillars, 2) {
			parts = append(parts, pillarRecommendations[p]["critical"])
		}
	case len(weakPillars) > 0:
		parts = append(parts, "Priority improvements:")
		for _, p := range pillarCap(weakPillars, 2) {
			parts = append(parts, pillarRecommendations[p]["weak"])
		}
	case probability >= 0.60:
		weakest := Pillars[0]
		for _, p := range Pillars[1:] {
			if scores.Score(p) < scores.Score(weakest) {
				weakest = p
			}
		}
		parts = append(parts, "Optimize: "+pillarRecommendations[weakest]["improve"])
	}

	if targets := metricTargets(m); len(targets) > 0 {
		parts = append(parts, "Key targets: "+strings.Join(targets, ", ")+".")
	}

	return strings.Join(parts, " ")
}

// metricTargets lists concrete numeric targets the startup is currently missing
func metricTargets(m RawMetrics) []string {
	var targets []string
	if m.RunwayMonths < 18 {
		targets = append(targets, "runway 18+ months")
	}
	if m.NetDollarRetentionPct < 110 {
		targets = append(targets, "net dollar retention above 110%")
	}
	if m.ProductRetention30D > 0 && m.ProductRetention30D < 0.6 {
		targets = append(targets, fmt.Sprintf("30-day retention above 60%% (currently %.0f%%)", m.ProductRetention30D*100))
	}
	return targets
}

func pillarCap(pillars []Pillar, n int) []Pillar {
	if len(pillars) > n {
		return pillars[:n]
	}
	return pillars
}
