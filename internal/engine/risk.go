package engine

// Risk adjustment bounds. The clamp keeps the adjustment a bounded correction
// rather than a second scoring system.
const (
	AdjustmentMin = -0.30
	AdjustmentMax = 0.30
)

// riskRule is one signed contribution to the risk adjustment
type riskRule struct {
	id    string
	delta float64
	match func(m RawMetrics) bool
}

// riskRules is the fixed delta table. Unknown optional metrics match nothing.
var riskRules = []riskRule{
	{
		id:    "high_concentration",
		delta: -0.10,
		match: func(m RawMetrics) bool { return m.CustomerConcentrationPct > 50 },
	},
	{
		id:    "regulatory_risk",
		delta: -0.15,
		match: func(m RawMetrics) bool { return m.RegulatoryRiskScore > 4 },
	},
	{
		id:    "no_network_effects",
		delta: -0.05,
		match: func(m RawMetrics) bool { return m.NetworkEffects == TriAbsent },
	},
	{
		id:    "low_switching_cost",
		delta: -0.05,
		match: func(m RawMetrics) bool { return m.SwitchingCostScore >= 1 && m.SwitchingCostScore < 3 },
	},
	{
		id:    "high_debt",
		delta: -0.10,
		match: func(m RawMetrics) bool { return m.DebtRatio > 2 },
	},
	{
		id:    "non_tier1_investor",
		delta: -0.05,
		match: func(m RawMetrics) bool { return m.InvestorTier.Known() && m.InvestorTier != Tier1 },
	},
	{
		id:    "tier1_investor",
		delta: 0.10,
		match: func(m RawMetrics) bool { return m.InvestorTier == Tier1 },
	},
	{
		id:    "prior_exits",
		delta: 0.10,
		match: func(m RawMetrics) bool { return m.PriorSuccessfulExits > 0 },
	},
	{
		id:    "network_effects",
		delta: 0.10,
		match: func(m RawMetrics) bool { return m.NetworkEffects == TriPresent },
	},
	{
		id:    "strong_ndr",
		delta: 0.10,
		match: func(m RawMetrics) bool { return m.NetDollarRetentionPct > 130 },
	},
	{
		id:    "patent_portfolio",
		delta: 0.05,
		match: func(m RawMetrics) bool { return m.PatentCount > 5 },
	},
}

// RiskAdjustmentCalculator sums a fixed table of signed deltas for secondary
// qualitative signals and clamps the total to [AdjustmentMin, AdjustmentMax].
type RiskAdjustmentCalculator struct {
	rules []riskRule
}

// NewRiskAdjustmentCalculator creates a calculator over the fixed delta table
func NewRiskAdjustmentCalculator() *RiskAdjustmentCalculator {
	return &RiskAdjustmentCalculator{rules: riskRules}
}

// Compute returns the clamped additive correction for the given metrics
func (c *RiskAdjustmentCalculator) Compute(m RawMetrics) float64 {
	total := 0.0
	for _, rule := range c.rules {
		if rule.match(m) {
			total += rule.delta
		}
	}
	return clamp(total, AdjustmentMin, AdjustmentMax)
}
