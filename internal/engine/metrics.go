package engine

// InvestorTier classifies the lead investor quality
type InvestorTier string

const (
	TierUnknown InvestorTier = ""
	Tier1       InvestorTier = "tier_1"
	Tier2       InvestorTier = "tier_2"
	Tier3       InvestorTier = "tier_3"
	TierNone    InvestorTier = "none"
)

// Known returns true once the tier has been supplied by the caller
func (t InvestorTier) Known() bool {
	return t != TierUnknown
}

// TriState represents a boolean metric whose absence is meaningful. Unknown
// metrics contribute neither risk deltas nor critical failures.
type TriState int

const (
	TriUnknown TriState = iota
	TriPresent
	TriAbsent
)

// RawMetrics is the request-scoped bag of typed fields consumed by the rule
// evaluators. The weighted-score arithmetic never reads these. Zero values on
// the 1-5 scored fields mean "not supplied"; use NeutralRawMetrics as the base
// when populating from a sparse request so that absent fields trigger neither
// critical failures nor risk adjustments.
type RawMetrics struct {
	// Capital
	RunwayMonths float64
	BurnMultiple float64
	DebtRatio    float64
	InvestorTier InvestorTier

	// Market
	CustomerConcentrationPct float64
	MonthlyChurnPct          float64
	NetDollarRetentionPct    float64
	RegulatoryRiskScore      float64 // 1-5 scale, 0 = unknown
	RevenueGrowthPct         float64

	// Advantage
	NetworkEffects      TriState
	SwitchingCostScore  float64 // 1-5 scale, 0 = unknown
	PatentCount         int
	ProductRetention30D float64

	// People
	FoundersCount        int
	KeyPersonDependency  bool
	PriorSuccessfulExits int
}

// NeutralRawMetrics returns a metrics bag on which no critical failure rule
// and no risk adjustment rule fires.
func NeutralRawMetrics() RawMetrics {
	return RawMetrics{
		RunwayMonths:          12,
		BurnMultiple:          1,
		NetDollarRetentionPct: 100,
		FoundersCount:         2,
	}
}
