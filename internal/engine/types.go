// Package engine implements the stage-conditioned fundability evaluation core.
// It combines CAMP pillar probabilities with stage-specific business rules to
// produce a weighted score, a verdict, and an explainable assessment.
package engine

// Pillar identifies one of the four CAMP evaluation dimensions
type Pillar string

const (
	PillarCapital   Pillar = "capital"
	PillarAdvantage Pillar = "advantage"
	PillarMarket    Pillar = "market"
	PillarPeople    Pillar = "people"
)

// Pillars lists the CAMP pillars in canonical order
var Pillars = []Pillar{PillarCapital, PillarAdvantage, PillarMarket, PillarPeople}

// FundingStage identifies a funding round category
type FundingStage string

const (
	StagePreSeed FundingStage = "pre_seed"
	StageSeed    FundingStage = "seed"
	StageSeriesA FundingStage = "series_a"
	StageSeriesB FundingStage = "series_b"
	StageSeriesC FundingStage = "series_c"
)

// Stages lists the funding stages in ascending order
var Stages = []FundingStage{StagePreSeed, StageSeed, StageSeriesA, StageSeriesB, StageSeriesC}

// Verdict is the overall pass/fail outcome of an evaluation
type Verdict string

const (
	VerdictPass            Verdict = "PASS"
	VerdictConditionalPass Verdict = "CONDITIONAL PASS"
	VerdictFail            Verdict = "FAIL"
)

// Strength qualifies the verdict
type Strength string

const (
	StrengthStrong   Strength = "STRONG"
	StrengthModerate Strength = "MODERATE"
	StrengthWeak     Strength = "WEAK"
	StrengthCritical Strength = "CRITICAL"
)

// RiskLevel is the investor-facing risk label attached to each verdict tier
type RiskLevel string

const (
	RiskCritical   RiskLevel = "Critical Risk"
	RiskLow        RiskLevel = "Low Risk"
	RiskMedium     RiskLevel = "Medium Risk"
	RiskMediumHigh RiskLevel = "Medium-High Risk"
	RiskHigh       RiskLevel = "High Risk"
)

// PillarScores holds the four upstream model probabilities, each in [0,1]
type PillarScores struct {
	Capital   float64 `json:"capital"`
	Advantage float64 `json:"advantage"`
	Market    float64 `json:"market"`
	People    float64 `json:"people"`
}

// Score returns the value for a single pillar
func (s PillarScores) Score(p Pillar) float64 {
	switch p {
	case PillarCapital:
		return s.Capital
	case PillarAdvantage:
		return s.Advantage
	case PillarMarket:
		return s.Market
	case PillarPeople:
		return s.People
	}
	return 0
}

// Strongest returns the pillar with the highest score. Ties resolve to the
// earlier pillar in canonical order.
func (s PillarScores) Strongest() Pillar {
	best := Pillars[0]
	for _, p := range Pillars[1:] {
		if s.Score(p) > s.Score(best) {
			best = p
		}
	}
	return best
}

// CriticalFailure is a single disqualifying condition detected from raw metrics
type CriticalFailure struct {
	RuleID  string `json:"rule_id"`
	Message string `json:"message"`
}

// Assessment is the complete, immutable result of one evaluation
type Assessment struct {
	Stage FundingStage `json:"funding_stage"`

	WeightedScore  float64 `json:"weighted_score"`
	RiskAdjustment float64 `json:"risk_adjustment"`

	Verdict   Verdict   `json:"verdict"`
	Strength  Strength  `json:"strength"`
	RiskLevel RiskLevel `json:"risk_level"`

	// AdjustedProbability caps the upstream success probability by verdict.
	// When no base probability is supplied the weighted score stands in.
	AdjustedProbability float64 `json:"adjusted_probability"`

	BelowThreshold   []Pillar           `json:"below_threshold"`
	CriticalFailures []CriticalFailure  `json:"critical_failures"`
	StageThresholds  map[Pillar]float64 `json:"stage_thresholds"`

	Insights       []string `json:"insights"`
	Recommendation string   `json:"recommendation"`
}

// HasCriticalFailures returns true if any disqualifying rule fired
func (a *Assessment) HasCriticalFailures() bool {
	return len(a.CriticalFailures) > 0
}

// IsFundable returns true for PASS and CONDITIONAL PASS verdicts
func (a *Assessment) IsFundable() bool {
	return a.Verdict == VerdictPass || a.Verdict == VerdictConditionalPass
}
