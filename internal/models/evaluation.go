package models

import (
	"time"

	"github.com/ternarybob/fundable/internal/engine"
)

// EvaluationRequest is the POST /api/evaluate payload. Field ranges are
// enforced with go-playground/validator tags before the engine runs; optional
// metrics are pointers so absence is distinguishable from zero.
type EvaluationRequest struct {
	FundingStage string              `json:"funding_stage" validate:"required,oneof=pre_seed seed series_a series_b series_c"`
	PillarScores PillarScoresPayload `json:"pillar_scores" validate:"required"`
	Metrics      MetricsPayload      `json:"metrics"`

	// SuccessProbability is the upstream ensemble probability, when available
	SuccessProbability *float64 `json:"success_probability,omitempty" validate:"omitempty,gte=0,lte=1"`
}

// PillarScoresPayload carries the four CAMP model probabilities
type PillarScoresPayload struct {
	Capital   float64 `json:"capital" validate:"gte=0,lte=1"`
	Advantage float64 `json:"advantage" validate:"gte=0,lte=1"`
	Market    float64 `json:"market" validate:"gte=0,lte=1"`
	People    float64 `json:"people" validate:"gte=0,lte=1"`
}

// MetricsPayload carries the raw startup metrics consumed by the rule
// evaluators. Every field is optional; omitted fields fall back to neutral
// values that trigger neither critical failures nor risk adjustments.
type MetricsPayload struct {
	RunwayMonths             *float64 `json:"runway_months,omitempty" validate:"omitempty,gte=0,lte=120"`
	BurnMultiple             *float64 `json:"burn_multiple,omitempty" validate:"omitempty,gte=0,lte=100"`
	DebtToEquityRatio        *float64 `json:"debt_to_equity_ratio,omitempty" validate:"omitempty,gte=0"`
	InvestorTierPrimary      string   `json:"investor_tier_primary,omitempty" validate:"omitempty,oneof=tier_1 tier_2 tier_3 none"`
	CustomerConcentrationPct *float64 `json:"customer_concentration_percent,omitempty" validate:"omitempty,gte=0,lte=100"`
	MonthlyChurnPct          *float64 `json:"monthly_churn_percent,omitempty" validate:"omitempty,gte=0,lte=100"`
	NetDollarRetentionPct    *float64 `json:"net_dollar_retention_percent,omitempty" validate:"omitempty,gte=0,lte=500"`
	RegulatoryRiskScore      *float64 `json:"regulatory_risk_score,omitempty" validate:"omitempty,gte=1,lte=5"`
	RevenueGrowthPct         *float64 `json:"revenue_growth_rate_percent,omitempty" validate:"omitempty,gte=-100,lte=1000"`
	NetworkEffectsPresent    *bool    `json:"network_effects_present,omitempty"`
	SwitchingCostScore       *float64 `json:"switching_cost_score,omitempty" validate:"omitempty,gte=1,lte=5"`
	PatentCount              *int     `json:"patent_count,omitempty" validate:"omitempty,gte=0"`
	ProductRetention30D      *float64 `json:"product_retention_30d,omitempty" validate:"omitempty,gte=0,lte=1"`
	FoundersCount            *int     `json:"founders_count,omitempty" validate:"omitempty,gte=1,lte=10"`
	KeyPersonDependency      *bool    `json:"key_person_dependency,omitempty"`
	PriorSuccessfulExits     *int     `json:"prior_successful_exits_count,omitempty" validate:"omitempty,gte=0"`
}

// ToEngineInput converts a validated request into the engine's input,
// applying neutral defaults for omitted metrics.
func (r *EvaluationRequest) ToEngineInput() engine.EvaluateInput {
	in := engine.EvaluateInput{
		Stage: engine.FundingStage(r.FundingStage),
		Scores: engine.PillarScores{
			Capital:   r.PillarScores.Capital,
			Advantage: r.PillarScores.Advantage,
			Market:    r.PillarScores.Market,
			People:    r.PillarScores.People,
		},
		Metrics: r.Metrics.toRawMetrics(),
	}
	if r.SuccessProbability != nil {
		in.BaseProbability = *r.SuccessProbability
		in.HasBaseProbability = true
	}
	return in
}

func (m *MetricsPayload) toRawMetrics() engine.RawMetrics {
	raw := engine.NeutralRawMetrics()

	if m.RunwayMonths != nil {
		raw.RunwayMonths = *m.RunwayMonths
	}
	if m.BurnMultiple != nil {
		raw.BurnMultiple = *m.BurnMultiple
	}
	if m.DebtToEquityRatio != nil {
		raw.DebtRatio = *m.DebtToEquityRatio
	}
	if m.InvestorTierPrimary != "" {
		raw.InvestorTier = engine.InvestorTier(m.InvestorTierPrimary)
	}
	if m.CustomerConcentrationPct != nil {
		raw.CustomerConcentrationPct = *m.CustomerConcentrationPct
	}
	if m.MonthlyChurnPct != nil {
		raw.MonthlyChurnPct = *m.MonthlyChurnPct
	}
	if m.NetDollarRetentionPct != nil {
		raw.NetDollarRetentionPct = *m.NetDollarRetentionPct
	}
	if m.RegulatoryRiskScore != nil {
		raw.RegulatoryRiskScore = *m.RegulatoryRiskScore
	}
	if m.RevenueGrowthPct != nil {
		raw.RevenueGrowthPct = *m.RevenueGrowthPct
	}
	if m.NetworkEffectsPresent != nil {
		if *m.NetworkEffectsPresent {
			raw.NetworkEffects = engine.TriPresent
		} else {
			raw.NetworkEffects = engine.TriAbsent
		}
	}
	if m.SwitchingCostScore != nil {
		raw.SwitchingCostScore = *m.SwitchingCostScore
	}
	if m.PatentCount != nil {
		raw.PatentCount = *m.PatentCount
	}
	if m.ProductRetention30D != nil {
		raw.ProductRetention30D = *m.ProductRetention30D
	}
	if m.FoundersCount != nil {
		raw.FoundersCount = *m.FoundersCount
	}
	if m.KeyPersonDependency != nil {
		raw.KeyPersonDependency = *m.KeyPersonDependency
	}
	if m.PriorSuccessfulExits != nil {
		raw.PriorSuccessfulExits = *m.PriorSuccessfulExits
	}

	return raw
}

// CriticalFailurePayload is the wire form of one disqualifying condition
type CriticalFailurePayload struct {
	RuleID  string `json:"rule_id"`
	Message string `json:"message"`
}

// EvaluationResponse is the POST /api/evaluate response body
type EvaluationResponse struct {
	AssessmentID string    `json:"assessment_id"`
	FundingStage string    `json:"funding_stage"`
	Timestamp    time.Time `json:"timestamp"`

	WeightedScore       float64 `json:"weighted_score"`
	RiskAdjustment      float64 `json:"risk_adjustment"`
	AdjustedProbability float64 `json:"adjusted_probability"`

	Verdict   string `json:"verdict"`
	Strength  string `json:"strength"`
	RiskLevel string `json:"risk_level"`

	BelowThreshold   []string                 `json:"below_threshold"`
	CriticalFailures []CriticalFailurePayload `json:"critical_failures"`
	StageThresholds  map[string]float64       `json:"stage_thresholds"`

	Insights       []string `json:"insights"`
	Recommendation string   `json:"recommendation"`
}

// NewEvaluationResponse converts an engine assessment into the wire form
func NewEvaluationResponse(assessmentID string, a engine.Assessment) EvaluationResponse {
	below := make([]string, 0, len(a.BelowThreshold))
	for _, p := range a.BelowThreshold {
		below = append(below, string(p))
	}

	failures := make([]CriticalFailurePayload, 0, len(a.CriticalFailures))
	for _, f := range a.CriticalFailures {
		failures = append(failures, CriticalFailurePayload{RuleID: f.RuleID, Message: f.Message})
	}

	thresholds := make(map[string]float64, len(a.StageThresholds))
	for p, th := range a.StageThresholds {
		thresholds[string(p)] = th
	}

	insights := a.Insights
	if insights == nil {
		insights = []string{}
	}

	return EvaluationResponse{
		AssessmentID:        assessmentID,
		FundingStage:        string(a.Stage),
		Timestamp:           time.Now().UTC(),
		WeightedScore:       a.WeightedScore,
		RiskAdjustment:      a.RiskAdjustment,
		AdjustedProbability: a.AdjustedProbability,
		Verdict:             string(a.Verdict),
		Strength:            string(a.Strength),
		RiskLevel:           string(a.RiskLevel),
		BelowThreshold:      below,
		CriticalFailures:    failures,
		StageThresholds:     thresholds,
		Insights:            insights,
		Recommendation:      a.Recommendation,
	}
}

// StageProfilePayload is the wire form of one registered stage profile
type StageProfilePayload struct {
	Stage      string             `json:"stage"`
	Weights    map[string]float64 `json:"weights"`
	Thresholds map[string]float64 `json:"thresholds"`
}

// NewStageProfilePayload converts an engine stage profile into the wire form
func NewStageProfilePayload(p engine.StageProfile) StageProfilePayload {
	weights := make(map[string]float64, len(p.Weights))
	for pillar, w := range p.Weights {
		weights[string(pillar)] = w
	}
	thresholds := make(map[string]float64, len(p.Thresholds))
	for pillar, th := range p.Thresholds {
		thresholds[string(pillar)] = th
	}
	return StageProfilePayload{
		Stage:      string(p.Stage),
		Weights:    weights,
		Thresholds: thresholds,
	}
}
