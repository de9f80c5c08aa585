package models

import (
	"encoding/json"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ternarybob/fundable/internal/engine"
)

func validRequest() EvaluationRequest {
	return EvaluationRequest{
		FundingStage: "seed",
		PillarScores: PillarScoresPayload{Capital: 0.82, Advantage: 0.71, Market: 0.64, People: 0.89},
	}
}

func TestEvaluationRequest_Validation(t *testing.T) {
	validate := validator.New()

	t.Run("valid request passes", func(t *testing.T) {
		req := validRequest()
		assert.NoError(t, validate.Struct(req))
	})

	t.Run("missing stage fails", func(t *testing.T) {
		req := validRequest()
		req.FundingStage = ""
		assert.Error(t, validate.Struct(req))
	})

	t.Run("unknown stage fails", func(t *testing.T) {
		req := validRequest()
		req.FundingStage = "series_z"
		assert.Error(t, validate.Struct(req))
	})

	t.Run("pillar score above 1 fails", func(t *testing.T) {
		req := validRequest()
		req.PillarScores.Capital = 1.2
		assert.Error(t, validate.Struct(req))
	})

	t.Run("out of range metric fails", func(t *testing.T) {
		churn := 150.0
		req := validRequest()
		req.Metrics.MonthlyChurnPct = &churn
		assert.Error(t, validate.Struct(req))
	})

	t.Run("bad investor tier fails", func(t *testing.T) {
		req := validRequest()
		req.Metrics.InvestorTierPrimary = "tier_4"
		assert.Error(t, validate.Struct(req))
	})
}

func TestToEngineInput_NeutralDefaults(t *testing.T) {
	req := validRequest()

	in := req.ToEngineInput()

	assert.Equal(t, engine.StageSeed, in.Stage)
	assert.Equal(t, engine.NeutralRawMetrics(), in.Metrics)
	assert.False(t, in.HasBaseProbability)
}

func TestToEngineInput_FieldMapping(t *testing.T) {
	runway := 4.0
	present := true
	founders := 1
	dependency := true
	probability := 0.72

	req := validRequest()
	req.Metrics.RunwayMonths = &runway
	req.Metrics.NetworkEffectsPresent = &present
	req.Metrics.FoundersCount = &founders
	req.Metrics.KeyPersonDependency = &dependency
	req.Metrics.InvestorTierPrimary = "tier_1"
	req.SuccessProbability = &probability

	in := req.ToEngineInput()

	assert.Equal(t, 4.0, in.Metrics.RunwayMonths)
	assert.Equal(t, engine.TriPresent, in.Metrics.NetworkEffects)
	assert.Equal(t, 1, in.Metrics.FoundersCount)
	assert.True(t, in.Metrics.KeyPersonDependency)
	assert.Equal(t, engine.Tier1, in.Metrics.InvestorTier)
	assert.True(t, in.HasBaseProbability)
	assert.Equal(t, 0.72, in.BaseProbability)
}

func TestToEngineInput_NetworkEffectsAbsent(t *testing.T) {
	absent := false
	req := validRequest()
	req.Metrics.NetworkEffectsPresent = &absent

	in := req.ToEngineInput()
	assert.Equal(t, engine.TriAbsent, in.Metrics.NetworkEffects)
}

func TestNewEvaluationResponse(t *testing.T) {
	assessment := engine.Assessment{
		Stage:               engine.StageSeed,
		WeightedScore:       0.56,
		Verdict:             engine.VerdictConditionalPass,
		Strength:            engine.StrengthModerate,
		RiskLevel:           engine.RiskMedium,
		AdjustedProbability: 0.56,
		BelowThreshold:      []engine.Pillar{engine.PillarCapital},
		CriticalFailures:    nil,
		StageThresholds:     map[engine.Pillar]float64{engine.PillarCapital: 0.35},
		Insights:            nil,
	}

	resp := NewEvaluationResponse("asmt_123", assessment)

	assert.Equal(t, "asmt_123", resp.AssessmentID)
	assert.Equal(t, "seed", resp.FundingStage)
	assert.Equal(t, "CONDITIONAL PASS", resp.Verdict)
	assert.Equal(t, []string{"capital"}, resp.BelowThreshold)
	assert.NotNil(t, resp.Insights, "nil insights must serialize as an empty list")
	assert.False(t, resp.Timestamp.IsZero())

	// critical_failures and insights must marshal as [] rather than null
	data, err := json.Marshal(resp)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"critical_failures":[]`)
	assert.Contains(t, string(data), `"insights":[]`)
}
