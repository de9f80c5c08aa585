package engine

import (
	"math"
	"testing"
)

func TestRiskAdjustmentCalculator_NeutralIsZero(t *testing.T) {
	calc := NewRiskAdjustmentCalculator()

	if adj := calc.Compute(NeutralRawMetrics()); adj != 0 {
		t.Errorf("Compute(neutral) = %v, want 0", adj)
	}
}

func TestRiskAdjustmentCalculator_SingleDeltas(t *testing.T) {
	calc := NewRiskAdjustmentCalculator()

	tests := []struct {
		name   string
		mutate func(m *RawMetrics)
		want   float64
	}{
		{"concentration above 50", func(m *RawMetrics) { m.CustomerConcentrationPct = 60 }, -0.10},
		{"regulatory risk above 4", func(m *RawMetrics) { m.RegulatoryRiskScore = 5 }, -0.15},
		{"network effects absent", func(m *RawMetrics) { m.NetworkEffects = TriAbsent }, -0.05},
		{"low switching cost", func(m *RawMetrics) { m.SwitchingCostScore = 2 }, -0.05},
		{"high debt ratio", func(m *RawMetrics) { m.DebtRatio = 3 }, -0.10},
		{"tier 2 investor", func(m *RawMetrics) { m.InvestorTier = Tier2 }, -0.05},
		{"tier 1 investor", func(m *RawMetrics) { m.InvestorTier = Tier1 }, 0.10},
		{"prior exits", func(m *RawMetrics) { m.PriorSuccessfulExits = 1 }, 0.10},
		{"network effects present", func(m *RawMetrics) { m.NetworkEffects = TriPresent }, 0.10},
		{"strong NDR", func(m *RawMetrics) { m.NetDollarRetentionPct = 140 }, 0.10},
		{"patent portfolio", func(m *RawMetrics) { m.PatentCount = 6 }, 0.05},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NeutralRawMetrics()
			tt.mutate(&m)

			if adj := calc.Compute(m); math.Abs(adj-tt.want) > 1e-9 {
				t.Errorf("Compute = %v, want %v", adj, tt.want)
			}
		})
	}
}

func TestRiskAdjustmentCalculator_UnknownMetricsContributeNothing(t *testing.T) {
	calc := NewRiskAdjustmentCalculator()

	// Unknown tier, unknown network effects, unscored switching cost: no deltas
	// in either direction.
	m := NeutralRawMetrics()
	m.InvestorTier = TierUnknown
	m.NetworkEffects = TriUnknown
	m.SwitchingCostScore = 0

	if adj := calc.Compute(m); adj != 0 {
		t.Errorf("Compute with unknown optionals = %v, want 0", adj)
	}
}

func TestRiskAdjustmentCalculator_ClampsNegative(t *testing.T) {
	calc := NewRiskAdjustmentCalculator()

	m := NeutralRawMetrics()
	m.CustomerConcentrationPct = 70 // -0.10
	m.RegulatoryRiskScore = 5      // -0.15
	m.NetworkEffects = TriAbsent   // -0.05
	m.SwitchingCostScore = 1       // -0.05
	m.DebtRatio = 4                // -0.10
	m.InvestorTier = Tier3         // -0.05

	if adj := calc.Compute(m); adj != AdjustmentMin {
		t.Errorf("Compute = %v, want clamp at %v", adj, AdjustmentMin)
	}
}

func TestRiskAdjustmentCalculator_ClampsPositive(t *testing.T) {
	calc := NewRiskAdjustmentCalculator()

	m := NeutralRawMetrics()
	m.InvestorTier = Tier1        // +0.10
	m.PriorSuccessfulExits = 2    // +0.10
	m.NetworkEffects = TriPresent // +0.10
	m.NetDollarRetentionPct = 150 // +0.10
	m.PatentCount = 10            // +0.05

	if adj := calc.Compute(m); adj != AdjustmentMax {
		t.Errorf("Compute = %v, want clamp at %v", adj, AdjustmentMax)
	}
}

func TestRiskAdjustmentCalculator_AlwaysWithinBounds(t *testing.T) {
	calc := NewRiskAdjustmentCalculator()

	extremes := []RawMetrics{
		NeutralRawMetrics(),
		{CustomerConcentrationPct: 100, RegulatoryRiskScore: 5, NetworkEffects: TriAbsent, SwitchingCostScore: 1, DebtRatio: 10, InvestorTier: TierNone},
		{InvestorTier: Tier1, PriorSuccessfulExits: 5, NetworkEffects: TriPresent, NetDollarRetentionPct: 300, PatentCount: 100},
	}

	for _, m := range extremes {
		adj := calc.Compute(m)
		if adj < AdjustmentMin || adj > AdjustmentMax {
			t.Errorf("Compute = %v, want within [%v, %v]", adj, AdjustmentMin, AdjustmentMax)
		}
	}
}
