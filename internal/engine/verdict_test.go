package engine

import "testing"

func TestClassifyVerdict_PriorityLadder(t *testing.T) {
	failure := []CriticalFailure{{RuleID: RuleRunway, Message: "out of runway"}}
	oneBelow := []Pillar{PillarMarket}
	twoBelow := []Pillar{PillarCapital, PillarMarket}
	threeBelow := []Pillar{PillarCapital, PillarMarket, PillarPeople}

	tests := []struct {
		name         string
		score        float64
		below        []Pillar
		failures     []CriticalFailure
		wantVerdict  Verdict
		wantStrength Strength
		wantRisk     RiskLevel
	}{
		{"critical failure wins over perfect score", 0.95, nil, failure, VerdictFail, StrengthCritical, RiskCritical},
		{"all clear high score", 0.60, nil, nil, VerdictPass, StrengthStrong, RiskLow},
		{"clear pillars but score under 0.60", 0.59, nil, nil, VerdictConditionalPass, StrengthModerate, RiskMedium},
		{"one below at 0.56", 0.56, oneBelow, nil, VerdictConditionalPass, StrengthModerate, RiskMedium},
		{"one below at exactly 0.55", 0.55, oneBelow, nil, VerdictConditionalPass, StrengthModerate, RiskMedium},
		{"one below at 0.54 falls to weak tier", 0.54, oneBelow, nil, VerdictConditionalPass, StrengthWeak, RiskMediumHigh},
		{"two below at 0.58", 0.58, twoBelow, nil, VerdictConditionalPass, StrengthWeak, RiskMediumHigh},
		{"two below at exactly 0.50", 0.50, twoBelow, nil, VerdictConditionalPass, StrengthWeak, RiskMediumHigh},
		{"three below fails regardless of score", 0.70, threeBelow, nil, VerdictFail, StrengthWeak, RiskHigh},
		{"low score fails", 0.49, nil, nil, VerdictFail, StrengthWeak, RiskHigh},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			verdict, strength, risk := classifyVerdict(tt.score, tt.below, tt.failures)
			if verdict != tt.wantVerdict {
				t.Errorf("verdict = %s, want %s", verdict, tt.wantVerdict)
			}
			if strength != tt.wantStrength {
				t.Errorf("strength = %s, want %s", strength, tt.wantStrength)
			}
			if risk != tt.wantRisk {
				t.Errorf("risk = %s, want %s", risk, tt.wantRisk)
			}
		})
	}
}

func TestAdjustProbability_CapsByVerdict(t *testing.T) {
	tests := []struct {
		name    string
		base    float64
		verdict Verdict
		want    float64
	}{
		{"fail caps high probability", 0.90, VerdictFail, 0.45},
		{"fail keeps low probability", 0.20, VerdictFail, 0.20},
		{"conditional lifts floor", 0.30, VerdictConditionalPass, 0.45},
		{"conditional caps ceiling", 0.80, VerdictConditionalPass, 0.65},
		{"conditional passes through", 0.55, VerdictConditionalPass, 0.55},
		{"pass lifts floor", 0.40, VerdictPass, 0.55},
		{"pass keeps high probability", 0.90, VerdictPass, 0.90},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := adjustProbability(tt.base, tt.verdict); got != tt.want {
				t.Errorf("adjustProbability(%v, %s) = %v, want %v", tt.base, tt.verdict, got, tt.want)
			}
		})
	}
}
