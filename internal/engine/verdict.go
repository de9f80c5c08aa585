package engine

// Weighted-score cutoffs for the verdict ladder
const (
	scoreStrongPass   = 0.60
	scoreModeratePass = 0.55
	scoreWeakPass     = 0.50
)

// classifyVerdict turns the composed score, threshold misses, and critical
// failures into verdict, strength, and risk level. Rules apply in strict
// priority order; the first match wins.
func classifyVerdict(weightedScore float64, below []Pillar, failures []CriticalFailure) (Verdict, Strength, RiskLevel) {
	switch {
	case len(failures) > 0:
		return VerdictFail, StrengthCritical, RiskCritical
	case len(below) == 0 && weightedScore >= scoreStrongPass:
		return VerdictPass, StrengthStrong, RiskLow
	case len(below) <= 1 && weightedScore >= scoreModeratePass:
		return VerdictConditionalPass, StrengthModerate, RiskMedium
	case weightedScore >= scoreWeakPass && len(below) <= 2:
		return VerdictConditionalPass, StrengthWeak, RiskMediumHigh
	default:
		return VerdictFail, StrengthWeak, RiskHigh
	}
}

// adjustProbability caps the upstream success probability by verdict: a FAIL
// can never report better than 0.45, a CONDITIONAL PASS stays within
// [0.45, 0.65], and a PASS never reports worse than 0.55.
func adjustProbability(base float64, verdict Verdict) float64 {
	switch verdict {
	case VerdictFail:
		return clamp(base, 0, 0.45)
	case VerdictConditionalPass:
		return clamp(base, 0.45, 0.65)
	default:
		return clamp(base, 0.55, 1)
	}
}
