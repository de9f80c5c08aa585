package engine

// ComposeScore combines pillar scores, stage weights, and the risk adjustment
// into one weighted score. The unclamped dot product is bounded in [0,1]
// because weights and scores both are, so the clamp only engages when the
// adjustment pushes the sum outside range.
func ComposeScore(scores PillarScores, profile StageProfile, adjustment float64) float64 {
	sum := 0.0
	for _, p := range Pillars {
		sum += scores.Score(p) * profile.Weights[p]
	}
	return clamp(sum+adjustment, 0, 1)
}

// belowThresholds returns the pillars whose score is strictly below the stage
// threshold, in canonical order. A score exactly equal to its threshold meets
// it.
func belowThresholds(scores PillarScores, profile StageProfile) []Pillar {
	var below []Pillar
	for _, p := range Pillars {
		if scores.Score(p) < profile.Thresholds[p] {
			below = append(below, p)
		}
	}
	return below
}
