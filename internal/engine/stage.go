package engine

import (
	"fmt"
	"math"
)

// weightSumTolerance is the floating tolerance for the weight-sum invariant
const weightSumTolerance = 1e-6

// StageProfile holds the pillar weights and minimum thresholds for one stage.
// Profiles are built once at startup and shared read-only across evaluations.
type StageProfile struct {
	Stage      FundingStage       `json:"stage"`
	Weights    map[Pillar]float64 `json:"weights"`
	Thresholds map[Pillar]float64 `json:"thresholds"`
}

// Registry is the immutable per-stage profile table. Unknown stages fail
// closed: weights materially change the outcome, so there is no silent
// default profile.
type Registry struct {
	profiles map[FundingStage]StageProfile
}

// DefaultProfiles returns the built-in stage table
func DefaultProfiles() []StageProfile {
	return []StageProfile{
		{
			Stage:      StagePreSeed,
			Weights:    map[Pillar]float64{PillarCapital: 0.15, PillarAdvantage: 0.30, PillarMarket: 0.20, PillarPeople: 0.35},
			Thresholds: map[Pillar]float64{PillarCapital: 0.30, PillarAdvantage: 0.40, PillarMarket: 0.30, PillarPeople: 0.50},
		},
		{
			Stage:      StageSeed,
			Weights:    map[Pillar]float64{PillarCapital: 0.20, PillarAdvantage: 0.30, PillarMarket: 0.25, PillarPeople: 0.25},
			Thresholds: map[Pillar]float64{PillarCapital: 0.35, PillarAdvantage: 0.45, PillarMarket: 0.40, PillarPeople: 0.50},
		},
		{
			Stage:      StageSeriesA,
			Weights:    map[Pillar]float64{PillarCapital: 0.25, PillarAdvantage: 0.25, PillarMarket: 0.30, PillarPeople: 0.20},
			Thresholds: map[Pillar]float64{PillarCapital: 0.45, PillarAdvantage: 0.50, PillarMarket: 0.50, PillarPeople: 0.45},
		},
		{
			Stage:      StageSeriesB,
			Weights:    map[Pillar]float64{PillarCapital: 0.25, PillarAdvantage: 0.25, PillarMarket: 0.30, PillarPeople: 0.20},
			Thresholds: map[Pillar]float64{PillarCapital: 0.50, PillarAdvantage: 0.55, PillarMarket: 0.55, PillarPeople: 0.50},
		},
		{
			Stage:      StageSeriesC,
			Weights:    map[Pillar]float64{PillarCapital: 0.30, PillarAdvantage: 0.20, PillarMarket: 0.30, PillarPeople: 0.20},
			Thresholds: map[Pillar]float64{PillarCapital: 0.55, PillarAdvantage: 0.60, PillarMarket: 0.60, PillarPeople: 0.55},
		},
	}
}

// NewRegistry builds a registry from the given profiles, validating each one.
// An invalid profile is a configuration error: the process must refuse to
// start rather than serve evaluations with broken weights.
func NewRegistry(profiles ...StageProfile) (*Registry, error) {
	r := &Registry{profiles: make(map[FundingStage]StageProfile, len(profiles))}
	for _, p := range profiles {
		if err := validateProfile(p); err != nil {
			return nil, err
		}
		if _, exists := r.profiles[p.Stage]; exists {
			return nil, fmt.Errorf("duplicate stage profile %q", p.Stage)
		}
		r.profiles[p.Stage] = p
	}
	return r, nil
}

// NewDefaultRegistry builds a registry from the built-in stage table
func NewDefaultRegistry() *Registry {
	r, err := NewRegistry(DefaultProfiles()...)
	if err != nil {
		// The built-in table is validated by tests; reaching this is a bug.
		panic(err)
	}
	return r
}

// Lookup returns the profile for a stage. ok is false for unrecognized stages.
func (r *Registry) Lookup(stage FundingStage) (StageProfile, bool) {
	p, ok := r.profiles[stage]
	return p, ok
}

// Profiles returns the registered profiles in ascending stage order
func (r *Registry) Profiles() []StageProfile {
	out := make([]StageProfile, 0, len(r.profiles))
	for _, stage := range Stages {
		if p, ok := r.profiles[stage]; ok {
			out = append(out, p)
		}
	}
	return out
}

func validateProfile(p StageProfile) error {
	if p.Stage == "" {
		return fmt.Errorf("stage profile missing stage name")
	}

	sum := 0.0
	for _, pillar := range Pillars {
		w, ok := p.Weights[pillar]
		if !ok {
			return fmt.Errorf("stage %q missing weight for pillar %q", p.Stage, pillar)
		}
		if w < 0 || w > 1 {
			return fmt.Errorf("stage %q weight for pillar %q out of range: %v", p.Stage, pillar, w)
		}
		sum += w
	}
	if math.Abs(sum-1.0) > weightSumTolerance {
		return fmt.Errorf("stage %q weights sum to %v, want 1.0", p.Stage, sum)
	}

	for _, pillar := range Pillars {
		t, ok := p.Thresholds[pillar]
		if !ok {
			return fmt.Errorf("stage %q missing threshold for pillar %q", p.Stage, pillar)
		}
		if t < 0 || t > 1 {
			return fmt.Errorf("stage %q threshold for pillar %q out of range: %v", p.Stage, pillar, t)
		}
	}
	return nil
}
