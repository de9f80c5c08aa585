package engine

// EvaluateInput carries everything one evaluation needs. Scores come from the
// upstream pillar models; Metrics feed only the rule evaluators.
type EvaluateInput struct {
	Stage   FundingStage
	Scores  PillarScores
	Metrics RawMetrics

	// BaseProbability is the upstream model's success probability, used only
	// when HasBaseProbability is set. Otherwise the weighted score stands in.
	BaseProbability    float64
	HasBaseProbability bool
}

// Evaluator is the engine's single entry point. It is pure and stateless:
// the registry is read-only after construction, every other value is owned by
// one call, so a single Evaluator serves arbitrarily many concurrent callers.
type Evaluator struct {
	registry *Registry
	critical *CriticalFailureDetector
	risk     *RiskAdjustmentCalculator
	insights *InsightComposer
}

// NewEvaluator creates an evaluator over the given stage registry
func NewEvaluator(registry *Registry) *Evaluator {
	return &Evaluator{
		registry: registry,
		critical: NewCriticalFailureDetector(),
		risk:     NewRiskAdjustmentCalculator(),
		insights: NewInsightComposer(),
	}
}

// Evaluate runs the full pipeline: validate, detect critical failures,
// compute the risk adjustment and weighted score, classify the verdict, and
// render insights. It returns a ValidationError for bad input and never
// mutates shared state.
func (e *Evaluator) Evaluate(in EvaluateInput) (Assessment, error) {
	profile, ok := e.registry.Lookup(in.Stage)
	if !ok {
		return Assessment{}, validationErrorf("funding_stage", "unknown stage %q", in.Stage)
	}
	if err := validateInput(in); err != nil {
		return Assessment{}, err
	}

	failures := e.critical.Detect(in.Metrics)
	adjustment := e.risk.Compute(in.Metrics)
	weighted := ComposeScore(in.Scores, profile, adjustment)
	below := belowThresholds(in.Scores, profile)

	verdict, strength, riskLevel := classifyVerdict(weighted, below, failures)

	base := weighted
	if in.HasBaseProbability {
		base = in.BaseProbability
	}

	assessment := Assessment{
		Stage:               in.Stage,
		WeightedScore:       round(weighted, 3),
		RiskAdjustment:      round(adjustment, 2),
		Verdict:             verdict,
		Strength:            strength,
		RiskLevel:           riskLevel,
		AdjustedProbability: round(adjustProbability(base, verdict), 3),
		BelowThreshold:      below,
		CriticalFailures:    failures,
		StageThresholds:     profile.Thresholds,
	}

	assessment.Insights = e.insights.Compose(assessment, in.Scores, in.Metrics)
	assessment.Recommendation = composeRecommendation(assessment.AdjustedProbability, in.Scores, in.Metrics)

	return assessment, nil
}

func validateInput(in EvaluateInput) error {
	for _, p := range Pillars {
		if s := in.Scores.Score(p); s < 0 || s > 1 {
			return validationErrorf(string(p), "pillar score %v outside [0,1]", s)
		}
	}
	if in.HasBaseProbability && (in.BaseProbability < 0 || in.BaseProbability > 1) {
		return validationErrorf("success_probability", "probability %v outside [0,1]", in.BaseProbability)
	}

	m := in.Metrics
	if m.RunwayMonths < 0 {
		return validationErrorf("runway_months", "must not be negative, got %v", m.RunwayMonths)
	}
	if m.BurnMultiple < 0 {
		return validationErrorf("burn_multiple", "must not be negative, got %v", m.BurnMultiple)
	}
	if m.CustomerConcentrationPct < 0 || m.CustomerConcentrationPct > 100 {
		return validationErrorf("customer_concentration_percent", "percentage %v outside [0,100]", m.CustomerConcentrationPct)
	}
	if m.MonthlyChurnPct < 0 || m.MonthlyChurnPct > 100 {
		return validationErrorf("monthly_churn_percent", "percentage %v outside [0,100]", m.MonthlyChurnPct)
	}
	if m.FoundersCount < 0 {
		return validationErrorf("founders_count", "must not be negative, got %d", m.FoundersCount)
	}
	if m.PatentCount < 0 {
		return validationErrorf("patent_count", "must not be negative, got %d", m.PatentCount)
	}
	if m.PriorSuccessfulExits < 0 {
		return validationErrorf("prior_successful_exits_count", "must not be negative, got %d", m.PriorSuccessfulExits)
	}
	return nil
}
