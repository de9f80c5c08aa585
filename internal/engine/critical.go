package engine

// Critical failure rule IDs
const (
	RuleRunway        = "runway"
	RuleBurn          = "burn"
	RuleConcentration = "concentration"
	RuleChurn         = "churn"
	RuleKeyPerson     = "key_person"
)

// criticalRule is a single disqualifying predicate over raw metrics
type criticalRule struct {
	id      string
	message string
	match   func(m RawMetrics) bool
}

// criticalRules is the fixed rule list. Order matters only for presentation;
// every rule is evaluated independently.
var criticalRules = []criticalRule{
	{
		id:      RuleRunway,
		message: "Less than 3 months runway - immediate funding required",
		match:   func(m RawMetrics) bool { return m.RunwayMonths < 3 },
	},
	{
		id:      RuleBurn,
		message: "Burning more than 5x revenue - unsustainable burn rate",
		match:   func(m RawMetrics) bool { return m.BurnMultiple > 5 },
	},
	{
		id:      RuleConcentration,
		message: "Over 80% customer concentration - extreme dependency risk",
		match:   func(m RawMetrics) bool { return m.CustomerConcentrationPct > 80 },
	},
	{
		id:      RuleChurn,
		message: "Monthly churn above 20% - severe retention crisis",
		match:   func(m RawMetrics) bool { return m.MonthlyChurnPct > 20 },
	},
	{
		id:      RuleKeyPerson,
		message: "Single founder with high key person risk",
		match:   func(m RawMetrics) bool { return m.FoundersCount == 1 && m.KeyPersonDependency },
	},
}

// CriticalFailureDetector evaluates the fixed disqualifying rule set. A single
// failed rule forces verdict FAIL regardless of how strong the pillars look.
type CriticalFailureDetector struct {
	rules []criticalRule
}

// NewCriticalFailureDetector creates a detector over the fixed rule set
func NewCriticalFailureDetector() *CriticalFailureDetector {
	return &CriticalFailureDetector{rules: criticalRules}
}

// Detect returns one CriticalFailure per matching rule, in rule order
func (d *CriticalFailureDetector) Detect(m RawMetrics) []CriticalFailure {
	var failures []CriticalFailure
	for _, rule := range d.rules {
		if rule.match(m) {
			failures = append(failures, CriticalFailure{RuleID: rule.id, Message: rule.message})
		}
	}
	return failures
}
