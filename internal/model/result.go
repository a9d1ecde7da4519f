package model

// ProfileLabel is one of the six ordinal risk-appetite labels.
type ProfileLabel string

const (
	ProfileUltraConservative  ProfileLabel = "Ultra-Conservative"
	ProfileConservative       ProfileLabel = "Conservative"
	ProfileModerate           ProfileLabel = "Moderate"
	ProfileModerateAggressive ProfileLabel = "Moderate-Aggressive"
	ProfileAggressive         ProfileLabel = "Aggressive"
	ProfileUltraAggressive    ProfileLabel = "Ultra-Aggressive"
)

// Recommendation strings are consumed verbatim by the front-ends.
const (
	RecommendEquityFirst = "invest in equity > debt > gold"
	RecommendDebtFirst   = "invest in debt > equity > gold"
	RecommendDebtGold    = "invest in debt > gold > equity"
)

// Factor names, in the order they are reported.
const (
	FactorAge                = "age"
	FactorFinancialStability = "financial_stability"
	FactorRiskTolerance      = "risk_tolerance"
	FactorTimeHorizon        = "time_horizon"
	FactorReturnExpectation  = "return_expectation"
	FactorInsurance          = "insurance"
	FactorDependants         = "dependants"
)

// Factor is a single named sub-score. Weight and Weighted are nil for
// advisory factors that do not contribute to the composite score.
type Factor struct {
	Name     string   `json:"name"`
	Subscore float64  `json:"subscore"`
	Weight   *float64 `json:"weight"`
	Weighted *float64 `json:"weighted"`
}

// Advisory reports whether the factor is informational only.
func (f Factor) Advisory() bool { return f.Weight == nil }

// ClassificationResult is the output of the classification engine.
type ClassificationResult struct {
	Score          float64      `json:"score"`
	Profile        ProfileLabel `json:"profile"`
	Recommendation string       `json:"recommendation"`
	Factors        []Factor     `json:"factors"`
}

// Factor returns the factor with the given name, if present.
func (r *ClassificationResult) Factor(name string) (Factor, bool) {
	for _, f := range r.Factors {
		if f.Name == name {
			return f, true
		}
	}
	return Factor{}, false
}
