package scoring

import (
	"github.com/rotisserie/eris"
	"github.com/shopspring/decimal"

	"InvestorClassifier/internal/model"
)

// Engine classifies investor profiles against a fixed table set.
// It holds no mutable state and is safe for concurrent use.
type Engine struct {
	tables Tables
}

// NewEngine validates the weight table and returns an engine bound to t.
func NewEngine(t Tables) (*Engine, error) {
	if err := t.Weights.Validate(); err != nil {
		return nil, eris.Wrap(err, "scoring: new engine")
	}
	return &Engine{tables: t}, nil
}

var defaultEngine = func() *Engine {
	e, err := NewEngine(DefaultTables())
	if err != nil {
		panic(err)
	}
	return e
}()

// Default returns the engine built from the built-in tables.
func Default() *Engine { return defaultEngine }

// Classify scores p with the built-in tables.
func Classify(p model.InvestorProfile) model.ClassificationResult {
	return defaultEngine.Classify(p)
}

// Weights returns the engine's weight table.
func (e *Engine) Weights() WeightTable { return e.tables.Weights }

// Classify computes the full classification for p. It never fails:
// missing or unrecognized inputs resolve to defaults or neutral scores.
func (e *Engine) Classify(p model.InvestorProfile) model.ClassificationResult {
	t := &e.tables
	w := t.Weights
	in := resolve(p)

	ageSub := t.scoreAge(in.age)
	financialSub := t.scoreFinancialStability(in)
	riskSub := t.scoreRiskTolerance(in)
	horizonSub := t.scoreTimeHorizon(in.timeHorizon)
	returnSub := t.scoreReturnExpectation(in.returnExpectation)

	factors := []model.Factor{
		weightedFactor(model.FactorAge, ageSub, w.Age),
		weightedFactor(model.FactorFinancialStability, financialSub, w.FinancialStability),
		weightedFactor(model.FactorRiskTolerance, riskSub, w.RiskTolerance),
		weightedFactor(model.FactorTimeHorizon, horizonSub, w.TimeHorizon),
		weightedFactor(model.FactorReturnExpectation, returnSub, w.ReturnExpectation),
	}

	total := 0.0
	total += ageSub * w.Age
	total += financialSub * w.FinancialStability
	total += riskSub * w.RiskTolerance
	total += horizonSub * w.TimeHorizon
	total += returnSub * w.ReturnExpectation

	score := round2(clamp(total, 0, 100))

	// Advisory factors are reported but never enter the composite.
	if s, ok := t.scoreInsurance(in); ok {
		factors = append(factors, advisoryFactor(model.FactorInsurance, s))
	}
	if s, ok := t.scoreDependants(in); ok {
		factors = append(factors, advisoryFactor(model.FactorDependants, s))
	}

	return model.ClassificationResult{
		Score:          score,
		Profile:        t.mapProfile(score),
		Recommendation: recommend(score),
		Factors:        factors,
	}
}

// mapProfile maps a composite score to its profile label.
func (t *Tables) mapProfile(score float64) model.ProfileLabel {
	for _, b := range t.profiles {
		if score <= b.maxScore {
			return b.label
		}
	}
	return model.ProfileUltraAggressive
}

func recommend(score float64) string {
	switch {
	case score >= 70:
		return model.RecommendEquityFirst
	case score >= 40:
		return model.RecommendDebtFirst
	default:
		return model.RecommendDebtGold
	}
}

func weightedFactor(name string, sub, weight float64) model.Factor {
	w := weight
	contribution := round2(sub * weight)
	return model.Factor{
		Name:     name,
		Subscore: round2(sub),
		Weight:   &w,
		Weighted: &contribution,
	}
}

func advisoryFactor(name string, sub float64) model.Factor {
	return model.Factor{Name: name, Subscore: round2(sub)}
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// round2 rounds half away from zero on the shortest decimal form of v.
func round2(v float64) float64 {
	return decimal.NewFromFloat(v).Round(2).InexactFloat64()
}
