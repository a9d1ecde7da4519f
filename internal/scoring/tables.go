package scoring

import (
	"math"

	"github.com/rotisserie/eris"

	"InvestorClassifier/internal/model"
)

// neutralScore is used wherever an input is missing or unrecognized.
const neutralScore = 60.0

// weightTolerance bounds float error when checking that weights sum to 1.
const weightTolerance = 1e-9

// WeightTable holds the outer weights of the five scored factors.
type WeightTable struct {
	Age                float64
	FinancialStability float64
	RiskTolerance      float64
	TimeHorizon        float64
	ReturnExpectation  float64
}

// DefaultWeights returns the built-in weight distribution.
func DefaultWeights() WeightTable {
	return WeightTable{
		Age:                0.25,
		FinancialStability: 0.30,
		RiskTolerance:      0.20,
		TimeHorizon:        0.15,
		ReturnExpectation:  0.10,
	}
}

// Sum returns the total of all weights.
func (w WeightTable) Sum() float64 {
	return w.Age + w.FinancialStability + w.RiskTolerance + w.TimeHorizon + w.ReturnExpectation
}

// Validate checks that no weight is negative and that they sum to 1.0.
func (w WeightTable) Validate() error {
	for name, v := range map[string]float64{
		model.FactorAge:                w.Age,
		model.FactorFinancialStability: w.FinancialStability,
		model.FactorRiskTolerance:      w.RiskTolerance,
		model.FactorTimeHorizon:        w.TimeHorizon,
		model.FactorReturnExpectation:  w.ReturnExpectation,
	} {
		if v < 0 {
			return eris.Errorf("scoring: weight %s is negative (%v)", name, v)
		}
	}
	if math.Abs(w.Sum()-1.0) > weightTolerance {
		return eris.Errorf("scoring: weights sum to %v, want 1.0", w.Sum())
	}
	return nil
}

type comparison int

const (
	lessThan comparison = iota
	lessOrEqual
	greaterThan
)

func (c comparison) holds(v, limit float64) bool {
	switch c {
	case lessOrEqual:
		return v <= limit
	case greaterThan:
		return v > limit
	default:
		return v < limit
	}
}

type step struct {
	limit float64
	score float64
}

// scale maps a raw value to a sub-score. Steps are evaluated in order and
// the first one whose limit the value satisfies wins.
type scale struct {
	cmp      comparison
	steps    []step
	fallback float64
}

func (s scale) lookup(v float64) float64 {
	for _, st := range s.steps {
		if s.cmp.holds(v, st.limit) {
			return st.score
		}
	}
	return s.fallback
}

type profileBand struct {
	maxScore float64
	label    model.ProfileLabel
}

// Tables is the complete constant set the engine scores against. It is
// built once by DefaultTables and only read afterwards.
type Tables struct {
	Weights WeightTable

	age        scale
	income     scale
	emergency  scale
	debt       scale
	horizon    scale
	returns    scale
	insurance  scale
	dependants scale

	likert    map[int]float64
	drawdown  map[model.DrawdownReaction]float64
	tolerance map[model.RiskTolerance]float64

	profiles []profileBand
}

// DefaultTables returns the built-in weights and breakpoint tables.
func DefaultTables() Tables {
	return Tables{
		Weights: DefaultWeights(),
		age: scale{cmp: lessOrEqual, fallback: 10, steps: []step{
			{25, 90}, {35, 75}, {45, 60}, {55, 40}, {65, 20},
		}},
		income: scale{cmp: lessThan, fallback: 100, steps: []step{
			{20_000, 30}, {50_000, 40}, {100_000, 50}, {500_000, 60},
			{1_000_000, 70}, {1_500_000, 80}, {2_400_000, 85},
			{5_000_000, 90}, {7_500_000, 95}, {10_000_000, 97},
		}},
		emergency: scale{cmp: greaterThan, fallback: 30, steps: []step{
			{1.4, 90}, {1, 70}, {0.75, 60}, {0.5, 50},
		}},
		debt: scale{cmp: lessThan, fallback: 30, steps: []step{
			{5, 90}, {15, 75}, {25, 60}, {50, 45},
		}},
		horizon: scale{cmp: lessOrEqual, fallback: 90, steps: []step{
			{3, 35}, {7, 65},
		}},
		returns: scale{cmp: lessThan, fallback: 90, steps: []step{
			{8, 35}, {12, 60}, {15, 75},
		}},
		// Zero cover is matched exactly before this scale is consulted.
		insurance: scale{cmp: lessThan, fallback: 100, steps: []step{
			{500_000, 40}, {2_500_000, 60}, {10_000_000, 75}, {50_000_000, 90},
		}},
		// Zero dependants is matched exactly before this scale is consulted.
		dependants: scale{cmp: lessOrEqual, fallback: 30, steps: []step{
			{2, 75}, {5, 60}, {8, 45},
		}},
		likert: map[int]float64{1: 30, 2: 45, 3: 60, 4: 75, 5: 90},
		drawdown: map[model.DrawdownReaction]float64{
			model.DrawdownSell:    30,
			model.DrawdownWait:    60,
			model.DrawdownBuyMore: 90,
		},
		tolerance: map[model.RiskTolerance]float64{
			model.RiskConservative: 30,
			model.RiskModerate:     60,
			model.RiskAggressive:   90,
		},
		profiles: []profileBand{
			{25, model.ProfileUltraConservative},
			{40, model.ProfileConservative},
			{60, model.ProfileModerate},
			{75, model.ProfileModerateAggressive},
			{90, model.ProfileAggressive},
		},
	}
}
