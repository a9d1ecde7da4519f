package scoring

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	"InvestorClassifier/internal/model"
)

func referenceProfile() model.InvestorProfile {
	return model.InvestorProfile{
		Age:                 model.Int(28),
		MonthlyIncome:       model.Int64(120_000),
		MonthlyEMI:          model.Int64(15_000),
		EmergencyFundMonths: model.Float(4.0),
		Dependants:          model.Int(1),
		RiskAttitude:        model.Int(3),
		InvestmentKnowledge: model.Int(3),
		DrawdownReaction:    model.DrawdownWait,
	}
}

func findFactor(t *testing.T, res model.ClassificationResult, name string) model.Factor {
	t.Helper()
	f, ok := res.Factor(name)
	require.True(t, ok, "factor %s missing", name)
	return f
}

func TestClassify_ReferenceProfile(t *testing.T) {
	res := Classify(referenceProfile())

	// 4 months of cover is a ratio of 0.667, which lands in the (0.5, 0.75] band.
	assert.Equal(t, 63.0, res.Score)
	assert.Equal(t, model.ProfileModerate, res.Profile)
	assert.Equal(t, model.RecommendDebtFirst, res.Recommendation)

	require.Len(t, res.Factors, 6)
	names := make([]string, len(res.Factors))
	for i, f := range res.Factors {
		names[i] = f.Name
	}
	assert.Equal(t, []string{
		model.FactorAge,
		model.FactorFinancialStability,
		model.FactorRiskTolerance,
		model.FactorTimeHorizon,
		model.FactorReturnExpectation,
		model.FactorDependants,
	}, names)

	age := findFactor(t, res, model.FactorAge)
	assert.Equal(t, 75.0, age.Subscore)
	assert.Equal(t, 18.75, *age.Weighted)

	fin := findFactor(t, res, model.FactorFinancialStability)
	assert.Equal(t, 61.67, fin.Subscore)
	assert.Equal(t, 0.30, *fin.Weight)
	assert.Equal(t, 18.5, *fin.Weighted)

	risk := findFactor(t, res, model.FactorRiskTolerance)
	assert.Equal(t, 50.0, risk.Subscore)
	assert.Equal(t, 10.0, *risk.Weighted)

	horizon := findFactor(t, res, model.FactorTimeHorizon)
	assert.Equal(t, 65.0, horizon.Subscore)
	assert.Equal(t, 9.75, *horizon.Weighted)

	ret := findFactor(t, res, model.FactorReturnExpectation)
	assert.Equal(t, 60.0, ret.Subscore)
	assert.Equal(t, 6.0, *ret.Weighted)

	deps := findFactor(t, res, model.FactorDependants)
	assert.Equal(t, 75.0, deps.Subscore)
	assert.True(t, deps.Advisory())
	assert.Nil(t, deps.Weighted)
}

func TestClassify_EmptyProfile(t *testing.T) {
	res := Classify(model.InvestorProfile{})

	// age 75, financial 30, risk 60, horizon 65, return 60
	assert.Equal(t, 55.5, res.Score)
	assert.Equal(t, model.ProfileModerate, res.Profile)
	assert.Len(t, res.Factors, 5)
	assert.Equal(t, 60.0, findFactor(t, res, model.FactorRiskTolerance).Subscore)
	assert.Equal(t, 30.0, findFactor(t, res, model.FactorFinancialStability).Subscore)
}

func TestClassify_Extremes(t *testing.T) {
	high := Classify(model.InvestorProfile{
		Age:                 model.Int(22),
		MonthlyIncome:       model.Int64(20_000_000),
		EmergencyFundMonths: model.Float(12),
		RiskTolerance:       model.RiskAggressive,
		TimeHorizon:         model.Int(10),
		ReturnExpectation:   model.Float(20),
	})
	assert.Equal(t, 91.0, high.Score)
	assert.Equal(t, model.ProfileUltraAggressive, high.Profile)
	assert.Equal(t, model.RecommendEquityFirst, high.Recommendation)

	low := Classify(model.InvestorProfile{
		Age:               model.Int(70),
		MonthlyIncome:     model.Int64(1_000),
		MonthlyEMI:        model.Int64(5_000),
		RiskTolerance:     model.RiskConservative,
		TimeHorizon:       model.Int(1),
		ReturnExpectation: model.Float(5),
	})
	assert.Equal(t, 26.25, low.Score)
	assert.Equal(t, model.ProfileConservative, low.Profile)
	assert.Equal(t, model.RecommendDebtGold, low.Recommendation)
}

func TestClassify_AdvisoryFactorsDoNotChangeScore(t *testing.T) {
	base := referenceProfile()
	base.Dependants = nil

	withAdvisory := base
	withAdvisory.InsuranceAmount = model.Int64(60_000_000)
	withAdvisory.Dependants = model.Int(12)
	withAdvisory.Insurance = &model.Insurance{HasHealth: true}

	a := Classify(base)
	b := Classify(withAdvisory)

	assert.Equal(t, a.Score, b.Score)
	assert.Equal(t, a.Profile, b.Profile)
	assert.Len(t, a.Factors, 5)
	require.Len(t, b.Factors, 7)

	ins := findFactor(t, b, model.FactorInsurance)
	assert.Equal(t, 100.0, ins.Subscore)
	assert.Nil(t, ins.Weight)
	assert.Nil(t, ins.Weighted)
}

func TestClassify_Linearity(t *testing.T) {
	w := DefaultWeights()
	tests := []struct {
		name   string
		before model.InvestorProfile
		after  model.InvestorProfile
		delta  float64
	}{
		{"age 25 to 26", model.InvestorProfile{Age: model.Int(25)}, model.InvestorProfile{Age: model.Int(26)}, -15 * w.Age},
		{"horizon 3 to 4", model.InvestorProfile{TimeHorizon: model.Int(3)}, model.InvestorProfile{TimeHorizon: model.Int(4)}, 30 * w.TimeHorizon},
		{"return 7 to 15", model.InvestorProfile{ReturnExpectation: model.Float(7)}, model.InvestorProfile{ReturnExpectation: model.Float(15)}, 55 * w.ReturnExpectation},
		{"tolerance conservative to aggressive", model.InvestorProfile{RiskTolerance: model.RiskConservative}, model.InvestorProfile{RiskTolerance: model.RiskAggressive}, 60 * w.RiskTolerance},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			before := Classify(tt.before)
			after := Classify(tt.after)
			assert.InDelta(t, tt.delta, after.Score-before.Score, 0.011)
		})
	}
}

func TestClassify_ScoreRangeAndLabelConsistency(t *testing.T) {
	ages := []int{18, 25, 30, 40, 50, 60, 70}
	incomes := []int64{0, 10_000, 80_000, 600_000, 3_000_000, 12_000_000}
	tolerances := []model.RiskTolerance{"", model.RiskConservative, model.RiskModerate, model.RiskAggressive}
	horizons := []int{1, 5, 10}

	for _, age := range ages {
		for _, income := range incomes {
			for _, tol := range tolerances {
				for _, h := range horizons {
					res := Classify(model.InvestorProfile{
						Age:           model.Int(age),
						MonthlyIncome: model.Int64(income),
						MonthlyEMI:    model.Int64(income / 10),
						RiskTolerance: tol,
						TimeHorizon:   model.Int(h),
					})
					assert.GreaterOrEqual(t, res.Score, 0.0)
					assert.LessOrEqual(t, res.Score, 100.0)
					assert.Equal(t, expectedLabel(res.Score), res.Profile, "score %.2f", res.Score)
				}
			}
		}
	}
}

func expectedLabel(score float64) model.ProfileLabel {
	switch {
	case score <= 25:
		return model.ProfileUltraConservative
	case score <= 40:
		return model.ProfileConservative
	case score <= 60:
		return model.ProfileModerate
	case score <= 75:
		return model.ProfileModerateAggressive
	case score <= 90:
		return model.ProfileAggressive
	default:
		return model.ProfileUltraAggressive
	}
}

func TestMapProfile_AllBoundaries(t *testing.T) {
	tb := DefaultTables()
	tests := []struct {
		score float64
		label model.ProfileLabel
	}{
		{0, model.ProfileUltraConservative},
		{25, model.ProfileUltraConservative},
		{25.01, model.ProfileConservative},
		{40, model.ProfileConservative},
		{40.01, model.ProfileModerate},
		{60, model.ProfileModerate},
		{60.01, model.ProfileModerateAggressive},
		{75, model.ProfileModerateAggressive},
		{75.01, model.ProfileAggressive},
		{90, model.ProfileAggressive},
		{90.01, model.ProfileUltraAggressive},
		{100, model.ProfileUltraAggressive},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.label, tb.mapProfile(tt.score), "score %.2f", tt.score)
	}
}

func TestRecommend_Boundaries(t *testing.T) {
	assert.Equal(t, model.RecommendEquityFirst, recommend(100))
	assert.Equal(t, model.RecommendEquityFirst, recommend(70))
	assert.Equal(t, model.RecommendDebtFirst, recommend(69.99))
	assert.Equal(t, model.RecommendDebtFirst, recommend(40))
	assert.Equal(t, model.RecommendDebtGold, recommend(39.99))
	assert.Equal(t, model.RecommendDebtGold, recommend(0))
}

func TestWeights(t *testing.T) {
	w := DefaultWeights()
	assert.InDelta(t, 1.0, w.Sum(), 1e-12)
	assert.NoError(t, w.Validate())
	assert.Equal(t, w, Default().Weights())

	bad := DefaultTables()
	bad.Weights.Age = 0.5
	_, err := NewEngine(bad)
	assert.Error(t, err)

	negative := DefaultTables()
	negative.Weights.Age = -0.25
	negative.Weights.FinancialStability = 0.80
	_, err = NewEngine(negative)
	assert.Error(t, err)
}

func TestClamp(t *testing.T) {
	assert.Equal(t, 0.0, clamp(-3, 0, 100))
	assert.Equal(t, 100.0, clamp(130, 0, 100))
	assert.Equal(t, 42.5, clamp(42.5, 0, 100))
}

func TestRound2(t *testing.T) {
	assert.Equal(t, 61.67, round2(185.0/3))
	assert.Equal(t, 58.33, round2(175.0/3))
	assert.Equal(t, 64.0, round2(63.999999999999993))
}

func TestClassify_DoesNotMutateInput(t *testing.T) {
	p := referenceProfile()
	p.Insurance = &model.Insurance{HasHealth: true}
	before, err := json.Marshal(p)
	require.NoError(t, err)

	Classify(p)

	after, err := json.Marshal(p)
	require.NoError(t, err)
	assert.JSONEq(t, string(before), string(after))
}

func TestClassify_ConcurrentCallsAreDeterministic(t *testing.T) {
	profiles := []model.InvestorProfile{
		referenceProfile(),
		{},
		{RiskTolerance: model.RiskAggressive, InsuranceAmount: model.Int64(3_000_000)},
		{Age: model.Int(60), EmergencyFundAmount: model.Int64(100_000), MonthlyExpenses: model.Int64(40_000)},
	}
	want := make([][]byte, len(profiles))
	for i, p := range profiles {
		b, err := json.Marshal(Classify(p))
		require.NoError(t, err)
		want[i] = b
	}

	var g errgroup.Group
	results := make([][][]byte, 32)
	for w := range results {
		w := w
		results[w] = make([][]byte, len(profiles))
		g.Go(func() error {
			for i, p := range profiles {
				b, err := json.Marshal(Default().Classify(p))
				if err != nil {
					return err
				}
				results[w][i] = b
			}
			return nil
		})
	}
	require.NoError(t, g.Wait())

	for w := range results {
		for i := range profiles {
			assert.Equal(t, want[i], results[w][i], "worker %d profile %d", w, i)
		}
	}
}
