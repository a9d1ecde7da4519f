package scoring

import "InvestorClassifier/internal/model"

// Defaults applied when a field is absent or zero.
const (
	DefaultAge               = 30
	DefaultTimeHorizon       = 5
	DefaultReturnExpectation = 10.0
)

// inputs is an InvestorProfile with every default already applied.
type inputs struct {
	age int

	// income is the divisor for the EMI ratio and is never zero.
	// incomeReported is false when the profile carried no income at all.
	income         int64
	incomeReported bool
	emi            int64
	expenses       int64

	fundMonths *float64
	fundAmount *int64

	insurance       *model.Insurance
	insuranceAmount *int64
	dependants      *int

	// Zero means "not provided" for both Likert answers.
	riskAttitude int
	knowledge    int
	drawdown     model.DrawdownReaction
	tolerance    model.RiskTolerance

	timeHorizon       int
	returnExpectation float64
}

// resolve applies field defaults once, before any scoring happens.
// A zero value is treated the same as an absent one for age, income,
// time horizon, return expectation and the Likert answers.
func resolve(p model.InvestorProfile) inputs {
	in := inputs{
		age:               intOr(p.Age, DefaultAge),
		emi:               int64Or(p.MonthlyEMI, 0),
		expenses:          int64Or(p.MonthlyExpenses, 0),
		fundMonths:        p.EmergencyFundMonths,
		fundAmount:        p.EmergencyFundAmount,
		insurance:         p.Insurance,
		insuranceAmount:   p.InsuranceAmount,
		dependants:        p.Dependants,
		riskAttitude:      intOr(p.RiskAttitude, 0),
		knowledge:         intOr(p.InvestmentKnowledge, 0),
		drawdown:          p.DrawdownReaction,
		tolerance:         p.RiskTolerance,
		timeHorizon:       intOr(p.TimeHorizon, DefaultTimeHorizon),
		returnExpectation: floatOr(p.ReturnExpectation, DefaultReturnExpectation),
	}

	in.income = int64Or(p.MonthlyIncome, 1)
	in.incomeReported = p.MonthlyIncome != nil && *p.MonthlyIncome != 0
	return in
}

func intOr(v *int, def int) int {
	if v == nil || *v == 0 {
		return def
	}
	return *v
}

func int64Or(v *int64, def int64) int64 {
	if v == nil || *v == 0 {
		return def
	}
	return *v
}

func floatOr(v *float64, def float64) float64 {
	if v == nil || *v == 0 {
		return def
	}
	return *v
}
