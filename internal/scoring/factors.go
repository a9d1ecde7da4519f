package scoring

import "InvestorClassifier/internal/model"

// Advisory insurance scores used when only policy flags are known.
const (
	insuranceBoth    = 80.0
	insuranceEither  = 50.0
	insuranceNone    = 30.0
	dependantsNone   = 90.0
	worstCaseEMIRate = 100.0
)

// scoreAge scores by age bracket; younger investors can carry more risk.
// Weight: 0.25
func (t *Tables) scoreAge(age int) float64 {
	return t.age.lookup(float64(age))
}

// scoreIncome scores monthly income against fixed brackets.
func (t *Tables) scoreIncome(income int64) float64 {
	return t.income.lookup(float64(income))
}

// emergencyRatio is the emergency fund measured against a six-month buffer.
// An amount with known expenses takes precedence over a stated month count.
func emergencyRatio(in inputs) float64 {
	switch {
	case in.fundAmount != nil && in.expenses > 0:
		return float64(*in.fundAmount) / float64(6*in.expenses)
	case in.fundMonths != nil:
		return *in.fundMonths / 6
	default:
		return 0
	}
}

func (t *Tables) scoreEmergency(ratio float64) float64 {
	return t.emergency.lookup(ratio)
}

// emiRatio is monthly EMI as a percentage of income. Without a reported
// income the debt load is taken as the worst case.
func emiRatio(in inputs) float64 {
	if !in.incomeReported {
		return worstCaseEMIRate
	}
	return float64(in.emi) / float64(in.income) * 100
}

func (t *Tables) scoreDebt(ratio float64) float64 {
	return t.debt.lookup(ratio)
}

// scoreFinancialStability is the unweighted mean of income, emergency fund
// and debt scores.
// Weight: 0.30
func (t *Tables) scoreFinancialStability(in inputs) float64 {
	income := t.scoreIncome(in.income)
	emergency := t.scoreEmergency(emergencyRatio(in))
	debt := t.scoreDebt(emiRatio(in))
	return (income + emergency + debt) / 3
}

func (t *Tables) scoreToleranceLabel(label model.RiskTolerance) float64 {
	if s, ok := t.tolerance[label]; ok {
		return s
	}
	return neutralScore
}

func (t *Tables) scoreLikert(v int) float64 {
	if s, ok := t.likert[v]; ok {
		return s
	}
	return neutralScore
}

func (t *Tables) scoreDrawdown(r model.DrawdownReaction) float64 {
	if s, ok := t.drawdown[r]; ok {
		return s
	}
	return neutralScore
}

// scoreRiskTolerance uses an explicit label when one is given. Otherwise it
// averages whichever questionnaire answers were supplied, falling back to
// neutral when there are none.
// Weight: 0.20
func (t *Tables) scoreRiskTolerance(in inputs) float64 {
	if in.tolerance != "" {
		return t.scoreToleranceLabel(in.tolerance)
	}

	var subs []float64
	if in.riskAttitude != 0 {
		subs = append(subs, t.scoreLikert(in.riskAttitude))
	}
	if in.knowledge != 0 {
		subs = append(subs, t.scoreLikert(in.knowledge))
	}
	if in.drawdown != "" {
		subs = append(subs, t.scoreDrawdown(in.drawdown))
	}
	if len(subs) == 0 {
		return neutralScore
	}

	sum := 0.0
	for _, s := range subs {
		sum += s
	}
	return sum / float64(len(subs))
}

// scoreTimeHorizon rewards longer investment horizons.
// Weight: 0.15
func (t *Tables) scoreTimeHorizon(years int) float64 {
	return t.horizon.lookup(float64(years))
}

// scoreReturnExpectation maps the expected annual return (%) to a score.
// Weight: 0.10
func (t *Tables) scoreReturnExpectation(pct float64) float64 {
	return t.returns.lookup(pct)
}

// scoreInsurance is advisory. A cover amount wins over policy flags; with
// neither the factor is not reported.
func (t *Tables) scoreInsurance(in inputs) (float64, bool) {
	if in.insuranceAmount != nil {
		if *in.insuranceAmount == 0 {
			return insuranceNone, true
		}
		return t.insurance.lookup(float64(*in.insuranceAmount)), true
	}
	if in.insurance == nil {
		return 0, false
	}
	switch {
	case in.insurance.HasHealth && in.insurance.HasLife:
		return insuranceBoth, true
	case in.insurance.HasHealth || in.insurance.HasLife:
		return insuranceEither, true
	default:
		return insuranceNone, true
	}
}

// scoreDependants is advisory and only reported when the count is known.
func (t *Tables) scoreDependants(in inputs) (float64, bool) {
	if in.dependants == nil {
		return 0, false
	}
	if *in.dependants == 0 {
		return dependantsNone, true
	}
	return t.dependants.lookup(float64(*in.dependants)), true
}
