package model

// DrawdownReaction is what the investor would do after a 10% portfolio drop.
type DrawdownReaction string

const (
	DrawdownSell    DrawdownReaction = "sell"
	DrawdownWait    DrawdownReaction = "wait"
	DrawdownBuyMore DrawdownReaction = "buy_more"
)

// DrawdownReactions lists the recognized reactions in display order.
var DrawdownReactions = []DrawdownReaction{DrawdownWait, DrawdownSell, DrawdownBuyMore}

// RiskTolerance is an explicit, self-declared risk label.
type RiskTolerance string

const (
	RiskConservative RiskTolerance = "conservative"
	RiskModerate     RiskTolerance = "moderate"
	RiskAggressive   RiskTolerance = "aggressive"
)

// Insurance records which policies the investor holds.
type Insurance struct {
	HasHealth bool `json:"has_health"`
	HasLife   bool `json:"has_life"`
}

// InvestorProfile is the self-reported input to a classification.
// Every field is optional; nil pointers and empty enums mean "not provided".
type InvestorProfile struct {
	Age                 *int             `json:"age,omitempty"`
	MonthlyIncome       *int64           `json:"monthly_income,omitempty"`
	MonthlyEMI          *int64           `json:"monthly_emi,omitempty"`
	MonthlyExpenses     *int64           `json:"monthly_expenses,omitempty"`
	EmergencyFundMonths *float64         `json:"emergency_fund_months,omitempty"`
	EmergencyFundAmount *int64           `json:"emergency_fund_amount,omitempty"`
	Insurance           *Insurance       `json:"insurance,omitempty"`
	InsuranceAmount     *int64           `json:"insurance_amount,omitempty"`
	Dependants          *int             `json:"dependants,omitempty"`
	RiskAttitude        *int             `json:"risk_attitude,omitempty"`
	InvestmentKnowledge *int             `json:"investment_knowledge,omitempty"`
	DrawdownReaction    DrawdownReaction `json:"drawdown_reaction,omitempty"`
	RiskTolerance       RiskTolerance    `json:"risk_tolerance,omitempty"`
	TimeHorizon         *int             `json:"time_horizon,omitempty"`
	ReturnExpectation   *float64         `json:"return_expectation,omitempty"`
}

// Int returns a pointer to v, for building profiles in code.
func Int(v int) *int { return &v }

// Int64 returns a pointer to v.
func Int64(v int64) *int64 { return &v }

// Float returns a pointer to v.
func Float(v float64) *float64 { return &v }
