package api

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"InvestorClassifier/internal/model"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		for _, tag := range []string{"json", "form"} {
			name := strings.SplitN(fld.Tag.Get(tag), ",", 2)[0]
			if name != "" && name != "-" {
				return name
			}
		}
		return fld.Name
	})
	return v
}

// InsuranceRequest mirrors model.Insurance on the wire.
type InsuranceRequest struct {
	HasHealth bool `json:"has_health"`
	HasLife   bool `json:"has_life"`
}

// ClassifyRequest is the JSON body of POST /classify. Absent fields stay nil.
type ClassifyRequest struct {
	Age                 *int              `json:"age" form:"age" validate:"omitempty,gte=0,lte=150"`
	MonthlyIncome       *int64            `json:"monthly_income" form:"monthly_income" validate:"omitempty,gte=0"`
	MonthlyEMI          *int64            `json:"monthly_emi" form:"monthly_emi" validate:"omitempty,gte=0"`
	MonthlyExpenses     *int64            `json:"monthly_expenses" form:"monthly_expenses" validate:"omitempty,gte=0"`
	EmergencyFundMonths *float64          `json:"emergency_fund_months" form:"emergency_fund_months" validate:"omitempty,gte=0"`
	EmergencyFundAmount *int64            `json:"emergency_fund_amount" form:"emergency_fund_amount" validate:"omitempty,gte=0"`
	Insurance           *InsuranceRequest `json:"insurance" form:"-"`
	InsuranceAmount     *int64            `json:"insurance_amount" form:"insurance_amount" validate:"omitempty,gte=0"`
	Dependants          *int              `json:"dependants" form:"dependants" validate:"omitempty,gte=0"`
	RiskAttitude        *int              `json:"risk_attitude" form:"risk_attitude" validate:"omitempty,gte=0,lte=5"`
	InvestmentKnowledge *int              `json:"investment_knowledge" form:"investment_knowledge" validate:"omitempty,gte=0,lte=5"`
	DrawdownReaction    string            `json:"drawdown_reaction" form:"drawdown_reaction" validate:"omitempty,oneof=sell wait buy_more"`
	RiskTolerance       string            `json:"risk_tolerance" form:"risk_tolerance" validate:"omitempty,oneof=conservative moderate aggressive"`
	TimeHorizon         *int              `json:"time_horizon" form:"time_horizon" validate:"omitempty,gte=0"`
	ReturnExpectation   *float64          `json:"return_expectation" form:"return_expectation"`
}

// ToProfile converts the request into the engine's input record.
func (r *ClassifyRequest) ToProfile() model.InvestorProfile {
	p := model.InvestorProfile{
		Age:                 r.Age,
		MonthlyIncome:       r.MonthlyIncome,
		MonthlyEMI:          r.MonthlyEMI,
		MonthlyExpenses:     r.MonthlyExpenses,
		EmergencyFundMonths: r.EmergencyFundMonths,
		EmergencyFundAmount: r.EmergencyFundAmount,
		InsuranceAmount:     r.InsuranceAmount,
		Dependants:          r.Dependants,
		RiskAttitude:        r.RiskAttitude,
		InvestmentKnowledge: r.InvestmentKnowledge,
		DrawdownReaction:    model.DrawdownReaction(r.DrawdownReaction),
		RiskTolerance:       model.RiskTolerance(r.RiskTolerance),
		TimeHorizon:         r.TimeHorizon,
		ReturnExpectation:   r.ReturnExpectation,
	}
	if r.Insurance != nil {
		p.Insurance = &model.Insurance{HasHealth: r.Insurance.HasHealth, HasLife: r.Insurance.HasLife}
	}
	return p
}

// Emergency fund input modes offered by the web form.
const (
	emergencyByMonths = "months"
	emergencyByAmount = "amount"
)

// FormRequest is the web form submission. The emergency fund is given
// either in months or as an amount plus monthly expenses.
type FormRequest struct {
	ClassifyRequest
	EmergencyMode string `form:"emergency_mode" validate:"omitempty,oneof=months amount"`
	HasHealth     bool   `form:"has_health"`
	HasLife       bool   `form:"has_life"`
}

// ToProfile keeps only the emergency inputs of the chosen mode and always
// reports the insurance checkboxes.
func (r *FormRequest) ToProfile() model.InvestorProfile {
	p := r.ClassifyRequest.ToProfile()
	if r.EmergencyMode == emergencyByAmount {
		p.EmergencyFundMonths = nil
	} else {
		p.EmergencyFundAmount = nil
		p.MonthlyExpenses = nil
	}
	p.Insurance = &model.Insurance{HasHealth: r.HasHealth, HasLife: r.HasLife}
	return p
}

// validationDetails maps each failing field to a short reason.
func validationDetails(err error) map[string]string {
	details := make(map[string]string)
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		details["request"] = err.Error()
		return details
	}
	for _, fe := range verrs {
		msg := fe.Tag()
		if fe.Param() != "" {
			msg += " " + fe.Param()
		}
		details[fe.Field()] = "must satisfy " + msg
	}
	return details
}
