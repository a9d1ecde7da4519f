package api

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"InvestorClassifier/internal/model"
)

func TestClassifyRequest_ToProfile(t *testing.T) {
	req := ClassifyRequest{
		Age:              model.Int(40),
		Insurance:        &InsuranceRequest{HasLife: true},
		DrawdownReaction: "buy_more",
		RiskTolerance:    "aggressive",
	}
	p := req.ToProfile()

	assert.Equal(t, 40, *p.Age)
	require.NotNil(t, p.Insurance)
	assert.True(t, p.Insurance.HasLife)
	assert.Equal(t, model.DrawdownBuyMore, p.DrawdownReaction)
	assert.Equal(t, model.RiskAggressive, p.RiskTolerance)
	assert.Nil(t, p.MonthlyIncome)
}

func TestFormRequest_ToProfile(t *testing.T) {
	base := ClassifyRequest{
		EmergencyFundMonths: model.Float(3),
		EmergencyFundAmount: model.Int64(100_000),
		MonthlyExpenses:     model.Int64(20_000),
	}

	months := FormRequest{ClassifyRequest: base, EmergencyMode: emergencyByMonths, HasHealth: true}
	p := months.ToProfile()
	assert.Equal(t, 3.0, *p.EmergencyFundMonths)
	assert.Nil(t, p.EmergencyFundAmount)
	assert.Nil(t, p.MonthlyExpenses)
	assert.Equal(t, &model.Insurance{HasHealth: true}, p.Insurance)

	amount := FormRequest{ClassifyRequest: base, EmergencyMode: emergencyByAmount}
	p = amount.ToProfile()
	assert.Nil(t, p.EmergencyFundMonths)
	assert.Equal(t, int64(100_000), *p.EmergencyFundAmount)
	assert.Equal(t, int64(20_000), *p.MonthlyExpenses)
	assert.Equal(t, &model.Insurance{}, p.Insurance)
}

func TestValidationDetails(t *testing.T) {
	err := validate.Struct(&FormRequest{
		ClassifyRequest: ClassifyRequest{Dependants: model.Int(-1)},
		EmergencyMode:   "weeks",
	})
	require.Error(t, err)

	details := validationDetails(err)
	assert.Equal(t, "must satisfy gte 0", details["dependants"])
	assert.Equal(t, "must satisfy oneof months amount", details["emergency_mode"])
}
