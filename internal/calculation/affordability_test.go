package calculation

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestCalculateAffordability_WithinLimits(t *testing.T) {
	plan := disabledPlan()
	plan.Income.MonthlyIncome = decimal.NewFromInt(8000)
	plan.Income.MonthlyExpenses = decimal.NewFromInt(500)

	m := CalculateAffordability(plan, decimal.NewFromInt(2000))

	assert.False(t, m.ZeroIncome)
	assert.True(t, m.FrontEndRatio.Equal(decimal.NewFromFloat(0.25)))
	assert.True(t, m.BackEndRatio.Equal(decimal.NewFromFloat(0.3125)))
	assert.True(t, m.FrontEndAffordable)
	assert.True(t, m.BackEndAffordable)
	assert.True(t, m.Affordable)
}

func TestCalculateAffordability_FrontEndTooHigh(t *testing.T) {
	plan := disabledPlan()
	plan.Income.MonthlyIncome = decimal.NewFromInt(5000)
	plan.Income.MonthlyExpenses = decimal.Zero

	m := CalculateAffordability(plan, decimal.NewFromInt(1500))

	assert.False(t, m.FrontEndAffordable, "30% exceeds the 28% limit")
	assert.True(t, m.BackEndAffordable)
	assert.False(t, m.Affordable)
}

func TestCalculateAffordability_BackEndTooHigh(t *testing.T) {
	plan := disabledPlan()
	plan.Income.MonthlyIncome = decimal.NewFromInt(10000)
	plan.Income.MonthlyExpenses = decimal.NewFromInt(2000)

	m := CalculateAffordability(plan, decimal.NewFromInt(2500))

	assert.True(t, m.FrontEndAffordable)
	assert.False(t, m.BackEndAffordable, "45% exceeds the 36% limit")
	assert.False(t, m.Affordable)
}

func TestCalculateAffordability_CountsRentAndMonthlySales(t *testing.T) {
	plan := disabledPlan()
	plan.Income.MonthlyIncome = decimal.NewFromInt(4000)
	plan.Income.MonthlyExpenses = decimal.Zero
	plan.Funding.House.MonthlyRent = decimal.NewFromInt(1500)
	plan.Funding.Securities.MonthlySell = decimal.NewFromInt(500)

	m := CalculateAffordability(plan, decimal.NewFromInt(1500))

	assert.True(t, m.TotalMonthlyIncome.Equal(decimal.NewFromInt(6000)))
	assert.True(t, m.FrontEndRatio.Equal(decimal.NewFromFloat(0.25)))
	assert.True(t, m.Affordable)
}

func TestCalculateAffordability_MonthlySellNeedsAPortfolio(t *testing.T) {
	plan := disabledPlan()
	plan.Income.MonthlyIncome = decimal.NewFromInt(4000)
	plan.Funding.Securities.Value = decimal.Zero
	plan.Funding.Securities.MonthlySell = decimal.NewFromInt(500)

	m := CalculateAffordability(plan, decimal.NewFromInt(1000))
	assert.True(t, m.TotalMonthlyIncome.Equal(decimal.NewFromInt(4000)),
		"sales from an empty portfolio are not income")
}

func TestCalculateAffordability_ZeroIncome(t *testing.T) {
	plan := disabledPlan()
	plan.Income.MonthlyIncome = decimal.Zero
	plan.Income.MonthlyExpenses = decimal.NewFromInt(1000)

	m := CalculateAffordability(plan, decimal.NewFromInt(1500))
	assert.True(t, m.ZeroIncome)
	assert.False(t, m.Affordable)
}
