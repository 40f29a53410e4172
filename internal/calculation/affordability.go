package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/mpgo/mortgage-planner/internal/domain"
)

// Conventional lending thresholds: payment within 28% of income, payment
// plus other obligations within 36%.
var (
	frontEndLimit = decimal.NewFromFloat(0.28)
	backEndLimit  = decimal.NewFromFloat(0.36)
)

// CalculateAffordability screens the mortgage payment against total monthly
// income, counting rental income and recurring securities sales as income.
// With zero income the ratios are undefined and the plan is reported as not
// affordable.
func CalculateAffordability(plan *domain.Plan, payment decimal.Decimal) domain.AffordabilityMetrics {
	total := plan.Income.MonthlyIncome
	if plan.RentEnabled() {
		total = total.Add(plan.Funding.House.MonthlyRent)
	}
	if plan.SecuritiesSaleEnabled() && plan.Funding.Securities.MonthlySell.IsPositive() {
		total = total.Add(plan.Funding.Securities.MonthlySell)
	}

	if !total.IsPositive() {
		return domain.AffordabilityMetrics{TotalMonthlyIncome: total, ZeroIncome: true}
	}

	front := payment.Div(total)
	back := payment.Add(plan.Income.MonthlyExpenses).Div(total)

	m := domain.AffordabilityMetrics{
		TotalMonthlyIncome: total,
		FrontEndRatio:      front,
		BackEndRatio:       back,
		FrontEndAffordable: front.LessThanOrEqual(frontEndLimit),
		BackEndAffordable:  back.LessThanOrEqual(backEndLimit),
	}
	m.Affordable = m.FrontEndAffordable && m.BackEndAffordable
	return m
}
