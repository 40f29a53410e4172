package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/mpgo/mortgage-planner/internal/domain"
	"github.com/mpgo/mortgage-planner/pkg/moneyutil"
)

// balanceEpsilon absorbs sub-cent residue so balances terminate at zero.
var balanceEpsilon = decimal.NewFromFloat(0.01)

// MonthlyPayment returns the fixed monthly payment for a mortgage using the
// standard annuity formula. A zero rate degenerates to straight-line
// principal repayment.
func MonthlyPayment(principal, annualRate decimal.Decimal, termMonths int) decimal.Decimal {
	if termMonths <= 0 || !principal.IsPositive() {
		return decimal.Zero
	}
	n := decimal.NewFromInt(int64(termMonths))
	if annualRate.IsZero() {
		return principal.Div(n)
	}
	rate := moneyutil.MonthlyRate(annualRate)
	// P * r(1+r)^n / ((1+r)^n - 1)
	factor := decimal.NewFromInt(1).Add(rate).Pow(n)
	numerator := principal.Mul(rate).Mul(factor)
	denominator := factor.Sub(decimal.NewFromInt(1))
	return numerator.Div(denominator)
}

// AmortizationSchedule generates the per-month repayment table for a
// mortgage, optionally with a fixed extra monthly principal payment. The
// schedule stops early once the balance reaches zero.
func AmortizationSchedule(m domain.MortgageParameters, extraPayment decimal.Decimal) []domain.AmortizationEntry {
	payment := MonthlyPayment(m.Principal, m.AnnualRate, m.TermMonths)
	rate := moneyutil.MonthlyRate(m.AnnualRate)

	schedule := make([]domain.AmortizationEntry, 0, m.TermMonths)
	balance := m.Principal
	totalInterest := decimal.Zero

	for month := 1; month <= m.TermMonths; month++ {
		interest := balance.Mul(rate)
		principalPay := moneyutil.Min(payment.Sub(interest).Add(extraPayment), balance)
		totalInterest = totalInterest.Add(interest)
		balance = balance.Sub(principalPay)
		if balance.LessThan(balanceEpsilon) {
			balance = decimal.Zero
		}

		schedule = append(schedule, domain.AmortizationEntry{
			Month:            month,
			Payment:          principalPay.Add(interest),
			Principal:        principalPay,
			Interest:         interest,
			RemainingBalance: balance,
			TotalInterest:    totalInterest,
		})

		if balance.IsZero() {
			break
		}
	}
	return schedule
}
