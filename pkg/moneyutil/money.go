package moneyutil

import (
	"github.com/shopspring/decimal"
)

var twelve = decimal.NewFromInt(12)

// MonthlyRate converts an annual rate fraction to its monthly equivalent
// using simple division, the convention mortgage quotes use.
func MonthlyRate(annual decimal.Decimal) decimal.Decimal {
	return annual.Div(twelve)
}

// Grow applies one month of growth at the given monthly rate.
func Grow(balance, monthlyRate decimal.Decimal) decimal.Decimal {
	return balance.Mul(decimal.NewFromInt(1).Add(monthlyRate))
}

// CompoundMonthly returns (1 + annual/12)^months.
func CompoundMonthly(annual decimal.Decimal, months int) decimal.Decimal {
	if annual.IsZero() || months == 0 {
		return decimal.NewFromInt(1)
	}
	base := decimal.NewFromInt(1).Add(MonthlyRate(annual))
	return base.Pow(decimal.NewFromInt(int64(months)))
}

// ClampZero floors a balance at zero. Cash accounts in the planner cannot be
// overdrawn; a draw beyond the balance simply empties it.
func ClampZero(d decimal.Decimal) decimal.Decimal {
	if d.IsNegative() {
		return decimal.Zero
	}
	return d
}

// RoundCents rounds to two decimal places using banker's rounding.
func RoundCents(d decimal.Decimal) decimal.Decimal {
	return d.RoundBank(2)
}

// Min returns the smaller of two amounts.
func Min(a, b decimal.Decimal) decimal.Decimal {
	if a.LessThan(b) {
		return a
	}
	return b
}
