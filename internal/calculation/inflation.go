package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/mpgo/mortgage-planner/internal/domain"
	"github.com/mpgo/mortgage-planner/pkg/moneyutil"
)

// InflationAdjuster scales selected cash-flow categories by elapsed time.
// The multiplier compounds monthly at annual/12, matching the payment-rate
// convention used everywhere else in the engine. It is applied before
// strategy cash flows are aggregated so compounding order is identical
// across strategies.
type InflationAdjuster struct {
	cfg domain.InflationConfig
}

// NewInflationAdjuster creates an adjuster for the given configuration.
func NewInflationAdjuster(cfg domain.InflationConfig) *InflationAdjuster {
	return &InflationAdjuster{cfg: cfg}
}

// Multiplier returns (1 + annual/12)^month.
func (ia *InflationAdjuster) Multiplier(month int) decimal.Decimal {
	return moneyutil.CompoundMonthly(ia.cfg.AnnualRate, month)
}

// Income returns the base income scaled for the month, if the income
// category is inflated; otherwise the base unchanged.
func (ia *InflationAdjuster) Income(base decimal.Decimal, month int) decimal.Decimal {
	if !ia.cfg.ApplyToIncome {
		return base
	}
	return base.Mul(ia.Multiplier(month))
}

// Expenses returns the base expenses scaled for the month, if enabled.
func (ia *InflationAdjuster) Expenses(base decimal.Decimal, month int) decimal.Decimal {
	if !ia.cfg.ApplyToExpenses {
		return base
	}
	return base.Mul(ia.Multiplier(month))
}

// Rent returns the base rent scaled for the month, if enabled.
func (ia *InflationAdjuster) Rent(base decimal.Decimal, month int) decimal.Decimal {
	if !ia.cfg.ApplyToRent {
		return base
	}
	return base.Mul(ia.Multiplier(month))
}
