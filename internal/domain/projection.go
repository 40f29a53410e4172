package domain

import (
	"github.com/shopspring/decimal"
)

// StrategyID identifies one funding strategy in a plan result.
type StrategyID string

const (
	StrategyIncome         StrategyID = "income"
	StrategyHouseSale      StrategyID = "house_sale"
	StrategyRent           StrategyID = "rent"
	StrategySecuritiesSale StrategyID = "securities_sale"
	StrategyPledgedAsset   StrategyID = "pledged_asset"
	StrategyRentSecurities StrategyID = "rent_securities"
)

// MonthlySnapshot is one simulated month's balances for a single strategy.
// Index 0 holds the initial state before the first payment. Snapshots are
// produced once per run and never mutated afterwards.
type MonthlySnapshot struct {
	Month int `json:"month"`

	MortgageBalance   decimal.Decimal `json:"mortgage_balance"`
	PropertyValue     decimal.Decimal `json:"property_value"`
	HouseValue        decimal.Decimal `json:"house_value"` // existing house, zero once sold
	SavingsBalance    decimal.Decimal `json:"savings_balance"`
	SecuritiesBalance decimal.Decimal `json:"securities_balance"`
	PledgedBalance    decimal.Decimal `json:"pledged_balance"`

	Payment      decimal.Decimal `json:"payment"`
	Interest     decimal.Decimal `json:"interest"`
	PrincipalPay decimal.Decimal `json:"principal_pay"`
	CashFlow     decimal.Decimal `json:"cash_flow"`
	NetWorth     decimal.Decimal `json:"net_worth"`

	InflationMultiplier decimal.Decimal `json:"inflation_multiplier"`
}

// HomeEquity returns the financed property's value net of the mortgage.
func (ms *MonthlySnapshot) HomeEquity() decimal.Decimal {
	return ms.PropertyValue.Sub(ms.MortgageBalance)
}

// CalculateNetWorth sums asset values and subtracts outstanding liabilities.
func (ms *MonthlySnapshot) CalculateNetWorth() decimal.Decimal {
	return ms.HomeEquity().
		Add(ms.HouseValue).
		Add(ms.SavingsBalance).
		Add(ms.SecuritiesBalance).
		Sub(ms.PledgedBalance)
}

// StrategyProjection is the full month-indexed trajectory for one strategy.
type StrategyProjection struct {
	Strategy  StrategyID        `json:"strategy"`
	Snapshots []MonthlySnapshot `json:"snapshots"`
}

// Final returns the last snapshot, or a zero value for an empty projection.
func (sp *StrategyProjection) Final() MonthlySnapshot {
	if len(sp.Snapshots) == 0 {
		return MonthlySnapshot{}
	}
	return sp.Snapshots[len(sp.Snapshots)-1]
}

// Metric names a per-month series extractable from a projection.
type Metric string

const (
	MetricNetWorth        Metric = "net_worth"
	MetricMortgageBalance Metric = "mortgage_balance"
	MetricSavings         Metric = "savings"
	MetricSecurities      Metric = "securities"
	MetricCashFlow        Metric = "cash_flow"
)

// Series extracts the named metric as an ordered per-month series.
func (sp *StrategyProjection) Series(metric Metric) []decimal.Decimal {
	out := make([]decimal.Decimal, len(sp.Snapshots))
	for i, s := range sp.Snapshots {
		switch metric {
		case MetricMortgageBalance:
			out[i] = s.MortgageBalance
		case MetricSavings:
			out[i] = s.SavingsBalance
		case MetricSecurities:
			out[i] = s.SecuritiesBalance
		case MetricCashFlow:
			out[i] = s.CashFlow
		default:
			out[i] = s.NetWorth
		}
	}
	return out
}

// AmortizationEntry is one row of the standalone amortization schedule.
type AmortizationEntry struct {
	Month            int             `json:"month"`
	Payment          decimal.Decimal `json:"payment"`
	Principal        decimal.Decimal `json:"principal"`
	Interest         decimal.Decimal `json:"interest"`
	RemainingBalance decimal.Decimal `json:"remaining_balance"`
	TotalInterest    decimal.Decimal `json:"total_interest"`
}

// AffordabilityMetrics reports the classic front-end / back-end income ratio
// screen. Ratios are fractions of income; ZeroIncome flags the degenerate
// case where no income exists to ratio against.
type AffordabilityMetrics struct {
	TotalMonthlyIncome decimal.Decimal `json:"total_monthly_income"`
	FrontEndRatio      decimal.Decimal `json:"front_end_ratio"`
	BackEndRatio       decimal.Decimal `json:"back_end_ratio"`
	FrontEndAffordable bool            `json:"front_end_affordable"`
	BackEndAffordable  bool            `json:"back_end_affordable"`
	Affordable         bool            `json:"affordable"`
	ZeroIncome         bool            `json:"zero_income"`
}

// PlanResult is the complete output of one simulation run.
type PlanResult struct {
	Name           string               `json:"name,omitempty"`
	MonthlyPayment decimal.Decimal      `json:"monthly_payment"`
	TotalInterest  decimal.Decimal      `json:"total_interest"`
	Affordability  AffordabilityMetrics `json:"affordability"`
	Schedule       []AmortizationEntry  `json:"schedule"`
	Strategies     []StrategyProjection `json:"strategies"`
}

// Strategy returns the projection for the given strategy, or nil if the run
// did not produce it.
func (pr *PlanResult) Strategy(id StrategyID) *StrategyProjection {
	for i := range pr.Strategies {
		if pr.Strategies[i].Strategy == id {
			return &pr.Strategies[i]
		}
	}
	return nil
}

// Baseline returns the always-present earned-income projection.
func (pr *PlanResult) Baseline() *StrategyProjection {
	return pr.Strategy(StrategyIncome)
}

// ScenarioComparison is two stored scenarios simulated side by side on a
// single metric of a single strategy.
type ScenarioComparison struct {
	Metric    Metric            `json:"metric"`
	Strategy  StrategyID        `json:"strategy"`
	NameA     string            `json:"name_a"`
	NameB     string            `json:"name_b"`
	SeriesA   []decimal.Decimal `json:"series_a"`
	SeriesB   []decimal.Decimal `json:"series_b"`
	Crossover *int              `json:"crossover,omitempty"` // first month B overtakes A, nil if never
}
