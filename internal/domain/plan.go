package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ProceedsTarget selects where house sale proceeds are routed.
type ProceedsTarget string

const (
	ProceedsToSavings    ProceedsTarget = "savings"
	ProceedsToSecurities ProceedsTarget = "securities"
	ProceedsToPrincipal  ProceedsTarget = "principal"
)

// MortgageParameters describes the mortgage being financed.
type MortgageParameters struct {
	Principal        decimal.Decimal `yaml:"principal" json:"principal"`
	AnnualRate       decimal.Decimal `yaml:"annual_rate" json:"annual_rate"` // fraction, e.g. 0.045
	TermMonths       int             `yaml:"term_months" json:"term_months"`
	AppreciationRate decimal.Decimal `yaml:"appreciation_rate" json:"appreciation_rate"` // annual, for the financed property
}

// IncomeParameters describes recurring earned income and living expenses,
// both monthly and exclusive of the mortgage payment.
type IncomeParameters struct {
	MonthlyIncome   decimal.Decimal `yaml:"monthly_income" json:"monthly_income"`
	MonthlyExpenses decimal.Decimal `yaml:"monthly_expenses" json:"monthly_expenses"`
}

// SavingsParameters describes the cash account that absorbs monthly leftover
// cash and lump-sum proceeds. The balance is never allowed below zero.
type SavingsParameters struct {
	InitialBalance decimal.Decimal `yaml:"initial_balance" json:"initial_balance"`
	AnnualRate     decimal.Decimal `yaml:"annual_rate" json:"annual_rate"`
}

// HouseParameters describes an existing house that can be sold or rented out.
// Simulated months start at 1, so SellMonth must be positive to schedule a
// sale; zero or negative means the house is never sold.
type HouseParameters struct {
	Value            decimal.Decimal `yaml:"value" json:"value"`
	AppreciationRate decimal.Decimal `yaml:"appreciation_rate" json:"appreciation_rate"`
	SellMonth        int             `yaml:"sell_month" json:"sell_month"`
	MonthlyRent      decimal.Decimal `yaml:"monthly_rent" json:"monthly_rent"`
	ProceedsTarget   ProceedsTarget  `yaml:"proceeds_target,omitempty" json:"proceeds_target,omitempty"`
}

// SecuritiesParameters describes an investment portfolio that can be
// liquidated all at once (SellMonth, zero = disabled), drawn down monthly
// (MonthlySell, zero = disabled), or both.
type SecuritiesParameters struct {
	Value       decimal.Decimal `yaml:"value" json:"value"`
	GrowthRate  decimal.Decimal `yaml:"growth_rate" json:"growth_rate"`
	SellMonth   int             `yaml:"sell_month" json:"sell_month"`
	MonthlySell decimal.Decimal `yaml:"monthly_sell" json:"monthly_sell"`
}

// PledgedAssetParameters describes borrowing against securities as collateral
// without liquidating them. The borrowed amount lands in savings up front and
// accrues interest-only cost each month; a RepayMonth that is zero or
// negative means the loan is carried for the whole term.
type PledgedAssetParameters struct {
	Amount     decimal.Decimal `yaml:"amount" json:"amount"`
	AnnualRate decimal.Decimal `yaml:"annual_rate" json:"annual_rate"`
	RepayMonth int             `yaml:"repay_month" json:"repay_month"`
}

// FundingStrategyParameters bundles the optional funding sources.
type FundingStrategyParameters struct {
	House        HouseParameters        `yaml:"house" json:"house"`
	Securities   SecuritiesParameters   `yaml:"securities" json:"securities"`
	PledgedAsset PledgedAssetParameters `yaml:"pledged_asset" json:"pledged_asset"`
}

// InflationConfig selects which cash-flow categories are scaled by inflation.
type InflationConfig struct {
	AnnualRate      decimal.Decimal `yaml:"annual_rate" json:"annual_rate"`
	ApplyToIncome   bool            `yaml:"apply_to_income" json:"apply_to_income"`
	ApplyToExpenses bool            `yaml:"apply_to_expenses" json:"apply_to_expenses"`
	ApplyToRent     bool            `yaml:"apply_to_rent" json:"apply_to_rent"`
}

// Plan is the complete parameter set for one simulation run and the unit the
// scenario store persists under a name. The engine never mutates it.
type Plan struct {
	Mortgage  MortgageParameters        `yaml:"mortgage" json:"mortgage"`
	Income    IncomeParameters          `yaml:"income" json:"income"`
	Savings   SavingsParameters         `yaml:"savings" json:"savings"`
	Funding   FundingStrategyParameters `yaml:"funding" json:"funding"`
	Inflation InflationConfig           `yaml:"inflation" json:"inflation"`
}

// ScenarioInfo identifies a stored scenario.
type ScenarioInfo struct {
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// HouseSaleEnabled reports whether the plan schedules a house sale.
func (p *Plan) HouseSaleEnabled() bool {
	return p.Funding.House.SellMonth > 0 && p.Funding.House.Value.IsPositive()
}

// RentEnabled reports whether the existing house produces rental income.
func (p *Plan) RentEnabled() bool {
	return p.Funding.House.MonthlyRent.IsPositive() && p.Funding.House.Value.IsPositive()
}

// SecuritiesSaleEnabled reports whether any securities liquidation is scheduled.
func (p *Plan) SecuritiesSaleEnabled() bool {
	if !p.Funding.Securities.Value.IsPositive() {
		return false
	}
	return p.Funding.Securities.SellMonth > 0 || p.Funding.Securities.MonthlySell.IsPositive()
}

// PledgedAssetEnabled reports whether a pledged-asset loan is configured.
func (p *Plan) PledgedAssetEnabled() bool {
	return p.Funding.PledgedAsset.Amount.IsPositive()
}

// HouseProceedsTarget returns the configured routing for house sale proceeds,
// defaulting to the savings account.
func (p *Plan) HouseProceedsTarget() ProceedsTarget {
	if p.Funding.House.ProceedsTarget == "" {
		return ProceedsToSavings
	}
	return p.Funding.House.ProceedsTarget
}
