package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/mpgo/mortgage-planner/internal/domain"
	"github.com/mpgo/mortgage-planner/pkg/moneyutil"
)

// BalanceState carries the running balances for one strategy's simulation.
// Adjusters may move money between accounts directly; recurring cash items
// are reported through CashEffect instead so the engine can aggregate them
// into the month's cash flow.
type BalanceState struct {
	Mortgage   decimal.Decimal
	Property   decimal.Decimal
	House      decimal.Decimal
	Savings    decimal.Decimal
	Securities decimal.Decimal
	Pledged    decimal.Decimal
	HouseSold  bool
}

// CashEffect is a strategy's contribution to one month's cash flow.
type CashEffect struct {
	// RentIncome adds to the month's leftover cash.
	RentIncome decimal.Decimal
	// LoanCost subtracts from the month's leftover cash.
	LoanCost decimal.Decimal
	// ExtraPrincipal is applied against the mortgage on top of the
	// scheduled payment, funded by proceeds rather than income.
	ExtraPrincipal decimal.Decimal
}

// StrategyAdjuster is one funding source's monthly transformation. Adjusters
// are pure with respect to their parameters: identical (month, state) inputs
// produce identical effects.
type StrategyAdjuster interface {
	Name() string
	Adjust(month int, st *BalanceState) CashEffect
}

// HouseSaleAdjuster sells the existing house at a configured month and
// routes the appreciated proceeds to savings, securities, or mortgage
// principal. A SellMonth of zero or below schedules nothing.
type HouseSaleAdjuster struct {
	SellMonth int
	Target    domain.ProceedsTarget
}

func (a *HouseSaleAdjuster) Name() string { return "house_sale" }

func (a *HouseSaleAdjuster) Adjust(month int, st *BalanceState) CashEffect {
	if a.SellMonth <= 0 || month != a.SellMonth || st.HouseSold {
		return CashEffect{}
	}
	proceeds := st.House
	st.House = decimal.Zero
	st.HouseSold = true

	switch a.Target {
	case domain.ProceedsToSecurities:
		st.Securities = st.Securities.Add(proceeds)
	case domain.ProceedsToPrincipal:
		return CashEffect{ExtraPrincipal: proceeds}
	default:
		st.Savings = st.Savings.Add(proceeds)
	}
	return CashEffect{}
}

// RentAdjuster adds recurring rental income while the existing house remains
// unsold. Rent is inflation-adjusted when the rent category is enabled.
type RentAdjuster struct {
	MonthlyRent decimal.Decimal
	Inflation   *InflationAdjuster
}

func (a *RentAdjuster) Name() string { return "rent" }

func (a *RentAdjuster) Adjust(month int, st *BalanceState) CashEffect {
	if st.HouseSold || !a.MonthlyRent.IsPositive() {
		return CashEffect{}
	}
	return CashEffect{RentIncome: a.Inflation.Rent(a.MonthlyRent, month)}
}

// SecuritiesSaleAdjuster liquidates securities into savings. A one-time full
// sale at SellMonth and a recurring monthly partial sale are independent:
// monthly sales run until the liquidation month (or the whole term when no
// liquidation is scheduled), selling whatever remains when the balance falls
// short.
type SecuritiesSaleAdjuster struct {
	SellMonth   int
	MonthlySell decimal.Decimal
}

func (a *SecuritiesSaleAdjuster) Name() string { return "securities_sale" }

func (a *SecuritiesSaleAdjuster) Adjust(month int, st *BalanceState) CashEffect {
	var sold decimal.Decimal

	switch {
	case a.SellMonth > 0 && month == a.SellMonth:
		sold = st.Securities
	case a.SellMonth == 0 || month < a.SellMonth:
		if a.MonthlySell.IsPositive() {
			sold = moneyutil.Min(a.MonthlySell, st.Securities)
		}
	}

	if sold.IsPositive() {
		st.Securities = st.Securities.Sub(sold)
		st.Savings = st.Savings.Add(sold)
	}
	return CashEffect{}
}

// PledgedAssetAdjuster borrows against securities without liquidating them.
// The borrowed cash lands in savings in month one; an interest-only cost is
// charged to cash flow while the loan is outstanding. At RepayMonth (when
// positive) the loan is paid down from savings as far as the balance allows.
type PledgedAssetAdjuster struct {
	Amount     decimal.Decimal
	AnnualRate decimal.Decimal
	RepayMonth int
}

func (a *PledgedAssetAdjuster) Name() string { return "pledged_asset" }

func (a *PledgedAssetAdjuster) Adjust(month int, st *BalanceState) CashEffect {
	if month == 1 && a.Amount.IsPositive() {
		st.Pledged = a.Amount
		st.Savings = st.Savings.Add(a.Amount)
	}

	cost := st.Pledged.Mul(moneyutil.MonthlyRate(a.AnnualRate))

	if a.RepayMonth > 0 && month == a.RepayMonth && st.Pledged.IsPositive() {
		repay := moneyutil.Min(st.Savings, st.Pledged)
		st.Savings = st.Savings.Sub(repay)
		st.Pledged = st.Pledged.Sub(repay)
	}
	return CashEffect{LoanCost: cost}
}
