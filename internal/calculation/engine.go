package calculation

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/mpgo/mortgage-planner/internal/domain"
	"github.com/mpgo/mortgage-planner/pkg/moneyutil"
)

// SimulationEngine runs the month-by-month funding simulation for a plan.
// It is deterministic: identical plans produce identical results.
type SimulationEngine struct {
	Logger Logger
}

// NewSimulationEngine creates an engine with a no-op logger.
func NewSimulationEngine() *SimulationEngine {
	return &SimulationEngine{Logger: NopLogger{}}
}

// SetLogger sets the engine logger. A nil logger restores the no-op default.
func (se *SimulationEngine) SetLogger(l Logger) {
	if l == nil {
		se.Logger = NopLogger{}
		return
	}
	se.Logger = l
}

// RunPlan simulates every enabled funding strategy for the plan and returns
// the combined result. The earned-income baseline is always produced. Input
// is assumed validated at the config boundary; only invariants that would
// corrupt the arithmetic are re-checked here.
func (se *SimulationEngine) RunPlan(ctx context.Context, plan *domain.Plan) (*domain.PlanResult, error) {
	if plan.Mortgage.TermMonths <= 0 {
		return nil, fmt.Errorf("term must be positive, got %d months", plan.Mortgage.TermMonths)
	}
	if plan.Mortgage.Principal.IsNegative() {
		return nil, fmt.Errorf("principal cannot be negative, got %s", plan.Mortgage.Principal)
	}

	payment := MonthlyPayment(plan.Mortgage.Principal, plan.Mortgage.AnnualRate, plan.Mortgage.TermMonths)
	schedule := AmortizationSchedule(plan.Mortgage, decimal.Zero)

	totalInterest := decimal.Zero
	if len(schedule) > 0 {
		totalInterest = schedule[len(schedule)-1].TotalInterest
	}

	result := &domain.PlanResult{
		MonthlyPayment: payment,
		TotalInterest:  totalInterest,
		Affordability:  CalculateAffordability(plan, payment),
		Schedule:       schedule,
	}

	for _, id := range enabledStrategies(plan) {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		proj := se.simulateStrategy(plan, payment, id)
		result.Strategies = append(result.Strategies, proj)
		se.Logger.Debugf("simulated strategy %s: final net worth %s", id, proj.Snapshots[len(proj.Snapshots)-1].NetWorth.StringFixed(2))
	}

	return result, nil
}

// enabledStrategies lists the projections a plan produces, baseline first.
func enabledStrategies(plan *domain.Plan) []domain.StrategyID {
	ids := []domain.StrategyID{domain.StrategyIncome}
	if plan.HouseSaleEnabled() {
		ids = append(ids, domain.StrategyHouseSale)
	}
	if plan.RentEnabled() {
		ids = append(ids, domain.StrategyRent)
	}
	if plan.SecuritiesSaleEnabled() {
		ids = append(ids, domain.StrategySecuritiesSale)
	}
	if plan.PledgedAssetEnabled() {
		ids = append(ids, domain.StrategyPledgedAsset)
	}
	if plan.RentEnabled() && plan.SecuritiesSaleEnabled() {
		ids = append(ids, domain.StrategyRentSecurities)
	}
	return ids
}

// adjustersFor builds the adjuster chain for one strategy. Strategies are
// independent: each projection applies only its own funding source, so the
// combined rent-plus-securities strategy is the only one mixing two.
func adjustersFor(plan *domain.Plan, id domain.StrategyID, inflation *InflationAdjuster) []StrategyAdjuster {
	house := &HouseSaleAdjuster{SellMonth: plan.Funding.House.SellMonth, Target: plan.HouseProceedsTarget()}
	rent := &RentAdjuster{MonthlyRent: plan.Funding.House.MonthlyRent, Inflation: inflation}
	securities := &SecuritiesSaleAdjuster{SellMonth: plan.Funding.Securities.SellMonth, MonthlySell: plan.Funding.Securities.MonthlySell}
	pledged := &PledgedAssetAdjuster{
		Amount:     plan.Funding.PledgedAsset.Amount,
		AnnualRate: plan.Funding.PledgedAsset.AnnualRate,
		RepayMonth: plan.Funding.PledgedAsset.RepayMonth,
	}

	switch id {
	case domain.StrategyHouseSale:
		return []StrategyAdjuster{house}
	case domain.StrategyRent:
		return []StrategyAdjuster{rent}
	case domain.StrategySecuritiesSale:
		return []StrategyAdjuster{securities}
	case domain.StrategyPledgedAsset:
		return []StrategyAdjuster{pledged}
	case domain.StrategyRentSecurities:
		// The combined strategy honors a configured house sale too: rent
		// stops and proceeds are routed the moment the house sells, even
		// when securities liquidate in the same month.
		if plan.HouseSaleEnabled() {
			return []StrategyAdjuster{house, rent, securities}
		}
		return []StrategyAdjuster{rent, securities}
	default:
		return nil
	}
}

// simulateStrategy runs the bounded monthly loop for one strategy. The
// returned snapshots cover months 0..TermMonths, where month 0 is the state
// before the first payment.
func (se *SimulationEngine) simulateStrategy(plan *domain.Plan, payment decimal.Decimal, id domain.StrategyID) domain.StrategyProjection {
	inflation := NewInflationAdjuster(plan.Inflation)
	adjusters := adjustersFor(plan, id, inflation)

	mortgageRate := moneyutil.MonthlyRate(plan.Mortgage.AnnualRate)
	propertyRate := moneyutil.MonthlyRate(plan.Mortgage.AppreciationRate)
	houseRate := moneyutil.MonthlyRate(plan.Funding.House.AppreciationRate)
	securitiesRate := moneyutil.MonthlyRate(plan.Funding.Securities.GrowthRate)
	savingsRate := moneyutil.MonthlyRate(plan.Savings.AnnualRate)

	st := &BalanceState{
		Mortgage:   plan.Mortgage.Principal,
		Property:   plan.Mortgage.Principal,
		House:      plan.Funding.House.Value,
		Savings:    plan.Savings.InitialBalance,
		Securities: plan.Funding.Securities.Value,
		Pledged:    decimal.Zero,
	}

	snapshots := make([]domain.MonthlySnapshot, 0, plan.Mortgage.TermMonths+1)
	snapshots = append(snapshots, se.snapshot(0, st, decimal.Zero, decimal.Zero, decimal.Zero, decimal.Zero, decimal.NewFromInt(1)))

	for month := 1; month <= plan.Mortgage.TermMonths; month++ {
		// Passive growth first, matching the aggregation order the
		// inflation adjuster requires: growth, inflation-adjusted base
		// cash, then strategy effects.
		st.Property = moneyutil.Grow(st.Property, propertyRate)
		if !st.HouseSold {
			st.House = moneyutil.Grow(st.House, houseRate)
		}
		st.Securities = moneyutil.Grow(st.Securities, securitiesRate)
		interestEarned := st.Savings.Mul(savingsRate)
		st.Savings = st.Savings.Add(interestEarned)

		income := inflation.Income(plan.Income.MonthlyIncome, month)
		expenses := inflation.Expenses(plan.Income.MonthlyExpenses, month)

		var effect CashEffect
		for _, adj := range adjusters {
			e := adj.Adjust(month, st)
			effect.RentIncome = effect.RentIncome.Add(e.RentIncome)
			effect.LoanCost = effect.LoanCost.Add(e.LoanCost)
			effect.ExtraPrincipal = effect.ExtraPrincipal.Add(e.ExtraPrincipal)
		}

		// Scheduled amortization. Once the balance is cleared the payment
		// stops; extra principal from sale proceeds is applied on top of
		// the scheduled payment without touching the month's cash.
		var interest, principalPay, outlay decimal.Decimal
		if st.Mortgage.IsPositive() {
			interest = st.Mortgage.Mul(mortgageRate)
			principalPay = moneyutil.Min(payment.Sub(interest), st.Mortgage)
			st.Mortgage = st.Mortgage.Sub(principalPay)
			outlay = interest.Add(principalPay)
		}
		if effect.ExtraPrincipal.IsPositive() && st.Mortgage.IsPositive() {
			paydown := moneyutil.Min(effect.ExtraPrincipal, st.Mortgage)
			st.Mortgage = st.Mortgage.Sub(paydown)
			surplus := effect.ExtraPrincipal.Sub(paydown)
			st.Savings = st.Savings.Add(surplus)
		} else if effect.ExtraPrincipal.IsPositive() {
			st.Savings = st.Savings.Add(effect.ExtraPrincipal)
		}
		if st.Mortgage.LessThan(balanceEpsilon) {
			st.Mortgage = decimal.Zero
		}

		leftover := income.Sub(expenses).Sub(outlay).Add(effect.RentIncome).Sub(effect.LoanCost)
		st.Savings = moneyutil.ClampZero(st.Savings.Add(leftover))

		cashFlow := leftover.Add(interestEarned)
		snapshots = append(snapshots, se.snapshot(month, st, outlay, interest, principalPay, cashFlow, inflation.Multiplier(month)))
	}

	return domain.StrategyProjection{Strategy: id, Snapshots: snapshots}
}

func (se *SimulationEngine) snapshot(month int, st *BalanceState, payment, interest, principalPay, cashFlow, multiplier decimal.Decimal) domain.MonthlySnapshot {
	s := domain.MonthlySnapshot{
		Month:               month,
		MortgageBalance:     st.Mortgage,
		PropertyValue:       st.Property,
		HouseValue:          st.House,
		SavingsBalance:      st.Savings,
		SecuritiesBalance:   st.Securities,
		PledgedBalance:      st.Pledged,
		Payment:             payment,
		Interest:            interest,
		PrincipalPay:        principalPay,
		CashFlow:            cashFlow,
		InflationMultiplier: multiplier,
	}
	s.NetWorth = s.CalculateNetWorth()
	return s
}
