package calculation

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mpgo/mortgage-planner/internal/domain"
)

// testPlan returns a plan with every funding source enabled.
func testPlan() *domain.Plan {
	return &domain.Plan{
		Mortgage: domain.MortgageParameters{
			Principal:        decimal.NewFromInt(300000),
			AnnualRate:       decimal.NewFromFloat(0.045),
			TermMonths:       360,
			AppreciationRate: decimal.NewFromFloat(0.03),
		},
		Income: domain.IncomeParameters{
			MonthlyIncome:   decimal.NewFromInt(8000),
			MonthlyExpenses: decimal.NewFromInt(4000),
		},
		Savings: domain.SavingsParameters{
			InitialBalance: decimal.NewFromInt(10000),
			AnnualRate:     decimal.NewFromFloat(0.015),
		},
		Funding: domain.FundingStrategyParameters{
			House: domain.HouseParameters{
				Value:            decimal.NewFromInt(200000),
				AppreciationRate: decimal.NewFromFloat(0.03),
				SellMonth:        24,
				MonthlyRent:      decimal.NewFromInt(1500),
			},
			Securities: domain.SecuritiesParameters{
				Value:       decimal.NewFromInt(150000),
				GrowthRate:  decimal.NewFromFloat(0.07),
				SellMonth:   0,
				MonthlySell: decimal.NewFromInt(500),
			},
			PledgedAsset: domain.PledgedAssetParameters{
				Amount:     decimal.NewFromInt(50000),
				AnnualRate: decimal.NewFromFloat(0.06),
				RepayMonth: -1,
			},
		},
		Inflation: domain.InflationConfig{
			AnnualRate:      decimal.NewFromFloat(0.02),
			ApplyToIncome:   true,
			ApplyToExpenses: true,
			ApplyToRent:     true,
		},
	}
}

// disabledPlan strips every funding strategy but keeps the same assets.
func disabledPlan() *domain.Plan {
	plan := testPlan()
	plan.Funding.House.SellMonth = -1
	plan.Funding.House.MonthlyRent = decimal.Zero
	plan.Funding.Securities.SellMonth = 0
	plan.Funding.Securities.MonthlySell = decimal.Zero
	plan.Funding.PledgedAsset.Amount = decimal.Zero
	return plan
}

func assertSnapshotsEqual(t *testing.T, want, got []domain.MonthlySnapshot) {
	t.Helper()
	require.Equal(t, len(want), len(got))
	for i := range want {
		if !want[i].NetWorth.Equal(got[i].NetWorth) ||
			!want[i].MortgageBalance.Equal(got[i].MortgageBalance) ||
			!want[i].SavingsBalance.Equal(got[i].SavingsBalance) ||
			!want[i].SecuritiesBalance.Equal(got[i].SecuritiesBalance) ||
			!want[i].CashFlow.Equal(got[i].CashFlow) {
			t.Fatalf("snapshots diverge at month %d", i)
		}
	}
}

func TestRunPlan_SequenceCoversTerm(t *testing.T) {
	engine := NewSimulationEngine()
	result, err := engine.RunPlan(context.Background(), testPlan())
	require.NoError(t, err)
	require.NotEmpty(t, result.Strategies)

	for _, sp := range result.Strategies {
		// Term months of simulation plus the month-0 initial record.
		assert.Len(t, sp.Snapshots, 361, "strategy %s", sp.Strategy)
		for i, s := range sp.Snapshots {
			assert.Equal(t, i, s.Month)
		}
	}
}

func TestRunPlan_ProducesAllEnabledStrategies(t *testing.T) {
	engine := NewSimulationEngine()
	result, err := engine.RunPlan(context.Background(), testPlan())
	require.NoError(t, err)

	want := []domain.StrategyID{
		domain.StrategyIncome,
		domain.StrategyHouseSale,
		domain.StrategyRent,
		domain.StrategySecuritiesSale,
		domain.StrategyPledgedAsset,
		domain.StrategyRentSecurities,
	}
	var got []domain.StrategyID
	for _, sp := range result.Strategies {
		got = append(got, sp.Strategy)
	}
	assert.Equal(t, want, got)
}

func TestRunPlan_MonthZeroNetWorth(t *testing.T) {
	plan := testPlan()
	engine := NewSimulationEngine()
	result, err := engine.RunPlan(context.Background(), plan)
	require.NoError(t, err)

	// At month 0 home equity is zero, so net worth is the other assets:
	// house + savings + securities, for every strategy configuration.
	want := plan.Funding.House.Value.
		Add(plan.Savings.InitialBalance).
		Add(plan.Funding.Securities.Value)
	for _, sp := range result.Strategies {
		assert.True(t, sp.Snapshots[0].NetWorth.Equal(want),
			"strategy %s: month 0 net worth %s, want %s", sp.Strategy, sp.Snapshots[0].NetWorth, want)
	}
}

func TestRunPlan_ZeroRateLinearBalance(t *testing.T) {
	plan := disabledPlan()
	plan.Mortgage.AnnualRate = decimal.Zero
	plan.Mortgage.TermMonths = 120
	plan.Mortgage.Principal = decimal.NewFromInt(120000)

	engine := NewSimulationEngine()
	result, err := engine.RunPlan(context.Background(), plan)
	require.NoError(t, err)

	base := result.Baseline()
	require.NotNil(t, base)
	for m, s := range base.Snapshots {
		want := decimal.NewFromInt(int64(120000 - 1000*m))
		if !s.MortgageBalance.Equal(want) {
			t.Fatalf("month %d: balance %s, want %s", m, s.MortgageBalance, want)
		}
	}
}

func TestRunPlan_DisabledStrategiesMatchBaseline(t *testing.T) {
	engine := NewSimulationEngine()

	full, err := engine.RunPlan(context.Background(), testPlan())
	require.NoError(t, err)
	stripped, err := engine.RunPlan(context.Background(), disabledPlan())
	require.NoError(t, err)

	require.Len(t, stripped.Strategies, 1)
	assert.Equal(t, domain.StrategyIncome, stripped.Strategies[0].Strategy)
	assertSnapshotsEqual(t, full.Baseline().Snapshots, stripped.Strategies[0].Snapshots)
}

func TestRunPlan_HouseProceedsToPrincipalCutInterest(t *testing.T) {
	plan := testPlan()
	plan.Funding.House.SellMonth = 12
	plan.Funding.House.ProceedsTarget = domain.ProceedsToPrincipal

	engine := NewSimulationEngine()
	result, err := engine.RunPlan(context.Background(), plan)
	require.NoError(t, err)

	baseline := result.Baseline()
	houseSale := result.Strategy(domain.StrategyHouseSale)
	require.NotNil(t, houseSale)

	// The month after the paydown, the interest charge must be strictly
	// lower than without selling.
	saleInterest := houseSale.Snapshots[13].Interest
	baseInterest := baseline.Snapshots[13].Interest
	assert.True(t, saleInterest.LessThan(baseInterest),
		"interest after paydown %s, baseline %s", saleInterest, baseInterest)
}

func TestRunPlan_OneMonthTerm(t *testing.T) {
	plan := disabledPlan()
	plan.Mortgage.TermMonths = 1
	plan.Mortgage.Principal = decimal.NewFromInt(10000)
	plan.Mortgage.AnnualRate = decimal.NewFromFloat(0.12)

	engine := NewSimulationEngine()
	result, err := engine.RunPlan(context.Background(), plan)
	require.NoError(t, err)

	base := result.Baseline()
	require.Len(t, base.Snapshots, 2)
	assert.True(t, base.Snapshots[1].MortgageBalance.IsZero())
	// Single payment is principal plus one month of interest.
	f, _ := base.Snapshots[1].Payment.Float64()
	assert.InDelta(t, 10100.0, f, 0.01)
}

func TestRunPlan_SimultaneousHouseAndSecuritiesSale(t *testing.T) {
	plan := testPlan()
	plan.Funding.House.SellMonth = 6
	plan.Funding.Securities.SellMonth = 6

	engine := NewSimulationEngine()
	result, err := engine.RunPlan(context.Background(), plan)
	require.NoError(t, err)

	combo := result.Strategy(domain.StrategyRentSecurities)
	require.NotNil(t, combo)

	at := combo.Snapshots[6]
	assert.True(t, at.HouseValue.IsZero(), "house should be sold")
	assert.True(t, at.SecuritiesBalance.IsZero(), "securities should be liquidated")
	// Both proceeds land in savings the same month.
	assert.True(t, at.SavingsBalance.GreaterThan(plan.Funding.House.Value.Add(plan.Funding.Securities.Value)))

	// Rent stops from the sale month onward.
	before := combo.Snapshots[5].CashFlow
	after := combo.Snapshots[7].CashFlow
	assert.True(t, after.LessThan(before), "cash flow should drop once rent stops")
}

func TestRunPlan_SellMonthZeroMeansNoSale(t *testing.T) {
	// Month 0 is the pre-payment state, so a zero sell month cannot fire;
	// it disables the sale instead of producing a dead projection.
	plan := testPlan()
	plan.Funding.House.SellMonth = 0

	engine := NewSimulationEngine()
	result, err := engine.RunPlan(context.Background(), plan)
	require.NoError(t, err)

	assert.Nil(t, result.Strategy(domain.StrategyHouseSale))
	combo := result.Strategy(domain.StrategyRentSecurities)
	require.NotNil(t, combo)
	assert.True(t, combo.Final().HouseValue.IsPositive(), "house must still be held at term")
}

func TestRunPlan_PledgedAssetLoan(t *testing.T) {
	plan := testPlan()
	engine := NewSimulationEngine()
	result, err := engine.RunPlan(context.Background(), plan)
	require.NoError(t, err)

	pledged := result.Strategy(domain.StrategyPledgedAsset)
	require.NotNil(t, pledged)

	// Borrowed cash lands in savings, the liability persists, and the
	// securities stay invested.
	assert.True(t, pledged.Snapshots[1].PledgedBalance.Equal(plan.Funding.PledgedAsset.Amount))
	assert.True(t, pledged.Snapshots[360].PledgedBalance.Equal(plan.Funding.PledgedAsset.Amount))
	assert.True(t, pledged.Snapshots[1].SecuritiesBalance.GreaterThan(decimal.Zero))

	// Interest-only carry makes monthly cash flow worse than baseline.
	base := result.Baseline()
	assert.True(t, pledged.Snapshots[2].CashFlow.LessThan(base.Snapshots[2].CashFlow))
}

func TestRunPlan_PledgedAssetRepayment(t *testing.T) {
	plan := testPlan()
	plan.Funding.PledgedAsset.RepayMonth = 120

	engine := NewSimulationEngine()
	result, err := engine.RunPlan(context.Background(), plan)
	require.NoError(t, err)

	pledged := result.Strategy(domain.StrategyPledgedAsset)
	require.NotNil(t, pledged)
	assert.True(t, pledged.Snapshots[119].PledgedBalance.IsPositive())
	assert.True(t, pledged.Snapshots[120].PledgedBalance.IsZero(), "loan should be repaid at the configured month")
}

func TestRunPlan_Deterministic(t *testing.T) {
	engine := NewSimulationEngine()
	a, err := engine.RunPlan(context.Background(), testPlan())
	require.NoError(t, err)
	b, err := engine.RunPlan(context.Background(), testPlan())
	require.NoError(t, err)

	require.Equal(t, len(a.Strategies), len(b.Strategies))
	for i := range a.Strategies {
		assertSnapshotsEqual(t, a.Strategies[i].Snapshots, b.Strategies[i].Snapshots)
	}
}

func TestRunPlan_RejectsInvalidTerm(t *testing.T) {
	plan := testPlan()
	plan.Mortgage.TermMonths = 0
	_, err := NewSimulationEngine().RunPlan(context.Background(), plan)
	assert.Error(t, err)
}
