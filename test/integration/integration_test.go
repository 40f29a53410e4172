package integration

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mpgo/mortgage-planner/internal/calculation"
	"github.com/mpgo/mortgage-planner/internal/config"
	"github.com/mpgo/mortgage-planner/internal/domain"
	"github.com/mpgo/mortgage-planner/internal/output"
	"github.com/mpgo/mortgage-planner/internal/scenario"
)

const examplePlanPath = "../testdata/example_plan.yaml"

func TestEndToEndSimulation(t *testing.T) {
	parser := config.NewInputParser()
	plan, err := parser.LoadFromFile(examplePlanPath)
	require.NoError(t, err)

	engine := calculation.NewSimulationEngine()
	result, err := engine.RunPlan(context.Background(), plan)
	require.NoError(t, err)

	// Every funding source in the example file is enabled, so the full
	// strategy set comes back.
	require.Len(t, result.Strategies, 6)
	for _, sp := range result.Strategies {
		assert.Len(t, sp.Snapshots, 361, "strategy %s", sp.Strategy)
	}

	f, _ := result.MonthlyPayment.Float64()
	assert.InDelta(t, 1520.06, f, 0.01)
	assert.True(t, result.Affordability.FrontEndAffordable)
	assert.NotEmpty(t, result.Schedule)

	// Strategies diverge: the house sale should leave more in savings at
	// the end than earned income alone.
	baseline := result.Baseline()
	houseSale := result.Strategy(domain.StrategyHouseSale)
	require.NotNil(t, houseSale)
	assert.True(t, houseSale.Final().SavingsBalance.GreaterThan(baseline.Final().SavingsBalance))
}

func TestPlanFileToReports(t *testing.T) {
	parser := config.NewInputParser()
	plan, err := parser.LoadFromFile(examplePlanPath)
	require.NoError(t, err)

	result, err := calculation.NewSimulationEngine().RunPlan(context.Background(), plan)
	require.NoError(t, err)

	dir := t.TempDir()
	for _, format := range output.AvailableFormatterNames() {
		path, err := output.GenerateReport(result, format, dir)
		require.NoError(t, err, "format %s", format)
		assert.Equal(t, dir, filepath.Dir(path))
	}
}

func TestScenarioStoreRoundTripThroughEngine(t *testing.T) {
	ctx := context.Background()
	parser := config.NewInputParser()
	plan, err := parser.LoadFromFile(examplePlanPath)
	require.NoError(t, err)

	store, err := scenario.NewSQLiteStore(filepath.Join(t.TempDir(), "scenarios.db"))
	require.NoError(t, err)
	defer store.Close()

	require.NoError(t, store.Save(ctx, "example", plan))
	loaded, err := store.Load(ctx, "example")
	require.NoError(t, err)

	engine := calculation.NewSimulationEngine()
	fromFile, err := engine.RunPlan(ctx, plan)
	require.NoError(t, err)
	fromStore, err := engine.RunPlan(ctx, loaded)
	require.NoError(t, err)

	// A stored-and-reloaded plan simulates identically to the file it
	// came from.
	require.Equal(t, len(fromFile.Strategies), len(fromStore.Strategies))
	for i := range fromFile.Strategies {
		a := fromFile.Strategies[i].Final()
		b := fromStore.Strategies[i].Final()
		assert.True(t, a.NetWorth.Equal(b.NetWorth), "strategy %s", fromFile.Strategies[i].Strategy)
	}
}

func TestCompareScenariosEndToEnd(t *testing.T) {
	parser := config.NewInputParser()
	plan, err := parser.LoadFromFile(examplePlanPath)
	require.NoError(t, err)

	cheaper := *plan
	cheaper.Mortgage.AnnualRate = decimal.NewFromFloat(0.03)

	cmp, err := calculation.NewSimulationEngine().CompareScenarios(context.Background(),
		"example", plan, "cheaper", &cheaper,
		domain.StrategyIncome, domain.MetricNetWorth)
	require.NoError(t, err)

	require.Equal(t, len(cmp.SeriesA), len(cmp.SeriesB))
	require.NotNil(t, cmp.Crossover)
	assert.Greater(t, *cmp.Crossover, 0)
}
