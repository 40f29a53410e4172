package calculation

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/mpgo/mortgage-planner/internal/domain"
)

// CompareScenarios simulates two plans and lines up one metric of one
// strategy side by side. The shorter term truncates the comparison.
func (se *SimulationEngine) CompareScenarios(ctx context.Context, nameA string, planA *domain.Plan, nameB string, planB *domain.Plan, strategy domain.StrategyID, metric domain.Metric) (*domain.ScenarioComparison, error) {
	resultA, err := se.RunPlan(ctx, planA)
	if err != nil {
		return nil, fmt.Errorf("scenario %q: %w", nameA, err)
	}
	resultB, err := se.RunPlan(ctx, planB)
	if err != nil {
		return nil, fmt.Errorf("scenario %q: %w", nameB, err)
	}

	projA := resultA.Strategy(strategy)
	if projA == nil {
		return nil, fmt.Errorf("scenario %q does not produce strategy %q", nameA, strategy)
	}
	projB := resultB.Strategy(strategy)
	if projB == nil {
		return nil, fmt.Errorf("scenario %q does not produce strategy %q", nameB, strategy)
	}

	seriesA := projA.Series(metric)
	seriesB := projB.Series(metric)
	if n := min(len(seriesA), len(seriesB)); n < len(seriesA) || n < len(seriesB) {
		seriesA = seriesA[:n]
		seriesB = seriesB[:n]
	}

	return &domain.ScenarioComparison{
		Metric:    metric,
		Strategy:  strategy,
		NameA:     nameA,
		NameB:     nameB,
		SeriesA:   seriesA,
		SeriesB:   seriesB,
		Crossover: FindCrossover(seriesA, seriesB),
	}, nil
}

// FindCrossover returns the first month at which series B overtakes series A
// after trailing or matching it, or nil when no such month exists.
func FindCrossover(a, b []decimal.Decimal) *int {
	prev := decimal.Zero
	for i := 0; i < len(a) && i < len(b); i++ {
		diff := b[i].Sub(a[i])
		if i > 0 && diff.IsPositive() && !prev.IsPositive() {
			month := i
			return &month
		}
		prev = diff
	}
	return nil
}
