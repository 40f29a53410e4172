package output

import (
	"bytes"
	"fmt"
	"text/tabwriter"

	"github.com/mpgo/mortgage-planner/internal/domain"
	"github.com/mpgo/mortgage-planner/pkg/dateutil"
)

// ConsoleFormatter renders a compact text summary of a plan result.
type ConsoleFormatter struct{}

func (c ConsoleFormatter) Name() string { return "console" }

func (c ConsoleFormatter) Format(result *domain.PlanResult) ([]byte, error) {
	buf := &bytes.Buffer{}

	fmt.Fprintln(buf, "MORTGAGE FUNDING PLAN")
	fmt.Fprintln(buf, "=====================")
	fmt.Fprintf(buf, "Monthly payment:  %s\n", FormatCurrency(result.MonthlyPayment))
	fmt.Fprintf(buf, "Total interest:   %s\n", FormatCurrency(result.TotalInterest))
	if len(result.Schedule) > 0 {
		last := result.Schedule[len(result.Schedule)-1]
		fmt.Fprintf(buf, "Paid off after:   %s\n", dateutil.MonthsToYears(last.Month))
	}
	fmt.Fprintln(buf)

	c.writeAffordability(buf, result.Affordability)

	fmt.Fprintln(buf, "STRATEGY COMPARISON")
	fmt.Fprintln(buf, "-------------------")
	w := tabwriter.NewWriter(buf, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "Strategy\tFinal Net Worth\tFinal Savings\tFinal Securities\tMortgage Paid Off")
	for _, sp := range result.Strategies {
		final := sp.Final()
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
			sp.Strategy,
			FormatCurrency(final.NetWorth),
			FormatCurrency(final.SavingsBalance),
			FormatCurrency(final.SecuritiesBalance),
			payoffLabel(&sp),
		)
	}
	if err := w.Flush(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (c ConsoleFormatter) writeAffordability(buf *bytes.Buffer, a domain.AffordabilityMetrics) {
	fmt.Fprintln(buf, "AFFORDABILITY")
	fmt.Fprintln(buf, "-------------")
	if a.ZeroIncome {
		fmt.Fprintln(buf, "No income configured; affordability ratios are undefined.")
		fmt.Fprintln(buf)
		return
	}
	fmt.Fprintf(buf, "Total monthly income:  %s\n", FormatCurrency(a.TotalMonthlyIncome))
	fmt.Fprintf(buf, "Front-end ratio:       %s (%s)\n", FormatPercentage(a.FrontEndRatio), verdict(a.FrontEndAffordable))
	fmt.Fprintf(buf, "Back-end ratio:        %s (%s)\n", FormatPercentage(a.BackEndRatio), verdict(a.BackEndAffordable))
	fmt.Fprintf(buf, "Overall:               %s\n", verdict(a.Affordable))
	fmt.Fprintln(buf)
}

func verdict(ok bool) string {
	if ok {
		return "affordable"
	}
	return "too high"
}

// payoffLabel reports the first month a strategy clears the mortgage.
func payoffLabel(sp *domain.StrategyProjection) string {
	for _, s := range sp.Snapshots {
		if s.Month > 0 && s.MortgageBalance.IsZero() {
			return "month " + intToString(s.Month)
		}
	}
	return "not in term"
}
