package output

import (
	"bytes"
	"encoding/csv"

	"github.com/mpgo/mortgage-planner/internal/domain"
)

// CSVSummarizer implements the simple summary CSV output (one row per strategy).
type CSVSummarizer struct{}

func (c CSVSummarizer) Name() string { return "csv" }

func (c CSVSummarizer) Format(result *domain.PlanResult) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)

	header := []string{"Strategy", "FinalNetWorth", "FinalSavings", "FinalSecurities", "FinalMortgageBalance", "FirstMonthCashFlow", "FinalMonthCashFlow"}
	if err := w.Write(header); err != nil {
		return nil, err
	}
	for _, sp := range result.Strategies {
		final := sp.Final()
		firstCash := final.CashFlow
		if len(sp.Snapshots) > 1 {
			firstCash = sp.Snapshots[1].CashFlow
		}
		row := []string{
			string(sp.Strategy),
			final.NetWorth.StringFixed(2),
			final.SavingsBalance.StringFixed(2),
			final.SecuritiesBalance.StringFixed(2),
			final.MortgageBalance.StringFixed(2),
			firstCash.StringFixed(2),
			final.CashFlow.StringFixed(2),
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}
