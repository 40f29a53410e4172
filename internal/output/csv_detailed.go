package output

import (
	"bytes"
	"encoding/csv"

	"github.com/mpgo/mortgage-planner/internal/domain"
)

// CSVDetailedExporter exports every strategy's full monthly trajectory, one
// row per (strategy, month). Suited to spreadsheet charting.
type CSVDetailedExporter struct{}

func (c CSVDetailedExporter) Name() string { return "detailed-csv" }

func (c CSVDetailedExporter) Format(result *domain.PlanResult) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)

	header := []string{
		"Strategy", "Month",
		"MortgageBalance", "PropertyValue", "HouseValue",
		"SavingsBalance", "SecuritiesBalance", "PledgedBalance",
		"Payment", "Interest", "Principal",
		"CashFlow", "NetWorth", "InflationMultiplier",
	}
	if err := w.Write(header); err != nil {
		return nil, err
	}

	for _, sp := range result.Strategies {
		for _, s := range sp.Snapshots {
			row := []string{
				string(sp.Strategy),
				intToString(s.Month),
				s.MortgageBalance.StringFixed(2),
				s.PropertyValue.StringFixed(2),
				s.HouseValue.StringFixed(2),
				s.SavingsBalance.StringFixed(2),
				s.SecuritiesBalance.StringFixed(2),
				s.PledgedBalance.StringFixed(2),
				s.Payment.StringFixed(2),
				s.Interest.StringFixed(2),
				s.PrincipalPay.StringFixed(2),
				s.CashFlow.StringFixed(2),
				s.NetWorth.StringFixed(2),
				s.InflationMultiplier.StringFixed(6),
			}
			if err := w.Write(row); err != nil {
				return nil, err
			}
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}
