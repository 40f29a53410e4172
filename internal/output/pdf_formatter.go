package output

import (
	"bytes"

	"github.com/go-pdf/fpdf"

	"github.com/mpgo/mortgage-planner/internal/domain"
)

// PDFFormatter renders a one-page summary: payment overview, affordability,
// and the strategy outcome table.
type PDFFormatter struct{}

func (p PDFFormatter) Name() string { return "pdf" }

func (p PDFFormatter) Format(result *domain.PlanResult) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Mortgage Funding Plan", false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(0, 10, "Mortgage Funding Plan", "", 1, "L", false, 0, "")
	pdf.Ln(2)

	pdf.SetFont("Helvetica", "", 11)
	pdf.CellFormat(0, 6, "Monthly payment: "+FormatCurrency(result.MonthlyPayment), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 6, "Total interest: "+FormatCurrency(result.TotalInterest), "", 1, "L", false, 0, "")
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "B", 13)
	pdf.CellFormat(0, 8, "Affordability", "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 11)
	a := result.Affordability
	if a.ZeroIncome {
		pdf.CellFormat(0, 6, "No income configured; ratios undefined.", "", 1, "L", false, 0, "")
	} else {
		pdf.CellFormat(0, 6, "Total monthly income: "+FormatCurrency(a.TotalMonthlyIncome), "", 1, "L", false, 0, "")
		pdf.CellFormat(0, 6, "Front-end ratio: "+FormatPercentage(a.FrontEndRatio)+" ("+verdict(a.FrontEndAffordable)+")", "", 1, "L", false, 0, "")
		pdf.CellFormat(0, 6, "Back-end ratio: "+FormatPercentage(a.BackEndRatio)+" ("+verdict(a.BackEndAffordable)+")", "", 1, "L", false, 0, "")
	}
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "B", 13)
	pdf.CellFormat(0, 8, "Strategy Outcomes", "", 1, "L", false, 0, "")

	widths := []float64{42, 38, 36, 36, 38}
	headers := []string{"Strategy", "Final Net Worth", "Final Savings", "Final Securities", "Final Loan Balance"}
	pdf.SetFont("Helvetica", "B", 10)
	for i, h := range headers {
		pdf.CellFormat(widths[i], 7, h, "1", 0, "C", false, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 10)
	for _, sp := range result.Strategies {
		final := sp.Final()
		cells := []string{
			string(sp.Strategy),
			FormatCurrency(final.NetWorth),
			FormatCurrency(final.SavingsBalance),
			FormatCurrency(final.SecuritiesBalance),
			FormatCurrency(final.MortgageBalance),
		}
		for i, cell := range cells {
			align := "R"
			if i == 0 {
				align = "L"
			}
			pdf.CellFormat(widths[i], 7, cell, "1", 0, align, false, 0, "")
		}
		pdf.Ln(-1)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
