package output

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"html/template"

	"github.com/mpgo/mortgage-planner/internal/domain"
	"github.com/mpgo/mortgage-planner/pkg/moneyutil"
)

// HTMLFormatter produces a self-contained HTML report with interactive
// comparison charts (Chart.js via CDN).
type HTMLFormatter struct{}

func (h HTMLFormatter) Name() string { return "html" }

//go:embed templates/report.html.tmpl
var htmlTemplateSource string

var htmlTemplate = template.Must(template.New("report").Funcs(template.FuncMap{
	"curr": FormatCurrency,
	"pct":  FormatPercentage,
	"json": func(v interface{}) template.JS {
		b, _ := json.Marshal(v)
		return template.JS(b)
	},
}).Parse(htmlTemplateSource))

// chartSeries is one strategy's line on a chart, as float64 for Chart.js.
type chartSeries struct {
	Label string    `json:"label"`
	Data  []float64 `json:"data"`
}

// chart bundles the datasets for one metric.
type chart struct {
	ID     string        `json:"id"`
	Title  string        `json:"title"`
	Series []chartSeries `json:"series"`
}

var chartMetrics = []struct {
	metric domain.Metric
	title  string
}{
	{domain.MetricMortgageBalance, "Loan Balance Comparison"},
	{domain.MetricNetWorth, "Net Worth Comparison"},
	{domain.MetricSavings, "Savings Balances"},
	{domain.MetricSecurities, "Securities Values"},
	{domain.MetricCashFlow, "Monthly Cash Flow"},
}

func buildCharts(result *domain.PlanResult) []chart {
	charts := make([]chart, 0, len(chartMetrics))
	for _, cm := range chartMetrics {
		c := chart{ID: string(cm.metric), Title: cm.title}
		for i := range result.Strategies {
			sp := &result.Strategies[i]
			series := sp.Series(cm.metric)
			data := make([]float64, len(series))
			for j, d := range series {
				data[j], _ = moneyutil.RoundCents(d).Float64()
			}
			c.Series = append(c.Series, chartSeries{Label: string(sp.Strategy), Data: data})
		}
		charts = append(charts, c)
	}
	return charts
}

func (h HTMLFormatter) Format(result *domain.PlanResult) ([]byte, error) {
	months := 0
	if base := result.Baseline(); base != nil {
		months = len(base.Snapshots)
	}
	labels := make([]int, months)
	for i := range labels {
		labels[i] = i
	}

	data := struct {
		*domain.PlanResult
		Charts []chart
		Labels []int
	}{result, buildCharts(result), labels}

	var buf bytes.Buffer
	if err := htmlTemplate.Execute(&buf, data); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
