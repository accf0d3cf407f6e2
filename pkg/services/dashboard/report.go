package dashboard

import (
	"fmt"
	"math"

	"github.com/de-tools/sales-atlas/pkg/models/domain"
)

const reportDateFormat = "2006-01-02"

// BuildReport shapes a snapshot into the section/detail form the terminal
// reporters render. The period is taken from the filtered records themselves,
// so an unbounded filter still reports the span it actually covered.
func BuildReport(snapshot *domain.DashboardSnapshot, opts Options, chart domain.ChartType) *domain.Report {
	report := &domain.Report{
		Title:  "Sales Analytics Dashboard",
		Period: recordPeriod(snapshot.Records),
	}

	avg := "nan"
	if !math.IsNaN(snapshot.KPIs.AvgSale) {
		avg = fmt.Sprintf("%.2f", snapshot.KPIs.AvgSale)
	}
	report.Sections = append(report.Sections, domain.ReportSection{
		Title: "Key Metrics",
		Details: []domain.ReportDetail{
			{Name: "Total Sales", Value: snapshot.KPIs.TotalSales, Description: "sum of sales over the filtered records"},
			{Name: "Total Profit", Value: snapshot.KPIs.TotalProfit, Description: "sum of profit over the filtered records"},
			{Name: "Avg Sale", Value: avg, Description: "mean sale amount per record"},
		},
	})

	freq := opts.Frequency
	if freq == "" {
		freq = domain.FrequencyDaily
	}
	salesSummary := map[string]interface{}{
		"frequency": string(freq),
		"chart":     string(chart),
	}
	if opts.Cumulative {
		salesSummary["cumulative"] = true
	}
	report.Sections = append(report.Sections,
		trendSection("Sales Trend", snapshot.SalesTrend, salesSummary),
		groupSection("Top Products", snapshot.TopProducts, "ranked by total sales"),
		groupSection("Region Revenue", snapshot.RegionRevenue, "total sales per region"),
		trendSection("Profit Trend", snapshot.ProfitTrend, map[string]interface{}{
			"frequency": string(freq),
		}),
	)

	return report
}

func recordPeriod(records []domain.SalesRecord) domain.TimePeriod {
	var period domain.TimePeriod
	for _, r := range records {
		if period.Start.IsZero() || r.Date.Before(period.Start) {
			period.Start = r.Date
		}
		if r.Date.After(period.End) {
			period.End = r.Date
		}
	}
	if !period.Start.IsZero() {
		period.Days = int(period.End.Sub(period.Start).Hours()/24) + 1
	}
	return period
}

func trendSection(title string, series domain.TimeSeries, summary map[string]interface{}) domain.ReportSection {
	section := domain.ReportSection{Title: title, Summary: summary}
	for _, p := range series {
		section.Details = append(section.Details, domain.ReportDetail{
			Name:  p.Period.Format(reportDateFormat),
			Value: p.Value,
		})
	}
	return section
}

func groupSection(title string, groups []domain.GroupTotal, desc string) domain.ReportSection {
	section := domain.ReportSection{Title: title}
	for _, g := range groups {
		section.Details = append(section.Details, domain.ReportDetail{
			Name:        g.Key,
			Value:       g.Total,
			Description: desc,
		})
	}
	return section
}
