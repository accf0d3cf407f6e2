package adapters

import (
	"fmt"
	"math"

	"github.com/de-tools/sales-atlas/pkg/models/api"
	"github.com/de-tools/sales-atlas/pkg/models/domain"
	"github.com/de-tools/sales-atlas/pkg/models/store"
)

const dateFormat = "2006-01-02"

func MapStoreSalesRecordToDomain(record store.SalesRecord) domain.SalesRecord {
	return domain.SalesRecord{
		Date:    record.Date,
		Product: record.Product,
		Region:  record.Region,
		Sales:   int(record.Sales),
		Profit:  int(record.Profit),
	}
}

func MapDomainSalesRecordToStore(record domain.SalesRecord) store.SalesRecord {
	return store.SalesRecord{
		Date:    record.Date,
		Product: record.Product,
		Region:  record.Region,
		Sales:   int64(record.Sales),
		Profit:  int64(record.Profit),
	}
}

func MapStoreSalesRecordsToDomain(records []store.SalesRecord) []domain.SalesRecord {
	mapped := make([]domain.SalesRecord, 0, len(records))
	for _, r := range records {
		mapped = append(mapped, MapStoreSalesRecordToDomain(r))
	}
	return mapped
}

func MapSalesRecordDomainToApi(record domain.SalesRecord) api.SalesRecord {
	return api.SalesRecord{
		Date:    record.Date.Format(dateFormat),
		Product: record.Product,
		Region:  record.Region,
		Sales:   record.Sales,
		Profit:  record.Profit,
	}
}

// MapKPIsDomainToApi formats AvgSale with two decimals; an empty view yields
// "nan", matching what the dashboard has always displayed.
func MapKPIsDomainToApi(kpis domain.KPIs) api.KPIs {
	avg := "nan"
	if !math.IsNaN(kpis.AvgSale) {
		avg = fmt.Sprintf("%.2f", kpis.AvgSale)
	}
	return api.KPIs{
		TotalSales:  kpis.TotalSales,
		TotalProfit: kpis.TotalProfit,
		AvgSale:     avg,
	}
}

func MapTimeSeriesDomainToApi(series domain.TimeSeries) []api.TrendPoint {
	points := make([]api.TrendPoint, 0, len(series))
	for _, p := range series {
		points = append(points, api.TrendPoint{
			Period: p.Period.Format(dateFormat),
			Value:  p.Value,
		})
	}
	return points
}

func MapGroupTotalsDomainToApi(groups []domain.GroupTotal) []api.GroupTotal {
	mapped := make([]api.GroupTotal, 0, len(groups))
	for _, g := range groups {
		mapped = append(mapped, api.GroupTotal{Key: g.Key, Total: g.Total})
	}
	return mapped
}

func MapSnapshotDomainToApi(
	snapshot domain.DashboardSnapshot,
	freq domain.Frequency,
	cumulative bool,
	chart domain.ChartType,
) api.Dashboard {
	records := make([]api.SalesRecord, 0, len(snapshot.Records))
	for _, r := range snapshot.Records {
		records = append(records, MapSalesRecordDomainToApi(r))
	}

	return api.Dashboard{
		Options: api.DashboardOptions{
			Frequency:  string(freq),
			Cumulative: cumulative,
			Chart:      string(chart),
		},
		KPIs:          MapKPIsDomainToApi(snapshot.KPIs),
		SalesTrend:    MapTimeSeriesDomainToApi(snapshot.SalesTrend),
		ProfitTrend:   MapTimeSeriesDomainToApi(snapshot.ProfitTrend),
		TopProducts:   MapGroupTotalsDomainToApi(snapshot.TopProducts),
		RegionRevenue: MapGroupTotalsDomainToApi(snapshot.RegionRevenue),
		Records:       records,
	}
}

func MapCatalogDomainToApi(catalog domain.Catalog) api.Catalog {
	return api.Catalog{
		Regions:   catalog.Regions,
		Products:  catalog.Products,
		FirstDate: catalog.FirstDate.Format(dateFormat),
		LastDate:  catalog.LastDate.Format(dateFormat),
	}
}
