package domain

import "time"

// Frequency selects the calendar bucket size used when a record set is
// resampled into a trend series.
type Frequency string

const (
	FrequencyDaily   Frequency = "daily"
	FrequencyWeekly  Frequency = "weekly"
	FrequencyMonthly Frequency = "monthly"
)

// Metric names a numeric field of a sales record.
type Metric string

const (
	MetricSales  Metric = "sales"
	MetricProfit Metric = "profit"
)

// Dimension names a categorical field of a sales record.
type Dimension string

const (
	DimensionProduct Dimension = "product"
	DimensionRegion  Dimension = "region"
)

// ChartType is a presentation hint carried through to consumers; it never
// changes what the pipeline computes.
type ChartType string

const (
	ChartLine ChartType = "line"
	ChartArea ChartType = "area"
)

// SalesRecord is a single sales observation at day granularity. Record sets
// are read-only once loaded.
type SalesRecord struct {
	Date    time.Time
	Product string
	Region  string
	Sales   int
	Profit  int
}

// FilterCriteria restricts a record set to a date window and to subsets of
// regions and products. A zero StartDate/EndDate leaves that bound open. A nil
// Regions/Products slice means "no constraint"; an empty non-nil slice matches
// nothing. An inverted window (start after end) matches nothing as well.
type FilterCriteria struct {
	StartDate time.Time
	EndDate   time.Time
	Regions   []string
	Products  []string
}

// KPIs are the scalar summaries of a filtered view. AvgSale is NaN when the
// view is empty; the totals are zero.
type KPIs struct {
	TotalSales  int
	TotalProfit int
	AvgSale     float64
}

// TrendPoint is one bucket of a resampled series, labeled by the bucket's
// closing date.
type TrendPoint struct {
	Period time.Time
	Value  int
}

// TimeSeries is an ascending sequence of trend points with no gaps between
// the first and last occupied bucket.
type TimeSeries []TrendPoint

// GroupTotal is the sum of a metric across all records sharing one value of a
// dimension.
type GroupTotal struct {
	Key   string
	Total int
}

// Catalog describes what a dataset contains: the distinct categorical values
// and the span of dates. Filter widgets populate themselves from it.
type Catalog struct {
	Regions   []string
	Products  []string
	FirstDate time.Time
	LastDate  time.Time
}

// DashboardSnapshot is the complete set of derived values the presentation
// layer consumes for one filter selection.
type DashboardSnapshot struct {
	KPIs          KPIs
	SalesTrend    TimeSeries
	ProfitTrend   TimeSeries
	TopProducts   []GroupTotal
	RegionRevenue []GroupTotal
	Records       []SalesRecord
}
