package dashboard

import (
	"math"
	"slices"
	"strings"
	"time"

	"github.com/de-tools/sales-atlas/pkg/models/domain"
)

// Filter returns the records inside the criteria's date window whose region
// and product are among the selected sets. All pipeline functions are total:
// an inverted window or an empty selection yields an empty view, never an
// error.
func Filter(records []domain.SalesRecord, criteria domain.FilterCriteria) []domain.SalesRecord {
	regions := toSet(criteria.Regions)
	products := toSet(criteria.Products)

	var view []domain.SalesRecord
	for _, r := range records {
		if !criteria.StartDate.IsZero() && r.Date.Before(criteria.StartDate) {
			continue
		}
		if !criteria.EndDate.IsZero() && r.Date.After(criteria.EndDate) {
			continue
		}
		if !contains(regions, r.Region) || !contains(products, r.Product) {
			continue
		}
		view = append(view, r)
	}
	return view
}

// toSet keeps the nil/non-nil distinction: nil means "no constraint".
func toSet(values []string) map[string]struct{} {
	if values == nil {
		return nil
	}
	set := make(map[string]struct{}, len(values))
	for _, v := range values {
		set[v] = struct{}{}
	}
	return set
}

func contains(set map[string]struct{}, value string) bool {
	if set == nil {
		return true
	}
	_, ok := set[value]
	return ok
}

// ComputeKPIs sums the view into its three scalar metrics. On an empty view
// the totals are zero and AvgSale is NaN.
func ComputeKPIs(view []domain.SalesRecord) domain.KPIs {
	var kpis domain.KPIs
	for _, r := range view {
		kpis.TotalSales += r.Sales
		kpis.TotalProfit += r.Profit
	}
	if len(view) == 0 {
		kpis.AvgSale = math.NaN()
	} else {
		kpis.AvgSale = float64(kpis.TotalSales) / float64(len(view))
	}
	return kpis
}

// Resample buckets the view by calendar period and sums one metric per
// bucket. Buckets are labeled by their closing date: the day itself, the
// week's ending Sunday, or the last day of the month. Empty buckets between
// the first and last occupied one are kept with value 0; an empty view yields
// an empty series.
func Resample(view []domain.SalesRecord, metric domain.Metric, freq domain.Frequency) domain.TimeSeries {
	if len(view) == 0 {
		return nil
	}

	totals := make(map[time.Time]int)
	var first, last time.Time
	for _, r := range view {
		bucket := bucketEnd(r.Date, freq)
		totals[bucket] += metricValue(r, metric)
		if first.IsZero() || bucket.Before(first) {
			first = bucket
		}
		if bucket.After(last) {
			last = bucket
		}
	}

	var series domain.TimeSeries
	for bucket := first; !bucket.After(last); bucket = nextBucket(bucket, freq) {
		series = append(series, domain.TrendPoint{Period: bucket, Value: totals[bucket]})
	}
	return series
}

func metricValue(r domain.SalesRecord, metric domain.Metric) int {
	if metric == domain.MetricProfit {
		return r.Profit
	}
	return r.Sales
}

// bucketEnd normalizes a date to the closing date of its bucket, in UTC at
// midnight so map keys compare reliably.
func bucketEnd(date time.Time, freq domain.Frequency) time.Time {
	day := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)
	switch freq {
	case domain.FrequencyWeekly:
		// The next Sunday on or after the date.
		offset := (7 - int(day.Weekday())) % 7
		return day.AddDate(0, 0, offset)
	case domain.FrequencyMonthly:
		// Day 0 of the following month is this month's last day.
		return time.Date(day.Year(), day.Month()+1, 0, 0, 0, 0, 0, time.UTC)
	default:
		return day
	}
}

func nextBucket(bucket time.Time, freq domain.Frequency) time.Time {
	switch freq {
	case domain.FrequencyWeekly:
		return bucket.AddDate(0, 0, 7)
	case domain.FrequencyMonthly:
		// From one month-end to the next.
		return time.Date(bucket.Year(), bucket.Month()+2, 0, 0, 0, 0, 0, time.UTC)
	default:
		return bucket.AddDate(0, 0, 1)
	}
}

// Accumulate turns a series into its running total. The input is left
// untouched.
func Accumulate(series domain.TimeSeries) domain.TimeSeries {
	out := make(domain.TimeSeries, len(series))
	running := 0
	for i, p := range series {
		running += p.Value
		out[i] = domain.TrendPoint{Period: p.Period, Value: running}
	}
	return out
}

// GroupSum sums a metric per distinct value of a dimension, sorted ascending
// by key for determinism.
func GroupSum(view []domain.SalesRecord, dim domain.Dimension, metric domain.Metric) []domain.GroupTotal {
	totals := make(map[string]int)
	for _, r := range view {
		key := r.Product
		if dim == domain.DimensionRegion {
			key = r.Region
		}
		totals[key] += metricValue(r, metric)
	}

	groups := make([]domain.GroupTotal, 0, len(totals))
	for key, total := range totals {
		groups = append(groups, domain.GroupTotal{Key: key, Total: total})
	}
	slices.SortFunc(groups, func(a, b domain.GroupTotal) int {
		return strings.Compare(a.Key, b.Key)
	})
	return groups
}

// Ranked reorders group totals for ranking displays: descending by total,
// ties broken by key.
func Ranked(groups []domain.GroupTotal) []domain.GroupTotal {
	ranked := slices.Clone(groups)
	slices.SortFunc(ranked, func(a, b domain.GroupTotal) int {
		if a.Total != b.Total {
			return b.Total - a.Total
		}
		return strings.Compare(a.Key, b.Key)
	})
	return ranked
}
