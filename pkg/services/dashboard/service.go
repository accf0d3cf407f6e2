package dashboard

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/de-tools/sales-atlas/pkg/adapters"
	"github.com/de-tools/sales-atlas/pkg/models/domain"
	"github.com/de-tools/sales-atlas/pkg/store/sales"
	"github.com/rs/zerolog"
)

// Options are the display knobs that change what the snapshot carries without
// changing the filter.
type Options struct {
	Frequency  domain.Frequency
	Cumulative bool
}

// Service runs the full pipeline for one filter selection. Every call re-runs
// the pipeline over the store's record set; there is no state between calls.
type Service interface {
	Snapshot(ctx context.Context, criteria domain.FilterCriteria, opts Options) (*domain.DashboardSnapshot, error)
	Records(ctx context.Context, criteria domain.FilterCriteria) ([]domain.SalesRecord, error)
	Catalog(ctx context.Context) (*domain.Catalog, error)
}

type service struct {
	store sales.Store
}

func NewService(store sales.Store) Service {
	return &service{store: store}
}

func (s *service) Snapshot(
	ctx context.Context,
	criteria domain.FilterCriteria,
	opts Options,
) (*domain.DashboardSnapshot, error) {
	logger := zerolog.Ctx(ctx)

	view, err := s.Records(ctx, criteria)
	if err != nil {
		return nil, err
	}

	freq := opts.Frequency
	if freq == "" {
		freq = domain.FrequencyDaily
	}

	salesTrend := Resample(view, domain.MetricSales, freq)
	if opts.Cumulative {
		salesTrend = Accumulate(salesTrend)
	}

	snapshot := &domain.DashboardSnapshot{
		KPIs:       ComputeKPIs(view),
		SalesTrend: salesTrend,
		// The profit series is never accumulated.
		ProfitTrend:   Resample(view, domain.MetricProfit, freq),
		TopProducts:   Ranked(GroupSum(view, domain.DimensionProduct, domain.MetricSales)),
		RegionRevenue: GroupSum(view, domain.DimensionRegion, domain.MetricSales),
		Records:       view,
	}

	logger.Debug().
		Int("records", len(view)).
		Str("frequency", string(freq)).
		Bool("cumulative", opts.Cumulative).
		Msg("dashboard snapshot computed")

	return snapshot, nil
}

func (s *service) Records(ctx context.Context, criteria domain.FilterCriteria) ([]domain.SalesRecord, error) {
	records, err := s.store.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load sales records: %w", err)
	}
	return Filter(adapters.MapStoreSalesRecordsToDomain(records), criteria), nil
}

func (s *service) Catalog(ctx context.Context) (*domain.Catalog, error) {
	records, err := s.store.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load sales records: %w", err)
	}

	catalog := &domain.Catalog{}
	regions := make(map[string]struct{})
	products := make(map[string]struct{})
	for _, r := range records {
		regions[r.Region] = struct{}{}
		products[r.Product] = struct{}{}
		if catalog.FirstDate.IsZero() || r.Date.Before(catalog.FirstDate) {
			catalog.FirstDate = r.Date
		}
		if r.Date.After(catalog.LastDate) {
			catalog.LastDate = r.Date
		}
	}

	for region := range regions {
		catalog.Regions = append(catalog.Regions, region)
	}
	for product := range products {
		catalog.Products = append(catalog.Products, product)
	}
	slices.SortFunc(catalog.Regions, strings.Compare)
	slices.SortFunc(catalog.Products, strings.Compare)

	return catalog, nil
}
