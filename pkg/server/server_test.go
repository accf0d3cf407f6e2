package server

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/de-tools/sales-atlas/pkg/models/api"
	"github.com/de-tools/sales-atlas/pkg/models/domain"
	"github.com/de-tools/sales-atlas/pkg/services/dashboard"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockDashboard struct {
	mock.Mock
}

func (m *mockDashboard) Snapshot(
	ctx context.Context,
	criteria domain.FilterCriteria,
	opts dashboard.Options,
) (*domain.DashboardSnapshot, error) {
	args := m.Called(ctx, criteria, opts)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DashboardSnapshot), args.Error(1)
}

func (m *mockDashboard) Records(
	ctx context.Context,
	criteria domain.FilterCriteria,
) ([]domain.SalesRecord, error) {
	args := m.Called(ctx, criteria)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.SalesRecord), args.Error(1)
}

func (m *mockDashboard) Catalog(ctx context.Context) (*domain.Catalog, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Catalog), args.Error(1)
}

func newTestServer(t *testing.T, svc dashboard.Service) *httptest.Server {
	t.Helper()
	router := ConfigureRouter(Config{
		Dependencies: Dependencies{
			Dashboard: svc,
			Logger:    zerolog.New(zerolog.NewTestWriter(t)),
		},
	})
	server := httptest.NewServer(router)
	t.Cleanup(server.Close)
	return server
}

func day(t *testing.T, value string) time.Time {
	t.Helper()
	parsed, err := time.Parse("2006-01-02", value)
	require.NoError(t, err)
	return parsed
}

func TestWebAPI_GetDashboard(t *testing.T) {
	svc := new(mockDashboard)
	svc.On("Snapshot", mock.Anything,
		domain.FilterCriteria{
			StartDate: day(t, "2020-01-01"),
			EndDate:   day(t, "2020-01-31"),
			Regions:   []string{"North", "South"},
		},
		dashboard.Options{Frequency: domain.FrequencyWeekly, Cumulative: true},
	).Return(&domain.DashboardSnapshot{
		KPIs: domain.KPIs{TotalSales: 600, TotalProfit: 60, AvgSale: 300},
		SalesTrend: domain.TimeSeries{
			{Period: day(t, "2020-01-05"), Value: 600},
		},
		TopProducts: []domain.GroupTotal{{Key: "Product A", Total: 600}},
	}, nil)

	server := newTestServer(t, svc)
	resp, err := http.Get(server.URL +
		"/api/v1/dashboard?start=2020-01-01&end=2020-01-31&regions=North,South&freq=weekly&cumulative=true")
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body api.Dashboard
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, 600, body.KPIs.TotalSales)
	assert.Equal(t, "300.00", body.KPIs.AvgSale)
	assert.Equal(t, "weekly", body.Options.Frequency)
	assert.True(t, body.Options.Cumulative)
	require.Len(t, body.SalesTrend, 1)
	assert.Equal(t, "2020-01-05", body.SalesTrend[0].Period)
	svc.AssertExpectations(t)
}

func TestWebAPI_GetDashboard_EmptyViewReportsNan(t *testing.T) {
	svc := new(mockDashboard)
	svc.On("Snapshot", mock.Anything, mock.Anything, mock.Anything).
		Return(&domain.DashboardSnapshot{KPIs: dashboard.ComputeKPIs(nil)}, nil)

	server := newTestServer(t, svc)
	resp, err := http.Get(server.URL + "/api/v1/dashboard")
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body api.Dashboard
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, 0, body.KPIs.TotalSales)
	assert.Equal(t, "nan", body.KPIs.AvgSale)
}

func TestWebAPI_GetDashboard_TableDisabled(t *testing.T) {
	svc := new(mockDashboard)
	svc.On("Snapshot", mock.Anything, mock.Anything, mock.Anything).
		Return(&domain.DashboardSnapshot{
			KPIs: domain.KPIs{TotalSales: 100, TotalProfit: 10, AvgSale: 100},
			Records: []domain.SalesRecord{
				{Date: day(t, "2020-01-01"), Product: "Product A", Region: "North", Sales: 100, Profit: 10},
			},
		}, nil)

	server := newTestServer(t, svc)
	resp, err := http.Get(server.URL + "/api/v1/dashboard?table=false")
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body api.Dashboard
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, 100, body.KPIs.TotalSales)
	assert.Empty(t, body.Records)
}

func TestWebAPI_GetDashboard_BadDate(t *testing.T) {
	svc := new(mockDashboard)
	server := newTestServer(t, svc)

	resp, err := http.Get(server.URL + "/api/v1/dashboard?start=yesterday")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	svc.AssertNotCalled(t, "Snapshot", mock.Anything, mock.Anything, mock.Anything)
}

func TestWebAPI_GetDashboard_BadFrequency(t *testing.T) {
	svc := new(mockDashboard)
	server := newTestServer(t, svc)

	resp, err := http.Get(server.URL + "/api/v1/dashboard?freq=hourly")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestWebAPI_ListRecords(t *testing.T) {
	svc := new(mockDashboard)
	svc.On("Records", mock.Anything, domain.FilterCriteria{Products: []string{"Product A"}}).
		Return([]domain.SalesRecord{
			{Date: day(t, "2020-01-01"), Product: "Product A", Region: "North", Sales: 100, Profit: 10},
		}, nil)

	server := newTestServer(t, svc)
	resp, err := http.Get(server.URL + "/api/v1/records?products=Product%20A")
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body []api.SalesRecord
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, []api.SalesRecord{
		{Date: "2020-01-01", Product: "Product A", Region: "North", Sales: 100, Profit: 10},
	}, body)
}

func TestWebAPI_ExportRecords(t *testing.T) {
	svc := new(mockDashboard)
	svc.On("Records", mock.Anything, mock.Anything).
		Return([]domain.SalesRecord{
			{Date: day(t, "2020-01-01"), Product: "Product A", Region: "North", Sales: 100, Profit: 10},
		}, nil)

	server := newTestServer(t, svc)
	resp, err := http.Get(server.URL + "/api/v1/records/export")
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "text/csv; charset=utf-8", resp.Header.Get("Content-Type"))
	assert.Equal(t, `attachment; filename="filtered_sales_data.csv"`, resp.Header.Get("Content-Disposition"))

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, "Date,Product,Region,Sales,Profit\n2020-01-01,Product A,North,100,10\n", string(body))
}

func TestWebAPI_GetCatalog(t *testing.T) {
	svc := new(mockDashboard)
	svc.On("Catalog", mock.Anything).Return(&domain.Catalog{
		Regions:   []string{"East", "North"},
		Products:  []string{"Product A"},
		FirstDate: day(t, "2020-01-01"),
		LastDate:  day(t, "2020-04-09"),
	}, nil)

	server := newTestServer(t, svc)
	resp, err := http.Get(server.URL + "/api/v1/catalog")
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body api.Catalog
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, []string{"East", "North"}, body.Regions)
	assert.Equal(t, "2020-04-09", body.LastDate)
}
