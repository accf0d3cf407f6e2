package dashboard

import (
	"net/http/httptest"
	"testing"

	"github.com/de-tools/sales-atlas/pkg/models/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseQuery_AbsentParamsLeaveConstraintsOpen(t *testing.T) {
	r := httptest.NewRequest("GET", "/api/v1/dashboard", nil)

	q, err := parseQuery(r)
	require.NoError(t, err)

	assert.True(t, q.criteria.StartDate.IsZero())
	assert.True(t, q.criteria.EndDate.IsZero())
	assert.Nil(t, q.criteria.Regions)
	assert.Nil(t, q.criteria.Products)
	assert.Equal(t, domain.FrequencyDaily, q.frequency)
	assert.Equal(t, domain.ChartLine, q.chart)
	assert.False(t, q.cumulative)
	assert.True(t, q.table)
}

func TestParseQuery_EmptyRegionsSelectsNothing(t *testing.T) {
	r := httptest.NewRequest("GET", "/api/v1/dashboard?regions=", nil)

	q, err := parseQuery(r)
	require.NoError(t, err)

	// Empty but non-nil: the filter must match no records.
	require.NotNil(t, q.criteria.Regions)
	assert.Empty(t, q.criteria.Regions)
}

func TestParseQuery_ListsAndOptions(t *testing.T) {
	r := httptest.NewRequest("GET",
		"/api/v1/dashboard?regions=North,%20South&products=Product%20A&freq=monthly&chart=area&cumulative=1&table=false", nil)

	q, err := parseQuery(r)
	require.NoError(t, err)

	assert.Equal(t, []string{"North", "South"}, q.criteria.Regions)
	assert.Equal(t, []string{"Product A"}, q.criteria.Products)
	assert.Equal(t, domain.FrequencyMonthly, q.frequency)
	assert.Equal(t, domain.ChartArea, q.chart)
	assert.True(t, q.cumulative)
	assert.False(t, q.table)
}

func TestParseQuery_Errors(t *testing.T) {
	for name, target := range map[string]string{
		"bad start date": "/api/v1/dashboard?start=01-01-2020",
		"bad end date":   "/api/v1/dashboard?end=never",
		"bad frequency":  "/api/v1/dashboard?freq=hourly",
		"bad chart":      "/api/v1/dashboard?chart=pie",
		"bad cumulative": "/api/v1/dashboard?cumulative=maybe",
		"bad table":      "/api/v1/dashboard?table=maybe",
	} {
		t.Run(name, func(t *testing.T) {
			r := httptest.NewRequest("GET", target, nil)
			_, err := parseQuery(r)
			assert.Error(t, err)
		})
	}
}
