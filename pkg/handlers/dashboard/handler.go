package dashboard

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/de-tools/sales-atlas/pkg/adapters"
	"github.com/de-tools/sales-atlas/pkg/models/api"
	"github.com/de-tools/sales-atlas/pkg/models/domain"
	"github.com/de-tools/sales-atlas/pkg/services/dashboard"
	"github.com/de-tools/sales-atlas/pkg/services/export"
	"github.com/rs/zerolog"
)

const dateFormat = "2006-01-02"

type Handler struct {
	dashboard dashboard.Service
}

func NewHandler(svc dashboard.Service) *Handler {
	return &Handler{dashboard: svc}
}

// query parameters shared by the dashboard and records endpoints
type query struct {
	criteria   domain.FilterCriteria
	frequency  domain.Frequency
	cumulative bool
	chart      domain.ChartType
	table      bool
}

// parseQuery turns the request's filter parameters into criteria. Absent
// parameters leave the corresponding constraint open; unparseable values are
// the only error case. A filter that matches nothing is not an error.
func parseQuery(r *http.Request) (query, error) {
	var q query
	values := r.URL.Query()

	if raw := values.Get("start"); raw != "" {
		start, err := time.Parse(dateFormat, raw)
		if err != nil {
			return q, fmt.Errorf("invalid start date %q", raw)
		}
		q.criteria.StartDate = start
	}
	if raw := values.Get("end"); raw != "" {
		end, err := time.Parse(dateFormat, raw)
		if err != nil {
			return q, fmt.Errorf("invalid end date %q", raw)
		}
		q.criteria.EndDate = end
	}
	if values.Has("regions") {
		q.criteria.Regions = splitList(values.Get("regions"))
	}
	if values.Has("products") {
		q.criteria.Products = splitList(values.Get("products"))
	}

	freq, err := domain.ParseFrequency(values.Get("freq"))
	if err != nil {
		return q, err
	}
	q.frequency = freq

	chart, err := domain.ParseChartType(values.Get("chart"))
	if err != nil {
		return q, err
	}
	q.chart = chart

	if raw := values.Get("cumulative"); raw != "" {
		cumulative, err := strconv.ParseBool(raw)
		if err != nil {
			return q, fmt.Errorf("invalid cumulative flag %q", raw)
		}
		q.cumulative = cumulative
	}

	q.table = true
	if raw := values.Get("table"); raw != "" {
		table, err := strconv.ParseBool(raw)
		if err != nil {
			return q, fmt.Errorf("invalid table flag %q", raw)
		}
		q.table = table
	}

	return q, nil
}

// splitList keeps "regions=" distinct from an absent parameter: the former
// selects nothing, the latter everything.
func splitList(raw string) []string {
	if raw == "" {
		return []string{}
	}
	parts := strings.Split(raw, ",")
	values := make([]string, 0, len(parts))
	for _, p := range parts {
		values = append(values, strings.TrimSpace(p))
	}
	return values
}

func (h *Handler) GetDashboard(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)

	q, err := parseQuery(r)
	if err != nil {
		writeBadRequest(w, err)
		return
	}

	snapshot, err := h.dashboard.Snapshot(ctx, q.criteria, dashboard.Options{
		Frequency:  q.frequency,
		Cumulative: q.cumulative,
	})
	if err != nil {
		logger.Error().Err(err).Msg("failed to build dashboard snapshot")
		writeInternalError(w)
		return
	}

	payload := adapters.MapSnapshotDomainToApi(*snapshot, q.frequency, q.cumulative, q.chart)
	if !q.table {
		payload.Records = []api.SalesRecord{}
	}
	writeJSON(w, logger, payload)
}

func (h *Handler) ListRecords(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)

	q, err := parseQuery(r)
	if err != nil {
		writeBadRequest(w, err)
		return
	}

	view, err := h.dashboard.Records(ctx, q.criteria)
	if err != nil {
		logger.Error().Err(err).Msg("failed to load records")
		writeInternalError(w)
		return
	}

	records := make([]api.SalesRecord, 0, len(view))
	for _, rec := range view {
		records = append(records, adapters.MapSalesRecordDomainToApi(rec))
	}
	writeJSON(w, logger, records)
}

func (h *Handler) ExportRecords(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)

	q, err := parseQuery(r)
	if err != nil {
		writeBadRequest(w, err)
		return
	}

	view, err := h.dashboard.Records(ctx, q.criteria)
	if err != nil {
		logger.Error().Err(err).Msg("failed to load records for export")
		writeInternalError(w)
		return
	}

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", export.FileName))
	if err := export.WriteRecords(w, view); err != nil {
		logger.Error().Err(err).Msg("failed to write csv export")
	}
}

func (h *Handler) GetCatalog(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)

	catalog, err := h.dashboard.Catalog(ctx)
	if err != nil {
		logger.Error().Err(err).Msg("failed to build catalog")
		writeInternalError(w)
		return
	}

	writeJSON(w, logger, adapters.MapCatalogDomainToApi(*catalog))
}

func writeJSON(w http.ResponseWriter, logger *zerolog.Logger, payload any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logger.Error().Err(err).Msg("failed to encode response")
	}
}

func writeBadRequest(w http.ResponseWriter, err error) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusBadRequest)
	_ = json.NewEncoder(w).Encode(api.Error{Error: err.Error()})
}

func writeInternalError(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusInternalServerError)
	_ = json.NewEncoder(w).Encode(api.Error{Error: "internal error"})
}
