package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fundcli/internal/services"
	"fundcli/pkg/contracts/domain"
)

// stubService substitutes the dashboard service behind the handlers.
type stubService struct {
	bounds    domain.FilterBounds
	boundsErr error
	data      *domain.DashboardData
	dataErr   error

	gotSpec domain.FilterSpec
}

func (s *stubService) Dashboard(ctx context.Context, spec domain.FilterSpec) (*domain.DashboardData, error) {
	s.gotSpec = spec
	if s.dataErr != nil {
		return nil, s.dataErr
	}
	return s.data, nil
}

func (s *stubService) FilterBounds(ctx context.Context) (domain.FilterBounds, error) {
	if s.boundsErr != nil {
		return domain.FilterBounds{}, s.boundsErr
	}
	return s.bounds, nil
}

func testBounds() domain.FilterBounds {
	return domain.FilterBounds{
		YearMin:       2015,
		YearMax:       2020,
		Cities:        []string{"Bangalore", "Delhi", "Mumbai"},
		DefaultCities: []string{"Bangalore", "Mumbai", "Delhi"},
		AmountMin:     0.5,
		AmountMax:     999.0,
	}
}

func serve(t *testing.T, service DashboardService, target string) *httptest.ResponseRecorder {
	t.Helper()
	handler := NewDashboardHandler(service, nil)
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	handler.Routes().ServeHTTP(rec, req)
	return rec
}

func TestGetDashboard(t *testing.T) {
	stub := &stubService{
		bounds: testBounds(),
		data: &domain.DashboardData{
			KPIs:        domain.KPISet{TotalFundingMillionsUSD: 6.0, DistinctStartups: 3, AverageFundingMillionsUSD: 2.0},
			RecordCount: 3,
		},
	}

	rec := serve(t, stub, "/dashboard?year_from=2016&year_to=2018&cities=Bangalore,Mumbai&amount_min=1&amount_max=100")

	require.Equal(t, http.StatusOK, rec.Code)

	var payload domain.DashboardData
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &payload))
	assert.Equal(t, 3, payload.RecordCount)
	assert.InDelta(t, 6.0, payload.KPIs.TotalFundingMillionsUSD, 1e-9)

	assert.Equal(t, domain.FilterSpec{
		YearFrom:  2016,
		YearTo:    2018,
		Cities:    []string{"Bangalore", "Mumbai"},
		AmountMin: 1,
		AmountMax: 100,
	}, stub.gotSpec)
}

func TestGetDashboardDefaultsFromBounds(t *testing.T) {
	stub := &stubService{
		bounds: testBounds(),
		data:   &domain.DashboardData{RecordCount: 1},
	}

	rec := serve(t, stub, "/dashboard")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, domain.FilterSpec{
		YearFrom:  2015,
		YearTo:    2020,
		Cities:    []string{"Bangalore", "Mumbai", "Delhi"},
		AmountMin: 0.5,
		AmountMax: 999.0,
	}, stub.gotSpec)
}

func TestGetDashboardValidation(t *testing.T) {
	tests := []struct {
		name   string
		target string
	}{
		{"non numeric year", "/dashboard?year_from=abc"},
		{"non numeric amount", "/dashboard?amount_min=lots"},
		{"inverted year range", "/dashboard?year_from=2019&year_to=2015"},
		{"inverted amount range", "/dashboard?amount_min=100&amount_max=1"},
		{"blank city list", "/dashboard?cities=,,"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stub := &stubService{bounds: testBounds(), data: &domain.DashboardData{}}
			rec := serve(t, stub, tt.target)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Contains(t, rec.Body.String(), "VALIDATION_FAILED")
		})
	}
}

func TestGetDashboardNoMatchingRecords(t *testing.T) {
	stub := &stubService{bounds: testBounds(), dataErr: services.ErrNoMatchingRecords}

	rec := serve(t, stub, "/dashboard")

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Contains(t, rec.Body.String(), "NO_MATCHING_RECORDS")
}

func TestGetDashboardDatasetUnavailable(t *testing.T) {
	stub := &stubService{boundsErr: services.ErrNotLoaded}

	rec := serve(t, stub, "/dashboard")

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Contains(t, rec.Body.String(), "DATASET_UNAVAILABLE")
}

func TestGetFilters(t *testing.T) {
	stub := &stubService{bounds: testBounds()}

	rec := serve(t, stub, "/filters")

	require.Equal(t, http.StatusOK, rec.Code)

	var bounds domain.FilterBounds
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &bounds))
	assert.Equal(t, testBounds(), bounds)
}
