package list_reservations

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AvailabilityService/internal/service/reservations"
	"github.com/m04kA/SMC-AvailabilityService/internal/service/reservations/models"
	"github.com/m04kA/SMC-AvailabilityService/pkg/logger"
	"github.com/m04kA/SMC-AvailabilityService/pkg/types"
)

type fakeService struct {
	resp *models.ReservationListResponse
	err  error
	got  *models.ListReservationsRequest
}

func (f *fakeService) List(_ context.Context, req *models.ListReservationsRequest) (*models.ReservationListResponse, error) {
	f.got = req
	return f.resp, f.err
}

func serve(svc *fakeService, target string) *httptest.ResponseRecorder {
	router := mux.NewRouter()
	router.HandleFunc("/products/{productId}/reservations", NewHandler(svc, logger.NewNop()).Handle)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func TestHandle_PassesFilters(t *testing.T) {
	svc := &fakeService{resp: &models.ReservationListResponse{
		Reservations: []models.ReservationResponse{{ID: "a"}, {ID: "b"}},
	}}

	rec := serve(svc, "/products/8/reservations?from=2025-06-01&to=2025-06-30&status=confirmed")
	require.Equal(t, http.StatusOK, rec.Code)

	require.NotNil(t, svc.got)
	assert.Equal(t, int64(8), svc.got.ProductID)
	require.NotNil(t, svc.got.From)
	assert.Equal(t, types.NewDate(2025, time.June, 1), *svc.got.From)
	require.NotNil(t, svc.got.To)
	assert.Equal(t, types.NewDate(2025, time.June, 30), *svc.got.To)
	require.NotNil(t, svc.got.Status)
	assert.Equal(t, "confirmed", *svc.got.Status)

	var resp models.ReservationListResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Len(t, resp.Reservations, 2)
}

func TestHandle_NoFilters(t *testing.T) {
	svc := &fakeService{resp: &models.ReservationListResponse{Reservations: []models.ReservationResponse{}}}

	rec := serve(svc, "/products/8/reservations")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Nil(t, svc.got.From)
	assert.Nil(t, svc.got.To)
	assert.Nil(t, svc.got.Status)
}

func TestHandle_Errors(t *testing.T) {
	tests := []struct {
		name       string
		target     string
		err        error
		wantStatus int
	}{
		{"bad from", "/products/8/reservations?from=01-06-2025", nil, http.StatusBadRequest},
		{"bad product", "/products/0/reservations", nil, http.StatusBadRequest},
		{"invalid status", "/products/8/reservations?status=pending", reservations.ErrInvalidInput, http.StatusBadRequest},
		{"internal", "/products/8/reservations", reservations.ErrInternal, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := serve(&fakeService{err: tt.err}, tt.target)
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}
