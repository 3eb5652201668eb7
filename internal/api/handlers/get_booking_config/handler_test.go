package get_booking_config

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AvailabilityService/internal/service/config"
	"github.com/m04kA/SMC-AvailabilityService/internal/service/config/models"
	"github.com/m04kA/SMC-AvailabilityService/pkg/logger"
)

type fakeService struct {
	resp *models.ConfigResponse
	err  error
}

func (f *fakeService) Get(_ context.Context, _ int64) (*models.ConfigResponse, error) {
	return f.resp, f.err
}

func serve(svc *fakeService, target string) *httptest.ResponseRecorder {
	router := mux.NewRouter()
	router.HandleFunc("/products/{productId}/config", NewHandler(svc, logger.NewNop()).Handle)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func TestHandle_OK(t *testing.T) {
	svc := &fakeService{resp: &models.ConfigResponse{ProductID: 5, BookingType: "only_day", RecurringWeekdays: []int{1, 2}}}

	rec := serve(svc, "/products/5/config")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp models.ConfigResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "only_day", resp.BookingType)
	assert.Equal(t, []int{1, 2}, resp.RecurringWeekdays)
}

func TestHandle_Errors(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, serve(&fakeService{}, "/products/x/config").Code)
	assert.Equal(t, http.StatusNotFound, serve(&fakeService{err: config.ErrConfigNotFound}, "/products/5/config").Code)
	assert.Equal(t, http.StatusInternalServerError, serve(&fakeService{err: config.ErrInternal}, "/products/5/config").Code)
}
