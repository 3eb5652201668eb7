package delete_booking_config

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-AvailabilityService/internal/service/config"
	"github.com/m04kA/SMC-AvailabilityService/pkg/logger"
)

type fakeService struct {
	err     error
	deleted []int64
}

func (f *fakeService) Delete(_ context.Context, productID int64) error {
	f.deleted = append(f.deleted, productID)
	return f.err
}

func serve(svc *fakeService, target string) *httptest.ResponseRecorder {
	router := mux.NewRouter()
	router.HandleFunc("/products/{productId}/config", NewHandler(svc, logger.NewNop()).Handle).Methods(http.MethodDelete)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, target, nil))
	return rec
}

func TestHandle(t *testing.T) {
	svc := &fakeService{}
	rec := serve(svc, "/products/12/config")
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, []int64{12}, svc.deleted)

	assert.Equal(t, http.StatusBadRequest, serve(&fakeService{}, "/products/-1/config").Code)
	assert.Equal(t, http.StatusNotFound, serve(&fakeService{err: config.ErrConfigNotFound}, "/products/12/config").Code)
	assert.Equal(t, http.StatusInternalServerError, serve(&fakeService{err: config.ErrInternal}, "/products/12/config").Code)
}
