package cancel_reservation

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-AvailabilityService/internal/service/reservations"
	"github.com/m04kA/SMC-AvailabilityService/pkg/logger"
)

const reservationID = "9f1c2d3e-4b5a-4c6d-8e7f-0a1b2c3d4e5f"

type fakeService struct {
	err   error
	calls int
}

func (f *fakeService) Cancel(_ context.Context, _ int64, _ string) error {
	f.calls++
	return f.err
}

func serve(svc *fakeService, target string) *httptest.ResponseRecorder {
	router := mux.NewRouter()
	router.HandleFunc("/products/{productId}/reservations/{reservationId}/cancel", NewHandler(svc, logger.NewNop()).Handle).
		Methods(http.MethodPatch)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPatch, target, nil))
	return rec
}

func TestHandle(t *testing.T) {
	tests := []struct {
		name       string
		target     string
		err        error
		wantStatus int
		wantCalls  int
	}{
		{"cancelled", "/products/2/reservations/" + reservationID + "/cancel", nil, http.StatusNoContent, 1},
		{"invalid reservation id", "/products/2/reservations/42/cancel", nil, http.StatusBadRequest, 0},
		{"not found", "/products/2/reservations/" + reservationID + "/cancel", reservations.ErrReservationNotFound, http.StatusNotFound, 1},
		{"already cancelled", "/products/2/reservations/" + reservationID + "/cancel", reservations.ErrCannotCancel, http.StatusConflict, 1},
		{"internal", "/products/2/reservations/" + reservationID + "/cancel", reservations.ErrInternal, http.StatusInternalServerError, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &fakeService{err: tt.err}
			rec := serve(svc, tt.target)
			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantCalls, svc.calls)
		})
	}
}
