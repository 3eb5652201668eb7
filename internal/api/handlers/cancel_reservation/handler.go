package cancel_reservation

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-AvailabilityService/internal/api/handlers"
	"github.com/m04kA/SMC-AvailabilityService/internal/service/reservations"
)

const (
	msgInvalidProductID     = "некорректный ID товара"
	msgInvalidReservationID = "некорректный ID резервирования"
	msgReservationNotFound  = "резервирование не найдено"
	msgCannotCancel         = "резервирование уже отменено"
)

type Handler struct {
	service ReservationService
	logger  Logger
}

func NewHandler(service ReservationService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PATCH /api/v1/products/{productId}/reservations/{reservationId}/cancel
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	productID, err := handlers.PathInt64(r, "productId")
	if err != nil {
		h.logger.Warn("PATCH /products/{id}/reservations/{reservationId}/cancel - Invalid product ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidProductID)
		return
	}

	reservationID := mux.Vars(r)["reservationId"]
	if _, err := uuid.Parse(reservationID); err != nil {
		h.logger.Warn("PATCH /products/{id}/reservations/{reservationId}/cancel - Invalid reservation ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidReservationID)
		return
	}

	if err := h.service.Cancel(r.Context(), productID, reservationID); err != nil {
		switch {
		case errors.Is(err, reservations.ErrReservationNotFound):
			h.logger.Warn("PATCH /products/{id}/reservations/{reservationId}/cancel - Not found: id=%s", reservationID)
			handlers.RespondNotFound(w, msgReservationNotFound)

		case errors.Is(err, reservations.ErrCannotCancel):
			h.logger.Warn("PATCH /products/{id}/reservations/{reservationId}/cancel - Already cancelled: id=%s", reservationID)
			handlers.RespondConflict(w, msgCannotCancel)

		default:
			h.logger.Error("PATCH /products/{id}/reservations/{reservationId}/cancel - Failed to cancel: id=%s, error=%v",
				reservationID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /products/{id}/reservations/{reservationId}/cancel - Reservation cancelled: id=%s", reservationID)
	w.WriteHeader(http.StatusNoContent)
}
