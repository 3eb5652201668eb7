package get_reservation

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

// Handle GET /api/v1/products/{productId}/reservations/{reservationId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	productID, err := handlers.PathInt64(r, "productId")
	if err != nil {
		h.logger.Warn("GET /products/{id}/reservations/{reservationId} - Invalid product ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidProductID)
		return
	}

	reservationID := mux.Vars(r)["reservationId"]
	if _, err := uuid.Parse(reservationID); err != nil {
		h.logger.Warn("GET /products/{id}/reservations/{reservationId} - Invalid reservation ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidReservationID)
		return
	}

	result, err := h.service.GetByID(r.Context(), productID, reservationID)
	if err != nil {
		if errors.Is(err, reservations.ErrReservationNotFound) {
			h.logger.Warn("GET /products/{id}/reservations/{reservationId} - Not found: product_id=%d, id=%s",
				productID, reservationID)
			handlers.RespondNotFound(w, msgReservationNotFound)
			return
		}

		h.logger.Error("GET /products/{id}/reservations/{reservationId} - Failed to get reservation: id=%s, error=%v",
			reservationID, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
