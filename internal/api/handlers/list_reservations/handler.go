package list_reservations

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-AvailabilityService/internal/api/handlers"
	"github.com/m04kA/SMC-AvailabilityService/internal/service/reservations"
)

const (
	msgInvalidProductID = "некорректный ID товара"
	msgInvalidParams    = "некорректные параметры запроса"
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

// Handle GET /api/v1/products/{productId}/reservations
// Query params: from, to (YYYY-MM-DD), status (опционально)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	productID, err := handlers.PathInt64(r, "productId")
	if err != nil {
		h.logger.Warn("GET /products/{id}/reservations - Invalid product ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidProductID)
		return
	}

	serviceReq, err := ToServiceRequest(productID, r.URL.Query())
	if err != nil {
		h.logger.Warn("GET /products/{id}/reservations - Invalid parameters: %v", err)
		handlers.RespondBadRequest(w, msgInvalidParams)
		return
	}

	result, err := h.service.List(r.Context(), serviceReq)
	if err != nil {
		if errors.Is(err, reservations.ErrInvalidInput) {
			h.logger.Warn("GET /products/{id}/reservations - Invalid input: product_id=%d, error=%v", productID, err)
			handlers.RespondBadRequest(w, msgInvalidParams)
			return
		}

		h.logger.Error("GET /products/{id}/reservations - Failed to list reservations: product_id=%d, error=%v",
			productID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /products/{id}/reservations - Reservations retrieved: product_id=%d, count=%d",
		productID, len(result.Reservations))
	handlers.RespondJSON(w, http.StatusOK, result)
}
