package set_capacity

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-AvailabilityService/internal/api/handlers"
	"github.com/m04kA/SMC-AvailabilityService/internal/service/config"
	"github.com/m04kA/SMC-AvailabilityService/internal/service/config/models"
)

const (
	msgInvalidProductID   = "некорректный ID товара"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidData        = "некорректные данные вместимости"
	msgConfigNotFound     = "конфигурация бронирования товара не найдена"
)

type Handler struct {
	service CapacityService
	logger  Logger
}

func NewHandler(service CapacityService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PUT /api/v1/products/{productId}/capacity
// capacity = null снимает ограничение вместимости на день
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	productID, err := handlers.PathInt64(r, "productId")
	if err != nil {
		h.logger.Warn("PUT /products/{id}/capacity - Invalid product ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidProductID)
		return
	}

	var req models.SetCapacityRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /products/{id}/capacity - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if err := h.service.SetCapacity(r.Context(), productID, &req); err != nil {
		switch {
		case errors.Is(err, config.ErrConfigNotFound):
			h.logger.Warn("PUT /products/{id}/capacity - Config not found: product_id=%d", productID)
			handlers.RespondNotFound(w, msgConfigNotFound)

		case errors.Is(err, config.ErrInvalidInput):
			h.logger.Warn("PUT /products/{id}/capacity - Invalid data: product_id=%d, error=%v", productID, err)
			var validationErrs config.ValidationErrors
			if errors.As(err, &validationErrs) {
				handlers.RespondErrorWithDetails(w, http.StatusBadRequest, msgInvalidData, validationErrs)
				return
			}
			handlers.RespondBadRequest(w, msgInvalidData)

		default:
			h.logger.Error("PUT /products/{id}/capacity - Failed to set capacity: product_id=%d, error=%v", productID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /products/{id}/capacity - Capacity set: product_id=%d, date=%s", productID, req.Date)
	w.WriteHeader(http.StatusNoContent)
}
