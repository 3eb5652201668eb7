package update_booking_config

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
	msgInvalidData        = "некорректные данные конфигурации"
)

type Handler struct {
	service ConfigService
	logger  Logger
}

func NewHandler(service ConfigService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PUT /api/v1/products/{productId}/config
// Создает конфигурацию или полностью заменяет существующую
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	productID, err := handlers.PathInt64(r, "productId")
	if err != nil {
		h.logger.Warn("PUT /products/{id}/config - Invalid product ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidProductID)
		return
	}

	var req models.UpsertConfigRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /products/{id}/config - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Upsert(r.Context(), productID, &req)
	if err != nil {
		if errors.Is(err, config.ErrInvalidInput) {
			h.logger.Warn("PUT /products/{id}/config - Invalid data: product_id=%d, error=%v", productID, err)

			var validationErrs config.ValidationErrors
			if errors.As(err, &validationErrs) {
				handlers.RespondErrorWithDetails(w, http.StatusBadRequest, msgInvalidData, validationErrs)
				return
			}
			handlers.RespondBadRequest(w, msgInvalidData)
			return
		}

		h.logger.Error("PUT /products/{id}/config - Failed to save config: product_id=%d, error=%v", productID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("PUT /products/{id}/config - Config saved successfully: product_id=%d", productID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
