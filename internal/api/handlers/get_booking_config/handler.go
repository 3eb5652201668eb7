package get_booking_config

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-AvailabilityService/internal/api/handlers"
	"github.com/m04kA/SMC-AvailabilityService/internal/service/config"
)

const (
	msgInvalidProductID = "некорректный ID товара"
	msgNotFound         = "конфигурация не найдена"
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

// Handle GET /api/v1/products/{productId}/config
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	productID, err := handlers.PathInt64(r, "productId")
	if err != nil {
		h.logger.Warn("GET /products/{id}/config - Invalid product ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidProductID)
		return
	}

	result, err := h.service.Get(r.Context(), productID)
	if err != nil {
		if errors.Is(err, config.ErrConfigNotFound) {
			h.logger.Warn("GET /products/{id}/config - Config not found: product_id=%d", productID)
			handlers.RespondNotFound(w, msgNotFound)
			return
		}

		h.logger.Error("GET /products/{id}/config - Failed to get config: product_id=%d, error=%v", productID, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
