package get_max_date

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/m04kA/SMC-AvailabilityService/internal/api/handlers"
	getMaxDate "github.com/m04kA/SMC-AvailabilityService/internal/usecase/get_max_date"
)

const (
	msgInvalidProductID = "некорректный ID товара"
	msgInvalidLoopCap   = "некорректный лимит итераций"
	msgConfigNotFound   = "конфигурация бронирования товара не найдена"
)

type Handler struct {
	useCase GetMaxDateUseCase
	logger  Logger
}

func NewHandler(useCase GetMaxDateUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/products/{productId}/max-date
// Query params: loopCap (optional)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	productID, err := handlers.PathInt64(r, "productId")
	if err != nil {
		h.logger.Warn("GET /products/{id}/max-date - Invalid product ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidProductID)
		return
	}

	req := &getMaxDate.Request{ProductID: productID}

	if raw := r.URL.Query().Get("loopCap"); raw != "" {
		loopCap, err := strconv.Atoi(raw)
		if err != nil {
			h.logger.Warn("GET /products/{id}/max-date - Invalid loopCap: %v", err)
			handlers.RespondBadRequest(w, msgInvalidLoopCap)
			return
		}
		req.LoopCap = loopCap
	}

	result, err := h.useCase.Execute(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, getMaxDate.ErrConfigNotFound):
			h.logger.Warn("GET /products/{id}/max-date - Config not found: product_id=%d", productID)
			handlers.RespondNotFound(w, msgConfigNotFound)

		case errors.Is(err, getMaxDate.ErrInvalidInput):
			h.logger.Warn("GET /products/{id}/max-date - Invalid input: product_id=%d, error=%v", productID, err)
			handlers.RespondBadRequest(w, msgInvalidLoopCap)

		default:
			h.logger.Error("GET /products/{id}/max-date - Failed to compute max date: product_id=%d, error=%v",
				productID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
