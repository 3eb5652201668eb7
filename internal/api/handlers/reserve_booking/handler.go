package reserve_booking

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-AvailabilityService/internal/api/handlers"
	reserveBooking "github.com/m04kA/SMC-AvailabilityService/internal/usecase/reserve_booking"
)

const (
	msgInvalidProductID   = "некорректный ID товара"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDate        = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidDateRange   = "некорректный диапазон дат"
	msgInvalidInput       = "некорректные параметры запроса"
	msgConfigNotFound     = "конфигурация бронирования товара не найдена"
	msgNotAvailable       = "выбранные даты недоступны"
)

type Handler struct {
	useCase ReserveBookingUseCase
	logger  Logger
}

func NewHandler(useCase ReserveBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/products/{productId}/reservations
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	productID, err := handlers.PathInt64(r, "productId")
	if err != nil {
		h.logger.Warn("POST /products/{id}/reservations - Invalid product ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidProductID)
		return
	}

	var req ReserveRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /products/{id}/reservations - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(productID)
	if err != nil {
		h.logger.Warn("POST /products/{id}/reservations - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		var unavailable *reserveBooking.UnavailableError

		switch {
		case errors.As(err, &unavailable):
			h.logger.Warn("POST /products/{id}/reservations - Not available: product_id=%d, reason=%s",
				productID, unavailable.Reason)
			handlers.RespondErrorWithDetails(w, http.StatusConflict, msgNotAvailable,
				UnavailableDetails{Reason: string(unavailable.Reason)})

		case errors.Is(err, reserveBooking.ErrConfigNotFound):
			h.logger.Warn("POST /products/{id}/reservations - Config not found: product_id=%d", productID)
			handlers.RespondNotFound(w, msgConfigNotFound)

		case errors.Is(err, reserveBooking.ErrInvalidDateRange):
			h.logger.Warn("POST /products/{id}/reservations - Invalid date range: product_id=%d, error=%v", productID, err)
			handlers.RespondBadRequest(w, msgInvalidDateRange)

		case errors.Is(err, reserveBooking.ErrInvalidInput):
			h.logger.Warn("POST /products/{id}/reservations - Invalid input: product_id=%d, error=%v", productID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /products/{id}/reservations - Failed to reserve: product_id=%d, error=%v",
				productID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /products/{id}/reservations - Reservation created: id=%s, product_id=%d", result.ID, productID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
