package list_holidays

import (
	"net/http"

	"github.com/m04kA/SMC-AvailabilityService/internal/api/handlers"
)

type Handler struct {
	service HolidayService
	logger  Logger
}

func NewHandler(service HolidayService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/holidays
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	dates, err := h.service.List(r.Context())
	if err != nil {
		h.logger.Error("GET /holidays - Failed to list holidays: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromServiceResponse(dates))
}
