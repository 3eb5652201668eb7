package remove_holiday

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-AvailabilityService/internal/api/handlers"
	"github.com/m04kA/SMC-AvailabilityService/internal/service/holidays"
	"github.com/m04kA/SMC-AvailabilityService/pkg/types"
)

const (
	msgInvalidDate = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgNotFound    = "праздник не найден"
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

// Handle DELETE /api/v1/holidays/{date}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	day, err := types.ParseDate(types.LayoutYMD, mux.Vars(r)["date"])
	if err != nil {
		h.logger.Warn("DELETE /holidays/{date} - Invalid date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	if err := h.service.Remove(r.Context(), day); err != nil {
		if errors.Is(err, holidays.ErrHolidayNotFound) {
			h.logger.Warn("DELETE /holidays/{date} - Holiday not found: date=%s", day)
			handlers.RespondNotFound(w, msgNotFound)
			return
		}

		h.logger.Error("DELETE /holidays/{date} - Failed to remove holiday: date=%s, error=%v", day, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("DELETE /holidays/{date} - Holiday removed: date=%s", day)
	w.WriteHeader(http.StatusNoContent)
}
