package check_availability

import (
	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	"github.com/m04kA/SMC-AvailabilityService/pkg/types"
)

// Request модель запроса проверки доступности
type Request struct {
	ProductID  int64
	StartDate  types.Date
	EndDate    types.Date        // Нулевое значение = StartDate
	TimeSlot   *types.TimeString // Выбранный слот (для DateTime)
	ResourceID *int64            // Явно выбранный ресурс
}

// Response модель ответа проверки доступности
type Response struct {
	ProductID   int64
	StartDate   types.Date
	EndDate     types.Date
	BookingType domain.BookingType
	Available   bool
	Reason      domain.Reason
}
