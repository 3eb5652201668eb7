package domain

import (
	"time"

	"github.com/m04kA/SMC-AvailabilityService/pkg/types"
)

// CandidateRequest запрос на проверку доступности
// Передается во все проверки по значению и не изменяется
type CandidateRequest struct {
	ProductID  int64
	StartDate  types.Date
	EndDate    types.Date        // Нулевое значение = StartDate
	TimeSlot   *types.TimeString // Для бронирования типа DateTime
	ResourceID *int64            // Явно выбранный ресурс
	Now        time.Time         // Текущее время, передается вызывающей стороной
}

// End возвращает дату окончания с учетом значения по умолчанию
func (r CandidateRequest) End() types.Date {
	if r.EndDate.IsZero() {
		return r.StartDate
	}
	return r.EndDate
}

// IsSingleDay возвращает true, если начало и конец совпадают
func (r CandidateRequest) IsSingleDay() bool {
	return r.StartDate.Equal(r.End())
}

// Today возвращает текущий календарный день
func (r CandidateRequest) Today() types.Date {
	return types.DateOf(r.Now)
}

// Reason код причины решения о доступности. Только для диагностики
type Reason string

const (
	ReasonAvailable          Reason = "available"
	ReasonHoliday            Reason = "holiday"
	ReasonResourceConflict   Reason = "resource_conflict"
	ReasonLeadTime           Reason = "lead_time"
	ReasonRecurrence         Reason = "recurrence"
	ReasonMonthRange         Reason = "month_range"
	ReasonBeyondHorizon      Reason = "beyond_horizon"
	ReasonNoCapacity         Reason = "no_capacity"
	ReasonNoTimeSlots        Reason = "no_time_slots"
	ReasonUnknownBookingType Reason = "unknown_booking_type"
)

// AvailabilityResult итоговое решение о доступности
type AvailabilityResult struct {
	Available bool
	Reason    Reason
}

// Available создает положительное решение
func Available() AvailabilityResult {
	return AvailabilityResult{Available: true, Reason: ReasonAvailable}
}

// Unavailable создает отрицательное решение с причиной
func Unavailable(reason Reason) AvailabilityResult {
	return AvailabilityResult{Available: false, Reason: reason}
}
