package engine

import (
	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	"github.com/m04kA/SMC-AvailabilityService/pkg/types"
)

// HorizonApplies возвращает true, если максимальная дата ограничивает бронирование.
// Горизонт применяется только при заданном maxBookableDays, включенном повторяющемся
// бронировании и отсутствии пользовательских диапазонов и ограничения по месяцам
func HorizonApplies(cfg *domain.BookingConfig) bool {
	return cfg.MaxBookableDays != nil &&
		!cfg.HasCustomDateRanges() &&
		!cfg.HasMonthRange() &&
		cfg.RecurringBookingEnabled
}

// HorizonAllows отклоняет запрос, если дата окончания позже максимальной даты
func HorizonAllows(maxDate types.Date, end types.Date) bool {
	return !end.After(maxDate)
}
