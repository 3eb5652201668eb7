package engine

import (
	"time"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	"github.com/m04kA/SMC-AvailabilityService/pkg/types"
)

// MatchRecurringWeekdays для каждого настроенного дня недели возвращает true,
// если этот день недели встречается где-либо в диапазоне и флаг включен.
//
// Проверка выполняется по множеству дней недели всего диапазона, а не по каждому дню:
// диапазон Пн-Вт проходит при включенном только понедельнике.
func MatchRecurringWeekdays(days []types.Date, weekdays map[time.Weekday]bool) map[time.Weekday]bool {
	present := make(map[time.Weekday]struct{}, 7)
	for _, d := range days {
		present[d.Weekday()] = struct{}{}
	}

	result := make(map[time.Weekday]bool, len(weekdays))
	for weekday, enabled := range weekdays {
		_, inRange := present[weekday]
		result[weekday] = inRange && enabled
	}
	return result
}

// RecurrenceAllows проверяет, допускает ли конфигурация диапазон по дням недели.
// Разовая дата для одного дня имеет приоритет над днями недели.
// Если ни один день недели не совпал, решает флаг AllowsSpecificBookingOutsideRecurrence
func RecurrenceAllows(cfg *domain.BookingConfig, start, end types.Date) bool {
	if start.Equal(end) && cfg.IsSpecificDate(start) {
		return true
	}

	for _, matched := range MatchRecurringWeekdays(EnumerateDays(start, end), cfg.RecurringWeekdays) {
		if matched {
			return true
		}
	}

	return cfg.AllowsSpecificBookingOutsideRecurrence
}
