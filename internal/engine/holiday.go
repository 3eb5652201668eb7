package engine

import (
	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	"github.com/m04kA/SMC-AvailabilityService/pkg/types"
)

// IsHoliday проверяет пересечение диапазона с глобальным календарем праздников.
// Если учет глобальных праздников выключен, всегда возвращает false
func IsHoliday(start, end types.Date, calendar *domain.HolidayCalendar) bool {
	if calendar == nil || !calendar.Enabled {
		return false
	}

	startToken := start.Format(calendar.Layout)
	endToken := end.Format(calendar.Layout)

	if calendar.ContainsToken(startToken) || calendar.ContainsToken(endToken) {
		return true
	}
	if startToken == endToken {
		return false
	}

	for _, token := range EnumerateTokens(start, end, calendar.Layout) {
		if calendar.ContainsToken(token) {
			return true
		}
	}
	return false
}
