package engine

import (
	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	"github.com/m04kA/SMC-AvailabilityService/pkg/types"
)

// MatchMonthRange возвращает по одному значению на каждый день: попадает ли день в [Start, End]
func MatchMonthRange(days []types.Date, monthRange domain.DateRange) []bool {
	result := make([]bool, len(days))
	for i, d := range days {
		result[i] = monthRange.ContainsInclusive(d)
	}
	return result
}

// MonthRangeAllows возвращает true, если хотя бы один день диапазона попадает в ограничение.
// Без настроенного ограничения проверка не применяется
func MonthRangeAllows(cfg *domain.BookingConfig, start, end types.Date) bool {
	if !cfg.HasMonthRange() {
		return true
	}

	for _, inRange := range MatchMonthRange(EnumerateDays(start, end), *cfg.MonthRange) {
		if inRange {
			return true
		}
	}
	return false
}
