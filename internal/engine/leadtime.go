package engine

import (
	"time"

	"github.com/m04kA/SMC-AvailabilityService/pkg/types"
)

// DefaultMinDate минимальная дата = календарный день момента now + advanceBookingHours
func DefaultMinDate(now time.Time, advanceBookingHours int) types.Date {
	return types.DateOf(now.Add(time.Duration(advanceBookingHours) * time.Hour))
}

// LeadTimeAllows отклоняет запрос, если минимальная дата позже даты начала
func LeadTimeAllows(minDate, start types.Date) bool {
	return !minDate.After(start)
}
