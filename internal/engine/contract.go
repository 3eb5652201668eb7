package engine

import (
	"context"
	"time"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	"github.com/m04kA/SMC-AvailabilityService/pkg/types"
)

// LockoutLedger интерфейс учета вместимости (только чтение)
// Реализации могут обращаться к БД, поэтому методы принимают контекст
type LockoutLedger interface {
	// GetDayAvailability возвращает остаток вместимости на день (или слот дня, если timeSlot != nil)
	GetDayAvailability(ctx context.Context, productID int64, day types.Date, timeSlot *types.TimeString) (domain.DayAvailability, error)
	// GetResourceBooked возвращает true, если ресурс полностью занят в указанный день
	GetResourceBooked(ctx context.Context, resourceID int64, day types.Date) (bool, error)
}

// MinDateFunc вычисляет минимальную дату бронирования по периоду предварительного бронирования
type MinDateFunc func(now time.Time, advanceBookingHours int) types.Date

// LoopCapFunc позволяет переопределить лимит итераций поиска максимальной даты
type LoopCapFunc func(defaultCap int, req domain.CandidateRequest) int

// PostDecisionFilter позволяет скорректировать итоговое решение (например, для фильтрации списка товаров)
type PostDecisionFilter func(result domain.AvailabilityResult, req domain.CandidateRequest) domain.AvailabilityResult
