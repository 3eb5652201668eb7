package domain

import (
	"time"

	"github.com/m04kA/SMC-AvailabilityService/pkg/types"
)

// ReservationStatus статус резервирования
type ReservationStatus string

const (
	ReservationStatusConfirmed ReservationStatus = "confirmed"
	ReservationStatusCancelled ReservationStatus = "cancelled"
)

// Reservation резервирование, созданное после успешной проверки доступности
// Создается в той же транзакции, что и списание вместимости
type Reservation struct {
	ID         string // UUID
	ProductID  int64
	StartDate  types.Date
	EndDate    types.Date
	TimeSlot   *types.TimeString
	ResourceID *int64
	Quantity   int
	Status     ReservationStatus
	// LedgerDays дни, вместимость которых удерживает резервирование.
	// Фиксируются при создании, отмена освобождает ровно их
	LedgerDays []types.Date

	CancelledAt *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// IsActive возвращает true, если резервирование удерживает вместимость
func (r *Reservation) IsActive() bool {
	return r.Status == ReservationStatusConfirmed
}

// Days возвращает количество дней резервирования (включительно)
func (r *Reservation) Days() int {
	days := 1
	for d := r.StartDate; d.Before(r.EndDate); d = d.AddDays(1) {
		days++
	}
	return days
}

// Dates возвращает все дни резервирования
func (r *Reservation) Dates() []types.Date {
	dates := make([]types.Date, 0, r.Days())
	for d := r.StartDate; !d.After(r.EndDate); d = d.AddDays(1) {
		dates = append(dates, d)
	}
	return dates
}
