package reserve_booking

import (
	"context"
	"time"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	"github.com/m04kA/SMC-AvailabilityService/internal/engine"
	"github.com/m04kA/SMC-AvailabilityService/pkg/types"
)

// ConfigRepository интерфейс репозитория конфигураций бронирования
type ConfigRepository interface {
	GetByProductID(ctx context.Context, productID int64) (*domain.BookingConfig, error)
}

// ReservationRepository интерфейс репозитория резервирований
type ReservationRepository interface {
	Create(ctx context.Context, reservation *domain.Reservation) (*domain.Reservation, error)
}

// LockoutLedger учет вместимости: чтение для движка и списание
type LockoutLedger interface {
	engine.LockoutLedger
	Reserve(ctx context.Context, productID int64, day types.Date, timeSlot *types.TimeString, quantity int) error
	SetResourceBooked(ctx context.Context, resourceID int64, day types.Date, booked bool) error
}

// HolidayProvider источник глобального календаря праздников
type HolidayProvider interface {
	GetCalendar(ctx context.Context) (*domain.HolidayCalendar, error)
}

// Evaluator движок принятия решения о доступности
type Evaluator interface {
	Evaluate(
		ctx context.Context,
		cfg *domain.BookingConfig,
		calendar *domain.HolidayCalendar,
		ledger engine.LockoutLedger,
		req domain.CandidateRequest,
	) (domain.AvailabilityResult, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// MetricsRecorder учет решений и попыток резервирования
type MetricsRecorder interface {
	ObserveDecision(bookingType, reason string)
	ObserveReservation(outcome string)
}

// IDGenerator генератор идентификаторов резервирований
type IDGenerator func() string

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
