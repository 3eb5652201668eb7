package check_availability

import (
	"context"
	"time"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	"github.com/m04kA/SMC-AvailabilityService/internal/engine"
)

// ConfigRepository интерфейс репозитория конфигураций бронирования
type ConfigRepository interface {
	GetByProductID(ctx context.Context, productID int64) (*domain.BookingConfig, error)
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

// MetricsRecorder учет решений о доступности
type MetricsRecorder interface {
	ObserveDecision(bookingType, reason string)
}

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
