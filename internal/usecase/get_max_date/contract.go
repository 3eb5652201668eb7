package get_max_date

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

// MaxDateSearcher поиск максимальной даты бронирования
type MaxDateSearcher interface {
	MinDate(cfg *domain.BookingConfig, now time.Time) types.Date
	SearchMaxDate(cfg *domain.BookingConfig, now time.Time, loopCap int) (engine.MaxDateResult, bool)
}

// MetricsRecorder учет итераций поиска
type MetricsRecorder interface {
	ObserveMaxDateSearch(iterations int, exhausted bool)
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
