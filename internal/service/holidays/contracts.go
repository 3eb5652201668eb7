package holidays

import (
	"context"

	"github.com/m04kA/SMC-AvailabilityService/pkg/types"
)

// HolidayRepository интерфейс репозитория глобальных праздников
type HolidayRepository interface {
	ListDates(ctx context.Context) ([]types.Date, error)
	Add(ctx context.Context, day types.Date, name string) error
	Remove(ctx context.Context, day types.Date) error
}

// CalendarCache кэш календаря праздников
type CalendarCache interface {
	Invalidate(ctx context.Context) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
