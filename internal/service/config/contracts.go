package config

import (
	"context"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	"github.com/m04kA/SMC-AvailabilityService/pkg/types"
)

// ConfigRepository интерфейс репозитория конфигураций бронирования
type ConfigRepository interface {
	GetByProductID(ctx context.Context, productID int64) (*domain.BookingConfig, error)
	Upsert(ctx context.Context, cfg *domain.BookingConfig) (*domain.BookingConfig, error)
	Delete(ctx context.Context, productID int64) error
}

// CapacityRepository задает вместимость товара на день
type CapacityRepository interface {
	SetCapacity(ctx context.Context, productID int64, day types.Date, timeSlot *types.TimeString, capacity *int) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
