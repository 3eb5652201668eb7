package reservations

import (
	"context"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	reservationRepo "github.com/m04kA/SMC-AvailabilityService/internal/infra/storage/reservation"
	"github.com/m04kA/SMC-AvailabilityService/pkg/types"
)

// ReservationRepository интерфейс репозитория резервирований
type ReservationRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Reservation, error)
	List(ctx context.Context, filter reservationRepo.Filter) ([]*domain.Reservation, error)
	Cancel(ctx context.Context, id string) error
}

// LockoutLedger возврат вместимости при отмене
type LockoutLedger interface {
	Release(ctx context.Context, productID int64, day types.Date, timeSlot *types.TimeString, quantity int) error
	SetResourceBooked(ctx context.Context, resourceID int64, day types.Date, booked bool) error
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
