package reserve_booking

import (
	"errors"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
)

var (
	// ErrConfigNotFound возвращается, когда у товара нет конфигурации бронирования
	ErrConfigNotFound = errors.New("reserve_booking: booking config not found")

	// ErrNotAvailable возвращается, когда запрошенные даты недоступны
	ErrNotAvailable = errors.New("reserve_booking: requested dates are not available")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("reserve_booking: invalid input data")

	// ErrInvalidDateRange возвращается при некорректном диапазоне дат
	ErrInvalidDateRange = errors.New("reserve_booking: invalid date range")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("reserve_booking: internal error")
)

// UnavailableError отказ в резервировании с причиной решения
type UnavailableError struct {
	Reason domain.Reason
}

func (e *UnavailableError) Error() string {
	return ErrNotAvailable.Error() + ": " + string(e.Reason)
}

// Is позволяет сравнивать с ErrNotAvailable через errors.Is
func (e *UnavailableError) Is(target error) bool {
	return target == ErrNotAvailable
}
