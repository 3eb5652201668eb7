package check_availability

import "errors"

var (
	// ErrConfigNotFound возвращается, когда у товара нет конфигурации бронирования
	ErrConfigNotFound = errors.New("check_availability: booking config not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("check_availability: invalid input data")

	// ErrInvalidDateRange возвращается, когда дата окончания раньше даты начала или диапазон слишком длинный
	ErrInvalidDateRange = errors.New("check_availability: invalid date range")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("check_availability: internal error")
)
