package get_max_date

import "errors"

var (
	// ErrConfigNotFound возвращается, когда у товара нет конфигурации бронирования
	ErrConfigNotFound = errors.New("get_max_date: booking config not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("get_max_date: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("get_max_date: internal error")
)
