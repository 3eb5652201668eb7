package lockout

import "errors"

var (
	// ErrCapacityExceeded возвращается, когда на день не осталось вместимости для списания
	ErrCapacityExceeded = errors.New("lockout.repository: capacity exceeded")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("lockout.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("lockout.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("lockout.repository: failed to scan row")
)
