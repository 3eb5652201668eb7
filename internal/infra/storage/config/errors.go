package config

import "errors"

var (
	// ErrConfigNotFound возвращается, когда конфигурация товара не найдена
	ErrConfigNotFound = errors.New("config.repository: config not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("config.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("config.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("config.repository: failed to scan row")

	// ErrEncodeColumn возвращается, когда поле конфигурации не удалось сериализовать в jsonb
	ErrEncodeColumn = errors.New("config.repository: failed to encode jsonb column")

	// ErrDecodeColumn возвращается, когда jsonb колонку не удалось разобрать
	ErrDecodeColumn = errors.New("config.repository: failed to decode jsonb column")
)
