package engine

import "errors"

var (
	// ErrLedger возвращается, когда учет вместимости не смог ответить на запрос
	ErrLedger = errors.New("engine: lockout ledger query failed")
)
