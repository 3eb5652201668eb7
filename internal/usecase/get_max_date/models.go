package get_max_date

import "github.com/m04kA/SMC-AvailabilityService/pkg/types"

// Request модель запроса максимальной даты
type Request struct {
	ProductID int64
	LoopCap   int // 0 = лимит по умолчанию
}

// Response модель ответа
type Response struct {
	ProductID int64
	MinDate   types.Date
	// MaxDate nil, если горизонт не ограничен или дату вычислить нельзя
	MaxDate    *types.Date
	Iterations int
	Exhausted  bool
}
