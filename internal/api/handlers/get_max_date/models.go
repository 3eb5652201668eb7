package get_max_date

import (
	getMaxDate "github.com/m04kA/SMC-AvailabilityService/internal/usecase/get_max_date"
	"github.com/m04kA/SMC-AvailabilityService/pkg/types"
)

// MaxDateResponse HTTP response model
type MaxDateResponse struct {
	ProductID  int64   `json:"productId"`
	MinDate    string  `json:"minDate"`
	MaxDate    *string `json:"maxDate"` // null = горизонт не ограничен
	Iterations int     `json:"iterations"`
	Exhausted  bool    `json:"exhausted"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getMaxDate.Response) *MaxDateResponse {
	out := &MaxDateResponse{
		ProductID:  resp.ProductID,
		MinDate:    resp.MinDate.Format(types.LayoutYMD),
		Iterations: resp.Iterations,
		Exhausted:  resp.Exhausted,
	}

	if resp.MaxDate != nil {
		maxDate := resp.MaxDate.Format(types.LayoutYMD)
		out.MaxDate = &maxDate
	}

	return out
}
