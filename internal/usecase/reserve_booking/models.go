package reserve_booking

import (
	"time"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	"github.com/m04kA/SMC-AvailabilityService/pkg/types"
)

// Request модель запроса резервирования
type Request struct {
	ProductID  int64
	StartDate  types.Date
	EndDate    types.Date // Нулевое значение = StartDate
	TimeSlot   *types.TimeString
	ResourceID *int64
	Quantity   int // 0 = domain.DefaultReservationQty
}

// Response модель ответа резервирования
type Response struct {
	ID         string
	ProductID  int64
	StartDate  types.Date
	EndDate    types.Date
	TimeSlot   *types.TimeString
	ResourceID *int64
	Quantity   int
	Status     domain.ReservationStatus
	CreatedAt  time.Time
}

// FromDomain конвертирует резервирование в ответ
func FromDomain(r *domain.Reservation) *Response {
	return &Response{
		ID:         r.ID,
		ProductID:  r.ProductID,
		StartDate:  r.StartDate,
		EndDate:    r.EndDate,
		TimeSlot:   r.TimeSlot,
		ResourceID: r.ResourceID,
		Quantity:   r.Quantity,
		Status:     r.Status,
		CreatedAt:  r.CreatedAt,
	}
}
