package reserve_booking

import (
	"time"

	reserveBooking "github.com/m04kA/SMC-AvailabilityService/internal/usecase/reserve_booking"
	"github.com/m04kA/SMC-AvailabilityService/pkg/types"
)

// ReserveRequest HTTP request model
type ReserveRequest struct {
	StartDate  string  `json:"startDate"`         // "2025-06-03"
	EndDate    *string `json:"endDate,omitempty"` // по умолчанию = startDate
	TimeSlot   *string `json:"timeSlot,omitempty"`
	ResourceID *int64  `json:"resourceId,omitempty"`
	Quantity   int     `json:"quantity,omitempty"` // по умолчанию 1
}

// ReservationResponse HTTP response model
type ReservationResponse struct {
	ID         string  `json:"id"`
	ProductID  int64   `json:"productId"`
	StartDate  string  `json:"startDate"`
	EndDate    string  `json:"endDate"`
	TimeSlot   *string `json:"timeSlot,omitempty"`
	ResourceID *int64  `json:"resourceId,omitempty"`
	Quantity   int     `json:"quantity"`
	Status     string  `json:"status"`
	CreatedAt  string  `json:"createdAt"`
}

// UnavailableDetails причина отказа в резервировании
type UnavailableDetails struct {
	Reason string `json:"reason"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *ReserveRequest) ToUseCaseRequest(productID int64) (*reserveBooking.Request, error) {
	startDate, err := types.ParseDate(types.LayoutYMD, r.StartDate)
	if err != nil {
		return nil, err
	}

	req := &reserveBooking.Request{
		ProductID:  productID,
		StartDate:  startDate,
		ResourceID: r.ResourceID,
		Quantity:   r.Quantity,
	}

	if r.EndDate != nil {
		endDate, err := types.ParseDate(types.LayoutYMD, *r.EndDate)
		if err != nil {
			return nil, err
		}
		req.EndDate = endDate
	}

	if r.TimeSlot != nil {
		slot := types.TimeString(*r.TimeSlot)
		req.TimeSlot = &slot
	}

	return req, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *reserveBooking.Response) *ReservationResponse {
	out := &ReservationResponse{
		ID:         resp.ID,
		ProductID:  resp.ProductID,
		StartDate:  resp.StartDate.Format(types.LayoutYMD),
		EndDate:    resp.EndDate.Format(types.LayoutYMD),
		ResourceID: resp.ResourceID,
		Quantity:   resp.Quantity,
		Status:     string(resp.Status),
		CreatedAt:  resp.CreatedAt.Format(time.RFC3339),
	}

	if resp.TimeSlot != nil {
		slot := resp.TimeSlot.String()
		out.TimeSlot = &slot
	}

	return out
}
