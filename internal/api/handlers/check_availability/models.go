package check_availability

import (
	checkAvailability "github.com/m04kA/SMC-AvailabilityService/internal/usecase/check_availability"
	"github.com/m04kA/SMC-AvailabilityService/pkg/types"
)

// CheckAvailabilityRequest HTTP request model
type CheckAvailabilityRequest struct {
	StartDate  string  `json:"startDate"`         // "2025-06-03"
	EndDate    *string `json:"endDate,omitempty"` // "2025-06-05", по умолчанию = startDate
	TimeSlot   *string `json:"timeSlot,omitempty"`
	ResourceID *int64  `json:"resourceId,omitempty"`
}

// AvailabilityResponse HTTP response model
type AvailabilityResponse struct {
	ProductID   int64  `json:"productId"`
	StartDate   string `json:"startDate"`
	EndDate     string `json:"endDate"`
	BookingType string `json:"bookingType"`
	Available   bool   `json:"available"`
	Reason      string `json:"reason"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CheckAvailabilityRequest) ToUseCaseRequest(productID int64) (*checkAvailability.Request, error) {
	startDate, err := types.ParseDate(types.LayoutYMD, r.StartDate)
	if err != nil {
		return nil, err
	}

	req := &checkAvailability.Request{
		ProductID:  productID,
		StartDate:  startDate,
		ResourceID: r.ResourceID,
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
func FromUseCaseResponse(resp *checkAvailability.Response) *AvailabilityResponse {
	return &AvailabilityResponse{
		ProductID:   resp.ProductID,
		StartDate:   resp.StartDate.Format(types.LayoutYMD),
		EndDate:     resp.EndDate.Format(types.LayoutYMD),
		BookingType: string(resp.BookingType),
		Available:   resp.Available,
		Reason:      string(resp.Reason),
	}
}
