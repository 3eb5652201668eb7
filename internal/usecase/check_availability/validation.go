package check_availability

import (
	"fmt"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.ProductID <= 0 {
		return fmt.Errorf("%w: productID must be positive", ErrInvalidInput)
	}

	if req.StartDate.IsZero() {
		return fmt.Errorf("%w: startDate is required", ErrInvalidInput)
	}

	if !req.EndDate.IsZero() && req.EndDate.Before(req.StartDate) {
		return fmt.Errorf("%w: endDate %s is before startDate %s", ErrInvalidDateRange, req.EndDate, req.StartDate)
	}

	if !req.EndDate.IsZero() && req.StartDate.AddDays(domain.MaxRequestRangeDays-1).Before(req.EndDate) {
		return fmt.Errorf("%w: range exceeds %d days", ErrInvalidDateRange, domain.MaxRequestRangeDays)
	}

	if req.TimeSlot != nil {
		if err := req.TimeSlot.Validate(); err != nil {
			return fmt.Errorf("%w: invalid timeSlot: %v", ErrInvalidInput, err)
		}
	}

	if req.ResourceID != nil && *req.ResourceID <= 0 {
		return fmt.Errorf("%w: resourceID must be positive", ErrInvalidInput)
	}

	return nil
}
