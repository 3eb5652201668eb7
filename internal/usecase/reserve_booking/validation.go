package reserve_booking

import (
	"fmt"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
)

// validateRequest валидирует входные данные запроса и подставляет значения по умолчанию
func validateRequest(req *Request) error {
	if req.ProductID <= 0 {
		return fmt.Errorf("%w: productID must be positive", ErrInvalidInput)
	}

	if req.StartDate.IsZero() {
		return fmt.Errorf("%w: startDate is required", ErrInvalidInput)
	}

	if req.EndDate.IsZero() {
		req.EndDate = req.StartDate
	}
	if req.EndDate.Before(req.StartDate) {
		return fmt.Errorf("%w: endDate %s is before startDate %s", ErrInvalidDateRange, req.EndDate, req.StartDate)
	}

	if req.StartDate.AddDays(domain.MaxRequestRangeDays-1).Before(req.EndDate) {
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

	if req.Quantity == 0 {
		req.Quantity = domain.DefaultReservationQty
	}
	if req.Quantity < 0 || req.Quantity > domain.MaxReservationQty {
		return fmt.Errorf("%w: quantity must be between 1 and %d", ErrInvalidInput, domain.MaxReservationQty)
	}

	return nil
}

// validateShape проверяет, что форма запроса подходит типу бронирования
func validateShape(cfg *domain.BookingConfig, req *Request) error {
	switch cfg.BookingType {
	case domain.BookingTypeOnlyDay, domain.BookingTypeDateTime:
		if !req.StartDate.Equal(req.EndDate) {
			return fmt.Errorf("%w: %s reservation must cover a single day", ErrInvalidDateRange, cfg.BookingType)
		}
	}

	if cfg.BookingType == domain.BookingTypeDateTime && req.TimeSlot == nil {
		return fmt.Errorf("%w: timeSlot is required for %s", ErrInvalidInput, cfg.BookingType)
	}

	return nil
}
