package add_holiday

import "github.com/m04kA/SMC-AvailabilityService/pkg/types"

// AddHolidayRequest HTTP request model
type AddHolidayRequest struct {
	Date types.Date `json:"date"` // "2025-12-25"
	Name string     `json:"name,omitempty"`
}
