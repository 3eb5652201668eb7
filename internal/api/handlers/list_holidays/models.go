package list_holidays

import "github.com/m04kA/SMC-AvailabilityService/pkg/types"

// HolidayListResponse список глобальных праздников
type HolidayListResponse struct {
	Holidays []types.Date `json:"holidays"`
}

// FromServiceResponse конвертирует список дат в HTTP response
func FromServiceResponse(dates []types.Date) *HolidayListResponse {
	resp := &HolidayListResponse{Holidays: make([]types.Date, 0, len(dates))}
	resp.Holidays = append(resp.Holidays, dates...)
	return resp
}
