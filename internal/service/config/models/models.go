package models

import (
	"sort"
	"time"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	"github.com/m04kA/SMC-AvailabilityService/pkg/types"
)

// Request модели

// DateRangeRequest диапазон дат [start, end]
type DateRangeRequest struct {
	Start types.Date `json:"start"`
	End   types.Date `json:"end"`
}

// TimeSlotRequest временной слот "HH:MM"
type TimeSlotRequest struct {
	From string `json:"from" validate:"required,time_of_day"`
	To   string `json:"to,omitempty" validate:"omitempty,time_of_day"`
}

// TimeSlotsRequest слоты по дням недели (0 = воскресенье) и по конкретным датам
type TimeSlotsRequest struct {
	ByWeekday map[int][]TimeSlotRequest        `json:"byWeekday,omitempty" validate:"omitempty,dive,keys,min=0,max=6,endkeys,dive"`
	ByDate    map[types.Date][]TimeSlotRequest `json:"byDate,omitempty" validate:"omitempty,dive,dive"`
}

// UpsertConfigRequest запрос на создание или полную замену конфигурации бронирования
type UpsertConfigRequest struct {
	BookingType                            string             `json:"bookingType" validate:"required,oneof=only_day multiple_days date_time duration_time"`
	RecurringWeekdays                      []int              `json:"recurringWeekdays,omitempty" validate:"omitempty,max=7,unique,dive,min=0,max=6"`
	SpecificDates                          []types.Date       `json:"specificDates,omitempty"`
	CustomDateRanges                       []DateRangeRequest `json:"customDateRanges,omitempty" validate:"omitempty,dive"`
	MonthRange                             *DateRangeRequest  `json:"monthRange,omitempty"`
	AllowsSpecificBookingOutsideRecurrence bool               `json:"allowsSpecificBookingOutsideRecurrence"`
	AdvanceBookingHours                    int                `json:"advanceBookingHours" validate:"min=0,max=8760"`
	MaxBookableDays                        *int               `json:"maxBookableDays,omitempty" validate:"omitempty,min=0,max=3650"`
	RecurringBookingEnabled                bool               `json:"recurringBookingEnabled"`
	FixedBlockEnabled                      bool               `json:"fixedBlockEnabled"`
	FixedBlockLengths                      []int              `json:"fixedBlockLengths,omitempty" validate:"omitempty,dive,min=1,max=365"`
	ResourceEnabled                        bool               `json:"resourceEnabled"`
	ResourceSelectionMode                  string             `json:"resourceSelectionMode,omitempty" validate:"omitempty,oneof=single multiple automatic"`
	ResourceIDs                            []int64            `json:"resourceIds,omitempty" validate:"omitempty,max=100,unique,dive,gt=0"`
	TimeSlots                              TimeSlotsRequest   `json:"timeSlots"`
}

// SetCapacityRequest запрос на установку вместимости товара на день
type SetCapacityRequest struct {
	Date     types.Date `json:"date"`
	TimeSlot *string    `json:"timeSlot,omitempty" validate:"omitempty,time_of_day"`
	Capacity *int       `json:"capacity" validate:"omitempty,min=0,max=100000"` // nil = без ограничения
}

// Response модели

// ConfigResponse ответ с данными конфигурации бронирования
type ConfigResponse struct {
	ProductID                              int64              `json:"productId"`
	BookingType                            string             `json:"bookingType"`
	RecurringWeekdays                      []int              `json:"recurringWeekdays"`
	SpecificDates                          []types.Date       `json:"specificDates"`
	CustomDateRanges                       []DateRangeRequest `json:"customDateRanges"`
	MonthRange                             *DateRangeRequest  `json:"monthRange,omitempty"`
	AllowsSpecificBookingOutsideRecurrence bool               `json:"allowsSpecificBookingOutsideRecurrence"`
	AdvanceBookingHours                    int                `json:"advanceBookingHours"`
	MaxBookableDays                        *int               `json:"maxBookableDays,omitempty"`
	RecurringBookingEnabled                bool               `json:"recurringBookingEnabled"`
	FixedBlockEnabled                      bool               `json:"fixedBlockEnabled"`
	FixedBlockLengths                      []int              `json:"fixedBlockLengths"`
	ResourceEnabled                        bool               `json:"resourceEnabled"`
	ResourceSelectionMode                  string             `json:"resourceSelectionMode"`
	ResourceIDs                            []int64            `json:"resourceIds"`
	TimeSlots                              TimeSlotsRequest   `json:"timeSlots"`
	UpdatedAt                              time.Time          `json:"updatedAt"`
}

// Методы конвертации

// ToDomainConfig конвертирует запрос в domain модель
func (r *UpsertConfigRequest) ToDomainConfig(productID int64) *domain.BookingConfig {
	cfg := &domain.BookingConfig{
		ProductID:                              productID,
		BookingType:                            domain.BookingType(r.BookingType),
		RecurringWeekdays:                      make(map[time.Weekday]bool, len(r.RecurringWeekdays)),
		SpecificDates:                          make(map[types.Date]bool, len(r.SpecificDates)),
		AllowsSpecificBookingOutsideRecurrence: r.AllowsSpecificBookingOutsideRecurrence,
		AdvanceBookingHours:                    r.AdvanceBookingHours,
		MaxBookableDays:                        r.MaxBookableDays,
		RecurringBookingEnabled:                r.RecurringBookingEnabled,
		FixedBlockEnabled:                      r.FixedBlockEnabled,
		FixedBlockLengths:                      r.FixedBlockLengths,
		ResourceEnabled:                        r.ResourceEnabled,
		ResourceSelectionMode:                  domain.ResourceSelectionMode(r.ResourceSelectionMode),
		ResourceIDs:                            r.ResourceIDs,
	}

	if cfg.ResourceSelectionMode == "" {
		cfg.ResourceSelectionMode = domain.DefaultSelectionMode
	}

	for _, wd := range r.RecurringWeekdays {
		cfg.RecurringWeekdays[time.Weekday(wd)] = true
	}
	for _, d := range r.SpecificDates {
		cfg.SpecificDates[d] = true
	}
	for _, rng := range r.CustomDateRanges {
		cfg.CustomDateRanges = append(cfg.CustomDateRanges, domain.DateRange{Start: rng.Start, End: rng.End})
	}
	if r.MonthRange != nil {
		cfg.MonthRange = &domain.DateRange{Start: r.MonthRange.Start, End: r.MonthRange.End}
	}

	if len(r.TimeSlots.ByWeekday) > 0 {
		cfg.TimeSlots.ByWeekday = make(map[time.Weekday][]domain.TimeSlot, len(r.TimeSlots.ByWeekday))
		for wd, slots := range r.TimeSlots.ByWeekday {
			cfg.TimeSlots.ByWeekday[time.Weekday(wd)] = toDomainSlots(slots)
		}
	}
	if len(r.TimeSlots.ByDate) > 0 {
		cfg.TimeSlots.ByDate = make(map[types.Date][]domain.TimeSlot, len(r.TimeSlots.ByDate))
		for d, slots := range r.TimeSlots.ByDate {
			cfg.TimeSlots.ByDate[d] = toDomainSlots(slots)
		}
	}

	return cfg
}

// FromDomainConfig конвертирует domain модель в DTO
func FromDomainConfig(c *domain.BookingConfig) *ConfigResponse {
	if c == nil {
		return nil
	}

	resp := &ConfigResponse{
		ProductID:                              c.ProductID,
		BookingType:                            string(c.BookingType),
		RecurringWeekdays:                      []int{},
		SpecificDates:                          []types.Date{},
		CustomDateRanges:                       []DateRangeRequest{},
		AllowsSpecificBookingOutsideRecurrence: c.AllowsSpecificBookingOutsideRecurrence,
		AdvanceBookingHours:                    c.AdvanceBookingHours,
		MaxBookableDays:                        c.MaxBookableDays,
		RecurringBookingEnabled:                c.RecurringBookingEnabled,
		FixedBlockEnabled:                      c.FixedBlockEnabled,
		FixedBlockLengths:                      append([]int{}, c.FixedBlockLengths...),
		ResourceEnabled:                        c.ResourceEnabled,
		ResourceSelectionMode:                  string(c.ResourceSelectionMode),
		ResourceIDs:                            append([]int64{}, c.ResourceIDs...),
		UpdatedAt:                              c.UpdatedAt,
	}

	for wd := time.Sunday; wd <= time.Saturday; wd++ {
		if c.RecurringWeekdays[wd] {
			resp.RecurringWeekdays = append(resp.RecurringWeekdays, int(wd))
		}
	}
	for d, ok := range c.SpecificDates {
		if ok {
			resp.SpecificDates = append(resp.SpecificDates, d)
		}
	}
	sort.Slice(resp.SpecificDates, func(i, j int) bool {
		return resp.SpecificDates[i].Before(resp.SpecificDates[j])
	})
	for _, rng := range c.CustomDateRanges {
		resp.CustomDateRanges = append(resp.CustomDateRanges, DateRangeRequest{Start: rng.Start, End: rng.End})
	}
	if c.MonthRange != nil {
		resp.MonthRange = &DateRangeRequest{Start: c.MonthRange.Start, End: c.MonthRange.End}
	}

	if len(c.TimeSlots.ByWeekday) > 0 {
		resp.TimeSlots.ByWeekday = make(map[int][]TimeSlotRequest, len(c.TimeSlots.ByWeekday))
		for wd, slots := range c.TimeSlots.ByWeekday {
			resp.TimeSlots.ByWeekday[int(wd)] = fromDomainSlots(slots)
		}
	}
	if len(c.TimeSlots.ByDate) > 0 {
		resp.TimeSlots.ByDate = make(map[types.Date][]TimeSlotRequest, len(c.TimeSlots.ByDate))
		for d, slots := range c.TimeSlots.ByDate {
			resp.TimeSlots.ByDate[d] = fromDomainSlots(slots)
		}
	}

	return resp
}

func toDomainSlots(slots []TimeSlotRequest) []domain.TimeSlot {
	out := make([]domain.TimeSlot, 0, len(slots))
	for _, s := range slots {
		out = append(out, domain.TimeSlot{From: types.TimeString(s.From), To: types.TimeString(s.To)})
	}
	return out
}

func fromDomainSlots(slots []domain.TimeSlot) []TimeSlotRequest {
	out := make([]TimeSlotRequest, 0, len(slots))
	for _, s := range slots {
		out = append(out, TimeSlotRequest{From: s.From.String(), To: s.To.String()})
	}
	return out
}
