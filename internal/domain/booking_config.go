package domain

import (
	"time"

	"github.com/m04kA/SMC-AvailabilityService/pkg/types"
)

// BookingType тип бронирования товара, определяет алгоритм проверки дней
type BookingType string

const (
	BookingTypeUnknown      BookingType = ""
	BookingTypeOnlyDay      BookingType = "only_day"
	BookingTypeMultipleDays BookingType = "multiple_days"
	BookingTypeDateTime     BookingType = "date_time"
	BookingTypeDurationTime BookingType = "duration_time"
)

// ResourceSelectionMode режим выбора ресурса (комната, инструктор, оборудование)
type ResourceSelectionMode string

const (
	ResourceSelectionSingle    ResourceSelectionMode = "single"
	ResourceSelectionMultiple  ResourceSelectionMode = "multiple"
	ResourceSelectionAutomatic ResourceSelectionMode = "automatic"
)

// DateRange диапазон дат [Start, End]
type DateRange struct {
	Start types.Date `json:"start"`
	End   types.Date `json:"end"`
}

// ContainsInclusive проверяет Start <= d <= End
func (r DateRange) ContainsInclusive(d types.Date) bool {
	return !d.Before(r.Start) && !d.After(r.End)
}

// ContainsExclusive проверяет Start < d < End
func (r DateRange) ContainsExclusive(d types.Date) bool {
	return d.After(r.Start) && d.Before(r.End)
}

// TimeSlot временной слот для бронирования типа DateTime
type TimeSlot struct {
	From types.TimeString `json:"from"`
	To   types.TimeString `json:"to,omitempty"`
}

// TimeSlots слоты по дням недели и по конкретным датам
// Слоты конкретной даты имеют приоритет над слотами дня недели
type TimeSlots struct {
	ByWeekday map[time.Weekday][]TimeSlot `json:"byWeekday,omitempty"`
	ByDate    map[types.Date][]TimeSlot   `json:"byDate,omitempty"`
}

// ForDay возвращает слоты на указанный день
func (ts TimeSlots) ForDay(d types.Date) []TimeSlot {
	if slots, ok := ts.ByDate[d]; ok {
		return slots
	}
	return ts.ByWeekday[d.Weekday()]
}

// BookingConfig конфигурация бронирования товара
// Неизменяема в рамках одного вычисления доступности
type BookingConfig struct {
	ProductID   int64       `json:"productId"`
	BookingType BookingType `json:"bookingType"`

	// Повторяющиеся дни недели (Sunday=0 ... Saturday=6). По умолчанию пусто
	RecurringWeekdays map[time.Weekday]bool `json:"recurringWeekdays,omitempty"`
	// Разовые даты. Для одного дня имеют приоритет над днями недели
	SpecificDates map[types.Date]bool `json:"specificDates,omitempty"`
	// Пользовательские диапазоны дат для поиска максимальной даты
	CustomDateRanges []DateRange `json:"customDateRanges,omitempty"`
	// Ограничение по диапазону месяцев. nil = без ограничения
	MonthRange *DateRange `json:"monthRange,omitempty"`

	AllowsSpecificBookingOutsideRecurrence bool `json:"allowsSpecificBookingOutsideRecurrence"`

	// Минимальное время до бронирования в часах. По умолчанию 0
	AdvanceBookingHours int `json:"advanceBookingHours"`
	// Количество бронируемых дней вперед. nil = горизонт не ограничен
	MaxBookableDays         *int `json:"maxBookableDays,omitempty"`
	RecurringBookingEnabled bool `json:"recurringBookingEnabled"`

	FixedBlockEnabled bool  `json:"fixedBlockEnabled"`
	FixedBlockLengths []int `json:"fixedBlockLengths,omitempty"`

	ResourceEnabled       bool                  `json:"resourceEnabled"`
	ResourceSelectionMode ResourceSelectionMode `json:"resourceSelectionMode,omitempty"`
	ResourceIDs           []int64               `json:"resourceIds,omitempty"`

	TimeSlots TimeSlots `json:"timeSlots"`

	UpdatedAt time.Time `json:"updatedAt"`
}

// HasMonthRange возвращает true, если задано ограничение по месяцам
func (c *BookingConfig) HasMonthRange() bool {
	return c.MonthRange != nil
}

// HasCustomDateRanges возвращает true, если заданы пользовательские диапазоны
func (c *BookingConfig) HasCustomDateRanges() bool {
	return len(c.CustomDateRanges) > 0
}

// IsSpecificDate возвращает true, если дата задана как разовая
func (c *BookingConfig) IsSpecificDate(d types.Date) bool {
	return c.SpecificDates[d]
}

// LargestFixedBlock возвращает наибольшую длину фиксированного блока в днях
func (c *BookingConfig) LargestFixedBlock() int {
	largest := 0
	for _, length := range c.FixedBlockLengths {
		if length > largest {
			largest = length
		}
	}
	return largest
}

// FirstResourceID возвращает первый настроенный ресурс
func (c *BookingConfig) FirstResourceID() (int64, bool) {
	if len(c.ResourceIDs) == 0 {
		return 0, false
	}
	return c.ResourceIDs[0], true
}

// LedgerDays возвращает дни, вместимость которых расходует резервирование [start, end].
//
// MultipleDays: дни [start, end), как при проверке (день окончания не занимается),
// но не меньше одного дня. Дни хвоста фиксированного блока только проверяются и не занимаются.
// DurationTime: вместимость по дням не расходуется.
// Остальные типы: только день start
func (c *BookingConfig) LedgerDays(start, end types.Date) []types.Date {
	switch c.BookingType {
	case BookingTypeDurationTime:
		return nil
	case BookingTypeMultipleDays:
		days := []types.Date{start}
		for d := start.AddDays(1); d.Before(end); d = d.AddDays(1) {
			days = append(days, d)
		}
		return days
	default:
		return []types.Date{start}
	}
}

// ReservationResourceID возвращает ресурс, который занимает резервирование:
// явно выбранный или первый настроенный. false, если ресурсы выключены
func (c *BookingConfig) ReservationResourceID(selected *int64) (int64, bool) {
	if !c.ResourceEnabled {
		return 0, false
	}
	if selected != nil {
		return *selected, true
	}
	return c.FirstResourceID()
}
