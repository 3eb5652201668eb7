package domain

import (
	"sort"

	"github.com/m04kA/SMC-AvailabilityService/pkg/types"
)

// HolidayLayout формат ключей глобального календаря праздников
const HolidayLayout = types.LayoutDMY

// HolidayCalendar глобальный календарь праздников
// Разделяется между запросами, только для чтения
type HolidayCalendar struct {
	// Enabled = настройка "учитывать глобальные праздники".
	// Если выключена, праздники не запрещают бронирование
	Enabled bool
	Layout  types.DateLayout

	tokens map[string]types.Date
}

// NewHolidayCalendar создает календарь из списка дат
func NewHolidayCalendar(enabled bool, dates []types.Date) *HolidayCalendar {
	cal := &HolidayCalendar{
		Enabled: enabled,
		Layout:  HolidayLayout,
		tokens:  make(map[string]types.Date, len(dates)),
	}
	for _, d := range dates {
		cal.tokens[d.Format(cal.Layout)] = d
	}
	return cal
}

// ContainsToken проверяет наличие даты в формате Layout
func (c *HolidayCalendar) ContainsToken(token string) bool {
	if c == nil {
		return false
	}
	_, ok := c.tokens[token]
	return ok
}

// Contains проверяет, является ли дата праздником
func (c *HolidayCalendar) Contains(d types.Date) bool {
	if c == nil {
		return false
	}
	return c.ContainsToken(d.Format(c.Layout))
}

// Dates возвращает отсортированный список праздников
func (c *HolidayCalendar) Dates() []types.Date {
	if c == nil {
		return nil
	}
	dates := make([]types.Date, 0, len(c.tokens))
	for _, d := range c.tokens {
		dates = append(dates, d)
	}
	sort.Slice(dates, func(i, j int) bool {
		return dates[i].Before(dates[j])
	})
	return dates
}
