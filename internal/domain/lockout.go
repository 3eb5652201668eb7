package domain

// DayAvailability остаток вместимости на день (или слот дня)
type DayAvailability struct {
	Unlimited bool
	Remaining int
}

// HasCapacity возвращает true, если на день можно забронировать хотя бы одно место
func (a DayAvailability) HasCapacity() bool {
	return a.Unlimited || a.Remaining > 0
}
