package holiday

import "errors"

var (
	// ErrLoadHolidays возвращается, когда праздники не удалось загрузить из хранилища
	ErrLoadHolidays = errors.New("holiday.cache: failed to load holidays")

	// ErrInvalidCronSpec возвращается при некорректном расписании обновления
	ErrInvalidCronSpec = errors.New("holiday.cache: invalid refresh schedule")
)
