package engine

import (
	"sort"
	"time"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	"github.com/m04kA/SMC-AvailabilityService/pkg/types"
)

// MaxDateQuery входные данные поиска максимальной даты
type MaxDateQuery struct {
	Seed      types.Date // Дата, с которой начинается обход
	Remaining int        // Сколько совпадений еще можно засчитать
	LoopCap   int        // Максимальное количество итераций

	Recurring     bool
	Weekdays      map[time.Weekday]bool
	Ranges        []domain.DateRange // Пользовательские диапазоны (границы не включаются)
	SpecificDates []types.Date       // Будущие разовые даты, отсортированные по возрастанию
}

// MaxDateResult результат поиска максимальной даты
type MaxDateResult struct {
	MaxDate    types.Date
	Iterations int
	Hits       int
	// Exhausted = true, если лимит итераций закончился раньше бюджета совпадений
	Exhausted bool
}

// SearchMaxDate обходит дни начиная с Seed и возвращает последнюю совпавшую дату.
//
// Для повторяющегося бронирования совпадение = включенный день недели (и, если заданы
// пользовательские диапазоны, строгое попадание внутрь одного из них); бюджет уменьшается
// только на совпадениях. Для разовых дат бюджет уменьшается на каждой итерации.
// Поиск никогда не завершается ошибкой: если совпадений не было, возвращается Seed.
func SearchMaxDate(q MaxDateQuery) MaxDateResult {
	specific := make(map[types.Date]struct{}, len(q.SpecificDates))
	for _, d := range q.SpecificDates {
		specific[d] = struct{}{}
	}

	remaining := q.Remaining
	candidate := q.Seed
	result := MaxDateResult{MaxDate: q.Seed}

	for i := 0; i < q.LoopCap; i++ {
		result.Iterations++

		if q.Recurring && q.Weekdays[candidate.Weekday()] {
			if len(q.Ranges) == 0 || insideAnyRange(candidate, q.Ranges) {
				result.MaxDate = candidate
				result.Hits++
				remaining--
			}
		} else if !q.Recurring {
			if _, ok := specific[candidate]; ok {
				result.MaxDate = candidate
				result.Hits++
			}
			remaining--
		}

		candidate = candidate.AddDays(1)

		if remaining < 0 {
			return result
		}
	}

	result.Exhausted = true
	return result
}

// BuildMaxDateQuery формирует запрос поиска по конфигурации.
// Возвращает false, если максимальную дату вычислить нельзя:
// горизонт не задан или у неповторяющегося товара нет будущих разовых дат
func BuildMaxDateQuery(cfg *domain.BookingConfig, now time.Time, minDate types.Date, loopCap int) (MaxDateQuery, bool) {
	if cfg.MaxBookableDays == nil {
		return MaxDateQuery{}, false
	}

	q := MaxDateQuery{
		Remaining: *cfg.MaxBookableDays,
		LoopCap:   loopCap,
		Recurring: cfg.RecurringBookingEnabled,
		Weekdays:  cfg.RecurringWeekdays,
		Ranges:    cfg.CustomDateRanges,
	}

	if q.Recurring {
		q.Seed = minDate
		return q, true
	}

	q.SpecificDates = upcomingSpecificDates(cfg.SpecificDates, types.DateOf(now))
	if len(q.SpecificDates) == 0 {
		return MaxDateQuery{}, false
	}
	q.Seed = q.SpecificDates[0]
	return q, true
}

// upcomingSpecificDates отбрасывает прошедшие даты и сортирует оставшиеся
func upcomingSpecificDates(dates map[types.Date]bool, today types.Date) []types.Date {
	upcoming := make([]types.Date, 0, len(dates))
	for d, enabled := range dates {
		if enabled && !d.Before(today) {
			upcoming = append(upcoming, d)
		}
	}
	sort.Slice(upcoming, func(i, j int) bool {
		return upcoming[i].Before(upcoming[j])
	})
	return upcoming
}

func insideAnyRange(d types.Date, ranges []domain.DateRange) bool {
	for _, r := range ranges {
		if r.ContainsExclusive(d) {
			return true
		}
	}
	return false
}
