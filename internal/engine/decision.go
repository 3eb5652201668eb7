package engine

import (
	"context"
	"fmt"
	"time"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	"github.com/m04kA/SMC-AvailabilityService/pkg/types"
)

// Evaluator принимает решение о доступности бронирования.
// Не хранит изменяемого состояния: каждый вызов зависит только от аргументов,
// поэтому один экземпляр безопасно использовать из нескольких горутин
type Evaluator struct {
	minDate        MinDateFunc
	loopCap        LoopCapFunc
	postFilter     PostDecisionFilter
	defaultLoopCap int
}

// Option настраивает Evaluator
type Option func(*Evaluator)

// WithMinDateFunc заменяет вычисление минимальной даты бронирования
func WithMinDateFunc(fn MinDateFunc) Option {
	return func(e *Evaluator) {
		if fn != nil {
			e.minDate = fn
		}
	}
}

// WithDefaultLoopCap задает лимит итераций поиска максимальной даты
func WithDefaultLoopCap(limit int) Option {
	return func(e *Evaluator) {
		if limit > 0 {
			e.defaultLoopCap = limit
		}
	}
}

// WithLoopCapOverride позволяет менять лимит итераций в зависимости от запроса
func WithLoopCapOverride(fn LoopCapFunc) Option {
	return func(e *Evaluator) {
		if fn != nil {
			e.loopCap = fn
		}
	}
}

// WithPostDecisionFilter задает фильтр итогового решения
func WithPostDecisionFilter(fn PostDecisionFilter) Option {
	return func(e *Evaluator) {
		if fn != nil {
			e.postFilter = fn
		}
	}
}

// NewEvaluator создает Evaluator со стратегиями по умолчанию
func NewEvaluator(opts ...Option) *Evaluator {
	e := &Evaluator{
		minDate:        DefaultMinDate,
		loopCap:        func(defaultCap int, _ domain.CandidateRequest) int { return defaultCap },
		postFilter:     func(result domain.AvailabilityResult, _ domain.CandidateRequest) domain.AvailabilityResult { return result },
		defaultLoopCap: domain.DefaultMaxDateLoopCap,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// MinDate возвращает минимальную дату бронирования для конфигурации
func (e *Evaluator) MinDate(cfg *domain.BookingConfig, now time.Time) types.Date {
	return e.minDate(now, cfg.AdvanceBookingHours)
}

// ComputeMaxDate вычисляет самую позднюю дату, которая может стать доступной.
// loopCap <= 0 означает лимит по умолчанию. Возвращает false, если дату вычислить нельзя
func (e *Evaluator) ComputeMaxDate(cfg *domain.BookingConfig, now time.Time, loopCap int) (types.Date, bool) {
	result, ok := e.SearchMaxDate(cfg, now, loopCap)
	if !ok {
		return types.Date{}, false
	}
	return result.MaxDate, true
}

// SearchMaxDate то же, что ComputeMaxDate, но с диагностикой поиска
func (e *Evaluator) SearchMaxDate(cfg *domain.BookingConfig, now time.Time, loopCap int) (MaxDateResult, bool) {
	if loopCap <= 0 {
		loopCap = e.defaultLoopCap
	}

	query, ok := BuildMaxDateQuery(cfg, now, e.MinDate(cfg, now), loopCap)
	if !ok {
		return MaxDateResult{}, false
	}
	return SearchMaxDate(query), true
}

// Evaluate принимает решение о доступности запроса.
//
// Сначала проверяются общие условия (праздник для одного дня, ресурс, период
// предварительного бронирования, дни недели, ограничение по месяцам, горизонт),
// затем выполняется проверка дней, зависящая от типа бронирования.
// Ошибка возвращается только при сбое учета вместимости.
func (e *Evaluator) Evaluate(
	ctx context.Context,
	cfg *domain.BookingConfig,
	calendar *domain.HolidayCalendar,
	ledger LockoutLedger,
	req domain.CandidateRequest,
) (domain.AvailabilityResult, error) {
	start, end := req.StartDate, req.End()

	// 1. Праздник в единственный день запрещает бронирование безусловно
	if req.IsSingleDay() && IsHoliday(start, end, calendar) {
		return e.finish(domain.Unavailable(domain.ReasonHoliday), req), nil
	}

	// 2. Занятость ресурса
	conflict, err := ResourceConflict(ctx, cfg, ledger, req)
	if err != nil {
		return domain.AvailabilityResult{}, err
	}
	if conflict {
		return e.finish(domain.Unavailable(domain.ReasonResourceConflict), req), nil
	}

	// 3. Период предварительного бронирования (только для одного дня)
	if req.IsSingleDay() && !LeadTimeAllows(e.MinDate(cfg, req.Now), start) {
		return e.finish(domain.Unavailable(domain.ReasonLeadTime), req), nil
	}

	// 4. Дни недели или разрешение бронировать вне повторения
	if !RecurrenceAllows(cfg, start, end) {
		return e.finish(domain.Unavailable(domain.ReasonRecurrence), req), nil
	}

	// 5. Ограничение по месяцам
	if !MonthRangeAllows(cfg, start, end) {
		return e.finish(domain.Unavailable(domain.ReasonMonthRange), req), nil
	}

	// 6. Горизонт бронирования
	if HorizonApplies(cfg) {
		maxDate, ok := e.ComputeMaxDate(cfg, req.Now, e.loopCap(e.defaultLoopCap, req))
		if ok && !HorizonAllows(maxDate, end) {
			return e.finish(domain.Unavailable(domain.ReasonBeyondHorizon), req), nil
		}
	}

	// 7. Проверка дней по типу бронирования
	var result domain.AvailabilityResult
	switch cfg.BookingType {
	case domain.BookingTypeOnlyDay:
		result, err = scanOnlyDay(ctx, cfg, calendar, ledger, req)
	case domain.BookingTypeMultipleDays:
		result, err = scanMultipleDays(ctx, cfg, calendar, ledger, req)
	case domain.BookingTypeDateTime:
		result, err = scanDateTime(ctx, cfg, calendar, ledger, req)
	case domain.BookingTypeDurationTime:
		// Вместимость по длительности проверяет отдельный планировщик блоков
		result = domain.Available()
	default:
		result = domain.Unavailable(domain.ReasonUnknownBookingType)
	}
	if err != nil {
		return domain.AvailabilityResult{}, err
	}

	return e.finish(result, req), nil
}

func (e *Evaluator) finish(result domain.AvailabilityResult, req domain.CandidateRequest) domain.AvailabilityResult {
	return e.postFilter(result, req)
}

// scanOnlyDay: доступен первый день диапазона, у которого есть вместимость и который не праздник
func scanOnlyDay(
	ctx context.Context,
	cfg *domain.BookingConfig,
	calendar *domain.HolidayCalendar,
	ledger LockoutLedger,
	req domain.CandidateRequest,
) (domain.AvailabilityResult, error) {
	for _, day := range EnumerateDays(req.StartDate, req.End()) {
		availability, err := dayAvailability(ctx, ledger, cfg.ProductID, day, nil)
		if err != nil {
			return domain.AvailabilityResult{}, err
		}
		if availability.HasCapacity() && !IsHoliday(day, day, calendar) {
			return domain.Available(), nil
		}
	}
	return domain.Unavailable(domain.ReasonNoCapacity), nil
}

// scanMultipleDays: каждый день [start, effectiveEnd) должен иметь вместимость.
// В режиме фиксированных блоков конец диапазона сдвигается на длину наибольшего блока.
// Однодневный запрос проверяет хотя бы день начала: его же занимает резервирование
func scanMultipleDays(
	ctx context.Context,
	cfg *domain.BookingConfig,
	calendar *domain.HolidayCalendar,
	ledger LockoutLedger,
	req domain.CandidateRequest,
) (domain.AvailabilityResult, error) {
	start, end := req.StartDate, req.End()

	if IsHoliday(start, end, calendar) {
		return domain.Unavailable(domain.ReasonHoliday), nil
	}

	effectiveEnd := end
	if cfg.FixedBlockEnabled {
		effectiveEnd = end.AddDays(cfg.LargestFixedBlock())
	}
	if !effectiveEnd.After(start) {
		effectiveEnd = start.AddDays(1)
	}

	for day := start; day.Before(effectiveEnd); day = day.AddDays(1) {
		availability, err := dayAvailability(ctx, ledger, cfg.ProductID, day, nil)
		if err != nil {
			return domain.AvailabilityResult{}, err
		}
		if !availability.HasCapacity() {
			return domain.Unavailable(domain.ReasonNoCapacity), nil
		}
	}
	return domain.Available(), nil
}

// scanDateTime: как scanOnlyDay, но день должен иметь корректный список слотов
// (и содержать выбранный слот, если он указан)
func scanDateTime(
	ctx context.Context,
	cfg *domain.BookingConfig,
	calendar *domain.HolidayCalendar,
	ledger LockoutLedger,
	req domain.CandidateRequest,
) (domain.AvailabilityResult, error) {
	reason := domain.ReasonNoTimeSlots

	for _, day := range EnumerateDays(req.StartDate, req.End()) {
		if !usableTimeSlots(cfg.TimeSlots.ForDay(day), req.TimeSlot) {
			continue
		}

		availability, err := dayAvailability(ctx, ledger, cfg.ProductID, day, req.TimeSlot)
		if err != nil {
			return domain.AvailabilityResult{}, err
		}
		if availability.HasCapacity() && !IsHoliday(day, day, calendar) {
			return domain.Available(), nil
		}
		reason = domain.ReasonNoCapacity
	}
	return domain.Unavailable(reason), nil
}

// usableTimeSlots: список не пуст, все слоты корректны и содержат выбранный слот
func usableTimeSlots(slots []domain.TimeSlot, selected *types.TimeString) bool {
	if len(slots) == 0 {
		return false
	}

	found := selected == nil
	for _, slot := range slots {
		if err := slot.From.Validate(); err != nil {
			return false
		}
		if selected != nil && slot.From == *selected {
			found = true
		}
	}
	return found
}

func dayAvailability(
	ctx context.Context,
	ledger LockoutLedger,
	productID int64,
	day types.Date,
	timeSlot *types.TimeString,
) (domain.DayAvailability, error) {
	availability, err := ledger.GetDayAvailability(ctx, productID, day, timeSlot)
	if err != nil {
		return domain.DayAvailability{}, fmt.Errorf("%w: product=%d day=%s: %v", ErrLedger, productID, day, err)
	}
	return availability, nil
}
