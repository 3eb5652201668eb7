package engine

import (
	"context"
	"errors"
	"time"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	"github.com/m04kA/SMC-AvailabilityService/pkg/types"
)

var errLedgerDown = errors.New("ledger unavailable")

// fakeLedger учет вместимости в памяти. Дни без записи считаются безлимитными
type fakeLedger struct {
	days      map[types.Date]domain.DayAvailability
	resources map[int64]map[types.Date]bool
	err       error

	dayCalls      []types.Date
	slotCalls     []*types.TimeString
	resourceCalls []int64
}

func newFakeLedger() *fakeLedger {
	return &fakeLedger{
		days:      make(map[types.Date]domain.DayAvailability),
		resources: make(map[int64]map[types.Date]bool),
	}
}

func (f *fakeLedger) withDay(d types.Date, remaining int) *fakeLedger {
	f.days[d] = domain.DayAvailability{Remaining: remaining}
	return f
}

func (f *fakeLedger) withResourceBooked(resourceID int64, d types.Date) *fakeLedger {
	if f.resources[resourceID] == nil {
		f.resources[resourceID] = make(map[types.Date]bool)
	}
	f.resources[resourceID][d] = true
	return f
}

func (f *fakeLedger) GetDayAvailability(_ context.Context, _ int64, day types.Date, timeSlot *types.TimeString) (domain.DayAvailability, error) {
	f.dayCalls = append(f.dayCalls, day)
	f.slotCalls = append(f.slotCalls, timeSlot)
	if f.err != nil {
		return domain.DayAvailability{}, f.err
	}
	if availability, ok := f.days[day]; ok {
		return availability, nil
	}
	return domain.DayAvailability{Unlimited: true}, nil
}

func (f *fakeLedger) GetResourceBooked(_ context.Context, resourceID int64, day types.Date) (bool, error) {
	f.resourceCalls = append(f.resourceCalls, resourceID)
	if f.err != nil {
		return false, f.err
	}
	return f.resources[resourceID][day], nil
}

// june возвращает дату июня 2025 года. 2 июня 2025 - понедельник
func june(day int) types.Date {
	return types.NewDate(2025, time.June, day)
}

func at(d types.Date, hour int) time.Time {
	return d.Time().Add(time.Duration(hour) * time.Hour)
}

func allWeekdays() map[time.Weekday]bool {
	return map[time.Weekday]bool{
		time.Sunday: true, time.Monday: true, time.Tuesday: true, time.Wednesday: true,
		time.Thursday: true, time.Friday: true, time.Saturday: true,
	}
}

func intPtr(v int) *int { return &v }

func int64Ptr(v int64) *int64 { return &v }

func request(start, end types.Date, now time.Time) domain.CandidateRequest {
	return domain.CandidateRequest{ProductID: 1, StartDate: start, EndDate: end, Now: now}
}
