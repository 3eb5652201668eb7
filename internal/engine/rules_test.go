package engine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	"github.com/m04kA/SMC-AvailabilityService/pkg/types"
)

func TestMatchRecurringWeekdays_UsesDistinctWeekdaysOfWholeRange(t *testing.T) {
	weekdays := map[time.Weekday]bool{
		time.Monday:    true,
		time.Wednesday: true,
		time.Friday:    true,
		time.Tuesday:   false,
	}

	got := MatchRecurringWeekdays(EnumerateDays(june(2), june(3)), weekdays)

	assert.Equal(t, map[time.Weekday]bool{
		time.Monday:    true,
		time.Wednesday: false,
		time.Friday:    false,
		time.Tuesday:   false,
	}, got)
}

func TestRecurrenceAllows(t *testing.T) {
	monWedFri := map[time.Weekday]bool{time.Monday: true, time.Wednesday: true, time.Friday: true}

	tests := []struct {
		name  string
		cfg   domain.BookingConfig
		start types.Date
		end   types.Date
		want  bool
	}{
		{
			name:  "monday to tuesday passes because monday is in the range",
			cfg:   domain.BookingConfig{RecurringWeekdays: monWedFri},
			start: june(2),
			end:   june(3),
			want:  true,
		},
		{
			name:  "tuesday alone fails",
			cfg:   domain.BookingConfig{RecurringWeekdays: monWedFri},
			start: june(3),
			end:   june(3),
			want:  false,
		},
		{
			name:  "tuesday allowed by specific booking outside recurrence",
			cfg:   domain.BookingConfig{RecurringWeekdays: monWedFri, AllowsSpecificBookingOutsideRecurrence: true},
			start: june(3),
			end:   june(3),
			want:  true,
		},
		{
			name: "specific date overrides weekday for a single day",
			cfg: domain.BookingConfig{
				RecurringWeekdays: monWedFri,
				SpecificDates:     map[types.Date]bool{june(3): true},
			},
			start: june(3),
			end:   june(3),
			want:  true,
		},
		{
			name: "specific date does not cover a multi-day range",
			cfg: domain.BookingConfig{
				RecurringWeekdays: map[time.Weekday]bool{time.Sunday: true},
				SpecificDates:     map[types.Date]bool{june(3): true},
			},
			start: june(3),
			end:   june(4),
			want:  false,
		},
		{
			name:  "no weekdays configured",
			cfg:   domain.BookingConfig{},
			start: june(2),
			end:   june(8),
			want:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, RecurrenceAllows(&tt.cfg, tt.start, tt.end))
		})
	}
}

func TestIsHoliday(t *testing.T) {
	calendar := domain.NewHolidayCalendar(true, []types.Date{june(4)})

	tests := []struct {
		name     string
		calendar *domain.HolidayCalendar
		start    types.Date
		end      types.Date
		want     bool
	}{
		{name: "exact single day", calendar: calendar, start: june(4), end: june(4), want: true},
		{name: "start of range", calendar: calendar, start: june(4), end: june(6), want: true},
		{name: "end of range", calendar: calendar, start: june(2), end: june(4), want: true},
		{name: "inside range", calendar: calendar, start: june(3), end: june(5), want: true},
		{name: "outside range", calendar: calendar, start: june(5), end: june(8), want: false},
		{name: "global holidays switched off", calendar: domain.NewHolidayCalendar(false, []types.Date{june(4)}), start: june(4), end: june(4), want: false},
		{name: "no calendar", calendar: nil, start: june(4), end: june(4), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsHoliday(tt.start, tt.end, tt.calendar))
		})
	}
}

func TestMatchMonthRange_PerDayInclusive(t *testing.T) {
	monthRange := domain.DateRange{Start: june(3), End: june(4)}

	got := MatchMonthRange(EnumerateDays(june(2), june(5)), monthRange)

	assert.Equal(t, []bool{false, true, true, false}, got)
}

func TestMonthRangeAllows(t *testing.T) {
	cfg := &domain.BookingConfig{MonthRange: &domain.DateRange{Start: june(10), End: june(20)}}

	assert.True(t, MonthRangeAllows(cfg, june(8), june(10)), "one day inside is enough")
	assert.False(t, MonthRangeAllows(cfg, june(2), june(9)))
	assert.True(t, MonthRangeAllows(&domain.BookingConfig{}, june(2), june(9)), "no restriction configured")
}

func TestLeadTime(t *testing.T) {
	now := at(june(2), 10)

	minDate := DefaultMinDate(now, 24)
	assert.Equal(t, june(3), minDate)

	assert.False(t, LeadTimeAllows(minDate, types.DateOf(now.Add(time.Hour))))
	assert.True(t, LeadTimeAllows(minDate, types.DateOf(now.Add(25*time.Hour))))
	assert.True(t, LeadTimeAllows(DefaultMinDate(now, 0), june(2)))
}

func TestHorizonApplies(t *testing.T) {
	base := domain.BookingConfig{MaxBookableDays: intPtr(30), RecurringBookingEnabled: true}
	assert.True(t, HorizonApplies(&base))

	noLimit := base
	noLimit.MaxBookableDays = nil
	assert.False(t, HorizonApplies(&noLimit))

	notRecurring := base
	notRecurring.RecurringBookingEnabled = false
	assert.False(t, HorizonApplies(&notRecurring))

	withRanges := base
	withRanges.CustomDateRanges = []domain.DateRange{{Start: june(1), End: june(30)}}
	assert.False(t, HorizonApplies(&withRanges))

	withMonthRange := base
	withMonthRange.MonthRange = &domain.DateRange{Start: june(1), End: june(30)}
	assert.False(t, HorizonApplies(&withMonthRange))
}
