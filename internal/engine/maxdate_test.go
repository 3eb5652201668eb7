package engine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	"github.com/m04kA/SMC-AvailabilityService/pkg/types"
)

func mondaysOnly() map[time.Weekday]bool {
	return map[time.Weekday]bool{time.Monday: true}
}

func TestSearchMaxDate_Recurring(t *testing.T) {
	tests := []struct {
		name string
		q    MaxDateQuery
		want MaxDateResult
	}{
		{
			name: "budget counts only matching weekdays",
			q:    MaxDateQuery{Seed: june(2), Remaining: 2, LoopCap: 1000, Recurring: true, Weekdays: mondaysOnly()},
			want: MaxDateResult{MaxDate: june(16), Iterations: 15, Hits: 3},
		},
		{
			name: "custom range bounds are excluded",
			q: MaxDateQuery{
				Seed: june(2), Remaining: 0, LoopCap: 1000, Recurring: true, Weekdays: mondaysOnly(),
				Ranges: []domain.DateRange{{Start: june(9), End: june(23)}},
			},
			want: MaxDateResult{MaxDate: june(16), Iterations: 15, Hits: 1},
		},
		{
			name: "no weekdays exhausts the loop and keeps the seed",
			q:    MaxDateQuery{Seed: june(2), Remaining: 5, LoopCap: 1000, Recurring: true},
			want: MaxDateResult{MaxDate: june(2), Iterations: 1000, Exhausted: true},
		},
		{
			name: "small loop cap stops on the last hit",
			q:    MaxDateQuery{Seed: june(2), Remaining: 10, LoopCap: 10, Recurring: true, Weekdays: mondaysOnly()},
			want: MaxDateResult{MaxDate: june(9), Iterations: 10, Hits: 2, Exhausted: true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SearchMaxDate(tt.q))
		})
	}
}

func TestSearchMaxDate_SpecificDates(t *testing.T) {
	dates := []types.Date{june(5), june(10), june(30)}

	got := SearchMaxDate(MaxDateQuery{Seed: june(5), Remaining: 5, LoopCap: 1000, SpecificDates: dates})
	assert.Equal(t, MaxDateResult{MaxDate: june(10), Iterations: 6, Hits: 2}, got)

	got = SearchMaxDate(MaxDateQuery{Seed: june(5), Remaining: 3, LoopCap: 1000, SpecificDates: dates})
	assert.Equal(t, MaxDateResult{MaxDate: june(5), Iterations: 4, Hits: 1}, got)
}

func TestBuildMaxDateQuery(t *testing.T) {
	now := at(june(3), 12)

	t.Run("no horizon configured", func(t *testing.T) {
		_, ok := BuildMaxDateQuery(&domain.BookingConfig{RecurringBookingEnabled: true}, now, june(3), 1000)
		assert.False(t, ok)
	})

	t.Run("recurring seeds from min date", func(t *testing.T) {
		cfg := &domain.BookingConfig{MaxBookableDays: intPtr(7), RecurringBookingEnabled: true, RecurringWeekdays: mondaysOnly()}

		q, ok := BuildMaxDateQuery(cfg, now, june(5), 1000)
		require.True(t, ok)
		assert.Equal(t, june(5), q.Seed)
		assert.Equal(t, 7, q.Remaining)
		assert.True(t, q.Recurring)
	})

	t.Run("specific dates skip the past and disabled entries", func(t *testing.T) {
		cfg := &domain.BookingConfig{
			MaxBookableDays: intPtr(5),
			SpecificDates:   map[types.Date]bool{june(30): true, june(1): true, june(10): true, june(5): true, june(7): false},
		}

		q, ok := BuildMaxDateQuery(cfg, now, june(3), 1000)
		require.True(t, ok)
		assert.Equal(t, june(5), q.Seed)
		assert.Equal(t, []types.Date{june(5), june(10), june(30)}, q.SpecificDates)
	})

	t.Run("only past specific dates", func(t *testing.T) {
		cfg := &domain.BookingConfig{MaxBookableDays: intPtr(5), SpecificDates: map[types.Date]bool{june(1): true}}

		_, ok := BuildMaxDateQuery(cfg, now, june(3), 1000)
		assert.False(t, ok)
	})
}

func TestEvaluator_ComputeMaxDate(t *testing.T) {
	cfg := &domain.BookingConfig{
		MaxBookableDays:         intPtr(2),
		RecurringBookingEnabled: true,
		RecurringWeekdays:       mondaysOnly(),
	}

	maxDate, ok := NewEvaluator().ComputeMaxDate(cfg, at(june(2), 9), 0)
	require.True(t, ok)
	assert.Equal(t, june(16), maxDate)

	nonRecurring := &domain.BookingConfig{
		MaxBookableDays: intPtr(5),
		SpecificDates:   map[types.Date]bool{june(1): true, june(5): true, june(10): true, june(30): true},
	}
	maxDate, ok = NewEvaluator().ComputeMaxDate(nonRecurring, at(june(3), 9), 0)
	require.True(t, ok)
	assert.Equal(t, june(10), maxDate)

	_, ok = NewEvaluator().ComputeMaxDate(&domain.BookingConfig{RecurringBookingEnabled: true}, at(june(2), 9), 0)
	assert.False(t, ok)
}

func TestEvaluator_SearchMaxDate_DefaultLoopCap(t *testing.T) {
	cfg := &domain.BookingConfig{MaxBookableDays: intPtr(3), RecurringBookingEnabled: true}

	result, ok := NewEvaluator(WithDefaultLoopCap(10)).SearchMaxDate(cfg, at(june(2), 9), 0)
	require.True(t, ok)
	assert.Equal(t, 10, result.Iterations)
	assert.True(t, result.Exhausted)

	result, ok = NewEvaluator(WithDefaultLoopCap(10)).SearchMaxDate(cfg, at(june(2), 9), 25)
	require.True(t, ok)
	assert.Equal(t, 25, result.Iterations)
}

func TestEvaluator_SearchMaxDate_MinDateFromLeadTime(t *testing.T) {
	cfg := &domain.BookingConfig{
		MaxBookableDays:         intPtr(0),
		RecurringBookingEnabled: true,
		RecurringWeekdays:       allWeekdays(),
		AdvanceBookingHours:     48,
	}

	result, ok := NewEvaluator().SearchMaxDate(cfg, at(june(2), 9), 0)
	require.True(t, ok)
	assert.Equal(t, june(4), result.MaxDate)
}
