package engine

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	"github.com/m04kA/SMC-AvailabilityService/pkg/types"
)

func onlyDayConfig() *domain.BookingConfig {
	return &domain.BookingConfig{
		ProductID:         1,
		BookingType:       domain.BookingTypeOnlyDay,
		RecurringWeekdays: allWeekdays(),
	}
}

func timeString(s string) *types.TimeString {
	ts := types.TimeString(s)
	return &ts
}

func TestEvaluate_OnlyDay(t *testing.T) {
	ctx := context.Background()
	now := at(june(1), 9)

	t.Run("first open day wins", func(t *testing.T) {
		ledger := newFakeLedger().withDay(june(2), 0)

		result, err := NewEvaluator().Evaluate(ctx, onlyDayConfig(), nil, ledger, request(june(2), june(4), now))
		require.NoError(t, err)
		assert.Equal(t, domain.Available(), result)
		assert.Equal(t, []types.Date{june(2), june(3)}, ledger.dayCalls)
	})

	t.Run("all days full", func(t *testing.T) {
		ledger := newFakeLedger().withDay(june(2), 0).withDay(june(3), 0)

		result, err := NewEvaluator().Evaluate(ctx, onlyDayConfig(), nil, ledger, request(june(2), june(3), now))
		require.NoError(t, err)
		assert.Equal(t, domain.Unavailable(domain.ReasonNoCapacity), result)
	})

	t.Run("open day is a holiday", func(t *testing.T) {
		ledger := newFakeLedger().withDay(june(2), 0)
		calendar := domain.NewHolidayCalendar(true, []types.Date{june(3)})

		result, err := NewEvaluator().Evaluate(ctx, onlyDayConfig(), calendar, ledger, request(june(2), june(3), now))
		require.NoError(t, err)
		assert.Equal(t, domain.Unavailable(domain.ReasonNoCapacity), result)
	})
}

func TestEvaluate_MultipleDays(t *testing.T) {
	ctx := context.Background()
	now := at(june(1), 9)

	config := func() *domain.BookingConfig {
		cfg := onlyDayConfig()
		cfg.BookingType = domain.BookingTypeMultipleDays
		return cfg
	}

	t.Run("every day must have capacity", func(t *testing.T) {
		ledger := newFakeLedger().withDay(june(3), 0)

		result, err := NewEvaluator().Evaluate(ctx, config(), nil, ledger, request(june(2), june(4), now))
		require.NoError(t, err)
		assert.Equal(t, domain.Unavailable(domain.ReasonNoCapacity), result)
	})

	t.Run("end date is not scanned", func(t *testing.T) {
		ledger := newFakeLedger().withDay(june(4), 0)

		result, err := NewEvaluator().Evaluate(ctx, config(), nil, ledger, request(june(2), june(4), now))
		require.NoError(t, err)
		assert.True(t, result.Available)
		assert.Equal(t, []types.Date{june(2), june(3)}, ledger.dayCalls)
	})

	t.Run("single day request checks the start day", func(t *testing.T) {
		ledger := newFakeLedger().withDay(june(2), 0)

		result, err := NewEvaluator().Evaluate(ctx, config(), nil, ledger, request(june(2), june(2), now))
		require.NoError(t, err)
		assert.Equal(t, domain.Unavailable(domain.ReasonNoCapacity), result)
		assert.Equal(t, []types.Date{june(2)}, ledger.dayCalls)

		ledger = newFakeLedger().withDay(june(2), 1)
		result, err = NewEvaluator().Evaluate(ctx, config(), nil, ledger, request(june(2), june(2), now))
		require.NoError(t, err)
		assert.True(t, result.Available)
		assert.Equal(t, config().LedgerDays(june(2), june(2)), ledger.dayCalls)
	})

	t.Run("holiday anywhere in range", func(t *testing.T) {
		calendar := domain.NewHolidayCalendar(true, []types.Date{june(3)})

		result, err := NewEvaluator().Evaluate(ctx, config(), calendar, newFakeLedger(), request(june(2), june(4), now))
		require.NoError(t, err)
		assert.Equal(t, domain.Unavailable(domain.ReasonHoliday), result)
	})

	t.Run("fixed block extends the scan", func(t *testing.T) {
		cfg := config()
		cfg.FixedBlockEnabled = true
		cfg.FixedBlockLengths = []int{2, 5}
		ledger := newFakeLedger().withDay(june(6), 0)

		result, err := NewEvaluator().Evaluate(ctx, cfg, nil, ledger, request(june(2), june(3), now))
		require.NoError(t, err)
		assert.Equal(t, domain.Unavailable(domain.ReasonNoCapacity), result)

		cfg.FixedBlockEnabled = false
		result, err = NewEvaluator().Evaluate(ctx, cfg, nil, newFakeLedger().withDay(june(6), 0), request(june(2), june(3), now))
		require.NoError(t, err)
		assert.True(t, result.Available)
	})

	t.Run("fixed block trailing days are checked but not held", func(t *testing.T) {
		cfg := config()
		cfg.FixedBlockEnabled = true
		cfg.FixedBlockLengths = []int{2}
		ledger := newFakeLedger()

		result, err := NewEvaluator().Evaluate(ctx, cfg, nil, ledger, request(june(2), june(3), now))
		require.NoError(t, err)
		assert.True(t, result.Available)
		assert.Equal(t, []types.Date{june(2), june(3), june(4)}, ledger.dayCalls)
		assert.Equal(t, []types.Date{june(2)}, cfg.LedgerDays(june(2), june(3)))
	})
}

func TestEvaluate_DateTime(t *testing.T) {
	ctx := context.Background()
	now := at(june(1), 9)

	config := func() *domain.BookingConfig {
		cfg := onlyDayConfig()
		cfg.BookingType = domain.BookingTypeDateTime
		cfg.TimeSlots = domain.TimeSlots{
			ByWeekday: map[time.Weekday][]domain.TimeSlot{
				time.Monday:  {{From: "09:00", To: "10:00"}, {From: "14:00", To: "15:00"}},
				time.Tuesday: {{From: "10:00", To: "11:00"}},
			},
		}
		return cfg
	}

	t.Run("selected slot on monday", func(t *testing.T) {
		ledger := newFakeLedger()
		req := request(june(2), june(2), now)
		req.TimeSlot = timeString("14:00")

		result, err := NewEvaluator().Evaluate(ctx, config(), nil, ledger, req)
		require.NoError(t, err)
		assert.True(t, result.Available)
		require.Len(t, ledger.slotCalls, 1)
		assert.Equal(t, types.TimeString("14:00"), *ledger.slotCalls[0])
	})

	t.Run("selected slot not offered", func(t *testing.T) {
		ledger := newFakeLedger()
		req := request(june(2), june(2), now)
		req.TimeSlot = timeString("11:00")

		result, err := NewEvaluator().Evaluate(ctx, config(), nil, ledger, req)
		require.NoError(t, err)
		assert.Equal(t, domain.Unavailable(domain.ReasonNoTimeSlots), result)
		assert.Empty(t, ledger.dayCalls)
	})

	t.Run("weekday without slots", func(t *testing.T) {
		result, err := NewEvaluator().Evaluate(ctx, config(), nil, newFakeLedger(), request(june(4), june(5), now))
		require.NoError(t, err)
		assert.Equal(t, domain.Unavailable(domain.ReasonNoTimeSlots), result)
	})

	t.Run("date with a broken slot list is skipped", func(t *testing.T) {
		cfg := config()
		cfg.TimeSlots.ByDate = map[types.Date][]domain.TimeSlot{
			june(2): {{From: "9am"}},
		}
		ledger := newFakeLedger()

		result, err := NewEvaluator().Evaluate(ctx, cfg, nil, ledger, request(june(2), june(3), now))
		require.NoError(t, err)
		assert.True(t, result.Available)
		assert.Equal(t, []types.Date{june(3)}, ledger.dayCalls)
	})

	t.Run("slot day without capacity", func(t *testing.T) {
		ledger := newFakeLedger().withDay(june(2), 0)

		result, err := NewEvaluator().Evaluate(ctx, config(), nil, ledger, request(june(2), june(2), now))
		require.NoError(t, err)
		assert.Equal(t, domain.Unavailable(domain.ReasonNoCapacity), result)
	})
}

func TestEvaluate_OtherBookingTypes(t *testing.T) {
	ctx := context.Background()
	now := at(june(1), 9)

	cfg := onlyDayConfig()
	cfg.BookingType = domain.BookingTypeDurationTime
	ledger := newFakeLedger().withDay(june(2), 0)

	result, err := NewEvaluator().Evaluate(ctx, cfg, nil, ledger, request(june(2), june(2), now))
	require.NoError(t, err)
	assert.True(t, result.Available)
	assert.Empty(t, ledger.dayCalls)

	cfg.BookingType = domain.BookingTypeUnknown
	result, err = NewEvaluator().Evaluate(ctx, cfg, nil, ledger, request(june(2), june(2), now))
	require.NoError(t, err)
	assert.Equal(t, domain.Unavailable(domain.ReasonUnknownBookingType), result)
}

func TestEvaluate_Gates(t *testing.T) {
	ctx := context.Background()
	now := at(june(1), 9)

	t.Run("single day holiday vetoes every booking type", func(t *testing.T) {
		cfg := onlyDayConfig()
		cfg.BookingType = domain.BookingTypeDurationTime
		cfg.ResourceEnabled = true
		cfg.ResourceIDs = []int64{1}
		ledger := newFakeLedger()

		result, err := NewEvaluator().Evaluate(ctx, cfg, domain.NewHolidayCalendar(true, []types.Date{june(2)}), ledger, request(june(2), june(2), now))
		require.NoError(t, err)
		assert.Equal(t, domain.Unavailable(domain.ReasonHoliday), result)
		assert.Empty(t, ledger.resourceCalls)
	})

	t.Run("single day holiday is reported before a resource conflict", func(t *testing.T) {
		cfg := onlyDayConfig()
		cfg.ResourceEnabled = true
		cfg.ResourceIDs = []int64{3}
		ledger := newFakeLedger().withResourceBooked(3, june(2))

		result, err := NewEvaluator().Evaluate(ctx, cfg, domain.NewHolidayCalendar(true, []types.Date{june(2)}), ledger, request(june(2), june(2), now))
		require.NoError(t, err)
		assert.Equal(t, domain.Unavailable(domain.ReasonHoliday), result)
		assert.Empty(t, ledger.resourceCalls)
	})

	t.Run("holidays ignored when switched off", func(t *testing.T) {
		cfg := onlyDayConfig()
		cfg.BookingType = domain.BookingTypeDurationTime

		result, err := NewEvaluator().Evaluate(ctx, cfg, domain.NewHolidayCalendar(false, []types.Date{june(2)}), newFakeLedger(), request(june(2), june(2), now))
		require.NoError(t, err)
		assert.True(t, result.Available)
	})

	t.Run("resource conflict", func(t *testing.T) {
		cfg := onlyDayConfig()
		cfg.ResourceEnabled = true
		cfg.ResourceIDs = []int64{3}

		result, err := NewEvaluator().Evaluate(ctx, cfg, nil, newFakeLedger().withResourceBooked(3, june(2)), request(june(2), june(2), now))
		require.NoError(t, err)
		assert.Equal(t, domain.Unavailable(domain.ReasonResourceConflict), result)
	})

	t.Run("lead time applies to single day only", func(t *testing.T) {
		cfg := onlyDayConfig()
		cfg.AdvanceBookingHours = 48
		now := at(june(2), 10)

		result, err := NewEvaluator().Evaluate(ctx, cfg, nil, newFakeLedger(), request(june(3), june(3), now))
		require.NoError(t, err)
		assert.Equal(t, domain.Unavailable(domain.ReasonLeadTime), result)

		result, err = NewEvaluator().Evaluate(ctx, cfg, nil, newFakeLedger(), request(june(3), june(4), now))
		require.NoError(t, err)
		assert.True(t, result.Available)
	})

	t.Run("custom min date strategy", func(t *testing.T) {
		cfg := onlyDayConfig()
		evaluator := NewEvaluator(WithMinDateFunc(func(time.Time, int) types.Date { return june(10) }))

		result, err := evaluator.Evaluate(ctx, cfg, nil, newFakeLedger(), request(june(9), june(9), now))
		require.NoError(t, err)
		assert.Equal(t, domain.Unavailable(domain.ReasonLeadTime), result)
	})

	t.Run("weekday not enabled", func(t *testing.T) {
		cfg := onlyDayConfig()
		cfg.RecurringWeekdays = mondaysOnly()

		result, err := NewEvaluator().Evaluate(ctx, cfg, nil, newFakeLedger(), request(june(3), june(3), now))
		require.NoError(t, err)
		assert.Equal(t, domain.Unavailable(domain.ReasonRecurrence), result)
	})

	t.Run("outside month range", func(t *testing.T) {
		cfg := onlyDayConfig()
		cfg.MonthRange = &domain.DateRange{Start: june(10), End: june(20)}

		result, err := NewEvaluator().Evaluate(ctx, cfg, nil, newFakeLedger(), request(june(2), june(5), now))
		require.NoError(t, err)
		assert.Equal(t, domain.Unavailable(domain.ReasonMonthRange), result)
	})
}

func TestEvaluate_Horizon(t *testing.T) {
	ctx := context.Background()
	now := at(june(2), 9)

	config := func() *domain.BookingConfig {
		cfg := onlyDayConfig()
		cfg.RecurringWeekdays = mondaysOnly()
		cfg.RecurringBookingEnabled = true
		cfg.MaxBookableDays = intPtr(1)
		return cfg
	}

	result, err := NewEvaluator().Evaluate(ctx, config(), nil, newFakeLedger(), request(june(9), june(9), now))
	require.NoError(t, err)
	assert.True(t, result.Available)

	result, err = NewEvaluator().Evaluate(ctx, config(), nil, newFakeLedger(), request(june(16), june(16), now))
	require.NoError(t, err)
	assert.Equal(t, domain.Unavailable(domain.ReasonBeyondHorizon), result)

	t.Run("end date is compared", func(t *testing.T) {
		result, err := NewEvaluator().Evaluate(ctx, config(), nil, newFakeLedger(), request(june(9), june(16), now))
		require.NoError(t, err)
		assert.Equal(t, domain.Unavailable(domain.ReasonBeyondHorizon), result)
	})

	t.Run("month range disables horizon", func(t *testing.T) {
		cfg := config()
		cfg.MonthRange = &domain.DateRange{Start: june(1), End: june(30)}

		result, err := NewEvaluator().Evaluate(ctx, cfg, nil, newFakeLedger(), request(june(16), june(16), now))
		require.NoError(t, err)
		assert.True(t, result.Available)
	})

	t.Run("loop cap override", func(t *testing.T) {
		var gotDefault int
		evaluator := NewEvaluator(WithLoopCapOverride(func(defaultCap int, _ domain.CandidateRequest) int {
			gotDefault = defaultCap
			return 1
		}))
		cfg := config()
		cfg.MaxBookableDays = intPtr(5)

		result, err := evaluator.Evaluate(ctx, cfg, nil, newFakeLedger(), request(june(9), june(9), now))
		require.NoError(t, err)
		assert.Equal(t, domain.Unavailable(domain.ReasonBeyondHorizon), result)
		assert.Equal(t, domain.DefaultMaxDateLoopCap, gotDefault)
	})
}

func TestEvaluate_PostDecisionFilter(t *testing.T) {
	ctx := context.Background()
	var seen []domain.Reason
	evaluator := NewEvaluator(WithPostDecisionFilter(func(result domain.AvailabilityResult, req domain.CandidateRequest) domain.AvailabilityResult {
		seen = append(seen, result.Reason)
		if req.ProductID == 1 {
			return domain.Unavailable(result.Reason)
		}
		return result
	}))

	result, err := evaluator.Evaluate(ctx, onlyDayConfig(), nil, newFakeLedger(), request(june(2), june(2), at(june(1), 9)))
	require.NoError(t, err)
	assert.False(t, result.Available)
	assert.Equal(t, domain.ReasonAvailable, result.Reason)

	cfg := onlyDayConfig()
	cfg.RecurringWeekdays = nil
	_, err = evaluator.Evaluate(ctx, cfg, nil, newFakeLedger(), request(june(2), june(2), at(june(1), 9)))
	require.NoError(t, err)
	assert.Equal(t, []domain.Reason{domain.ReasonAvailable, domain.ReasonRecurrence}, seen)
}

func TestEvaluate_LedgerFailure(t *testing.T) {
	ledger := newFakeLedger()
	ledger.err = errLedgerDown

	_, err := NewEvaluator().Evaluate(context.Background(), onlyDayConfig(), nil, ledger, request(june(2), june(2), at(june(1), 9)))
	assert.ErrorIs(t, err, ErrLedger)
}
