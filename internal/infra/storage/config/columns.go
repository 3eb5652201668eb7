package config

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	"github.com/m04kA/SMC-AvailabilityService/pkg/types"
)

var configColumns = []string{
	"product_id",
	"booking_type",
	"recurring_weekdays",
	"specific_dates",
	"custom_date_ranges",
	"month_range",
	"allows_specific_outside_recurrence",
	"advance_booking_hours",
	"max_bookable_days",
	"recurring_booking_enabled",
	"fixed_block_enabled",
	"fixed_block_lengths",
	"resource_enabled",
	"resource_selection_mode",
	"resource_ids",
	"time_slots",
	"updated_at",
}

// jsonColumns значения jsonb колонок конфигурации
type jsonColumns struct {
	weekdays      []byte
	specificDates []byte
	ranges        []byte
	monthRange    []byte
	blockLengths  []byte
	resourceIDs   []byte
	timeSlots     []byte
}

func encodeColumns(cfg *domain.BookingConfig) (jsonColumns, error) {
	var (
		cols jsonColumns
		err  error
	)

	encode := func(name string, v interface{}) []byte {
		if err != nil {
			return nil
		}
		var b []byte
		b, err = json.Marshal(v)
		if err != nil {
			err = fmt.Errorf("%w: %s: %v", ErrEncodeColumn, name, err)
		}
		return b
	}

	cols.weekdays = encode("recurring_weekdays", nonNilWeekdays(cfg.RecurringWeekdays))
	cols.specificDates = encode("specific_dates", nonNilDates(cfg.SpecificDates))
	cols.ranges = encode("custom_date_ranges", nonNilSlice(cfg.CustomDateRanges))
	cols.monthRange = encode("month_range", cfg.MonthRange)
	cols.blockLengths = encode("fixed_block_lengths", nonNilSlice(cfg.FixedBlockLengths))
	cols.resourceIDs = encode("resource_ids", nonNilSlice(cfg.ResourceIDs))
	cols.timeSlots = encode("time_slots", cfg.TimeSlots)

	return cols, err
}

func scanConfig(row interface{ Scan(dest ...interface{}) error }) (*domain.BookingConfig, error) {
	var (
		cfg             domain.BookingConfig
		cols            jsonColumns
		maxBookableDays sql.NullInt64
		selectionMode   sql.NullString
		updatedAt       sql.NullTime
	)

	err := row.Scan(
		&cfg.ProductID,
		&cfg.BookingType,
		&cols.weekdays,
		&cols.specificDates,
		&cols.ranges,
		&cols.monthRange,
		&cfg.AllowsSpecificBookingOutsideRecurrence,
		&cfg.AdvanceBookingHours,
		&maxBookableDays,
		&cfg.RecurringBookingEnabled,
		&cfg.FixedBlockEnabled,
		&cols.blockLengths,
		&cfg.ResourceEnabled,
		&selectionMode,
		&cols.resourceIDs,
		&cols.timeSlots,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	if err := decodeColumns(&cfg, cols); err != nil {
		return nil, err
	}

	if maxBookableDays.Valid {
		days := int(maxBookableDays.Int64)
		cfg.MaxBookableDays = &days
	}
	cfg.ResourceSelectionMode = domain.DefaultSelectionMode
	if selectionMode.Valid && selectionMode.String != "" {
		cfg.ResourceSelectionMode = domain.ResourceSelectionMode(selectionMode.String)
	}
	cfg.UpdatedAt = updatedAt.Time

	return &cfg, nil
}

func decodeColumns(cfg *domain.BookingConfig, cols jsonColumns) error {
	decode := func(name string, data []byte, v interface{}) error {
		if len(data) == 0 || string(data) == "null" {
			return nil
		}
		if err := json.Unmarshal(data, v); err != nil {
			return fmt.Errorf("%w: %s: %v", ErrDecodeColumn, name, err)
		}
		return nil
	}

	steps := []struct {
		name string
		data []byte
		dest interface{}
	}{
		{"recurring_weekdays", cols.weekdays, &cfg.RecurringWeekdays},
		{"specific_dates", cols.specificDates, &cfg.SpecificDates},
		{"custom_date_ranges", cols.ranges, &cfg.CustomDateRanges},
		{"month_range", cols.monthRange, &cfg.MonthRange},
		{"fixed_block_lengths", cols.blockLengths, &cfg.FixedBlockLengths},
		{"resource_ids", cols.resourceIDs, &cfg.ResourceIDs},
		{"time_slots", cols.timeSlots, &cfg.TimeSlots},
	}
	for _, step := range steps {
		if err := decode(step.name, step.data, step.dest); err != nil {
			return err
		}
	}
	return nil
}

func nonNilWeekdays(m map[time.Weekday]bool) map[time.Weekday]bool {
	if m == nil {
		return map[time.Weekday]bool{}
	}
	return m
}

func nonNilDates(m map[types.Date]bool) map[types.Date]bool {
	if m == nil {
		return map[types.Date]bool{}
	}
	return m
}

func nonNilSlice[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}

func nullableInt(v *int) sql.NullInt64 {
	if v == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: int64(*v), Valid: true}
}
