package config

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	configRepo "github.com/m04kA/SMC-AvailabilityService/internal/infra/storage/config"
	"github.com/m04kA/SMC-AvailabilityService/internal/service/config/models"
	"github.com/m04kA/SMC-AvailabilityService/pkg/logger"
	"github.com/m04kA/SMC-AvailabilityService/pkg/ptr"
	"github.com/m04kA/SMC-AvailabilityService/pkg/types"
)

type fakeConfigRepo struct {
	stored  map[int64]*domain.BookingConfig
	err     error
	deleted []int64
}

func newFakeConfigRepo() *fakeConfigRepo {
	return &fakeConfigRepo{stored: map[int64]*domain.BookingConfig{}}
}

func (f *fakeConfigRepo) GetByProductID(_ context.Context, productID int64) (*domain.BookingConfig, error) {
	if f.err != nil {
		return nil, f.err
	}
	cfg, ok := f.stored[productID]
	if !ok {
		return nil, configRepo.ErrConfigNotFound
	}
	return cfg, nil
}

func (f *fakeConfigRepo) Upsert(_ context.Context, cfg *domain.BookingConfig) (*domain.BookingConfig, error) {
	if f.err != nil {
		return nil, f.err
	}
	saved := *cfg
	saved.UpdatedAt = time.Date(2025, time.June, 1, 12, 0, 0, 0, time.UTC)
	f.stored[cfg.ProductID] = &saved
	return &saved, nil
}

func (f *fakeConfigRepo) Delete(_ context.Context, productID int64) error {
	if _, ok := f.stored[productID]; !ok {
		return configRepo.ErrConfigNotFound
	}
	delete(f.stored, productID)
	f.deleted = append(f.deleted, productID)
	return nil
}

type capacityCall struct {
	productID int64
	day       types.Date
	slot      *types.TimeString
	capacity  *int
}

type fakeCapacityRepo struct {
	calls []capacityCall
}

func (f *fakeCapacityRepo) SetCapacity(_ context.Context, productID int64, day types.Date, slot *types.TimeString, capacity *int) error {
	f.calls = append(f.calls, capacityCall{productID, day, slot, capacity})
	return nil
}

func newTestService(t *testing.T) (*Service, *fakeConfigRepo, *fakeCapacityRepo) {
	t.Helper()
	v, err := NewRequestValidator()
	require.NoError(t, err)

	repo := newFakeConfigRepo()
	capacity := &fakeCapacityRepo{}
	return NewService(repo, capacity, v, logger.NewNop()), repo, capacity
}

func june(d int) types.Date {
	return types.NewDate(2025, time.June, d)
}

func validRequest() *models.UpsertConfigRequest {
	return &models.UpsertConfigRequest{
		BookingType:       "date_time",
		RecurringWeekdays: []int{1, 3, 5},
		SpecificDates:     []types.Date{june(20), june(10)},
		MonthRange:        &models.DateRangeRequest{Start: june(1), End: types.NewDate(2025, time.August, 31)},
		MaxBookableDays:   ptr.Ptr(30),
		ResourceEnabled:   true,
		ResourceIDs:       []int64{4, 5},
		TimeSlots: models.TimeSlotsRequest{
			ByWeekday: map[int][]models.TimeSlotRequest{1: {{From: "10:00", To: "11:00"}}},
			ByDate:    map[types.Date][]models.TimeSlotRequest{june(20): {{From: "12:30"}}},
		},
	}
}

func TestUpsert(t *testing.T) {
	svc, repo, _ := newTestService(t)

	resp, err := svc.Upsert(context.Background(), 42, validRequest())
	require.NoError(t, err)

	assert.Equal(t, int64(42), resp.ProductID)
	assert.Equal(t, "date_time", resp.BookingType)
	assert.Equal(t, []int{1, 3, 5}, resp.RecurringWeekdays)
	assert.Equal(t, []types.Date{june(10), june(20)}, resp.SpecificDates)
	assert.Equal(t, "single", resp.ResourceSelectionMode)
	assert.Equal(t, []models.TimeSlotRequest{{From: "12:30"}}, resp.TimeSlots.ByDate[june(20)])

	stored := repo.stored[42]
	require.NotNil(t, stored)
	assert.Equal(t, domain.BookingTypeDateTime, stored.BookingType)
	assert.True(t, stored.RecurringWeekdays[time.Wednesday])
	assert.True(t, stored.SpecificDates[june(10)])
	assert.Equal(t, types.TimeString("10:00"), stored.TimeSlots.ByWeekday[time.Monday][0].From)
	assert.Equal(t, domain.ResourceSelectionSingle, stored.ResourceSelectionMode)
}

func TestUpsert_Validation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(r *models.UpsertConfigRequest)
		field  string
	}{
		{"unknown booking type", func(r *models.UpsertConfigRequest) { r.BookingType = "hourly" }, "bookingType"},
		{"weekday out of range", func(r *models.UpsertConfigRequest) { r.RecurringWeekdays = []int{7} }, "recurringWeekdays[0]"},
		{"duplicate weekdays", func(r *models.UpsertConfigRequest) { r.RecurringWeekdays = []int{1, 1} }, "recurringWeekdays"},
		{"negative lead time", func(r *models.UpsertConfigRequest) { r.AdvanceBookingHours = -1 }, "advanceBookingHours"},
		{"inverted month range", func(r *models.UpsertConfigRequest) {
			r.MonthRange = &models.DateRangeRequest{Start: june(10), End: june(1)}
		}, "end"},
		{"fixed blocks without lengths", func(r *models.UpsertConfigRequest) { r.FixedBlockEnabled = true }, "fixedBlockLengths"},
		{"resources without ids", func(r *models.UpsertConfigRequest) { r.ResourceIDs = nil }, "resourceIds"},
		{"bad slot time", func(r *models.UpsertConfigRequest) {
			r.TimeSlots.ByWeekday = map[int][]models.TimeSlotRequest{1: {{From: "24:30"}}}
		}, "from"},
		{"slot ends before it starts", func(r *models.UpsertConfigRequest) {
			r.TimeSlots.ByWeekday = map[int][]models.TimeSlotRequest{1: {{From: "12:00", To: "11:00"}}}
		}, "to"},
		{"date time without slots", func(r *models.UpsertConfigRequest) { r.TimeSlots = models.TimeSlotsRequest{} }, "timeSlots"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, repo, _ := newTestService(t)
			req := validRequest()
			tt.mutate(req)

			_, err := svc.Upsert(context.Background(), 42, req)
			require.ErrorIs(t, err, ErrInvalidInput)
			assert.Contains(t, err.Error(), tt.field)
			assert.Empty(t, repo.stored)
		})
	}
}

func TestGet(t *testing.T) {
	svc, repo, _ := newTestService(t)

	_, err := svc.Get(context.Background(), 1)
	assert.ErrorIs(t, err, ErrConfigNotFound)

	repo.stored[1] = &domain.BookingConfig{ProductID: 1, BookingType: domain.BookingTypeOnlyDay}
	resp, err := svc.Get(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "only_day", resp.BookingType)
	assert.NotNil(t, resp.RecurringWeekdays)

	repo.err = errors.New("connection refused")
	_, err = svc.Get(context.Background(), 1)
	assert.ErrorIs(t, err, ErrInternal)
}

func TestDelete(t *testing.T) {
	svc, repo, _ := newTestService(t)
	repo.stored[1] = &domain.BookingConfig{ProductID: 1}

	require.NoError(t, svc.Delete(context.Background(), 1))
	assert.Equal(t, []int64{1}, repo.deleted)
	assert.ErrorIs(t, svc.Delete(context.Background(), 1), ErrConfigNotFound)
}

func TestSetCapacity(t *testing.T) {
	svc, repo, capacity := newTestService(t)

	err := svc.SetCapacity(context.Background(), 1, &models.SetCapacityRequest{Date: june(3), Capacity: ptr.Ptr(5)})
	assert.ErrorIs(t, err, ErrConfigNotFound)

	repo.stored[1] = &domain.BookingConfig{ProductID: 1}

	err = svc.SetCapacity(context.Background(), 1, &models.SetCapacityRequest{Date: june(3), TimeSlot: ptr.Ptr("10:00"), Capacity: ptr.Ptr(5)})
	require.NoError(t, err)
	require.Len(t, capacity.calls, 1)
	assert.Equal(t, june(3), capacity.calls[0].day)
	assert.Equal(t, types.TimeString("10:00"), *capacity.calls[0].slot)
	assert.Equal(t, 5, *capacity.calls[0].capacity)

	err = svc.SetCapacity(context.Background(), 1, &models.SetCapacityRequest{Capacity: ptr.Ptr(5)})
	assert.ErrorIs(t, err, ErrInvalidInput)

	err = svc.SetCapacity(context.Background(), 1, &models.SetCapacityRequest{Date: june(3), Capacity: ptr.Ptr(-1)})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
