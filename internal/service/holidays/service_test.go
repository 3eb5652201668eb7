package holidays

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	holidayRepo "github.com/m04kA/SMC-AvailabilityService/internal/infra/storage/holiday"
	"github.com/m04kA/SMC-AvailabilityService/pkg/logger"
	"github.com/m04kA/SMC-AvailabilityService/pkg/types"
)

type fakeRepo struct {
	days map[types.Date]string
	err  error
}

func (f *fakeRepo) ListDates(context.Context) ([]types.Date, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []types.Date
	for d := range f.days {
		out = append(out, d)
	}
	return out, nil
}

func (f *fakeRepo) Add(_ context.Context, day types.Date, name string) error {
	if f.err != nil {
		return f.err
	}
	f.days[day] = name
	return nil
}

func (f *fakeRepo) Remove(_ context.Context, day types.Date) error {
	if _, ok := f.days[day]; !ok {
		return holidayRepo.ErrHolidayNotFound
	}
	delete(f.days, day)
	return nil
}

type fakeCache struct {
	invalidations int
	err           error
}

func (f *fakeCache) Invalidate(context.Context) error {
	f.invalidations++
	return f.err
}

func TestAddRemove(t *testing.T) {
	repo := &fakeRepo{days: map[types.Date]string{}}
	cache := &fakeCache{}
	svc := NewService(repo, cache, logger.NewNop())
	christmas := types.NewDate(2025, time.December, 25)

	require.NoError(t, svc.Add(context.Background(), christmas, "  Christmas "))
	assert.Equal(t, "Christmas", repo.days[christmas])
	assert.Equal(t, 1, cache.invalidations)

	dates, err := svc.List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []types.Date{christmas}, dates)

	require.NoError(t, svc.Remove(context.Background(), christmas))
	assert.Equal(t, 2, cache.invalidations)
	assert.ErrorIs(t, svc.Remove(context.Background(), christmas), ErrHolidayNotFound)
	assert.Equal(t, 2, cache.invalidations)
}

func TestAdd_Validation(t *testing.T) {
	svc := NewService(&fakeRepo{days: map[types.Date]string{}}, &fakeCache{}, logger.NewNop())

	assert.ErrorIs(t, svc.Add(context.Background(), types.Date{}, "x"), ErrInvalidInput)
	assert.ErrorIs(t, svc.Add(context.Background(), types.NewDate(2025, time.May, 1), strings.Repeat("a", 256)), ErrInvalidInput)
}

func TestAdd_CacheFailureIsNotFatal(t *testing.T) {
	cache := &fakeCache{err: errors.New("redis down")}
	svc := NewService(&fakeRepo{days: map[types.Date]string{}}, cache, logger.NewNop())

	assert.NoError(t, svc.Add(context.Background(), types.NewDate(2025, time.May, 1), "Labour day"))
	assert.Equal(t, 1, cache.invalidations)
}

func TestList_Error(t *testing.T) {
	svc := NewService(&fakeRepo{err: errors.New("down")}, &fakeCache{}, logger.NewNop())

	_, err := svc.List(context.Background())
	assert.ErrorIs(t, err, ErrInternal)
}
