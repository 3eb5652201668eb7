package holiday

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AvailabilityService/pkg/types"
)

func TestListDates(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery("SELECT day FROM global_holidays ORDER BY day ASC").
		WillReturnRows(sqlmock.NewRows([]string{"day"}).
			AddRow(time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC)).
			AddRow(time.Date(2025, time.May, 1, 0, 0, 0, 0, time.UTC)))

	dates, err := NewRepository(db).ListDates(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []types.Date{
		types.NewDate(2025, time.January, 1),
		types.NewDate(2025, time.May, 1),
	}, dates)
}

func TestListDates_QueryError(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery("global_holidays").WillReturnError(errors.New("connection reset"))

	_, err = NewRepository(db).ListDates(context.Background())
	assert.ErrorIs(t, err, ErrExecQuery)
}

func TestRemove_NotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec("DELETE FROM global_holidays").
		WithArgs(time.Date(2025, time.December, 25, 0, 0, 0, 0, time.UTC)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err = NewRepository(db).Remove(context.Background(), types.NewDate(2025, time.December, 25))
	assert.ErrorIs(t, err, ErrHolidayNotFound)
}
