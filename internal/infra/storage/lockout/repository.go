package lockout

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	"github.com/m04kA/SMC-AvailabilityService/pkg/dbmetrics"
	"github.com/m04kA/SMC-AvailabilityService/pkg/psqlbuilder"
	"github.com/m04kA/SMC-AvailabilityService/pkg/types"
)

const (
	dayTable      = "day_lockouts"
	resourceTable = "resource_lockouts"
)

// daySlot значение колонки time_slot для вместимости всего дня
const daySlot = ""

// Repository учет вместимости товаров и занятости ресурсов по дням.
//
// Строка day_lockouts: capacity (NULL = без ограничения) и reserved.
// Отсутствие строки означает день без ограничения вместимости.
// Внутри транзакции чтения блокируют строки (FOR UPDATE), чтобы проверка и списание
// выполнялись над одним и тем же снимком
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория учета вместимости
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetDayAvailability возвращает остаток вместимости на день или слот дня
func (r *Repository) GetDayAvailability(ctx context.Context, productID int64, day types.Date, timeSlot *types.TimeString) (domain.DayAvailability, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select("capacity", "reserved").
		From(dayTable).
		Where(squirrel.Eq{
			"product_id": productID,
			"day":        day,
			"time_slot":  slotKey(timeSlot),
		})

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return domain.DayAvailability{}, fmt.Errorf("%w: GetDayAvailability - build select query: %v", ErrBuildQuery, err)
	}

	var (
		capacity sql.NullInt64
		reserved int
	)
	err = executor.QueryRowContext(ctx, query, args...).Scan(&capacity, &reserved)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.DayAvailability{Unlimited: true}, nil
	}
	if err != nil {
		return domain.DayAvailability{}, fmt.Errorf("%w: GetDayAvailability - scan lockout: %v", ErrScanRow, err)
	}

	if !capacity.Valid {
		return domain.DayAvailability{Unlimited: true}, nil
	}
	remaining := int(capacity.Int64) - reserved
	if remaining < 0 {
		remaining = 0
	}
	return domain.DayAvailability{Remaining: remaining}, nil
}

// GetResourceBooked возвращает true, если ресурс полностью занят в указанный день
func (r *Repository) GetResourceBooked(ctx context.Context, resourceID int64, day types.Date) (bool, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select("booked").
		From(resourceTable).
		Where(squirrel.Eq{"resource_id": resourceID, "day": day})

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return false, fmt.Errorf("%w: GetResourceBooked - build select query: %v", ErrBuildQuery, err)
	}

	var booked bool
	err = executor.QueryRowContext(ctx, query, args...).Scan(&booked)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("%w: GetResourceBooked - scan lockout: %v", ErrScanRow, err)
	}
	return booked, nil
}

// SetCapacity задает вместимость дня (nil = без ограничения). Уже списанное количество сохраняется
func (r *Repository) SetCapacity(ctx context.Context, productID int64, day types.Date, timeSlot *types.TimeString, capacity *int) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	var value sql.NullInt64
	if capacity != nil {
		value = sql.NullInt64{Int64: int64(*capacity), Valid: true}
	}

	query, args, err := psqlbuilder.Insert(dayTable).
		Columns("product_id", "day", "time_slot", "capacity", "reserved").
		Values(productID, day, slotKey(timeSlot), value, 0).
		Suffix("ON CONFLICT (product_id, day, time_slot) DO UPDATE SET capacity = EXCLUDED.capacity, updated_at = NOW()").
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: SetCapacity - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: SetCapacity - execute insert: %v", ErrExecQuery, err)
	}
	return nil
}

// Reserve списывает quantity единиц вместимости дня.
// Для дня без строки создается строка без ограничения вместимости.
// Возвращает ErrCapacityExceeded, если остатка не хватает
func (r *Repository) Reserve(ctx context.Context, productID int64, day types.Date, timeSlot *types.TimeString, quantity int) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert(dayTable).
		Columns("product_id", "day", "time_slot", "capacity", "reserved").
		Values(productID, day, slotKey(timeSlot), nil, quantity).
		Suffix(
			"ON CONFLICT (product_id, day, time_slot) DO UPDATE " +
				"SET reserved = " + dayTable + ".reserved + EXCLUDED.reserved, updated_at = NOW() " +
				"WHERE " + dayTable + ".capacity IS NULL OR " + dayTable + ".reserved + EXCLUDED.reserved <= " + dayTable + ".capacity",
		).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Reserve - build insert query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Reserve - execute insert: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Reserve - get rows affected: %v", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return fmt.Errorf("%w: product=%d day=%s", ErrCapacityExceeded, productID, day)
	}
	return nil
}

// Release возвращает quantity единиц вместимости дня (не ниже нуля)
func (r *Repository) Release(ctx context.Context, productID int64, day types.Date, timeSlot *types.TimeString, quantity int) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update(dayTable).
		Set("reserved", squirrel.Expr("GREATEST(reserved - ?, 0)", quantity)).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{
			"product_id": productID,
			"day":        day,
			"time_slot":  slotKey(timeSlot),
		}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Release - build update query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: Release - execute update: %v", ErrExecQuery, err)
	}
	return nil
}

// SetResourceBooked отмечает ресурс занятым или свободным в указанный день
func (r *Repository) SetResourceBooked(ctx context.Context, resourceID int64, day types.Date, booked bool) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert(resourceTable).
		Columns("resource_id", "day", "booked").
		Values(resourceID, day, booked).
		Suffix("ON CONFLICT (resource_id, day) DO UPDATE SET booked = EXCLUDED.booked, updated_at = NOW()").
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: SetResourceBooked - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: SetResourceBooked - execute insert: %v", ErrExecQuery, err)
	}
	return nil
}

func slotKey(timeSlot *types.TimeString) string {
	if timeSlot == nil {
		return daySlot
	}
	return string(*timeSlot)
}
