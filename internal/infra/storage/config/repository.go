package config

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	"github.com/m04kA/SMC-AvailabilityService/pkg/dbmetrics"
	"github.com/m04kA/SMC-AvailabilityService/pkg/psqlbuilder"
)

const tableName = "booking_configs"

// Repository репозиторий конфигураций бронирования товаров
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория конфигураций
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByProductID получает конфигурацию бронирования товара
// Если в контексте есть транзакция, строка блокируется (FOR SHARE) до ее завершения
func (r *Repository) GetByProductID(ctx context.Context, productID int64) (*domain.BookingConfig, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(configColumns...).
		From(tableName).
		Where(squirrel.Eq{"product_id": productID})

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR SHARE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByProductID - build select query: %v", ErrBuildQuery, err)
	}

	cfg, err := scanConfig(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrConfigNotFound
	}
	if errors.Is(err, ErrDecodeColumn) {
		return nil, err
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByProductID - scan config: %v", ErrScanRow, err)
	}

	return cfg, nil
}

// Upsert создает или полностью заменяет конфигурацию товара
func (r *Repository) Upsert(ctx context.Context, cfg *domain.BookingConfig) (*domain.BookingConfig, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	cols, err := encodeColumns(cfg)
	if err != nil {
		return nil, err
	}

	// product_id и updated_at не перезаписываются из EXCLUDED
	updates := make([]string, 0, len(configColumns))
	for _, column := range configColumns {
		if column == "product_id" || column == "updated_at" {
			continue
		}
		updates = append(updates, fmt.Sprintf("%s = EXCLUDED.%s", column, column))
	}
	updates = append(updates, "updated_at = NOW()")

	query, args, err := psqlbuilder.Insert(tableName).
		Columns(configColumns[:len(configColumns)-1]...).
		Values(
			cfg.ProductID,
			cfg.BookingType,
			string(cols.weekdays),
			string(cols.specificDates),
			string(cols.ranges),
			string(cols.monthRange),
			cfg.AllowsSpecificBookingOutsideRecurrence,
			cfg.AdvanceBookingHours,
			nullableInt(cfg.MaxBookableDays),
			cfg.RecurringBookingEnabled,
			cfg.FixedBlockEnabled,
			string(cols.blockLengths),
			cfg.ResourceEnabled,
			cfg.ResourceSelectionMode,
			string(cols.resourceIDs),
			string(cols.timeSlots),
		).
		Suffix("ON CONFLICT (product_id) DO UPDATE SET " + strings.Join(updates, ", ") + " RETURNING updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Upsert - build insert query: %v", ErrBuildQuery, err)
	}

	var updatedAt sql.NullTime
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&updatedAt); err != nil {
		return nil, fmt.Errorf("%w: Upsert - execute insert: %v", ErrExecQuery, err)
	}

	saved := *cfg
	saved.UpdatedAt = updatedAt.Time
	return &saved, nil
}

// Delete удаляет конфигурацию товара
func (r *Repository) Delete(ctx context.Context, productID int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete(tableName).
		Where(squirrel.Eq{"product_id": productID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %v", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return ErrConfigNotFound
	}

	return nil
}
