package reservation

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	"github.com/m04kA/SMC-AvailabilityService/pkg/dbmetrics"
	"github.com/m04kA/SMC-AvailabilityService/pkg/psqlbuilder"
	"github.com/m04kA/SMC-AvailabilityService/pkg/types"
)

const tableName = "reservations"

var reservationColumns = []string{
	"id",
	"product_id",
	"start_date",
	"end_date",
	"time_slot",
	"resource_id",
	"quantity",
	"status",
	"ledger_days",
	"cancelled_at",
	"created_at",
	"updated_at",
}

// Filter фильтр списка резервирований товара
type Filter struct {
	ProductID int64
	From      *types.Date // Резервирования, заканчивающиеся не раньше From
	To        *types.Date // Резервирования, начинающиеся не позже To
	Status    *domain.ReservationStatus
}

// Repository репозиторий резервирований
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория резервирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create сохраняет резервирование. ID генерируется вызывающей стороной
// Вызывается в транзакции вместе со списанием вместимости
func (r *Repository) Create(ctx context.Context, reservation *domain.Reservation) (*domain.Reservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	ledgerDays := reservation.LedgerDays
	if ledgerDays == nil {
		ledgerDays = []types.Date{}
	}
	ledgerDaysJSON, err := json.Marshal(ledgerDays)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - ledger_days: %v", ErrEncodeColumn, err)
	}

	query, args, err := psqlbuilder.Insert(tableName).
		Columns(
			"id",
			"product_id",
			"start_date",
			"end_date",
			"time_slot",
			"resource_id",
			"quantity",
			"status",
			"ledger_days",
		).
		Values(
			reservation.ID,
			reservation.ProductID,
			reservation.StartDate,
			reservation.EndDate,
			nullableSlot(reservation.TimeSlot),
			nullableInt64(reservation.ResourceID),
			reservation.Quantity,
			reservation.Status,
			ledgerDaysJSON,
		).
		Suffix("RETURNING created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&createdAt, &updatedAt)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	reservation.CreatedAt = createdAt.Time
	reservation.UpdatedAt = updatedAt.Time

	return reservation, nil
}

// GetByID получает резервирование по ID
// Внутри транзакции строка блокируется до ее завершения
func (r *Repository) GetByID(ctx context.Context, id string) (*domain.Reservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(reservationColumns...).
		From(tableName).
		Where(squirrel.Eq{"id": id})

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	reservation, err := scanReservation(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrReservationNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan reservation: %v", ErrScanRow, err)
	}

	return reservation, nil
}

// List получает резервирования товара с фильтрацией по периоду и статусу
func (r *Repository) List(ctx context.Context, filter Filter) ([]*domain.Reservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(reservationColumns...).
		From(tableName).
		Where(squirrel.Eq{"product_id": filter.ProductID}).
		OrderBy("start_date ASC, created_at ASC")

	if filter.From != nil {
		selectBuilder = selectBuilder.Where(squirrel.GtOrEq{"end_date": *filter.From})
	}
	if filter.To != nil {
		selectBuilder = selectBuilder.Where(squirrel.LtOrEq{"start_date": *filter.To})
	}
	if filter.Status != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"status": *filter.Status})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	reservations := make([]*domain.Reservation, 0)
	for rows.Next() {
		reservation, err := scanReservation(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: List - scan row: %v", ErrScanRow, err)
		}
		reservations = append(reservations, reservation)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %v", ErrScanRow, err)
	}

	return reservations, nil
}

// Cancel переводит резервирование в статус cancelled
func (r *Repository) Cancel(ctx context.Context, id string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update(tableName).
		Set("status", domain.ReservationStatusCancelled).
		Set("cancelled_at", squirrel.Expr("NOW()")).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Cancel - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Cancel - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Cancel - get rows affected: %v", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return ErrReservationNotFound
	}

	return nil
}

func scanReservation(row interface{ Scan(dest ...interface{}) error }) (*domain.Reservation, error) {
	var (
		reservation          domain.Reservation
		timeSlot             sql.NullString
		resourceID           sql.NullInt64
		ledgerDays           []byte
		cancelledAt          sql.NullTime
		createdAt, updatedAt sql.NullTime
	)

	err := row.Scan(
		&reservation.ID,
		&reservation.ProductID,
		&reservation.StartDate,
		&reservation.EndDate,
		&timeSlot,
		&resourceID,
		&reservation.Quantity,
		&reservation.Status,
		&ledgerDays,
		&cancelledAt,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	if len(ledgerDays) > 0 {
		if err := json.Unmarshal(ledgerDays, &reservation.LedgerDays); err != nil {
			return nil, fmt.Errorf("decode ledger_days: %w", err)
		}
	}
	if timeSlot.Valid {
		slot := types.TimeString(timeSlot.String)
		reservation.TimeSlot = &slot
	}
	if resourceID.Valid {
		id := resourceID.Int64
		reservation.ResourceID = &id
	}
	if cancelledAt.Valid {
		at := cancelledAt.Time
		reservation.CancelledAt = &at
	}
	reservation.CreatedAt = createdAt.Time
	reservation.UpdatedAt = updatedAt.Time

	return &reservation, nil
}

func nullableSlot(v *types.TimeString) sql.NullString {
	if v == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: string(*v), Valid: true}
}

func nullableInt64(v *int64) sql.NullInt64 {
	if v == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: *v, Valid: true}
}
