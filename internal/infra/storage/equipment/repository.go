package equipment

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/m04kA/AgriRent-BookingService/internal/domain"
	"github.com/m04kA/AgriRent-BookingService/pkg/dbmetrics"
	"github.com/m04kA/AgriRent-BookingService/pkg/psqlbuilder"
)

type DBExecutor = dbmetrics.DBExecutor

const pgCheckViolation pq.ErrorCode = "23514"

var columns = []string{
	"id",
	"owner_id",
	"title",
	"category",
	"name",
	"brand",
	"condition",
	"description",
	"state",
	"district",
	"village_city",
	"price",
	"pricing_type",
	"transport_included",
	"transport_charge",
	"available_from",
	"available_till",
	"created_at",
	"updated_at",
}

// Repository репозиторий каталога техники
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория техники
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

// Create добавляет объявление
func (r *Repository) Create(ctx context.Context, e *domain.Equipment) (*domain.Equipment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("equipment").
		Columns(
			"owner_id",
			"title",
			"category",
			"name",
			"brand",
			"condition",
			"description",
			"state",
			"district",
			"village_city",
			"price",
			"pricing_type",
			"transport_included",
			"transport_charge",
			"available_from",
			"available_till",
		).
		Values(
			e.OwnerID,
			e.Title,
			e.Category,
			e.Name,
			e.Brand,
			e.Condition,
			e.Description,
			e.State,
			e.District,
			e.VillageCity,
			e.Price,
			e.PricingType,
			e.TransportIncluded,
			e.TransportCharge,
			e.AvailableFrom,
			e.AvailableTill,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&e.ID, &createdAt, &updatedAt)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == pgCheckViolation {
			return nil, fmt.Errorf("%w: Create - %s", ErrConstraintViolation, pqErr.Constraint)
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	e.CreatedAt = createdAt.Time
	e.UpdatedAt = updatedAt.Time

	return e, nil
}

// GetByID получает объявление по ID без блокировки
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Equipment, error) {
	return r.getByID(ctx, id, false, "GetByID")
}

// LockByID получает объявление и блокирует строку до конца транзакции (SELECT ... FOR UPDATE).
// Все изменения бронирований одной техники выстраиваются в очередь на этой блокировке.
// Вне транзакции блокировка не берется.
func (r *Repository) LockByID(ctx context.Context, id int64) (*domain.Equipment, error) {
	return r.getByID(ctx, id, dbmetrics.IsInTransaction(ctx), "LockByID")
}

func (r *Repository) getByID(ctx context.Context, id int64, forUpdate bool, op string) (*domain.Equipment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(columns...).
		From("equipment").
		Where(squirrel.Eq{"id": id})

	if forUpdate {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %s - build select query: %v", ErrBuildQuery, op, err)
	}

	e, err := scanEquipment(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrEquipmentNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s - scan equipment: %v", ErrScanRow, op, err)
	}

	return e, nil
}

// ListAvailable возвращает объявления, у которых available_till не задан или не раньше today
func (r *Repository) ListAvailable(ctx context.Context, today time.Time) ([]*domain.Equipment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(columns...).
		From("equipment").
		Where(squirrel.Or{
			squirrel.Eq{"available_till": nil},
			squirrel.GtOrEq{"available_till": today},
		}).
		OrderBy("created_at DESC", "id DESC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListAvailable - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListAvailable - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanEquipmentList(rows)
}

// GetByOwner возвращает все объявления владельца
func (r *Repository) GetByOwner(ctx context.Context, ownerID int64) ([]*domain.Equipment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(columns...).
		From("equipment").
		Where(squirrel.Eq{"owner_id": ownerID}).
		OrderBy("created_at DESC", "id DESC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByOwner - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByOwner - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanEquipmentList(rows)
}

// Delete удаляет объявление
func (r *Repository) Delete(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("equipment").
		Where(squirrel.Eq{"id": id}).
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
		return ErrEquipmentNotFound
	}

	return nil
}

func scanEquipment(row rowScanner) (*domain.Equipment, error) {
	var e domain.Equipment
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&e.ID,
		&e.OwnerID,
		&e.Title,
		&e.Category,
		&e.Name,
		&e.Brand,
		&e.Condition,
		&e.Description,
		&e.State,
		&e.District,
		&e.VillageCity,
		&e.Price,
		&e.PricingType,
		&e.TransportIncluded,
		&e.TransportCharge,
		&e.AvailableFrom,
		&e.AvailableTill,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	e.AvailableFrom = domain.DateOf(e.AvailableFrom)
	if e.AvailableTill != nil {
		till := domain.DateOf(*e.AvailableTill)
		e.AvailableTill = &till
	}
	e.CreatedAt = createdAt.Time
	e.UpdatedAt = updatedAt.Time

	return &e, nil
}

func scanEquipmentList(rows *sql.Rows) ([]*domain.Equipment, error) {
	list := make([]*domain.Equipment, 0)

	for rows.Next() {
		e, err := scanEquipment(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scanEquipmentList - scan row: %v", ErrScanRow, err)
		}
		list = append(list, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanEquipmentList - rows error: %v", ErrScanRow, err)
	}

	return list, nil
}
