package closure

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/masterbarber/MB-BookingService/internal/domain"
	"github.com/masterbarber/MB-BookingService/pkg/dbmetrics"
	"github.com/masterbarber/MB-BookingService/pkg/psqlbuilder"
)

// DBExecutor переиспользуем интерфейс из dbmetrics
type DBExecutor = dbmetrics.DBExecutor

// Repository репозиторий для работы с закрытиями дней
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория закрытий
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Upsert создает или обновляет запись о закрытии на дату.
// Повторный вызов с теми же флагами идемпотентен: на дату существует
// не больше одной записи (closure_date - уникальный ключ).
func (r *Repository) Upsert(ctx context.Context, closure *domain.ClosurePeriod) (*domain.ClosurePeriod, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("closure_periods").
		Columns("closure_date", "morning_closed", "afternoon_closed", "full_day_closed").
		Values(closure.Date, closure.MorningClosed, closure.AfternoonClosed, closure.FullDayClosed).
		Suffix(`ON CONFLICT (closure_date) DO UPDATE SET
			morning_closed = EXCLUDED.morning_closed,
			afternoon_closed = EXCLUDED.afternoon_closed,
			full_day_closed = EXCLUDED.full_day_closed,
			updated_at = NOW()
		RETURNING created_at, updated_at`).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Upsert - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&createdAt, &updatedAt)
	if err != nil {
		return nil, fmt.Errorf("%w: Upsert - execute insert: %v", ErrExecQuery, err)
	}

	closure.CreatedAt = createdAt.Time
	closure.UpdatedAt = updatedAt.Time

	return closure, nil
}

// GetByDate получает запись о закрытии на конкретную дату
func (r *Repository) GetByDate(ctx context.Context, date time.Time) (*domain.ClosurePeriod, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := selectClosures().
		Where(squirrel.Eq{"closure_date": date}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByDate - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByDate - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	closures, err := r.scanClosures(rows)
	if err != nil {
		return nil, err
	}
	if len(closures) == 0 {
		return nil, ErrClosureNotFound
	}

	return closures[0], nil
}

// List получает все записи о закрытиях начиная с указанной даты
func (r *Repository) List(ctx context.Context, from time.Time) ([]*domain.ClosurePeriod, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := selectClosures().
		Where(squirrel.GtOrEq{"closure_date": from}).
		OrderBy("closure_date ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanClosures(rows)
}

func selectClosures() squirrel.SelectBuilder {
	return psqlbuilder.Select(
		"closure_date",
		"morning_closed",
		"afternoon_closed",
		"full_day_closed",
		"created_at",
		"updated_at",
	).From("closure_periods")
}

// scanClosures сканирует результаты запроса в слайс закрытий
func (r *Repository) scanClosures(rows *sql.Rows) ([]*domain.ClosurePeriod, error) {
	closures := make([]*domain.ClosurePeriod, 0)

	for rows.Next() {
		var closure domain.ClosurePeriod
		var createdAt, updatedAt sql.NullTime

		err := rows.Scan(
			&closure.Date,
			&closure.MorningClosed,
			&closure.AfternoonClosed,
			&closure.FullDayClosed,
			&createdAt,
			&updatedAt,
		)

		if err != nil {
			return nil, fmt.Errorf("%w: scanClosures - scan row: %v", ErrScanRow, err)
		}

		closure.CreatedAt = createdAt.Time
		closure.UpdatedAt = updatedAt.Time

		closures = append(closures, &closure)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanClosures - rows error: %v", ErrScanRow, err)
	}

	return closures, nil
}
