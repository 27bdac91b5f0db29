package closure

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/masterbarber/MB-BookingService/internal/domain"
)

func TestRepository_Upsert(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)

	date := time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC)
	now := time.Now()

	mock.ExpectQuery(`INSERT INTO closure_periods`).
		WithArgs(date, true, false, false).
		WillReturnRows(sqlmock.NewRows([]string{"created_at", "updated_at"}).AddRow(now, now))

	got, err := repo.Upsert(context.Background(), &domain.ClosurePeriod{
		Date:          date,
		MorningClosed: true,
	})

	require.NoError(t, err)
	assert.True(t, got.MorningClosed)
	assert.False(t, got.AfternoonClosed)
	assert.Equal(t, now, got.CreatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Upsert_SecondWriteWins(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)

	date := time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC)
	created := time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)
	updated := time.Date(2026, 9, 2, 10, 0, 0, 0, time.UTC)

	// Первая запись закрывает утро, вторая - весь день. Вторая должна
	// полностью заменить флаги (upsert по дате, не merge).
	mock.ExpectQuery(`INSERT INTO closure_periods`).
		WithArgs(date, true, false, false).
		WillReturnRows(sqlmock.NewRows([]string{"created_at", "updated_at"}).AddRow(created, created))
	mock.ExpectQuery(`INSERT INTO closure_periods`).
		WithArgs(date, true, true, true).
		WillReturnRows(sqlmock.NewRows([]string{"created_at", "updated_at"}).AddRow(created, updated))

	_, err = repo.Upsert(context.Background(), &domain.ClosurePeriod{Date: date, MorningClosed: true})
	require.NoError(t, err)

	full := &domain.ClosurePeriod{Date: date, FullDayClosed: true}
	full.Normalize()
	got, err := repo.Upsert(context.Background(), full)

	require.NoError(t, err)
	assert.True(t, got.FullDayClosed)
	assert.True(t, got.MorningClosed)
	assert.True(t, got.AfternoonClosed)
	assert.Equal(t, created, got.CreatedAt)
	assert.Equal(t, updated, got.UpdatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_GetByDate_NotFound(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)

	date := time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery(`SELECT .* FROM closure_periods`).
		WithArgs(date).
		WillReturnRows(sqlmock.NewRows([]string{
			"closure_date", "morning_closed", "afternoon_closed", "full_day_closed", "created_at", "updated_at",
		}))

	_, err = repo.GetByDate(context.Background(), date)

	assert.ErrorIs(t, err, ErrClosureNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_List(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)

	from := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	now := time.Now()

	mock.ExpectQuery(`SELECT .* FROM closure_periods`).
		WithArgs(from).
		WillReturnRows(sqlmock.NewRows([]string{
			"closure_date", "morning_closed", "afternoon_closed", "full_day_closed", "created_at", "updated_at",
		}).
			AddRow(time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC), true, false, false, now, now).
			AddRow(time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC), true, true, true, now, now))

	closures, err := repo.List(context.Background(), from)

	require.NoError(t, err)
	require.Len(t, closures, 2)
	assert.True(t, closures[0].IsPartial())
	assert.True(t, closures[1].FullDayClosed)
	assert.NoError(t, mock.ExpectationsWereMet())
}
