package availability

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/masterbarber/MB-BookingService/internal/domain"
	closureRepo "github.com/masterbarber/MB-BookingService/internal/infra/storage/closure"
	"github.com/masterbarber/MB-BookingService/internal/service/availability/models"
)

// fakeClosureRepo хранит закрытия в памяти с ключом по дате
type fakeClosureRepo struct {
	byDate map[string]*domain.ClosurePeriod
}

func newFakeClosureRepo() *fakeClosureRepo {
	return &fakeClosureRepo{byDate: make(map[string]*domain.ClosurePeriod)}
}

func (f *fakeClosureRepo) Upsert(_ context.Context, closure *domain.ClosurePeriod) (*domain.ClosurePeriod, error) {
	key := closure.Date.Format(domain.DateFormat)
	if existing, ok := f.byDate[key]; ok {
		closure.CreatedAt = existing.CreatedAt
	} else {
		closure.CreatedAt = time.Now()
	}
	closure.UpdatedAt = time.Now()
	f.byDate[key] = closure
	return closure, nil
}

func (f *fakeClosureRepo) GetByDate(_ context.Context, date time.Time) (*domain.ClosurePeriod, error) {
	closure, ok := f.byDate[date.Format(domain.DateFormat)]
	if !ok {
		return nil, closureRepo.ErrClosureNotFound
	}
	return closure, nil
}

func (f *fakeClosureRepo) List(_ context.Context, from time.Time) ([]*domain.ClosurePeriod, error) {
	var result []*domain.ClosurePeriod
	for _, closure := range f.byDate {
		if !closure.Date.Before(from) {
			result = append(result, closure)
		}
	}
	return result, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func TestSetClosure_IdempotentUpsert(t *testing.T) {
	svc := NewService(newFakeClosureRepo(), nopLogger{})
	date := time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC)

	req := &models.SetClosureRequest{Date: date, MorningClosed: true}

	first, err := svc.SetClosure(context.Background(), req)
	require.NoError(t, err)

	// Повторная запись с теми же флагами дает тот же результат
	second, err := svc.SetClosure(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, first.MorningClosed, second.MorningClosed)
	assert.Equal(t, first.AfternoonClosed, second.AfternoonClosed)
	assert.Equal(t, first.FullDayClosed, second.FullDayClosed)

	// Запись с другими флагами полностью заменяет предыдущую
	replaced, err := svc.SetClosure(context.Background(), &models.SetClosureRequest{
		Date:            date,
		AfternoonClosed: true,
	})
	require.NoError(t, err)
	assert.False(t, replaced.MorningClosed)
	assert.True(t, replaced.AfternoonClosed)

	got, err := svc.GetClosure(context.Background(), date)
	require.NoError(t, err)
	assert.False(t, got.MorningClosed)
	assert.True(t, got.AfternoonClosed)
}

func TestSetClosure_FullDayImpliesBothHalves(t *testing.T) {
	svc := NewService(newFakeClosureRepo(), nopLogger{})
	date := time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC)

	resp, err := svc.SetClosure(context.Background(), &models.SetClosureRequest{
		Date:          date,
		FullDayClosed: true,
	})

	require.NoError(t, err)
	assert.True(t, resp.FullDayClosed)
	assert.True(t, resp.MorningClosed)
	assert.True(t, resp.AfternoonClosed)
}

func TestSetClosure_ZeroDateRejected(t *testing.T) {
	svc := NewService(newFakeClosureRepo(), nopLogger{})

	_, err := svc.SetClosure(context.Background(), &models.SetClosureRequest{MorningClosed: true})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestGetClosure_NotFound(t *testing.T) {
	svc := NewService(newFakeClosureRepo(), nopLogger{})

	_, err := svc.GetClosure(context.Background(), time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC))
	assert.ErrorIs(t, err, ErrClosureNotFound)
}
