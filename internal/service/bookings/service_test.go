package bookings

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/masterbarber/MB-BookingService/internal/domain"
	bookingRepo "github.com/masterbarber/MB-BookingService/internal/infra/storage/booking"
	"github.com/masterbarber/MB-BookingService/internal/service/bookings/models"
)

type fakeBookingRepo struct {
	byID       map[int64]*domain.Booking
	lastFilter domain.DayBookingsFilter
	completed  []int64
}

func newFakeBookingRepo() *fakeBookingRepo {
	return &fakeBookingRepo{byID: make(map[int64]*domain.Booking)}
}

func (f *fakeBookingRepo) GetByID(_ context.Context, id int64) (*domain.Booking, error) {
	booking, ok := f.byID[id]
	if !ok {
		return nil, bookingRepo.ErrBookingNotFound
	}
	return booking, nil
}

func (f *fakeBookingRepo) GetWithFilter(_ context.Context, filter domain.DayBookingsFilter) ([]*domain.Booking, error) {
	f.lastFilter = filter
	var result []*domain.Booking
	for _, booking := range f.byID {
		result = append(result, booking)
	}
	return result, nil
}

func (f *fakeBookingRepo) Complete(_ context.Context, id int64) error {
	booking, ok := f.byID[id]
	if !ok || booking.Status != domain.StatusConfirmed {
		return bookingRepo.ErrBookingNotFound
	}
	booking.Status = domain.StatusCompleted
	f.completed = append(f.completed, id)
	return nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func TestGetByID(t *testing.T) {
	repo := newFakeBookingRepo()
	repo.byID[7] = &domain.Booking{
		ID:          7,
		Name:        "João Silva",
		BookingDate: time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC),
		StartTime:   "10:00",
		BookingType: domain.TypeScheduled,
		Status:      domain.StatusConfirmed,
	}
	svc := NewService(repo, nopLogger{})

	resp, err := svc.GetByID(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, int64(7), resp.ID)
	require.NotNil(t, resp.StartTime)
	assert.Equal(t, "10:00", *resp.StartTime)

	_, err = svc.GetByID(context.Background(), 999)
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestGetByID_WalkInHasNoStartTime(t *testing.T) {
	repo := newFakeBookingRepo()
	repo.byID[3] = &domain.Booking{
		ID:          3,
		Name:        "Carlos Souza",
		BookingDate: time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC),
		BookingType: domain.TypeWalkIn,
		Status:      domain.StatusConfirmed,
	}
	svc := NewService(repo, nopLogger{})

	resp, err := svc.GetByID(context.Background(), 3)
	require.NoError(t, err)
	assert.Nil(t, resp.StartTime)
}

func TestGetDayBookings_StatusFilter(t *testing.T) {
	repo := newFakeBookingRepo()
	svc := NewService(repo, nopLogger{})
	date := time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC)

	status := "confirmed"
	_, err := svc.GetDayBookings(context.Background(), &models.GetDayBookingsRequest{
		Date:   date,
		Status: &status,
	})
	require.NoError(t, err)

	require.NotNil(t, repo.lastFilter.Status)
	assert.Equal(t, domain.StatusConfirmed, *repo.lastFilter.Status)
	require.NotNil(t, repo.lastFilter.StartDate)
	assert.Equal(t, date, *repo.lastFilter.StartDate)
	assert.Equal(t, date, *repo.lastFilter.EndDate)

	bad := "no_show"
	_, err = svc.GetDayBookings(context.Background(), &models.GetDayBookingsRequest{
		Date:   date,
		Status: &bad,
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestGetWeekBookings_Bounds(t *testing.T) {
	repo := newFakeBookingRepo()
	svc := NewService(repo, nopLogger{})

	// Вторник 15.09.2026
	_, err := svc.GetWeekBookings(context.Background(), &models.GetWeekBookingsRequest{
		Date: time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	require.NotNil(t, repo.lastFilter.StartDate)
	assert.Equal(t, time.Date(2026, 9, 14, 0, 0, 0, 0, time.UTC), *repo.lastFilter.StartDate)
	assert.Equal(t, time.Date(2026, 9, 20, 0, 0, 0, 0, time.UTC), *repo.lastFilter.EndDate)

	// Воскресенье относится к той же неделе, что и прошедший понедельник
	_, err = svc.GetWeekBookings(context.Background(), &models.GetWeekBookingsRequest{
		Date: time.Date(2026, 9, 20, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 9, 14, 0, 0, 0, 0, time.UTC), *repo.lastFilter.StartDate)
}

func TestComplete(t *testing.T) {
	repo := newFakeBookingRepo()
	repo.byID[5] = &domain.Booking{ID: 5, Status: domain.StatusConfirmed}
	svc := NewService(repo, nopLogger{})

	require.NoError(t, svc.Complete(context.Background(), 5))
	assert.Equal(t, []int64{5}, repo.completed)

	// Повторное завершение отклоняется
	err := svc.Complete(context.Background(), 5)
	assert.ErrorIs(t, err, ErrCannotComplete)

	err = svc.Complete(context.Background(), 999)
	assert.ErrorIs(t, err, ErrBookingNotFound)
}
