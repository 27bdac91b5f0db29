package get_available_slots

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/masterbarber/MB-BookingService/internal/domain"
	closureRepo "github.com/masterbarber/MB-BookingService/internal/infra/storage/closure"
	"github.com/masterbarber/MB-BookingService/pkg/types"
)

type fakeBookingRepo struct {
	bookings []*domain.Booking
	err      error
}

func (f *fakeBookingRepo) GetWithFilter(_ context.Context, _ domain.DayBookingsFilter) ([]*domain.Booking, error) {
	return f.bookings, f.err
}

type fakeClosureRepo struct {
	closure *domain.ClosurePeriod
	err     error
}

func (f *fakeClosureRepo) GetByDate(_ context.Context, _ time.Time) (*domain.ClosurePeriod, error) {
	if f.closure == nil && f.err == nil {
		return nil, closureRepo.ErrClosureNotFound
	}
	return f.closure, f.err
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

// nextBusinessDay возвращает ближайший будний день (не воскресенье) в будущем
func nextBusinessDay() time.Time {
	date := time.Now().AddDate(0, 0, 1)
	for date.Weekday() == time.Sunday {
		date = date.AddDate(0, 0, 1)
	}
	return time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)
}

func TestExecute_ReturnsGridSubset(t *testing.T) {
	uc := NewUseCase(&fakeBookingRepo{}, &fakeClosureRepo{}, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{
		Date:       nextBusinessDay(),
		ServiceIDs: []string{"corte", "barba"},
	})

	require.NoError(t, err)
	assert.Equal(t, 50, resp.DurationMinutes)
	assert.Equal(t, int64(6500), resp.TotalPriceCents)
	assert.NotEmpty(t, resp.Slots)
	for _, slot := range resp.Slots {
		assert.True(t, domain.IsGridSlot(slot))
	}
}

func TestExecute_ExcludesOccupiedSlots(t *testing.T) {
	date := nextBusinessDay()
	booked := &domain.Booking{
		BookingDate:     date,
		StartTime:       "10:00",
		BookingType:     domain.TypeScheduled,
		Status:          domain.StatusConfirmed,
		DurationMinutes: 50,
	}

	uc := NewUseCase(&fakeBookingRepo{bookings: []*domain.Booking{booked}}, &fakeClosureRepo{}, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{
		Date:       date,
		ServiceIDs: []string{"corte"},
	})

	require.NoError(t, err)
	assert.NotContains(t, resp.Slots, types.TimeString("10:00"))
	assert.NotContains(t, resp.Slots, types.TimeString("10:45"))
	assert.Contains(t, resp.Slots, types.TimeString("09:00"))
}

func TestExecute_MorningClosure(t *testing.T) {
	uc := NewUseCase(&fakeBookingRepo{}, &fakeClosureRepo{
		closure: &domain.ClosurePeriod{Date: nextBusinessDay(), MorningClosed: true},
	}, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{
		Date:       nextBusinessDay(),
		ServiceIDs: []string{"corte"},
	})

	require.NoError(t, err)
	assert.NotContains(t, resp.Slots, types.TimeString("09:00"))
	assert.NotContains(t, resp.Slots, types.TimeString("11:15"))
	assert.Contains(t, resp.Slots, types.TimeString("13:00"))
}

func TestExecute_ValidationErrors(t *testing.T) {
	uc := NewUseCase(&fakeBookingRepo{}, &fakeClosureRepo{}, nopLogger{})

	tests := []struct {
		name    string
		req     *Request
		wantErr error
	}{
		{
			name:    "no services",
			req:     &Request{Date: nextBusinessDay()},
			wantErr: ErrInvalidInput,
		},
		{
			name:    "zero date",
			req:     &Request{ServiceIDs: []string{"corte"}},
			wantErr: ErrInvalidInput,
		},
		{
			name:    "past date",
			req:     &Request{Date: time.Now().AddDate(0, 0, -2), ServiceIDs: []string{"corte"}},
			wantErr: ErrInvalidDate,
		},
		{
			name:    "too far in future",
			req:     &Request{Date: time.Now().AddDate(0, 2, 0), ServiceIDs: []string{"corte"}},
			wantErr: ErrDateTooFarInFuture,
		},
		{
			name:    "unknown service",
			req:     &Request{Date: nextBusinessDay(), ServiceIDs: []string{"manicure"}},
			wantErr: ErrUnknownService,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.Execute(context.Background(), tt.req)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestExecute_SundayRejected(t *testing.T) {
	uc := NewUseCase(&fakeBookingRepo{}, &fakeClosureRepo{}, nopLogger{})

	// Ближайшее воскресенье в будущем
	sunday := time.Now().AddDate(0, 0, 1)
	for sunday.Weekday() != time.Sunday {
		sunday = sunday.AddDate(0, 0, 1)
	}

	_, err := uc.Execute(context.Background(), &Request{
		Date:       sunday,
		ServiceIDs: []string{"corte"},
	})

	assert.ErrorIs(t, err, ErrSundayClosed)
}
