package create_booking

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/masterbarber/MB-BookingService/internal/domain"
	closureRepo "github.com/masterbarber/MB-BookingService/internal/infra/storage/closure"
)

type fakeBookingRepo struct {
	mu       sync.Mutex
	bookings []*domain.Booking
	nextID   int64
}

func (f *fakeBookingRepo) Create(_ context.Context, booking *domain.Booking) (*domain.Booking, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.nextID++
	booking.ID = f.nextID
	booking.CreatedAt = time.Now()
	booking.UpdatedAt = booking.CreatedAt
	f.bookings = append(f.bookings, booking)
	return booking, nil
}

func (f *fakeBookingRepo) GetWithFilter(_ context.Context, _ domain.DayBookingsFilter) ([]*domain.Booking, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]*domain.Booking(nil), f.bookings...), nil
}

type fakeClosureRepo struct {
	closure *domain.ClosurePeriod
}

func (f *fakeClosureRepo) GetByDate(_ context.Context, _ time.Time) (*domain.ClosurePeriod, error) {
	if f.closure == nil {
		return nil, closureRepo.ErrClosureNotFound
	}
	return f.closure, nil
}

// fakeTxManager выполняет функцию без настоящей транзакции
type fakeTxManager struct{}

func (fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fakeNotifier struct {
	sent chan *domain.Booking
}

func newFakeNotifier() *fakeNotifier {
	return &fakeNotifier{sent: make(chan *domain.Booking, 1)}
}

func (f *fakeNotifier) SendBookingCreated(_ context.Context, booking *domain.Booking, _ []string) error {
	f.sent <- booking
	return nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func nextBusinessDay() time.Time {
	date := time.Now().AddDate(0, 0, 1)
	for date.Weekday() == time.Sunday {
		date = date.AddDate(0, 0, 1)
	}
	return time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)
}

func newTestUseCase(repo *fakeBookingRepo, closures *fakeClosureRepo, notifier *fakeNotifier) *UseCase {
	return NewUseCase(repo, closures, fakeTxManager{}, notifier, nopLogger{})
}

func TestExecute_CreatesScheduledBooking(t *testing.T) {
	repo := &fakeBookingRepo{}
	notifier := newFakeNotifier()
	uc := newTestUseCase(repo, &fakeClosureRepo{}, notifier)

	resp, err := uc.Execute(context.Background(), &Request{
		Name:       "João Silva",
		Phone:      "(85) 99999-0001",
		ServiceIDs: []string{"corte", "barba"},
		Date:       nextBusinessDay(),
		StartTime:  "10:00",
	})

	require.NoError(t, err)
	assert.Equal(t, int64(1), resp.ID)
	assert.Equal(t, string(domain.TypeScheduled), resp.BookingType)
	assert.Equal(t, string(domain.StatusConfirmed), resp.Status)
	assert.Equal(t, 50, resp.DurationMinutes)
	assert.Equal(t, int64(6500), resp.TotalPriceCents)

	// Уведомление уходит после коммита, fire-and-forget
	select {
	case sent := <-notifier.sent:
		assert.Equal(t, resp.ID, sent.ID)
	case <-time.After(time.Second):
		t.Fatal("notification was not sent")
	}
}

func TestExecute_RejectsOverlappingBooking(t *testing.T) {
	repo := &fakeBookingRepo{}
	uc := newTestUseCase(repo, &fakeClosureRepo{}, newFakeNotifier())
	date := nextBusinessDay()

	_, err := uc.Execute(context.Background(), &Request{
		Name:       "João Silva",
		Phone:      "(85) 99999-0001",
		ServiceIDs: []string{"combo"}, // 50 минут, до 10:50
		Date:       date,
		StartTime:  "10:00",
	})
	require.NoError(t, err)

	// Пересекается по длительности, хоть старты и разные
	_, err = uc.Execute(context.Background(), &Request{
		Name:       "Pedro Costa",
		Phone:      "(85) 99999-0002",
		ServiceIDs: []string{"corte"},
		Date:       date,
		StartTime:  "10:45",
	})
	assert.ErrorIs(t, err, ErrSlotNotAvailable)

	// Свободный слот после конца существующего - проходит
	_, err = uc.Execute(context.Background(), &Request{
		Name:       "Pedro Costa",
		Phone:      "(85) 99999-0002",
		ServiceIDs: []string{"corte"},
		Date:       date,
		StartTime:  "11:15",
	})
	assert.NoError(t, err)
}

func TestExecute_WalkIn(t *testing.T) {
	repo := &fakeBookingRepo{}
	uc := newTestUseCase(repo, &fakeClosureRepo{}, newFakeNotifier())
	date := nextBusinessDay()

	// Занимаем все слоты не нужно: walk-in не проверяет сетку
	resp, err := uc.Execute(context.Background(), &Request{
		Name:       "Carlos Souza",
		Phone:      "(85) 99999-0003",
		ServiceIDs: []string{"corte"},
		Date:       date,
		WalkIn:     true,
	})

	require.NoError(t, err)
	assert.Equal(t, string(domain.TypeWalkIn), resp.BookingType)
	assert.True(t, resp.StartTime.IsZero())
	assert.Equal(t, 0, resp.DurationMinutes)
	assert.Equal(t, int64(4000), resp.TotalPriceCents)
}

func TestExecute_WalkInBlockedByFullDayClosure(t *testing.T) {
	closures := &fakeClosureRepo{closure: &domain.ClosurePeriod{
		FullDayClosed: true, MorningClosed: true, AfternoonClosed: true,
	}}
	uc := newTestUseCase(&fakeBookingRepo{}, closures, newFakeNotifier())

	_, err := uc.Execute(context.Background(), &Request{
		Name:       "Carlos Souza",
		Phone:      "(85) 99999-0003",
		ServiceIDs: []string{"corte"},
		Date:       nextBusinessDay(),
		WalkIn:     true,
	})

	assert.ErrorIs(t, err, ErrFullDayClosed)
}

func TestExecute_WalkInAllowedDuringPartialClosure(t *testing.T) {
	closures := &fakeClosureRepo{closure: &domain.ClosurePeriod{MorningClosed: true}}
	uc := newTestUseCase(&fakeBookingRepo{}, closures, newFakeNotifier())

	_, err := uc.Execute(context.Background(), &Request{
		Name:       "Carlos Souza",
		Phone:      "(85) 99999-0003",
		ServiceIDs: []string{"corte"},
		Date:       nextBusinessDay(),
		WalkIn:     true,
	})

	assert.NoError(t, err)
}

func TestExecute_ScheduledBlockedByHalfClosure(t *testing.T) {
	closures := &fakeClosureRepo{closure: &domain.ClosurePeriod{AfternoonClosed: true}}
	uc := newTestUseCase(&fakeBookingRepo{}, closures, newFakeNotifier())

	_, err := uc.Execute(context.Background(), &Request{
		Name:       "João Silva",
		Phone:      "(85) 99999-0001",
		ServiceIDs: []string{"corte"},
		Date:       nextBusinessDay(),
		StartTime:  "15:00",
	})

	assert.ErrorIs(t, err, ErrSlotNotAvailable)
}

func TestExecute_ValidationErrors(t *testing.T) {
	uc := newTestUseCase(&fakeBookingRepo{}, &fakeClosureRepo{}, newFakeNotifier())
	date := nextBusinessDay()

	tests := []struct {
		name    string
		req     *Request
		wantErr error
	}{
		{
			name: "short name",
			req: &Request{
				Name: "Jo", Phone: "(85) 99999-0001",
				ServiceIDs: []string{"corte"}, Date: date, StartTime: "10:00",
			},
			wantErr: ErrInvalidInput,
		},
		{
			name: "short phone",
			req: &Request{
				Name: "João Silva", Phone: "12345",
				ServiceIDs: []string{"corte"}, Date: date, StartTime: "10:00",
			},
			wantErr: ErrInvalidInput,
		},
		{
			name: "no services",
			req: &Request{
				Name: "João Silva", Phone: "(85) 99999-0001",
				Date: date, StartTime: "10:00",
			},
			wantErr: ErrInvalidInput,
		},
		{
			name: "off-grid start time",
			req: &Request{
				Name: "João Silva", Phone: "(85) 99999-0001",
				ServiceIDs: []string{"corte"}, Date: date, StartTime: "09:30",
			},
			wantErr: ErrInvalidTimeSlot,
		},
		{
			name: "unknown service",
			req: &Request{
				Name: "João Silva", Phone: "(85) 99999-0001",
				ServiceIDs: []string{"manicure"}, Date: date, StartTime: "10:00",
			},
			wantErr: ErrUnknownService,
		},
		{
			name: "past date",
			req: &Request{
				Name: "João Silva", Phone: "(85) 99999-0001",
				ServiceIDs: []string{"corte"}, Date: time.Now().AddDate(0, 0, -2), StartTime: "10:00",
			},
			wantErr: ErrInvalidDate,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.Execute(context.Background(), tt.req)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
