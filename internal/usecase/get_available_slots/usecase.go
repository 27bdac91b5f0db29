package get_available_slots

import (
	"context"
	"errors"
	"fmt"

	"github.com/masterbarber/MB-BookingService/internal/domain"
	closureRepo "github.com/masterbarber/MB-BookingService/internal/infra/storage/closure"
)

// UseCase use case для получения доступных времен начала бронирования
type UseCase struct {
	bookingRepo  BookingRepository
	closureRepo  ClosureRepository
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	closureRepo ClosureRepository,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		closureRepo:  closureRepo,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case получения доступных времен начала.
// Доступность считается с учетом суммарной длительности выбранных услуг:
// слот доступен, только если весь интервал [slot, slot+duration)
// не пересекается с существующими бронированиями и закрытиями.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: date=%s, services=%v",
		req.Date.Format(domain.DateFormat), req.ServiceIDs)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущее время
	now := uc.timeProvider.Now()

	// 3. Валидация даты
	if err := validateDate(req.Date, now); err != nil {
		uc.logger.Warn("GetAvailableSlots: date validation failed: %v", err)
		return nil, err
	}

	// 4. Считаем суммарную длительность и цену по каталогу услуг
	duration, err := domain.CalculateTotalDuration(req.ServiceIDs)
	if err != nil {
		if errors.Is(err, domain.ErrUnknownService) {
			uc.logger.Warn("GetAvailableSlots: unknown service in %v", req.ServiceIDs)
			return nil, fmt.Errorf("%w: %v", ErrUnknownService, err)
		}
		return nil, fmt.Errorf("%w: failed to calculate duration: %v", ErrInternal, err)
	}

	totalPrice, err := domain.CalculateTotalPrice(req.ServiceIDs)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to calculate price: %v", ErrInternal, err)
	}

	// 5. Получаем закрытия на дату (отсутствие записи - день без ограничений)
	closure, err := uc.closureRepo.GetByDate(ctx, req.Date)
	if err != nil && !errors.Is(err, closureRepo.ErrClosureNotFound) {
		uc.logger.Error("GetAvailableSlots: failed to get closure: %v", err)
		return nil, fmt.Errorf("%w: failed to get closure: %v", ErrInternal, err)
	}

	// 6. Получаем все бронирования на эту дату
	filter := domain.DayBookingsFilter{
		StartDate: &req.Date,
		EndDate:   &req.Date,
	}

	bookings, err := uc.bookingRepo.GetWithFilter(ctx, filter)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
	}

	// 7. Фильтруем сетку до допустимых времен начала
	slots, err := domain.AvailableStartTimes(closure, duration, bookings)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to calculate availability: %v", err)
		return nil, fmt.Errorf("%w: failed to calculate availability: %v", ErrInternal, err)
	}

	uc.logger.Info("GetAvailableSlots: %d slots available for date=%s, duration=%d",
		len(slots), req.Date.Format(domain.DateFormat), duration)

	return &Response{
		Date:            req.Date,
		ServiceIDs:      req.ServiceIDs,
		DurationMinutes: duration,
		TotalPriceCents: totalPrice,
		Slots:           slots,
	}, nil
}
