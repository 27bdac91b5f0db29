package create_booking

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/masterbarber/MB-BookingService/internal/domain"
	closureRepo "github.com/masterbarber/MB-BookingService/internal/infra/storage/closure"
	"github.com/masterbarber/MB-BookingService/pkg/types"
)

const notifyTimeout = 10 * time.Second

// UseCase use case для создания бронирования
type UseCase struct {
	bookingRepo  BookingRepository
	closureRepo  ClosureRepository
	txManager    TransactionManager
	notifier     NotificationSender
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	closureRepo ClosureRepository,
	txManager TransactionManager,
	notifier NotificationSender,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		closureRepo:  closureRepo,
		txManager:    txManager,
		notifier:     notifier,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case создания бронирования.
// Проверка доступности и вставка выполняются в одной сериализуемой
// транзакции с блокировкой бронирований дня (FOR UPDATE) - два
// конкурентных запроса на пересекающиеся слоты не пройдут оба.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: name=%s, date=%s, time=%s, walkIn=%t, services=%v",
		req.Name, req.Date.Format(domain.DateFormat), req.StartTime, req.WalkIn, req.ServiceIDs)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущее время
	now := uc.timeProvider.Now()

	// 3. Валидация даты
	if err := validateDate(req.Date, now); err != nil {
		uc.logger.Warn("CreateBooking: date validation failed: %v", err)
		return nil, err
	}

	// 4. Считаем суммарную длительность и цену по каталогу услуг
	duration, err := domain.CalculateTotalDuration(req.ServiceIDs)
	if err != nil {
		if errors.Is(err, domain.ErrUnknownService) {
			uc.logger.Warn("CreateBooking: unknown service in %v", req.ServiceIDs)
			return nil, fmt.Errorf("%w: %v", ErrUnknownService, err)
		}
		return nil, fmt.Errorf("%w: failed to calculate duration: %v", ErrInternal, err)
	}

	totalPrice, err := domain.CalculateTotalPrice(req.ServiceIDs)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to calculate price: %v", ErrInternal, err)
	}

	// Переменная для хранения результата
	var result *domain.Booking

	// 5. Проверка доступности и вставка в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 5.1. Перечитываем закрытия на дату (отсутствие записи - день без ограничений)
		closure, err := uc.closureRepo.GetByDate(txCtx, req.Date)
		if err != nil && !errors.Is(err, closureRepo.ErrClosureNotFound) {
			uc.logger.Error("CreateBooking: failed to get closure: %v", err)
			return fmt.Errorf("%w: failed to get closure: %v", ErrInternal, err)
		}

		// 5.2. Walk-in: блокирует только полное закрытие дня,
		// сетка слотов и существующие бронирования не проверяются
		if req.WalkIn {
			if !domain.IsWalkInAdmissible(closure) {
				uc.logger.Warn("CreateBooking: walk-in rejected, full day closed on %s",
					req.Date.Format(domain.DateFormat))
				return ErrFullDayClosed
			}

			result = uc.newWalkInBooking(req, totalPrice)
		} else {
			// 5.3. Перечитываем бронирования дня с блокировкой (FOR UPDATE)
			filter := domain.DayBookingsFilter{
				StartDate: &req.Date,
				EndDate:   &req.Date,
			}

			bookings, err := uc.bookingRepo.GetWithFilter(txCtx, filter)
			if err != nil {
				uc.logger.Error("CreateBooking: failed to get bookings: %v", err)
				return fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
			}

			// 5.4. Повторная проверка доступности внутри транзакции
			admissible, err := domain.IsAdmissible(closure, req.StartTime, duration, bookings)
			if err != nil {
				uc.logger.Error("CreateBooking: failed to check admissibility: %v", err)
				return fmt.Errorf("%w: failed to check admissibility: %v", ErrInternal, err)
			}
			if !admissible {
				uc.logger.Warn("CreateBooking: slot %s not available on %s",
					req.StartTime, req.Date.Format(domain.DateFormat))
				return ErrSlotNotAvailable
			}

			result = uc.newScheduledBooking(req, duration, totalPrice)
		}

		// 5.5. Сохраняем бронирование
		created, err := uc.bookingRepo.Create(txCtx, result)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateBooking: successfully created booking id=%d", result.ID)

	// 6. Уведомление после коммита, fire-and-forget: сбой отправки
	// не откатывает созданное бронирование
	uc.notifyAsync(result)

	return &Response{
		ID:              result.ID,
		Name:            result.Name,
		Phone:           result.Phone,
		ServiceIDs:      result.ServiceIDs,
		BookingDate:     result.BookingDate,
		StartTime:       result.StartTime,
		BookingType:     string(result.BookingType),
		Status:          string(result.Status),
		DurationMinutes: result.DurationMinutes,
		TotalPriceCents: result.TotalPriceCents,
		CreatedAt:       result.CreatedAt,
		UpdatedAt:       result.UpdatedAt,
	}, nil
}

func (uc *UseCase) newScheduledBooking(req *Request, duration int, totalPrice int64) *domain.Booking {
	return &domain.Booking{
		Name:            strings.TrimSpace(req.Name),
		Phone:           req.Phone,
		ServiceIDs:      req.ServiceIDs,
		BookingDate:     req.Date,
		StartTime:       req.StartTime,
		BookingType:     domain.TypeScheduled,
		Status:          domain.StatusConfirmed,
		DurationMinutes: duration,
		TotalPriceCents: totalPrice,
	}
}

// newWalkInBooking собирает walk-in бронирование: без времени начала
// и с нулевой длительностью - слоты в сетке оно не занимает
func (uc *UseCase) newWalkInBooking(req *Request, totalPrice int64) *domain.Booking {
	return &domain.Booking{
		Name:            strings.TrimSpace(req.Name),
		Phone:           req.Phone,
		ServiceIDs:      req.ServiceIDs,
		BookingDate:     req.Date,
		StartTime:       types.TimeString(""),
		BookingType:     domain.TypeWalkIn,
		Status:          domain.StatusConfirmed,
		DurationMinutes: 0,
		TotalPriceCents: totalPrice,
	}
}

func (uc *UseCase) notifyAsync(booking *domain.Booking) {
	serviceNames := make([]string, 0, len(booking.ServiceIDs))
	for _, id := range booking.ServiceIDs {
		service, err := domain.LookupService(id)
		if err != nil {
			serviceNames = append(serviceNames, id)
			continue
		}
		serviceNames = append(serviceNames, service.Name)
	}

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), notifyTimeout)
		defer cancel()

		if err := uc.notifier.SendBookingCreated(ctx, booking, serviceNames); err != nil {
			uc.logger.Warn("CreateBooking: failed to send notification for booking id=%d: %v", booking.ID, err)
		}
	}()
}
