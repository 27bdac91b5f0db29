package bookings

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/masterbarber/MB-BookingService/internal/domain"
	bookingRepo "github.com/masterbarber/MB-BookingService/internal/infra/storage/booking"
	"github.com/masterbarber/MB-BookingService/internal/service/bookings/models"
)

// Service сервис для работы с бронированиями со стороны администратора
type Service struct {
	bookingRepo BookingRepository
	logger      Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(bookingRepo BookingRepository, logger Logger) *Service {
	return &Service{
		bookingRepo: bookingRepo,
		logger:      logger,
	}
}

// GetByID получает бронирование по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*models.BookingResponse, error) {
	s.logger.Info("GetByID: fetching booking id=%d", id)

	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("GetByID: booking id=%d not found", id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("GetByID: repository error for booking id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainBooking(booking), nil
}

// GetDayBookings получает бронирования за день в порядке времени начала
// (walk-in без времени - в конце). Опционально фильтрует по статусу.
func (s *Service) GetDayBookings(ctx context.Context, req *models.GetDayBookingsRequest) (*models.BookingListResponse, error) {
	s.logger.Info("GetDayBookings: fetching bookings for date=%s", req.Date.Format(domain.DateFormat))

	filter := domain.DayBookingsFilter{
		StartDate: &req.Date,
		EndDate:   &req.Date,
	}

	if err := applyStatusFilter(&filter, req.Status); err != nil {
		s.logger.Warn("GetDayBookings: invalid status=%s", *req.Status)
		return nil, fmt.Errorf("%w: invalid status", ErrInvalidInput)
	}

	bookings, err := s.bookingRepo.GetWithFilter(ctx, filter)
	if err != nil {
		s.logger.Error("GetDayBookings: repository error for date=%s: %v", req.Date.Format(domain.DateFormat), err)
		return nil, fmt.Errorf("%w: GetDayBookings - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetDayBookings: fetched %d bookings for date=%s", len(bookings), req.Date.Format(domain.DateFormat))
	return models.FromDomainBookingList(bookings), nil
}

// GetWeekBookings получает бронирования за календарную неделю (пн-вс),
// содержащую указанную дату
func (s *Service) GetWeekBookings(ctx context.Context, req *models.GetWeekBookingsRequest) (*models.BookingListResponse, error) {
	weekStart, weekEnd := weekBounds(req.Date)

	s.logger.Info("GetWeekBookings: fetching bookings for week %s - %s",
		weekStart.Format(domain.DateFormat), weekEnd.Format(domain.DateFormat))

	filter := domain.DayBookingsFilter{
		StartDate: &weekStart,
		EndDate:   &weekEnd,
	}

	if err := applyStatusFilter(&filter, req.Status); err != nil {
		s.logger.Warn("GetWeekBookings: invalid status=%s", *req.Status)
		return nil, fmt.Errorf("%w: invalid status", ErrInvalidInput)
	}

	bookings, err := s.bookingRepo.GetWithFilter(ctx, filter)
	if err != nil {
		s.logger.Error("GetWeekBookings: repository error: %v", err)
		return nil, fmt.Errorf("%w: GetWeekBookings - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetWeekBookings: fetched %d bookings", len(bookings))
	return models.FromDomainBookingList(bookings), nil
}

// Complete переводит бронирование в статус completed.
// Завершить можно только подтвержденное бронирование - повторное
// завершение возвращает ErrCannotComplete.
func (s *Service) Complete(ctx context.Context, bookingID int64) error {
	s.logger.Info("Complete: completing booking id=%d", bookingID)

	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("Complete: booking id=%d not found", bookingID)
			return ErrBookingNotFound
		}
		s.logger.Error("Complete: repository error for booking id=%d: %v", bookingID, err)
		return fmt.Errorf("%w: Complete - repository error: %v", ErrInternal, err)
	}

	if !booking.CanBeCompleted() {
		s.logger.Warn("Complete: booking id=%d cannot be completed, status=%s", bookingID, booking.Status)
		return ErrCannotComplete
	}

	if err := s.bookingRepo.Complete(ctx, bookingID); err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			// Статус успел поменяться между чтением и обновлением
			s.logger.Warn("Complete: booking id=%d not found during completion", bookingID)
			return ErrCannotComplete
		}
		s.logger.Error("Complete: repository error for booking id=%d: %v", bookingID, err)
		return fmt.Errorf("%w: Complete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Complete: successfully completed booking id=%d", bookingID)
	return nil
}

// applyStatusFilter конвертирует строковый статус в domain фильтр
func applyStatusFilter(filter *domain.DayBookingsFilter, status *string) error {
	if status == nil {
		return nil
	}

	domainStatus, err := models.ToDomainBookingStatus(*status)
	if err != nil {
		return err
	}

	filter.Status = &domainStatus
	return nil
}

// weekBounds возвращает понедельник и воскресенье недели, содержащей дату
func weekBounds(date time.Time) (time.Time, time.Time) {
	dateOnly := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())

	weekday := int(dateOnly.Weekday())
	if weekday == 0 {
		weekday = 7 // воскресенье считаем седьмым днем
	}

	monday := dateOnly.AddDate(0, 0, -(weekday - 1))
	sunday := monday.AddDate(0, 0, 6)

	return monday, sunday
}
