package availability

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/masterbarber/MB-BookingService/internal/domain"
	closureRepo "github.com/masterbarber/MB-BookingService/internal/infra/storage/closure"
	"github.com/masterbarber/MB-BookingService/internal/service/availability/models"
)

// Service сервис для управления закрытиями дней
type Service struct {
	closureRepo  ClosureRepository
	timeProvider TimeProvider
	logger       Logger
}

// NewService создает новый экземпляр сервиса закрытий
func NewService(closureRepo ClosureRepository, logger Logger) *Service {
	return &Service{
		closureRepo:  closureRepo,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// SetClosure устанавливает закрытие на дату. Операция идемпотентна:
// повторный запрос с теми же флагами не меняет результат, запрос с
// другими флагами полностью заменяет предыдущие.
func (s *Service) SetClosure(ctx context.Context, req *models.SetClosureRequest) (*models.ClosureResponse, error) {
	s.logger.Info("SetClosure: date=%s, morning=%t, afternoon=%t, fullDay=%t",
		req.Date.Format(domain.DateFormat), req.MorningClosed, req.AfternoonClosed, req.FullDayClosed)

	if req.Date.IsZero() {
		return nil, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	closure := req.ToDomain()

	saved, err := s.closureRepo.Upsert(ctx, closure)
	if err != nil {
		s.logger.Error("SetClosure: repository error for date=%s: %v", req.Date.Format(domain.DateFormat), err)
		return nil, fmt.Errorf("%w: SetClosure - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("SetClosure: saved closure for date=%s", req.Date.Format(domain.DateFormat))
	return models.FromDomainClosure(saved), nil
}

// GetClosure получает закрытие на конкретную дату
func (s *Service) GetClosure(ctx context.Context, date time.Time) (*models.ClosureResponse, error) {
	s.logger.Info("GetClosure: date=%s", date.Format(domain.DateFormat))

	closure, err := s.closureRepo.GetByDate(ctx, date)
	if err != nil {
		if errors.Is(err, closureRepo.ErrClosureNotFound) {
			s.logger.Warn("GetClosure: closure for date=%s not found", date.Format(domain.DateFormat))
			return nil, ErrClosureNotFound
		}
		s.logger.Error("GetClosure: repository error for date=%s: %v", date.Format(domain.DateFormat), err)
		return nil, fmt.Errorf("%w: GetClosure - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainClosure(closure), nil
}

// ListClosures получает все закрытия начиная с сегодняшнего дня
func (s *Service) ListClosures(ctx context.Context) (*models.ClosureListResponse, error) {
	now := s.timeProvider.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	s.logger.Info("ListClosures: from=%s", today.Format(domain.DateFormat))

	closures, err := s.closureRepo.List(ctx, today)
	if err != nil {
		s.logger.Error("ListClosures: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListClosures - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ListClosures: fetched %d closures", len(closures))
	return models.FromDomainClosureList(closures), nil
}
