package reports

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/masterbarber/MB-BookingService/internal/domain"
	"github.com/masterbarber/MB-BookingService/internal/integrations/whatsapp"
	"github.com/masterbarber/MB-BookingService/internal/service/reports/models"
	"github.com/masterbarber/MB-BookingService/pkg/ptr"
)

const reportDateFormat = "02/01/2006"

// Service сервис отчетов о выручке
type Service struct {
	bookingRepo BookingRepository
	notifier    NotificationSender
	logger      Logger
}

// NewService создает новый экземпляр сервиса отчетов
func NewService(bookingRepo BookingRepository, notifier NotificationSender, logger Logger) *Service {
	return &Service{
		bookingRepo: bookingRepo,
		notifier:    notifier,
		logger:      logger,
	}
}

// GetProfitReport строит отчет о выручке за период (день, неделю или месяц),
// содержащий указанную дату. Учитываются только завершенные бронирования -
// подтвержденные, но не завершенные, в выручку не входят.
func (s *Service) GetProfitReport(ctx context.Context, req *models.GetProfitReportRequest) (*models.ProfitReportResponse, error) {
	s.logger.Info("GetProfitReport: period=%s, date=%s", req.Period, req.Date.Format(domain.DateFormat))

	if req.Date.IsZero() {
		return nil, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	startDate, endDate, err := periodBounds(req.Period, req.Date)
	if err != nil {
		s.logger.Warn("GetProfitReport: invalid period=%s", req.Period)
		return nil, err
	}

	filter := domain.DayBookingsFilter{
		StartDate: &startDate,
		EndDate:   &endDate,
		Status:    ptr.Ptr(domain.StatusCompleted),
	}

	bookings, err := s.bookingRepo.GetWithFilter(ctx, filter)
	if err != nil {
		s.logger.Error("GetProfitReport: repository error: %v", err)
		return nil, fmt.Errorf("%w: GetProfitReport - repository error: %v", ErrInternal, err)
	}

	report := buildReport(req.Period, startDate, endDate, bookings)

	s.logger.Info("GetProfitReport: period=%s, completed=%d, revenue=%d cents",
		req.Period, report.CompletedCount, report.TotalRevenueCents)

	return report, nil
}

// SendProfitReport строит отчет и отправляет его владельцу в WhatsApp
func (s *Service) SendProfitReport(ctx context.Context, req *models.GetProfitReportRequest) (*models.ProfitReportResponse, error) {
	report, err := s.GetProfitReport(ctx, req)
	if err != nil {
		return nil, err
	}

	text := buildReportMessage(report)

	if err := s.notifier.SendProfitReport(ctx, text); err != nil {
		s.logger.Error("SendProfitReport: failed to send report: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrSendFailed, err)
	}

	s.logger.Info("SendProfitReport: report sent for period=%s", req.Period)
	return report, nil
}

// periodBounds возвращает границы периода, содержащего дату:
// день, календарная неделя (пн-вс) или календарный месяц
func periodBounds(period string, date time.Time) (time.Time, time.Time, error) {
	dateOnly := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())

	switch period {
	case models.PeriodDaily:
		return dateOnly, dateOnly, nil
	case models.PeriodWeekly:
		weekday := int(dateOnly.Weekday())
		if weekday == 0 {
			weekday = 7
		}
		monday := dateOnly.AddDate(0, 0, -(weekday - 1))
		return monday, monday.AddDate(0, 0, 6), nil
	case models.PeriodMonthly:
		first := time.Date(date.Year(), date.Month(), 1, 0, 0, 0, 0, date.Location())
		return first, first.AddDate(0, 1, -1), nil
	default:
		return time.Time{}, time.Time{}, ErrInvalidPeriod
	}
}

// buildReport агрегирует выручку и разбивку по услугам.
// Цены услуг берутся из каталога: total_price_cents бронирования -
// сумма по всем его услугам, а разбивка считается по каждой услуге отдельно.
func buildReport(period string, startDate, endDate time.Time, bookings []*domain.Booking) *models.ProfitReportResponse {
	type serviceAgg struct {
		name    string
		count   int
		revenue int64
	}

	byService := make(map[string]*serviceAgg)
	var totalRevenue int64

	for _, booking := range bookings {
		totalRevenue += booking.TotalPriceCents

		for _, id := range booking.ServiceIDs {
			agg, ok := byService[id]
			if !ok {
				agg = &serviceAgg{name: id}
				if service, err := domain.LookupService(id); err == nil {
					agg.name = service.Name
				}
				byService[id] = agg
			}

			agg.count++
			if service, err := domain.LookupService(id); err == nil {
				agg.revenue += service.PriceCents
			}
		}
	}

	services := make([]models.ServiceProfit, 0, len(byService))
	for id, agg := range byService {
		services = append(services, models.ServiceProfit{
			ServiceID:    id,
			ServiceName:  agg.name,
			Count:        agg.count,
			RevenueCents: agg.revenue,
		})
	}

	// Сортируем по убыванию выручки, при равенстве - по ID для стабильности
	sort.Slice(services, func(i, j int) bool {
		if services[i].RevenueCents != services[j].RevenueCents {
			return services[i].RevenueCents > services[j].RevenueCents
		}
		return services[i].ServiceID < services[j].ServiceID
	})

	return &models.ProfitReportResponse{
		Period:            period,
		StartDate:         startDate.Format(domain.DateFormat),
		EndDate:           endDate.Format(domain.DateFormat),
		CompletedCount:    len(bookings),
		TotalRevenueCents: totalRevenue,
		Services:          services,
	}
}

// buildReportMessage собирает текст отчета на португальском
func buildReportMessage(report *models.ProfitReportResponse) string {
	var b strings.Builder

	var title string
	switch report.Period {
	case models.PeriodDaily:
		title = "Relatório Diário"
	case models.PeriodWeekly:
		title = "Relatório Semanal"
	case models.PeriodMonthly:
		title = "Relatório Mensal"
	default:
		title = "Relatório"
	}

	startDate, _ := time.Parse(domain.DateFormat, report.StartDate)
	endDate, _ := time.Parse(domain.DateFormat, report.EndDate)

	b.WriteString(fmt.Sprintf("*%s - Master Barber*\n\n", title))
	if report.StartDate == report.EndDate {
		b.WriteString(fmt.Sprintf("*Data:* %s\n", startDate.Format(reportDateFormat)))
	} else {
		b.WriteString(fmt.Sprintf("*Período:* %s a %s\n",
			startDate.Format(reportDateFormat), endDate.Format(reportDateFormat)))
	}
	b.WriteString(fmt.Sprintf("*Atendimentos:* %d\n", report.CompletedCount))
	b.WriteString(fmt.Sprintf("*Faturamento:* %s\n", whatsapp.FormatPrice(report.TotalRevenueCents)))

	if len(report.Services) > 0 {
		b.WriteString("\n*Por serviço:*\n")
		for _, service := range report.Services {
			b.WriteString(fmt.Sprintf("- %s: %dx - %s\n",
				service.ServiceName, service.Count, whatsapp.FormatPrice(service.RevenueCents)))
		}
	}

	return strings.TrimRight(b.String(), "\n")
}
