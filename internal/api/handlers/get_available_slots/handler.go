package get_available_slots

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/masterbarber/MB-BookingService/internal/api/handlers"
	"github.com/masterbarber/MB-BookingService/internal/domain"
	getAvailableSlots "github.com/masterbarber/MB-BookingService/internal/usecase/get_available_slots"
)

const (
	msgMissingDate     = "parâmetro date é obrigatório"
	msgInvalidDate     = "formato de data inválido, esperado YYYY-MM-DD"
	msgMissingServices = "parâmetro services é obrigatório"
	msgUnknownService  = "serviço não encontrado"
	msgInvalidInput    = "dados inválidos"
	msgPastDate        = "data de agendamento inválida"
	msgDateTooFar      = "data muito distante, agendamentos até 1 mês"
	msgSundayClosed    = "a barbearia não abre aos domingos"
)

type Handler struct {
	useCase GetAvailableSlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/available-slots?date=2026-09-15&services=corte,barba
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	dateStr := r.URL.Query().Get("date")
	if dateStr == "" {
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		h.logger.Warn("GET /available-slots - Invalid date: %s", dateStr)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	servicesStr := r.URL.Query().Get("services")
	if servicesStr == "" {
		handlers.RespondBadRequest(w, msgMissingServices)
		return
	}
	services := strings.Split(servicesStr, ",")

	result, err := h.useCase.Execute(r.Context(), &getAvailableSlots.Request{
		Date:       date,
		ServiceIDs: services,
	})
	if err != nil {
		switch {
		case errors.Is(err, getAvailableSlots.ErrUnknownService):
			h.logger.Warn("GET /available-slots - Unknown service: services=%s", servicesStr)
			handlers.RespondBadRequest(w, msgUnknownService)

		case errors.Is(err, getAvailableSlots.ErrInvalidDate):
			h.logger.Warn("GET /available-slots - Past date: date=%s", dateStr)
			handlers.RespondBadRequest(w, msgPastDate)

		case errors.Is(err, getAvailableSlots.ErrDateTooFarInFuture):
			h.logger.Warn("GET /available-slots - Date too far: date=%s", dateStr)
			handlers.RespondBadRequest(w, msgDateTooFar)

		case errors.Is(err, getAvailableSlots.ErrSundayClosed):
			h.logger.Warn("GET /available-slots - Sunday: date=%s", dateStr)
			handlers.RespondBadRequest(w, msgSundayClosed)

		case errors.Is(err, getAvailableSlots.ErrInvalidInput):
			h.logger.Warn("GET /available-slots - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("GET /available-slots - Failed: date=%s, error=%v", dateStr, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /available-slots - %d slots for date=%s", len(result.Slots), dateStr)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
