package create_booking

import (
	"errors"
	"net/http"
	"time"

	"github.com/masterbarber/MB-BookingService/internal/api/handlers"
	"github.com/masterbarber/MB-BookingService/internal/domain"
	createBooking "github.com/masterbarber/MB-BookingService/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody = "corpo da requisição inválido"
	msgInvalidDate        = "formato de data inválido, esperado YYYY-MM-DD"
	msgInvalidTime        = "formato de horário inválido, esperado HH:MM"
	msgInvalidInput       = "dados inválidos"
	msgUnknownService     = "serviço não encontrado"
	msgSlotNotAvailable   = "horário indisponível"
	msgFullDayClosed      = "a barbearia está fechada nesta data"
	msgInvalidBookingDate = "data de agendamento inválida"
	msgDateTooFar         = "data muito distante, agendamentos até 1 mês"
	msgSundayClosed       = "a barbearia não abre aos domingos"
	msgInvalidTimeSlot    = "horário fora da grade de atendimento"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Конвертируем HTTP запрос в модель use case (с парсингом даты и времени)
	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /bookings - Failed to parse request: %v", err)
		if _, dateErr := time.Parse(domain.DateFormat, req.BookingDate); dateErr != nil {
			handlers.RespondBadRequest(w, msgInvalidDate)
		} else {
			handlers.RespondBadRequest(w, msgInvalidTime)
		}
		return
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createBooking.ErrSlotNotAvailable):
			h.logger.Warn("POST /bookings - Slot not available: date=%s, time=%s", req.BookingDate, req.StartTime)
			handlers.RespondError(w, http.StatusConflict, msgSlotNotAvailable)

		case errors.Is(err, createBooking.ErrFullDayClosed):
			h.logger.Warn("POST /bookings - Full day closed: date=%s", req.BookingDate)
			handlers.RespondError(w, http.StatusConflict, msgFullDayClosed)

		case errors.Is(err, createBooking.ErrUnknownService):
			h.logger.Warn("POST /bookings - Unknown service: services=%v", req.Services)
			handlers.RespondBadRequest(w, msgUnknownService)

		case errors.Is(err, createBooking.ErrInvalidDate):
			h.logger.Warn("POST /bookings - Invalid booking date: date=%s", req.BookingDate)
			handlers.RespondBadRequest(w, msgInvalidBookingDate)

		case errors.Is(err, createBooking.ErrDateTooFarInFuture):
			h.logger.Warn("POST /bookings - Date too far in future: date=%s", req.BookingDate)
			handlers.RespondBadRequest(w, msgDateTooFar)

		case errors.Is(err, createBooking.ErrSundayClosed):
			h.logger.Warn("POST /bookings - Sunday: date=%s", req.BookingDate)
			handlers.RespondBadRequest(w, msgSundayClosed)

		case errors.Is(err, createBooking.ErrInvalidTimeSlot):
			h.logger.Warn("POST /bookings - Invalid time slot: time=%s", req.StartTime)
			handlers.RespondBadRequest(w, msgInvalidTimeSlot)

		case errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /bookings - Failed to create booking: date=%s, error=%v", req.BookingDate, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseResponse(result)

	h.logger.Info("POST /bookings - Booking created successfully: booking_id=%d, date=%s", result.ID, req.BookingDate)
	handlers.RespondJSON(w, http.StatusCreated, response)
}
