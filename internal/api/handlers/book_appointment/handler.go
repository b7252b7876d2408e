package book_appointment

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-ReservationService/internal/api/handlers"
	bookAppointment "github.com/m04kA/SMC-ReservationService/internal/usecase/book_appointment"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgSelectSlot         = "выберите специалиста и слот"
)

type Handler struct {
	useCase BookAppointmentUseCase
	logger  Logger
}

func NewHandler(useCase BookAppointmentUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/appointments
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req BookAppointmentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /appointments - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	appointment, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest())
	if err != nil {
		switch {
		case errors.Is(err, bookAppointment.ErrValidation):
			h.logger.Warn("POST /appointments - Professional or slot not selected")
			handlers.RespondBadRequest(w, msgSelectSlot)

		default:
			h.logger.Error("POST /appointments - Failed to book: professional_id=%s, slot_id=%s, error=%v",
				req.ProfessionalID, req.SlotID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /appointments - Appointment booked: appointment_id=%s, slot_id=%s",
		appointment.ID, appointment.SlotID)
	handlers.RespondJSON(w, http.StatusCreated, appointment)
}
