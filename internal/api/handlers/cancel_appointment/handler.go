package cancel_appointment

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-ReservationService/internal/api/handlers"
)

type Handler struct {
	useCase CancelAppointmentUseCase
	logger  Logger
}

func NewHandler(useCase CancelAppointmentUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle DELETE /api/v1/appointments/{appointmentId}
// Неизвестный ID отвечает 200 с cancelled=false
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	appointmentID := mux.Vars(r)["appointmentId"]

	result, err := h.useCase.Execute(r.Context(), appointmentID)
	if err != nil {
		h.logger.Error("DELETE /appointments/{id} - Failed to cancel: appointment_id=%s, error=%v", appointmentID, err)
		handlers.RespondInternalError(w)
		return
	}

	if result.Cancelled {
		h.logger.Info("DELETE /appointments/{id} - Appointment cancelled: appointment_id=%s, released_slot_id=%s",
			appointmentID, result.ReleasedSlot.ID)
	}
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResult(result))
}
