package list_slots

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-ReservationService/internal/api/handlers"
)

type Handler struct {
	useCase ListSlotsUseCase
	logger  Logger
}

func NewHandler(useCase ListSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/professionals/{professionalId}/slots
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	professionalID := mux.Vars(r)["professionalId"]

	slots, err := h.useCase.Execute(r.Context(), professionalID)
	if err != nil {
		h.logger.Error("GET /professionals/{id}/slots - Failed to list slots: professional_id=%s, error=%v",
			professionalID, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, slots)
}
